// Package appearance exposes the free-text appearance hints attached to form
// questions. Hints are not a grammar: callers query them by substring the way
// collector clients always have, so `columns-4 thousands-sep` answers true for
// `columns`, `columns-` and `thousands-sep` alike.
package appearance

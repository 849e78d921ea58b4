// Package layout decides how many grid columns a choice question renders in.
//
// The bare `columns` appearance scales with the device screen class
// (small 2, normal 3, large 4, xlarge 5, anything else 3). The parametrized
// `columns-N` form pins the count to N. Without either token, and whenever N
// cannot be parsed, questions render in a single column.
package layout

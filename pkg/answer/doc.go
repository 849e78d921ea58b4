// Package answer defines the typed answer model handed to the formatter. A
// question carries at most one Value variant, chosen from its declared data
// type rather than inferred from content; a nil Value means the question has
// not been answered.
package answer

// Package spacing contains whitespace placement rules for single tokens.
//
// The rules share the classifier and evaluator from pkg/spacing and only
// differ in the token they match, the constructs they skip, and the
// message they report.
package spacing

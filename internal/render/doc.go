// Package render composes stat cards, badges and error artifacts as svg
// document trees. Composition is pure: the same record, presentation,
// options and clock always produce the same tree.
package render

// Package svg holds the small document tree the composer builds and the
// encoder that turns it into SVG markup. The rasterizer walks the same tree,
// so card geometry is defined once.
package svg

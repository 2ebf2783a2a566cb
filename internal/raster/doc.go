// Package raster draws svg document trees into PNG bitmaps with gg. It owns
// the font set used for drawing and exposes a glyph-accurate text measurer
// so badge geometry matches the pixels that are produced.
package raster

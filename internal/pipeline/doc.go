// Package pipeline orchestrates a render request end to end: artifact cache
// lookup, stats cache lookup, a single deduplicated provider fetch on miss,
// composition into an SVG document and optional rasterization. It also
// exposes the Fiber handlers for the card, badge and meta routes.
package pipeline

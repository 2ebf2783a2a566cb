// Package media fetches remote icons and avatars and turns them into data
// URIs the composer can embed. When the caller is going to rasterize the
// card, formats the rasterizer cannot decode natively are transcoded to PNG.
package media

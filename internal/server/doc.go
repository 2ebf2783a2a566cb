// Package server hosts the Fiber HTTP service, the request middleware chain
// and the platform registry that maps configured platforms onto the card,
// badge and meta routes. Middleware stamps every request with an id and
// decides whether the client should receive a PNG (known preview crawlers,
// or an explicit ?format=image|png) instead of SVG. Rendering itself lives in
// the pipeline package, which plugs in through RenderHandler.
package server

// Package cache holds the process-wide in-memory store shared by every render.
// Entries carry their write timestamp so callers can report how old a value is;
// expiry is evaluated lazily on read and the store is bounded by an LRU policy.
// Keys are opaque to the store: callers build them with Key so that badge,
// card and stats entries for the same entity never collide.
package cache

// Package upstream contains the plumbing every platform provider shares: the
// HTTP client with per-platform rate limiting and circuit breaking, the
// request deduplicator, the bounded fan-out helper and the FetchError/Result
// types that let callers degrade gracefully on secondary fetch failures.
package upstream

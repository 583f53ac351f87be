// Package resolve performs DNS lookups and reduces each one to a single
// terminal Outcome. A session (UDP/TCP client or DNS-over-HTTPS client) is
// constructed once per batch and shared by all lookups in that batch.
package resolve

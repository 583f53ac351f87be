// Package testutil provides shared test helpers.
package testutil

import (
	"context"
	"io"
	"log/slog"
	"net"
	"sync/atomic"

	"github.com/dangledns/dangler/internal/resolve"
)

// StubResolver implements resolve.Resolver for testing. LookupFn supplies the
// outcome per domain; when nil every lookup resolves. Calls counts lookups
// and is safe for concurrent use.
type StubResolver struct {
	LookupFn func(ctx context.Context, domain string) resolve.Outcome

	calls atomic.Int64
}

var _ resolve.Resolver = (*StubResolver)(nil)

// Lookup implements resolve.Resolver.
func (s *StubResolver) Lookup(ctx context.Context, domain string) resolve.Outcome {
	s.calls.Add(1)
	if s.LookupFn != nil {
		return s.LookupFn(ctx, domain)
	}
	return resolve.Resolved([]net.IP{net.ParseIP("192.0.2.1")})
}

// Calls returns how many lookups the stub has served.
func (s *StubResolver) Calls() int64 {
	return s.calls.Load()
}

// NopLogger returns a logger that discards all output.
func NopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

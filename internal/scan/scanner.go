package scan

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/dangledns/dangler/internal/resolve"
)

// Mode selects how a batch is resolved.
type Mode int

const (
	// Sequential resolves one domain at a time, in input order.
	Sequential Mode = iota
	// Concurrent launches the whole batch at once and joins at the end.
	Concurrent
)

func (m Mode) String() string {
	switch m {
	case Sequential:
		return "sequential"
	case Concurrent:
		return "concurrent"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Options configure one Run invocation.
type Options struct {
	Mode Mode
	// NameServer is the resolver endpoint, an IP address literal. Empty
	// selects the system resolvers.
	NameServer string
	// DoH switches resolution to DNS-over-HTTPS against DoHURL (or the
	// default endpoint when DoHURL is empty). NameServer is ignored then.
	DoH    bool
	DoHURL string
}

// Run is the scan entry point: it constructs one resolver session for the
// batch and classifies every domain. Session construction failures are fatal
// and happen before any lookup; per-domain failures never are, they become
// verdicts.
func Run(ctx context.Context, domains []string, opts Options, logger *slog.Logger) (Report, error) {
	session, err := newSession(opts, logger)
	if err != nil {
		return nil, fmt.Errorf("creating resolver session: %w", err)
	}
	return NewScanner(session, logger).Run(ctx, domains, opts.Mode), nil
}

func newSession(opts Options, logger *slog.Logger) (resolve.Resolver, error) {
	if opts.DoH {
		return resolve.NewDoH(opts.DoHURL, logger)
	}
	return resolve.New(opts.NameServer, logger)
}

// Scanner drives lookups for a batch against one resolver session.
type Scanner struct {
	resolver resolve.Resolver
	logger   *slog.Logger
}

// NewScanner returns a scanner bound to the given resolver session.
func NewScanner(r resolve.Resolver, logger *slog.Logger) *Scanner {
	return &Scanner{resolver: r, logger: logger}
}

// Run resolves and classifies every domain in the batch. The report holds one
// entry per distinct input domain; duplicates collapse, last write wins. An
// empty batch yields an empty report without touching the resolver.
func (s *Scanner) Run(ctx context.Context, domains []string, mode Mode) Report {
	s.logger.Debug("starting scan", "domains", len(domains), "mode", mode.String())
	if mode == Concurrent {
		return s.runConcurrent(ctx, domains)
	}
	return s.runSequential(ctx, domains)
}

// runSequential blocks on each lookup before starting the next. A failed
// lookup is data, not an abort: the loop always visits every domain.
func (s *Scanner) runSequential(ctx context.Context, domains []string) Report {
	report := make(Report, len(domains))
	for _, domain := range domains {
		report[domain] = Classify(s.resolver.Lookup(ctx, domain))
	}
	return report
}

// runConcurrent launches every lookup at once and waits for all of them.
// Each goroutine writes only its own slot, so the fold into the report after
// the join is the only aggregation step and runs single-threaded.
func (s *Scanner) runConcurrent(ctx context.Context, domains []string) Report {
	outcomes := make([]resolve.Outcome, len(domains))
	g, ctx := errgroup.WithContext(ctx)
	for i, domain := range domains {
		i, domain := i, domain
		g.Go(func() error {
			outcomes[i] = s.resolver.Lookup(ctx, domain)
			return nil
		})
	}
	// Lookups never return errors, so the only purpose of Wait is the join.
	_ = g.Wait()

	report := make(Report, len(domains))
	for i, domain := range domains {
		report[domain] = Classify(outcomes[i])
	}
	return report
}

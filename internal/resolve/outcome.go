package resolve

import (
	"context"
	"net"
)

// FailureKind describes why a lookup produced no address records.
type FailureKind int

const (
	// FailureNone means the lookup returned at least one address record.
	FailureNone FailureKind = iota
	// FailureTransport covers connectivity errors: refused connections,
	// unreachable networks, closed sockets.
	FailureTransport
	// FailureProtocol covers malformed or undecodable DNS responses.
	FailureProtocol
	// FailureTimeout means the lookup did not complete within the session's
	// per-query deadline.
	FailureTimeout
	// FailureMessage covers query-construction failures, e.g. a name that
	// cannot be encoded as a DNS question.
	FailureMessage
	// FailureNameNotFound means the server answered but the response carried
	// no usable address records. The response code is preserved in
	// Outcome.Rcode.
	FailureNameNotFound
)

func (k FailureKind) String() string {
	switch k {
	case FailureNone:
		return "resolved"
	case FailureTransport:
		return "transport error"
	case FailureProtocol:
		return "protocol error"
	case FailureTimeout:
		return "timeout"
	case FailureMessage:
		return "message error"
	case FailureNameNotFound:
		return "name not found"
	}
	return "unknown"
}

// Outcome is the terminal result of a single lookup. Kind FailureNone means
// the name resolved; any other kind describes the failure. Rcode is only
// meaningful for FailureNameNotFound, Addrs only for FailureNone.
type Outcome struct {
	Kind  FailureKind
	Rcode int
	Addrs []net.IP
}

// Resolved returns a successful outcome carrying the resolved addresses.
func Resolved(addrs []net.IP) Outcome {
	return Outcome{Kind: FailureNone, Addrs: addrs}
}

// Failed returns a failure outcome of the given kind.
func Failed(kind FailureKind) Outcome {
	return Outcome{Kind: kind}
}

// NameNotFound returns a name-not-found outcome carrying the DNS response code.
func NameNotFound(rcode int) Outcome {
	return Outcome{Kind: FailureNameNotFound, Rcode: rcode}
}

// Resolver is the resolution collaborator consumed by the scan orchestrator.
// A lookup never returns an error: every way a lookup can end is data,
// captured in the Outcome.
type Resolver interface {
	Lookup(ctx context.Context, domain string) Outcome
}

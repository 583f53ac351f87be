package scan

import (
	"github.com/miekg/dns"

	"github.com/dangledns/dangler/internal/resolve"
)

// Classify maps a resolution outcome onto a verdict. It is total and pure:
// every outcome produces exactly one of the three verdicts, and the same
// outcome always produces the same verdict.
//
// The policy: a SERVFAIL answer to a name that resolves no records is the one
// signal that the zone delegates to infrastructure that no longer answers for
// it. Protocol-level garbage is surfaced as LookupError. Everything else,
// including transport failures and timeouts, is inconclusive and classifies
// as Safe rather than as a finding.
func Classify(out resolve.Outcome) Verdict {
	switch out.Kind {
	case resolve.FailureNone:
		return Safe
	case resolve.FailureTransport:
		return Safe
	case resolve.FailureProtocol:
		return LookupError
	case resolve.FailureTimeout:
		return Safe
	case resolve.FailureMessage:
		return Safe
	case resolve.FailureNameNotFound:
		return classifyRcode(out.Rcode)
	}
	return Safe
}

// classifyRcode decides the verdict for a name-not-found outcome. The switch
// enumerates every response code the dns package names so that a new code
// forces an explicit decision here.
func classifyRcode(rcode int) Verdict {
	switch rcode {
	case dns.RcodeServerFailure:
		return MaybeVulnerable
	case dns.RcodeSuccess,
		dns.RcodeFormatError,
		dns.RcodeNameError,
		dns.RcodeNotImplemented,
		dns.RcodeRefused,
		dns.RcodeYXDomain,
		dns.RcodeYXRrset,
		dns.RcodeNXRrset,
		dns.RcodeNotAuth,
		dns.RcodeNotZone,
		dns.RcodeBadVers, // RcodeBadSig shares this value
		dns.RcodeBadKey,
		dns.RcodeBadTime,
		dns.RcodeBadMode,
		dns.RcodeBadName,
		dns.RcodeBadAlg,
		dns.RcodeBadTrunc,
		dns.RcodeBadCookie:
		return Safe
	}
	// Unrecognized numeric codes are not a takeover signal.
	return Safe
}

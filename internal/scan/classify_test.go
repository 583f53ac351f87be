package scan_test

import (
	"net"
	"testing"

	"github.com/miekg/dns"
	"github.com/stretchr/testify/assert"

	"github.com/dangledns/dangler/internal/resolve"
	"github.com/dangledns/dangler/internal/scan"
)

func TestClassify_OutcomeKinds(t *testing.T) {
	tests := []struct {
		name    string
		outcome resolve.Outcome
		want    scan.Verdict
	}{
		{"resolved", resolve.Resolved([]net.IP{net.ParseIP("192.0.2.1")}), scan.Safe},
		{"transport failure", resolve.Failed(resolve.FailureTransport), scan.Safe},
		{"protocol failure", resolve.Failed(resolve.FailureProtocol), scan.LookupError},
		{"timeout", resolve.Failed(resolve.FailureTimeout), scan.Safe},
		{"message failure", resolve.Failed(resolve.FailureMessage), scan.Safe},
		{"name not found with servfail", resolve.NameNotFound(dns.RcodeServerFailure), scan.MaybeVulnerable},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, scan.Classify(tc.outcome))
		})
	}
}

// TestClassify_RcodeMatrix walks the complete response code enumeration.
// ServerFailure is the single code that signals a dangling delegation; every
// other code, named or numeric, classifies as Safe.
func TestClassify_RcodeMatrix(t *testing.T) {
	tests := []struct {
		name  string
		rcode int
		want  scan.Verdict
	}{
		{"NoError", dns.RcodeSuccess, scan.Safe},
		{"FormErr", dns.RcodeFormatError, scan.Safe},
		{"ServFail", dns.RcodeServerFailure, scan.MaybeVulnerable},
		{"NXDomain", dns.RcodeNameError, scan.Safe},
		{"NotImp", dns.RcodeNotImplemented, scan.Safe},
		{"Refused", dns.RcodeRefused, scan.Safe},
		{"YXDomain", dns.RcodeYXDomain, scan.Safe},
		{"YXRRSet", dns.RcodeYXRrset, scan.Safe},
		{"NXRRSet", dns.RcodeNXRrset, scan.Safe},
		{"NotAuth", dns.RcodeNotAuth, scan.Safe},
		{"NotZone", dns.RcodeNotZone, scan.Safe},
		{"BadVers/BadSig", dns.RcodeBadVers, scan.Safe},
		{"BadKey", dns.RcodeBadKey, scan.Safe},
		{"BadTime", dns.RcodeBadTime, scan.Safe},
		{"BadMode", dns.RcodeBadMode, scan.Safe},
		{"BadName", dns.RcodeBadName, scan.Safe},
		{"BadAlg", dns.RcodeBadAlg, scan.Safe},
		{"BadTrunc", dns.RcodeBadTrunc, scan.Safe},
		{"BadCookie", dns.RcodeBadCookie, scan.Safe},
		{"unrecognized numeric", 4095, scan.Safe},
		{"negative numeric", -1, scan.Safe},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, scan.Classify(resolve.NameNotFound(tc.rcode)))
		})
	}
}

func TestClassify_Idempotent(t *testing.T) {
	outcomes := []resolve.Outcome{
		resolve.Resolved(nil),
		resolve.Failed(resolve.FailureProtocol),
		resolve.NameNotFound(dns.RcodeServerFailure),
		resolve.NameNotFound(dns.RcodeNameError),
	}
	for _, out := range outcomes {
		assert.Equal(t, scan.Classify(out), scan.Classify(out))
	}
}

package scan

import "fmt"

// Verdict is the security classification of a single domain. Verdicts are
// compared only for equality; there is no ordering between them.
type Verdict int

const (
	// Safe means the resolution outcome carries no takeover signal.
	Safe Verdict = iota
	// MaybeVulnerable means the authoritative zone points at infrastructure
	// that no longer answers for the name, the hallmark of a dangling
	// CNAME or delegation.
	MaybeVulnerable
	// LookupError means the lookup itself misbehaved at the protocol level
	// and deserves operator attention, not a security finding.
	LookupError
)

func (v Verdict) String() string {
	switch v {
	case Safe:
		return "Safe"
	case MaybeVulnerable:
		return "MaybeVulnerable"
	case LookupError:
		return "LookupError"
	}
	return fmt.Sprintf("Verdict(%d)", int(v))
}

// MarshalJSON serializes the verdict as its bare name.
func (v Verdict) MarshalJSON() ([]byte, error) {
	return []byte(`"` + v.String() + `"`), nil
}

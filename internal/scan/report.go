package scan

import (
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"

	"github.com/dangledns/dangler/internal/output"
)

// Verdict colors for terminal output. MaybeVulnerable is the attention color;
// LookupError is a warning, not a finding. Coloring never affects verdicts.
var verdictColors = map[Verdict]*color.Color{
	Safe:            color.New(color.FgGreen),
	MaybeVulnerable: color.New(color.FgRed),
	LookupError:     color.New(color.FgYellow),
}

// Report maps each distinct input domain to its verdict. It is built once per
// scan and not mutated afterwards. Iteration helpers sort by domain so output
// is deterministic regardless of completion order.
type Report map[string]Verdict

// Domains returns the report's domains sorted lexicographically.
func (r Report) Domains() []string {
	domains := make([]string, 0, len(r))
	for d := range r {
		domains = append(domains, d)
	}
	sort.Strings(domains)
	return domains
}

// IsEmpty reports whether the report holds no entries.
func (r Report) IsEmpty() bool { return len(r) == 0 }

// WriteText writes one "domain : Verdict" line per domain, colorized when
// color output is enabled.
func (r Report) WriteText(w io.Writer) error {
	for _, domain := range r.Domains() {
		if _, err := fmt.Fprintf(w, "%s : ", domain); err != nil {
			return err
		}
		if _, err := verdictColors[r[domain]].Fprintln(w, r[domain].String()); err != nil {
			return err
		}
	}
	return nil
}

// WritePlain writes one "domain verdict" line per domain, for piping.
func (r Report) WritePlain(w io.Writer) error {
	for _, domain := range r.Domains() {
		if _, err := fmt.Fprintf(w, "%s %s\n", domain, r[domain]); err != nil {
			return err
		}
	}
	return nil
}

// WriteTable renders the report as an ASCII table sorted by domain.
func (r Report) WriteTable(w io.Writer) error {
	rows := make([][]string, 0, len(r))
	for _, domain := range r.Domains() {
		rows = append(rows, []string{domain, r[domain].String()})
	}
	table := output.NewWrappingTable(w, 20, 22)
	table.Header([]string{"Domain", "Verdict"})
	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}

package render

import (
	"fmt"
	"strings"

	"github.com/dkoosis/termbg/pkg/report"
)

// Plain renders reports as "key: value" lines with zero ANSI codes, for pipes,
// scripts and LLM consumption.
type Plain struct{}

// NewPlain creates a plain text renderer.
func NewPlain() *Plain {
	return &Plain{}
}

// Render formats the report. A failed probe renders as its outcome name,
// followed by the error text when there is one.
func (p *Plain) Render(r report.Report) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: %s\n", labelFamily, r.Family)
	fmt.Fprintf(&sb, "%s: %s\n", labelLatency, plainValue(r.LatencyProbe, r.Latency.String()))
	fmt.Fprintf(&sb, "%s: %s\n", labelColor, plainValue(r.ColorProbe, r.Color.String()+" "+r.Color.Hex()))
	fmt.Fprintf(&sb, "%s: %s\n", labelTheme, plainValue(r.ThemeProbe, r.Theme.String()))
	return sb.String()
}

func plainValue(p report.Probe, value string) string {
	if p.OK() {
		return value
	}
	if p.Err != nil {
		return p.Outcome.String() + " (" + p.Err.Error() + ")"
	}
	return p.Outcome.String()
}

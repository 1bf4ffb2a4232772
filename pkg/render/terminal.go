package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dkoosis/termbg/pkg/report"
	"github.com/dkoosis/termbg/pkg/termbg"
)

// Terminal renders reports as styled terminal output via lipgloss.
type Terminal struct {
	theme Theme
	width int
	title cases.Caser
}

// NewTerminal creates a terminal renderer with the given theme.
func NewTerminal(theme Theme, width int) *Terminal {
	if width <= 0 {
		width = 80
	}
	return &Terminal{theme: theme, width: width, title: cases.Title(language.English)}
}

// Render formats the report as an aligned list of probe results.
func (t *Terminal) Render(r report.Report) string {
	labels := []string{labelFamily, labelLatency, labelColor, labelTheme}
	labelWidth := 0
	for _, l := range labels {
		labelWidth = max(labelWidth, runewidth.StringWidth(l))
	}
	// Room left for an error message after indent, label, gap and icon.
	msgWidth := max(t.width-labelWidth-8, 20)

	values := []string{
		t.theme.Primary.Render(r.Family.String()),
		t.result(r.LatencyProbe, r.Latency.String(), msgWidth),
		t.result(r.ColorProbe, t.color(r.Color), msgWidth),
		t.result(r.ThemeProbe, t.title.String(r.Theme.String()), msgWidth),
	}

	var sb strings.Builder
	sb.WriteString(t.theme.Bold.Render("Terminal background"))
	sb.WriteString("\n")
	for i, l := range labels {
		sb.WriteString("  ")
		sb.WriteString(t.theme.Muted.Render(runewidth.FillRight(l, labelWidth)))
		sb.WriteString("  ")
		sb.WriteString(values[i])
		sb.WriteString("\n")
	}
	return sb.String()
}

func (t *Terminal) result(p report.Probe, value string, msgWidth int) string {
	if p.OK() {
		return t.theme.Success.Render(t.theme.Icons.Pass) + " " + value
	}
	msg := p.Outcome.String()
	if p.Err != nil && p.Outcome != termbg.OutcomeUnsupported {
		msg += ": " + p.Err.Error()
	}
	return t.theme.Error.Render(t.theme.Icons.Fail + " " + runewidth.Truncate(msg, msgWidth, "…"))
}

func (t *Terminal) color(c termbg.RGB) string {
	s := t.theme.Primary.Render(c.String()) + "  " + c.Hex()
	if t.theme.Swatches {
		s += "  " + lipgloss.NewStyle().Background(lipgloss.Color(c.Hex())).Render("      ")
	}
	return s
}

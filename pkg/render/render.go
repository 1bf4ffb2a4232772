// Package render formats probe reports for terminals, pipes and automation.
package render

import "github.com/dkoosis/termbg/pkg/report"

// Renderer converts a report to formatted output.
type Renderer interface {
	Render(r report.Report) string
}

// Row labels, shared by all renderers.
const (
	labelFamily  = "family"
	labelLatency = "latency"
	labelColor   = "color"
	labelTheme   = "theme"
)

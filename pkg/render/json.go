package render

import (
	"encoding/json"

	"github.com/dkoosis/termbg/pkg/report"
)

// JSON renders reports as structured JSON for automation.
type JSON struct{}

// NewJSON creates a JSON renderer.
func NewJSON() *JSON {
	return &JSON{}
}

// jsonOutput is the top-level JSON structure.
type jsonOutput struct {
	Version string    `json:"version"`
	Family  string    `json:"family"`
	Latency jsonProbe `json:"latency"`
	Color   jsonProbe `json:"color"`
	Theme   jsonProbe `json:"theme"`
}

type jsonProbe struct {
	Outcome string      `json:"outcome"`
	Value   interface{} `json:"value,omitempty"`
	Error   string      `json:"error,omitempty"`
	TookMS  float64     `json:"took_ms"`
}

type jsonColor struct {
	R   uint16 `json:"r"`
	G   uint16 `json:"g"`
	B   uint16 `json:"b"`
	Hex string `json:"hex"`
}

// Render formats the report as indented JSON.
func (j *JSON) Render(r report.Report) string {
	out := jsonOutput{
		Version: "1.0",
		Family:  r.Family.String(),
		Latency: newJSONProbe(r.LatencyProbe, map[string]float64{"ms": msOf(r.Latency.Seconds())}),
		Color: newJSONProbe(r.ColorProbe, jsonColor{
			R: r.Color.R, G: r.Color.G, B: r.Color.B, Hex: r.Color.Hex(),
		}),
		Theme: newJSONProbe(r.ThemeProbe, r.Theme.String()),
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		errJSON, _ := json.Marshal(map[string]string{"error": err.Error()})
		return string(errJSON)
	}
	return string(data) + "\n"
}

func newJSONProbe(p report.Probe, value interface{}) jsonProbe {
	jp := jsonProbe{Outcome: p.Outcome.String(), TookMS: msOf(p.Took.Seconds())}
	if p.OK() {
		jp.Value = value
	} else if p.Err != nil {
		jp.Error = p.Err.Error()
	}
	return jp
}

func msOf(seconds float64) float64 {
	return seconds * 1000
}

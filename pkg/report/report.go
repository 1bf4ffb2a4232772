// Package report runs a complete probe session against a terminal and records
// the outcome of each probe.
package report

import (
	"time"

	"github.com/dkoosis/termbg/pkg/termbg"
)

// Prober is the subset of *termbg.Prober a session needs.
type Prober interface {
	Family() termbg.Family
	Color(timeout time.Duration) (termbg.RGB, error)
	Latency(timeout time.Duration) (time.Duration, error)
}

// Probe records how one probe ended.
type Probe struct {
	Outcome termbg.Outcome
	Err     error
	// Took is the wall time the probe call took, including any fallback.
	Took time.Duration
}

// OK reports whether the probe succeeded.
func (p Probe) OK() bool { return p.Outcome == termbg.OutcomeSuccess }

// Report is the result of a session. Value fields are meaningful only when
// the matching probe succeeded.
type Report struct {
	Family       termbg.Family
	LatencyProbe Probe
	Latency      time.Duration
	ColorProbe   Probe
	Color        termbg.RGB
	ThemeProbe   Probe
	Theme        termbg.Theme
}

// Timeouts bounds the two interactive probes.
type Timeouts struct {
	Color   time.Duration
	Latency time.Duration
}

// Collect runs the latency probe, then the color probe, and classifies the
// color. The theme is derived from the color probe rather than probing a
// second time, so its outcome is the color probe's outcome.
func Collect(p Prober, t Timeouts) Report {
	r := Report{Family: p.Family()}

	start := time.Now()
	latency, err := p.Latency(t.Latency)
	r.LatencyProbe = probeOf(err, time.Since(start))
	if err == nil {
		r.Latency = latency
	}

	start = time.Now()
	c, err := p.Color(t.Color)
	r.ColorProbe = probeOf(err, time.Since(start))
	r.ThemeProbe = r.ColorProbe
	if err == nil {
		r.Color = c
		r.Theme = termbg.Classify(c)
	}
	return r
}

func probeOf(err error, took time.Duration) Probe {
	return Probe{Outcome: termbg.OutcomeOf(err), Err: err, Took: took}
}

// ExitCode is 0 when every probe succeeded and 1 otherwise.
func (r Report) ExitCode() int {
	if r.LatencyProbe.OK() && r.ColorProbe.OK() {
		return 0
	}
	return 1
}

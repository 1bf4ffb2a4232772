package termbg

import (
	"log/slog"
	"runtime"
	"time"
)

// Prober runs background color and latency probes against a terminal.
//
// A Prober holds no per-probe state; every call detects the family again and
// sends a fresh query. It must not be used from several goroutines against
// the same terminal at once.
type Prober struct {
	env    Env
	goos   string
	dev    Device
	log    *slog.Logger
	native func() (RGB, error)
}

// Option configures a Prober.
type Option func(*Prober)

// WithEnv replaces the process environment used for family detection and the
// COLORFGBG fallback.
func WithEnv(env Env) Option {
	return func(p *Prober) { p.env = env }
}

// WithGOOS overrides the platform used for family detection.
func WithGOOS(goos string) Option {
	return func(p *Prober) { p.goos = goos }
}

// WithDevice replaces the terminal the probes talk to.
func WithDevice(dev Device) Option {
	return func(p *Prober) { p.dev = dev }
}

// WithLogger sets the logger for probe tracing. Logs must not go to the
// probed terminal: it is in raw mode while a probe runs.
func WithLogger(l *slog.Logger) Option {
	return func(p *Prober) {
		if l != nil {
			p.log = l
		}
	}
}

// New returns a Prober for the process terminal unless overridden by opts.
func New(opts ...Option) *Prober {
	p := &Prober{
		env:    OSEnv{},
		goos:   runtime.GOOS,
		dev:    StdioDevice(),
		log:    slog.New(slog.DiscardHandler),
		native: nativeBackground,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Family detects the terminal family from the prober's environment.
func (p *Prober) Family() Family {
	return DetectFamily(p.env, p.goos)
}

// Color returns the terminal background color. If the terminal cannot be
// asked or does not answer properly, COLORFGBG is tried; when that fails as
// well the error of the terminal probe is returned.
func (p *Prober) Color(timeout time.Duration) (RGB, error) {
	f := p.Family()
	log := p.log.With("family", f.String(), "purpose", purposeColor.String())

	c, err := p.sourceFor(f).background(timeout)
	if err == nil {
		log.Debug("background detected", "state", "decoded", "color", c.String())
		return c, nil
	}
	log.Debug("probe failed", "state", stateOf(err), "error", err)

	fallback, ferr := colorFromEnv(p.env)
	if ferr == nil {
		log.Debug("using COLORFGBG fallback", "color", fallback.String())
		return fallback, nil
	}
	log.Debug("COLORFGBG fallback failed", "error", ferr)
	return RGB{}, err
}

// Latency measures the time between sending a device status request and
// receiving the reply. Emacs and the classic Windows console are not probed
// and report zero.
func (p *Prober) Latency(timeout time.Duration) (time.Duration, error) {
	f := p.Family()
	switch f {
	case FamilyEmacs, FamilyWindowsConsole:
		return 0, nil
	}
	_, elapsed, err := p.exchange(f, purposeLatency, timeout)
	if err != nil {
		return 0, err
	}
	return elapsed, nil
}

// Theme classifies the background color returned by Color.
func (p *Prober) Theme(timeout time.Duration) (Theme, error) {
	c, err := p.Color(timeout)
	if err != nil {
		return ThemeDark, err
	}
	return Classify(c), nil
}

// exchange sends one query and reads its reply with the terminal in raw
// mode. The previous mode is restored before exchange returns, whatever the
// outcome; a failure to restore is reported only when nothing else failed.
// elapsed runs from the query flush to receipt of the terminator.
func (p *Prober) exchange(f Family, pur purpose, timeout time.Duration) (payload []byte, elapsed time.Duration, err error) {
	log := p.log.With("family", f.String(), "purpose", pur.String())

	if !p.dev.Interactive() {
		log.Debug("probe skipped", "state", "unsupported", "reason", "not a terminal")
		return nil, 0, ErrUnsupported
	}

	guard, err := acquireRaw(p.dev)
	if err != nil {
		return nil, 0, err
	}
	defer func() {
		if rerr := guard.Release(); rerr != nil && err == nil {
			payload, elapsed, err = nil, 0, rerr
		}
	}()

	in, err := p.dev.OpenInput()
	if err != nil {
		return nil, 0, &IOError{Op: "open terminal input", Err: err}
	}
	defer in.Close()

	if err := sendQuery(p.dev.Output(), querySequence(f, pur)); err != nil {
		return nil, 0, err
	}
	start := time.Now()
	deadline := start.Add(timeout)
	log.Debug("query sent", "state", "awaiting-response", "timeout", timeout)

	if pur == purposeLatency {
		err = readStatusReply(in, deadline)
	} else {
		payload, err = readColorReply(in, deadline)
	}
	elapsed = time.Since(start)
	if err != nil {
		log.Debug("no usable reply", "state", stateOf(err), "elapsed", elapsed, "error", err)
		return nil, 0, err
	}
	log.Debug("reply received", "state", "decoded", "elapsed", elapsed, "bytes", len(payload))
	return payload, elapsed, nil
}

// stateOf names the terminal state a failed probe ended in.
func stateOf(err error) string {
	switch OutcomeOf(err) {
	case OutcomeTimeout:
		return "timed-out"
	case OutcomeUnsupported:
		return "unsupported"
	default:
		return "failed"
	}
}

// Background probes the process terminal. See Prober.Color.
func Background(timeout time.Duration) (RGB, error) {
	return New().Color(timeout)
}

// Latency probes the process terminal. See Prober.Latency.
func Latency(timeout time.Duration) (time.Duration, error) {
	return New().Latency(timeout)
}

// ThemeOf probes the process terminal. See Prober.Theme.
func ThemeOf(timeout time.Duration) (Theme, error) {
	return New().Theme(timeout)
}

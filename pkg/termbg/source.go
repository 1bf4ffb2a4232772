package termbg

import "time"

// backgroundSource is one way of finding out the background color.
type backgroundSource interface {
	background(timeout time.Duration) (RGB, error)
}

// escapeSequenceProbe asks the terminal with an OSC 11 query.
type escapeSequenceProbe struct {
	p      *Prober
	family Family
}

func (s escapeSequenceProbe) background(timeout time.Duration) (RGB, error) {
	payload, _, err := s.p.exchange(s.family, purposeColor, timeout)
	if err != nil {
		return RGB{}, err
	}
	return decodeX11Color(string(payload))
}

// nativeAttributeQuery asks the console API. It never blocks on the terminal,
// so the timeout is unused.
type nativeAttributeQuery struct {
	query func() (RGB, error)
}

func (s nativeAttributeQuery) background(time.Duration) (RGB, error) {
	return s.query()
}

// knownUnsupported is for terminals that never answer.
type knownUnsupported struct{}

func (knownUnsupported) background(time.Duration) (RGB, error) {
	return RGB{}, ErrUnsupported
}

func (p *Prober) sourceFor(f Family) backgroundSource {
	switch f {
	case FamilyEmacs:
		return knownUnsupported{}
	case FamilyWindowsConsole:
		return nativeAttributeQuery{query: p.native}
	default:
		return escapeSequenceProbe{p: p, family: f}
	}
}

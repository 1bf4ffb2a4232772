package termbg

import (
	"bufio"
	"io"
)

// purpose is what a probe asks the terminal for.
type purpose int

const (
	purposeColor   purpose = iota // OSC 11 background color query
	purposeLatency                // DSR device status report
)

func (p purpose) String() string {
	if p == purposeLatency {
		return "latency"
	}
	return "color"
}

// Request sequences. The trailing ETX on the multiplexer variants is what
// real tmux and screen setups have been observed to accept; keep it.
const (
	queryXterm   = "\x1b]11;?\x1b\\"
	queryTmux    = "\x1bPtmux;\x1b\x1b]11;?\x07\x1b\\\x03"
	queryScreen  = "\x1bP\x1b]11;?\x07\x1b\\\x03"
	queryLatency = "\x1b[5n"
)

// querySequence returns the exact bytes to send for family f.
func querySequence(f Family, p purpose) string {
	if p == purposeLatency {
		return queryLatency
	}
	switch f {
	case FamilyTmux:
		return queryTmux
	case FamilyScreen:
		return queryScreen
	default:
		return queryXterm
	}
}

// sendQuery writes seq to w in a single flush. It does not wait for a reply.
func sendQuery(w io.Writer, seq string) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(seq); err != nil {
		return &IOError{Op: "write query", Err: err}
	}
	if err := bw.Flush(); err != nil {
		return &IOError{Op: "flush query", Err: err}
	}
	return nil
}

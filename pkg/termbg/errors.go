package termbg

import (
	"errors"
	"fmt"
)

var (
	// ErrTimeout means the terminal did not finish its reply before the
	// deadline. Callers may retry with a longer timeout.
	ErrTimeout = errors.New("termbg: timed out waiting for terminal reply")

	// ErrUnsupported means the terminal or environment cannot answer the
	// query at all.
	ErrUnsupported = errors.New("termbg: unsupported terminal")
)

// MalformedError reports a reply or environment value that could not be
// parsed. Raw holds the offending text.
type MalformedError struct {
	Raw    string
	Reason string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("termbg: malformed response %q: %s", e.Raw, e.Reason)
}

// IOError wraps a failure of the underlying terminal streams or mode calls.
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("termbg: %s: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// Outcome classifies the result of a single probe.
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeTimeout
	OutcomeUnsupported
	OutcomeMalformed
	OutcomeIOFailure
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeTimeout:
		return "timeout"
	case OutcomeUnsupported:
		return "unsupported"
	case OutcomeMalformed:
		return "malformed"
	case OutcomeIOFailure:
		return "io-failure"
	default:
		return "unknown"
	}
}

// OutcomeOf maps a probe error to its Outcome. A nil error is a success and
// any error this package does not recognise counts as an I/O failure.
func OutcomeOf(err error) Outcome {
	var malformed *MalformedError
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, ErrTimeout):
		return OutcomeTimeout
	case errors.Is(err, ErrUnsupported):
		return OutcomeUnsupported
	case errors.As(err, &malformed):
		return OutcomeMalformed
	default:
		return OutcomeIOFailure
	}
}

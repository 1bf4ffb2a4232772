package termbg

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/cancelreader"
	"golang.org/x/term"
)

// Input is a terminal input stream whose pending Read can be aborted.
// cancelreader.CancelReader satisfies it.
type Input interface {
	io.Reader
	// Cancel aborts a blocked Read, which then returns an error. It reports
	// whether cancellation is supported.
	Cancel() bool
	Close() error
}

// Device is the terminal a Prober talks to.
type Device interface {
	// Interactive reports whether stdin, stdout and stderr are all attached
	// to a terminal.
	Interactive() bool
	// MakeRaw switches the input to raw mode and returns a function that
	// restores the previous mode.
	MakeRaw() (restore func() error, err error)
	// OpenInput returns a cancelable reader over the terminal input. The
	// caller closes it.
	OpenInput() (Input, error)
	// Output is where queries are written.
	Output() io.Writer
}

type stdioDevice struct {
	stdin, stdout, stderr *os.File
}

// StdioDevice is the terminal attached to the process's standard streams.
// Queries go to stderr so they still reach the terminal when stdout is
// redirected.
func StdioDevice() Device {
	return &stdioDevice{stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr}
}

func (d *stdioDevice) Interactive() bool {
	return isTTY(d.stdin) && isTTY(d.stdout) && isTTY(d.stderr)
}

func isTTY(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func (d *stdioDevice) MakeRaw() (func() error, error) {
	fd := int(d.stdin.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	return func() error { return term.Restore(fd, state) }, nil
}

func (d *stdioDevice) OpenInput() (Input, error) {
	r, err := cancelreader.NewReader(d.stdin)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (d *stdioDevice) Output() io.Writer {
	return d.stderr
}

package termbg

import (
	"bytes"
	"io"
	"time"

	"github.com/muesli/cancelreader"
)

// fakeDevice is a scripted terminal. The reply is fed through a pipe once the
// probe opens the input; with hold set the input stays open afterwards, like a
// terminal that ignores the query.
type fakeDevice struct {
	interactive bool
	reply       string
	byteDelay   time.Duration
	hold        bool
	makeRawErr  error
	restoreErr  error

	out       bytes.Buffer
	raw       bool
	makeRaws  int
	restores  int
	openCount int
}

func newFakeDevice(reply string) *fakeDevice {
	return &fakeDevice{interactive: true, reply: reply}
}

func (d *fakeDevice) Interactive() bool { return d.interactive }

func (d *fakeDevice) MakeRaw() (func() error, error) {
	d.makeRaws++
	if d.makeRawErr != nil {
		return nil, d.makeRawErr
	}
	d.raw = true
	return func() error {
		d.restores++
		d.raw = false
		return d.restoreErr
	}, nil
}

func (d *fakeDevice) OpenInput() (Input, error) {
	d.openCount++
	pr, pw := io.Pipe()
	reply, delay, hold := d.reply, d.byteDelay, d.hold
	go func() {
		if delay > 0 {
			for i := 0; i < len(reply); i++ {
				time.Sleep(delay)
				if _, err := pw.Write([]byte{reply[i]}); err != nil {
					return
				}
			}
		} else if reply != "" {
			if _, err := pw.Write([]byte(reply)); err != nil {
				return
			}
		}
		if !hold {
			_ = pw.Close()
		}
	}()
	return &pipeInput{pr: pr}, nil
}

func (d *fakeDevice) Output() io.Writer { return &d.out }

type pipeInput struct {
	pr *io.PipeReader
}

func (p *pipeInput) Read(b []byte) (int, error) { return p.pr.Read(b) }

func (p *pipeInput) Cancel() bool {
	_ = p.pr.CloseWithError(cancelreader.ErrCanceled)
	return true
}

func (p *pipeInput) Close() error { return p.pr.Close() }

func newTestProber(dev Device, env MapEnv, goos string) *Prober {
	return New(WithDevice(dev), WithEnv(env), WithGOOS(goos))
}

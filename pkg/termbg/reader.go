package termbg

import (
	"errors"
	"io"
	"time"

	"github.com/muesli/cancelreader"
)

const (
	bel = 0x07
	esc = 0x1b

	// maxColorPayload bounds the bytes kept between ':' and the terminator.
	// A full-width reply is 14 bytes ("rrrr/gggg/bbbb").
	maxColorPayload = 64
)

type readResult struct {
	b   byte
	err error
}

// readByte reads a single byte from in, racing the read against deadline.
// The deadline is absolute: callers pass the same value for every byte of a
// reply. On timeout the pending read is cancelled and, when the input
// supports cancellation, readByte waits for the reading goroutine to finish
// before returning.
func readByte(in Input, deadline time.Time) (byte, error) {
	remaining := time.Until(deadline)
	if remaining <= 0 {
		return 0, ErrTimeout
	}

	done := make(chan readResult, 1)
	go func() {
		var buf [1]byte
		for {
			n, err := in.Read(buf[:])
			if n == 1 {
				done <- readResult{b: buf[0]}
				return
			}
			if err != nil {
				done <- readResult{err: err}
				return
			}
		}
	}()

	timer := time.NewTimer(remaining)
	defer timer.Stop()

	select {
	case r := <-done:
		if r.err != nil {
			return 0, readError(r.err)
		}
		return r.b, nil
	case <-timer.C:
		if in.Cancel() {
			<-done
		}
		return 0, ErrTimeout
	}
}

func readError(err error) error {
	switch {
	case errors.Is(err, cancelreader.ErrCanceled):
		return ErrTimeout
	case errors.Is(err, io.EOF):
		return &IOError{Op: "read reply", Err: io.ErrUnexpectedEOF}
	default:
		return &IOError{Op: "read reply", Err: err}
	}
}

// readColorReply reads an OSC 11 reply such as "ESC ] 11 ; rgb:1111/2222/3333 BEL"
// and returns the bytes after the first ':' up to the terminator. The
// terminator is either BEL or ESC followed by one more byte (the '\' of ST),
// which is consumed and discarded.
func readColorReply(in Input, deadline time.Time) ([]byte, error) {
	for {
		b, err := readByte(in, deadline)
		if err != nil {
			return nil, err
		}
		if b == ':' {
			break
		}
	}

	payload := make([]byte, 0, 16)
	for {
		b, err := readByte(in, deadline)
		if err != nil {
			return nil, err
		}
		switch b {
		case bel:
			return payload, nil
		case esc:
			if _, err := readByte(in, deadline); err != nil {
				return nil, err
			}
			return payload, nil
		}
		if len(payload) == maxColorPayload {
			return nil, &MalformedError{Raw: string(payload), Reason: "reply too long"}
		}
		payload = append(payload, b)
	}
}

// readStatusReply reads a device status report ("ESC [ 0 n") and returns once
// the final 'n' arrives. Nothing is retained.
func readStatusReply(in Input, deadline time.Time) error {
	for {
		b, err := readByte(in, deadline)
		if err != nil {
			return err
		}
		if b == 'n' {
			return nil
		}
	}
}

package termbg

import "sync"

// rawGuard holds the terminal in raw mode until Release.
type rawGuard struct {
	once    sync.Once
	restore func() error
	err     error
}

func acquireRaw(dev Device) (*rawGuard, error) {
	restore, err := dev.MakeRaw()
	if err != nil {
		return nil, &IOError{Op: "enable raw mode", Err: err}
	}
	return &rawGuard{restore: restore}, nil
}

// Release restores the previous terminal mode. Only the first call does any
// work; later calls return the first call's result.
func (g *rawGuard) Release() error {
	g.once.Do(func() {
		if err := g.restore(); err != nil {
			g.err = &IOError{Op: "restore terminal mode", Err: err}
		}
	})
	return g.err
}

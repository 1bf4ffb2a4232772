package termbg

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTimeout = 500 * time.Millisecond

func TestProber_Color_Xterm(t *testing.T) {
	for name, reply := range map[string]string{
		"BEL": "\x1b]11;rgb:1111/2222/3333\x07",
		"ST":  "\x1b]11;rgb:1111/2222/3333\x1b\\",
	} {
		t.Run(name, func(t *testing.T) {
			dev := newFakeDevice(reply)
			p := newTestProber(dev, MapEnv{"TERM": "xterm-256color"}, "linux")

			got, err := p.Color(testTimeout)
			require.NoError(t, err)
			assert.Equal(t, RGB{0x1111, 0x2222, 0x3333}, got)
			assert.Equal(t, queryXterm, dev.out.String())
			assert.False(t, dev.raw, "terminal left in raw mode")
			assert.Equal(t, 1, dev.makeRaws)
			assert.Equal(t, 1, dev.restores)
		})
	}
}

func TestProber_Color_TmuxNeverSendsPlainQuery(t *testing.T) {
	dev := newFakeDevice("\x1b]11;rgb:ffff/ffff/ffff\x07")
	p := newTestProber(dev, MapEnv{"TMUX": "/tmp/tmux-1000/default,1,0", "TERM": "screen-256color"}, "linux")

	got, err := p.Color(testTimeout)
	require.NoError(t, err)
	assert.Equal(t, RGB{0xffff, 0xffff, 0xffff}, got)
	assert.Equal(t, "\x1bPtmux;\x1b\x1b]11;?\x07\x1b\\\x03", dev.out.String())
	assert.NotContains(t, dev.out.String(), queryXterm)
}

func TestProber_Color_Screen(t *testing.T) {
	dev := newFakeDevice("\x1b]11;rgb:00/00/00\x07")
	p := newTestProber(dev, MapEnv{"TERM": "screen"}, "linux")

	_, err := p.Color(testTimeout)
	require.NoError(t, err)
	assert.Equal(t, "\x1bP\x1b]11;?\x07\x1b\\\x03", dev.out.String())
}

func TestProber_Color_Timeout(t *testing.T) {
	dev := newFakeDevice("")
	dev.hold = true
	p := newTestProber(dev, MapEnv{}, "linux")

	_, err := p.Color(30 * time.Millisecond)
	assert.ErrorIs(t, err, ErrTimeout)
	assert.Equal(t, OutcomeTimeout, OutcomeOf(err))
	assert.False(t, dev.raw, "terminal left in raw mode")
	assert.Equal(t, 1, dev.restores)
}

func TestProber_Color_DeadlineIsNotPerByte(t *testing.T) {
	// Each byte arrives well inside the timeout, the whole reply does not.
	dev := newFakeDevice("\x1b]11;rgb:ffff/ffff/ffff\x07")
	dev.byteDelay = 10 * time.Millisecond
	dev.hold = true
	p := newTestProber(dev, MapEnv{}, "linux")

	start := time.Now()
	_, err := p.Color(60 * time.Millisecond)
	assert.ErrorIs(t, err, ErrTimeout)
	assert.Less(t, time.Since(start), 200*time.Millisecond)
	assert.False(t, dev.raw)
}

func TestProber_Color_FallbackAfterTimeout(t *testing.T) {
	dev := newFakeDevice("")
	dev.hold = true
	p := newTestProber(dev, MapEnv{EnvColorFGBG: "0;15"}, "linux")

	got, err := p.Color(20 * time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, RGB{65280, 65280, 65280}, got)
}

func TestProber_Color_PrimaryWinsOverFallback(t *testing.T) {
	dev := newFakeDevice("\x1b]11;rgb:0000/0000/0000\x07")
	p := newTestProber(dev, MapEnv{EnvColorFGBG: "0;15"}, "linux")

	got, err := p.Color(testTimeout)
	require.NoError(t, err)
	assert.Equal(t, RGB{}, got)
}

func TestProber_Color_MalformedReply(t *testing.T) {
	dev := newFakeDevice("\x1b]11;rgb:zzzz/0000/0000\x07")
	p := newTestProber(dev, MapEnv{EnvColorFGBG: "0;99"}, "linux")

	got, err := p.Color(testTimeout)
	var malformed *MalformedError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "zzzz/0000/0000", malformed.Raw)
	assert.Equal(t, RGB{}, got)
	assert.False(t, dev.raw)
}

func TestProber_Color_EOF(t *testing.T) {
	dev := newFakeDevice("\x1b]11;rgb:12")
	p := newTestProber(dev, MapEnv{}, "linux")

	_, err := p.Color(testTimeout)
	assert.Equal(t, OutcomeIOFailure, OutcomeOf(err))
	assert.False(t, dev.raw)
}

func TestProber_NotInteractive(t *testing.T) {
	dev := newFakeDevice("\x1b]11;rgb:1/1/1\x07")
	dev.interactive = false
	p := newTestProber(dev, MapEnv{}, "linux")

	_, err := p.Color(testTimeout)
	assert.ErrorIs(t, err, ErrUnsupported)
	_, err = p.Latency(testTimeout)
	assert.ErrorIs(t, err, ErrUnsupported)
	assert.Zero(t, dev.makeRaws)
	assert.Empty(t, dev.out.String())
}

func TestProber_Emacs(t *testing.T) {
	dev := newFakeDevice("")
	p := newTestProber(dev, MapEnv{"INSIDE_EMACS": "29.1,comint"}, "linux")

	_, err := p.Color(testTimeout)
	assert.ErrorIs(t, err, ErrUnsupported)

	latency, err := p.Latency(testTimeout)
	require.NoError(t, err)
	assert.Zero(t, latency)

	assert.Zero(t, dev.makeRaws)
	assert.Zero(t, dev.openCount)
	assert.Empty(t, dev.out.String())
}

func TestProber_Emacs_UsesFallback(t *testing.T) {
	p := newTestProber(newFakeDevice(""), MapEnv{"INSIDE_EMACS": "t", EnvColorFGBG: "15;0"}, "linux")

	got, err := p.Color(testTimeout)
	require.NoError(t, err)
	assert.Equal(t, RGB{}, got)
}

func TestProber_WindowsConsole(t *testing.T) {
	dev := newFakeDevice("")
	p := newTestProber(dev, MapEnv{}, "windows")
	p.native = func() (RGB, error) { return consoleAttributeColor(0x00f0), nil }

	require.Equal(t, FamilyWindowsConsole, p.Family())
	got, err := p.Color(testTimeout)
	require.NoError(t, err)
	assert.Equal(t, rgb8(255, 255, 255), got)

	latency, err := p.Latency(testTimeout)
	require.NoError(t, err)
	assert.Zero(t, latency)
	assert.Zero(t, dev.makeRaws)
}

func TestProber_Latency(t *testing.T) {
	dev := newFakeDevice("\x1b[0n")
	p := newTestProber(dev, MapEnv{}, "linux")

	latency, err := p.Latency(testTimeout)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, latency, time.Duration(0))
	assert.Less(t, latency, testTimeout)
	assert.Equal(t, "\x1b[5n", dev.out.String())
	assert.False(t, dev.raw)
}

func TestProber_Latency_TmuxUsesPlainDSR(t *testing.T) {
	dev := newFakeDevice("\x1b[0n")
	p := newTestProber(dev, MapEnv{"TMUX": "x"}, "linux")

	_, err := p.Latency(testTimeout)
	require.NoError(t, err)
	assert.Equal(t, queryLatency, dev.out.String())
}

func TestProber_Latency_Timeout(t *testing.T) {
	dev := newFakeDevice("\x1b[0")
	dev.hold = true
	p := newTestProber(dev, MapEnv{}, "linux")

	latency, err := p.Latency(20 * time.Millisecond)
	assert.ErrorIs(t, err, ErrTimeout)
	assert.Zero(t, latency)
	assert.False(t, dev.raw)
	assert.Equal(t, 1, dev.restores)
}

func TestProber_MakeRawFails(t *testing.T) {
	dev := newFakeDevice("\x1b]11;rgb:1/1/1\x07")
	dev.makeRawErr = errors.New("not a tty")
	p := newTestProber(dev, MapEnv{}, "linux")

	_, err := p.Color(testTimeout)
	var ioErr *IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "enable raw mode", ioErr.Op)
	assert.Empty(t, dev.out.String())
	assert.Zero(t, dev.restores)
}

func TestProber_RestoreFailure(t *testing.T) {
	t.Run("reported when probe succeeded", func(t *testing.T) {
		dev := newFakeDevice("\x1b]11;rgb:1/1/1\x07")
		dev.restoreErr = errors.New("EIO")
		p := newTestProber(dev, MapEnv{}, "linux")

		got, err := p.Color(testTimeout)
		var ioErr *IOError
		require.ErrorAs(t, err, &ioErr)
		assert.Equal(t, "restore terminal mode", ioErr.Op)
		assert.Equal(t, RGB{}, got)
		assert.Equal(t, 1, dev.restores)
	})

	t.Run("does not mask earlier failure", func(t *testing.T) {
		dev := newFakeDevice("")
		dev.hold = true
		dev.restoreErr = errors.New("EIO")
		p := newTestProber(dev, MapEnv{}, "linux")

		_, err := p.Latency(20 * time.Millisecond)
		assert.ErrorIs(t, err, ErrTimeout)
		assert.Equal(t, 1, dev.restores)
	})
}

func TestProber_Theme(t *testing.T) {
	tests := []struct {
		reply string
		want  Theme
	}{
		{"\x1b]11;rgb:ffff/ffff/ffff\x07", ThemeLight},
		{"\x1b]11;rgb:1e1e/1e1e/2e2e\x07", ThemeDark},
		{"\x1b]11;rgb:fd/f6/e3\x1b\\", ThemeLight},
	}
	for _, tt := range tests {
		p := newTestProber(newFakeDevice(tt.reply), MapEnv{}, "linux")
		got, err := p.Theme(testTimeout)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "reply %q", tt.reply)
	}
}

func TestProber_Theme_PropagatesFailure(t *testing.T) {
	p := newTestProber(newFakeDevice(""), MapEnv{"INSIDE_EMACS": "t"}, "linux")
	_, err := p.Theme(testTimeout)
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestRawGuard_ReleaseIsIdempotent(t *testing.T) {
	dev := newFakeDevice("")
	g, err := acquireRaw(dev)
	require.NoError(t, err)
	require.True(t, dev.raw)

	require.NoError(t, g.Release())
	require.NoError(t, g.Release())
	assert.Equal(t, 1, dev.restores)
	assert.False(t, dev.raw)
}

func TestRawGuard_ReleasedOnPanic(t *testing.T) {
	dev := newFakeDevice("")
	func() {
		defer func() { _ = recover() }()
		g, err := acquireRaw(dev)
		require.NoError(t, err)
		defer g.Release()
		panic("boom")
	}()
	assert.False(t, dev.raw)
}

func TestOutcomeOf(t *testing.T) {
	assert.Equal(t, OutcomeSuccess, OutcomeOf(nil))
	assert.Equal(t, OutcomeTimeout, OutcomeOf(ErrTimeout))
	assert.Equal(t, OutcomeUnsupported, OutcomeOf(ErrUnsupported))
	assert.Equal(t, OutcomeMalformed, OutcomeOf(&MalformedError{Raw: "x"}))
	assert.Equal(t, OutcomeIOFailure, OutcomeOf(&IOError{Op: "read", Err: errors.New("x")}))
	assert.Equal(t, OutcomeIOFailure, OutcomeOf(errors.New("other")))
	assert.Equal(t, "io-failure", OutcomeIOFailure.String())
}

func TestQuerySequence(t *testing.T) {
	assert.Equal(t, "\x1b]11;?\x1b\\", querySequence(FamilyXterm, purposeColor))
	assert.Equal(t, "\x1b[5n", querySequence(FamilyScreen, purposeLatency))
}

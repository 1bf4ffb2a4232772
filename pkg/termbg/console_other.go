//go:build !windows

package termbg

func nativeBackground() (RGB, error) {
	return RGB{}, ErrUnsupported
}

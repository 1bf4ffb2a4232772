//go:build windows

package termbg

import "golang.org/x/sys/windows"

// nativeBackground reads the background attribute of the console attached to
// stdout.
func nativeBackground() (RGB, error) {
	h, err := windows.GetStdHandle(windows.STD_OUTPUT_HANDLE)
	if err != nil {
		return RGB{}, &IOError{Op: "get console handle", Err: err}
	}
	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(h, &info); err != nil {
		return RGB{}, &IOError{Op: "get console screen buffer info", Err: err}
	}
	return consoleAttributeColor(info.Attributes), nil
}

// termbg reports the background color of the terminal it runs in.
//
// Usage:
//
//	termbg                 # family, latency, color and theme
//	termbg color           # rgb:RRRR/GGGG/BBBB #rrggbb
//	termbg theme           # dark or light
//	termbg latency         # round-trip time of a status query
//	termbg family          # xterm, tmux, screen, emacs, windows-console
//
// Output modes for the full report (auto-detected):
//
//	terminal  styled output (default when stdout is a TTY)
//	plain     key: value lines (default when piped)
//	json      structured JSON for automation
//
// Exit codes: 0 success, 1 probe failure, 2 usage or configuration error.
package main

import (
	"io"
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	return newApp(stdout, stderr).execute(args)
}

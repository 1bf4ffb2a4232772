// Package termbg detects a terminal's background color and derives a light or
// dark theme from it.
//
// Detection talks to the terminal emulator in-band: a control sequence is
// written to stderr while the terminal is in raw mode, and the reply is read
// byte by byte from stdin under a deadline. The request depends on the
// terminal family:
//
//	xterm-compatible  ESC ] 11 ; ? ESC \
//	tmux              ESC P tmux; ESC ESC ] 11 ; ? BEL ESC \ ETX
//	screen            ESC P ESC ] 11 ; ? BEL ESC \ ETX
//
// Emacs shells never answer and are reported as unsupported without touching
// the terminal. The classic Windows console is asked through the console API
// instead. When the active probe fails, the COLORFGBG environment variable is
// consulted as a fallback.
//
// Every call re-detects the family and re-issues the query. A Prober is not
// safe for concurrent use against the same terminal: two probes in flight
// would race for the terminal mode and for the reply bytes.
//
// Failures are reported as ErrTimeout, ErrUnsupported, *MalformedError or
// *IOError. OutcomeOf folds any of them into a single Outcome value.
package termbg

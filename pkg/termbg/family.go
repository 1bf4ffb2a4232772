package termbg

import (
	"runtime"
	"strings"
)

// Family identifies how a terminal must be queried.
type Family int

const (
	FamilyXterm          Family = iota // xterm-compatible emulator, queried directly
	FamilyTmux                         // inside tmux, query wrapped in a DCS passthrough
	FamilyScreen                       // inside GNU screen, query wrapped in a DCS passthrough
	FamilyEmacs                        // Emacs shell buffer, never answers
	FamilyWindowsConsole               // classic Windows console, queried through the console API
)

// Environment variables consulted by DetectFamily.
const (
	EnvTmux        = "TMUX"
	EnvInsideEmacs = "INSIDE_EMACS"
	EnvTerm        = "TERM"
	EnvTermProgram = "TERM_PROGRAM"
	EnvWTSession   = "WT_SESSION"
)

func (f Family) String() string {
	switch f {
	case FamilyXterm:
		return "xterm"
	case FamilyTmux:
		return "tmux"
	case FamilyScreen:
		return "screen"
	case FamilyEmacs:
		return "emacs"
	case FamilyWindowsConsole:
		return "windows-console"
	default:
		return "unknown"
	}
}

// DetectFamily derives the terminal family from env. goos selects the
// platform default and enables the Windows-only markers. First match wins:
//
//  1. INSIDE_EMACS set                          → FamilyEmacs
//  2. TMUX set                                  → FamilyTmux
//  3. TERM starts with "screen"                 → FamilyScreen
//  4. windows and TERM_PROGRAM=vscode or WT_SESSION set → FamilyXterm
//  5. FamilyWindowsConsole on windows, FamilyXterm elsewhere
func DetectFamily(env Env, goos string) Family {
	if hasEnv(env, EnvInsideEmacs) {
		return FamilyEmacs
	}
	if hasEnv(env, EnvTmux) {
		return FamilyTmux
	}
	if strings.HasPrefix(getEnv(env, EnvTerm), "screen") {
		return FamilyScreen
	}
	if goos != "windows" {
		return FamilyXterm
	}
	// Windows Terminal and the VS Code terminal speak xterm sequences.
	if getEnv(env, EnvTermProgram) == "vscode" || hasEnv(env, EnvWTSession) {
		return FamilyXterm
	}
	return FamilyWindowsConsole
}

// CurrentFamily detects the family of the terminal this process runs in.
func CurrentFamily() Family {
	return DetectFamily(OSEnv{}, runtime.GOOS)
}

package magetasks

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/magefile/mage/sh"
)

// Run runs a command with its output attached to the console, framed by a
// status line.
func Run(label, cmd string, args ...string) error {
	fmt.Fprintf(out, "%s: %s %s\n", label, cmd, strings.Join(args, " "))
	if err := sh.RunV(cmd, args...); err != nil {
		PrintError(label)
		return err
	}
	PrintSuccess(label)
	return nil
}

// IsCommandNotFound reports whether err means the command is not installed.
func IsCommandNotFound(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, exec.ErrNotFound) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "executable file not found") ||
		strings.Contains(msg, "no such file or directory")
}

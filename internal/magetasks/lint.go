package magetasks

import (
	"errors"
	"fmt"
	"strings"

	"github.com/magefile/mage/sh"
)

const golangciDisabled = "--disable=exhaustruct,varnamelen,ireturn,wrapcheck,nlreturn,gochecknoglobals,mnd,depguard,tagalign"

// LintAll runs all linters. Staticcheck and golangci-lint are skipped with a
// warning when they are not installed.
func LintAll() error {
	PrintH2Header("Lint")

	var errs []error
	for _, lint := range []func() error{LintFormat, LintVet, LintStaticcheck, LintGolangci} {
		if err := lint(); err != nil && !IsCommandNotFound(err) {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	PrintSuccess("All linters passed")
	return nil
}

// LintFormat fails when any file needs gofmt.
func LintFormat() error {
	files, err := sh.Output("gofmt", "-l", ".")
	if err != nil {
		return err
	}
	if files = strings.TrimSpace(files); files != "" {
		PrintError("Go Format")
		return fmt.Errorf("files need gofmt:\n%s", files)
	}
	PrintSuccess("Go Format")
	return nil
}

// LintVet runs go vet.
func LintVet() error {
	return Run("Go Vet", "go", "vet", "./...")
}

// LintStaticcheck runs staticcheck.
func LintStaticcheck() error {
	return optional("Staticcheck", "honnef.co/go/tools/cmd/staticcheck@latest", "staticcheck", "./...")
}

// LintGolangci runs golangci-lint.
func LintGolangci() error {
	return optional("Golangci-lint", "github.com/golangci/golangci-lint/cmd/golangci-lint@latest",
		"golangci-lint", "run", golangciDisabled, "--timeout=5m", "./...")
}

// LintGolangciFix runs golangci-lint with auto-fixes.
func LintGolangciFix() error {
	return optional("Golangci-lint Fix", "github.com/golangci/golangci-lint/cmd/golangci-lint@latest",
		"golangci-lint", "run", "--fix", golangciDisabled, "--timeout=5m", "./...")
}

// optional runs a tool that may not be installed, printing how to get it
// when it is missing.
func optional(label, install, cmd string, args ...string) error {
	err := Run(label, cmd, args...)
	switch {
	case err == nil:
		return nil
	case IsCommandNotFound(err):
		PrintWarning(fmt.Sprintf("%s not found (install: go install %s)", label, install))
		return err
	default:
		return fmt.Errorf("%s failed: %w", strings.ToLower(label), err)
	}
}

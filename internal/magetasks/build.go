package magetasks

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/magefile/mage/sh"
)

// BuildAll builds the termbg binary with version metadata linked in.
func BuildAll() error {
	PrintH2Header("Build")

	if err := Run("Build", "go", "build", "-ldflags", Ldflags(gitVersion(), gitCommit(), time.Now().UTC()), "-o", BinPath, MainPackage); err != nil {
		return err
	}
	PrintSuccess(fmt.Sprintf("Built: %s", BinPath))
	return nil
}

// Ldflags returns the linker flags that set internal/version.
func Ldflags(version, commit string, built time.Time) string {
	pkg := ModulePath + "/internal/version"
	return fmt.Sprintf("-s -w -X '%s.Version=%s' -X '%s.CommitHash=%s' -X '%s.BuildDate=%s'",
		pkg, version, pkg, commit, pkg, built.Format(time.RFC3339))
}

// Clean removes build artifacts.
func Clean() error {
	PrintH2Header("Clean")
	if err := os.RemoveAll("./bin"); err != nil {
		return err
	}
	_ = os.Remove("coverage.out")
	PrintSuccess("Cleaned build artifacts")
	return nil
}

func gitVersion() string {
	return gitOutput("dev", "describe", "--tags", "--always", "--dirty", "--match=v*")
}

func gitCommit() string {
	return gitOutput("unknown", "rev-parse", "--short", "HEAD")
}

func gitOutput(fallback string, args ...string) string {
	s, err := sh.Output("git", args...)
	if err != nil || strings.TrimSpace(s) == "" {
		return fallback
	}
	return strings.TrimSpace(s)
}

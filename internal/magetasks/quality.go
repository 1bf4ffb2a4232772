package magetasks

import "fmt"

// QualityCheck runs linters, tests and the build. Lint findings are reported
// but do not stop the run.
func QualityCheck() error {
	PrintH1Header("termbg Quality Checks")

	if err := LintAll(); err != nil {
		PrintWarning("Linting issues found")
	}
	if err := TestRace(); err != nil {
		return fmt.Errorf("tests failed: %w", err)
	}
	if err := BuildAll(); err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	PrintSuccess("Quality checks complete")
	return nil
}

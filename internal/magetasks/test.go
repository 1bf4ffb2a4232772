package magetasks

// TestAll runs all tests.
func TestAll() error {
	PrintH2Header("Tests")
	return Run("Tests", "go", "test", "./...")
}

// TestCoverage runs tests with coverage and prints the per-function summary.
func TestCoverage() error {
	PrintH2Header("Test Coverage")
	if err := Run("Tests", "go", "test", "-coverprofile=coverage.out", "./..."); err != nil {
		return err
	}
	return Run("Coverage", "go", "tool", "cover", "-func=coverage.out")
}

// TestRace runs tests with the race detector. The probe's read goroutine
// makes this worth running on every change to pkg/termbg.
func TestRace() error {
	PrintH2Header("Race Detector")
	return Run("Race", "go", "test", "-race", "./...")
}

package magetasks

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize(t *testing.T) {
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)

	require.NoError(t, Initialize())
	assert.DirExists(t, filepath.Join(tmpDir, "bin"))

	wantRoot, err := filepath.EvalSymlinks(tmpDir)
	require.NoError(t, err)
	gotRoot, err := filepath.EvalSymlinks(ProjectRoot)
	require.NoError(t, err)
	assert.Equal(t, wantRoot, gotRoot)
}

func TestLdflags(t *testing.T) {
	built := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	got := Ldflags("v0.3.0", "abc1234", built)

	assert.Contains(t, got, "-X 'github.com/dkoosis/termbg/internal/version.Version=v0.3.0'")
	assert.Contains(t, got, "-X 'github.com/dkoosis/termbg/internal/version.CommitHash=abc1234'")
	assert.Contains(t, got, "BuildDate=2026-10-17T12:00:00Z'")
}

func TestPrinters(t *testing.T) {
	var buf bytes.Buffer
	out = &buf
	t.Cleanup(func() { out = os.Stdout })

	PrintH1Header("Checks")
	PrintH2Header("Build")
	PrintSuccess("built")
	PrintWarning("lint")
	PrintError("tests")

	s := buf.String()
	for _, want := range []string{"Checks", "=== Build ===", "built", "lint", "tests"} {
		assert.Contains(t, s, want)
	}
}

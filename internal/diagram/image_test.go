package diagram

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.png")
	require.NoError(t, ExportProfile(profileFixture(), path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestExportHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.svg")
	require.NoError(t, ExportHistory([]float64{0.6, 0.75, 0.79, 0.805, 0.81}, path))

	_, err := os.Stat(path)
	require.NoError(t, err)
}

func TestSavePlotDefaultsToPNG(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profile.bmp")
	require.NoError(t, ExportProfile(profileFixture(), path))

	_, err := os.Stat(path + ".png")
	require.NoError(t, err)
}

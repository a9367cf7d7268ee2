package report_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mupshaw/gopond/internal/report"
)

func TestExportPDF(t *testing.T) {
	m, scenario := fixture(t)
	rec := report.Build(m, scenario, convergedResult())

	path := filepath.Join(t.TempDir(), "report.pdf")
	require.NoError(t, report.ExportPDF(rec, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestExportXLSX(t *testing.T) {
	m, scenario := fixture(t)
	rec := report.Build(m, scenario, convergedResult())

	path := filepath.Join(t.TempDir(), "report.xlsx")
	require.NoError(t, report.ExportXLSX(rec, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

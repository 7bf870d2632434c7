package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDataset() Dataset {
	return Dataset{
		Headers: []string{"id", "name", "message"},
		Rows: []map[string]string{
			{"id": "1", "name": "Jane Doe", "message": "Looking for advisory, board-level"},
			{"id": "2", "name": "=HYPERLINK(\"x\")", "message": "line one\nline two"},
		},
	}
}

func TestCSVExporterRender(t *testing.T) {
	out, err := NewCSVExporter().Render(sampleDataset())
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"id", "name", "message"}, records[0])
	assert.Equal(t, "Jane Doe", records[1][1])
	assert.Equal(t, "'=HYPERLINK(\"x\")", records[2][1])
	assert.Equal(t, "line one\nline two", records[2][2])
}

func TestCSVExporterWithoutEscaping(t *testing.T) {
	out, err := (&CSVExporter{}).Render(sampleDataset())
	require.NoError(t, err)
	assert.Contains(t, string(out), "\"=HYPERLINK(\"\"x\"\")\"")
}

func TestCSVExporterRequiresHeaders(t *testing.T) {
	_, err := NewCSVExporter().Render(Dataset{})
	assert.Error(t, err)
}

func TestPDFExporterRender(t *testing.T) {
	out, err := NewPDFExporter().Render(sampleDataset(), "Consultations")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

func TestPDFExporterRequiresHeaders(t *testing.T) {
	_, err := NewPDFExporter().Render(Dataset{}, "x")
	assert.Error(t, err)
}

func TestClip(t *testing.T) {
	assert.Equal(t, "short", clip("short", 10))
	assert.Equal(t, "abcdefg...", clip("abcdefghijklmnop", 10))
}

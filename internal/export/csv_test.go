package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeTableCSV(t *testing.T) {
	table, err := RenderTable(tableBatch())
	require.NoError(t, err)

	data, err := EncodeTableCSV(table)
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(data, BOM))

	r := csv.NewReader(bytes.NewReader(data[len(BOM):]))
	records, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, Columns(), records[0])
	assert.Equal(t, "invoice_a.pdf", records[1][0])
	assert.Equal(t, "Acme Corp", records[1][2])
	assert.Equal(t, "N/A", records[2][2])
}

func TestEncodeTableCSV_Deterministic(t *testing.T) {
	table, err := RenderTable(tableBatch())
	require.NoError(t, err)

	a, err := EncodeTableCSV(table)
	require.NoError(t, err)
	b, err := EncodeTableCSV(table)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

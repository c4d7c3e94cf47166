package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docreview/internal/domain"
)

func TestParseBatch_ObjectFields(t *testing.T) {
	payload := []byte(`{
		"documents": [{
			"filename": "invoice_a.pdf",
			"pages": [{
				"page_number": 1,
				"fields": {
					"VendorName": {"value": "Acme Corp", "confidence": 0.92},
					"Total": {"value": 105.5, "confidence": 0.8},
					"StockCode": {"confidence": 0.4}
				}
			}]
		}]
	}`)

	batch, err := ParseBatch(payload)
	require.NoError(t, err)
	require.Len(t, batch.Documents, 1)

	page, ok := batch.Documents[0].PageByNumber(1)
	require.True(t, ok)

	assert.Equal(t, domain.Field{Value: "Acme Corp", Confidence: 0.92}, page.Fields["VendorName"])
	assert.Equal(t, "105.5", page.Fields["Total"].Value)
	// An object without a value key reads as not-available.
	assert.Equal(t, "N/A", page.Fields["StockCode"].Value)
	assert.Equal(t, 0.4, page.Fields["StockCode"].Confidence)
}

func TestParseBatch_BareValues(t *testing.T) {
	payload := []byte(`{
		"documents": [{
			"filename": "invoice_a.pdf",
			"pages": [{
				"page_number": 1,
				"fields": {
					"VendorName": "Acme Corp",
					"StockCode": ["A-1", "A-2"],
					"Total": 99,
					"Freight": null
				}
			}]
		}]
	}`)

	batch, err := ParseBatch(payload)
	require.NoError(t, err)

	page := batch.Documents[0].Pages[0]
	assert.Equal(t, domain.Field{Value: "Acme Corp"}, page.Fields["VendorName"])
	assert.Equal(t, `["A-1","A-2"]`, page.Fields["StockCode"].Value)
	assert.Equal(t, "99", page.Fields["Total"].Value)
	assert.Equal(t, "", page.Fields["Freight"].Value)
	assert.Zero(t, page.Fields["StockCode"].Confidence)
}

func TestParseBatch_ConfidenceHandling(t *testing.T) {
	payload := []byte(`{
		"documents": [{
			"filename": "a.pdf",
			"pages": [{
				"page_number": 1,
				"fields": {
					"VendorName": {"value": "x", "confidence": "high"},
					"Total": {"value": "y", "confidence": -0.5},
					"Freight": {"value": "z", "confidence": 1.7}
				}
			}]
		}]
	}`)

	batch, err := ParseBatch(payload)
	require.NoError(t, err)

	page := batch.Documents[0].Pages[0]
	assert.Zero(t, page.Fields["VendorName"].Confidence)
	assert.Zero(t, page.Fields["Total"].Confidence)
	assert.Equal(t, 1.0, page.Fields["Freight"].Confidence)
}

func TestParseBatch_ErrorMarkerWins(t *testing.T) {
	payload := []byte(`{
		"documents": [{
			"filename": "a.pdf",
			"pages": [{
				"page_number": 1,
				"error": "ocr timeout",
				"fields": {"VendorName": {"value": "ignored", "confidence": 0.9}}
			}]
		}]
	}`)

	batch, err := ParseBatch(payload)
	require.NoError(t, err)

	page := batch.Documents[0].Pages[0]
	assert.True(t, page.Failed())
	assert.Equal(t, "ocr timeout", page.Error)
	assert.Nil(t, page.Fields)
}

func TestParseBatch_MissingPageNumberGetsPosition(t *testing.T) {
	payload := []byte(`{
		"documents": [{
			"filename": "a.pdf",
			"pages": [
				{"fields": {}},
				{"page_number": 0, "fields": {}},
				{"page_number": 7, "fields": {}}
			]
		}]
	}`)

	batch, err := ParseBatch(payload)
	require.NoError(t, err)

	pages := batch.Documents[0].Pages
	assert.Equal(t, 1, pages[0].Number)
	assert.Equal(t, 2, pages[1].Number)
	assert.Equal(t, 7, pages[2].Number)
}

func TestParseBatch_Rejections(t *testing.T) {
	cases := map[string][]byte{
		"malformed json": []byte(`{"documents": [`),
		"no documents":   []byte(`{"documents": []}`),
		"empty filename": []byte(`{"documents": [{"filename": "", "pages": []}]}`),
		"duplicate filename": []byte(`{"documents": [
			{"filename": "a.pdf", "pages": []},
			{"filename": "a.pdf", "pages": []}
		]}`),
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseBatch(payload)
			assert.ErrorIs(t, err, domain.ErrInvalidBatch)
		})
	}
}

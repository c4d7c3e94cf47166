package review

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docreview/internal/domain"
)

func testBatch() *domain.Batch {
	return &domain.Batch{Documents: []domain.Document{
		{
			Filename: "invoice_a.pdf",
			Pages: []domain.Page{
				{Number: 1, Fields: map[string]domain.Field{
					"VendorName": {Value: "Acme Corp", Confidence: 0.92},
					"Total":      {Value: "105.00", Confidence: 0.77},
				}},
				{Number: 2, Error: "scan unreadable"},
			},
		},
		{
			Filename: "invoice_b.pdf",
			Pages: []domain.Page{
				{Number: 1, Fields: map[string]domain.Field{
					"InvoiceNumber": {Value: "INV-42", Confidence: 0.64},
				}},
			},
		},
	}}
}

func TestStore_FieldLookup(t *testing.T) {
	s := NewStore(testBatch())
	s.Initialize()

	f := s.Field("invoice_a.pdf", 1, "VendorName")
	assert.Equal(t, "Acme Corp", f.Value)
	assert.Equal(t, 0.92, f.Confidence)

	// Unknown document, page, or field reads as the zero value.
	assert.Zero(t, s.Field("missing.pdf", 1, "VendorName"))
	assert.Zero(t, s.Field("invoice_a.pdf", 9, "VendorName"))
	assert.Zero(t, s.Field("invoice_a.pdf", 1, "TaxRate"))
	// Error pages carry no field data.
	assert.Zero(t, s.Field("invoice_a.pdf", 2, "VendorName"))
}

func TestStore_FieldLookupWithoutInitialize(t *testing.T) {
	s := NewStore(testBatch())

	f := s.Field("invoice_a.pdf", 1, "Total")
	assert.Equal(t, "105.00", f.Value)
}

func TestStore_PageError(t *testing.T) {
	s := NewStore(testBatch())
	s.Initialize()

	msg, failed, err := s.PageError("invoice_a.pdf", 2)
	require.NoError(t, err)
	assert.True(t, failed)
	assert.Equal(t, "scan unreadable", msg)

	msg, failed, err = s.PageError("invoice_a.pdf", 1)
	require.NoError(t, err)
	assert.False(t, failed)
	assert.Empty(t, msg)

	_, _, err = s.PageError("missing.pdf", 1)
	assert.ErrorIs(t, err, domain.ErrOutOfRange)
	_, _, err = s.PageError("invoice_a.pdf", 9)
	assert.ErrorIs(t, err, domain.ErrOutOfRange)
}

func TestStore_ApplyEdits_PreservesOriginalConfidence(t *testing.T) {
	s := NewStore(testBatch())
	s.Initialize()

	err := s.ApplyEdits([]Edit{
		{Filename: "invoice_a.pdf", Page: 1, Field: "VendorName", Value: "Acme Corporation"},
	})
	require.NoError(t, err)

	f := s.Field("invoice_a.pdf", 1, "VendorName")
	assert.Equal(t, "Acme Corporation", f.Value)
	assert.Equal(t, 0.92, f.Confidence)
	assert.True(t, f.ManuallyEdited)
	assert.Equal(t, 1, s.EditCount())
}

func TestStore_ApplyEdits_ChainedEditsKeepOriginalConfidence(t *testing.T) {
	s := NewStore(testBatch())
	s.Initialize()

	require.NoError(t, s.ApplyEdits([]Edit{
		{Filename: "invoice_a.pdf", Page: 1, Field: "Total", Value: "110.00"},
	}))
	require.NoError(t, s.ApplyEdits([]Edit{
		{Filename: "invoice_a.pdf", Page: 1, Field: "Total", Value: "115.00"},
	}))

	f := s.Field("invoice_a.pdf", 1, "Total")
	assert.Equal(t, "115.00", f.Value)
	assert.Equal(t, 0.77, f.Confidence)
	assert.Equal(t, 1, s.EditCount())
}

func TestStore_ApplyEdits_EqualValueIsNoOp(t *testing.T) {
	s := NewStore(testBatch())
	s.Initialize()

	require.NoError(t, s.ApplyEdits([]Edit{
		{Filename: "invoice_a.pdf", Page: 1, Field: "VendorName", Value: "Acme Corp"},
	}))

	f := s.Field("invoice_a.pdf", 1, "VendorName")
	assert.False(t, f.ManuallyEdited)
	assert.False(t, s.HasEdits())
}

func TestStore_ApplyEdits_UnseenFieldApplies(t *testing.T) {
	s := NewStore(testBatch())
	s.Initialize()

	// The field was never extracted, so even an empty value is an edit.
	require.NoError(t, s.ApplyEdits([]Edit{
		{Filename: "invoice_b.pdf", Page: 1, Field: "Freight", Value: ""},
	}))

	f := s.Field("invoice_b.pdf", 1, "Freight")
	assert.True(t, f.ManuallyEdited)
	assert.Zero(t, f.Confidence)
}

func TestStore_ApplyEdits_AtomicOnFailure(t *testing.T) {
	s := NewStore(testBatch())
	s.Initialize()

	err := s.ApplyEdits([]Edit{
		{Filename: "invoice_a.pdf", Page: 1, Field: "VendorName", Value: "Changed"},
		{Filename: "invoice_a.pdf", Page: 9, Field: "Total", Value: "0"},
	})
	assert.ErrorIs(t, err, domain.ErrOutOfRange)

	// The first edit of the failed batch must not be visible.
	f := s.Field("invoice_a.pdf", 1, "VendorName")
	assert.Equal(t, "Acme Corp", f.Value)
	assert.False(t, s.HasEdits())
}

func TestStore_ApplyEdits_ErrorPageRejected(t *testing.T) {
	s := NewStore(testBatch())
	s.Initialize()

	err := s.ApplyEdits([]Edit{
		{Filename: "invoice_a.pdf", Page: 2, Field: "VendorName", Value: "x"},
	})
	assert.ErrorIs(t, err, domain.ErrPageFailed)
}

func TestStore_SnapshotIsIsolated(t *testing.T) {
	s := NewStore(testBatch())
	s.Initialize()

	snap := s.Snapshot()
	snap.Documents[0].Pages[0].Fields["VendorName"] = domain.Field{Value: "mutated"}

	assert.Equal(t, "Acme Corp", s.Field("invoice_a.pdf", 1, "VendorName").Value)
}

func TestStore_SourceBatchIsolation(t *testing.T) {
	src := testBatch()
	s := NewStore(src)
	s.Initialize()

	// Mutating the caller's batch after construction must not leak in.
	src.Documents[0].Pages[0].Fields["VendorName"] = domain.Field{Value: "mutated"}
	assert.Equal(t, "Acme Corp", s.Field("invoice_a.pdf", 1, "VendorName").Value)
}

func TestStore_ConcurrentReadsAndEdits(t *testing.T) {
	s := NewStore(testBatch())
	s.Initialize()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = s.Field("invoice_a.pdf", 1, "VendorName")
			_ = s.Snapshot()
		}()
		go func() {
			defer wg.Done()
			_ = s.ApplyEdits([]Edit{
				{Filename: "invoice_a.pdf", Page: 1, Field: "Total", Value: "120.00"},
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, "120.00", s.Field("invoice_a.pdf", 1, "Total").Value)
}

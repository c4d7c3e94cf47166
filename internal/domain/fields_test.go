package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHumanizeFieldName(t *testing.T) {
	cases := map[string]string{
		"VendorName":    "vendor name",
		"InvoiceNumber": "invoice number",
		"PurchaseOrder": "purchase order",
		"Salestax":      "salestax",
		"Total":         "total",
	}
	for in, want := range cases {
		assert.Equal(t, want, HumanizeFieldName(in))
	}
}

func TestKnownField(t *testing.T) {
	assert.True(t, KnownField("VendorName"))
	assert.True(t, KnownField("Total"))
	assert.False(t, KnownField("vendor name"))
	assert.False(t, KnownField("TaxRate"))
}

func TestFieldNamesOrder(t *testing.T) {
	assert.Len(t, FieldNames, 11)
	assert.Equal(t, "VendorName", FieldNames[0])
	assert.Equal(t, "Total", FieldNames[10])
}

package domain

import "strings"

// FieldNames is the fixed set of fields extracted for every invoice page,
// in output order. Reconciler, serializers, and handlers all consume this
// single definition.
var FieldNames = []string{
	"VendorName",
	"InvoiceNumber",
	"InvoiceDate",
	"CustomerName",
	"PurchaseOrder",
	"StockCode",
	"UnitPrice",
	"InvoiceAmount",
	"Freight",
	"Salestax",
	"Total",
}

// KnownField reports whether name is part of the fixed field set.
func KnownField(name string) bool {
	for _, f := range FieldNames {
		if f == name {
			return true
		}
	}
	return false
}

// HumanizeFieldName converts a PascalCase field identifier to space-separated
// lowercase words: "VendorName" -> "vendor name", "Salestax" -> "salestax".
func HumanizeFieldName(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 4)
	for i, r := range name {
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return strings.ToLower(b.String())
}

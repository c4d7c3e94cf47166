// Package ingest normalizes raw upstream extraction output into the typed
// batch model. The extraction pipeline emits heterogeneous field entries:
// an object with value/confidence, or a bare scalar or array. Normalizing
// here removes representation branching from the reconciler and serializers.
package ingest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"

	"docreview/internal/domain"
)

type rawBatch struct {
	Documents []rawDocument `json:"documents"`
}

type rawDocument struct {
	Filename string    `json:"filename"`
	Pages    []rawPage `json:"pages"`
}

type rawPage struct {
	Number int                        `json:"page_number"`
	Error  string                     `json:"error"`
	Fields map[string]json.RawMessage `json:"fields"`
}

type rawField struct {
	Value      *json.RawMessage `json:"value"`
	Confidence *json.RawMessage `json:"confidence"`
}

// ParseBatch decodes and normalizes an upstream extraction payload.
// Filenames must be unique and non-empty; a page missing its 1-based
// page_number label gets its input position. An error marker wins over any
// field data present on the same page.
func ParseBatch(data []byte) (*domain.Batch, error) {
	var raw rawBatch
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidBatch, err)
	}
	if len(raw.Documents) == 0 {
		return nil, fmt.Errorf("%w: no documents", domain.ErrInvalidBatch)
	}

	batch := &domain.Batch{Documents: make([]domain.Document, 0, len(raw.Documents))}
	seen := make(map[string]bool, len(raw.Documents))

	for _, doc := range raw.Documents {
		if doc.Filename == "" {
			return nil, fmt.Errorf("%w: document with empty filename", domain.ErrInvalidBatch)
		}
		if seen[doc.Filename] {
			return nil, fmt.Errorf("%w: duplicate filename %q", domain.ErrInvalidBatch, doc.Filename)
		}
		seen[doc.Filename] = true

		out := domain.Document{Filename: doc.Filename, Pages: make([]domain.Page, 0, len(doc.Pages))}
		for i, page := range doc.Pages {
			number := page.Number
			if number <= 0 {
				number = i + 1
			}
			if page.Error != "" {
				out.Pages = append(out.Pages, domain.Page{Number: number, Error: page.Error})
				continue
			}
			fields := make(map[string]domain.Field, len(page.Fields))
			for name, entry := range page.Fields {
				fields[name] = normalizeField(entry)
			}
			out.Pages = append(out.Pages, domain.Page{Number: number, Fields: fields})
		}
		batch.Documents = append(batch.Documents, out)
	}

	return batch, nil
}

// normalizeField converts one raw field entry into a typed Field. Objects
// contribute value and confidence; an object without a value key reads as
// "N/A" the way the extraction pipeline reports unreadable fields. Bare
// values carry confidence 0.
func normalizeField(entry json.RawMessage) domain.Field {
	trimmed := bytes.TrimSpace(entry)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var obj rawField
		if err := json.Unmarshal(trimmed, &obj); err == nil {
			f := domain.Field{Value: "N/A"}
			if obj.Value != nil {
				f.Value = coerceString(*obj.Value)
			}
			if obj.Confidence != nil {
				f.Confidence = coerceConfidence(*obj.Confidence)
			}
			return f
		}
	}
	return domain.Field{Value: coerceString(trimmed), Confidence: 0}
}

// coerceString renders any JSON value as text. Strings are unquoted, null is
// empty, and everything else (numbers, bools, arrays, objects) keeps its
// compact JSON representation so structured values survive as plain text.
func coerceString(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(trimmed, &s); err == nil {
		return s
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, trimmed); err != nil {
		return string(trimmed)
	}
	return buf.String()
}

// coerceConfidence parses a confidence fraction, defaulting to 0 on any
// malformed value and clamping to [0,1].
func coerceConfidence(raw json.RawMessage) float64 {
	var v float64
	if err := json.Unmarshal(bytes.TrimSpace(raw), &v); err != nil {
		return 0
	}
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Package export renders the current state of a review session into the
// downloadable and uploadable artifact formats: per-document text, a flat
// table, CSV, XLSX, and a zip bundle of the text files.
package export

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"docreview/internal/domain"
)

// FormatConfidence renders a confidence fraction as a percentage rounded to
// two decimals, with at least one decimal digit: 0.82 -> "82.0",
// 0.8235 -> "82.35", 0 -> "0.0".
func FormatConfidence(c float64) string {
	pct := math.Round(c*10000) / 100
	s := strconv.FormatFloat(pct, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// RenderPageText renders a document as a human-readable per-page key/value
// block. Error pages contribute a single error line and nothing else. The
// output is a pure function of the document: identical input yields
// byte-identical text.
func RenderPageText(doc *domain.Document) string {
	var b strings.Builder
	for i := range doc.Pages {
		page := &doc.Pages[i]
		fmt.Fprintf(&b, "--- PAGE %d ---\n", page.Number)
		if page.Failed() {
			fmt.Fprintf(&b, "error: %s\n", page.Error)
			b.WriteByte('\n')
			continue
		}
		for _, name := range domain.FieldNames {
			f := page.Fields[name]
			label := domain.HumanizeFieldName(name)
			fmt.Fprintf(&b, "%s: %s\n", label, f.Value)
			fmt.Fprintf(&b, "%s confidence: %s%%\n", label, FormatConfidence(f.Confidence))
			if f.ManuallyEdited {
				fmt.Fprintf(&b, "%s manually edited: Yes\n", label)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// RenderBatchText renders every document in the batch, keyed by filename.
func RenderBatchText(batch *domain.Batch) map[string]string {
	out := make(map[string]string, len(batch.Documents))
	for i := range batch.Documents {
		doc := &batch.Documents[i]
		out[doc.Filename] = RenderPageText(doc)
	}
	return out
}

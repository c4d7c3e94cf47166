package review

import (
	"fmt"

	"docreview/internal/domain"
)

// Edit is one user-submitted field override.
type Edit struct {
	Filename string `json:"filename"`
	Page     int    `json:"page_number"`
	Field    string `json:"field"`
	Value    string `json:"value"`
}

// applyEdit applies a single override to state. The replacement entry keeps
// the confidence the field had in the original batch (0 if it never existed
// there) and sets the edited flag. An edit equal to the current value of an
// already-seen field is a no-op, so repeated submissions of the same form
// never produce a spurious edited flag. Each application fully replaces the
// field entry.
func applyEdit(state, original *domain.Batch, e Edit) error {
	doc, ok := state.DocumentByName(e.Filename)
	if !ok {
		return fmt.Errorf("%w: document %q", domain.ErrOutOfRange, e.Filename)
	}
	page, ok := doc.PageByNumber(e.Page)
	if !ok {
		return fmt.Errorf("%w: page %d of %q", domain.ErrOutOfRange, e.Page, e.Filename)
	}
	if page.Failed() {
		return fmt.Errorf("%w: page %d of %q", domain.ErrPageFailed, e.Page, e.Filename)
	}

	current, seen := page.Fields[e.Field]
	if seen && current.Value == e.Value {
		return nil
	}

	if page.Fields == nil {
		page.Fields = make(map[string]domain.Field, 1)
	}
	page.Fields[e.Field] = domain.Field{
		Value:          e.Value,
		Confidence:     originalConfidence(original, e),
		ManuallyEdited: true,
	}
	return nil
}

// originalConfidence looks the field up in the original batch, not in any
// previously edited state, so chained edits cannot drift the score.
func originalConfidence(original *domain.Batch, e Edit) float64 {
	doc, ok := original.DocumentByName(e.Filename)
	if !ok {
		return 0
	}
	page, ok := doc.PageByNumber(e.Page)
	if !ok || page.Failed() {
		return 0
	}
	f, ok := page.Fields[e.Field]
	if !ok {
		return 0
	}
	return f.Confidence
}

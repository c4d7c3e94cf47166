package export

import (
	"fmt"
	"strconv"

	"docreview/internal/domain"
)

// Table is the flat tabular view of a batch: one row per document-page,
// every cell coerced to text so any tabular encoder can consume it.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Columns returns the table header: Filename, Page, then a value/confidence/
// edited column triple per fixed field.
func Columns() []string {
	cols := make([]string, 0, 2+3*len(domain.FieldNames))
	cols = append(cols, "Filename", "Page")
	for _, name := range domain.FieldNames {
		cols = append(cols, name, name+" Confidence", name+" Edited")
	}
	return cols
}

// cellStrategy converts raw row cells to text. Strategies are tried in
// order; each reports failure as a value instead of panicking, replacing the
// layered exception fallback the extraction tooling used for dataframe
// construction.
type cellStrategy struct {
	name    string
	convert func(cell any) (string, error)
}

var tableStrategies = []cellStrategy{
	{name: "typed", convert: typedCell},
	{name: "stringify", convert: stringifyCell},
}

// typedCell accepts only the cell types the table is specified to contain.
func typedCell(cell any) (string, error) {
	switch v := cell.(type) {
	case string:
		return v, nil
	case int:
		return strconv.Itoa(v), nil
	case bool:
		return formatBool(v), nil
	default:
		return "", fmt.Errorf("unsupported cell type %T", cell)
	}
}

// stringifyCell coerces anything to its string representation.
func stringifyCell(cell any) (string, error) {
	if s, ok := cell.(string); ok {
		return s, nil
	}
	return fmt.Sprint(cell), nil
}

// RenderTable builds the tabular view of a batch. Error pages render as
// "N/A" values with zero confidence and no edited flag. If every coercion
// strategy fails the result is an empty table with the header intact and a
// typed serialization failure, never a crash.
func RenderTable(batch *domain.Batch) (*Table, error) {
	raw := rawRows(batch)

	var lastErr error
	for _, strategy := range tableStrategies {
		rows, err := convertRows(raw, strategy)
		if err == nil {
			return &Table{Columns: Columns(), Rows: rows}, nil
		}
		lastErr = err
	}
	return &Table{Columns: Columns()}, fmt.Errorf("%w: %v", domain.ErrSerialization, lastErr)
}

// rawRows assembles one row of untyped cells per document-page.
func rawRows(batch *domain.Batch) [][]any {
	rows := make([][]any, 0, batch.PageCount())
	for i := range batch.Documents {
		doc := &batch.Documents[i]
		for j := range doc.Pages {
			page := &doc.Pages[j]
			row := make([]any, 0, 2+3*len(domain.FieldNames))
			row = append(row, doc.Filename, page.Number)
			for _, name := range domain.FieldNames {
				if page.Failed() {
					row = append(row, "N/A", FormatConfidence(0), "No")
					continue
				}
				f := page.Fields[name]
				row = append(row, f.Value, FormatConfidence(f.Confidence), formatBool(f.ManuallyEdited))
			}
			rows = append(rows, row)
		}
	}
	return rows
}

func convertRows(raw [][]any, strategy cellStrategy) ([][]string, error) {
	rows := make([][]string, len(raw))
	for i, row := range raw {
		cells := make([]string, len(row))
		for j, cell := range row {
			s, err := strategy.convert(cell)
			if err != nil {
				return nil, fmt.Errorf("%s strategy, row %d column %d: %w", strategy.name, i, j, err)
			}
			cells[j] = s
		}
		rows[i] = cells
	}
	return rows, nil
}

func formatBool(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

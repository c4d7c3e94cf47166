package domain

// Field is one extracted datum for one field name on one page.
type Field struct {
	Value          string  `json:"value"`
	Confidence     float64 `json:"confidence"`
	ManuallyEdited bool    `json:"manually_edited"`
}

// Page holds either a field mapping or an error marker, never both. A page
// with a non-empty Error has no field data and is skipped by every consumer.
type Page struct {
	Number int              `json:"page_number"`
	Fields map[string]Field `json:"fields,omitempty"`
	Error  string           `json:"error,omitempty"`
}

// Failed reports whether the page carries an upstream extraction error.
func (p *Page) Failed() bool {
	return p.Error != ""
}

// Document is one source PDF's extraction result, identified by filename.
// Page order is input order; the page number is the authoritative label.
type Document struct {
	Filename string `json:"filename"`
	Pages    []Page `json:"pages"`
}

// PageByNumber returns the page labeled with the given 1-based number.
func (d *Document) PageByNumber(n int) (*Page, bool) {
	for i := range d.Pages {
		if d.Pages[i].Number == n {
			return &d.Pages[i], true
		}
	}
	return nil, false
}

// Batch is an ordered set of documents produced by one extraction run.
// It is treated as read-only input; edits operate on a deep copy.
type Batch struct {
	Documents []Document `json:"documents"`
}

// DocumentByName returns the document with the given filename.
func (b *Batch) DocumentByName(filename string) (*Document, bool) {
	for i := range b.Documents {
		if b.Documents[i].Filename == filename {
			return &b.Documents[i], true
		}
	}
	return nil, false
}

// Clone returns a deep structural copy of the batch.
func (b *Batch) Clone() *Batch {
	out := &Batch{Documents: make([]Document, len(b.Documents))}
	for i, doc := range b.Documents {
		copied := Document{Filename: doc.Filename, Pages: make([]Page, len(doc.Pages))}
		for j, page := range doc.Pages {
			p := Page{Number: page.Number, Error: page.Error}
			if page.Fields != nil {
				p.Fields = make(map[string]Field, len(page.Fields))
				for name, f := range page.Fields {
					p.Fields[name] = f
				}
			}
			copied.Pages[j] = p
		}
		out.Documents[i] = copied
	}
	return out
}

// HasEdits reports whether any field in the batch was manually edited.
func (b *Batch) HasEdits() bool {
	for i := range b.Documents {
		for j := range b.Documents[i].Pages {
			for _, f := range b.Documents[i].Pages[j].Fields {
				if f.ManuallyEdited {
					return true
				}
			}
		}
	}
	return false
}

// PageCount returns the total number of pages across all documents.
func (b *Batch) PageCount() int {
	n := 0
	for i := range b.Documents {
		n += len(b.Documents[i].Pages)
	}
	return n
}

// EditCount returns the number of manually edited fields across the batch.
func (b *Batch) EditCount() int {
	n := 0
	for i := range b.Documents {
		for j := range b.Documents[i].Pages {
			for _, f := range b.Documents[i].Pages[j].Fields {
				if f.ManuallyEdited {
					n++
				}
			}
		}
	}
	return n
}

package export

import (
	"archive/zip"
	"bytes"
	"fmt"
	"sort"
	"time"
)

// BuildTextArchive bundles per-document text renderings into a zip archive,
// one entry per document. Entries are written in sorted filename order so
// the archive bytes are reproducible for a given state and timestamp.
func BuildTextArchive(texts map[string]string, ts time.Time, edited bool) ([]byte, error) {
	names := make([]string, 0, len(texts))
	for name := range texts {
		names = append(names, name)
	}
	sort.Strings(names)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, name := range names {
		entry, err := zw.Create(TextFileName(name, ts, edited))
		if err != nil {
			return nil, fmt.Errorf("creating zip entry for %q: %w", name, err)
		}
		if _, err := entry.Write([]byte(texts[name])); err != nil {
			return nil, fmt.Errorf("writing zip entry for %q: %w", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("closing zip archive: %w", err)
	}
	return buf.Bytes(), nil
}

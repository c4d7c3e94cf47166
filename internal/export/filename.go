package export

import (
	"fmt"
	"path"
	"regexp"
	"strings"
	"time"
)

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a document name for use in blob names and
// Content-Disposition headers. Replaces non-alphanumeric chars (except - _)
// with _, collapses consecutive underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// Timestamp formats an artifact timestamp: 20060102_150405.
func Timestamp(t time.Time) string {
	return t.Format("20060102_150405")
}

// basename strips the extension from a document filename.
func basename(filename string) string {
	return strings.TrimSuffix(filename, path.Ext(filename))
}

func editedSuffix(edited bool) string {
	if edited {
		return "_edited"
	}
	return ""
}

// TextFileName returns the per-document text artifact name:
// <basename>_<timestamp>.txt, or the _edited variant.
func TextFileName(filename string, ts time.Time, edited bool) string {
	return fmt.Sprintf("%s_%s%s.txt", SanitizeFilename(basename(filename)), Timestamp(ts), editedSuffix(edited))
}

// CSVFileName returns the tabular artifact name:
// financial_data_extraction_<timestamp>.csv, or the _edited variant.
func CSVFileName(ts time.Time, edited bool) string {
	return fmt.Sprintf("financial_data_extraction_%s%s.csv", Timestamp(ts), editedSuffix(edited))
}

// XLSXFileName returns the Excel artifact name.
func XLSXFileName(ts time.Time, edited bool) string {
	return fmt.Sprintf("financial_data_extraction_%s%s.xlsx", Timestamp(ts), editedSuffix(edited))
}

// ZipFileName returns the bundled text download name.
func ZipFileName(ts time.Time, edited bool) string {
	return fmt.Sprintf("financial_data_extraction_%s%s.zip", Timestamp(ts), editedSuffix(edited))
}

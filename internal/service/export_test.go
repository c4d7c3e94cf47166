package service

import "time"

// SetNowForTest overrides the export service clock so tests can produce
// deterministic artifact names.
func SetNowForTest(s ExportService, now func() time.Time) {
	s.(*exportService).now = now
}

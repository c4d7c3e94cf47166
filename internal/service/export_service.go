package service

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/google/uuid"

	"docreview/internal/config"
	"docreview/internal/export"
	"docreview/internal/port"
	"docreview/internal/review"
)

// Artifact is a rendered export ready for download or upload.
type Artifact struct {
	Name        string
	ContentType string
	Content     []byte
}

// UploadResult records the outcome of a single artifact upload.
// Failures are reported per artifact so one bad object does not
// discard the rest of the run.
type UploadResult struct {
	BlobName string `json:"blob_name"`
	Success  bool   `json:"success"`
	URL      string `json:"url,omitempty"`
	Error    string `json:"error,omitempty"`
}

// ExportService renders review sessions into downloadable artifacts
// and pushes them to object storage when configured.
type ExportService interface {
	TextArchive(sessionID uuid.UUID) (*Artifact, error)
	CSV(sessionID uuid.UUID) (*Artifact, error)
	XLSX(sessionID uuid.UUID) (*Artifact, error)
	Upload(ctx context.Context, sessionID uuid.UUID) ([]UploadResult, error)
}

type exportService struct {
	sessions *review.Manager
	storage  port.ObjectStorage
	cfg      *config.Config
	now      func() time.Time
}

// NewExportService creates a new ExportService implementation.
// storage may be nil when no bucket is configured; uploads are then skipped.
func NewExportService(sessions *review.Manager, storage port.ObjectStorage, cfg *config.Config) ExportService {
	return &exportService{
		sessions: sessions,
		storage:  storage,
		cfg:      cfg,
		now:      time.Now,
	}
}

func (s *exportService) TextArchive(sessionID uuid.UUID) (*Artifact, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}

	batch := sess.Store.Snapshot()
	ts := s.now()
	edited := batch.HasEdits()

	archive, err := export.BuildTextArchive(export.RenderBatchText(batch), ts, edited)
	if err != nil {
		return nil, err
	}
	return &Artifact{
		Name:        export.ZipFileName(ts, edited),
		ContentType: "application/zip",
		Content:     archive,
	}, nil
}

func (s *exportService) CSV(sessionID uuid.UUID) (*Artifact, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}

	batch := sess.Store.Snapshot()
	table, err := export.RenderTable(batch)
	if err != nil {
		return nil, err
	}
	content, err := export.EncodeTableCSV(table)
	if err != nil {
		return nil, err
	}
	return &Artifact{
		Name:        export.CSVFileName(s.now(), batch.HasEdits()),
		ContentType: "text/csv; charset=utf-8",
		Content:     content,
	}, nil
}

func (s *exportService) XLSX(sessionID uuid.UUID) (*Artifact, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}

	batch := sess.Store.Snapshot()
	table, err := export.RenderTable(batch)
	if err != nil {
		return nil, err
	}
	content, err := export.EncodeTableXLSX(table)
	if err != nil {
		return nil, err
	}
	return &Artifact{
		Name:        export.XLSXFileName(s.now(), batch.HasEdits()),
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Content:     content,
	}, nil
}

// Upload pushes one text file per document plus the batch CSV to object
// storage. When storage is not configured it logs and returns no results.
func (s *exportService) Upload(ctx context.Context, sessionID uuid.UUID) ([]UploadResult, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}

	if s.storage == nil {
		log.Printf("exportService.Upload: object storage not configured, skipping session %s", sessionID)
		return []UploadResult{}, nil
	}

	batch := sess.Store.Snapshot()
	ts := s.now()
	edited := batch.HasEdits()

	texts := export.RenderBatchText(batch)
	names := make([]string, 0, len(texts))
	for name := range texts {
		names = append(names, name)
	}
	sort.Strings(names)

	results := make([]UploadResult, 0, len(names)+1)
	for _, name := range names {
		blob := export.TextFileName(name, ts, edited)
		key := s.cfg.Export.TextPrefix + blob
		results = append(results, s.uploadOne(ctx, key, blob, "text/plain; charset=utf-8", []byte(texts[name])))
	}

	table, err := export.RenderTable(batch)
	if err != nil {
		return results, err
	}
	content, err := export.EncodeTableCSV(table)
	if err != nil {
		return results, err
	}
	blob := export.CSVFileName(ts, edited)
	results = append(results, s.uploadOne(ctx, s.cfg.Export.CSVPrefix+blob, blob, "text/csv; charset=utf-8", content))

	return results, nil
}

func (s *exportService) uploadOne(ctx context.Context, key, blob, contentType string, content []byte) UploadResult {
	out, err := s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.cfg.S3.Bucket,
		Key:         key,
		Body:        bytes.NewReader(content),
		ContentType: contentType,
		Size:        int64(len(content)),
	})
	if err != nil {
		log.Printf("exportService.Upload: upload failed for %s: %v", key, err)
		return UploadResult{BlobName: blob, Success: false, Error: err.Error()}
	}

	location := out.Location
	if location == "" {
		location = fmt.Sprintf("s3://%s/%s", s.cfg.S3.Bucket, key)
	}
	return UploadResult{BlobName: blob, Success: true, URL: location}
}

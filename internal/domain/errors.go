package domain

import "errors"

var (
	ErrSessionNotFound = errors.New("review session not found")
	ErrOutOfRange      = errors.New("document or page out of range")
	ErrPageFailed      = errors.New("page carries an extraction error")
	ErrInvalidBatch    = errors.New("invalid batch payload")
	ErrSerialization   = errors.New("table serialization failed")
	ErrUploadFailed    = errors.New("artifact upload to storage failed")
)

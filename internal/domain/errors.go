package domain

import "errors"

var (
	ErrEmptyDataset        = errors.New("dataset contains no records")
	ErrFilingNotFound      = errors.New("filing not found")
	ErrMissingFile         = errors.New("file field is required")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrEmptyQuery          = errors.New("query must not be empty")
	ErrInvalidCSV          = errors.New("file is not a parseable CSV")
	ErrUnsupportedFormat   = errors.New("unsupported export format")
)

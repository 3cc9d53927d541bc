package domain

import "errors"

var (
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrMissingAPIKey       = errors.New("model API key is not configured")
	ErrUpstreamTimeout     = errors.New("model call timed out")
	ErrUpstreamFailure     = errors.New("model call failed")
)

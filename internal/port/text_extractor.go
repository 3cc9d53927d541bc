package port

import (
	"context"

	"labelscan/internal/domain"
)

// TextExtractor acquires plain text from a PDF on disk, choosing between
// direct text-layer extraction and OCR.
type TextExtractor interface {
	Extract(ctx context.Context, pdfPath string) (*domain.ExtractedDocument, error)
	// OCRAvailable reports whether the OCR engine can be invoked.
	OCRAvailable() bool
}

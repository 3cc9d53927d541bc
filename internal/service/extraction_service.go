package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"net"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"labelscan/internal/config"
	"labelscan/internal/domain"
	"labelscan/internal/llmjson"
	"labelscan/internal/normalize"
	"labelscan/internal/port"
	"labelscan/internal/validator"
)

// truncationMarker replaces the middle of over-long documents so prefix and
// suffix both reach the model.
const truncationMarker = "\n\n... [TRUNCATED] ...\n\n"

// ExtractionService drives the label extraction pipeline for one uploaded PDF.
type ExtractionService interface {
	Process(ctx context.Context, fileBytes []byte, filename string) (*domain.ExtractionResult, error)
	// OCRAvailable reports whether the OCR fallback engine is reachable.
	OCRAvailable() bool
}

type extractionService struct {
	extractor port.TextExtractor
	parser    port.LabelParser
	cfg       *config.ExtractConfig
}

// NewExtractionService creates an ExtractionService implementation.
func NewExtractionService(
	extractor port.TextExtractor,
	parser port.LabelParser,
	cfg *config.ExtractConfig,
) ExtractionService {
	return &extractionService{
		extractor: extractor,
		parser:    parser,
		cfg:       cfg,
	}
}

func (s *extractionService) Process(ctx context.Context, fileBytes []byte, filename string) (*domain.ExtractionResult, error) {
	start := time.Now()
	fileSizeMB := math.Round(float64(len(fileBytes))/(1024*1024)*100) / 100

	log.Printf("extractionService.Process: processing %s (%.2fMB)", filename, fileSizeMB)

	pdfPath := filepath.Join(os.TempDir(), "labelscan-"+uuid.New().String()+".pdf")
	if err := os.WriteFile(pdfPath, fileBytes, 0o600); err != nil {
		return nil, fmt.Errorf("writing temp file: %w", err)
	}
	// The temp file must be gone on every exit path.
	defer func() { _ = os.Remove(pdfPath) }()

	doc, err := s.extractor.Extract(ctx, pdfPath)
	if err != nil {
		return nil, fmt.Errorf("extracting text: %w", err)
	}

	if len(strings.TrimSpace(doc.RawText)) < s.cfg.MinTextChars {
		log.Printf("extractionService.Process: no usable text in %s", filename)
		result := domain.NewExtractionResult()
		result.Meta["mode"] = string(domain.ModeEmpty)
		result.Meta["error"] = "no text found in PDF"
		result.Meta["filename"] = filename
		result.Meta["file_size_mb"] = fileSizeMB
		return result, nil
	}

	text, truncated := truncateMiddle(doc.RawText, s.cfg.MaxPromptChars)
	if truncated {
		log.Printf("extractionService.Process: text truncated to %d chars", s.cfg.MaxPromptChars)
	}

	out, err := s.parser.Parse(ctx, port.ParseInput{Text: text, Filename: filename})
	if err != nil {
		if isTimeout(err) {
			return nil, fmt.Errorf("%w: %w", domain.ErrUpstreamTimeout, err)
		}
		if errors.Is(err, domain.ErrMissingAPIKey) {
			return nil, err
		}
		// Wrap with %w on both sides so provider error details (rate
		// limit backoff in particular) survive to the handler.
		return nil, fmt.Errorf("%w: %w", domain.ErrUpstreamFailure, err)
	}

	recovered := llmjson.Recover(out.RawContent)
	normalized := normalize.Apply(recovered)

	result, issues := validator.Coerce(normalized)
	if len(issues) > 0 {
		log.Printf("extractionService.Process: validation issues for %s: %s", filename, strings.Join(issues, "; "))
		result.Meta["validation_error"] = strings.Join(issues, "; ")
	}

	result.Meta["mode"] = string(doc.Mode)
	result.Meta["text_length"] = len(doc.RawText)
	result.Meta["truncated"] = truncated
	result.Meta["model"] = out.ModelUsed
	result.Meta["filename"] = filename
	result.Meta["file_size_mb"] = fileSizeMB
	result.Meta["duration_ms"] = time.Since(start).Milliseconds()

	log.Printf("extractionService.Process: processed %s in %s", filename, time.Since(start))
	return result, nil
}

func (s *extractionService) OCRAvailable() bool {
	return s.extractor.OCRAvailable()
}

// truncateMiddle bounds text to maxChars characters by keeping a prefix and
// suffix half around a truncation marker. Cuts land on rune boundaries so
// accented characters at the seams stay intact.
func truncateMiddle(text string, maxChars int) (string, bool) {
	runes := []rune(text)
	if len(runes) <= maxChars {
		return text, false
	}
	half := maxChars / 2
	return string(runes[:half]) + truncationMarker + string(runes[len(runes)-half:]), true
}

// isTimeout reports whether err represents an exceeded deadline, either from
// the context or from the HTTP client's own timeout.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

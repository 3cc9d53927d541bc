package pdftext

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"log"
	"os/exec"
	"strconv"
	"strings"

	"github.com/gen2brain/go-fitz"
	"golang.org/x/sync/errgroup"
)

// ocrConcurrency bounds how many pages are recognized at once; tesseract is
// CPU-bound and each invocation already uses internal threading.
const ocrConcurrency = 2

// extractOCR rasterizes pages up to the configured cap and runs the tesseract
// binary on each. Per-page failures are logged and skipped; page order is
// preserved in the output.
func (e *Extractor) extractOCR(ctx context.Context, pdfPath string) (string, int, error) {
	doc, err := fitz.New(pdfPath)
	if err != nil {
		return "", 0, fmt.Errorf("rasterizing pdf: %w", err)
	}
	defer func() { _ = doc.Close() }()

	numPages := doc.NumPage()
	ocrPages := numPages
	if ocrPages > e.cfg.MaxOCRPages {
		// Pages beyond the cap are silently skipped to bound OCR cost.
		ocrPages = e.cfg.MaxOCRPages
	}

	results := make([]string, ocrPages)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(ocrConcurrency)

	for i := 0; i < ocrPages; i++ {
		i := i
		g.Go(func() error {
			img, imgErr := doc.ImageDPI(i, float64(e.cfg.OCRDPI))
			if imgErr != nil {
				log.Printf("pdftext.extractOCR: rasterizing page %d failed: %v", i+1, imgErr)
				return nil
			}

			var buf bytes.Buffer
			if encErr := png.Encode(&buf, img); encErr != nil {
				log.Printf("pdftext.extractOCR: encoding page %d failed: %v", i+1, encErr)
				return nil
			}

			text, ocrErr := e.runTesseract(gctx, &buf)
			if ocrErr != nil {
				log.Printf("pdftext.extractOCR: OCR on page %d failed: %v", i+1, ocrErr)
				return nil
			}
			results[i] = text
			return nil
		})
	}

	// Goroutines only return nil; Wait is for completion, not error collection.
	_ = g.Wait()

	var b strings.Builder
	for i, text := range results {
		if strings.TrimSpace(text) == "" {
			continue
		}
		fmt.Fprintf(&b, "--- Page %d ---\n%s\n", i+1, text)
	}

	return strings.TrimSpace(b.String()), numPages, nil
}

// runTesseract feeds a PNG to the tesseract binary on stdin and returns the
// recognized text. The language hint supports joined ISO codes (e.g. "hun+eng").
func (e *Extractor) runTesseract(ctx context.Context, image *bytes.Buffer) (string, error) {
	cmd := exec.CommandContext(ctx, e.cfg.TesseractPath,
		"stdin", "stdout",
		"-l", e.cfg.OCRLang,
		"--dpi", strconv.Itoa(e.cfg.OCRDPI),
	)
	cmd.Stdin = image

	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("tesseract: %w (%s)", err, strings.TrimSpace(stderr.String()))
	}
	return out.String(), nil
}

package pdftext

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// extractDirect pulls the embedded text layer page by page, concatenating
// pages with markers. Returns the trimmed text and the page count.
func (e *Extractor) extractDirect(pdfPath string) (string, int, error) {
	f, r, err := pdf.Open(pdfPath)
	if err != nil {
		return "", 0, fmt.Errorf("opening pdf: %w", err)
	}
	defer func() { _ = f.Close() }()

	numPages := r.NumPage()
	var b strings.Builder

	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, pageErr := page.GetPlainText(nil)
		if pageErr != nil {
			// Unreadable pages are skipped, not fatal.
			continue
		}
		if strings.TrimSpace(pageText) == "" {
			continue
		}
		fmt.Fprintf(&b, "--- Page %d ---\n%s\n", i, pageText)
	}

	return strings.TrimSpace(b.String()), numPages, nil
}

package pdftext_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labelscan/internal/config"
	"labelscan/internal/domain"
	"labelscan/internal/pdftext"
)

func testCfg() *config.ExtractConfig {
	return &config.ExtractConfig{
		OCRDPI:         150,
		MaxOCRPages:    2,
		OCRLang:        "eng",
		TesseractPath:  "tesseract",
		MinDirectChars: 100,
	}
}

func TestExtract_UnreadableFileDegradesToEmpty(t *testing.T) {
	e := pdftext.NewExtractor(testCfg())

	doc, err := e.Extract(context.Background(), "/nonexistent/label.pdf")

	require.NoError(t, err, "stage failures must degrade, not fail")
	require.NotNil(t, doc)
	assert.Equal(t, domain.ModeEmpty, doc.Mode)
	assert.Empty(t, doc.RawText)
}

func TestExtract_GarbageFileDegradesToEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not-a-pdf.pdf")
	require.NoError(t, os.WriteFile(path, []byte("this is not a pdf"), 0o600))

	e := pdftext.NewExtractor(testCfg())
	doc, err := e.Extract(context.Background(), path)

	require.NoError(t, err)
	assert.Equal(t, domain.ModeEmpty, doc.Mode)
}

func TestOCRAvailable_MissingBinary(t *testing.T) {
	cfg := testCfg()
	cfg.TesseractPath = "definitely-not-a-real-binary-name"

	e := pdftext.NewExtractor(cfg)

	assert.False(t, e.OCRAvailable())
}

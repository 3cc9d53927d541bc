package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labelscan/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8000", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Environment)

	assert.Equal(t, "groq", cfg.Parser.Provider)
	assert.Equal(t, "llama-3.3-70b-versatile", cfg.Parser.DefaultModel)
	assert.Equal(t, 60, cfg.Parser.TimeoutSecs)
	assert.Empty(t, cfg.Parser.APIKey)

	assert.Equal(t, int64(10), cfg.Extract.MaxPDFSizeMB)
	assert.Equal(t, 300, cfg.Extract.OCRDPI)
	assert.Equal(t, 10, cfg.Extract.MaxOCRPages)
	assert.Equal(t, "hun+eng", cfg.Extract.OCRLang)
	assert.Equal(t, "tesseract", cfg.Extract.TesseractPath)
	assert.Equal(t, 100, cfg.Extract.MinDirectChars)
	assert.Equal(t, 10, cfg.Extract.MinTextChars)
	assert.Equal(t, 15000, cfg.Extract.MaxPromptChars)

	assert.Contains(t, cfg.CORS.AllowedOrigins, "http://localhost:5173")
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("LABELSCAN_SERVER_PORT", ":9090")
	t.Setenv("LABELSCAN_PARSER_API_KEY", "gsk_live_key")
	t.Setenv("LABELSCAN_PARSER_DEFAULT_MODEL", "llama-3.1-8b-instant")
	t.Setenv("LABELSCAN_EXTRACT_MAX_PDF_SIZE_MB", "25")
	t.Setenv("LABELSCAN_EXTRACT_OCR_LANG", "eng")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Port)
	assert.Equal(t, "gsk_live_key", cfg.Parser.APIKey)
	assert.Equal(t, "llama-3.1-8b-instant", cfg.Parser.DefaultModel)
	assert.Equal(t, int64(25), cfg.Extract.MaxPDFSizeMB)
	assert.Equal(t, "eng", cfg.Extract.OCRLang)
}

func TestLoad_PlatformPortFallback(t *testing.T) {
	t.Setenv("PORT", "7001")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":7001", cfg.Server.Port)
}

func TestLoad_ExplicitPortWinsOverPlatformPort(t *testing.T) {
	t.Setenv("PORT", "7001")
	t.Setenv("LABELSCAN_SERVER_PORT", ":8080")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Port)
}

func TestLoad_CORSOriginsParsed(t *testing.T) {
	t.Setenv("LABELSCAN_CORS_ALLOWED_ORIGINS", "https://app.example.com, https://admin.example.com")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.CORS.AllowedOrigins)
}

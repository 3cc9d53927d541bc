package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration. It is built once at startup
// and read-only afterwards.
type Config struct {
	Server  ServerConfig
	Log     LogConfig
	CORS    CORSConfig
	Parser  ParserConfig
	Extract ExtractConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// ParserConfig holds LLM label parser settings.
type ParserConfig struct {
	Provider     string `mapstructure:"provider"`
	APIKey       string `mapstructure:"api_key"`
	DefaultModel string `mapstructure:"default_model"`
	TimeoutSecs  int    `mapstructure:"timeout_secs"`
}

// ExtractConfig holds PDF text acquisition and upload limits.
type ExtractConfig struct {
	MaxPDFSizeMB   int64  `mapstructure:"max_pdf_size_mb"`
	OCRDPI         int    `mapstructure:"ocr_dpi"`
	MaxOCRPages    int    `mapstructure:"max_ocr_pages"`
	OCRLang        string `mapstructure:"ocr_lang"`
	TesseractPath  string `mapstructure:"tesseract_path"`
	MinDirectChars int    `mapstructure:"min_direct_chars"`
	MinTextChars   int    `mapstructure:"min_text_chars"`
	MaxPromptChars int    `mapstructure:"max_prompt_chars"`
}

// Load reads configuration from environment variables with the LABELSCAN_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("LABELSCAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8000")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "120s")
	v.SetDefault("server.environment", "development")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:5173,http://127.0.0.1:5173")

	// Parser defaults
	v.SetDefault("parser.provider", "groq")
	v.SetDefault("parser.api_key", "")
	v.SetDefault("parser.default_model", "llama-3.3-70b-versatile")
	v.SetDefault("parser.timeout_secs", 60)

	// Extraction defaults
	v.SetDefault("extract.max_pdf_size_mb", 10)
	v.SetDefault("extract.ocr_dpi", 300)
	v.SetDefault("extract.max_ocr_pages", 10)
	v.SetDefault("extract.ocr_lang", "hun+eng")
	v.SetDefault("extract.tesseract_path", "tesseract")
	v.SetDefault("extract.min_direct_chars", 100)
	v.SetDefault("extract.min_text_chars", 10)
	v.SetDefault("extract.max_prompt_chars", 15000)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":              "LABELSCAN_SERVER_PORT",
		"server.read_timeout":      "LABELSCAN_SERVER_READ_TIMEOUT",
		"server.write_timeout":     "LABELSCAN_SERVER_WRITE_TIMEOUT",
		"server.environment":       "LABELSCAN_SERVER_ENVIRONMENT",
		"log.level":                "LABELSCAN_LOG_LEVEL",
		"log.format":               "LABELSCAN_LOG_FORMAT",
		"cors.allowed_origins":     "LABELSCAN_CORS_ALLOWED_ORIGINS",
		"parser.provider":          "LABELSCAN_PARSER_PROVIDER",
		"parser.api_key":           "LABELSCAN_PARSER_API_KEY",
		"parser.default_model":     "LABELSCAN_PARSER_DEFAULT_MODEL",
		"parser.timeout_secs":      "LABELSCAN_PARSER_TIMEOUT_SECS",
		"extract.max_pdf_size_mb":  "LABELSCAN_EXTRACT_MAX_PDF_SIZE_MB",
		"extract.ocr_dpi":          "LABELSCAN_EXTRACT_OCR_DPI",
		"extract.max_ocr_pages":    "LABELSCAN_EXTRACT_MAX_OCR_PAGES",
		"extract.ocr_lang":         "LABELSCAN_EXTRACT_OCR_LANG",
		"extract.tesseract_path":   "LABELSCAN_EXTRACT_TESSERACT_PATH",
		"extract.min_direct_chars": "LABELSCAN_EXTRACT_MIN_DIRECT_CHARS",
		"extract.min_text_chars":   "LABELSCAN_EXTRACT_MIN_TEXT_CHARS",
		"extract.max_prompt_chars": "LABELSCAN_EXTRACT_MAX_PROMPT_CHARS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if LABELSCAN_SERVER_PORT
	// is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("LABELSCAN_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	cfg.Parser = ParserConfig{
		Provider:     v.GetString("parser.provider"),
		APIKey:       v.GetString("parser.api_key"),
		DefaultModel: v.GetString("parser.default_model"),
		TimeoutSecs:  v.GetInt("parser.timeout_secs"),
	}

	cfg.Extract = ExtractConfig{
		MaxPDFSizeMB:   v.GetInt64("extract.max_pdf_size_mb"),
		OCRDPI:         v.GetInt("extract.ocr_dpi"),
		MaxOCRPages:    v.GetInt("extract.max_ocr_pages"),
		OCRLang:        v.GetString("extract.ocr_lang"),
		TesseractPath:  v.GetString("extract.tesseract_path"),
		MinDirectChars: v.GetInt("extract.min_direct_chars"),
		MinTextChars:   v.GetInt("extract.min_text_chars"),
		MaxPromptChars: v.GetInt("extract.max_prompt_chars"),
	}

	return cfg, nil
}

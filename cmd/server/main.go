package main

import (
	"fmt"
	"log"

	"labelscan/internal/config"
	"labelscan/internal/handler"
	"labelscan/internal/parser"
	"labelscan/internal/pdftext"
	"labelscan/internal/router"
	"labelscan/internal/service"

	_ "labelscan/docs"                 // swagger docs
	_ "labelscan/internal/parser/groq" // register the groq provider
)

// @title PDF Allergen & Nutrition Extractor API
// @version 1.0
// @description Extracts allergen and nutrition information from food-label PDFs using an LLM.
// @BasePath /
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.Parser.APIKey == "" {
		log.Printf("warning: %s API key not configured; extraction requests will fail", cfg.Parser.Provider)
	}

	extractor := pdftext.NewExtractor(&cfg.Extract)
	if !extractor.OCRAvailable() {
		log.Printf("warning: tesseract binary %q not found; OCR fallback disabled", cfg.Extract.TesseractPath)
	}

	labelParser, err := parser.NewParser(&cfg.Parser)
	if err != nil {
		return fmt.Errorf("failed to initialize parser: %w", err)
	}

	extractionSvc := service.NewExtractionService(extractor, labelParser, &cfg.Extract)

	extractH := handler.NewExtractHandler(extractionSvc, &cfg.Extract)
	healthH := handler.NewHealthHandler(extractionSvc, &cfg.Parser, &cfg.Extract)

	r := router.Setup(cfg, extractH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

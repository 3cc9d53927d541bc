package parser

import (
	"fmt"

	"labelscan/internal/config"
	"labelscan/internal/port"
)

// ProviderFactory is a function that creates a LabelParser from a parser config.
type ProviderFactory func(cfg *config.ParserConfig) (port.LabelParser, error)

// registry of parser provider factories, populated explicitly via RegisterProvider.
var providers = map[string]ProviderFactory{}

// RegisterProvider registers a parser provider factory by name.
func RegisterProvider(name string, factory ProviderFactory) {
	providers[name] = factory
}

// NewParser creates a LabelParser from a parser config using the registered factory.
func NewParser(cfg *config.ParserConfig) (port.LabelParser, error) {
	factory, ok := providers[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("unknown parser provider: %s", cfg.Provider)
	}
	return factory(cfg)
}

package port

import "context"

// ParseInput carries the label text sent to an LLM provider.
type ParseInput struct {
	Text     string
	Filename string
}

// ParseOutput contains the raw reply from an LLM provider. RawContent is the
// model's textual answer before any JSON recovery.
type ParseOutput struct {
	RawContent string
	ModelUsed  string
	PromptUsed string
}

// LabelParser abstracts LLM-based label extraction. Implementations make a
// single bounded attempt; retries are the caller's decision.
type LabelParser interface {
	Parse(ctx context.Context, input ParseInput) (*ParseOutput, error)
}

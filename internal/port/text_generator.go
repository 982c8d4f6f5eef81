package port

import "context"

// GenerateInput carries a natural-language prompt for text generation.
type GenerateInput struct {
	Prompt    string
	MaxTokens int
}

// GenerateOutput contains the completion from a text generation provider.
type GenerateOutput struct {
	Text      string
	ModelUsed string
}

// TextGenerator abstracts LLM-backed text generation. Implementations must
// be safe for concurrent use; callers always carry a deterministic fallback
// for when generation is unavailable or fails.
type TextGenerator interface {
	Generate(ctx context.Context, input GenerateInput) (*GenerateOutput, error)
}

package textgen

import (
	"context"

	"gstmitra/internal/port"
)

// noopGenerator is the fallback generator variant, selected at startup when
// no provider carries an API key. It is always unavailable, which sends
// every caller down its deterministic template path.
type noopGenerator struct{}

// NewNoopGenerator creates a TextGenerator that always returns ErrUnavailable.
func NewNoopGenerator() port.TextGenerator {
	return noopGenerator{}
}

func (noopGenerator) Generate(_ context.Context, _ port.GenerateInput) (*port.GenerateOutput, error) {
	return nil, ErrUnavailable
}

package textgen_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"gstmitra/internal/textgen"
)

func TestNewRateLimitError(t *testing.T) {
	base := errors.New("429 too many requests")
	err := textgen.NewRateLimitError("claude", base, 30)

	assert.Equal(t, "claude", err.Provider)
	assert.Equal(t, 30*time.Second, err.RetryAfter)
	assert.ErrorIs(t, err, base)
	assert.Contains(t, err.Error(), "claude rate limited")
}

func TestNewRateLimitError_DefaultRetryAfter(t *testing.T) {
	err := textgen.NewRateLimitError("openai", errors.New("429"), 0)
	assert.Equal(t, 60*time.Second, err.RetryAfter)

	err = textgen.NewRateLimitError("openai", errors.New("429"), -5)
	assert.Equal(t, 60*time.Second, err.RetryAfter)
}

func TestParseRetryAfterHeader(t *testing.T) {
	tests := []struct {
		val  string
		want int
	}{
		{"30", 30},
		{"0", 0},
		{"", 0},
		{"not-a-number", 0},
		{"Wed, 21 Oct 2026 07:28:00 GMT", 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, textgen.ParseRetryAfterHeader(tt.val), "val=%q", tt.val)
	}
}

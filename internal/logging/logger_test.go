package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestContextRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).With().Str("request_id", "abc").Logger()

	ctx := IntoContext(context.Background(), logger)
	l := FromContext(ctx)
	l.Info().Msg("hello")

	assert.Contains(t, buf.String(), `"request_id":"abc"`)
	assert.Contains(t, buf.String(), `"message":"hello"`)
}

func TestFromContextOrFallback(t *testing.T) {
	var buf bytes.Buffer
	fallback := zerolog.New(&buf)

	l := FromContextOr(context.Background(), fallback)
	l.Warn().Msg("fallback used")
	assert.Contains(t, buf.String(), "fallback used")
}

func TestNewLevel(t *testing.T) {
	assert.Equal(t, zerolog.WarnLevel, New("trivia", "test", "warn").GetLevel())
	assert.Equal(t, zerolog.InfoLevel, New("trivia", "test", "bogus").GetLevel())
	assert.Equal(t, zerolog.InfoLevel, New("trivia", "test", "").GetLevel())
}

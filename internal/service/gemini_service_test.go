package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/fadilmartias/skillsyncer/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"canceled", context.Canceled, false},
		{"deadline", fmt.Errorf("call: %w", context.DeadlineExceeded), false},
		{"rate limited", genai.APIError{Code: 429}, true},
		{"server error", fmt.Errorf("embed: %w", genai.APIError{Code: 503}), true},
		{"bad request", genai.APIError{Code: 400}, false},
		{"connection reset", errors.New("read: connection reset by peer"), true},
		{"other", errors.New("invalid argument"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isRetryableError(tt.err))
		})
	}
}

func TestValidateEmbeddingResponse(t *testing.T) {
	_, err := validateEmbeddingResponse(nil)
	assert.Error(t, err)

	_, err = validateEmbeddingResponse(&genai.EmbedContentResponse{})
	assert.Error(t, err)

	_, err = validateEmbeddingResponse(&genai.EmbedContentResponse{
		Embeddings: []*genai.ContentEmbedding{{Values: []float32{0.1, float32(math.NaN())}}},
	})
	assert.ErrorContains(t, err, "index 1")

	values, err := validateEmbeddingResponse(&genai.EmbedContentResponse{
		Embeddings: []*genai.ContentEmbedding{{Values: []float32{0.1, 0.2}}},
	})
	require.NoError(t, err)
	assert.Equal(t, []float32{0.1, 0.2}, values)
}

func TestGeminiService_CircuitBreaker(t *testing.T) {
	s := &GeminiService{circuitBreakerMax: 2, log: logger.NewNoOpLogger(), RequestTimeout: time.Second}

	s.recordFailure()
	open, _ := s.CircuitBreakerStatus()
	assert.False(t, open)

	s.recordFailure()
	open, n := s.CircuitBreakerStatus()
	assert.True(t, open)
	assert.Equal(t, 2, n)

	_, err := s.GenerateEmbedding(context.Background(), "backend intern")
	assert.ErrorContains(t, err, "circuit breaker open")

	s.ResetCircuitBreaker()
	open, _ = s.CircuitBreakerStatus()
	assert.False(t, open)
}

func TestGeminiService_RejectsEmptyText(t *testing.T) {
	s := &GeminiService{circuitBreakerMax: 5, log: logger.NewNoOpLogger()}
	_, err := s.GenerateEmbedding(context.Background(), "   ")
	assert.Error(t, err)
}

func TestCalculateBackoff(t *testing.T) {
	s := &GeminiService{BaseDelay: time.Second, MaxDelay: 3 * time.Second}
	assert.Equal(t, time.Second, s.calculateBackoff(1))
	assert.Equal(t, 2*time.Second, s.calculateBackoff(2))
	assert.Equal(t, 3*time.Second, s.calculateBackoff(5))
}

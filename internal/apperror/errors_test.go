package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_MessageIncludesDetails(t *testing.T) {
	err := Validation("Validation Error", "Full name is required", "Resume is required")
	assert.Equal(t, "Validation Error: Full name is required, Resume is required", err.Error())
}

func TestKindOf_Wrapped(t *testing.T) {
	base := NotFound("Internship posting not found")
	wrapped := fmt.Errorf("get posting: %w", base)

	assert.Equal(t, KindNotFound, KindOf(wrapped))
	assert.True(t, Is(wrapped, KindNotFound))
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
	assert.False(t, Is(nil, KindInternal))
}

func TestRetryable(t *testing.T) {
	assert.True(t, Wrap(KindNetwork, "timeout", errors.New("deadline")).Retryable())
	assert.False(t, New(KindClientValidation, "missing").Retryable())
}

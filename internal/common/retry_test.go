package common

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithRetry_SucceedsAfterFailures(t *testing.T) {
	attempts := 0
	err := WithRetry(context.Background(), func() error {
		attempts++
		if attempts < 3 {
			return errors.New("flaky")
		}
		return nil
	}, RetryOptions{MaxAttempts: 5, InitialDelay: time.Millisecond})

	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestWithRetry_ExhaustsAttempts(t *testing.T) {
	attempts := 0
	err := WithRetry(context.Background(), func() error {
		attempts++
		return errors.New("always broken")
	}, RetryOptions{MaxAttempts: 3, InitialDelay: time.Millisecond})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMaxRetries)
	assert.Equal(t, 3, attempts)
}

func TestWithRetry_NonRetryableStopsImmediately(t *testing.T) {
	attempts := 0
	fatal := &RetryableError{Err: errors.New("bad credentials"), Retryable: false}
	err := WithRetry(context.Background(), func() error {
		attempts++
		return fatal
	}, RetryOptions{MaxAttempts: 5, InitialDelay: time.Millisecond})

	require.Error(t, err)
	assert.Equal(t, 1, attempts)
}

func TestWithRetry_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := WithRetry(ctx, func() error {
		return errors.New("never succeeds")
	}, RetryOptions{MaxAttempts: 3, InitialDelay: time.Hour})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestUserError(t *testing.T) {
	inner := errors.New("dial tcp: connection refused")
	err := NewUserError("Não foi possível carregar os negócios", inner)

	assert.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), "Não foi possível carregar os negócios")
	assert.Equal(t, "Não foi possível carregar os negócios", UserMessage(err, "x"))
	assert.Equal(t, "fallback", UserMessage(inner, "fallback"))
}

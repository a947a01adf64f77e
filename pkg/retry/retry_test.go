package retry

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastConfig() Config {
	return Config{
		MaxAttempts:  3,
		InitialDelay: 1 * time.Millisecond,
		MaxDelay:     5 * time.Millisecond,
		Multiplier:   2.0,
	}
}

func TestDo(t *testing.T) {
	t.Run("succeeds on first attempt", func(t *testing.T) {
		calls := 0
		err := Do(context.Background(), fastConfig(), func() error {
			calls++
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("succeeds after failures", func(t *testing.T) {
		calls := 0
		err := Do(context.Background(), fastConfig(), func() error {
			calls++
			if calls < 3 {
				return errors.New("transient failure")
			}
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("returns last error when attempts are exhausted", func(t *testing.T) {
		calls := 0
		err := Do(context.Background(), fastConfig(), func() error {
			calls++
			return fmt.Errorf("failure %d", calls)
		})

		require.Error(t, err)
		assert.EqualError(t, err, "failure 3")
		assert.Equal(t, 3, calls)
	})

	t.Run("stops on non-retryable error", func(t *testing.T) {
		cfg := fastConfig()
		cfg.RetryableErrors = []string{"connection refused"}

		calls := 0
		err := Do(context.Background(), cfg, func() error {
			calls++
			return errors.New("syntax error")
		})

		require.Error(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("rejects non-positive MaxAttempts", func(t *testing.T) {
		cfg := fastConfig()
		cfg.MaxAttempts = 0

		err := Do(context.Background(), cfg, func() error { return nil })
		require.Error(t, err)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := Do(ctx, fastConfig(), func() error {
			return errors.New("should not matter")
		})

		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("cancellation interrupts the backoff wait", func(t *testing.T) {
		cfg := fastConfig()
		cfg.InitialDelay = 10 * time.Second
		cfg.MaxDelay = 10 * time.Second

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		start := time.Now()
		err := Do(ctx, cfg, func() error {
			return errors.New("transient failure")
		})

		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Less(t, time.Since(start), 1*time.Second)
	})
}

func TestDoWithResult(t *testing.T) {
	t.Run("returns result on success", func(t *testing.T) {
		result, err := DoWithResult(context.Background(), fastConfig(), func() (string, error) {
			return "connected", nil
		})

		require.NoError(t, err)
		assert.Equal(t, "connected", result)
	})

	t.Run("returns zero value on failure", func(t *testing.T) {
		result, err := DoWithResult(context.Background(), fastConfig(), func() (int, error) {
			return 42, errors.New("persistent failure")
		})

		require.Error(t, err)
		assert.Zero(t, result)
	})
}

func TestCalculateDelay(t *testing.T) {
	cfg := Config{
		InitialDelay: 100 * time.Millisecond,
		MaxDelay:     1 * time.Second,
		Multiplier:   2.0,
	}

	assert.Equal(t, 100*time.Millisecond, calculateDelay(0, cfg))
	assert.Equal(t, 200*time.Millisecond, calculateDelay(1, cfg))
	assert.Equal(t, 400*time.Millisecond, calculateDelay(2, cfg))
	// capped at MaxDelay
	assert.Equal(t, 1*time.Second, calculateDelay(10, cfg))
	// negative attempts are treated as the first
	assert.Equal(t, 100*time.Millisecond, calculateDelay(-1, cfg))
}

func TestAddJitter(t *testing.T) {
	base := 100 * time.Millisecond
	for i := 0; i < 50; i++ {
		jittered := addJitter(base)
		assert.GreaterOrEqual(t, jittered, 90*time.Millisecond)
		assert.LessOrEqual(t, jittered, 110*time.Millisecond)
	}
}

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		patterns []string
		want     bool
	}{
		{"nil error", nil, nil, false},
		{"no patterns retries everything", errors.New("anything"), nil, true},
		{"matching pattern", errors.New("dial tcp: connection refused"), []string{"connection refused"}, true},
		{"match is case-insensitive", errors.New("Connection Refused"), []string{"connection refused"}, true},
		{"non-matching pattern", errors.New("syntax error"), []string{"connection refused"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{RetryableErrors: tt.patterns}
			assert.Equal(t, tt.want, IsRetryableError(tt.err, cfg))
		})
	}
}

func TestPostgresConfig(t *testing.T) {
	cfg := PostgresConfig()

	assert.Equal(t, 5, cfg.MaxAttempts)
	assert.NotEmpty(t, cfg.RetryableErrors)
	assert.True(t, IsRetryableError(errors.New("dial tcp 127.0.0.1:5432: connection refused"), cfg))
	assert.False(t, IsRetryableError(errors.New("permission denied"), cfg))
}

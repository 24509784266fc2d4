package chain

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/mrz1836/signet/internal/chain/rpc"
	signeterr "github.com/mrz1836/signet/pkg/errors"
)

// RetryConfig configures retry behavior.
type RetryConfig struct {
	MaxAttempts int           // Maximum number of attempts (including initial)
	BaseDelay   time.Duration // Initial delay between retries
	MaxDelay    time.Duration // Maximum delay between retries
}

// DefaultRetryConfig returns the default retry configuration.
// 3 attempts total (1 initial + 2 retries) with delays: 250ms, 500ms.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		BaseDelay:   250 * time.Millisecond,
		MaxDelay:    time.Second,
	}
}

// Retry executes the operation with exponential backoff using the
// default configuration.
func Retry[T any](ctx context.Context, operation func() (T, error)) (T, error) {
	return RetryWithConfig(ctx, DefaultRetryConfig(), operation)
}

// RetryWithConfig executes the operation with the specified retry configuration.
func RetryWithConfig[T any](ctx context.Context, cfg RetryConfig, operation func() (T, error)) (T, error) {
	var result T
	var err error

	for attempt := 0; attempt < cfg.MaxAttempts; attempt++ {
		result, err = operation()
		if err == nil {
			return result, nil
		}

		if !IsRetryable(err) {
			return result, err
		}

		// Don't delay after the last attempt
		if attempt < cfg.MaxAttempts-1 {
			delay := calculateDelay(attempt, cfg.BaseDelay, cfg.MaxDelay)

			timer := time.NewTimer(delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return result, ctx.Err()
			case <-timer.C:
			}
		}
	}

	return result, fmt.Errorf("operation failed after %d attempts: %w", cfg.MaxAttempts, err)
}

// IsRetryable reports whether the error is worth retrying. Transport
// failures are; node-side errors (reverts, bad params) are not, since
// repeating the identical call cannot succeed.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	// A structured node error means the request reached the node.
	var rpcErr *rpc.Error
	if signeterr.As(err, &rpcErr) {
		return false
	}

	return signeterr.Is(err, rpc.ErrRPCRequest)
}

// calculateDelay returns the backoff delay for the given attempt,
// with up to 20% jitter to avoid thundering herds.
func calculateDelay(attempt int, base, maxDelay time.Duration) time.Duration {
	delay := base << attempt
	if delay > maxDelay {
		delay = maxDelay
	}

	jitter := time.Duration(rand.Int64N(int64(delay) / 5)) //nolint:gosec // jitter does not need crypto randomness
	return delay + jitter
}

package usecase

import (
	"context"

	"github.com/riskibarqy/diamondtrends/internal/platform/logging"
	"github.com/riskibarqy/diamondtrends/internal/platform/metrics"
)

// Result carries the outcome of one upstream call: either a value or the
// reason it degraded.
type Result[T any] struct {
	value  T
	reason error
}

func Succeeded[T any](value T) Result[T] {
	return Result[T]{value: value}
}

func Degraded[T any](reason error) Result[T] {
	return Result[T]{reason: reason}
}

func resultOf[T any](value T, err error) Result[T] {
	if err != nil {
		return Degraded[T](err)
	}
	return Succeeded(value)
}

func (r Result[T]) OK() bool {
	return r.reason == nil
}

func (r Result[T]) Reason() error {
	return r.reason
}

// Or returns the value, or empty when the call degraded. The reason is
// logged at WARN and counted per operation.
func (r Result[T]) Or(ctx context.Context, logger *logging.Logger, operation string, empty T) T {
	if r.reason == nil {
		return r.value
	}
	metrics.DegradedResults.WithLabelValues(operation).Inc()
	logger.WarnContext(ctx, "upstream result degraded to empty", "operation", operation, "reason", r.reason)
	return empty
}

package resilience

import (
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBreaker(threshold int, clock *time.Time) *CircuitBreaker {
	b := NewCircuitBreaker(CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: threshold,
		OpenTimeout:      5 * time.Second,
		HalfOpenMaxReq:   1,
	})
	b.now = func() time.Time { return *clock }
	return b
}

func TestCircuitBreaker_BasicTransitions(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	b := newTestBreaker(2, &now)

	require.NoError(t, b.Allow())

	b.RecordFailure()
	assert.Equal(t, CircuitStateClosed, b.State())

	b.RecordFailure()
	assert.Equal(t, CircuitStateOpen, b.State())
	assert.ErrorIs(t, b.Allow(), ErrCircuitOpen)

	now = now.Add(6 * time.Second)
	require.NoError(t, b.Allow(), "half-open probe should pass")
	assert.Equal(t, CircuitStateHalfOpen, b.State())
	assert.ErrorIs(t, b.Allow(), ErrCircuitOpen, "only one probe admitted")

	b.RecordSuccess()
	assert.Equal(t, CircuitStateClosed, b.State())
}

func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	b := newTestBreaker(1, &now)

	b.RecordFailure()
	now = now.Add(6 * time.Second)
	require.NoError(t, b.Allow())

	b.RecordFailure()
	assert.Equal(t, CircuitStateOpen, b.State())
	assert.ErrorIs(t, b.Allow(), ErrCircuitOpen)
}

func TestCircuitBreaker_ExecuteHonoursClassifier(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	b := newTestBreaker(1, &now)

	errIgnored := errors.New("not found")
	err := b.Execute(func() error { return errIgnored }, func(err error) bool { return false })
	require.ErrorIs(t, err, errIgnored)
	assert.Equal(t, CircuitStateClosed, b.State())

	errBoom := errors.New("boom")
	err = b.Execute(func() error { return errBoom }, nil)
	require.ErrorIs(t, err, errBoom)
	assert.Equal(t, CircuitStateOpen, b.State())

	called := false
	err = b.Execute(func() error { called = true; return nil }, nil)
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.False(t, called)
}

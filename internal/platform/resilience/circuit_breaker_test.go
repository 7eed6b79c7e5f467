package resilience

import (
	"errors"
	"testing"
	"time"
)

func TestBreaker_TripAndRecover(t *testing.T) {
	b := NewBreaker(BreakerConfig{FailureThreshold: 2, OpenTimeout: 5 * time.Second, HalfOpenMaxProbes: 1})

	now := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return now }

	if err := b.Allow(); err != nil {
		t.Fatalf("expected allow while closed: %v", err)
	}

	b.RecordFailure()
	if state := b.State(); state != StateClosed {
		t.Fatalf("expected closed after one failure, got %s", state)
	}

	b.RecordFailure()
	if state := b.State(); state != StateOpen {
		t.Fatalf("expected open after threshold, got %s", state)
	}
	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected ErrCircuitOpen, got %v", err)
	}

	now = now.Add(6 * time.Second)
	if err := b.Allow(); err != nil {
		t.Fatalf("expected half-open probe to pass: %v", err)
	}
	if state := b.State(); state != StateHalfOpen {
		t.Fatalf("expected half-open, got %s", state)
	}

	b.RecordSuccess()
	if state := b.State(); state != StateClosed {
		t.Fatalf("expected closed after probe success, got %s", state)
	}
}

func TestBreaker_HalfOpenFailureReopens(t *testing.T) {
	b := NewBreaker(BreakerConfig{FailureThreshold: 1, OpenTimeout: time.Second, HalfOpenMaxProbes: 1})

	now := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return now }

	b.RecordFailure()
	now = now.Add(2 * time.Second)
	if err := b.Allow(); err != nil {
		t.Fatalf("expected probe to pass: %v", err)
	}

	b.RecordFailure()
	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected reopened circuit, got %v", err)
	}
}

func TestBreaker_HalfOpenProbeBudget(t *testing.T) {
	b := NewBreaker(BreakerConfig{FailureThreshold: 1, OpenTimeout: time.Second, HalfOpenMaxProbes: 1})

	now := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return now }

	b.RecordFailure()
	now = now.Add(2 * time.Second)

	if err := b.Allow(); err != nil {
		t.Fatalf("first probe should pass: %v", err)
	}
	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("second probe should be rejected, got %v", err)
	}
}

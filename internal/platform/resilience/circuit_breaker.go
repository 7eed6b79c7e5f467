package resilience

import (
	"errors"
	"sync"
	"time"
)

var ErrCircuitOpen = errors.New("circuit breaker is open")

type State string

const (
	StateClosed   State = "closed"
	StateOpen     State = "open"
	StateHalfOpen State = "half_open"
)

// Breaker protects an outbound dependency with a three-state circuit.
// Consecutive failures trip it open; after the open timeout a bounded
// number of probe requests decide whether it closes again.
type Breaker struct {
	mu sync.Mutex

	cfg BreakerConfig

	state             State
	failures          int
	openedAt          time.Time
	probesInFlight    int
	probeSuccesses    int
	now               func() time.Time
}

func NewBreaker(cfg BreakerConfig) *Breaker {
	cfg = cfg.withDefaults()
	return &Breaker{
		cfg:   cfg,
		state: StateClosed,
		now:   time.Now,
	}
}

// Allow reports whether a request may proceed. It returns ErrCircuitOpen
// while the circuit is open or the half-open probe budget is exhausted.
func (b *Breaker) Allow() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == StateOpen {
		if b.now().Sub(b.openedAt) < b.cfg.OpenTimeout {
			return ErrCircuitOpen
		}
		b.transition(StateHalfOpen)
	}

	if b.state == StateHalfOpen {
		if b.probesInFlight >= b.cfg.HalfOpenMaxProbes {
			return ErrCircuitOpen
		}
		b.probesInFlight++
	}

	return nil
}

func (b *Breaker) RecordSuccess() {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case StateClosed:
		b.failures = 0
	case StateHalfOpen:
		if b.probesInFlight > 0 {
			b.probesInFlight--
		}
		b.probeSuccesses++
		if b.probeSuccesses >= b.cfg.HalfOpenMaxProbes && b.probesInFlight == 0 {
			b.transition(StateClosed)
		}
	}
}

func (b *Breaker) RecordFailure() {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case StateClosed:
		b.failures++
		if b.failures >= b.cfg.FailureThreshold {
			b.transition(StateOpen)
		}
	case StateHalfOpen:
		if b.probesInFlight > 0 {
			b.probesInFlight--
		}
		b.transition(StateOpen)
	case StateOpen:
		b.openedAt = b.now()
	}
}

func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == StateOpen && b.now().Sub(b.openedAt) >= b.cfg.OpenTimeout {
		return StateHalfOpen
	}
	return b.state
}

func (b *Breaker) transition(next State) {
	b.state = next
	b.probesInFlight = 0
	b.probeSuccesses = 0
	switch next {
	case StateClosed:
		b.failures = 0
		b.openedAt = time.Time{}
	case StateOpen:
		b.openedAt = b.now()
	}
}

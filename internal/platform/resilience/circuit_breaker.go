package resilience

import (
	"errors"
	"sync"
	"time"
)

var ErrCircuitOpen = errors.New("circuit breaker is open")

type CircuitState string

const (
	CircuitStateClosed   CircuitState = "closed"
	CircuitStateOpen     CircuitState = "open"
	CircuitStateHalfOpen CircuitState = "half_open"
)

// CircuitBreaker fails fast after consecutive failures and lets a limited
// number of trial requests through once the open timeout has passed. A disabled
// breaker allows everything and always reports closed.
type CircuitBreaker struct {
	mu  sync.Mutex
	cfg CircuitBreakerConfig

	state               CircuitState
	consecutiveFailures int
	openedAt            time.Time
	halfOpenInFlight    int
	halfOpenSuccesses   int
	now                 func() time.Time
	onChange            func(from, to CircuitState)
}

// Snapshot is a point-in-time view of a breaker for health output.
type Snapshot struct {
	State               CircuitState `json:"state"`
	ConsecutiveFailures int          `json:"consecutive_failures"`
	OpenedAt            *time.Time   `json:"opened_at,omitempty"`
}

func NewCircuitBreaker(cfg CircuitBreakerConfig) *CircuitBreaker {
	return &CircuitBreaker{
		cfg:   cfg.withDefaults(),
		state: CircuitStateClosed,
		now:   time.Now,
	}
}

// OnStateChange registers fn to run after every transition. fn runs without the
// breaker lock held.
func (b *CircuitBreaker) OnStateChange(fn func(from, to CircuitState)) {
	b.mu.Lock()
	b.onChange = fn
	b.mu.Unlock()
}

func (b *CircuitBreaker) Allow() error {
	if !b.cfg.Enabled {
		return nil
	}

	b.mu.Lock()
	from := b.state
	err := b.allowLocked()
	b.unlockAndNotify(from)
	return err
}

func (b *CircuitBreaker) allowLocked() error {
	if b.state == CircuitStateOpen {
		if b.now().Sub(b.openedAt) < b.cfg.OpenTimeout {
			return ErrCircuitOpen
		}
		b.toHalfOpen()
	}

	if b.state == CircuitStateHalfOpen {
		if b.halfOpenInFlight >= b.cfg.HalfOpenMaxReq {
			return ErrCircuitOpen
		}
		b.halfOpenInFlight++
	}
	return nil
}

func (b *CircuitBreaker) RecordSuccess() {
	if !b.cfg.Enabled {
		return
	}

	b.mu.Lock()
	from := b.state
	switch b.state {
	case CircuitStateClosed:
		b.consecutiveFailures = 0
	case CircuitStateHalfOpen:
		b.releaseTrial()
		b.halfOpenSuccesses++
		if b.halfOpenSuccesses >= b.cfg.HalfOpenMaxReq && b.halfOpenInFlight == 0 {
			b.toClosed()
		}
	}
	b.unlockAndNotify(from)
}

func (b *CircuitBreaker) RecordFailure() {
	if !b.cfg.Enabled {
		return
	}

	b.mu.Lock()
	from := b.state
	switch b.state {
	case CircuitStateClosed:
		b.consecutiveFailures++
		if b.consecutiveFailures >= b.cfg.FailureThreshold {
			b.toOpen()
		}
	case CircuitStateHalfOpen:
		b.releaseTrial()
		b.toOpen()
	case CircuitStateOpen:
		b.openedAt = b.now()
	}
	b.unlockAndNotify(from)
}

// Release gives back a half-open slot taken by Allow without judging the
// upstream. Use it when the call ended for a reason that says nothing about
// upstream health, such as a rejected request or an abandoned deadline.
func (b *CircuitBreaker) Release() {
	if !b.cfg.Enabled {
		return
	}

	b.mu.Lock()
	if b.state == CircuitStateHalfOpen {
		b.releaseTrial()
	}
	b.mu.Unlock()
}

func (b *CircuitBreaker) State() CircuitState {
	return b.Snapshot().State
}

func (b *CircuitBreaker) Snapshot() Snapshot {
	if !b.cfg.Enabled {
		return Snapshot{State: CircuitStateClosed}
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	out := Snapshot{State: b.state, ConsecutiveFailures: b.consecutiveFailures}
	if b.state == CircuitStateOpen {
		openedAt := b.openedAt
		out.OpenedAt = &openedAt
		if b.now().Sub(b.openedAt) >= b.cfg.OpenTimeout {
			out.State = CircuitStateHalfOpen
		}
	}
	return out
}

func (b *CircuitBreaker) unlockAndNotify(from CircuitState) {
	to := b.state
	fn := b.onChange
	b.mu.Unlock()

	if fn != nil && from != to {
		fn(from, to)
	}
}

func (b *CircuitBreaker) releaseTrial() {
	if b.halfOpenInFlight > 0 {
		b.halfOpenInFlight--
	}
}

func (b *CircuitBreaker) toClosed() {
	b.state = CircuitStateClosed
	b.consecutiveFailures = 0
	b.halfOpenInFlight = 0
	b.halfOpenSuccesses = 0
	b.openedAt = time.Time{}
}

func (b *CircuitBreaker) toOpen() {
	b.state = CircuitStateOpen
	b.openedAt = b.now()
	b.halfOpenInFlight = 0
	b.halfOpenSuccesses = 0
}

func (b *CircuitBreaker) toHalfOpen() {
	b.state = CircuitStateHalfOpen
	b.halfOpenInFlight = 0
	b.halfOpenSuccesses = 0
}

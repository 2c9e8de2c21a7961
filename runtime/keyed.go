package runtime

import (
	"sync"
	"time"

	"moonlight/errors"
)

// EntityLocks serializes units of work that touch the same entity (one group
// signature, or one message key) without making unrelated entities block each
// other. Acquisition waits at most the configured timeout and then fails with
// ErrLockTimeout, which callers treat as transient and retryable.
type EntityLocks struct {
	mu      sync.Mutex
	held    map[string]chan struct{}
	timeout time.Duration
}

func NewEntityLocks(timeout time.Duration) *EntityLocks {
	return &EntityLocks{
		held:    make(map[string]chan struct{}),
		timeout: timeout,
	}
}

// Acquire takes exclusive access to the entity named by key and returns the
// release function. The caller must release; there is no re-entrancy.
func (l *EntityLocks) Acquire(key string) (release func(), err error) {
	timer := time.NewTimer(l.timeout)
	defer timer.Stop()

	for {
		l.mu.Lock()
		holder, taken := l.held[key]
		if !taken {
			done := make(chan struct{})
			l.held[key] = done
			l.mu.Unlock()
			return func() {
				l.mu.Lock()
				delete(l.held, key)
				l.mu.Unlock()
				close(done)
			}, nil
		}
		l.mu.Unlock()

		select {
		case <-holder:
			// Holder released; race for the lock again.
		case <-timer.C:
			return nil, errors.ErrLockTimeout
		}
	}
}

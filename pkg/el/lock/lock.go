package lock

import (
	"errors"
	"sync"

	"github.com/el-macro/elgo/pkg/el"
)

// ErrContended reports a failed non-blocking acquisition.
var ErrContended = errors.New("lock: mutex is held by another owner")

// Handle owns an acquired mutex until Release is called.
type Handle struct {
	mu sync.Locker
}

func (h Handle) Release() {
	h.mu.Unlock()
}

// TryMutex converts by attempting a single non-blocking acquisition.
type TryMutex struct {
	Mu *sync.Mutex
}

func (t TryMutex) IntoOutcome() el.Outcome[Handle, error] {
	if t.Mu.TryLock() {
		return el.Success[Handle, error](Handle{mu: t.Mu})
	}
	return el.Failure[Handle](ErrContended)
}

// Mutex converts by blocking until the mutex is acquired; the outcome is
// always a success.
type Mutex struct {
	Mu *sync.Mutex
}

func (m Mutex) IntoOutcome() el.Outcome[Handle, error] {
	m.Mu.Lock()
	return el.Success[Handle, error](Handle{mu: m.Mu})
}

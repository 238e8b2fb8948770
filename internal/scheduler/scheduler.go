package scheduler

import (
	"fmt"
	"sync"
	"time"
)

// Scheduler runs deferred tasks keyed by a caller-chosen string. A task can be
// cancelled any time before it fires; firing and cancellation race safely.
type Scheduler struct {
	mu     sync.Mutex
	timers map[string]*time.Timer
	wg     sync.WaitGroup
}

func New() *Scheduler {
	return &Scheduler{timers: make(map[string]*time.Timer)}
}

// PaymentCompletionKey names the deferred demo-settlement task of an order.
func PaymentCompletionKey(orderID string) string {
	return fmt.Sprintf("payment-completion:%s", orderID)
}

// Schedule replaces any pending task under the same key.
func (s *Scheduler) Schedule(key string, delay time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.timers[key]; ok {
		if t.Stop() {
			s.wg.Done()
		}
	}

	s.wg.Add(1)
	s.timers[key] = time.AfterFunc(delay, func() {
		defer s.wg.Done()

		s.mu.Lock()
		delete(s.timers, key)
		s.mu.Unlock()

		fn()
	})
}

// Cancel reports whether a pending task was stopped before firing.
func (s *Scheduler) Cancel(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.timers[key]
	if !ok {
		return false
	}
	delete(s.timers, key)
	if t.Stop() {
		s.wg.Done()
		return true
	}
	return false
}

// Stop cancels everything still pending and waits for in-flight task funcs.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	for key, t := range s.timers {
		if t.Stop() {
			s.wg.Done()
		}
		delete(s.timers, key)
	}
	s.mu.Unlock()
	s.wg.Wait()
}

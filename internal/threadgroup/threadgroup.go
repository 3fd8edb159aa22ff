// Package threadgroup provides a primitive for coordinating the graceful
// shutdown of goroutines, in the style of the teacher's sync.ThreadGroup.
// The Miner's search loop uses it so stop() can interrupt a sleeping or
// idle miner without a hard preemption of an in-flight Argon2id call.
package threadgroup

import (
	"errors"
	"sync"
)

// ErrStopped is returned by Add once the group has been stopped.
var ErrStopped = errors.New("threadgroup: already stopped")

// ThreadGroup allows goroutines to register themselves for graceful
// shutdown: Stop closes a channel that every registered goroutine should
// select on, then waits for all of them to call Done.
type ThreadGroup struct {
	once     sync.Once
	stopChan chan struct{}
	wg       sync.WaitGroup

	mu      sync.Mutex
	stopped bool
}

func (tg *ThreadGroup) init() {
	tg.once.Do(func() {
		tg.stopChan = make(chan struct{})
	})
}

// Add registers an in-flight goroutine with the group. It returns
// ErrStopped if Stop has already been called.
func (tg *ThreadGroup) Add() error {
	tg.init()
	tg.mu.Lock()
	defer tg.mu.Unlock()
	if tg.stopped {
		return ErrStopped
	}
	tg.wg.Add(1)
	return nil
}

// Done marks a goroutine registered via Add as finished.
func (tg *ThreadGroup) Done() {
	tg.wg.Done()
}

// Stop closes the stop channel and blocks until every added goroutine has
// called Done.
func (tg *ThreadGroup) Stop() error {
	tg.init()
	tg.mu.Lock()
	if tg.stopped {
		tg.mu.Unlock()
		return ErrStopped
	}
	tg.stopped = true
	close(tg.stopChan)
	tg.mu.Unlock()

	tg.wg.Wait()
	return nil
}

// StopChan returns a channel that is closed when Stop is called.
func (tg *ThreadGroup) StopChan() <-chan struct{} {
	tg.init()
	return tg.stopChan
}

// IsStopped reports whether Stop has been called.
func (tg *ThreadGroup) IsStopped() bool {
	tg.mu.Lock()
	defer tg.mu.Unlock()
	return tg.stopped
}

// Package lifecycle coordinates startup and shutdown of long-running systems.
// Systems register hooks during Start; the coordinator runs startup hooks
// concurrently, tracks readiness, and drains shutdown hooks within a deadline.
package lifecycle

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// ReadinessChecker reports whether all startup hooks have completed.
type ReadinessChecker interface {
	Ready() bool
}

// Coordinator owns the root context for all registered systems.
type Coordinator struct {
	ctx        context.Context
	cancel     context.CancelFunc
	startupWg  sync.WaitGroup
	shutdownWg sync.WaitGroup

	mu    sync.RWMutex
	ready bool
}

// New creates a Coordinator with a cancellable root context.
func New() *Coordinator {
	ctx, cancel := context.WithCancel(context.Background())
	return &Coordinator{
		ctx:    ctx,
		cancel: cancel,
	}
}

// Context returns the root context. It is cancelled when Shutdown begins.
func (c *Coordinator) Context() context.Context {
	return c.ctx
}

// OnStartup runs fn in its own goroutine and counts it toward readiness.
func (c *Coordinator) OnStartup(fn func()) {
	c.startupWg.Add(1)
	go func() {
		defer c.startupWg.Done()
		fn()
	}()
}

// OnShutdown runs fn in its own goroutine. Hooks are expected to block on
// Context().Done() before releasing their resources.
func (c *Coordinator) OnShutdown(fn func()) {
	c.shutdownWg.Add(1)
	go func() {
		defer c.shutdownWg.Done()
		fn()
	}()
}

// WaitForStartup blocks until every startup hook has returned, then marks
// the coordinator ready.
func (c *Coordinator) WaitForStartup() {
	c.startupWg.Wait()
	c.mu.Lock()
	c.ready = true
	c.mu.Unlock()
}

// Ready reports whether startup has completed.
func (c *Coordinator) Ready() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ready
}

// Shutdown cancels the root context and waits for shutdown hooks to finish.
func (c *Coordinator) Shutdown(timeout time.Duration) error {
	c.mu.Lock()
	c.ready = false
	c.mu.Unlock()

	c.cancel()

	done := make(chan struct{})
	go func() {
		c.shutdownWg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-time.After(timeout):
		return fmt.Errorf("shutdown timed out after %s", timeout)
	}
}

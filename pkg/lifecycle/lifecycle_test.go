package lifecycle_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/JaimeStill/load-planner/pkg/lifecycle"
)

func TestNew(t *testing.T) {
	lc := lifecycle.New()

	if lc.Ready() {
		t.Error("Ready() = true, want false for new coordinator")
	}
	select {
	case <-lc.Context().Done():
		t.Error("context cancelled before shutdown")
	default:
	}
}

func TestCoordinator_WaitForStartup(t *testing.T) {
	lc := lifecycle.New()

	var count atomic.Int32
	for range 3 {
		lc.OnStartup(func() {
			time.Sleep(10 * time.Millisecond)
			count.Add(1)
		})
	}

	lc.WaitForStartup()

	if count.Load() != 3 {
		t.Errorf("startup hooks run = %d, want 3", count.Load())
	}
	if !lc.Ready() {
		t.Error("Ready() = false after WaitForStartup")
	}
}

func TestCoordinator_Shutdown(t *testing.T) {
	lc := lifecycle.New()
	lc.WaitForStartup()

	var closed atomic.Bool
	lc.OnShutdown(func() {
		<-lc.Context().Done()
		closed.Store(true)
	})

	if err := lc.Shutdown(time.Second); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}
	if !closed.Load() {
		t.Error("shutdown hook did not run")
	}
	if lc.Ready() {
		t.Error("Ready() = true after Shutdown")
	}
}

func TestCoordinator_ShutdownTimeout(t *testing.T) {
	lc := lifecycle.New()

	release := make(chan struct{})
	defer close(release)
	lc.OnShutdown(func() {
		<-release
	})

	if err := lc.Shutdown(20 * time.Millisecond); err == nil {
		t.Error("Shutdown() error = nil, want timeout")
	}
}

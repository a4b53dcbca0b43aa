package lifecycle

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestCoordinatorStartupReadiness(t *testing.T) {
	c := New()

	if c.Ready() {
		t.Fatal("coordinator ready before startup hooks ran")
	}

	var ran atomic.Bool
	c.OnStartup(func() {
		ran.Store(true)
	})

	c.WaitForStartup()

	if !ran.Load() {
		t.Fatal("startup hook did not run")
	}
	if !c.Ready() {
		t.Fatal("coordinator not ready after WaitForStartup")
	}
}

func TestCoordinatorShutdown(t *testing.T) {
	c := New()

	var cleaned atomic.Bool
	c.OnShutdown(func() {
		<-c.Context().Done()
		cleaned.Store(true)
	})

	if err := c.Shutdown(time.Second); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}
	if !cleaned.Load() {
		t.Fatal("shutdown hook did not run")
	}
}

func TestCoordinatorShutdownTimeout(t *testing.T) {
	c := New()

	release := make(chan struct{})
	c.OnShutdown(func() {
		<-release
	})

	if err := c.Shutdown(20 * time.Millisecond); err == nil {
		t.Fatal("Shutdown() = nil, want timeout error")
	}
	close(release)
}

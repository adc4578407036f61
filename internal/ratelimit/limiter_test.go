package ratelimit

import (
	"sync"
	"testing"
	"time"
)

func TestLimiter_RejectsOverMax(t *testing.T) {
	l := New(5, time.Hour)

	for i := 0; i < 5; i++ {
		if !l.Allow("1.2.3.4") {
			t.Fatalf("request %d rejected, want allowed", i+1)
		}
	}

	if l.Allow("1.2.3.4") {
		t.Error("request 6 allowed, want rejected")
	}
}

func TestLimiter_KeysAreIndependent(t *testing.T) {
	l := New(1, time.Hour)

	if !l.Allow("1.2.3.4") {
		t.Fatal("first request for key A rejected")
	}
	if l.Allow("1.2.3.4") {
		t.Error("second request for key A allowed, want rejected")
	}
	if !l.Allow("5.6.7.8") {
		t.Error("first request for key B rejected, want allowed")
	}
}

func TestLimiter_RecoversAfterWindow(t *testing.T) {
	l := New(2, 100*time.Millisecond)

	l.Allow("1.2.3.4")
	l.Allow("1.2.3.4")
	if l.Allow("1.2.3.4") {
		t.Fatal("third request within window allowed, want rejected")
	}

	time.Sleep(120 * time.Millisecond)

	if !l.Allow("1.2.3.4") {
		t.Error("request after window elapsed rejected, want allowed")
	}
}

func TestLimiter_ConcurrentSameKey(t *testing.T) {
	l := New(10, time.Hour)

	var wg sync.WaitGroup
	allowed := make(chan bool, 50)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			allowed <- l.Allow("1.2.3.4")
		}()
	}
	wg.Wait()
	close(allowed)

	count := 0
	for ok := range allowed {
		if ok {
			count++
		}
	}
	if count != 10 {
		t.Errorf("allowed %d concurrent requests, want exactly 10", count)
	}
}

func TestLimiter_SweepDropsIdleKeys(t *testing.T) {
	l := New(1, 50*time.Millisecond)

	l.Allow("stale")
	time.Sleep(60 * time.Millisecond)
	l.Allow("fresh")

	l.mu.Lock()
	_, ok := l.clients["stale"]
	l.mu.Unlock()
	if ok {
		t.Error("stale key still tracked after sweep")
	}
}

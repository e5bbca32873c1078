package resilience

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestSingleFlight_Do(t *testing.T) {
	var g SingleFlight[string]
	var counter int32

	const workers = 20
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			got, _, err := g.Do("2025/2026:3", func() (string, error) {
				atomic.AddInt32(&counter, 1)
				time.Sleep(20 * time.Millisecond)
				return "ok", nil
			})
			if err != nil {
				t.Errorf("singleflight call failed: %v", err)
			}
			if got != "ok" {
				t.Errorf("unexpected value: %q", got)
			}
		}()
	}

	close(start)
	wg.Wait()

	if got := atomic.LoadInt32(&counter); got != 1 {
		t.Fatalf("expected function to run once, got %d", got)
	}
}

func TestSingleFlight_ErrorKeepsZeroValue(t *testing.T) {
	var g SingleFlight[*int]
	boom := errors.New("boom")

	got, shared, err := g.Do("k", func() (*int, error) { return nil, boom })
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if got != nil || shared {
		t.Fatalf("unexpected result: value=%v shared=%v", got, shared)
	}
}

func TestSingleFlight_DistinctKeysRunIndependently(t *testing.T) {
	var g SingleFlight[int]
	var counter int32

	for _, key := range []string{"gw-1", "gw-2", "gw-3"} {
		if _, _, err := g.Do(key, func() (int, error) {
			return int(atomic.AddInt32(&counter, 1)), nil
		}); err != nil {
			t.Fatalf("do %s: %v", key, err)
		}
	}

	if got := atomic.LoadInt32(&counter); got != 3 {
		t.Fatalf("expected three calls, got %d", got)
	}
}

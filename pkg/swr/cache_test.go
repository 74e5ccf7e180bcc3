package swr

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestCacheFreshStaleMiss(t *testing.T) {
	clk := NewFakeClock(time.Unix(1000, 0))
	c := New[string](30*time.Second, 0, clk)

	if _, err := c.Get("a"); !errors.Is(err, ErrMiss) {
		t.Fatalf("expected miss, got %v", err)
	}

	c.Put("a", "conversations")
	v, err := c.Get("a")
	if err != nil || v != "conversations" {
		t.Fatalf("expected fresh hit, got %q %v", v, err)
	}

	clk.Advance(31 * time.Second)
	v, err = c.Get("a")
	if !errors.Is(err, ErrStale) {
		t.Fatalf("expected stale, got %v", err)
	}
	if v != "conversations" {
		t.Fatalf("stale read should still carry the value, got %q", v)
	}
}

func TestCacheGetOrFetch(t *testing.T) {
	clk := NewFakeClock(time.Unix(1000, 0))
	c := New[int](time.Minute, 0, clk)

	var calls atomic.Int32
	loader := func(ctx context.Context) (int, error) {
		calls.Add(1)
		return 42, nil
	}

	v, err := c.GetOrFetch(context.Background(), "k", loader)
	if err != nil || v != 42 {
		t.Fatalf("GetOrFetch: %d %v", v, err)
	}
	// second call served from cache, loader not rerun
	if _, err := c.GetOrFetch(context.Background(), "k", loader); err != nil {
		t.Fatalf("GetOrFetch cached: %v", err)
	}
	if calls.Load() != 1 {
		t.Fatalf("expected 1 loader call, got %d", calls.Load())
	}

	// after expiry the loader runs again
	clk.Advance(2 * time.Minute)
	if _, err := c.GetOrFetch(context.Background(), "k", loader); err != nil {
		t.Fatalf("GetOrFetch revalidate: %v", err)
	}
	if calls.Load() != 2 {
		t.Fatalf("expected revalidation, got %d calls", calls.Load())
	}
}

func TestCacheGetOrFetchCoalesces(t *testing.T) {
	c := New[int](time.Minute, 0, nil)

	var calls atomic.Int32
	release := make(chan struct{})
	loader := func(ctx context.Context) (int, error) {
		calls.Add(1)
		<-release
		return 7, nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if v, err := c.GetOrFetch(context.Background(), "k", loader); err != nil || v != 7 {
				t.Errorf("GetOrFetch: %d %v", v, err)
			}
		}()
	}
	// give the goroutines a moment to pile onto the singleflight
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()
	if calls.Load() != 1 {
		t.Fatalf("expected coalesced fetch, got %d loader calls", calls.Load())
	}
}

func TestCacheLoaderFailureKeepsStale(t *testing.T) {
	clk := NewFakeClock(time.Unix(1000, 0))
	c := New[string](time.Second, 0, clk)
	c.Put("k", "old")
	clk.Advance(2 * time.Second)

	boom := errors.New("backend down")
	_, err := c.GetOrFetch(context.Background(), "k", func(ctx context.Context) (string, error) {
		return "", boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected loader error, got %v", err)
	}
	// the stale entry survives a failed revalidation
	v, err := c.Get("k")
	if !errors.Is(err, ErrStale) || v != "old" {
		t.Fatalf("expected stale entry kept, got %q %v", v, err)
	}
}

func TestCacheSweep(t *testing.T) {
	clk := NewFakeClock(time.Unix(1000, 0))
	c := New[int](time.Second, 0, clk)
	c.Put("a", 1)
	c.Put("b", 2)
	clk.Advance(500 * time.Millisecond)
	c.Put("c", 3)
	clk.Advance(700 * time.Millisecond)

	// a and b are past expiry; c is not
	if dropped := c.Sweep(); dropped != 2 {
		t.Fatalf("expected 2 swept, got %d", dropped)
	}
	if c.Len() != 1 {
		t.Fatalf("expected 1 entry left, got %d", c.Len())
	}
	if _, err := c.Get("c"); err != nil {
		t.Fatalf("expected c still fresh: %v", err)
	}
}

func TestCacheCapEvictsOldest(t *testing.T) {
	clk := NewFakeClock(time.Unix(1000, 0))
	c := New[int](time.Hour, 2, clk)
	c.Put("first", 1)
	clk.Advance(time.Second)
	c.Put("second", 2)
	clk.Advance(time.Second)
	c.Put("third", 3)

	if c.Len() != 2 {
		t.Fatalf("expected cap of 2, got %d", c.Len())
	}
	if _, err := c.Get("first"); !errors.Is(err, ErrMiss) {
		t.Fatalf("expected oldest entry evicted, got %v", err)
	}
}

func TestCacheByteBudgetEvictsOldest(t *testing.T) {
	clk := NewFakeClock(time.Unix(1000, 0))
	c := New[string](time.Hour, 0, clk)
	// each value JSON-encodes to 12 bytes (10 chars + quotes)
	c.SetMaxBytes(30)

	c.Put("first", "aaaaaaaaaa")
	clk.Advance(time.Second)
	c.Put("second", "bbbbbbbbbb")
	if c.Len() != 2 {
		t.Fatalf("two entries fit the budget, got %d", c.Len())
	}

	clk.Advance(time.Second)
	c.Put("third", "cccccccccc")
	if c.Len() != 2 {
		t.Fatalf("expected oldest entry evicted for the budget, got %d", c.Len())
	}
	if _, err := c.Get("first"); !errors.Is(err, ErrMiss) {
		t.Fatalf("expected oldest entry evicted, got %v", err)
	}
	if _, err := c.Get("third"); err != nil {
		t.Fatalf("newest entry must survive, got %v", err)
	}

	// replacing a key releases its old footprint instead of leaking it
	c.Put("third", "d")
	c.Put("second", "eeeeeeeeee")
	if c.Len() != 2 {
		t.Fatalf("replacement must not evict within budget, got %d", c.Len())
	}

	// invalidation returns budget too
	c.Invalidate("second")
	c.Put("fourth", "ffffffffff")
	c.Put("fifth", "g")
	if c.Len() != 3 {
		t.Fatalf("expected three entries within budget, got %d", c.Len())
	}
}

func TestJanitor(t *testing.T) {
	if _, err := StartJanitor(context.Background(), "not a cron", func() int { return 0 }); err == nil {
		t.Fatalf("expected invalid cron error")
	}

	cancel, err := StartJanitor(context.Background(), "* * * * *", func() int { return 0 })
	if err != nil {
		t.Fatalf("StartJanitor: %v", err)
	}
	cancel()

	// empty cron disables the janitor
	cancel2, err := StartJanitor(context.Background(), "", func() int { return 0 })
	if err != nil {
		t.Fatalf("StartJanitor disabled: %v", err)
	}
	cancel2()
}

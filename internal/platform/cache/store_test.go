package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStore_GetOrLoad_CollapsesConcurrentLoads(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return "value", nil
	}

	const workers = 32
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err := store.GetOrLoad(context.Background(), "same-key", loader)
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			if got, _ := v.(string); got != "value" {
				t.Errorf("unexpected value: %v", v)
			}
		}()
	}

	close(start)
	wg.Wait()

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_GetOrLoad_ServesCachedValue(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		return "cached", nil
	}

	if _, err := store.GetOrLoad(context.Background(), "k", loader); err != nil {
		t.Fatalf("first load: %v", err)
	}
	if _, err := store.GetOrLoad(context.Background(), "k", loader); err != nil {
		t.Fatalf("second load: %v", err)
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_DeletePrefix(t *testing.T) {
	store := NewStore(time.Minute)
	ctx := context.Background()

	store.Set(ctx, "players:all", 1)
	store.Set(ctx, "players:pl_1", 2)
	store.Set(ctx, "leagues:lg_1", 3)

	store.DeletePrefix(ctx, "players:")

	if _, ok := store.Get(ctx, "players:all"); ok {
		t.Fatal("players:all should be evicted")
	}
	if _, ok := store.Get(ctx, "players:pl_1"); ok {
		t.Fatal("players:pl_1 should be evicted")
	}
	if _, ok := store.Get(ctx, "leagues:lg_1"); !ok {
		t.Fatal("leagues:lg_1 should survive")
	}
}

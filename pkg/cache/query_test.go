package cache_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/profieldmanager/mediavault/pkg/cache"
)

func newQueryCache() *cache.QueryCache {
	return cache.NewQueryCache(cache.NewCache(newMockKVStore()), 0)
}

// TestQueryCache_FetchMissTriggersFetcher 未命中时调用注册的拉取函数.
func TestQueryCache_FetchMissTriggersFetcher(t *testing.T) {
	ctx := context.Background()
	qc := newQueryCache()

	fetches := 0

	qc.RegisterFetcher("/api/projects/7/files", func(context.Context) (any, error) {
		fetches++

		return []fileRecord{{ID: 1, FileType: "image"}}, nil
	})

	files, err := cache.Fetch[[]fileRecord](ctx, qc, "/api/projects/7/files")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	if len(files) != 1 || fetches != 1 {
		t.Errorf("files=%d fetches=%d, want 1/1", len(files), fetches)
	}

	// 第二次命中缓存，不再拉取
	if _, err := cache.Fetch[[]fileRecord](ctx, qc, "/api/projects/7/files"); err != nil {
		t.Fatalf("Fetch (cached): %v", err)
	}

	if fetches != 1 {
		t.Errorf("fetches = %d, want 1 after cache hit", fetches)
	}
}

// TestQueryCache_InvalidateRefetches 失效后立即重取.
func TestQueryCache_InvalidateRefetches(t *testing.T) {
	ctx := context.Background()
	qc := newQueryCache()

	version := 0

	qc.RegisterFetcher("k", func(context.Context) (any, error) {
		version++

		return []fileRecord{{ID: int64(version)}}, nil
	})

	if _, err := cache.Fetch[[]fileRecord](ctx, qc, "k"); err != nil {
		t.Fatalf("warm: %v", err)
	}

	if err := qc.Invalidate(ctx, "k"); err != nil {
		t.Fatalf("Invalidate: %v", err)
	}

	files, ok := cache.Lookup[[]fileRecord](ctx, qc, "k")
	if !ok {
		t.Fatal("expected refetched value in cache after invalidation")
	}

	if files[0].ID != 2 {
		t.Errorf("got version %d, want 2 (refetched)", files[0].ID)
	}
}

// TestQueryCache_InvalidateWithoutFetcher 未注册拉取函数的键只做删除.
func TestQueryCache_InvalidateWithoutFetcher(t *testing.T) {
	ctx := context.Background()
	qc := newQueryCache()

	if err := qc.Invalidate(ctx, "unknown"); err != nil {
		t.Fatalf("Invalidate without fetcher: %v", err)
	}

	if _, ok := cache.Lookup[[]fileRecord](ctx, qc, "unknown"); ok {
		t.Error("unexpected value for unregistered key")
	}
}

// TestQueryCache_RefetchErrorPropagates 拉取失败向调用方透出.
func TestQueryCache_RefetchErrorPropagates(t *testing.T) {
	ctx := context.Background()
	qc := newQueryCache()

	boom := errors.New("upstream down")

	qc.RegisterFetcher("k", func(context.Context) (any, error) {
		return nil, boom
	})

	if _, err := cache.Fetch[[]fileRecord](ctx, qc, "k"); !errors.Is(err, boom) {
		t.Errorf("err = %v, want wrapped upstream error", err)
	}
}

// TestQueryCache_ConcurrentRefetchSingleflight 并发重取合并为一次请求.
func TestQueryCache_ConcurrentRefetchSingleflight(t *testing.T) {
	ctx := context.Background()
	qc := newQueryCache()

	var fetches atomic.Int32

	gate := make(chan struct{})

	qc.RegisterFetcher("k", func(context.Context) (any, error) {
		fetches.Add(1)
		<-gate

		return []fileRecord{{ID: 1}}, nil
	})

	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			_ = qc.Refetch(ctx, "k")
		}()
	}

	// 等第一个拉取进入并给其余调用时间挂到同一个 flight 上
	for fetches.Load() == 0 {
		time.Sleep(time.Millisecond)
	}

	time.Sleep(50 * time.Millisecond)
	close(gate)
	wg.Wait()

	// 门控期间到达的调用全部合并进第一次拉取
	if got := fetches.Load(); got != 1 {
		t.Errorf("fetches = %d, want 1 (coalesced)", got)
	}
}

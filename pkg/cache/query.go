package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// FetchFunc 拉取某个键对应的最新数据，由上层（API 客户端）注册.
type FetchFunc func(ctx context.Context) (any, error)

// QueryCache 查询缓存：以键为单位缓存服务端数据，失效后自动重新拉取.
//
// 每个键可注册一个 FetchFunc；Invalidate 会丢弃旧值并立即用 FetchFunc 重取，
// 并发的失效/读取通过 singleflight 合并为一次请求.
// 同一进程内观察同一个键的所有组件读到的是同一份缓存数据.
type QueryCache struct {
	cache *Cache
	ttl   time.Duration

	group    singleflight.Group
	mu       sync.RWMutex
	fetchers map[string]FetchFunc
}

// NewQueryCache 创建查询缓存. ttl 为 0 表示不过期（由失效驱动刷新）.
func NewQueryCache(c *Cache, ttl time.Duration) *QueryCache {
	return &QueryCache{
		cache:    c,
		ttl:      ttl,
		fetchers: make(map[string]FetchFunc),
	}
}

// RegisterFetcher 为键注册拉取函数，重复注册会覆盖.
func (q *QueryCache) RegisterFetcher(key string, fn FetchFunc) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.fetchers[key] = fn
}

// fetcher 获取键对应的拉取函数.
func (q *QueryCache) fetcher(key string) (FetchFunc, bool) {
	q.mu.RLock()
	defer q.mu.RUnlock()

	fn, ok := q.fetchers[key]

	return fn, ok
}

// Refetch 用注册的拉取函数重新获取并写入缓存.
// 并发调用同一个键时通过 singleflight 合并为一次请求.
func (q *QueryCache) Refetch(ctx context.Context, key string) error {
	fn, ok := q.fetcher(key)
	if !ok {
		return fmt.Errorf("no fetcher registered for key: %s", key)
	}

	_, err, _ := q.group.Do(key, func() (any, error) {
		value, err := fn(ctx)
		if err != nil {
			return nil, err
		}

		if setErr := Set(ctx, q.cache, key, value, q.ttl); setErr != nil {
			return nil, setErr
		}

		return value, nil
	})

	return err
}

// Invalidate 使键失效并立即重取.
// 未注册拉取函数的键只做删除，等待下一次按需拉取.
// 重取失败时旧值已被丢弃，读取方会在下一次 Fetch 时重试.
func (q *QueryCache) Invalidate(ctx context.Context, key string) error {
	if err := q.cache.Delete(ctx, key); err != nil {
		return err
	}

	if _, ok := q.fetcher(key); !ok {
		return nil
	}

	return q.Refetch(ctx, key)
}

// Fetch 读取键的缓存值，未命中时用注册的拉取函数拉取并缓存.
func Fetch[T any](ctx context.Context, q *QueryCache, key string) (T, error) {
	var zero T

	if value, err := Get[T](ctx, q.cache, key); err == nil {
		return value, nil
	}

	if err := q.Refetch(ctx, key); err != nil {
		return zero, err
	}

	return Get[T](ctx, q.cache, key)
}

// Lookup 只读取缓存，不触发拉取. 未命中时第二个返回值为 false.
func Lookup[T any](ctx context.Context, q *QueryCache, key string) (T, bool) {
	value, err := Get[T](ctx, q.cache, key)
	if err != nil {
		var zero T

		return zero, false
	}

	return value, true
}

package upstream

import (
	"context"

	"golang.org/x/sync/singleflight"
)

// Deduplicator 合并同一 key 的并发抓取：进行中的调用共享同一次执行与结果，
// 完成后立即遗忘，下一次调用会重新触发抓取。它不是缓存。
type Deduplicator[T any] struct {
	group singleflight.Group
}

// NewDeduplicator 创建一个独立实例；进程内每类抓取各持有一份。
func NewDeduplicator[T any]() *Deduplicator[T] {
	return &Deduplicator[T]{}
}

// Do 执行 fetch，同一 key 的并发调用只会触发一次 fetch。
func (d *Deduplicator[T]) Do(key string, fetch func() (T, error)) (T, error) {
	v, err, _ := d.group.Do(key, func() (any, error) {
		return fetch()
	})
	return cast[T](v), err
}

// DoContext 与 Do 相同，但调用方可以在 ctx 结束时放弃等待；共享的抓取继续为其他调用方运行。
func (d *Deduplicator[T]) DoContext(ctx context.Context, key string, fetch func() (T, error)) (T, error) {
	ch := d.group.DoChan(key, func() (any, error) {
		return fetch()
	})
	select {
	case res := <-ch:
		return cast[T](res.Val), res.Err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

func cast[T any](v any) T {
	if v == nil {
		var zero T
		return zero
	}
	return v.(T)
}

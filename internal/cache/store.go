package cache

import (
	"errors"
	"time"
)

// Store 是进程级 TTL 缓存的抽象，Get/GetWithMeta 在条目过期后表现为未命中。
type Store interface {
	// Get 返回未过期的值；不存在或已过期时 ok 为 false。
	Get(key string) (any, bool)

	// GetWithMeta 额外返回写入时间，便于日志输出 "cached Xm ago"。
	GetWithMeta(key string) (Entry, bool)

	// Set 整体替换条目并将其年龄重置为 0。
	Set(key string, value any)

	// Len 返回当前持有的条目数（包含尚未被惰性清理的过期条目）。
	Len() int
}

// Entry 表示一次缓存命中结果。写入后不可变，覆盖时整体替换。
type Entry struct {
	Value    any
	CachedAt time.Time
}

// Age 返回条目相对 now 的年龄。
func (e Entry) Age(now time.Time) time.Duration {
	return now.Sub(e.CachedAt)
}

// Options 控制 TTL 与容量上限。
type Options struct {
	TTL        time.Duration
	MaxEntries int
	// Now 允许测试注入时钟，默认 time.Now。
	Now func() time.Time
}

// ErrInvalidOptions 表示 TTL 或容量配置非法。
var ErrInvalidOptions = errors.New("cache: ttl and max entries must be positive")

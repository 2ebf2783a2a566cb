package platform

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

var globalRegistry = newRegistry()

type registry struct {
	mu        sync.RWMutex
	platforms map[string]Metadata
}

func newRegistry() *registry {
	return &registry{platforms: make(map[string]Metadata)}
}

// Register 将平台元数据加入全局注册表，重复键会返回错误。
func Register(meta Metadata) error {
	return globalRegistry.register(meta)
}

// MustRegister 在注册失败时 panic，适合平台包 init() 中调用。
func MustRegister(meta Metadata) {
	if err := Register(meta); err != nil {
		panic(err)
	}
}

// Resolve 返回指定键的平台元数据，大小写不敏感。
func Resolve(key string) (Metadata, bool) {
	return globalRegistry.resolve(key)
}

// List 返回按键排序的平台元数据列表。
func List() []Metadata {
	return globalRegistry.list()
}

// Keys 返回所有已注册平台的键值。
func Keys() []string {
	items := List()
	result := make([]string, len(items))
	for i, meta := range items {
		result[i] = meta.Key
	}
	return result
}

func normalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

func (r *registry) register(meta Metadata) error {
	key := normalizeKey(meta.Key)
	if key == "" {
		return fmt.Errorf("platform key is required")
	}
	if meta.NewProvider == nil {
		return fmt.Errorf("platform %s: provider constructor is required", key)
	}
	meta.Key = key
	if meta.Presentation.Key == "" {
		meta.Presentation.Key = key
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.platforms[key]; exists {
		return fmt.Errorf("platform %s already registered", key)
	}
	r.platforms[key] = meta
	return nil
}

func (r *registry) resolve(key string) (Metadata, bool) {
	normalized := normalizeKey(key)
	if normalized == "" {
		return Metadata{}, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	meta, ok := r.platforms[normalized]
	return meta, ok
}

func (r *registry) list() []Metadata {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.platforms) == 0 {
		return nil
	}

	keys := make([]string, 0, len(r.platforms))
	for key := range r.platforms {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	result := make([]Metadata, 0, len(keys))
	for _, key := range keys {
		result = append(result, r.platforms[key])
	}
	return result
}

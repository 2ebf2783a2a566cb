package cache

import (
	"container/list"
	"sync"
	"time"
)

// NewStore 构建带 TTL 与 LRU 上限的内存缓存，整个进程复用一份实例。
func NewStore(opts Options) (Store, error) {
	if opts.TTL <= 0 || opts.MaxEntries <= 0 {
		return nil, ErrInvalidOptions
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &memoryStore{
		ttl:     opts.TTL,
		max:     opts.MaxEntries,
		now:     now,
		order:   list.New(),
		entries: make(map[string]*list.Element, opts.MaxEntries),
	}, nil
}

// memoryStore 以双向链表维护最近使用顺序，表头为最新访问的条目。
type memoryStore struct {
	ttl time.Duration
	max int
	now func() time.Time

	mu      sync.Mutex
	order   *list.List
	entries map[string]*list.Element
}

type item struct {
	key   string
	entry Entry
}

func (s *memoryStore) Get(key string) (any, bool) {
	entry, ok := s.GetWithMeta(key)
	if !ok {
		return nil, false
	}
	return entry.Value, true
}

func (s *memoryStore) GetWithMeta(key string) (Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	elem, ok := s.entries[key]
	if !ok {
		return Entry{}, false
	}
	it := elem.Value.(*item)
	if s.expired(it.entry) {
		s.removeElement(elem)
		return Entry{}, false
	}
	s.order.MoveToFront(elem)
	return it.entry, true
}

func (s *memoryStore) Set(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := Entry{Value: value, CachedAt: s.now()}
	if elem, ok := s.entries[key]; ok {
		elem.Value = &item{key: key, entry: entry}
		s.order.MoveToFront(elem)
		return
	}

	s.entries[key] = s.order.PushFront(&item{key: key, entry: entry})
	for s.order.Len() > s.max {
		s.removeElement(s.order.Back())
	}
}

func (s *memoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.order.Len()
}

// expired 判断条目年龄是否超过 TTL；恰好等于 TTL 时仍视为有效。
func (s *memoryStore) expired(entry Entry) bool {
	return entry.Age(s.now()) > s.ttl
}

func (s *memoryStore) removeElement(elem *list.Element) {
	if elem == nil {
		return
	}
	s.order.Remove(elem)
	delete(s.entries, elem.Value.(*item).key)
}

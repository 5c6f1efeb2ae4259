package check

import (
	"container/list"
	"reflect"
	"sync"
	"time"
)

// Cached memoizes an inner validator's results keyed by value. Values without
// a usable key (slices, maps, structs) fall through to the inner validator
// uncached. Entries expire after a TTL; when the store is over capacity the
// globally oldest entry is evicted regardless of access recency.
type Cached struct {
	name     string
	inner    Validator
	capacity int
	ttl      time.Duration
	now      func() time.Time

	mu      sync.Mutex
	entries map[any]*list.Element
	order   *list.List // front = newest stored
}

type cacheEntry struct {
	key      any
	result   Result[any]
	storedAt time.Time
}

// CachedOption configures a Cached validator.
type CachedOption func(*Cached)

// WithCapacity bounds the number of memoized entries. Must be positive.
func WithCapacity(n int) CachedOption {
	return func(c *Cached) { c.capacity = n }
}

// WithTTL sets how long a memoized result stays live.
func WithTTL(ttl time.Duration) CachedOption {
	return func(c *Cached) { c.ttl = ttl }
}

// NewCached wraps inner with identity-keyed memoization.
func NewCached(name string, inner Validator, opts ...CachedOption) *Cached {
	if inner == nil {
		panic(ErrNilValidator)
	}
	c := &Cached{
		name:     name,
		inner:    inner,
		capacity: 128,
		ttl:      time.Minute,
		now:      time.Now,
		entries:  make(map[any]*list.Element),
		order:    list.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.capacity <= 0 {
		panic("check: cache capacity must be positive")
	}
	return c
}

func (c *Cached) Name() string { return c.name }

func (c *Cached) Validate(value any, ctx *Context) Result[any] {
	if !cacheable(value) {
		return c.inner.Validate(value, ctx)
	}

	if res, ok := c.get(value); ok {
		return res
	}

	res := c.inner.Validate(value, ctx)
	c.put(value, res)
	return res
}

// Len reports the number of memoized entries, expired or not.
func (c *Cached) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

func (c *Cached) get(key any) (Result[any], bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.entries[key]
	if !ok {
		return Result[any]{}, false
	}

	entry := elem.Value.(*cacheEntry)
	if c.now().Sub(entry.storedAt) >= c.ttl {
		c.order.Remove(elem)
		delete(c.entries, key)
		return Result[any]{}, false
	}
	return entry.result, true
}

func (c *Cached) put(key any, res Result[any]) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.entries[key]; ok {
		entry := elem.Value.(*cacheEntry)
		entry.result = res
		entry.storedAt = c.now()
		return
	}

	elem := c.order.PushFront(&cacheEntry{key: key, result: res, storedAt: c.now()})
	c.entries[key] = elem

	if c.order.Len() > c.capacity {
		oldest := c.order.Back()
		if oldest != nil {
			c.order.Remove(oldest)
			delete(c.entries, oldest.Value.(*cacheEntry).key)
		}
	}
}

// cacheable reports whether the value can safely serve as a map key. Only
// scalar kinds and pointer-like identities qualify; composite types may
// contain uncomparable members and are skipped entirely.
func cacheable(v any) bool {
	if v == nil {
		return true
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128,
		reflect.String, reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		return true
	default:
		return false
	}
}

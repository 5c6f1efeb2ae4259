package check

import (
	"reflect"
	"strings"
)

const defaultMaxDepth = 100

// identity keys reference values by pointer so that revisiting the same
// container is distinguishable from visiting an equal copy.
type identity struct {
	kind reflect.Kind
	ptr  uintptr
}

// seenSet is the cycle-detection memory shared by every branch of one
// top-level validation call. It is owned by exactly one call tree and is
// never touched concurrently within it; parallel units get their own set
// via Context.Fork.
type seenSet struct {
	ids map[identity]struct{}
}

func newSeenSet() *seenSet {
	return &seenSet{ids: make(map[identity]struct{})}
}

// Context is the per-branch state of a validation pass: the location (path),
// descent depth, strictness flags, and the shared cycle-detection set.
// Children are copy-on-descend snapshots; siblings never observe each
// other's mutations except through the shared cycle set.
type Context struct {
	path       []string
	depth      int
	maxDepth   int
	strict     bool
	collectAll bool
	coerce     bool
	seen       *seenSet
	parent     *Context
	meta       map[string]any
}

// ContextOption configures a root context.
type ContextOption func(*Context)

// WithMaxDepth sets the maximum descent depth. Must be positive.
func WithMaxDepth(depth int) ContextOption {
	return func(c *Context) { c.maxDepth = depth }
}

// WithStrict disables numeric widening and any coercion in primitive checks.
func WithStrict() ContextOption {
	return func(c *Context) { c.strict = true }
}

// WithoutCollectAll makes validators stop at the first failing element or
// stage instead of collecting every issue.
func WithoutCollectAll() ContextOption {
	return func(c *Context) { c.collectAll = false }
}

// WithCoercion opts in to best-effort value conversion in primitive checks.
func WithCoercion() ContextOption {
	return func(c *Context) { c.coerce = true }
}

// WithMeta seeds a metadata entry on the root context.
func WithMeta(key string, value any) ContextOption {
	return func(c *Context) { c.meta[key] = value }
}

// NewContext creates a root validation context. Collect-all is the default;
// a non-positive max depth is a misconfiguration and panics.
func NewContext(opts ...ContextOption) *Context {
	c := &Context{
		maxDepth:   defaultMaxDepth,
		collectAll: true,
		seen:       newSeenSet(),
		meta:       make(map[string]any),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.maxDepth <= 0 {
		panic("check: max depth must be positive")
	}
	return c
}

// Child returns a copy-on-descend snapshot with the path extended by segment
// and the depth incremented. The cycle set is shared with the parent.
func (c *Context) Child(segment string) *Context {
	path := make([]string, len(c.path), len(c.path)+1)
	copy(path, c.path)

	return &Context{
		path:       append(path, segment),
		depth:      c.depth + 1,
		maxDepth:   c.maxDepth,
		strict:     c.strict,
		collectAll: c.collectAll,
		coerce:     c.coerce,
		seen:       c.seen,
		parent:     c,
		meta:       c.meta,
	}
}

// Fork derives an independent context for a parallel unit of work: same
// flags, path extended by segment, depth reset relative to the fork point,
// and a fresh cycle set so concurrent units share no mutable state.
func (c *Context) Fork(segment string) *Context {
	child := c.Child(segment)
	child.depth = c.depth
	child.seen = newSeenSet()
	child.meta = make(map[string]any)
	return child
}

// DepthExceeded reports whether this branch descended past the maximum depth.
func (c *Context) DepthExceeded() bool {
	return c.depth > c.maxDepth
}

// HasSeen registers the value's identity in the shared cycle set and reports
// whether it was already present. Only reference-like values (maps, slices,
// pointers, funcs, chans) carry an identity; everything else is never "seen".
// The set is shared across sibling branches of one top-level call, so
// cross-branch structural sharing is also caught.
func (c *Context) HasSeen(value any) bool {
	id, ok := identityOf(value)
	if !ok {
		return false
	}
	if _, seen := c.seen.ids[id]; seen {
		return true
	}
	c.seen.ids[id] = struct{}{}
	return false
}

// Path renders the current location dotted, with index segments attached
// bracket-style, or "<root>" at the top level.
func (c *Context) Path() string {
	if len(c.path) == 0 {
		return "<root>"
	}

	var b strings.Builder
	for i, seg := range c.path {
		if i > 0 && !strings.HasPrefix(seg, "[") {
			b.WriteByte('.')
		}
		b.WriteString(seg)
	}
	return b.String()
}

func (c *Context) Depth() int       { return c.depth }
func (c *Context) MaxDepth() int    { return c.maxDepth }
func (c *Context) Strict() bool     { return c.strict }
func (c *Context) CollectAll() bool { return c.collectAll }
func (c *Context) Coerce() bool     { return c.coerce }
func (c *Context) Parent() *Context { return c.parent }

// Meta looks up a metadata entry. The map is shared down one synchronous
// call tree; forked contexts get their own.
func (c *Context) Meta(key string) (any, bool) {
	v, ok := c.meta[key]
	return v, ok
}

// SetMeta records a metadata entry visible to the whole call tree.
func (c *Context) SetMeta(key string, value any) {
	c.meta[key] = value
}

func identityOf(v any) (identity, bool) {
	if v == nil {
		return identity{}, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Pointer, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		if rv.IsNil() {
			return identity{}, false
		}
		return identity{kind: rv.Kind(), ptr: rv.Pointer()}, true
	default:
		return identity{}, false
	}
}

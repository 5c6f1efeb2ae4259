package check_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/shapekit/pkg/check"
)

func TestContext_Path(t *testing.T) {
	t.Parallel()

	t.Run("renders root marker for empty path", func(t *testing.T) {
		t.Parallel()
		ctx := check.NewContext()
		assert.Equal(t, "<root>", ctx.Path())
	})

	t.Run("joins named segments with dots", func(t *testing.T) {
		t.Parallel()
		ctx := check.NewContext().Child("user").Child("address").Child("city")
		assert.Equal(t, "user.address.city", ctx.Path())
	})

	t.Run("attaches index segments without a dot", func(t *testing.T) {
		t.Parallel()
		ctx := check.NewContext().Child("items").Child("[2]")
		assert.Equal(t, "items[2]", ctx.Path())
	})

	t.Run("index at root stands alone", func(t *testing.T) {
		t.Parallel()
		ctx := check.NewContext().Child("[2]")
		assert.Equal(t, "[2]", ctx.Path())
	})
}

func TestContext_Child(t *testing.T) {
	t.Parallel()

	t.Run("increments depth per descent", func(t *testing.T) {
		t.Parallel()
		ctx := check.NewContext()
		require.Equal(t, 0, ctx.Depth())

		child := ctx.Child("a").Child("b")
		assert.Equal(t, 2, child.Depth())
		assert.Equal(t, 0, ctx.Depth())
	})

	t.Run("links to parent", func(t *testing.T) {
		t.Parallel()
		ctx := check.NewContext()
		child := ctx.Child("a")
		assert.Same(t, ctx, child.Parent())
	})

	t.Run("siblings do not share path segments", func(t *testing.T) {
		t.Parallel()
		ctx := check.NewContext().Child("parent")
		a := ctx.Child("a")
		b := ctx.Child("b")
		assert.Equal(t, "parent.a", a.Path())
		assert.Equal(t, "parent.b", b.Path())
	})

	t.Run("inherits flags", func(t *testing.T) {
		t.Parallel()
		ctx := check.NewContext(check.WithStrict(), check.WithoutCollectAll(), check.WithCoercion(), check.WithMaxDepth(7))
		child := ctx.Child("a")
		assert.True(t, child.Strict())
		assert.False(t, child.CollectAll())
		assert.True(t, child.Coerce())
		assert.Equal(t, 7, child.MaxDepth())
	})
}

func TestContext_DepthExceeded(t *testing.T) {
	t.Parallel()

	t.Run("flips exactly past the maximum", func(t *testing.T) {
		t.Parallel()
		ctx := check.NewContext(check.WithMaxDepth(2))
		c1 := ctx.Child("a")
		c2 := c1.Child("b")
		c3 := c2.Child("c")

		assert.False(t, c1.DepthExceeded())
		assert.False(t, c2.DepthExceeded())
		assert.True(t, c3.DepthExceeded())
	})

	t.Run("zero max depth panics", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() {
			check.NewContext(check.WithMaxDepth(0))
		})
	})
}

func TestContext_HasSeen(t *testing.T) {
	t.Parallel()

	t.Run("registers on first sight and reports on second", func(t *testing.T) {
		t.Parallel()
		ctx := check.NewContext()
		m := map[string]any{"a": 1}

		assert.False(t, ctx.HasSeen(m))
		assert.True(t, ctx.HasSeen(m))
	})

	t.Run("scalars are never seen", func(t *testing.T) {
		t.Parallel()
		ctx := check.NewContext()
		assert.False(t, ctx.HasSeen(42))
		assert.False(t, ctx.HasSeen(42))
		assert.False(t, ctx.HasSeen("x"))
		assert.False(t, ctx.HasSeen("x"))
	})

	t.Run("set is shared across sibling branches", func(t *testing.T) {
		t.Parallel()
		ctx := check.NewContext()
		shared := map[string]any{"x": 1}

		a := ctx.Child("a")
		b := ctx.Child("b")
		assert.False(t, a.HasSeen(shared))
		assert.True(t, b.HasSeen(shared))
	})

	t.Run("equal but distinct containers are distinct", func(t *testing.T) {
		t.Parallel()
		ctx := check.NewContext()
		assert.False(t, ctx.HasSeen(map[string]any{"a": 1}))
		assert.False(t, ctx.HasSeen(map[string]any{"a": 1}))
	})

	t.Run("fork gets a fresh set", func(t *testing.T) {
		t.Parallel()
		ctx := check.NewContext()
		m := map[string]any{"a": 1}
		require.False(t, ctx.HasSeen(m))

		forked := ctx.Fork("[0]")
		assert.False(t, forked.HasSeen(m))
	})
}

func TestContext_Meta(t *testing.T) {
	t.Parallel()

	t.Run("metadata flows down the call tree", func(t *testing.T) {
		t.Parallel()
		ctx := check.NewContext(check.WithMeta("source", "api"))
		child := ctx.Child("a")

		v, ok := child.Meta("source")
		require.True(t, ok)
		assert.Equal(t, "api", v)

		child.SetMeta("note", 1)
		_, ok = ctx.Meta("note")
		assert.True(t, ok)
	})
}

package theme

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/alexisbeaulieu97/cooler/internal/palette"
)

var defaultComposite = sync.OnceValue(func() *palette.Composite {
	return palette.NewComposite(palette.Light())
})

// Default returns the palette used when nothing has been bound: the light
// preset with the default alpha. The same instance is returned on every call.
func Default() *palette.Composite {
	return defaultComposite()
}

// Slot holds the active palette. Readers never lock; Store swaps the whole
// Composite in one atomic step. A nil *Slot reads as Default and ignores
// writes.
type Slot struct {
	current atomic.Pointer[palette.Composite]
}

// NewSlot returns a slot holding c, or the default palette when c is nil.
func NewSlot(c *palette.Composite) *Slot {
	s := &Slot{}
	s.Store(c)
	return s
}

// Load returns the active palette, falling back to Default.
func (s *Slot) Load() *palette.Composite {
	if s == nil {
		return Default()
	}
	if c := s.current.Load(); c != nil {
		return c
	}
	return Default()
}

// Store replaces the active palette. Storing nil restores the default.
func (s *Slot) Store(c *palette.Composite) {
	if s == nil {
		return
	}
	s.current.Store(c)
}

// Swap replaces the active palette and returns the previous one.
func (s *Slot) Swap(c *palette.Composite) *palette.Composite {
	if s == nil {
		return Default()
	}
	previous := s.current.Swap(c)
	if previous == nil {
		return Default()
	}
	return previous
}

type contextKey struct{}

// WithPalette returns a child context carrying c.
func WithPalette(ctx context.Context, c *palette.Composite) context.Context {
	return context.WithValue(ctx, contextKey{}, c)
}

// FromContext returns the palette bound to ctx, or Default when none is.
func FromContext(ctx context.Context) *palette.Composite {
	if ctx == nil {
		return Default()
	}
	if c, ok := ctx.Value(contextKey{}).(*palette.Composite); ok && c != nil {
		return c
	}
	return Default()
}

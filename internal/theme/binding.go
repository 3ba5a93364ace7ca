package theme

import (
	"sync"

	"github.com/alexisbeaulieu97/cooler/internal/palette"
)

// Pair is a light/dark pair of palettes.
type Pair struct {
	Light *palette.Composite
	Dark  *palette.Composite
}

// PresetPair builds a pair from the light and dark presets sharing one alpha.
func PresetPair(opts ...palette.Option) Pair {
	return Pair{
		Light: palette.NewComposite(palette.Light(), opts...),
		Dark:  palette.NewComposite(palette.Dark(), opts...),
	}
}

// Resolve returns the palette matching appearance. A missing side resolves to
// Default.
func (p Pair) Resolve(a Appearance) *palette.Composite {
	chosen := p.Light
	if a == AppearanceDark {
		chosen = p.Dark
	}
	if chosen == nil {
		return Default()
	}
	return chosen
}

// Binding keeps a slot pointed at whichever side of a pair the current
// appearance selects.
type Binding struct {
	mu         sync.Mutex
	slot       *Slot
	pair       Pair
	appearance Appearance
}

// Bind resolves pair for appearance, stores the result in slot and returns a
// binding that re-evaluates on every appearance change. A nil slot is
// replaced by a fresh one, reachable through Binding.Slot.
func Bind(slot *Slot, pair Pair, appearance Appearance) *Binding {
	if slot == nil {
		slot = &Slot{}
	}
	b := &Binding{slot: slot, pair: pair, appearance: appearance}
	slot.Store(pair.Resolve(appearance))
	return b
}

// Appearance returns the appearance the slot currently reflects.
func (b *Binding) Appearance() Appearance {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.appearance
}

// SetAppearance re-evaluates the binding. It reports whether the slot was
// replaced.
func (b *Binding) SetAppearance(a Appearance) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.setLocked(a)
}

// Toggle flips the appearance and returns the new one. Concurrent toggles
// each observe and flip a distinct appearance.
func (b *Binding) Toggle() Appearance {
	b.mu.Lock()
	defer b.mu.Unlock()
	next := b.appearance.Toggle()
	b.setLocked(next)
	return next
}

// setLocked must be called with mu held.
func (b *Binding) setLocked(a Appearance) bool {
	if a == b.appearance {
		return false
	}
	b.appearance = a
	b.slot.Store(b.pair.Resolve(a))
	return true
}

// Slot returns the bound slot.
func (b *Binding) Slot() *Slot {
	return b.slot
}

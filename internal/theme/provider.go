package theme

import (
	"sort"
	"sync"
)

// Value is a consistent snapshot of the theme state and every derived table.
type Value struct {
	Theme      Mode
	Colors     Colors
	Semantic   SemanticColors
	Typography Typography
	Spacing    SpacingScale
	Radius     RadiusScale
	Gradient   Gradient
}

// IsDark reports whether the snapshot uses the dark table.
func (v Value) IsDark() bool {
	return v.Theme == ModeDark
}

// Provider owns the active theme selector for one UI tree.
type Provider struct {
	mu        sync.RWMutex
	mode      Mode
	listeners map[int]func(Value)
	nextID    int
}

// NewProvider initialises a provider. An empty mode selects DefaultMode.
func NewProvider(defaultTheme Mode) *Provider {
	if defaultTheme == "" {
		defaultTheme = DefaultMode
	}
	return &Provider{
		mode:      defaultTheme,
		listeners: make(map[int]func(Value)),
	}
}

// Read returns the current selector and its derived tables.
func (p *Provider) Read() Value {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return valueFor(p.mode)
}

// Theme returns only the selector.
func (p *Provider) Theme() Mode {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.mode
}

// ToggleTheme flips dark and light and notifies subscribers.
func (p *Provider) ToggleTheme() {
	p.mu.Lock()
	p.mode = p.mode.Toggled()
	value, listeners := p.snapshotLocked()
	p.mu.Unlock()

	notify(listeners, value)
}

// SetTheme replaces the selector. Values outside Modes() are not rejected.
func (p *Provider) SetTheme(mode Mode) {
	p.mu.Lock()
	p.mode = mode
	value, listeners := p.snapshotLocked()
	p.mu.Unlock()

	notify(listeners, value)
}

// Subscribe registers fn to run after every change. The returned func removes it.
func (p *Provider) Subscribe(fn func(Value)) (cancel func()) {
	if fn == nil {
		return func() {}
	}

	p.mu.Lock()
	id := p.nextID
	p.nextID++
	p.listeners[id] = fn
	p.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			p.mu.Lock()
			delete(p.listeners, id)
			p.mu.Unlock()
		})
	}
}

func (p *Provider) snapshotLocked() (Value, []func(Value)) {
	ids := make([]int, 0, len(p.listeners))
	for id := range p.listeners {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	listeners := make([]func(Value), 0, len(ids))
	for _, id := range ids {
		listeners = append(listeners, p.listeners[id])
	}
	return valueFor(p.mode), listeners
}

func notify(listeners []func(Value), value Value) {
	for _, fn := range listeners {
		fn(value)
	}
}

func valueFor(mode Mode) Value {
	return Value{
		Theme:      mode,
		Colors:     ColorsFor(mode),
		Semantic:   Semantic,
		Typography: DefaultTypography,
		Spacing:    DefaultSpacing,
		Radius:     DefaultRadius,
		Gradient:   HeaderGradient,
	}
}

// Snapshot builds a Value without a provider, for static rendering and tests.
func Snapshot(mode Mode) Value {
	return valueFor(mode)
}

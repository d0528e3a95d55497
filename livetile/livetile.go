// Package livetile provides a mutable, in-memory vector tile: an addressable
// container of named layers whose features can be added and removed while the
// tile is live, and serialized to Mapbox Vector Tile bytes on demand.
//
// It is the tile representation behind the annotile Manager: annotation
// features are inserted with tile-local geometry and later torn down by
// handle, without the renderer having to reload the whole tile.
package livetile

import (
	"sort"
	"sync"
)

// Tile is a mutable vector tile holding named layers.
// It is safe for concurrent use.
type Tile struct {
	mu     sync.RWMutex
	layers map[string]*Layer
}

// New creates an empty tile.
func New() *Tile {
	return &Tile{
		layers: make(map[string]*Layer),
	}
}

// GetOrCreateLayer returns the named layer, creating it if absent.
func (t *Tile) GetOrCreateLayer(name string) *Layer {
	t.mu.Lock()
	defer t.mu.Unlock()

	if l, ok := t.layers[name]; ok {
		return l
	}

	l := NewLayer(name)
	t.layers[name] = l
	return l
}

// Layer retrieves the named layer.
func (t *Tile) Layer(name string) (*Layer, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	l, ok := t.layers[name]
	return l, ok
}

// Layers returns a snapshot of all layers sorted by name.
func (t *Tile) Layers() []*Layer {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]*Layer, 0, len(t.layers))
	for _, l := range t.layers {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })

	return out
}

// Empty reports whether no layer holds any feature.
func (t *Tile) Empty() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, l := range t.layers {
		if l.Len() > 0 {
			return false
		}
	}
	return true
}

// Len returns the total feature count across all layers.
func (t *Tile) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	n := 0
	for _, l := range t.layers {
		n += l.Len()
	}
	return n
}

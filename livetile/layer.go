package livetile

import (
	"sync"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// DefaultExtent is the integer coordinate range used to express feature
// geometry local to one tile edge.
const DefaultExtent uint32 = 4096

// FeatureID is a stable, per-layer handle for a feature. The zero value is
// never a live handle.
type FeatureID uint64

// Feature is a single renderable element of a layer. Geometry is expressed
// in tile-local coordinates on the layer's extent. A feature is immutable
// once added; mutate by removing and re-adding.
type Feature struct {
	ID         FeatureID
	Geometry   orb.Geometry
	Properties geojson.Properties
}

// Layer is a named, ordered collection of features within a tile.
// It is safe for concurrent use.
type Layer struct {
	name   string
	extent uint32

	mu       sync.RWMutex
	features []*Feature
	nextID   FeatureID
}

// NewLayer creates an empty layer with the default extent.
func NewLayer(name string) *Layer {
	return &Layer{
		name:   name,
		extent: DefaultExtent,
	}
}

// Name returns the layer name.
func (l *Layer) Name() string { return l.name }

// Extent returns the tile-local coordinate range of the layer.
func (l *Layer) Extent() uint32 { return l.extent }

// AddFeature appends a feature and returns its handle.
func (l *Layer) AddFeature(geometry orb.Geometry, properties geojson.Properties) FeatureID {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.nextID++
	l.features = append(l.features, &Feature{
		ID:         l.nextID,
		Geometry:   geometry,
		Properties: properties,
	})

	return l.nextID
}

// RemoveFeature deletes the feature with the given handle, preserving the
// order of the remaining features. It reports whether a feature was removed.
func (l *Layer) RemoveFeature(id FeatureID) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, f := range l.features {
		if f.ID == id {
			l.features = append(l.features[:i], l.features[i+1:]...)
			return true
		}
	}
	return false
}

// Feature retrieves a feature by handle.
func (l *Layer) Feature(id FeatureID) (*Feature, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, f := range l.features {
		if f.ID == id {
			return f, true
		}
	}
	return nil, false
}

// Features returns a snapshot of the layer's features in insertion order.
func (l *Layer) Features() []*Feature {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]*Feature, len(l.features))
	copy(out, l.features)

	return out
}

// Len returns the number of features in the layer.
func (l *Layer) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.features)
}

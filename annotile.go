package annotile

import (
	"context"
	"sync"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/maptile"

	"github.com/hupe1980/annotile/livetile"
)

const (
	// DefaultLayerID is the layer name point features are written under when
	// no layer is configured.
	DefaultLayerID = "com.annotile.points"

	// PropertySprite is the feature property carrying the sprite name a
	// renderer should draw for a point annotation.
	PropertySprite = "sprite"
)

// ID identifies an annotation for its whole lifetime. IDs are assigned
// sequentially starting at 0 and are never reused.
type ID uint32

// tileEntry pairs the IDs present in a tile with its live feature store.
type tileEntry struct {
	ids  []ID
	tile *livetile.Tile
}

// Manager places point annotations into a tile pyramid and keeps the
// annotation and tile indices consistent with each other. All methods are
// safe for concurrent use.
type Manager struct {
	mu          sync.Mutex
	annotations map[ID]*annotation
	tiles       map[maptile.Tile]*tileEntry
	nextID      ID

	defaultSymbol string
	layerID       string
	metrics       MetricsCollector
	logger        *Logger
}

// New creates a new Manager.
func New(optFns ...Option) *Manager {
	opts := applyOptions(optFns)

	return &Manager{
		annotations:   make(map[ID]*annotation),
		tiles:         make(map[maptile.Tile]*tileEntry),
		defaultSymbol: opts.defaultSymbol,
		layerID:       opts.layerID,
		metrics:       opts.metricsCollector,
		logger:        opts.logger,
	}
}

// AddPointAnnotations adds a batch of point annotations to the pyramid of m.
// symbols may be nil to use the default symbol for every point; otherwise it
// must have one entry per point, where an empty string again selects the
// default. It returns the affected tiles in first-touch order and the
// assigned IDs in point order.
func (am *Manager) AddPointAnnotations(ctx context.Context, points []orb.Point, symbols []string, m Map) ([]maptile.Tile, []ID, error) {
	start := time.Now()

	if symbols != nil && len(symbols) != len(points) {
		err := &ErrBatchLengthMismatch{Points: len(points), Symbols: len(symbols)}
		am.metrics.RecordAdd(len(points), time.Since(start), err)
		am.logger.LogAdd(ctx, len(points), 0, err)
		return nil, nil, err
	}

	maxZoom := capZoom(m.MaxZoom())

	am.mu.Lock()

	affected := newTileSet(len(points) * (int(maxZoom) + 1))
	ids := make([]ID, 0, len(points))

	for i, p := range points {
		var symbol string
		if symbols != nil {
			symbol = symbols[i]
		}

		id := am.nextID
		am.nextID++

		a := newAnnotation(kindPoint, [][]orb.Point{{p}})
		am.annotations[id] = a
		am.placePoint(id, a, symbol, maxZoom, affected)

		ids = append(ids, id)
	}

	am.mu.Unlock()

	tiles := affected.ordered()
	am.metrics.RecordAdd(len(points), time.Since(start), nil)
	am.logger.LogAdd(ctx, len(points), len(tiles), nil)

	return tiles, ids, nil
}

// RemoveAnnotations removes the given annotations and their features from
// every tile they were placed into. Unknown IDs are skipped. Tiles left with
// no annotations and no features are dropped from the index. It returns the
// affected tiles.
func (am *Manager) RemoveAnnotations(ctx context.Context, ids []ID) []maptile.Tile {
	start := time.Now()

	am.mu.Lock()

	affected := newTileSet(len(ids))

	for _, id := range ids {
		a, ok := am.annotations[id]
		if !ok {
			continue
		}

		for key, features := range a.tileFeatures {
			entry, ok := am.tiles[key]
			if !ok {
				continue
			}

			entry.ids = removeID(entry.ids, id)
			if layer, ok := entry.tile.Layer(am.layerID); ok {
				for _, fid := range features {
					layer.RemoveFeature(fid)
				}
			}

			if len(entry.ids) == 0 && entry.tile.Empty() {
				delete(am.tiles, key)
			}

			affected.add(key)
		}

		delete(am.annotations, id)
	}

	am.mu.Unlock()

	tiles := affected.ordered()
	am.metrics.RecordRemove(len(ids), time.Since(start))
	am.logger.LogRemove(ctx, len(ids), len(tiles))

	return tiles
}

// SetDefaultPointAnnotationSymbol sets the sprite used for points added with
// an empty symbol. It affects subsequent adds only.
func (am *Manager) SetDefaultPointAnnotationSymbol(symbol string) {
	am.mu.Lock()
	defer am.mu.Unlock()

	am.defaultSymbol = symbol
}

// GetTile returns the live tile for key, if any annotation features are
// currently placed there. The returned tile is safe for concurrent reads;
// once every annotation touching it has been removed the Manager may drop it
// and later materialize a fresh one for the same key.
func (am *Manager) GetTile(key maptile.Tile) (*livetile.Tile, bool) {
	am.mu.Lock()
	defer am.mu.Unlock()

	entry, ok := am.tiles[key]
	if !ok {
		return nil, false
	}
	return entry.tile, true
}

// Stats is a point-in-time snapshot of index sizes.
type Stats struct {
	Annotations int
	Tiles       int
	Features    int
}

// Stats returns current index sizes. Features counts the per-level copies,
// so one annotation in a pyramid of depth z contributes z+1.
func (am *Manager) Stats() Stats {
	am.mu.Lock()
	defer am.mu.Unlock()

	s := Stats{
		Annotations: len(am.annotations),
		Tiles:       len(am.tiles),
	}
	for _, entry := range am.tiles {
		s.Features += entry.tile.Len()
	}
	return s
}

// removeID filters id out of ids in place, preserving order.
func removeID(ids []ID, id ID) []ID {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

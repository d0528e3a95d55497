package annotile

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/maptile"

	"github.com/hupe1980/annotile/livetile"
)

// maxTileZoom is the deepest level with addressable uint32 tile coordinates.
const maxTileZoom maptile.Zoom = 31

func capZoom(z maptile.Zoom) maptile.Zoom {
	if z > maxTileZoom {
		return maxTileZoom
	}
	return z
}

// tileCoord converts one axis of a fractional tile position to a tile index,
// clamped to the valid range at zoom z. Fractions leave [0, 2^z) for
// longitudes beyond ±180 and, on the y axis, for latitudes at the poles.
func tileCoord(f float64, z maptile.Zoom) uint32 {
	if f < 0 {
		return 0
	}
	limit := uint32(1) << z
	if f >= float64(limit) {
		return limit - 1
	}
	return uint32(f)
}

// tileSet accumulates touched tiles, deduplicated in first-touch order.
type tileSet struct {
	seen map[maptile.Tile]struct{}
	keys []maptile.Tile
}

func newTileSet(capacity int) *tileSet {
	return &tileSet{
		seen: make(map[maptile.Tile]struct{}, capacity),
		keys: make([]maptile.Tile, 0, capacity),
	}
}

func (s *tileSet) add(keys ...maptile.Tile) {
	for _, key := range keys {
		if _, ok := s.seen[key]; ok {
			continue
		}
		s.seen[key] = struct{}{}
		s.keys = append(s.keys, key)
	}
}

func (s *tileSet) ordered() []maptile.Tile {
	return s.keys
}

// placePoint writes one point annotation into every pyramid level from
// maxZoom down to 0. The fractional position is computed once at maxZoom and
// halved per level, which keeps all levels consistent with each other.
// Callers must hold am.mu.
func (am *Manager) placePoint(id ID, a *annotation, symbol string, maxZoom maptile.Zoom, touched *tileSet) {
	frac := maptile.Fraction(a.anchor(), maxZoom)
	fx, fy := frac[0], frac[1]
	x, y := tileCoord(fx, maxZoom), tileCoord(fy, maxZoom)

	if symbol == "" {
		symbol = am.defaultSymbol
	}

	for z := int(maxZoom); z >= 0; z-- {
		key := maptile.Tile{X: x, Y: y, Z: maptile.Zoom(z)}
		local := orb.Point{
			float64(livetile.DefaultExtent) * (fx - float64(x)),
			float64(livetile.DefaultExtent) * (fy - float64(y)),
		}
		props := geojson.Properties{PropertySprite: symbol}

		entry, ok := am.tiles[key]
		if !ok {
			entry = &tileEntry{tile: livetile.New()}
			am.tiles[key] = entry
		}

		layer := entry.tile.GetOrCreateLayer(am.layerID)
		fid := layer.AddFeature(local, props)

		entry.ids = append(entry.ids, id)
		a.tileFeatures[key] = append(a.tileFeatures[key], fid)
		touched.add(key)

		x /= 2
		y /= 2
		fx /= 2
		fy /= 2
	}
}

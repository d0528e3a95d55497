package annotile

import "github.com/paulmach/orb/maptile"

// Map supplies the maximum zoom of the tile pyramid. Placement and bounds
// queries read it at call time, so a live map view may change depth between
// calls.
type Map interface {
	MaxZoom() maptile.Zoom
}

// FixedZoom is a Map with a constant maximum zoom.
type FixedZoom maptile.Zoom

// MaxZoom implements Map.
func (z FixedZoom) MaxZoom() maptile.Zoom { return maptile.Zoom(z) }

var _ Map = FixedZoom(0)

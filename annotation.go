package annotile

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/maptile"

	"github.com/hupe1980/annotile/livetile"
)

type kind uint8

const (
	kindPoint kind = iota
	kindShape
)

// annotation is the per-ID record. segments holds the geometry vertices in
// geographic coordinates; for points there is a single one-vertex segment.
// tileFeatures maps every tile the annotation was written into to the feature
// handles it owns there, so removal never scans tiles the annotation does not
// touch.
type annotation struct {
	kind         kind
	segments     [][]orb.Point
	bounds       orb.Bound
	tileFeatures map[maptile.Tile][]livetile.FeatureID
}

func newAnnotation(k kind, segments [][]orb.Point) *annotation {
	if k == kindPoint && (len(segments) == 0 || len(segments[0]) == 0) {
		panic("annotile: point annotation requires an anchor vertex")
	}

	bounds := emptyBound()
	for _, segment := range segments {
		for _, p := range segment {
			bounds = bounds.Extend(p)
		}
	}

	return &annotation{
		kind:         k,
		segments:     segments,
		bounds:       bounds,
		tileFeatures: make(map[maptile.Tile][]livetile.FeatureID),
	}
}

// anchor returns the placement vertex. Valid for points by construction.
func (a *annotation) anchor() orb.Point {
	return a.segments[0][0]
}

// emptyBound returns an inverted bound that any Extend collapses to the
// extended point.
func emptyBound() orb.Bound {
	return orb.Bound{Min: orb.Point{180, 90}, Max: orb.Point{-180, -90}}
}

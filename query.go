package annotile

import (
	"context"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/maptile"
)

// AnnotationsInBounds returns the IDs of all annotations whose bounds are
// fully contained in bounds. The query runs over the tile grid at the max
// zoom of m: tiles strictly inside the query rectangle are accepted without
// inspecting their annotations, and only tiles on the rectangle's rim fall
// back to per-annotation containment tests.
func (am *Manager) AnnotationsInBounds(ctx context.Context, bounds orb.Bound, m Map) []ID {
	start := time.Now()

	z := capZoom(m.MaxZoom())
	swFrac := maptile.Fraction(bounds.Min, z)
	neFrac := maptile.Fraction(bounds.Max, z)

	// Tile rows grow southward, so the north edge comes from the max corner.
	nwX, nwY := tileCoord(swFrac[0], z), tileCoord(neFrac[1], z)
	seX, seY := tileCoord(neFrac[0], z), tileCoord(swFrac[1], z)

	am.mu.Lock()

	var ids []ID
	for key, entry := range am.tiles {
		if key.Z != z {
			continue
		}
		if key.X < nwX || key.X > seX || key.Y < nwY || key.Y > seY {
			continue
		}

		if key.X > nwX && key.X < seX && key.Y > nwY && key.Y < seY {
			// Strictly interior, every annotation is inside.
			ids = append(ids, entry.ids...)
			continue
		}

		for _, id := range entry.ids {
			a, ok := am.annotations[id]
			if !ok {
				continue
			}
			if boundContains(bounds, a.bounds) {
				ids = append(ids, id)
			}
		}
	}

	am.mu.Unlock()

	am.metrics.RecordQuery(len(ids), time.Since(start))
	am.logger.LogQuery(ctx, len(ids))

	return ids
}

// BoundsForAnnotations returns the geographic bound enclosing the anchors of
// the given annotations. Unknown IDs are skipped. With no known IDs the
// returned bound is empty.
func (am *Manager) BoundsForAnnotations(ids []ID) orb.Bound {
	am.mu.Lock()
	defer am.mu.Unlock()

	bounds := emptyBound()
	for _, id := range ids {
		a, ok := am.annotations[id]
		if !ok {
			continue
		}
		bounds = bounds.Extend(a.anchor())
	}
	return bounds
}

// boundContains reports whether inner lies fully within outer.
func boundContains(outer, inner orb.Bound) bool {
	return inner.Min[0] >= outer.Min[0] && inner.Max[0] <= outer.Max[0] &&
		inner.Min[1] >= outer.Min[1] && inner.Max[1] <= outer.Max[1]
}

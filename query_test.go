package annotile

import (
	"context"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnnotationsInBounds(t *testing.T) {
	ctx := context.Background()
	query := orb.Bound{Min: orb.Point{-10, -10}, Max: orb.Point{10, 10}}

	t.Run("FindsContainedAnnotations", func(t *testing.T) {
		am := New()

		_, ids, err := am.AddPointAnnotations(ctx, []orb.Point{{0, 0}, {100, 40}}, nil, FixedZoom(2))
		require.NoError(t, err)

		got := am.AnnotationsInBounds(ctx, query, FixedZoom(2))
		assert.Equal(t, []ID{ids[0]}, got)
	})

	t.Run("ExcludesOutsideAnnotationInRimTile", func(t *testing.T) {
		am := New()

		// Both points land in tile 2/2/2, but only one lies inside the query.
		_, ids, err := am.AddPointAnnotations(ctx, []orb.Point{{0, 0}, {12, 0}}, nil, FixedZoom(2))
		require.NoError(t, err)

		got := am.AnnotationsInBounds(ctx, query, FixedZoom(2))
		assert.Equal(t, []ID{ids[0]}, got)
	})

	t.Run("TrivialAcceptForInteriorTiles", func(t *testing.T) {
		am := New()

		_, ids, err := am.AddPointAnnotations(ctx, []orb.Point{{0, 0}}, nil, FixedZoom(3))
		require.NoError(t, err)

		// Inflate the annotation bounds so no containment test could pass.
		am.mu.Lock()
		am.annotations[ids[0]].bounds = orb.Bound{Min: orb.Point{-180, -90}, Max: orb.Point{180, 90}}
		am.mu.Unlock()

		// Tile 4/4/3 is strictly inside the wide query, so the annotation is
		// accepted without inspecting its bounds.
		wide := orb.Bound{Min: orb.Point{-89, -85}, Max: orb.Point{89, 85}}
		assert.Equal(t, []ID{ids[0]}, am.AnnotationsInBounds(ctx, wide, FixedZoom(3)))

		// In the narrow query the same tile sits on the rim and the
		// containment test rejects the inflated bounds.
		assert.Empty(t, am.AnnotationsInBounds(ctx, query, FixedZoom(3)))
	})

	t.Run("MatchesShallowerGrids", func(t *testing.T) {
		am := New()

		// Placement at zoom 2 fills levels 2..0, so any query grid at most
		// that deep finds the annotation.
		_, ids, err := am.AddPointAnnotations(ctx, []orb.Point{{0, 0}}, nil, FixedZoom(2))
		require.NoError(t, err)

		assert.Equal(t, []ID{ids[0]}, am.AnnotationsInBounds(ctx, query, FixedZoom(1)))
		assert.Empty(t, am.AnnotationsInBounds(ctx, query, FixedZoom(3)))
	})

	t.Run("EmptyManager", func(t *testing.T) {
		am := New()

		assert.Empty(t, am.AnnotationsInBounds(ctx, query, FixedZoom(4)))
	})
}

func TestBoundsForAnnotations(t *testing.T) {
	ctx := context.Background()
	am := New()

	_, ids, err := am.AddPointAnnotations(ctx, []orb.Point{{0, 0}, {13.4, 52.5}, {151.2, -33.9}}, nil, FixedZoom(2))
	require.NoError(t, err)

	t.Run("EnclosesAnchors", func(t *testing.T) {
		bound := am.BoundsForAnnotations(ids)
		assert.Equal(t, orb.Bound{Min: orb.Point{0, -33.9}, Max: orb.Point{151.2, 52.5}}, bound)
	})

	t.Run("SubsetAndUnknownIDs", func(t *testing.T) {
		bound := am.BoundsForAnnotations([]ID{ids[1], 99})
		assert.Equal(t, orb.Bound{Min: orb.Point{13.4, 52.5}, Max: orb.Point{13.4, 52.5}}, bound)
	})

	t.Run("NoKnownIDs", func(t *testing.T) {
		assert.True(t, am.BoundsForAnnotations(nil).IsEmpty())
		assert.True(t, am.BoundsForAnnotations([]ID{99}).IsEmpty())
	})
}

func TestBoundContains(t *testing.T) {
	outer := orb.Bound{Min: orb.Point{-10, -10}, Max: orb.Point{10, 10}}

	assert.True(t, boundContains(outer, orb.Bound{Min: orb.Point{-5, -5}, Max: orb.Point{5, 5}}))
	assert.True(t, boundContains(outer, outer))
	assert.False(t, boundContains(outer, orb.Bound{Min: orb.Point{-5, -5}, Max: orb.Point{11, 5}}))
	assert.False(t, boundContains(outer, orb.Bound{Min: orb.Point{-20, -5}, Max: orb.Point{5, 5}}))
	assert.False(t, boundContains(outer, orb.Bound{Min: orb.Point{-5, -20}, Max: orb.Point{5, 5}}))
}

// Package annotile maintains map annotations in a tile pyramid.
//
// Annotile is the spatial-indexing core of a map client. It projects
// geographic points through a spherical Web-Mercator transform, places every
// annotation into the tile containing it at each zoom level from the map
// maximum down to zero, and materializes the placements as vector-tile
// features a renderer can draw. Annotations and tiles stay bidirectionally
// linked, so either side can be queried or torn down without scanning the
// whole dataset.
//
// # Quick Start
//
//	ctx := context.Background()
//	mgr := annotile.New(annotile.WithDefaultSymbol("marker"))
//
//	tiles, ids, err := mgr.AddPointAnnotations(ctx,
//	    []orb.Point{{13.4050, 52.5200}}, // lon, lat
//	    nil,                             // symbols; nil means default for all
//	    annotile.FixedZoom(15),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Render one of the touched tiles.
//	if tile, ok := mgr.GetTile(tiles[0]); ok {
//	    data, _ := tile.MarshalMVTGzipped()
//	    serve(data)
//	}
//
//	mgr.RemoveAnnotations(ctx, ids)
//
// # Queries
//
// Annotations are queryable by geographic bounds and by tile key:
//
//	ids := mgr.AnnotationsInBounds(ctx, bound, annotile.FixedZoom(15))
//	box := mgr.BoundsForAnnotations(ids)
//
// # Invalidation
//
// The Manager is passive: it returns the tile keys a mutation touched and
// leaves cache invalidation to the caller. TileInvalidator coalesces those
// keys and delivers them to a listener off the caller's goroutine:
//
//	inv := annotile.NewTileInvalidator(func(tiles []maptile.Tile) {
//	    cache.Drop(tiles)
//	})
//	defer inv.Close()
//
//	tiles, _, _ := mgr.AddPointAnnotations(ctx, points, nil, mapView)
//	inv.Invalidate(tiles)
package annotile

package livetile

import (
	"bytes"

	"github.com/klauspost/compress/gzip"
	"github.com/paulmach/orb/encoding/mvt"
	"github.com/paulmach/orb/geojson"
)

// MarshalMVT encodes the tile as Mapbox Vector Tile bytes. Feature geometry
// is written as stored; it is already expressed in tile-local coordinates.
func (t *Tile) MarshalMVT() ([]byte, error) {
	layers := t.Layers()

	out := make(mvt.Layers, 0, len(layers))
	for _, l := range layers {
		features := l.Features()

		fs := make([]*geojson.Feature, 0, len(features))
		for _, f := range features {
			gf := geojson.NewFeature(f.Geometry)
			gf.Properties = f.Properties
			fs = append(fs, gf)
		}

		out = append(out, &mvt.Layer{
			Name:     l.Name(),
			Version:  2,
			Extent:   l.Extent(),
			Features: fs,
		})
	}

	return mvt.Marshal(out)
}

// MarshalMVTGzipped encodes the tile as gzip-compressed Mapbox Vector Tile
// bytes, the form tile servers conventionally ship.
func (t *Tile) MarshalMVTGzipped() ([]byte, error) {
	data, err := t.MarshalMVT()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer

	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(data); err != nil {
		_ = zw.Close()
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

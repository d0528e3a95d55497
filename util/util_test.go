package util

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func TestGenerateRandomPoints(t *testing.T) {
	rng := NewRNG(4711)

	bound := orb.Bound{Min: orb.Point{-170, -80}, Max: orb.Point{170, 80}}
	points := rng.GenerateRandomPoints(8, bound)

	assert.Equal(t, 8, len(points))
	for _, p := range points {
		assert.LessOrEqual(t, p[0], 170.0)
		assert.GreaterOrEqual(t, p[0], -170.0)
		assert.LessOrEqual(t, p[1], 80.0)
		assert.GreaterOrEqual(t, p[1], -80.0)
	}
}

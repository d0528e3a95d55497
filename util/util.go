package util

import (
	"math/rand"

	"github.com/paulmach/orb"
)

// RNG struct encapsulates the random number generator and seed.
type RNG struct {
	rand *rand.Rand
	seed int64
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// GenerateRandomPoints generates random geographic points uniformly spread
// over the given bound.
func (r *RNG) GenerateRandomPoints(num int, bound orb.Bound) []orb.Point {
	points := make([]orb.Point, num)
	for i := range points {
		points[i] = orb.Point{
			bound.Min[0] + r.rand.Float64()*(bound.Max[0]-bound.Min[0]),
			bound.Min[1] + r.rand.Float64()*(bound.Max[1]-bound.Min[1]),
		}
	}

	return points
}

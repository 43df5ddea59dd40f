// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package utils provides reproducible point sets for triangulation tests,
// benchmarks and examples.

package utils

import (
	"math"
	"math/rand"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// plastic is the plastic number, the generator of the R2 sequence.
const plastic = 1.32471795724474602596

// GenerateRandomPoints generates points uniformly distributed in [0,1)².
// The seed parameter ensures reproducibility.
func GenerateRandomPoints(cnt int, seed int64) []r2.Point {
	//nolint:gosec
	random := rand.New(rand.NewSource(seed))
	points := make([]r2.Point, cnt)

	for i := range cnt {
		points[i] = r2.Point{X: random.Float64(), Y: random.Float64()}
	}

	return points
}

// GenerateLowDiscrepancyPoints returns the first cnt points of the R2
// sequence in [0,1)². The points are evenly spread and free of the
// cocircular ties a lattice would produce.
func GenerateLowDiscrepancyPoints(cnt int) []r2.Point {
	a1 := 1 / plastic
	a2 := 1 / (plastic * plastic)
	points := make([]r2.Point, cnt)

	for i := range cnt {
		n := float64(i + 1)
		points[i] = r2.Point{
			X: math.Mod(0.5+float64(a1*n), 1),
			Y: math.Mod(0.5+float64(a2*n), 1),
		}
	}

	return points
}

// GenerateRandomLatLngPoints generates random sites on the sphere and
// projects them with a plate carrée projection, so X is longitude and Y is
// latitude, both in degrees.
func GenerateRandomLatLngPoints(cnt int, seed int64) []r2.Point {
	//nolint:gosec
	random := rand.New(rand.NewSource(seed))
	proj := s2.NewPlateCarreeProjection(180)
	points := make([]r2.Point, cnt)

	for i := range cnt {
		ll := s2.LatLng{
			Lat: s1.Angle((random.Float64() - 0.5) * math.Pi),
			Lng: s1.Angle((random.Float64()*2 - 1) * math.Pi),
		}
		points[i] = proj.FromLatLng(ll)
	}

	return points
}

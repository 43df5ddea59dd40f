// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package delaunay

import (
	"math"

	"github.com/golang/geo/r2"
)

// Point is a 2D vertex. Two points are equal iff both coordinates compare
// equal under IEEE float equality; there is no tolerance.
type Point struct {
	X, Y float32
}

// PointFromR2 converts an r2.Point, rounding each coordinate to float32.
func PointFromR2(p r2.Point) Point {
	return Point{X: float32(p.X), Y: float32(p.Y)}
}

// R2 returns p as an r2.Point.
func (p Point) R2() r2.Point {
	return r2.Point{X: float64(p.X), Y: float64(p.Y)}
}

func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

func (p Point) Mul(m float32) Point {
	return Point{p.X * m, p.Y * m}
}

// Min returns the component-wise minimum of p and q.
func (p Point) Min(q Point) Point {
	return Point{min(p.X, q.X), min(p.Y, q.Y)}
}

// Max returns the component-wise maximum of p and q.
func (p Point) Max(q Point) Point {
	return Point{max(p.X, q.X), max(p.Y, q.Y)}
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float32 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	// NOTE: The conversions keep the products from being fused.
	return float32(math.Sqrt(float64(float32(dx*dx) + float32(dy*dy))))
}

func (p Point) finite() bool {
	x, y := float64(p.X), float64(p.Y)
	return !math.IsNaN(x) && !math.IsInf(x, 0) && !math.IsNaN(y) && !math.IsInf(y, 0)
}

// less orders points by X, then Y.
func (p Point) less(q Point) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	return p.Y < q.Y
}

// PointsFromR2 converts a slice of r2.Point.
func PointsFromR2(ps []r2.Point) []Point {
	points := make([]Point, len(ps))
	for i, p := range ps {
		points[i] = PointFromR2(p)
	}
	return points
}

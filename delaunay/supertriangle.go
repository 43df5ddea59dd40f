// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package delaunay

import "math"

// DefaultSuperTriangleScale is the multiplier used to grow the super triangle
// around the bounding box of the input.
const DefaultSuperTriangleScale = float32(math.Pi)

// SuperTriangle returns a triangle enclosing every point, built around the
// circle circumscribing the points' bounding box.
// NOTE: This is not a minimally enclosing triangle.
func SuperTriangle(points []Point, scale float32) Triangle {
	lo, hi := bounds(points)
	center := lo.Add(hi).Mul(0.5)
	radius := max(lo.Distance(center), hi.Distance(center))

	r := float32(radius * scale)
	a := Point{center.X, center.Y + r}
	b := Point{center.X - r + radius, center.Y - radius*2}
	c := Point{center.X + r - radius, center.Y - radius*2}
	return NewTriangle(a, b, c)
}

// bounds returns the component-wise minimum and maximum of the finite points,
// or two zero points when there are none. Points with a NaN or infinite
// coordinate can never be inserted, so they do not widen the box.
func bounds(points []Point) (lo, hi Point) {
	first := true
	for _, p := range points {
		if !p.finite() {
			continue
		}
		if first {
			lo, hi = p, p
			first = false
			continue
		}
		lo = lo.Min(p)
		hi = hi.Max(p)
	}
	return lo, hi
}

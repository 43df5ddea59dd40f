// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package delaunay

import (
	"math"

	"github.com/golang/geo/r2"
)

// Triangle is a set of three points. Equality depends only on the set, never
// on the order the vertices were given in.
type Triangle struct {
	A, B, C Point
}

// TriangleKey is the canonical form of a Triangle's vertex set, usable as a
// map key. Two triangles are Equal iff their keys compare equal.
type TriangleKey struct {
	v [3]Point
	n int
}

func NewTriangle(a, b, c Point) Triangle {
	return Triangle{A: a, B: b, C: c}
}

// Vertices returns the vertices in construction order.
func (t Triangle) Vertices() [3]Point {
	return [3]Point{t.A, t.B, t.C}
}

// Edges returns (A,B), (B,C) and (C,A).
func (t Triangle) Edges() [3]Edge {
	return [3]Edge{NewEdge(t.A, t.B), NewEdge(t.B, t.C), NewEdge(t.C, t.A)}
}

func (t Triangle) HasVertex(p Point) bool {
	return t.A == p || t.B == p || t.C == p
}

// SharesVertex reports whether the vertex sets of t and o intersect.
func (t Triangle) SharesVertex(o Triangle) bool {
	return o.HasVertex(t.A) || o.HasVertex(t.B) || o.HasVertex(t.C)
}

// Equal reports whether t and o have the same vertex set.
func (t Triangle) Equal(o Triangle) bool {
	return o.HasVertex(t.A) && o.HasVertex(t.B) && o.HasVertex(t.C) &&
		t.HasVertex(o.A) && t.HasVertex(o.B) && t.HasVertex(o.C)
}

func (t Triangle) Key() TriangleKey {
	v := t.Vertices()
	if v[1].less(v[0]) {
		v[0], v[1] = v[1], v[0]
	}
	if v[2].less(v[1]) {
		v[1], v[2] = v[2], v[1]
		if v[1].less(v[0]) {
			v[0], v[1] = v[1], v[0]
		}
	}

	var k TriangleKey
	for _, p := range v {
		if k.n > 0 && k.v[k.n-1] == p {
			continue
		}
		k.v[k.n] = p
		k.n++
	}
	return k
}

// circle is a circumcircle in float64.
type circle struct {
	center r2.Point
	radius float64
}

// contains reports whether p lies inside or on c.
// NOTE: A degenerate triangle has a non-finite circle and contains nothing.
func (c circle) contains(p Point) bool {
	if math.IsNaN(c.radius) || math.IsInf(c.radius, 0) {
		return false
	}
	return p.R2().Sub(c.center).Norm() <= c.radius
}

func (t Triangle) circumcircle() circle {
	a, b, c := t.A.R2(), t.B.R2(), t.C.R2()

	// NOTE: The conversions keep the products from being fused.
	d := 2 * (float64(a.X*(b.Y-c.Y)) + float64(b.X*(c.Y-a.Y)) + float64(c.X*(a.Y-b.Y)))

	aa := float64(a.X*a.X) + float64(a.Y*a.Y)
	bb := float64(b.X*b.X) + float64(b.Y*b.Y)
	cc := float64(c.X*c.X) + float64(c.Y*c.Y)

	x := (float64(aa*(b.Y-c.Y)) + float64(bb*(c.Y-a.Y)) + float64(cc*(a.Y-b.Y))) / d
	y := (float64(aa*(c.X-b.X)) + float64(bb*(a.X-c.X)) + float64(cc*(b.X-a.X))) / d

	center := r2.Point{X: x, Y: y}
	radius := max(a.Sub(center).Norm(), b.Sub(center).Norm(), c.Sub(center).Norm())
	return circle{center: center, radius: radius}
}

// Circumcenter returns the center of the circle through the three vertices.
// For collinear vertices the denominator is zero and the result is not
// finite.
func (t Triangle) Circumcenter() Point {
	return PointFromR2(t.circumcircle().center)
}

// Circumradius returns the largest distance from a vertex to the
// circumcenter.
func (t Triangle) Circumradius() float32 {
	return float32(t.circumcircle().radius)
}

// Contains reports whether p lies inside or on the circumcircle of t.
func (t Triangle) Contains(p Point) bool {
	return t.circumcircle().contains(p)
}

// Area returns the unsigned area of t.
func (t Triangle) Area() float32 {
	ab := t.B.Sub(t.A)
	ac := t.C.Sub(t.A)
	cross := float32(ab.X*ac.Y) - float32(ab.Y*ac.X)
	if cross < 0 {
		cross = -cross
	}
	return cross / 2
}

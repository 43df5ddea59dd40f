// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package delaunay

// Edge is an unordered pair of points.
type Edge struct {
	A, B Point
}

// EdgeKey is the canonical form of an Edge, usable as a map key.
// Two edges are Equal iff their keys compare equal.
type EdgeKey struct {
	lo, hi Point
}

func NewEdge(a, b Point) Edge {
	return Edge{A: a, B: b}
}

func (e Edge) Vertices() [2]Point {
	return [2]Point{e.A, e.B}
}

// Equal reports whether e and o join the same two points, in either order.
func (e Edge) Equal(o Edge) bool {
	return (e.A == o.A && e.B == o.B) || (e.A == o.B && e.B == o.A)
}

func (e Edge) Key() EdgeKey {
	if e.B.less(e.A) {
		return EdgeKey{lo: e.B, hi: e.A}
	}
	return EdgeKey{lo: e.A, hi: e.B}
}

// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package delaunay

import (
	"errors"
	"fmt"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"github.com/markus-wa/quickhull-go/v2"
)

// Reference computes a Delaunay triangulation of points independently of
// Triangulate: the points are lifted onto the paraboloid z = x² + y² and the
// downward facing faces of their 3D convex hull are projected back. Each face
// holds positions in points, wound counter-clockwise.
//
// eps is passed to the hull computation and also bounds how close to vertical
// a hull face may be before it is discarded.
func Reference(points []Point, eps float64) ([][3]int, error) {
	if eps < 0 {
		return nil, fmt.Errorf("delaunay: eps must be non-negative, got %v", eps)
	}
	if len(points) < 3 {
		return nil,
			errors.New("delaunay: insufficient points for reference triangulation (minimum 3 required)")
	}

	for i, p := range points {
		if !p.finite() {
			return nil, fmt.Errorf("delaunay: point %d = %v is not finite", i, p)
		}
	}

	lo, hi := bounds(points)
	box := r2.RectFromPoints(lo.R2(), hi.R2())
	size := box.Size()
	scale := max(size.X, size.Y) / 2
	if scale == 0 {
		return nil, errors.New("delaunay: points are coincident")
	}
	if collinear(points) {
		return nil, errors.New("delaunay: points are collinear")
	}
	center := box.Center()

	lifted := make([]r3.Vector, len(points))
	for i, p := range points {
		q := p.R2().Sub(center).Mul(1 / scale)
		lifted[i] = r3.Vector{X: q.X, Y: q.Y, Z: q.Dot(q)}
	}

	qh := new(quickhull.QuickHull)
	ch := qh.ConvexHull(lifted, true, true, eps)

	var faces [][3]int
	for i := 0; i+2 < len(ch.Indices); i += 3 {
		a, b, c := ch.Indices[i], ch.Indices[i+1], ch.Indices[i+2]
		norm := lifted[b].Sub(lifted[a]).Cross(lifted[c].Sub(lifted[a]))
		if norm.Z < -eps*norm.Norm() {
			// Seen from above, a lower face is wound clockwise.
			faces = append(faces, [3]int{a, c, b})
		}
	}
	if len(faces) == 0 {
		return nil, errors.New("delaunay: convex hull has no lower faces")
	}
	return faces, nil
}

func collinear(points []Point) bool {
	o := points[0].R2()
	var dir r2.Point
	for _, p := range points[1:] {
		d := p.R2().Sub(o)
		if dir == (r2.Point{}) {
			dir = d
			continue
		}
		if dir.Cross(d) != 0 {
			return false
		}
	}
	return true
}

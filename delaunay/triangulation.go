// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package delaunay computes 2D Delaunay triangulations of float32 points with
// the Bowyer-Watson algorithm.
package delaunay

import (
	"fmt"
	"math"
)

type TriangulationOptions struct {
	SuperTriangleScale float32
}

type TriangulationOption func(*TriangulationOptions) error

// ValidScale reports an error if scale cannot grow a super triangle around
// the input: it must be finite and greater than 1.
func ValidScale(scale float32) error {
	s := float64(scale)
	if math.IsNaN(s) || math.IsInf(s, 0) || s <= 1 {
		return fmt.Errorf("delaunay: super triangle scale must be finite and greater than 1, got %v", scale)
	}
	return nil
}

// WithSuperTriangleScale sets the multiplier used to grow the super triangle.
func WithSuperTriangleScale(scale float32) TriangulationOption {
	return func(o *TriangulationOptions) error {
		if err := ValidScale(scale); err != nil {
			return err
		}
		o.SuperTriangleScale = scale
		return nil
	}
}

// entry pairs a triangle of the working set with its cached circumcircle.
type entry struct {
	t Triangle
	c circle
}

func newEntry(t Triangle) entry {
	return entry{t: t, c: t.circumcircle()}
}

func (e entry) contains(p Point) bool {
	return e.c.contains(p)
}

// Triangulate computes a Delaunay triangulation of points with the
// Bowyer-Watson algorithm. Points are inserted in order. The returned
// triangles are in discovery order and only ever use input points as
// vertices; fewer than three points give no triangles.
//
// The only error source is an invalid option.
func Triangulate(points []Point, setters ...TriangulationOption) ([]Triangle, error) {
	opts := TriangulationOptions{
		SuperTriangleScale: DefaultSuperTriangleScale,
	}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return nil, err
		}
	}

	super := SuperTriangle(points, opts.SuperTriangleScale)
	entries := []entry{newEntry(super)}

	var bad []entry
	for _, p := range points {
		bad = bad[:0]
		for _, e := range entries {
			if e.contains(p) {
				bad = append(bad, e)
			}
		}
		if len(bad) == 0 {
			continue
		}

		edges := boundaryEdges(bad)
		entries = removeTriangles(entries, bad)
		for _, edge := range edges {
			entries = append(entries, newEntry(NewTriangle(p, edge.A, edge.B)))
		}
	}

	triangles := make([]Triangle, 0, len(entries))
	for _, e := range entries {
		if e.t.SharesVertex(super) {
			continue
		}
		triangles = append(triangles, e.t)
	}
	return triangles, nil
}

// boundaryEdges returns the distinct edges of bad triangles that no other bad
// triangle shares, in the order they are found.
func boundaryEdges(bad []entry) []Edge {
	var edges []Edge
	seen := make(map[EdgeKey]struct{})
	for i, b := range bad {
		for _, edge := range b.t.Edges() {
			if sharedEdge(bad, i, edge) {
				continue
			}
			k := edge.Key()
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			edges = append(edges, edge)
		}
	}
	return edges
}

func sharedEdge(bad []entry, skip int, edge Edge) bool {
	for j, o := range bad {
		if j == skip {
			continue
		}
		for _, oe := range o.t.Edges() {
			if edge.Equal(oe) {
				return true
			}
		}
	}
	return false
}

// removeTriangles drops every entry whose triangle equals one of bad,
// keeping the order of the rest.
func removeTriangles(entries, bad []entry) []entry {
	remove := make(map[TriangleKey]struct{}, len(bad))
	for _, b := range bad {
		remove[b.t.Key()] = struct{}{}
	}

	kept := entries[:0]
	for _, e := range entries {
		if _, ok := remove[e.t.Key()]; ok {
			continue
		}
		kept = append(kept, e)
	}
	return kept
}

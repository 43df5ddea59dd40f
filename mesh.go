// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package triangulate

import (
	"fmt"
	"math"
	"slices"

	"github.com/golang/geo/r2"
	"github.com/nicholascross/triangulate/delaunay"
)

const (
	defaultEps = 1e-12
)

type Point = delaunay.Point

// Mesh is a Delaunay triangulation of a point sequence, stored as the input
// vertices and a flat index buffer. A Mesh is not modified after NewMesh
// returns.
type Mesh struct {
	// Vertices echoes the input points in their original order.
	Vertices []Point
	// Indices names one face per consecutive run of three positions in
	// Vertices. Winding order within a run is unspecified.
	Indices []int
	// Faces holds the faces whose three vertices were all found in Vertices.
	Faces [][3]int

	// NOTE: Sorted by face index per vertex
	IncidentFaceIndices []int
	IncidentFaceOffsets []int

	triangles []delaunay.Triangle
	eps       float64
}

type MeshOptions struct {
	Scale float32
	Eps   float64
}

type MeshOption func(*MeshOptions) error

// WithScale sets the multiplier used to grow the super triangle around the
// input. It must be finite and greater than 1.
func WithScale(scale float32) MeshOption {
	return func(o *MeshOptions) error {
		if err := delaunay.ValidScale(scale); err != nil {
			return fmt.Errorf("triangulate: %w", err)
		}
		o.Scale = scale
		return nil
	}
}

// WithEps sets the tolerance used by Coverage and Validate.
func WithEps(eps float64) MeshOption {
	return func(o *MeshOptions) error {
		if eps <= 0 {
			return fmt.Errorf("triangulate: eps must be positive, got %v", eps)
		}
		o.Eps = eps
		return nil
	}
}

// NewMesh triangulates vertices. Fewer than three vertices, or vertices that
// are all collinear, give a mesh without faces. The only error source is an
// invalid option.
func NewMesh(vertices []Point, setters ...MeshOption) (*Mesh, error) {
	opts := MeshOptions{
		Scale: delaunay.DefaultSuperTriangleScale,
		Eps:   defaultEps,
	}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return nil, err
		}
	}

	triangles, err := delaunay.Triangulate(vertices, delaunay.WithSuperTriangleScale(opts.Scale))
	if err != nil {
		return nil, err
	}

	m := &Mesh{
		Vertices:  slices.Clone(vertices),
		triangles: triangles,
		eps:       opts.Eps,
	}
	m.Indices, m.Faces = indexTriangles(m.Vertices, triangles)
	m.IncidentFaceIndices, m.IncidentFaceOffsets = incidence(len(m.Vertices), m.Faces)
	return m, nil
}

// indexTriangles maps every triangle vertex to the first position in vertices
// holding an equal point. A vertex without a match is left out of indices, so
// in that case len(indices) is no longer a multiple of three and the triangle
// is missing from faces.
func indexTriangles(vertices []Point, triangles []delaunay.Triangle) ([]int, [][3]int) {
	first := make(map[Point]int, len(vertices))
	for i, v := range vertices {
		if _, ok := first[v]; !ok {
			first[v] = i
		}
	}

	indices := make([]int, 0, 3*len(triangles))
	faces := make([][3]int, 0, len(triangles))
	for _, t := range triangles {
		var face [3]int
		n := 0
		for _, v := range t.Vertices() {
			i, ok := first[v]
			if !ok {
				continue
			}
			indices = append(indices, i)
			face[n] = i
			n++
		}
		if n == 3 {
			faces = append(faces, face)
		}
	}
	return indices, faces
}

func incidence(numVertices int, faces [][3]int) ([]int, []int) {
	offsets := make([]int, numVertices+1)
	for _, f := range faces {
		for _, v := range f {
			offsets[v+1]++
		}
	}
	for i := range numVertices {
		offsets[i+1] += offsets[i]
	}

	indices := make([]int, offsets[numVertices])
	nxt := make([]int, numVertices)
	copy(nxt, offsets[:numVertices])
	for i, f := range faces {
		for _, v := range f {
			indices[nxt[v]] = i
			nxt[v]++
		}
	}
	return indices, offsets
}

// Triangles returns the surviving triangles in the order the triangulation
// found them.
func (m *Mesh) Triangles() []delaunay.Triangle {
	return slices.Clone(m.triangles)
}

// IncidentFaces returns the indices of the faces using vertex vIdx.
func (m *Mesh) IncidentFaces(vIdx int) []int {
	if vIdx < 0 || vIdx+1 >= len(m.IncidentFaceOffsets) {
		panic("IncidentFaces: vIdx out of range")
	}
	start := m.IncidentFaceOffsets[vIdx]
	end := m.IncidentFaceOffsets[vIdx+1]
	return m.IncidentFaceIndices[start:end]
}

// Neighbors returns the sorted indices of the vertices sharing an edge with
// vertex vIdx.
func (m *Mesh) Neighbors(vIdx int) []int {
	var neighbors []int
	for _, fIdx := range m.IncidentFaces(vIdx) {
		for _, v := range m.Faces[fIdx] {
			if v != vIdx {
				neighbors = append(neighbors, v)
			}
		}
	}
	slices.Sort(neighbors)
	return slices.Compact(neighbors)
}

// Bounds returns the bounding rectangle of the vertices.
func (m *Mesh) Bounds() r2.Rect {
	r := r2.EmptyRect()
	for _, v := range m.Vertices {
		r = r.AddPoint(v.R2())
	}
	return r
}

// Coverage returns the area covered by the faces as a fraction of the area of
// the convex hull of the vertices. Faces near the hull can be lost together
// with the super triangle, so the result may be slightly below 1.
func (m *Mesh) Coverage() (float64, error) {
	hull, err := delaunay.Reference(m.Vertices, m.eps)
	if err != nil {
		return 0, fmt.Errorf("triangulate: coverage: %w", err)
	}
	return facesArea(m.Vertices, m.Faces) / facesArea(m.Vertices, hull), nil
}

// Validate performs sanity checks on the mesh: the index buffer is made of
// whole in-range triples, no face repeats a vertex, no edge borders more than
// two faces and the faces do not cover more than the convex hull.
// Returns nil if no issues were found.
func (m *Mesh) Validate() error {
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("triangulate: index buffer length %d is not a multiple of 3", len(m.Indices))
	}
	for i, idx := range m.Indices {
		if idx < 0 || idx >= len(m.Vertices) {
			return fmt.Errorf("triangulate: index %d = %d out of range [0 %d)", i, idx, len(m.Vertices))
		}
	}

	edges := make(map[[2]int]int)
	for i, f := range m.Faces {
		if f[0] == f[1] || f[1] == f[2] || f[2] == f[0] {
			return fmt.Errorf("triangulate: face %d repeats a vertex: %v", i, f)
		}
		for j := range 3 {
			a, b := f[j], f[(j+1)%3]
			if a > b {
				a, b = b, a
			}
			e := [2]int{a, b}
			edges[e]++
			if edges[e] > 2 {
				return fmt.Errorf("triangulate: edge %v borders more than two faces", e)
			}
		}
	}

	if len(m.Faces) == 0 {
		return nil
	}
	coverage, err := m.Coverage()
	if err != nil {
		return err
	}
	if coverage > 1+m.eps {
		return fmt.Errorf("triangulate: faces overlap, coverage = %v", coverage)
	}
	return nil
}

func facesArea(vertices []Point, faces [][3]int) float64 {
	var area float64
	for _, f := range faces {
		a, b, c := vertices[f[0]].R2(), vertices[f[1]].R2(), vertices[f[2]].R2()
		area += math.Abs(b.Sub(a).Cross(c.Sub(a))) / 2
	}
	return area
}

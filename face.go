// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package triangulate builds Delaunay triangle meshes from 2D points.

package triangulate

import (
	"fmt"

	"github.com/nicholascross/triangulate/delaunay"
)

// Face represents a triangle of a Mesh. It is a view structure for accessing
// a face in a Mesh.
type Face struct {
	idx int
	m   *Mesh
}

// NumFaces returns the number of faces in the mesh.
func (m *Mesh) NumFaces() int {
	return len(m.Faces)
}

// Face returns the face at the specified index.
// It returns an error if the index is out of range.
func (m *Mesh) Face(i int) (Face, error) {
	if i < 0 || i >= len(m.Faces) {
		return Face{}, fmt.Errorf("Face: index %d out of range [0 %d)", i, len(m.Faces))
	}
	return Face{idx: i, m: m}, nil
}

// Index returns the index of the face in the Mesh's Faces.
func (f Face) Index() int {
	return f.idx
}

// VertexIndices returns the positions of the face's vertices in the Mesh's
// Vertices.
func (f Face) VertexIndices() [3]int {
	return f.m.Faces[f.idx]
}

// Vertex returns the vertex at the specified index.
// It returns an error if the index is out of range.
func (f Face) Vertex(i int) (Point, error) {
	if i < 0 || i >= 3 {
		return Point{}, fmt.Errorf("Vertex: index %d out of range [0 3)", i)
	}
	return f.m.Vertices[f.m.Faces[f.idx][i]], nil
}

// Triangle returns the face as a triangle.
func (f Face) Triangle() delaunay.Triangle {
	v := f.m.Vertices
	idx := f.m.Faces[f.idx]
	return delaunay.NewTriangle(v[idx[0]], v[idx[1]], v[idx[2]])
}

func (f Face) Circumcenter() Point {
	return f.Triangle().Circumcenter()
}

func (f Face) Circumradius() float32 {
	return f.Triangle().Circumradius()
}

func (f Face) Area() float32 {
	return f.Triangle().Area()
}

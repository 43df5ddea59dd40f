// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package delaunay

import (
	"fmt"
	"math"
	"testing"

	"github.com/nicholascross/triangulate/utils"
)

const testEps = 1e-12

func TestReference_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		points []Point
		eps    float64
	}{
		{"no points", nil, testEps},
		{"two points", []Point{{0, 0}, {1, 1}}, testEps},
		{"coincident", []Point{{1, 1}, {1, 1}, {1, 1}}, testEps},
		{"collinear", []Point{{0, 0}, {1, 1}, {2, 2}, {-3, -3}}, testEps},
		{"nan point", []Point{{0, 0}, {1, 0}, {0, 1}, {float32(math.NaN()), 1}}, testEps},
		{"infinite point", []Point{{0, 0}, {1, 0}, {float32(math.Inf(1)), 1}}, testEps},
		{"eps negative", []Point{{0, 0}, {1, 0}, {0, 1}}, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Reference(tt.points, tt.eps); err == nil {
				t.Errorf("Reference(%v, %v) error = nil, want non-nil", tt.points, tt.eps)
			}
		})
	}
}

func TestReference_Triangle(t *testing.T) {
	points := []Point{{0, 0}, {1, 0}, {0.5, 0.866}}
	faces := mustReference(t, points)
	if len(faces) != 1 {
		t.Fatalf("Reference(%v) len = %d, want 1", points, len(faces))
	}
	assertCCW(t, points, faces)
}

func TestReference_FaceCount(t *testing.T) {
	// A triangulation of n points with h on the hull has 2n - h - 2 faces.
	tests := []struct {
		name string
		n, h int
	}{
		{"n16", 16, 7},
		{"n50", 50, 10},
		{"n200", 200, 14},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points := PointsFromR2(utils.GenerateLowDiscrepancyPoints(tt.n))
			faces := mustReference(t, points)
			if want := 2*tt.n - tt.h - 2; len(faces) != want {
				t.Errorf("Reference(...) len = %d, want %d", len(faces), want)
			}
			assertCCW(t, points, faces)
		})
	}
}

func TestReference_AgreesWithTriangulate(t *testing.T) {
	sizes := []int{16, 50, 200}
	for _, n := range sizes {
		t.Run(fmt.Sprintf("N%d", n), func(t *testing.T) {
			points := PointsFromR2(utils.GenerateLowDiscrepancyPoints(n))
			faces := mustReference(t, points)

			reference := make(map[TriangleKey]struct{}, len(faces))
			for _, f := range faces {
				tri := NewTriangle(points[f[0]], points[f[1]], points[f[2]])
				reference[tri.Key()] = struct{}{}
			}

			triangles := mustTriangulate(t, points)
			if len(triangles) == 0 || len(triangles) > len(faces) {
				t.Fatalf("Triangulate(...) len = %d, want in [1, %d]", len(triangles), len(faces))
			}
			for i, tri := range triangles {
				if _, ok := reference[tri.Key()]; !ok {
					t.Errorf("triangles[%d] = %v is not a Delaunay face", i, tri)
				}
			}
		})
	}
}

// Benchmarks

func BenchmarkReference(b *testing.B) {
	sizes := []int{1e+2, 1e+3, 1e+4}
	for _, pointsCnt := range sizes {
		b.Run(fmt.Sprintf("N%d", pointsCnt), func(b *testing.B) {
			points := PointsFromR2(utils.GenerateRandomPoints(pointsCnt, 0))

			b.ReportAllocs()
			b.ResetTimer()
			for b.Loop() {
				if _, err := Reference(points, testEps); err != nil {
					b.Fatalf("Reference(...) error = %v, want nil", err)
				}
			}
		})
	}
}

// Helpers

func mustReference(t *testing.T, points []Point) [][3]int {
	t.Helper()
	faces, err := Reference(points, testEps)
	if err != nil {
		t.Fatalf("Reference(...) error = %v, want nil", err)
	}
	return faces
}

func assertCCW(t *testing.T, points []Point, faces [][3]int) {
	t.Helper()
	for i, f := range faces {
		a, b, c := points[f[0]].R2(), points[f[1]].R2(), points[f[2]].R2()
		if b.Sub(a).Cross(c.Sub(a)) <= 0 {
			t.Errorf("faces[%d] = %v is not counter-clockwise", i, f)
		}
	}
}

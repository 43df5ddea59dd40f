// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package utils

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGenerateRandomPoints_Length(t *testing.T) {
	tests := []struct {
		name string
		cnt  int
		seed int64
	}{
		{"zero points", 0, 42},
		{"one point", 1, 42},
		{"ten points", 10, 0},
		{"hundred points", 100, 99},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points := GenerateRandomPoints(tt.cnt, tt.seed)
			if len(points) != tt.cnt {
				t.Errorf("GenerateRandomPoints(%v, %v) len = %v, want %v", tt.cnt, tt.seed,
					len(points), tt.cnt)
			}
		})
	}
}

func TestGenerateRandomPoints_InUnitSquare(t *testing.T) {
	const (
		cnt  = 100
		seed = 0
	)
	points := GenerateRandomPoints(cnt, seed)
	for i, p := range points {
		if p.X < 0 || p.X >= 1 || p.Y < 0 || p.Y >= 1 {
			t.Errorf("GenerateRandomPoints(%v, %v)[%d] = %v, want in [0,1)²", cnt, seed, i, p)
		}
	}
}

func TestGenerateRandomPoints_Determinism(t *testing.T) {
	const (
		cnt  = 10
		seed = 0
	)
	a := GenerateRandomPoints(cnt, seed)
	b := GenerateRandomPoints(cnt, seed)
	if diff := cmp.Diff(b, a); diff != "" {
		t.Errorf("GenerateRandomPoints(%v, %v) mismatch (-want +got):\n%v", cnt, seed, diff)
	}
}

func TestGenerateLowDiscrepancyPoints(t *testing.T) {
	const cnt = 200
	points := GenerateLowDiscrepancyPoints(cnt)
	if len(points) != cnt {
		t.Fatalf("GenerateLowDiscrepancyPoints(%v) len = %v, want %v", cnt, len(points), cnt)
	}

	seen := make(map[[2]float64]int, cnt)
	for i, p := range points {
		if p.X < 0 || p.X >= 1 || p.Y < 0 || p.Y >= 1 {
			t.Errorf("GenerateLowDiscrepancyPoints(%v)[%d] = %v, want in [0,1)²", cnt, i, p)
		}
		k := [2]float64{p.X, p.Y}
		if j, ok := seen[k]; ok {
			t.Errorf("GenerateLowDiscrepancyPoints(%v)[%d] duplicates [%d]", cnt, i, j)
		}
		seen[k] = i
	}

	if diff := cmp.Diff(points[:10], GenerateLowDiscrepancyPoints(10)); diff != "" {
		t.Errorf("GenerateLowDiscrepancyPoints(10) is not a prefix (-want +got):\n%v", diff)
	}
}

func TestGenerateRandomLatLngPoints_InDegrees(t *testing.T) {
	const (
		cnt  = 100
		seed = 7
	)
	points := GenerateRandomLatLngPoints(cnt, seed)
	if len(points) != cnt {
		t.Fatalf("GenerateRandomLatLngPoints(%v, %v) len = %v, want %v", cnt, seed, len(points), cnt)
	}
	for i, p := range points {
		if p.X < -180 || p.X > 180 || p.Y < -90 || p.Y > 90 {
			t.Errorf("GenerateRandomLatLngPoints(%v, %v)[%d] = %v, want lng in [-180,180], lat in [-90,90]",
				cnt, seed, i, p)
		}
	}
}

// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/dpedroso/gowarp/internal/geom"
)

// S4: a one-triangle mesh with vertices (0,0,0),(10,0,0),(0,10,0),
// max_edge_len=1. Refined mesh has >= 100 triangles (10^2) and every edge
// <= 1.
func TestRefineSeedS4(tst *testing.T) {
	chk.PrintTitle("RefineSeedS4")

	m := &Mesh{
		Vertices:  []geom.Vec3{{X: 0, Y: 0, Z: 0}, {X: 10, Y: 0, Z: 0}, {X: 0, Y: 10, Z: 0}},
		Triangles: []Triangle{{0, 1, 2}},
	}

	refined := Refine(m, 1.0)

	if len(refined.Triangles) < 100 {
		tst.Fatalf("expected >= 100 triangles, got %d", len(refined.Triangles))
	}

	maxLen, err := MaxEdgeLength(refined)
	if err != nil {
		tst.Fatalf("MaxEdgeLength: %v", err)
	}
	if maxLen > 1.0+1e-9 {
		tst.Fatalf("expected max edge length <= 1.0, got %g", maxLen)
	}
}

// Property 3: every edge of every triangle is within the bound.
func TestRefineBoundsEveryEdge(tst *testing.T) {
	chk.PrintTitle("RefineBoundsEveryEdge")

	m := twoTriangleSquare()
	refined := Refine(m, 0.3)

	for i, t := range refined.Triangles {
		for _, l := range refined.EdgeLengths(t) {
			if l > 0.3+1e-9 {
				tst.Fatalf("triangle %d has edge length %g > 0.3", i, l)
			}
		}
	}
}

// Property 4: the refined mesh's half-edge multiset pairs every directed
// edge with its reverse exactly once.
func TestRefinePreservesWatertightness(tst *testing.T) {
	chk.PrintTitle("RefinePreservesWatertightness")

	m := closedTetrahedron()
	if !IsWatertight(m) {
		tst.Fatal("input mesh should be watertight")
	}

	refined := Refine(m, 0.25)
	if !IsWatertight(refined) {
		tst.Fatal("refined mesh should remain watertight")
	}
}

func TestRefineNoOpWhenAlreadyBelowThreshold(tst *testing.T) {
	chk.PrintTitle("RefineNoOpWhenAlreadyBelowThreshold")

	m := &Mesh{
		Vertices:  []geom.Vec3{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}},
		Triangles: []Triangle{{0, 1, 2}},
	}
	refined := Refine(m, 10.0)
	if len(refined.Triangles) != 1 {
		tst.Fatalf("expected no subdivision, got %d triangles", len(refined.Triangles))
	}
}

// twoTriangleSquare returns an open 1x1 square patch made of two triangles
// sharing an edge, the minimal case that exercises midpoint sharing without
// needing a closed manifold.
func twoTriangleSquare() *Mesh {
	return &Mesh{
		Vertices: []geom.Vec3{
			{X: 0, Y: 0, Z: 0},
			{X: 1, Y: 0, Z: 0},
			{X: 1, Y: 1, Z: 0},
			{X: 0, Y: 1, Z: 0},
		},
		Triangles: []Triangle{
			{0, 1, 2},
			{0, 2, 3},
		},
	}
}

// closedTetrahedron returns a 4-triangle closed manifold with consistent
// outward winding, used to exercise watertightness.
func closedTetrahedron() *Mesh {
	return &Mesh{
		Vertices: []geom.Vec3{
			{X: 0, Y: 0, Z: 0},
			{X: 1, Y: 0, Z: 0},
			{X: 0, Y: 1, Z: 0},
			{X: 0, Y: 0, Z: 1},
		},
		Triangles: []Triangle{
			{1, 2, 3},
			{0, 3, 2},
			{0, 1, 3},
			{0, 2, 1},
		},
	}
}

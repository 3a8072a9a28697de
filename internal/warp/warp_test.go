// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package warp

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/dpedroso/gowarp/internal/geom"
	"github.com/dpedroso/gowarp/internal/mesh"
	"github.com/dpedroso/gowarp/internal/transform"
)

func TestRunCentersAndAppliesTransform(tst *testing.T) {
	chk.PrintTitle("RunCentersAndAppliesTransform")

	m := &mesh.Mesh{
		Vertices: []geom.Vec3{
			{X: 0, Y: 0, Z: 0},
			{X: 10, Y: 0, Z: 0},
			{X: 0, Y: 10, Z: 0},
		},
		Triangles: []mesh.Triangle{{0, 1, 2}},
	}

	tr, err := transform.NewConical(math.Pi/6, 0)
	if err != nil {
		tst.Fatalf("NewConical: %v", err)
	}

	result, err := Run(m, Options{Transform: tr, MaxEdgeLen: 20})
	if err != nil {
		tst.Fatalf("Run: %v", err)
	}

	if result.Data.Transform.Kind != transform.Conical {
		tst.Fatalf("expected Conical in persisted data, got %v", result.Data.Transform.Kind)
	}
	if len(result.Mesh.Triangles) != len(m.Triangles) {
		tst.Fatalf("expected triangle count preserved with no refinement needed, got %d", len(result.Mesh.Triangles))
	}

	// The mesh is centered before transforming, so at least one vertex
	// lies at (non-centered-x, non-centered-y, z != 0) once warped.
	var anyDisplaced bool
	for _, v := range result.Mesh.Vertices {
		if math.Abs(v.Z) > 1e-9 {
			anyDisplaced = true
		}
	}
	if !anyDisplaced {
		tst.Fatal("expected at least one vertex to be displaced in z by the conical transform")
	}
}

func TestRunRefinesBeforeTransforming(tst *testing.T) {
	chk.PrintTitle("RunRefinesBeforeTransforming")

	m := &mesh.Mesh{
		Vertices: []geom.Vec3{
			{X: 0, Y: 0, Z: 0},
			{X: 10, Y: 0, Z: 0},
			{X: 0, Y: 10, Z: 0},
		},
		Triangles: []mesh.Triangle{{0, 1, 2}},
	}
	tr, err := transform.NewConical(0, 0)
	if err != nil {
		tst.Fatalf("NewConical: %v", err)
	}

	result, err := Run(m, Options{Transform: tr, MaxEdgeLen: 1})
	if err != nil {
		tst.Fatalf("Run: %v", err)
	}
	if len(result.Mesh.Triangles) < 100 {
		tst.Fatalf("expected refinement to produce >= 100 triangles, got %d", len(result.Mesh.Triangles))
	}
}

func TestRunRejectsNonPositiveMaxEdgeLen(tst *testing.T) {
	chk.PrintTitle("RunRejectsNonPositiveMaxEdgeLen")

	m := &mesh.Mesh{
		Vertices:  []geom.Vec3{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}},
		Triangles: []mesh.Triangle{{0, 1, 2}},
	}
	tr, _ := transform.NewConical(0, 0)
	if _, err := Run(m, Options{Transform: tr, MaxEdgeLen: 0}); err == nil {
		tst.Fatal("expected an error for max_edge_len <= 0")
	}
}

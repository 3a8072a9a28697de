// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package warp orchestrates the mesh-warping pipeline of SPEC_FULL.md
// §4.5 on an already-loaded mesh: center, refine, apply the forward
// transform, and recompute the warped bounding box.
package warp

import (
	"github.com/cpmech/gosl/chk"

	"github.com/dpedroso/gowarp/internal/geom"
	"github.com/dpedroso/gowarp/internal/mesh"
	"github.com/dpedroso/gowarp/internal/transform"
)

// Options configures one warp run. Loading and persisting the mesh are the
// caller's responsibility (§4.5 steps 1 and 6 are "external collaborator");
// Run performs steps 2-5.
type Options struct {
	Transform  transform.Transform
	MaxEdgeLen float64 // mm, must be > 0
}

// Result is the outcome of a warp run: the warped mesh plus the
// {transform, warped_aabb} pair to persist alongside it.
type Result struct {
	Mesh *mesh.Mesh
	Data transform.Data
}

// Run executes §4.5 steps 2-5 against an already-loaded, unwarped mesh.
func Run(m *mesh.Mesh, opt Options) (Result, error) {
	if opt.MaxEdgeLen <= 0 {
		return Result{}, chk.Err("warp: max_edge_len must be positive, got %g\n", opt.MaxEdgeLen)
	}
	if err := m.Validate(); err != nil {
		return Result{}, chk.Err("warp: %v\n", err)
	}

	aabb := m.AABB()
	center := geom.Vec3{
		X: aabb.Origin.X + aabb.Size.X/2,
		Y: aabb.Origin.Y + aabb.Size.Y/2,
		Z: aabb.Origin.Z,
	}

	refined := mesh.Refine(m, opt.MaxEdgeLen)

	warpedVertices := make([]geom.Vec3, len(refined.Vertices))
	for i, v := range refined.Vertices {
		warped, err := opt.Transform.Apply(v.Sub(center))
		if err != nil {
			return Result{}, chk.Err("warp: vertex %d: %v\n", i, err)
		}
		warpedVertices[i] = warped
	}

	warpedMesh := &mesh.Mesh{Vertices: warpedVertices, Triangles: refined.Triangles}
	warpedAABB := warpedMesh.AABB()

	return Result{
		Mesh: warpedMesh,
		Data: transform.Data{
			Transform:  opt.Transform,
			WarpedAABB: warpedAABB,
		},
	}, nil
}

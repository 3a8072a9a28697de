// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh implements the triangulated-surface data model and the
// midpoint-subdivision refinement pipeline of SPEC_FULL.md §4.2: densify a
// triangle soup until no edge exceeds a configured length, sharing
// midpoints between adjacent triangles so the result stays watertight.
package mesh

import (
	"github.com/cpmech/gosl/chk"

	"github.com/dpedroso/gowarp/internal/geom"
)

// Triangle is a 3-tuple of indices into a Mesh's Vertices.
type Triangle [3]int

// Mesh is an indexed triangle soup: an ordered vertex table and an ordered
// triangle-index table. Every index must be < len(Vertices).
type Mesh struct {
	Vertices  []geom.Vec3
	Triangles []Triangle
}

// Validate checks the index invariant from §3's data model.
func (m *Mesh) Validate() error {
	n := len(m.Vertices)
	for i, t := range m.Triangles {
		for _, idx := range t {
			if idx < 0 || idx >= n {
				return chk.Err("mesh: triangle %d references out-of-range vertex index %d (have %d vertices)\n", i, idx, n)
			}
		}
	}
	return nil
}

// AABB computes the axis-aligned bounding box of the mesh's vertices.
func (m *Mesh) AABB() geom.AABB {
	return geom.BoundsOf(m.Vertices)
}

// TriangleVertices returns the three corner points of triangle t.
func (m *Mesh) TriangleVertices(t Triangle) (geom.Vec3, geom.Vec3, geom.Vec3) {
	return m.Vertices[t[0]], m.Vertices[t[1]], m.Vertices[t[2]]
}

// Normal computes the unnormalized triangle normal (v1-v0)×(v2-v1), the
// convention §4.5 specifies for this format's consumers.
func (m *Mesh) Normal(t Triangle) geom.Vec3 {
	v0, v1, v2 := m.TriangleVertices(t)
	return v1.Sub(v0).Cross(v2.Sub(v1))
}

// EdgeLengths returns the three edge lengths of triangle t in the order
// (v0,v1), (v1,v2), (v2,v0).
func (m *Mesh) EdgeLengths(t Triangle) [3]float64 {
	v0, v1, v2 := m.TriangleVertices(t)
	return [3]float64{
		v1.Sub(v0).Norm(),
		v2.Sub(v1).Norm(),
		v0.Sub(v2).Norm(),
	}
}

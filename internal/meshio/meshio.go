// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package meshio reads and writes the binary triangle-list mesh format of
// SPEC_FULL.md §6: an 80-byte header, a uint32 triangle count, then one
// record per triangle (a 3-float32 normal followed by three 3-float32
// vertex positions and a uint16 attribute byte count) — the same on-disk
// shape as the classic binary STL format the original pipeline's `stl_io`
// crate reads and writes.
package meshio

import (
	"bytes"
	"encoding/binary"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/dpedroso/gowarp/internal/geom"
	"github.com/dpedroso/gowarp/internal/mesh"
)

const headerSize = 80

// vertexKey indexes the dedup table built while loading an un-indexed
// triangle stream into Mesh's indexed vertex/triangle tables.
type vertexKey struct{ x, y, z float32 }

// Load reads a binary triangle-list file and returns the equivalent
// indexed Mesh, deduplicating coincident vertex positions across
// triangles so the refinement and watertightness stages see a proper
// shared-vertex mesh rather than a triangle soup.
func Load(path string) (*mesh.Mesh, error) {
	data, err := io.ReadFile(path)
	if err != nil {
		return nil, chk.Err("meshio: load %s: %v\n", path, err)
	}
	r := bytes.NewReader(data)

	if r.Len() < headerSize+4 {
		return nil, chk.Err("meshio: load %s: file too short for header\n", path)
	}
	header := make([]byte, headerSize)
	if _, err := r.Read(header); err != nil {
		return nil, chk.Err("meshio: load %s: reading header: %v\n", path, err)
	}

	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, chk.Err("meshio: load %s: reading triangle count: %v\n", path, err)
	}

	m := &mesh.Mesh{}
	index := map[vertexKey]int{}

	addVertex := func(v [3]float32) int {
		k := vertexKey{v[0], v[1], v[2]}
		if idx, ok := index[k]; ok {
			return idx
		}
		idx := len(m.Vertices)
		m.Vertices = append(m.Vertices, geom.Vec3{X: float64(v[0]), Y: float64(v[1]), Z: float64(v[2])})
		index[k] = idx
		return idx
	}

	for i := uint32(0); i < count; i++ {
		var normal [3]float32
		if err := binary.Read(r, binary.LittleEndian, &normal); err != nil {
			return nil, chk.Err("meshio: load %s: triangle %d: reading normal: %v\n", path, i, err)
		}
		var tri mesh.Triangle
		for c := 0; c < 3; c++ {
			var v [3]float32
			if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
				return nil, chk.Err("meshio: load %s: triangle %d: reading vertex %d: %v\n", path, i, c, err)
			}
			tri[c] = addVertex(v)
		}
		var attr uint16
		if err := binary.Read(r, binary.LittleEndian, &attr); err != nil {
			return nil, chk.Err("meshio: load %s: triangle %d: reading attribute byte count: %v\n", path, i, err)
		}
		m.Triangles = append(m.Triangles, tri)
	}

	if err := m.Validate(); err != nil {
		return nil, chk.Err("meshio: load %s: %v\n", path, err)
	}
	return m, nil
}

// Save converts an indexed Mesh back into the un-indexed triangle stream
// (§6 "output converts back to the un-indexed triangle stream") and
// writes it in the binary format Load reads, recomputing each triangle's
// normal from its (possibly warped) vertices.
func Save(path string, m *mesh.Mesh) error {
	var buf bytes.Buffer
	buf.Write(make([]byte, headerSize))

	if err := binary.Write(&buf, binary.LittleEndian, uint32(len(m.Triangles))); err != nil {
		return chk.Err("meshio: save %s: writing triangle count: %v\n", path, err)
	}

	for _, t := range m.Triangles {
		n := m.Normal(t)
		if err := writeVec3(&buf, n); err != nil {
			return chk.Err("meshio: save %s: writing normal: %v\n", path, err)
		}
		v0, v1, v2 := m.TriangleVertices(t)
		for _, v := range []geom.Vec3{v0, v1, v2} {
			if err := writeVec3(&buf, v); err != nil {
				return chk.Err("meshio: save %s: writing vertex: %v\n", path, err)
			}
		}
		if err := binary.Write(&buf, binary.LittleEndian, uint16(0)); err != nil {
			return chk.Err("meshio: save %s: writing attribute byte count: %v\n", path, err)
		}
	}

	if err := io.WriteFile(path, &buf); err != nil {
		return chk.Err("meshio: save %s: %v\n", path, err)
	}
	return nil
}

func writeVec3(buf *bytes.Buffer, v geom.Vec3) error {
	arr := [3]float32{float32(v.X), float32(v.Y), float32(v.Z)}
	return binary.Write(buf, binary.LittleEndian, arr)
}

// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import "github.com/cpmech/gosl/chk"

// directedEdge is a half-edge key (origin, destination), per §9's
// "backward references in the half-edge mesh": siblings are referenced by
// key, not by pointer.
type directedEdge struct{ from, to int }

// IsWatertight reports whether every directed edge in the mesh's half-edge
// multiset is paired with its reverse exactly once (§8, property 4): a
// closed manifold stays closed after refinement.
func IsWatertight(m *Mesh) bool {
	counts := map[directedEdge]int{}
	for _, t := range m.Triangles {
		counts[directedEdge{t[0], t[1]}]++
		counts[directedEdge{t[1], t[2]}]++
		counts[directedEdge{t[2], t[0]}]++
	}
	for e, n := range counts {
		if n != 1 {
			return false
		}
		if counts[directedEdge{e.to, e.from}] != 1 {
			return false
		}
	}
	return true
}

// MaxEdgeLength returns the longest edge length present in the mesh, or an
// error if the mesh has no triangles.
func MaxEdgeLength(m *Mesh) (float64, error) {
	if len(m.Triangles) == 0 {
		return 0, chk.Err("mesh: cannot compute max edge length of an empty mesh\n")
	}
	max := 0.0
	for _, t := range m.Triangles {
		for _, l := range m.EdgeLengths(t) {
			if l > max {
				max = l
			}
		}
	}
	return max, nil
}

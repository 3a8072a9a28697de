// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

// AABB is an axis-aligned bounding box: a min-corner origin and a
// non-negative componentwise size.
type AABB struct {
	Origin Vec3 `json:"origin"`
	Size   Vec3 `json:"size"`
}

// Center returns the geometric center of the box.
func (b AABB) Center() Vec3 {
	return b.Origin.Add(b.Size.Scale(0.5))
}

// BoundsOf computes the AABB enclosing the given points. Panics on an empty
// slice since an AABB of zero points is undefined.
func BoundsOf(points []Vec3) AABB {
	if len(points) == 0 {
		panic("geom: BoundsOf requires at least one point")
	}
	min, max := points[0], points[0]
	for _, p := range points[1:] {
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.Z < min.Z {
			min.Z = p.Z
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
		if p.Z > max.Z {
			max.Z = p.Z
		}
	}
	return AABB{Origin: min, Size: max.Sub(min)}
}

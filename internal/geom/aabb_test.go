// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestBoundsOf(tst *testing.T) {
	chk.PrintTitle("BoundsOf")

	pts := []Vec3{
		{0, 0, 0},
		{10, 0, 0},
		{0, 10, 0},
		{5, 5, 3},
	}
	b := BoundsOf(pts)
	chk.Scalar(tst, "origin.x", 1e-15, b.Origin.X, 0)
	chk.Scalar(tst, "origin.y", 1e-15, b.Origin.Y, 0)
	chk.Scalar(tst, "origin.z", 1e-15, b.Origin.Z, 0)
	chk.Scalar(tst, "size.x", 1e-15, b.Size.X, 10)
	chk.Scalar(tst, "size.y", 1e-15, b.Size.Y, 10)
	chk.Scalar(tst, "size.z", 1e-15, b.Size.Z, 3)
}

func TestAABBCenter(tst *testing.T) {
	chk.PrintTitle("AABBCenter")

	b := AABB{Origin: Vec3{0, 0, 0}, Size: Vec3{10, 20, 4}}
	c := b.Center()
	chk.Scalar(tst, "center.x", 1e-15, c.X, 5)
	chk.Scalar(tst, "center.y", 1e-15, c.Y, 10)
	chk.Scalar(tst, "center.z", 1e-15, c.Z, 2)
}

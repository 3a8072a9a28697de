// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestVec3Arith(tst *testing.T) {
	chk.PrintTitle("Vec3Arith")

	a := Vec3{1, 2, 3}
	b := Vec3{4, -1, 0.5}

	sum := a.Add(b)
	chk.Scalar(tst, "sum.x", 1e-15, sum.X, 5)
	chk.Scalar(tst, "sum.y", 1e-15, sum.Y, 1)
	chk.Scalar(tst, "sum.z", 1e-15, sum.Z, 3.5)

	diff := a.Sub(b)
	chk.Scalar(tst, "diff.x", 1e-15, diff.X, -3)
	chk.Scalar(tst, "diff.y", 1e-15, diff.Y, 3)
	chk.Scalar(tst, "diff.z", 1e-15, diff.Z, 2.5)

	scaled := a.Scale(2)
	chk.Scalar(tst, "scaled.x", 1e-15, scaled.X, 2)
	chk.Scalar(tst, "scaled.y", 1e-15, scaled.Y, 4)
	chk.Scalar(tst, "scaled.z", 1e-15, scaled.Z, 6)
}

func TestVec3Cross(tst *testing.T) {
	chk.PrintTitle("Vec3Cross")

	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	z := x.Cross(y)
	chk.Scalar(tst, "z.x", 1e-15, z.X, 0)
	chk.Scalar(tst, "z.y", 1e-15, z.Y, 0)
	chk.Scalar(tst, "z.z", 1e-15, z.Z, 1)
}

func TestVec3Norm(tst *testing.T) {
	chk.PrintTitle("Vec3Norm")

	v := Vec3{3, 4, 0}
	chk.Scalar(tst, "norm", 1e-15, v.Norm(), 5)
}

func TestVec3Lerp(tst *testing.T) {
	chk.PrintTitle("Vec3Lerp")

	a := Vec3{0, 0, 0}
	b := Vec3{10, 20, 30}
	mid := a.Lerp(b, 0.5)
	chk.Scalar(tst, "mid.x", 1e-15, mid.X, 5)
	chk.Scalar(tst, "mid.y", 1e-15, mid.Y, 10)
	chk.Scalar(tst, "mid.z", 1e-15, mid.Z, 15)
}

func TestVec3JSONRoundTrip(tst *testing.T) {
	chk.PrintTitle("Vec3JSONRoundTrip")

	v := Vec3{1.5, -2.25, 3}
	data, err := v.MarshalJSON()
	if err != nil {
		tst.Fatalf("marshal: %v", err)
	}

	var got Vec3
	if err := got.UnmarshalJSON(data); err != nil {
		tst.Fatalf("unmarshal: %v", err)
	}
	chk.Scalar(tst, "x", 1e-15, got.X, v.X)
	chk.Scalar(tst, "y", 1e-15, got.Y, v.Y)
	chk.Scalar(tst, "z", 1e-15, got.Z, v.Z)
}

func TestVec4LerpIncludesExtrusion(tst *testing.T) {
	chk.PrintTitle("Vec4LerpIncludesExtrusion")

	a := Vec4{0, 0, 0, 0}
	b := Vec4{10, 0, 0, 1}
	p := a.Lerp(b, 0.25)
	chk.Scalar(tst, "x", 1e-15, p.X, 2.5)
	chk.Scalar(tst, "e", 1e-15, p.E, 0.25)
}

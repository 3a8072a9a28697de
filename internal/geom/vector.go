// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom implements the small, fixed-arity numeric primitives shared
// by the mesh and transform packages: 3-vectors, 4-vectors (xyz plus an
// extrusion axis) and axis-aligned bounding boxes.
package geom

import "math"

// Vec3 is a point or displacement in xyz space.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns a+b.
func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// Sub returns a-b.
func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Scale returns a scaled by s.
func (a Vec3) Scale(s float64) Vec3 {
	return Vec3{a.X * s, a.Y * s, a.Z * s}
}

// Cross returns the cross product a×b.
func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Dot returns the dot product a·b.
func (a Vec3) Dot(b Vec3) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Norm returns the Euclidean length of a.
func (a Vec3) Norm() float64 {
	return math.Sqrt(a.Dot(a))
}

// Lerp linearly interpolates between a and b at parameter t.
func (a Vec3) Lerp(b Vec3, t float64) Vec3 {
	return a.Add(b.Sub(a).Scale(t))
}

// MarshalJSON encodes the vector as a 3-element array [x,y,z], matching the
// transform-persistence wire format in §6.
func (a Vec3) MarshalJSON() ([]byte, error) {
	return marshalArray(a.X, a.Y, a.Z)
}

// UnmarshalJSON decodes a 3-element array [x,y,z].
func (a *Vec3) UnmarshalJSON(data []byte) error {
	vals, err := unmarshalArray(data, 3)
	if err != nil {
		return err
	}
	a.X, a.Y, a.Z = vals[0], vals[1], vals[2]
	return nil
}

// Vec4 is a point in xyz space plus an extrusion (E) component, used to
// track toolpath position and accumulated filament together.
type Vec4 struct {
	X, Y, Z, E float64
}

// XYZ drops the extrusion component.
func (a Vec4) XYZ() Vec3 {
	return Vec3{a.X, a.Y, a.Z}
}

// Sub returns a-b componentwise.
func (a Vec4) Sub(b Vec4) Vec4 {
	return Vec4{a.X - b.X, a.Y - b.Y, a.Z - b.Z, a.E - b.E}
}

// Norm3 returns the Euclidean length of the xyz components only.
func (a Vec4) Norm3() float64 {
	return a.XYZ().Norm()
}

// Lerp linearly interpolates all four components between a and b at
// parameter t, per §4.4's "linear interpolation applies to all four
// components including the extrusion axis".
func (a Vec4) Lerp(b Vec4, t float64) Vec4 {
	return Vec4{
		a.X + (b.X-a.X)*t,
		a.Y + (b.Y-a.Y)*t,
		a.Z + (b.Z-a.Z)*t,
		a.E + (b.E-a.E)*t,
	}
}

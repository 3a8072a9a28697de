// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package transform implements the coordinate-transform family: a tagged
// union of height-field displacements {Conical, Sinusoidal, Spherical},
// each with a flat-bottom blend, exposing Apply, ApplyInverse and Jacobian.
//
// The xy coordinates are always identity; only z is displaced. See
// SPEC_FULL.md §4.1 for the exact formulas implemented here.
package transform

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/dpedroso/gowarp/internal/geom"
)

// Kind discriminates the Transform tagged union.
type Kind int

// Supported transform kinds.
const (
	Conical Kind = iota
	Sinusoidal
	Spherical
)

// String names a Kind the way it is serialized in transform.json.
func (k Kind) String() string {
	switch k {
	case Conical:
		return "Conical"
	case Sinusoidal:
		return "Sinusoidal"
	case Spherical:
		return "Spherical"
	default:
		return "Unknown"
	}
}

// Transform is the tagged union described in SPEC_FULL.md §3: only the
// fields belonging to Kind are meaningful. There is no interface
// hierarchy here per §9 ("tagged unions over inheritance") — dispatch is a
// fixed switch in Apply/ApplyInverse/Jacobian/offset.
type Transform struct {
	Kind       Kind
	SlopeAngle float64 // Conical, radians
	Height     float64 // Sinusoidal, mm
	Pitch      float64 // Sinusoidal, mm, must be != 0
	Radius     float64 // Spherical, mm
	FlatBottom float64 // all variants, mm; 0 disables the blend
}

// NewConical builds a Conical transform, validating the configuration
// error in §7: a negative slope combined with a non-zero flat-bottom is
// rejected because the blend is ill-defined for inverted cones.
func NewConical(slopeAngleRad, flatBottom float64) (Transform, error) {
	if slopeAngleRad < 0 && flatBottom != 0 {
		return Transform{}, chk.Err("conical transform: negative slope_angle (%g rad) with non-zero flat_bottom (%g) is rejected\n", slopeAngleRad, flatBottom)
	}
	return Transform{Kind: Conical, SlopeAngle: slopeAngleRad, FlatBottom: flatBottom}, nil
}

// NewSinusoidal builds a Sinusoidal transform. pitch must be non-zero
// per the data model invariant in §3.
func NewSinusoidal(height, pitch, flatBottom float64) (Transform, error) {
	if pitch == 0 {
		return Transform{}, chk.Err("sinusoidal transform: pitch must be non-zero\n")
	}
	return Transform{Kind: Sinusoidal, Height: height, Pitch: pitch, FlatBottom: flatBottom}, nil
}

// NewSpherical builds a Spherical transform.
func NewSpherical(radius, flatBottom float64) (Transform, error) {
	return Transform{Kind: Spherical, Radius: radius, FlatBottom: flatBottom}, nil
}

// offset computes the un-blended displacement Δ(x,y) for the variant, and
// reports a domain error for Spherical points outside x²+y² ≤ radius²
// (§4.1 "Failure", resolved per §9 to fail fast rather than emit NaN).
func (t Transform) offset(x, y float64) (float64, error) {
	switch t.Kind {
	case Conical:
		return math.Tan(t.SlopeAngle) * math.Sqrt(x*x+y*y), nil
	case Sinusoidal:
		return t.Height * (math.Sin(2*math.Pi*x/t.Pitch)*math.Cos(2*math.Pi*y/t.Pitch) + 1) / 2, nil
	case Spherical:
		r2 := t.Radius*t.Radius - x*x - y*y
		if r2 < 0 {
			return 0, chk.Err("spherical transform: point (x=%g, y=%g) lies outside the valid domain x²+y² ≤ radius²=%g\n", x, y, t.Radius*t.Radius)
		}
		return t.Radius - math.Sqrt(r2), nil
	default:
		chk.Panic("transform: unknown kind %d\n", t.Kind)
		return 0, nil
	}
}

// blendFactor returns s(z) from §4.1.
func (t Transform) blendFactor(z float64) float64 {
	if t.FlatBottom == 0 {
		return 1
	}
	s := z / t.FlatBottom
	if s > 1 {
		return 1
	}
	return s
}

// Apply maps a point from unwarped to warped space: z' = z + s(z)·Δ(x,y).
func (t Transform) Apply(p geom.Vec3) (geom.Vec3, error) {
	delta, err := t.offset(p.X, p.Y)
	if err != nil {
		return geom.Vec3{}, err
	}
	zPrime := p.Z + t.blendFactor(p.Z)*delta
	return geom.Vec3{X: p.X, Y: p.Y, Z: zPrime}, nil
}

// ApplyInverse maps a point from warped to unwarped space. It is an exact
// left inverse of Apply over the transform's valid domain, implementing
// the piecewise policy of §4.1 exactly:
//
//   - if flat_bottom != 0 and z' <= flat_bottom + Δ: z = (flat_bottom / (flat_bottom + Δ)) · z'
//   - otherwise: z = z' - Δ
func (t Transform) ApplyInverse(p geom.Vec3) (geom.Vec3, error) {
	delta, err := t.offset(p.X, p.Y)
	if err != nil {
		return geom.Vec3{}, err
	}
	var z float64
	if t.FlatBottom != 0 && p.Z <= t.FlatBottom+delta {
		z = (t.FlatBottom / (t.FlatBottom + delta)) * p.Z
	} else {
		z = p.Z - delta
	}
	return geom.Vec3{X: p.X, Y: p.Y, Z: z}, nil
}

// Jacobian returns the determinant of the forward map evaluated at the
// unwarped point p: det J = 1 + s'(z)·Δ, with s'(z) = 1/flat_bottom on
// (0, flat_bottom) when flat_bottom != 0, else 0.
func (t Transform) Jacobian(p geom.Vec3) (float64, error) {
	delta, err := t.offset(p.X, p.Y)
	if err != nil {
		return 0, err
	}
	var sPrime float64
	if t.FlatBottom != 0 && p.Z > 0 && p.Z < t.FlatBottom {
		sPrime = 1 / t.FlatBottom
	}
	return 1 + sPrime*delta, nil
}

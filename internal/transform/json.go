// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transform

import (
	"encoding/json"

	"github.com/cpmech/gosl/chk"

	"github.com/dpedroso/gowarp/internal/geom"
)

// Data is the persisted {transform, warped_aabb} pair described in §6
// "Transform persistence", written by warp and read by dewarp.
type Data struct {
	Transform  Transform `json:"transform"`
	WarpedAABB geom.AABB `json:"warped_aabb"`
}

// wireTransform mirrors the JSON shape: a "type" discriminator plus only
// the fields belonging to that variant, angles in radians, lengths in mm.
type wireTransform struct {
	Type       string   `json:"type"`
	SlopeAngle *float64 `json:"slope_angle,omitempty"`
	Height     *float64 `json:"height,omitempty"`
	Pitch      *float64 `json:"pitch,omitempty"`
	Radius     *float64 `json:"radius,omitempty"`
	FlatBottom float64  `json:"flat_bottom"`
}

// MarshalJSON emits the tagged-union wire format of §6.
func (t Transform) MarshalJSON() ([]byte, error) {
	w := wireTransform{Type: t.Kind.String(), FlatBottom: t.FlatBottom}
	switch t.Kind {
	case Conical:
		w.SlopeAngle = &t.SlopeAngle
	case Sinusoidal:
		w.Height = &t.Height
		w.Pitch = &t.Pitch
	case Spherical:
		w.Radius = &t.Radius
	default:
		return nil, chk.Err("transform: unknown kind %d\n", t.Kind)
	}
	return json.Marshal(w)
}

// UnmarshalJSON decodes the tagged-union wire format of §6.
func (t *Transform) UnmarshalJSON(data []byte) error {
	var w wireTransform
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	switch w.Type {
	case "Conical":
		if w.SlopeAngle == nil {
			return chk.Err("transform: Conical requires slope_angle\n")
		}
		t.Kind = Conical
		t.SlopeAngle = *w.SlopeAngle
	case "Sinusoidal":
		if w.Height == nil || w.Pitch == nil {
			return chk.Err("transform: Sinusoidal requires height and pitch\n")
		}
		t.Kind = Sinusoidal
		t.Height = *w.Height
		t.Pitch = *w.Pitch
	case "Spherical":
		if w.Radius == nil {
			return chk.Err("transform: Spherical requires radius\n")
		}
		t.Kind = Spherical
		t.Radius = *w.Radius
	default:
		return chk.Err("transform: unrecognized type %q\n", w.Type)
	}
	t.FlatBottom = w.FlatBottom
	return nil
}

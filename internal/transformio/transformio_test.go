// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transformio

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/dpedroso/gowarp/internal/geom"
	"github.com/dpedroso/gowarp/internal/transform"
)

func TestSaveLoadRoundTrip(tst *testing.T) {
	chk.PrintTitle("SaveLoadRoundTrip")

	tr, err := transform.NewConical(math.Pi/6, 5)
	if err != nil {
		tst.Fatalf("NewConical: %v", err)
	}
	data := transform.Data{
		Transform: tr,
		WarpedAABB: geom.AABB{
			Origin: geom.Vec3{X: -1, Y: -2, Z: 0},
			Size:   geom.Vec3{X: 10, Y: 20, Z: 3},
		},
	}

	dir := tst.TempDir()
	path := filepath.Join(dir, "transform.json")
	if err := Save(path, data); err != nil {
		tst.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		tst.Fatalf("Load: %v", err)
	}

	if loaded.Transform.Kind != transform.Conical {
		tst.Fatalf("expected Conical, got %v", loaded.Transform.Kind)
	}
	chk.Scalar(tst, "SlopeAngle", 1e-12, loaded.Transform.SlopeAngle, tr.SlopeAngle)
	chk.Scalar(tst, "FlatBottom", 1e-12, loaded.Transform.FlatBottom, tr.FlatBottom)
	chk.Vector(tst, "origin", 1e-12,
		[]float64{loaded.WarpedAABB.Origin.X, loaded.WarpedAABB.Origin.Y, loaded.WarpedAABB.Origin.Z},
		[]float64{-1, -2, 0})
	chk.Vector(tst, "size", 1e-12,
		[]float64{loaded.WarpedAABB.Size.X, loaded.WarpedAABB.Size.Y, loaded.WarpedAABB.Size.Z},
		[]float64{10, 20, 3})
}

func TestLoadMissingFileFails(tst *testing.T) {
	chk.PrintTitle("LoadMissingFileFails")

	if _, err := Load(filepath.Join(tst.TempDir(), "does-not-exist.json")); err == nil {
		tst.Fatal("expected an error loading a missing file")
	}
}

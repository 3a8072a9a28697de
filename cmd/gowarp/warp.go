// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/dpedroso/gowarp/internal/meshio"
	"github.com/dpedroso/gowarp/internal/transform"
	"github.com/dpedroso/gowarp/internal/transformio"
	"github.com/dpedroso/gowarp/internal/warp"
)

// runWarp implements the `warp` subcommand of §6: default
// max_edge_len=1.0mm, type=conical, slope_angle=30°, height=2.0mm,
// pitch=10.0mm, flat_bottom=0 (disabled).
func runWarp(args []string) error {
	fs := flag.NewFlagSet("warp", flag.ExitOnError)
	outputFile := fs.String("output-file", "", "default: <input>.warped.stl")
	maxEdgeLen := fs.Float64("max-edge-len", 1.0, "mm")
	kind := fs.String("type", "conical", "conical|sinusoidal|spherical")
	slopeAngleDeg := fs.Float64("slope-angle", 30.0, "degrees, Conical only")
	height := fs.Float64("height", 2.0, "mm, Sinusoidal only")
	pitch := fs.Float64("pitch", 10.0, "mm, Sinusoidal only")
	radius := fs.Float64("radius", 50.0, "mm, Spherical only")
	flatBottom := fs.Float64("flat-bottom", 0.0, "mm, 0 disables the blend")
	verbose := fs.Bool("verbose", false, "print a per-stage progress line")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return chk.Err("warp: missing <input.stl>\n")
	}
	input := fs.Arg(0)

	tr, err := buildTransform(*kind, *slopeAngleDeg, *height, *pitch, *radius, *flatBottom)
	if err != nil {
		return err
	}

	output := *outputFile
	if output == "" {
		output = replaceExt(input, ".warped.stl")
	}
	transformPath := replaceExt(input, ".transform.json")

	if *verbose {
		io.Pfcyan("loading mesh from %s\n", input)
	}
	m, err := meshio.Load(input)
	if err != nil {
		return err
	}
	if *verbose {
		io.Pfcyan("loaded %d vertices, %d triangles\n", len(m.Vertices), len(m.Triangles))
	}

	result, err := warp.Run(m, warp.Options{Transform: tr, MaxEdgeLen: *maxEdgeLen})
	if err != nil {
		return err
	}
	if *verbose {
		io.Pfcyan("refined to %d vertices, %d triangles\n", len(result.Mesh.Vertices), len(result.Mesh.Triangles))
		io.Pfcyan("warped AABB origin=%v size=%v\n", result.Data.WarpedAABB.Origin, result.Data.WarpedAABB.Size)
	}

	if err := meshio.Save(output, result.Mesh); err != nil {
		return err
	}
	if err := transformio.Save(transformPath, result.Data); err != nil {
		return err
	}

	io.Pf("wrote %s\n", output)
	io.Pf("wrote %s\n", transformPath)
	return nil
}

// buildTransform constructs the configured transform variant, converting
// the CLI's slope_angle from degrees to radians.
func buildTransform(kind string, slopeAngleDeg, height, pitch, radius, flatBottom float64) (transform.Transform, error) {
	switch strings.ToLower(kind) {
	case "conical":
		return transform.NewConical(slopeAngleDeg*math.Pi/180, flatBottom)
	case "sinusoidal":
		return transform.NewSinusoidal(height, pitch, flatBottom)
	case "spherical":
		return transform.NewSpherical(radius, flatBottom)
	default:
		return transform.Transform{}, chk.Err("warp: unrecognized --type %q\n", kind)
	}
}

// replaceExt swaps path's extension (as reported by io.FnExt) for newExt.
func replaceExt(path, newExt string) string {
	ext := io.FnExt(path)
	if ext == "" {
		return path + newExt
	}
	return strings.TrimSuffix(path, ext) + newExt
}

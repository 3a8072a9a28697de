// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"flag"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/dpedroso/gowarp/internal/dewarp"
	"github.com/dpedroso/gowarp/internal/gcode"
	"github.com/dpedroso/gowarp/internal/transformio"
)

// runDewarp implements the `dewarp` subcommand of §6: default
// max_line_len=1.0mm. --dry-run validates the stream (catching G92
// E<nonzero> and mismatched BEGIN/END nesting) without writing output.
func runDewarp(args []string) error {
	fs := flag.NewFlagSet("dewarp", flag.ExitOnError)
	outputFile := fs.String("output-file", "", "default: <input>.dewarped.gcode")
	maxLineLen := fs.Float64("max-line-len", 1.0, "mm")
	verbose := fs.Bool("verbose", false, "print a per-stage progress line")
	dryRun := fs.Bool("dry-run", false, "validate the stream without writing output")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 2 {
		return chk.Err("dewarp: usage: dewarp <input.gcode> <transform.json>\n")
	}
	input := fs.Arg(0)
	transformPath := fs.Arg(1)

	data, err := transformio.Load(transformPath)
	if err != nil {
		return err
	}
	if *verbose {
		io.Pfcyan("loaded transform %s (%s)\n", transformPath, data.Transform.Kind)
	}

	opt := dewarp.Options{
		Transform:  data.Transform,
		ZOffset:    data.WarpedAABB.Origin.Z,
		MaxLineLen: *maxLineLen,
	}

	inFile, err := os.Open(input)
	if err != nil {
		return chk.Err("dewarp: opening %s: %v\n", input, err)
	}
	defer inFile.Close()

	if *dryRun {
		if err := validateStream(inFile); err != nil {
			return err
		}
		io.Pf("dry-run OK: %s\n", input)
		return nil
	}

	output := *outputFile
	if output == "" {
		output = replaceExt(input, ".dewarped.gcode")
	}
	outFile, err := os.Create(output)
	if err != nil {
		return chk.Err("dewarp: creating %s: %v\n", output, err)
	}
	defer outFile.Close()

	if err := dewarp.Rewrite(inFile, outFile, opt); err != nil {
		return err
	}

	io.Pf("wrote %s\n", output)
	return nil
}

// validateStream parses every line and rejects the BEGIN/END nesting and
// G92 E<nonzero> conditions Rewrite rejects, without writing any output
// (§9 supplemental --dry-run). It does not apply the transform, so
// transform-domain errors are not detected here.
func validateStream(f *os.File) error {
	scanner := bufio.NewScanner(f)
	enabled := false
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		cmd, ok := gcode.ParseLine(scanner.Text())
		if !ok {
			continue
		}
		switch cmd.Kind {
		case gcode.BeginDewarp:
			if enabled {
				return chk.Err("dewarp: line %d: BEGIN_DEWARP encountered while already enabled\n", lineNum)
			}
			enabled = true
		case gcode.EndDewarp:
			if !enabled {
				return chk.Err("dewarp: line %d: END_DEWARP encountered while not enabled\n", lineNum)
			}
			enabled = false
		case gcode.SetPosition:
			if e, ok := cmd.Axes.Get('E'); ok && e != 0 {
				return chk.Err("dewarp: line %d: G92 setting E to non-zero value %g is unsupported\n", lineNum, e)
			}
		}
	}
	return scanner.Err()
}

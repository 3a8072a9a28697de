// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command gowarp implements the two-subcommand CLI of SPEC_FULL.md §6:
// `warp` pre-distorts a mesh against a height-field transform, and
// `dewarp` rewrites a G-code stream to compensate for it on the printer.
package main

import (
	"fmt"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "\nERROR: %v\n", err)
			os.Exit(1)
		}
	}()

	io.PfWhite("\ngowarp -- mesh pre-warp and toolpath dewarp\n\n")
	io.Pf("Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.\n")
	io.Pf("Use of this source code is governed by a BSD-style\n")
	io.Pf("license that can be found in the LICENSE file.\n\n")

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "warp":
		err = runWarp(os.Args[2:])
	case "dewarp":
		err = runDewarp(os.Args[2:])
	case "-h", "--help", "help":
		usage()
		return
	default:
		fmt.Fprintf(os.Stderr, "ERROR: unrecognized subcommand %q\n", os.Args[1])
		usage()
		os.Exit(1)
	}
	if err != nil {
		chk.Panic("%v", err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage:")
	fmt.Fprintln(os.Stderr, "  gowarp warp <input.stl> [--output-file <path>] [--max-edge-len <mm>]")
	fmt.Fprintln(os.Stderr, "             [--type conical|sinusoidal|spherical] [--slope-angle <deg>]")
	fmt.Fprintln(os.Stderr, "             [--height <mm>] [--pitch <mm>] [--flat-bottom <mm>] [--verbose]")
	fmt.Fprintln(os.Stderr, "  gowarp dewarp <input.gcode> <transform.json> [--max-line-len <mm>]")
	fmt.Fprintln(os.Stderr, "               [--output-file <path>] [--verbose] [--dry-run]")
}

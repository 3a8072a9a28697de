// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dewarp implements the streaming toolpath rewriter of
// SPEC_FULL.md §4.4: a per-line state machine that rewrites warped-space
// G-code motion into unwarped machine coordinates, compensating extruded
// volume by the local Jacobian determinant of the forward transform.
package dewarp

import (
	"bufio"
	"io"
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/dpedroso/gowarp/internal/gcode"
	"github.com/dpedroso/gowarp/internal/geom"
	"github.com/dpedroso/gowarp/internal/transform"
)

// state is threaded through the per-line step; there is no module-level
// mutable state (§9 "state threading instead of global mutation").
type state struct {
	enabled    bool
	center     geom.Vec3
	lastPos    geom.Vec4
	correctedE float64
}

// Options configures one Rewrite run.
type Options struct {
	Transform  transform.Transform
	ZOffset    float64 // warped_aabb.origin.z, applied only while enabled
	MaxLineLen float64 // mm, must be > 0; a move of length L becomes max(1, floor(L/MaxLineLen)) sub-segments
}

// Rewrite streams lines from r to w, applying the dewarp transform within
// BEGIN_DEWARP/END_DEWARP blocks and passing everything else through
// verbatim (property 2, "identity outside enable"). It returns an error
// naming the offending line on any fatal condition (§7): malformed
// BEGIN/END nesting, or G92 resetting E to a non-zero value.
func Rewrite(r io.Reader, w io.Writer, opt Options) error {
	if opt.MaxLineLen <= 0 {
		return chk.Err("dewarp: max_line_len must be positive, got %g\n", opt.MaxLineLen)
	}

	st := &state{}
	scanner := bufio.NewScanner(r)
	bw := bufio.NewWriter(w)
	defer bw.Flush()

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if err := st.step(line, opt, bw); err != nil {
			return chk.Err("dewarp: line %d: %v\n", lineNum, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return chk.Err("dewarp: reading input: %v\n", err)
	}
	return bw.Flush()
}

// step processes one source line, writing zero or more output lines.
func (st *state) step(line string, opt Options, w *bufio.Writer) error {
	cmd, ok := gcode.ParseLine(line)
	if !ok {
		_, err := io.WriteString(w, line+"\n")
		return err
	}

	switch cmd.Kind {
	case gcode.BeginDewarp:
		if st.enabled {
			return chk.Err("BEGIN_DEWARP encountered while already enabled\n")
		}
		st.enabled = true
		x, _ := cmd.Axes.Get('X')
		y, _ := cmd.Axes.Get('Y')
		st.center = geom.Vec3{X: x / 2, Y: y / 2, Z: 0}
		_, err := io.WriteString(w, "; BEGIN_DEWARP\n")
		return err

	case gcode.EndDewarp:
		if !st.enabled {
			return chk.Err("END_DEWARP encountered while not enabled\n")
		}
		st.enabled = false
		_, err := io.WriteString(w, "; END_DEWARP\n")
		return err

	case gcode.SetPosition:
		return st.applySetPosition(cmd, line, w)

	case gcode.Rapid, gcode.Linear:
		return st.applyMotion(cmd, line, opt, w)
	}
	return nil
}

// applySetPosition handles G92, updating last_pos and the corrected
// accumulator per §4.4. G92 is always echoed verbatim — the spec names no
// rewriting of a set-position line, only of motion commands.
func (st *state) applySetPosition(cmd gcode.Command, line string, w *bufio.Writer) error {
	target := st.lastPos
	if v, ok := cmd.Axes.Get('X'); ok {
		target.X = v
	}
	if v, ok := cmd.Axes.Get('Y'); ok {
		target.Y = v
	}
	if v, ok := cmd.Axes.Get('Z'); ok {
		target.Z = v
	}
	if e, ok := cmd.Axes.Get('E'); ok {
		if e != 0 {
			return chk.Err("G92 setting E to non-zero value %g is unsupported: it would desynchronize the corrected extrusion accumulator\n", e)
		}
		st.correctedE = 0
		target.E = 0
	}
	st.lastPos = target

	_, err := io.WriteString(w, line+"\n")
	return err
}

// applyMotion handles Rapid/Linear, subdividing and dewarping when enabled,
// or passing through verbatim otherwise (property 2: identity outside
// enable requires the original source text, not a reconstruction).
func (st *state) applyMotion(cmd gcode.Command, line string, opt Options, w *bufio.Writer) error {
	target := st.lastPos
	if v, ok := cmd.Axes.Get('X'); ok {
		target.X = v
	}
	if v, ok := cmd.Axes.Get('Y'); ok {
		target.Y = v
	}
	if v, ok := cmd.Axes.Get('Z'); ok {
		target.Z = v
		if st.enabled {
			target.Z += opt.ZOffset
		}
	}
	if v, ok := cmd.Axes.Get('E'); ok {
		target.E = v
	}

	if !st.enabled {
		_, err := io.WriteString(w, line+"\n")
		st.lastPos = target
		return err
	}

	start := st.lastPos
	delta := target.Sub(start)
	n := int(math.Floor(delta.Norm3() / opt.MaxLineLen))
	if n < 1 {
		n = 1
	}

	lastE := start.E
	for i := 1; i <= n; i++ {
		p := start.Lerp(target, float64(i)/float64(n))

		unwarpedAtP, err := opt.Transform.ApplyInverse(p.XYZ().Sub(st.center))
		if err != nil {
			return err
		}
		dewarped := unwarpedAtP.Add(st.center)

		jac, err := opt.Transform.Jacobian(unwarpedAtP)
		if err != nil {
			return err
		}

		st.correctedE += (p.E - lastE) / jac
		lastE = p.E

		if dewarped.Z < 0 {
			dewarped.Z = 0
		}

		out := gcode.Command{Kind: cmd.Kind}
		out.Axes.Set('X', dewarped.X)
		out.Axes.Set('Y', dewarped.Y)
		out.Axes.Set('Z', dewarped.Z)
		out.Axes.Set('E', st.correctedE)
		for _, l := range cmd.Axes.Letters() {
			switch l {
			case 'X', 'Y', 'Z', 'E':
				continue
			default:
				v, _ := cmd.Axes.Get(l)
				out.Axes.Set(l, v)
			}
		}

		if _, err := io.WriteString(w, out.String()+"\n"); err != nil {
			return err
		}
	}

	st.lastPos = target
	return nil
}

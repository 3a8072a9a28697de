// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gcode implements the toolpath command model and line parser of
// SPEC_FULL.md §4.3/§4.4: typed records {Rapid, Linear, SetPosition,
// BeginDewarp, EndDewarp}, each carrying an optional scalar per axis
// letter, and a line-oriented parser that rejects unrecognized input
// softly so the dewarp rewriter can pass it through unchanged.
package gcode

import (
	"strconv"
	"strings"
)

// Kind discriminates the Command tagged union.
type Kind int

// Supported command kinds.
const (
	Rapid Kind = iota
	Linear
	SetPosition
	BeginDewarp
	EndDewarp
)

// axisOrder fixes the emission order of axis letters, matching the order
// they are named in §3's data model.
var axisOrder = []byte{'X', 'Y', 'Z', 'A', 'B', 'C', 'E', 'F'}

// Axes holds an optional scalar per axis letter; an absent axis means
// "unchanged" per §3.
type Axes struct {
	values map[byte]float64
}

// Get returns the value for axis letter (upper-case) and whether it is
// present.
func (a Axes) Get(letter byte) (float64, bool) {
	if a.values == nil {
		return 0, false
	}
	v, ok := a.values[letter]
	return v, ok
}

// Set stores a value for axis letter; a later Set for the same letter
// overwrites the earlier one (§4.3 "an argument appearing twice takes the
// last value").
func (a *Axes) Set(letter byte, value float64) {
	if a.values == nil {
		a.values = map[byte]float64{}
	}
	a.values[letter] = value
}

// Letters returns the axis letters present among X, Y, Z, A, B, C, E, F, in
// that fixed emission order; any other letter stored by Set is not listed.
func (a Axes) Letters() []byte {
	var out []byte
	for _, l := range axisOrder {
		if _, ok := a.values[l]; ok {
			out = append(out, l)
		}
	}
	return out
}

// Command is one line of toolpath, carrying its kind and its axis values.
type Command struct {
	Kind Kind
	Axes Axes
}

// String formats the command the way §4.4 "Emission format" specifies:
// the command name followed by each non-absent axis as <letter><value>
// with the value fixed at 5 decimal places.
func (c Command) String() string {
	var b strings.Builder
	b.WriteString(c.Kind.commandName())
	for _, l := range c.Axes.Letters() {
		v, _ := c.Axes.Get(l)
		b.WriteByte(' ')
		b.WriteByte(l)
		b.WriteString(strconv.FormatFloat(v, 'f', 5, 64))
	}
	return b.String()
}

// commandName returns the canonical G-code token emitted for this kind.
func (k Kind) commandName() string {
	switch k {
	case Rapid:
		return "G0"
	case Linear:
		return "G1"
	case SetPosition:
		return "G92"
	case BeginDewarp:
		return "BEGIN_DEWARP"
	case EndDewarp:
		return "END_DEWARP"
	default:
		return "?"
	}
}

// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gcode

import "strconv"

// nameToKind maps recognized command tokens to their Kind. BEGIN_DEWARP/
// END_DEWARP are the primary spelling; M1001/M1002 are accepted as an
// alias for slicers that emit that convention (§4.3), parsing identically.
var nameToKind = map[string]Kind{
	"G0":           Rapid,
	"G1":           Linear,
	"G92":          SetPosition,
	"BEGIN_DEWARP": BeginDewarp,
	"END_DEWARP":   EndDewarp,
	"M1001":        BeginDewarp,
	"M1002":        EndDewarp,
}

// ParseLine parses one line of the grammar in §4.3:
//
//	line    := [linenum WS] [command] [comment] EOL
//	linenum := 'N' digits
//	command := name args
//	args    := (WS axisletter floatnum)*
//	comment := ';' any-until-EOL
//
// It returns the parsed Command and true, or false if the line has no
// recognized command (unrecognized name, malformed arguments, or a
// comment-only/blank line) — the caller must then echo the original line
// verbatim.
func ParseLine(line string) (Command, bool) {
	s := line

	// optional line number: 'N' digits, followed by whitespace.
	if len(s) > 0 && s[0] == 'N' {
		i := 1
		for i < len(s) && isDigit(s[i]) {
			i++
		}
		if i > 1 {
			rest := s[i:]
			if rest == "" || isSpace(rest[0]) {
				s = skipSpace(rest)
			}
		}
	}

	// strip a trailing comment before looking for a command, so it doesn't
	// block an otherwise-valid command earlier on the line.
	if idx := indexByte(s, ';'); idx >= 0 {
		s = s[:idx]
	}

	s = skipSpace(s)
	if s == "" {
		return Command{}, false
	}

	name, rest, ok := scanName(s)
	if !ok {
		return Command{}, false
	}
	kind, known := nameToKind[name]
	if !known {
		return Command{}, false
	}

	axes, ok := parseArgs(rest)
	if !ok {
		return Command{}, false
	}

	return Command{Kind: kind, Axes: axes}, true
}

// scanName recognizes `alpha (alpha|digit|'_')*` and returns the token plus
// the remainder of the line.
func scanName(s string) (name, rest string, ok bool) {
	if len(s) == 0 || !isAlpha(s[0]) {
		return "", s, false
	}
	i := 1
	for i < len(s) && (isAlpha(s[i]) || isDigit(s[i]) || s[i] == '_') {
		i++
	}
	return s[:i], s[i:], true
}

// parseArgs recognizes `(WS axisletter floatnum)*`; an axis letter is
// case-insensitive and repeats take the last value.
func parseArgs(s string) (Axes, bool) {
	var axes Axes
	s = skipSpace(s)
	for s != "" {
		letter := s[0]
		if letter >= 'a' && letter <= 'z' {
			letter -= 'a' - 'A'
		}
		if letter < 'A' || letter > 'Z' {
			return Axes{}, false
		}
		s = s[1:]

		numEnd := scanFloat(s)
		if numEnd == 0 {
			return Axes{}, false
		}
		v, err := strconv.ParseFloat(s[:numEnd], 64)
		if err != nil {
			return Axes{}, false
		}
		axes.Set(letter, v)

		s = skipSpace(s[numEnd:])
	}
	return axes, true
}

// scanFloat recognizes `['+'|'-'] (digits | digits? '.' digits?)` and
// returns the length of the match, or 0 if none.
func scanFloat(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	start := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	intDigits := i - start
	if i < len(s) && s[i] == '.' {
		i++
		fracStart := i
		for i < len(s) && isDigit(s[i]) {
			i++
		}
		if intDigits == 0 && i == fracStart {
			return 0 // bare '.' with no digits on either side
		}
		return i
	}
	if intDigits == 0 {
		return 0
	}
	return i
}

func isAlpha(b byte) bool { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') }
func isDigit(b byte) bool { return b >= '0' && b <= '9' }
func isSpace(b byte) bool { return b == ' ' || b == '\t' }

func skipSpace(s string) string {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	return s[i:]
}

func indexByte(s string, b byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return i
		}
	}
	return -1
}

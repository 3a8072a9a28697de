// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package transformio persists the transform.Data produced by a warp run
// and consumed by a dewarp run, as the JSON file described in
// SPEC_FULL.md §6 "Transform persistence".
package transformio

import (
	"bytes"
	"encoding/json"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/dpedroso/gowarp/internal/transform"
)

// Load reads and decodes a transform.json file.
func Load(path string) (transform.Data, error) {
	raw, err := io.ReadFile(path)
	if err != nil {
		return transform.Data{}, chk.Err("transformio: load %s: %v\n", path, err)
	}
	var data transform.Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return transform.Data{}, chk.Err("transformio: load %s: %v\n", path, err)
	}
	return data, nil
}

// Save encodes and writes a transform.json file, pretty-printed for
// readability the way the teacher's config artifacts are.
func Save(path string, data transform.Data) error {
	encoded, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return chk.Err("transformio: save %s: %v\n", path, err)
	}
	buf := bytes.NewBuffer(encoded)
	if err := io.WriteFile(path, buf); err != nil {
		return chk.Err("transformio: save %s: %v\n", path, err)
	}
	return nil
}

// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"encoding/json"

	"github.com/cpmech/gosl/chk"
)

// marshalArray encodes a fixed set of floats as a JSON array.
func marshalArray(vals ...float64) ([]byte, error) {
	return json.Marshal(vals)
}

// unmarshalArray decodes a JSON array of exactly n floats.
func unmarshalArray(data []byte, n int) ([]float64, error) {
	var vals []float64
	if err := json.Unmarshal(data, &vals); err != nil {
		return nil, err
	}
	if len(vals) != n {
		return nil, chk.Err("expected %d-element array, got %d elements\n", n, len(vals))
	}
	return vals, nil
}

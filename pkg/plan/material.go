// Material configuration and derived compensation properties
//
// Copyright (C) 2026  mrowdy
//
// This file may be distributed under the terms of the GNU GPLv3 license.

package plan

import (
	"fmt"

	"github.com/mrowdy/plasm-challenge-extrusion-planer/pkg/errors"
)

// MaterialConfig holds material physical properties, kept separate from
// equipment configuration.
//
// Shore hardness is measured on the Shore A durometer scale. Lower values
// denote softer materials (Shore 30 is very soft TPU), higher values harder
// ones (Shore 75 is rigid PLA). Soft materials respond to pressure changes
// more slowly and need more aggressive compensation.
type MaterialConfig struct {
	// Name is a label with no semantic effect on planning.
	Name string

	// ShoreHardness is the Shore A hardness value in [0, 100].
	ShoreHardness float64
}

// Validate checks that the shore hardness is within the durometer scale.
func (m MaterialConfig) Validate() error {
	if m.ShoreHardness < 0 || m.ShoreHardness > 100 {
		return errors.InvalidConfigurationError("shore_hardness",
			fmt.Sprintf("must be between 0 and 100, got %g", m.ShoreHardness))
	}
	return nil
}

// CompensationFactor derives the pressure compensation factor from Shore
// hardness: 1.0 + (1.0 - shore/100) * 0.8, monotonically decreasing in
// hardness.
//
//	Shore 100 -> 1.0  (no additional compensation)
//	Shore  75 -> 1.2  (rigid PLA)
//	Shore  30 -> 1.56 (soft TPU)
//	Shore   0 -> 1.8  (maximum compensation)
func (m MaterialConfig) CompensationFactor() float64 {
	return 1.0 + (1.0-m.ShoreHardness/100.0)*0.8
}

// Pressure compensation strategies
//
// Copyright (C) 2026  mrowdy
//
// This file may be distributed under the terms of the GNU GPLv3 license.

package pressure

import (
	"fmt"

	"github.com/mrowdy/plasm-challenge-extrusion-planer/pkg/errors"
	"github.com/mrowdy/plasm-challenge-extrusion-planer/pkg/plan"
)

// Strategy selects how the post-peak compensation factor is derived from the
// pressure state. A strategy is fixed for a whole planning pass; variants are
// never mixed mid-sequence.
type Strategy int

const (
	// StrategyMaterialFactor derives the factor from Shore hardness alone.
	// Constant per material, cheap, least accurate near flow transitions.
	StrategyMaterialFactor Strategy = iota

	// StrategyPressureLevel derives the factor from the live pressure level
	// alone. Intentionally naive: material softness is not modeled here.
	StrategyPressureLevel

	// StrategyCombined scales the hotend responsiveness ratio by the
	// material factor and the current pressure level. Recommended default:
	// it captures both static (hotend+material) and dynamic (recent flow
	// history) effects.
	StrategyCombined
)

// DefaultStrategy is the strategy used when none is specified.
const DefaultStrategy = StrategyCombined

func (s Strategy) String() string {
	switch s {
	case StrategyMaterialFactor:
		return "material_factor"
	case StrategyPressureLevel:
		return "pressure_level"
	case StrategyCombined:
		return "combined"
	default:
		return "unknown"
	}
}

// ParseStrategy converts a strategy name to a Strategy value.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "material_factor":
		return StrategyMaterialFactor, nil
	case "pressure_level":
		return StrategyPressureLevel, nil
	case "combined":
		return StrategyCombined, nil
	default:
		return 0, errors.InvalidConfigurationError("strategy",
			fmt.Sprintf("unknown compensation strategy %q", name))
	}
}

// Factor returns the multiplicative derating for the given pressure level
// snapshot. The result is always >= 0; values at or below 1.0 mean no
// slowdown once passed through the planner's max(1, factor) derating.
//
// StrategyCombined equals (response_time / ReferenceResponseTime) *
// material_factor at full pressure and decays smoothly toward 1.0 as the
// pressure level subsides.
func (s Strategy) Factor(level float64, hotend plan.HotendConfig, material plan.MaterialConfig) float64 {
	if level < 0 {
		level = 0
	} else if level > 1 {
		level = 1
	}
	switch s {
	case StrategyMaterialFactor:
		return material.CompensationFactor()
	case StrategyPressureLevel:
		return 1.0 + level
	case StrategyCombined:
		base := hotend.ResponseTime / ReferenceResponseTime * material.CompensationFactor()
		return 1.0 + (base-1.0)*level
	default:
		return 1.0
	}
}

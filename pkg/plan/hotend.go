// Hotend equipment configuration
//
// Copyright (C) 2026  mrowdy
//
// This file may be distributed under the terms of the GNU GPLv3 license.

package plan

import (
	"fmt"

	"github.com/mrowdy/plasm-challenge-extrusion-planer/pkg/errors"
)

// HotendConfig holds physical hotend characteristics, kept separate from
// material properties.
type HotendConfig struct {
	// MaxVolumetricFlow is the hard flow ceiling in mm³/s. Flow above this
	// rate causes under-extrusion.
	MaxVolumetricFlow float64

	// ResponseTime is the time constant of the hotend's pressure/thermal
	// lag in seconds. Larger values mean the hotend equilibrates more
	// slowly to a new flow demand.
	ResponseTime float64
}

// Validate checks that the hotend parameters are physically valid.
func (h HotendConfig) Validate() error {
	if h.MaxVolumetricFlow <= 0 {
		return errors.InvalidConfigurationError("max_volumetric_flow",
			fmt.Sprintf("must be positive, got %g", h.MaxVolumetricFlow))
	}
	if h.ResponseTime <= 0 {
		return errors.InvalidConfigurationError("response_time",
			fmt.Sprintf("must be positive, got %g", h.ResponseTime))
	}
	return nil
}

// Volumetric flow calculation and limit checking
//
// Copyright (C) 2026  mrowdy
//
// This file may be distributed under the terms of the GNU GPLv3 license.

// Package flow computes instantaneous volumetric flow for toolpath segments
// and checks it against hotend limits.
package flow

import (
	"github.com/mrowdy/plasm-challenge-extrusion-planer/pkg/plan"
)

// VolumetricFlow returns the segment's volumetric flow rate in mm³/s.
// It fails with an INVALID_SEGMENT error for segments with non-positive
// length or feed rate.
func VolumetricFlow(s plan.Segment) (float64, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	return s.ExtrusionRate(), nil
}

// ExceedsLimit reports whether the segment's flow is above the hotend's
// hard flow ceiling.
func ExceedsLimit(s plan.Segment, hotend plan.HotendConfig) (bool, error) {
	rate, err := VolumetricFlow(s)
	if err != nil {
		return false, err
	}
	return rate > hotend.MaxVolumetricFlow, nil
}

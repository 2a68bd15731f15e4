// Built-in hotend and material presets
//
// Copyright (C) 2026  mrowdy
//
// This file may be distributed under the terms of the GNU GPLv3 license.

// Package profiles provides named hotend and material presets, and catalog
// files that extend them. Profiles only construct the planner's value types;
// they impose no contract of their own on the core.
package profiles

import (
	"fmt"

	"github.com/mrowdy/plasm-challenge-extrusion-planer/pkg/errors"
	"github.com/mrowdy/plasm-challenge-extrusion-planer/pkg/plan"
)

// HotendProfile names a class of hotend with typical specifications.
type HotendProfile string

const (
	// HotendStandard is a conventional hotend with moderate flow capacity
	// and a slower thermal response.
	HotendStandard HotendProfile = "standard"

	// HotendFastResponse is a high-performance hotend with quick thermal
	// adjustment.
	HotendFastResponse HotendProfile = "fast_response"

	// HotendInduction uses induction heating: highest flow, near
	// instantaneous response.
	HotendInduction HotendProfile = "induction"
)

// MaterialType names a common filament with a characteristic Shore A
// hardness.
type MaterialType string

const (
	MaterialPLA        MaterialType = "pla"
	MaterialPETG       MaterialType = "petg"
	MaterialTPUShore95 MaterialType = "tpu_shore_95"
	MaterialTPUShore60 MaterialType = "tpu_shore_60"
	MaterialTPUShore30 MaterialType = "tpu_shore_30"
)

// Hotend returns the configuration for a predefined hotend profile.
func Hotend(profile HotendProfile) (plan.HotendConfig, error) {
	switch profile {
	case HotendStandard:
		return plan.HotendConfig{MaxVolumetricFlow: 12.0, ResponseTime: 0.08}, nil
	case HotendFastResponse:
		return plan.HotendConfig{MaxVolumetricFlow: 15.0, ResponseTime: 0.03}, nil
	case HotendInduction:
		return plan.HotendConfig{MaxVolumetricFlow: 18.0, ResponseTime: 0.01}, nil
	default:
		return plan.HotendConfig{}, errors.ProfileCatalogError(string(profile),
			"unknown hotend profile")
	}
}

// Material returns the configuration for a predefined material type.
func Material(material MaterialType) (plan.MaterialConfig, error) {
	switch material {
	case MaterialPLA:
		return plan.MaterialConfig{Name: "PLA", ShoreHardness: 75}, nil
	case MaterialPETG:
		return plan.MaterialConfig{Name: "PETG", ShoreHardness: 70}, nil
	case MaterialTPUShore95:
		return plan.MaterialConfig{Name: "TPU Shore 95", ShoreHardness: 95}, nil
	case MaterialTPUShore60:
		return plan.MaterialConfig{Name: "TPU Shore 60", ShoreHardness: 60}, nil
	case MaterialTPUShore30:
		return plan.MaterialConfig{Name: "TPU Shore 30", ShoreHardness: 30}, nil
	default:
		return plan.MaterialConfig{}, errors.ProfileCatalogError(string(material),
			"unknown material type")
	}
}

// HotendProfiles lists the built-in hotend profile names.
func HotendProfiles() []HotendProfile {
	return []HotendProfile{HotendStandard, HotendFastResponse, HotendInduction}
}

// MaterialTypes lists the built-in material type names.
func MaterialTypes() []MaterialType {
	return []MaterialType{
		MaterialPLA, MaterialPETG,
		MaterialTPUShore95, MaterialTPUShore60, MaterialTPUShore30,
	}
}

// mustHotend resolves a built-in profile that is known to exist.
func mustHotend(profile HotendProfile) plan.HotendConfig {
	h, err := Hotend(profile)
	if err != nil {
		panic(fmt.Sprintf("builtin hotend %q missing: %v", profile, err))
	}
	return h
}

// mustMaterial resolves a built-in material that is known to exist.
func mustMaterial(material MaterialType) plan.MaterialConfig {
	m, err := Material(material)
	if err != nil {
		panic(fmt.Sprintf("builtin material %q missing: %v", material, err))
	}
	return m
}

// Hotend pressure buildup modeling
//
// Copyright (C) 2026  mrowdy
//
// This file may be distributed under the terms of the GNU GPLv3 license.

// Package pressure models melt-chamber pressure buildup and decay and derives
// feed-rate compensation factors from it.
//
// The pressure level is a normalized scalar abstraction of accumulated
// mechanical/thermal lag, not a physical pressure measurement.
package pressure

import (
	"github.com/mrowdy/plasm-challenge-extrusion-planer/pkg/plan"
)

// ReferenceResponseTime is the response time of a reference standard hotend
// in seconds, used to normalize hotend responsiveness.
const ReferenceResponseTime = 0.05

// Threshold is the pressure level above which post-peak compensation is
// applied.
const Threshold = 0.8

// Model tracks how far current flow has pushed the hotend away from steady
// state and how fast it decays back. The level is a single scalar in
// [0, 1]: 0 means no pressure (cold start), 1 means the hotend is saturated.
//
// A model instance belongs to exactly one planning pass; it is not safe for
// concurrent use and must not be shared across passes.
type Model struct {
	maxFlow float64
	gain    float64
	level   float64
}

// NewModel creates a pressure model for the given hotend, starting at zero
// pressure. The per-segment step gain is ReferenceResponseTime divided by
// the hotend's response time, capped at 1.0 so very fast hotends cannot
// overshoot the target.
func NewModel(hotend plan.HotendConfig) *Model {
	gain := ReferenceResponseTime / hotend.ResponseTime
	if gain > 1.0 {
		gain = 1.0
	}
	return &Model{
		maxFlow: hotend.MaxVolumetricFlow,
		gain:    gain,
	}
}

// Update advances the model one segment, moving the level toward the target
// pressure implied by the given volumetric flow rate. The target is the flow
// as a fraction of the hotend's capacity, clamped to [0, 1]; the level
// approaches it as a single-step exponential with the hotend's gain.
func (m *Model) Update(flowRate float64) {
	target := flowRate / m.maxFlow
	if target < 0 {
		target = 0
	} else if target > 1 {
		target = 1
	}
	m.level += (target - m.level) * m.gain
	if m.level < 0 {
		m.level = 0
	} else if m.level > 1 {
		m.level = 1
	}
}

// Level returns the current pressure level in [0, 1].
func (m *Model) Level() float64 {
	return m.level
}

// Reset returns the model to zero pressure.
func (m *Model) Reset() {
	m.level = 0
}

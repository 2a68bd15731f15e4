// Lookahead peak detection for preemptive slowdown
//
// Copyright (C) 2026  mrowdy
//
// This file may be distributed under the terms of the GNU GPLv3 license.

// Package lookahead detects upcoming volumetric flow peaks within a fixed
// window of future segments so the planner can slow down before reaching
// them.
package lookahead

import (
	"fmt"

	"github.com/mrowdy/plasm-challenge-extrusion-planer/pkg/errors"
)

// HighFlowThresholdRatio is the fraction of the hotend's flow ceiling above
// which an upcoming segment counts as a peak.
const HighFlowThresholdRatio = 0.8

// MaxPreemptiveCut bounds how much of the feed rate a full-strength
// preemption may remove, preventing over-aggressive slowdown far from the
// actual peak.
const MaxPreemptiveCut = 0.5

// DefaultWindow is the number of upcoming segments scanned when no window is
// configured.
const DefaultWindow = 5

// Scanner scans a fixed-size window of upcoming segment flows for peaks.
// A zero window disables preemption entirely.
type Scanner struct {
	window         int
	thresholdRatio float64
}

// NewScanner creates a scanner over the given window size.
func NewScanner(window int) (*Scanner, error) {
	if window < 0 {
		return nil, errors.InvalidConfigurationError("lookahead_window",
			fmt.Sprintf("must be non-negative, got %d", window))
	}
	return &Scanner{window: window, thresholdRatio: HighFlowThresholdRatio}, nil
}

// Window returns the configured window size.
func (s *Scanner) Window() int {
	return s.window
}

// Threshold returns the flow rate above which a segment qualifies as a peak
// for the given hotend ceiling.
func (s *Scanner) Threshold(maxFlow float64) float64 {
	return maxFlow * s.thresholdRatio
}

// Strength examines the flow rates of the upcoming segments (at most the
// configured window; a shorter slice means the sequence ends inside the
// window) and returns the preemption strength in [0, 1]. The strength grows
// as the nearest qualifying peak gets closer: (window - distance + 1) /
// window, where distance is 1 for the immediately following segment. It is
// 0 when no peak is in the window or the window is disabled.
func (s *Scanner) Strength(upcoming []float64, maxFlow float64) float64 {
	if s.window == 0 {
		return 0.0
	}
	threshold := s.Threshold(maxFlow)
	limit := len(upcoming)
	if limit > s.window {
		limit = s.window
	}
	for i := 0; i < limit; i++ {
		if upcoming[i] > threshold {
			distance := i + 1
			return float64(s.window-distance+1) / float64(s.window)
		}
	}
	return 0.0
}

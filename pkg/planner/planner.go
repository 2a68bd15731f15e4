// End-to-end extrusion planning pipeline
//
// Copyright (C) 2026  mrowdy
//
// This file may be distributed under the terms of the GNU GPLv3 license.

// Package planner combines lookahead preemption, pressure-based recovery and
// the hard flow clamp into a single forward pass over a segment sequence.
//
// The pipeline only ever slows segments down. Output segments keep their
// length and extrusion; input segments are never modified.
package planner

import (
	"fmt"

	"github.com/mrowdy/plasm-challenge-extrusion-planer/pkg/errors"
	"github.com/mrowdy/plasm-challenge-extrusion-planer/pkg/flow"
	"github.com/mrowdy/plasm-challenge-extrusion-planer/pkg/lookahead"
	"github.com/mrowdy/plasm-challenge-extrusion-planer/pkg/plan"
	"github.com/mrowdy/plasm-challenge-extrusion-planer/pkg/pressure"
)

// Planner processes segment sequences for a hotend/material combination.
// The lookahead window and compensation strategy are fixed per planner; a
// fresh pressure model is created for every Process call, so one planner may
// serve concurrent calls for unrelated jobs.
type Planner struct {
	scanner  *lookahead.Scanner
	strategy pressure.Strategy
}

// New creates a planner with the given lookahead window and compensation
// strategy. A window of 0 disables preemption; a negative window is an
// INVALID_CONFIGURATION error.
func New(window int, strategy pressure.Strategy) (*Planner, error) {
	scanner, err := lookahead.NewScanner(window)
	if err != nil {
		return nil, err
	}
	return &Planner{scanner: scanner, strategy: strategy}, nil
}

// NewDefault creates a planner with the default window and strategy.
func NewDefault() *Planner {
	p, err := New(lookahead.DefaultWindow, pressure.DefaultStrategy)
	if err != nil {
		// DefaultWindow is a valid constant; this cannot fail.
		panic(err)
	}
	return p
}

// Window returns the configured lookahead window size.
func (p *Planner) Window() int {
	return p.scanner.Window()
}

// Strategy returns the configured compensation strategy.
func (p *Planner) Strategy() pressure.Strategy {
	return p.strategy
}

// Process runs the planning pipeline over the segment sequence and returns a
// new sequence of the same length and order. Only feed rates change, and only
// downward. The whole call fails on the first malformed segment or on
// out-of-range hotend/material parameters; no partial result is returned.
func (p *Planner) Process(segments []plan.Segment, hotend plan.HotendConfig, material plan.MaterialConfig) ([]plan.Segment, error) {
	if err := hotend.Validate(); err != nil {
		return nil, err
	}
	if err := material.Validate(); err != nil {
		return nil, err
	}

	n := len(segments)
	if n == 0 {
		return []plan.Segment{}, nil
	}

	// Flow rates of the unadjusted input; the lookahead window scans
	// segments the pass has not reached yet.
	flows := make([]float64, n)
	for i, seg := range segments {
		rate, err := flow.VolumetricFlow(seg)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInvalidSegment,
				fmt.Sprintf("segment %d", i))
		}
		flows[i] = rate
	}

	model := pressure.NewModel(hotend)
	threshold := p.scanner.Threshold(hotend.MaxVolumetricFlow)
	out := make([]plan.Segment, 0, n)

	for i, seg := range segments {
		feed := seg.FeedRate

		// Compensation reacts to the pressure accumulated by prior
		// segments; snapshot the level before this segment's update.
		levelBefore := model.Level()

		// Preemptive slowdown applies ahead of a peak, never inside
		// one (the clamp owns in-peak segments) and never to travel
		// moves.
		if seg.Extrusion > 0 && flows[i] <= threshold {
			end := i + 1 + p.scanner.Window()
			if end > n {
				end = n
			}
			strength := p.scanner.Strength(flows[i+1:end], hotend.MaxVolumetricFlow)
			feed = seg.FeedRate * (1.0 - strength*lookahead.MaxPreemptiveCut)
		}

		// The pressure trajectory sees the already-preempted flow.
		model.Update(seg.WithFeedRate(feed).ExtrusionRate())

		if seg.Extrusion > 0 && levelBefore > pressure.Threshold {
			factor := p.strategy.Factor(levelBefore, hotend, material)
			if factor > 1.0 {
				feed /= factor
			}
		}

		// Hard safety clamp: the final authority, regardless of
		// strategy or pressure state.
		out = append(out, limitFeedRate(seg.WithFeedRate(feed), hotend))
	}

	return out, nil
}

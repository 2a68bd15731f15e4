// Flow analysis reporting
//
// Copyright (C) 2026  mrowdy
//
// This file may be distributed under the terms of the GNU GPLv3 license.

// Package report prepares before/after planning analyses: per-segment feed
// and flow series on a shared timeline, a replayed pressure trace and summary
// statistics. It only consumes the planner's value types.
package report

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/mrowdy/plasm-challenge-extrusion-planer/pkg/errors"
	"github.com/mrowdy/plasm-challenge-extrusion-planer/pkg/plan"
	"github.com/mrowdy/plasm-challenge-extrusion-planer/pkg/pressure"
)

// Row is one segment's before/after data point.
type Row struct {
	Index         int
	StartTime     float64 // seconds from sequence start, adjusted timeline
	Length        float64
	Extrusion     float64
	OriginalFeed  float64
	AdjustedFeed  float64
	OriginalFlow  float64
	AdjustedFlow  float64
	PressureLevel float64 // model level after this segment, adjusted replay
	Changed       bool
}

// Summary aggregates a planning run.
type Summary struct {
	Segments         int
	ChangedSegments  int
	FlowLimit        float64
	PeakFlowOriginal float64
	PeakFlowAdjusted float64
	MeanFlowOriginal float64
	MeanFlowAdjusted float64
	TotalTimeOrig    float64 // seconds
	TotalTimeAdj     float64 // seconds
}

// TimeCost returns the print-time increase caused by the adjustments as a
// fraction of the original time.
func (s Summary) TimeCost() float64 {
	if s.TotalTimeOrig == 0 {
		return 0
	}
	return (s.TotalTimeAdj - s.TotalTimeOrig) / s.TotalTimeOrig
}

// Analysis holds a full before/after comparison of a planning run.
type Analysis struct {
	Rows    []Row
	Summary Summary
}

// Analyze compares an original segment sequence with its planned counterpart
// for the given hotend. The pressure trace is replayed over the adjusted
// segments with a fresh model. Sequences must be non-empty and of equal
// length.
func Analyze(original, adjusted []plan.Segment, hotend plan.HotendConfig) (*Analysis, error) {
	if err := hotend.Validate(); err != nil {
		return nil, err
	}
	if len(original) == 0 {
		return nil, errors.InvalidConfigurationError("segments",
			"cannot analyze an empty sequence")
	}
	if len(original) != len(adjusted) {
		return nil, errors.InvalidConfigurationError("segments",
			"original and adjusted sequences differ in length")
	}

	n := len(original)
	origFlows := make([]float64, n)
	adjFlows := make([]float64, n)
	model := pressure.NewModel(hotend)
	rows := make([]Row, n)

	elapsed := 0.0
	origTime := 0.0
	changed := 0
	for i := range original {
		if err := original[i].Validate(); err != nil {
			return nil, err
		}
		if err := adjusted[i].Validate(); err != nil {
			return nil, err
		}
		origFlows[i] = original[i].ExtrusionRate()
		adjFlows[i] = adjusted[i].ExtrusionRate()
		model.Update(adjFlows[i])

		rows[i] = Row{
			Index:         i,
			StartTime:     elapsed,
			Length:        adjusted[i].Length,
			Extrusion:     adjusted[i].Extrusion,
			OriginalFeed:  original[i].FeedRate,
			AdjustedFeed:  adjusted[i].FeedRate,
			OriginalFlow:  origFlows[i],
			AdjustedFlow:  adjFlows[i],
			PressureLevel: model.Level(),
			Changed:       math.Abs(original[i].FeedRate-adjusted[i].FeedRate) > 1e-9,
		}
		if rows[i].Changed {
			changed++
		}
		elapsed += adjusted[i].TravelTime()
		origTime += original[i].TravelTime()
	}

	return &Analysis{
		Rows: rows,
		Summary: Summary{
			Segments:         n,
			ChangedSegments:  changed,
			FlowLimit:        hotend.MaxVolumetricFlow,
			PeakFlowOriginal: floats.Max(origFlows),
			PeakFlowAdjusted: floats.Max(adjFlows),
			MeanFlowOriginal: stat.Mean(origFlows, nil),
			MeanFlowAdjusted: stat.Mean(adjFlows, nil),
			TotalTimeOrig:    origTime,
			TotalTimeAdj:     elapsed,
		},
	}, nil
}

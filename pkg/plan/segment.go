// Toolpath segment value type for extrusion planning
//
// Copyright (C) 2026  mrowdy
//
// This file may be distributed under the terms of the GNU GPLv3 license.

// Package plan defines the immutable value types shared by the extrusion
// planning pipeline: toolpath segments, hotend equipment parameters and
// material properties. All types are plain value objects; transforms always
// construct new values instead of mutating inputs.
package plan

import (
	"fmt"

	"github.com/mrowdy/plasm-challenge-extrusion-planer/pkg/errors"
)

// SecondsPerMinute converts feed rates (mm/min) to durations in seconds.
const SecondsPerMinute = 60.0

// Segment represents a single linear toolpath move.
type Segment struct {
	// Length is the move length in millimeters. Must be positive.
	Length float64

	// FeedRate is the movement speed in millimeters per minute. Must be
	// positive.
	FeedRate float64

	// Extrusion is the material volume deposited over the move in cubic
	// millimeters. Zero denotes a travel move.
	Extrusion float64
}

// NewSegment constructs a validated segment.
func NewSegment(length, feedRate, extrusion float64) (Segment, error) {
	s := Segment{Length: length, FeedRate: feedRate, Extrusion: extrusion}
	if err := s.Validate(); err != nil {
		return Segment{}, err
	}
	return s, nil
}

// Validate checks that the segment is physically meaningful.
func (s Segment) Validate() error {
	if s.Length <= 0 {
		return errors.InvalidSegmentError(fmt.Sprintf("length must be positive, got %g", s.Length))
	}
	if s.FeedRate <= 0 {
		return errors.InvalidSegmentError(fmt.Sprintf("feed_rate must be positive, got %g", s.FeedRate))
	}
	if s.Extrusion < 0 {
		return errors.InvalidSegmentError(fmt.Sprintf("extrusion must be non-negative, got %g", s.Extrusion))
	}
	return nil
}

// TravelTime returns the time to traverse this segment in seconds.
// Only meaningful for validated segments (FeedRate > 0).
func (s Segment) TravelTime() float64 {
	return s.Length / s.FeedRate * SecondsPerMinute
}

// ExtrusionRate returns the volumetric extrusion rate in mm³/s.
// Travel moves extrude nothing and report a rate of zero.
func (s Segment) ExtrusionRate() float64 {
	if s.Extrusion == 0 {
		return 0.0
	}
	return s.Extrusion / s.TravelTime()
}

// WithFeedRate returns a copy of the segment with the given feed rate.
// Length and extrusion are preserved; the receiver is not modified.
func (s Segment) WithFeedRate(feedRate float64) Segment {
	return Segment{Length: s.Length, FeedRate: feedRate, Extrusion: s.Extrusion}
}

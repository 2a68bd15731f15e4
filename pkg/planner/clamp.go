// Hard volumetric flow clamp
//
// Copyright (C) 2026  mrowdy
//
// This file may be distributed under the terms of the GNU GPLv3 license.

package planner

import (
	"github.com/mrowdy/plasm-challenge-extrusion-planer/pkg/plan"
)

// limitFeedRate scales a segment's feed rate down so its resulting flow does
// not exceed the hotend ceiling. Travel moves and segments already within the
// limit pass through unchanged.
func limitFeedRate(s plan.Segment, hotend plan.HotendConfig) plan.Segment {
	if s.Extrusion == 0 {
		return s
	}
	if s.ExtrusionRate() <= hotend.MaxVolumetricFlow {
		return s
	}
	// flow = extrusion * feed / (length * 60); solve for feed at the limit.
	maxFeed := hotend.MaxVolumetricFlow * s.Length * plan.SecondsPerMinute / s.Extrusion
	return s.WithFeedRate(maxFeed)
}

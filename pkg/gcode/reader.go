// G-code to segment-list conversion
//
// Copyright (C) 2026  mrowdy
//
// This file may be distributed under the terms of the GNU GPLv3 license.

package gcode

import (
	"bufio"
	"io"
	"math"
	"os"

	"github.com/mrowdy/plasm-challenge-extrusion-planer/pkg/errors"
	"github.com/mrowdy/plasm-challenge-extrusion-planer/pkg/plan"
)

// DefaultFilamentDiameter is the filament diameter assumed when none is
// configured, in millimeters.
const DefaultFilamentDiameter = 1.75

// Options configures segment extraction.
type Options struct {
	// FilamentDiameter converts E-axis filament lengths to deposited
	// volume. Defaults to DefaultFilamentDiameter when zero.
	FilamentDiameter float64
}

// machine tracks the G-code coordinate system state while scanning moves.
type machine struct {
	absoluteCoord   bool       // G90 (true) / G91 (false)
	absoluteExtrude bool       // M82 (true) / M83 (false)
	position        [4]float64 // Current X, Y, Z, E position
	basePosition    [4]float64 // G92 offset (position = base + gcode)
	feedRate        float64    // Feedrate in mm/min
	filamentArea    float64    // Cross section for E -> volume, mm²
}

// ReadFile extracts toolpath segments from a G-code file.
func ReadFile(path string, opts Options) ([]plan.Segment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrGCodeParse, "opening gcode file")
	}
	defer f.Close()
	return Read(f, opts)
}

// Read extracts toolpath segments from a stream of G-code lines. Moves
// without XY/Z travel (pure retracts and primes) carry no time dimension and
// are skipped; unknown commands are ignored like a printer would ignore
// host-side metadata.
func Read(r io.Reader, opts Options) ([]plan.Segment, error) {
	diameter := opts.FilamentDiameter
	if diameter == 0 {
		diameter = DefaultFilamentDiameter
	}
	if diameter < 0 {
		return nil, errors.InvalidConfigurationError("filament_diameter",
			"must be positive")
	}

	m := &machine{
		absoluteCoord:   true,
		absoluteExtrude: true,
		filamentArea:    math.Pi * diameter * diameter / 4.0,
	}

	var segments []plan.Segment
	s := bufio.NewScanner(r)
	lineNo := 0
	for s.Scan() {
		lineNo++
		cmd, err := parseLine(s.Text())
		if err != nil {
			return nil, errors.GCodeParseError(lineNo, s.Text(), err.Error())
		}
		if cmd == nil {
			continue
		}
		seg, emit, err := m.exec(cmd)
		if err != nil {
			return nil, errors.GCodeParseError(lineNo, s.Text(), err.Error())
		}
		if emit {
			segments = append(segments, seg)
		}
	}
	if err := s.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrGCodeParse, "reading gcode stream")
	}
	return segments, nil
}

func (m *machine) exec(cmd *command) (plan.Segment, bool, error) {
	switch cmd.Name {
	case "G0", "G1":
		return m.execMove(cmd)
	case "G90":
		m.absoluteCoord = true
	case "G91":
		m.absoluteCoord = false
	case "M82":
		m.absoluteExtrude = true
	case "M83":
		m.absoluteExtrude = false
	case "G92":
		if err := m.execSetPosition(cmd); err != nil {
			return plan.Segment{}, false, err
		}
	case "G28":
		// Homing: reset XYZ, keep E.
		e := m.position[3]
		m.position = [4]float64{0, 0, 0, e}
		be := m.basePosition[3]
		m.basePosition = [4]float64{0, 0, 0, be}
	default:
		// Temperatures, fans, comments-as-commands: not move-relevant.
	}
	return plan.Segment{}, false, nil
}

// execMove handles G0/G1 and emits a segment when the move covers distance.
func (m *machine) execMove(cmd *command) (plan.Segment, bool, error) {
	start := m.position
	axes := []struct {
		key      string
		idx      int
		absolute bool
	}{
		{"X", 0, m.absoluteCoord},
		{"Y", 1, m.absoluteCoord},
		{"Z", 2, m.absoluteCoord},
		{"E", 3, m.absoluteExtrude},
	}
	for _, ax := range axes {
		if v, ok, err := cmd.floatArg(ax.key); err != nil {
			return plan.Segment{}, false, err
		} else if ok {
			if ax.absolute {
				m.position[ax.idx] = v + m.basePosition[ax.idx]
			} else {
				m.position[ax.idx] += v
			}
		}
	}
	if f, ok, err := cmd.floatArg("F"); err != nil {
		return plan.Segment{}, false, err
	} else if ok && f > 0 {
		m.feedRate = f
	}

	dx := m.position[0] - start[0]
	dy := m.position[1] - start[1]
	dz := m.position[2] - start[2]
	length := math.Sqrt(dx*dx + dy*dy + dz*dz)
	if length == 0 {
		// Retract/prime or feedrate-only line.
		return plan.Segment{}, false, nil
	}
	if m.feedRate <= 0 {
		return plan.Segment{}, false, errors.InvalidSegmentError(
			"move before any feedrate was set")
	}

	extrusion := 0.0
	if de := m.position[3] - start[3]; de > 0 {
		extrusion = de * m.filamentArea
	}
	seg, err := plan.NewSegment(length, m.feedRate, extrusion)
	if err != nil {
		return plan.Segment{}, false, err
	}
	return seg, true, nil
}

// execSetPosition handles G92 - set position offset.
func (m *machine) execSetPosition(cmd *command) error {
	for _, ax := range []struct {
		key string
		idx int
	}{{"X", 0}, {"Y", 1}, {"Z", 2}, {"E", 3}} {
		if v, ok, err := cmd.floatArg(ax.key); err != nil {
			return err
		} else if ok {
			// G92 sets the offset so the current position reads v.
			m.basePosition[ax.idx] = m.position[ax.idx] - v
		}
	}
	return nil
}

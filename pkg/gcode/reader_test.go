package gcode

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrowdy/plasm-challenge-extrusion-planer/pkg/errors"
	"github.com/mrowdy/plasm-challenge-extrusion-planer/pkg/plan"
)

// filament cross section for the default 1.75 mm diameter
var area = math.Pi * 1.75 * 1.75 / 4.0

func read(t *testing.T, program string) []plan.Segment {
	t.Helper()
	segs, err := Read(strings.NewReader(program), Options{})
	require.NoError(t, err)
	return segs
}

func TestReadBasicMoves(t *testing.T) {
	program := `
; perimeter start
G90
M82
G92 E0
G1 X10 Y0 F600 E5
G1 X10 Y10 E10 ; feedrate persists
`
	segs := read(t, program)
	require.Len(t, segs, 2)

	assert.InDelta(t, 10.0, segs[0].Length, 1e-9)
	assert.Equal(t, 600.0, segs[0].FeedRate)
	assert.InDelta(t, 5.0*area, segs[0].Extrusion, 1e-9)

	assert.InDelta(t, 10.0, segs[1].Length, 1e-9)
	assert.Equal(t, 600.0, segs[1].FeedRate)
	assert.InDelta(t, 5.0*area, segs[1].Extrusion, 1e-9)
}

func TestReadRelativeModes(t *testing.T) {
	program := `
G91
M83
G1 X3 Y4 F1200 E2
G1 Z5
`
	segs := read(t, program)
	require.Len(t, segs, 2)

	assert.InDelta(t, 5.0, segs[0].Length, 1e-9) // 3-4-5 triangle
	assert.InDelta(t, 2.0*area, segs[0].Extrusion, 1e-9)

	// Z hop without E is a travel move.
	assert.InDelta(t, 5.0, segs[1].Length, 1e-9)
	assert.Zero(t, segs[1].Extrusion)
}

func TestReadRetractionsSkippedAndClamped(t *testing.T) {
	program := `
G90
M82
G92 E0
G1 X10 F600 E5
G1 E3           ; retract: no travel, no segment
G1 X20 E2       ; still below the retract start: travel, not negative volume
`
	segs := read(t, program)
	require.Len(t, segs, 2)
	assert.InDelta(t, 5.0*area, segs[0].Extrusion, 1e-9)
	assert.Zero(t, segs[1].Extrusion)
}

func TestReadFeedrateOnlyLine(t *testing.T) {
	program := `
G91
G1 F1800
G1 X10
`
	segs := read(t, program)
	require.Len(t, segs, 1)
	assert.Equal(t, 1800.0, segs[0].FeedRate)
}

func TestReadG92Offset(t *testing.T) {
	program := `
G90
M82
G1 X10 F600
G92 E0
G1 X20 E1.5
`
	segs := read(t, program)
	require.Len(t, segs, 2)
	assert.Zero(t, segs[0].Extrusion)
	assert.InDelta(t, 1.5*area, segs[1].Extrusion, 1e-9)
}

func TestReadIgnoresUnknownCommands(t *testing.T) {
	program := `
M104 S210
M140 S60
G28
(init done)
G91
G1 X10 F600
M107
`
	segs := read(t, program)
	require.Len(t, segs, 1)
}

func TestReadMoveWithoutFeedrate(t *testing.T) {
	_, err := Read(strings.NewReader("G91\nG1 X10\n"), Options{})
	assert.True(t, errors.Is(err, errors.ErrGCodeParse), "got %v", err)
}

func TestReadBadFloat(t *testing.T) {
	_, err := Read(strings.NewReader("G1 Xnope F600\n"), Options{})
	assert.True(t, errors.Is(err, errors.ErrGCodeParse), "got %v", err)
}

func TestReadCustomFilamentDiameter(t *testing.T) {
	segs, err := Read(strings.NewReader("G91\nM83\nG1 X10 F600 E1\n"),
		Options{FilamentDiameter: 2.85})
	require.NoError(t, err)
	require.Len(t, segs, 1)
	assert.InDelta(t, math.Pi*2.85*2.85/4.0, segs[0].Extrusion, 1e-9)
}

func TestReadEmptyProgram(t *testing.T) {
	segs, err := Read(strings.NewReader("; nothing but comments\n\n"), Options{})
	require.NoError(t, err)
	assert.Empty(t, segs)
}

package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrowdy/plasm-challenge-extrusion-planer/pkg/errors"
)

func TestNewSegmentValidation(t *testing.T) {
	tests := []struct {
		name      string
		length    float64
		feedRate  float64
		extrusion float64
		wantErr   bool
	}{
		{"valid extruding move", 15.0, 60.0, 0.3, false},
		{"valid travel move", 20.0, 120.0, 0.0, false},
		{"zero length", 0.0, 60.0, 0.3, true},
		{"negative length", -1.0, 60.0, 0.3, true},
		{"zero feed rate", 15.0, 0.0, 0.3, true},
		{"negative feed rate", 15.0, -60.0, 0.3, true},
		{"negative extrusion", 15.0, 60.0, -0.1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seg, err := NewSegment(tt.length, tt.feedRate, tt.extrusion)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsInvalidSegment(err), "want INVALID_SEGMENT, got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.length, seg.Length)
			assert.Equal(t, tt.feedRate, seg.FeedRate)
			assert.Equal(t, tt.extrusion, seg.Extrusion)
		})
	}
}

func TestSegmentTravelTime(t *testing.T) {
	// 15 mm at 60 mm/min takes 15 seconds.
	seg := Segment{Length: 15.0, FeedRate: 60.0, Extrusion: 0.3}
	assert.InDelta(t, 15.0, seg.TravelTime(), 1e-12)

	// 10 mm at 180 mm/min takes 10/3 seconds.
	seg = Segment{Length: 10.0, FeedRate: 180.0, Extrusion: 50.0}
	assert.InDelta(t, 10.0/3.0, seg.TravelTime(), 1e-12)
}

func TestSegmentExtrusionRate(t *testing.T) {
	seg := Segment{Length: 15.0, FeedRate: 60.0, Extrusion: 0.3}
	assert.InDelta(t, 0.02, seg.ExtrusionRate(), 1e-12)

	seg = Segment{Length: 10.0, FeedRate: 180.0, Extrusion: 50.0}
	assert.InDelta(t, 15.0, seg.ExtrusionRate(), 1e-12)

	travel := Segment{Length: 10.0, FeedRate: 180.0, Extrusion: 0.0}
	assert.Zero(t, travel.ExtrusionRate())
}

func TestSegmentWithFeedRate(t *testing.T) {
	seg := Segment{Length: 15.0, FeedRate: 60.0, Extrusion: 0.3}
	slower := seg.WithFeedRate(30.0)

	assert.Equal(t, 30.0, slower.FeedRate)
	assert.Equal(t, seg.Length, slower.Length)
	assert.Equal(t, seg.Extrusion, slower.Extrusion)
	// Receiver is a value; the original is untouched.
	assert.Equal(t, 60.0, seg.FeedRate)
}

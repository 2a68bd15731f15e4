package pressure

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mrowdy/plasm-challenge-extrusion-planer/pkg/plan"
)

func TestModelColdStart(t *testing.T) {
	m := NewModel(plan.HotendConfig{MaxVolumetricFlow: 12.0, ResponseTime: 0.05})
	assert.Zero(t, m.Level())
}

func TestModelReferenceHotendTracksTarget(t *testing.T) {
	// response_time == reference: gain 1, level jumps to the target.
	m := NewModel(plan.HotendConfig{MaxVolumetricFlow: 12.0, ResponseTime: 0.05})

	m.Update(6.0)
	assert.InDelta(t, 0.5, m.Level(), 1e-12)

	m.Update(12.0)
	assert.InDelta(t, 1.0, m.Level(), 1e-12)

	m.Update(0.0)
	assert.InDelta(t, 0.0, m.Level(), 1e-12)
}

func TestModelSlowHotendLags(t *testing.T) {
	// response_time 0.1: gain 0.5, level halves the distance each segment.
	m := NewModel(plan.HotendConfig{MaxVolumetricFlow: 12.0, ResponseTime: 0.1})

	m.Update(12.0)
	assert.InDelta(t, 0.5, m.Level(), 1e-12)

	m.Update(12.0)
	assert.InDelta(t, 0.75, m.Level(), 1e-12)

	m.Update(0.0)
	assert.InDelta(t, 0.375, m.Level(), 1e-12)
}

func TestModelFastHotendGainCapped(t *testing.T) {
	// response_time 0.01 would give gain 5; the cap prevents overshoot.
	m := NewModel(plan.HotendConfig{MaxVolumetricFlow: 12.0, ResponseTime: 0.01})

	m.Update(6.0)
	assert.InDelta(t, 0.5, m.Level(), 1e-12)

	m.Update(6.0)
	assert.InDelta(t, 0.5, m.Level(), 1e-12)
}

func TestModelTargetClamped(t *testing.T) {
	m := NewModel(plan.HotendConfig{MaxVolumetricFlow: 12.0, ResponseTime: 0.05})

	// Flow far above capacity saturates the target at 1.
	m.Update(100.0)
	assert.InDelta(t, 1.0, m.Level(), 1e-12)

	// Negative flow cannot drive the level below 0.
	m.Update(-5.0)
	assert.Zero(t, m.Level())
}

func TestModelLevelStaysInRange(t *testing.T) {
	m := NewModel(plan.HotendConfig{MaxVolumetricFlow: 12.0, ResponseTime: 0.02})
	flows := []float64{0, 30, 0, 15, 15, 0, 0, 120, 1, 0}
	for _, f := range flows {
		m.Update(f)
		level := m.Level()
		assert.GreaterOrEqual(t, level, 0.0)
		assert.LessOrEqual(t, level, 1.0)
	}
}

func TestModelReset(t *testing.T) {
	m := NewModel(plan.HotendConfig{MaxVolumetricFlow: 12.0, ResponseTime: 0.05})
	m.Update(12.0)
	assert.Positive(t, m.Level())

	m.Reset()
	assert.Zero(t, m.Level())
}

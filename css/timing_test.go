package css

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestTimingFunctionApply(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.css")
	defer teardown()
	//
	linear, ok := TimingKeyword("linear")
	if !ok {
		t.Fatalf("expected 'linear' to be a timing keyword")
	}
	for _, x := range []float64{0.1, 0.3, 0.5, 0.9} {
		assert.InDelta(t, x, linear.Apply(x), 1e-6)
	}
	steps := NewSteps(4, false)
	assert.Equal(t, 0.25, steps.Apply(0.3))
	assert.Equal(t, 0.0, steps.Apply(0.2))
	start := NewSteps(4, true)
	assert.Equal(t, 0.5, start.Apply(0.3))
	for _, tf := range []*TimingFunction{linear, steps, EaseOutCubic} {
		assert.Equal(t, 0.0, tf.Apply(-1))
		assert.Equal(t, 1.0, tf.Apply(1))
	}
}

func TestTimingFunctionIsMonotonic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.css")
	defer teardown()
	//
	ease, _ := TimingKeyword("ease-in-out")
	for _, tf := range []*TimingFunction{EaseOutCubic, ease} {
		last := 0.0
		for i := 1; i <= 100; i++ {
			y := tf.Apply(float64(i) / 100)
			if y < last-1e-6 {
				t.Errorf("%s not monotonic at %d: %g < %g", tf, i, y, last)
			}
			last = y
		}
	}
	// ease-out-cubic is ahead of linear progress
	assert.Greater(t, EaseOutCubic.Apply(0.5), 0.5)
}

func TestTimingFunctionPrintsKeywords(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.css")
	defer teardown()
	//
	assert.Equal(t, "ease-in", NewCubicBezier(0.42, 0, 1, 1).String())
	assert.Equal(t, "step-start", NewSteps(1, true).String())
	assert.Equal(t, "cubic-bezier(0.215, 0.61, 0.355, 1)", EaseOutCubic.String())
	assert.Panics(t, func() { NewCubicBezier(-1, 0, 1, 1) })
}

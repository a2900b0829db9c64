package adjustment

import (
	"testing"

	"github.com/npillmayer/csscascade/css"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestAdjustmentClampsToPage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.adjust")
	defer teardown()
	//
	adj := New(50, 0, 100, 1, 10, 20)
	fired := 0
	adj.ValueChanged().Connect(func() { fired++ })
	adj.SetValue(95)
	if adj.Value() != 80 {
		t.Errorf("expected value to be clamped to 80, is %g", adj.Value())
	}
	assert.Equal(t, 1, fired)
	adj.SetValue(80)
	assert.Equal(t, 1, fired, "no emission without change")
	adj.SetValue(-5)
	assert.Equal(t, 0.0, adj.Value())
	assert.Equal(t, 80.0, adj.CurrentMaximum())
}

func TestAdjustmentNormalizesBounds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.adjust")
	defer teardown()
	//
	adj := New(5, 10, 0, 1, 1, 30)
	assert.Equal(t, 10.0, adj.Upper())
	assert.Equal(t, 0.0, adj.PageSize())
	assert.Equal(t, 10.0, adj.Value())
	//
	adj = New(50, 0, 100, 1, 10, 0)
	changed, valueChanged := 0, 0
	adj.Changed().Connect(func() { changed++ })
	adj.ValueChanged().Connect(func() { valueChanged++ })
	adj.SetBounds(0, 40, 10)
	assert.Equal(t, 30.0, adj.Value())
	assert.Equal(t, 1, changed)
	assert.Equal(t, 1, valueChanged)
	adj.SetBounds(0, 40, 10)
	assert.Equal(t, 1, changed)
}

func TestAdjustmentIncrements(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.adjust")
	defer teardown()
	//
	adj := New(0, 0, 100, 5, 2, 0)
	assert.Equal(t, 2.0, adj.MinimumIncrement())
	adj.SetIncrements(0, 7)
	assert.Equal(t, 7.0, adj.MinimumIncrement())
	adj.SetIncrements(-3, 0)
	assert.Equal(t, 3.0, adj.MinimumIncrement())
	adj.SetIncrements(0, 0)
	assert.Greater(t, adj.MinimumIncrement(), 0.0)
	assert.Equal(t, 0.0, adj.StepIncrement())
	assert.Equal(t, 0.0, adj.PageIncrement())
}

func TestAdjustmentClampPage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.adjust")
	defer teardown()
	//
	adj := New(0, 0, 100, 1, 10, 20)
	adj.ClampPage(30, 45)
	assert.Equal(t, 25.0, adj.Value(), "end of range scrolled into view")
	adj.ClampPage(10, 15)
	assert.Equal(t, 10.0, adj.Value(), "start of range scrolled into view")
	adj.ClampPage(0, 60)
	assert.Equal(t, 0.0, adj.Value(), "start wins for ranges larger than a page")
}

func TestAdjustmentFillLevel(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.adjust")
	defer teardown()
	//
	adj := New(50, 0, 100, 1, 10, 0)
	adj.SetFillLevel(30)
	assert.Equal(t, 30.0, adj.Value())
	adj.SetValue(60)
	assert.Equal(t, 30.0, adj.Value())
	adj.SetRestrictToFillLevel(false)
	adj.SetValue(60)
	assert.Equal(t, 60.0, adj.Value())
	assert.Equal(t, 100.0, adj.CurrentMaximum())
	//
	paged := New(10, 0, 100, 1, 10, 20)
	assert.Equal(t, 80.0, paged.CurrentMaximum())
	paged.SetFillLevel(30)
	assert.Equal(t, 30.0, paged.CurrentMaximum(), "fill level below upper - page size")
	paged.SetFillLevel(90)
	assert.Equal(t, 80.0, paged.CurrentMaximum(), "fill level above upper - page size")
}

func TestAdjustmentAnimation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.adjust")
	defer teardown()
	//
	adj := New(0, 0, 100, 1, 10, 0)
	linear, _ := css.TimingKeyword("linear")
	adj.AnimateTo(200, linear)
	assert.True(t, adj.IsAnimating())
	assert.Equal(t, 100.0, adj.Target())
	adj.Tick(0.5)
	assert.InDelta(t, 50.0, adj.Value(), 1e-4)
	adj.Tick(1)
	assert.False(t, adj.IsAnimating())
	assert.Equal(t, 100.0, adj.Value())
	//
	adj.AnimateTo(0, nil)
	adj.Tick(0.5)
	assert.Less(t, adj.Value(), 50.0, "ease-out-cubic is ahead of linear progress")
	adj.SetValue(70)
	assert.False(t, adj.IsAnimating(), "setting the value stops an animation")
	adj.Tick(1)
	assert.Equal(t, 70.0, adj.Value())
}

package css

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestKeyframesSegment(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.css")
	defer teardown()
	//
	kf := NewKeyframes("pulse")
	kf.Set(1, PropertyOpacity, NewNumber(0))
	kf.Set(0.5, PropertyOpacity, NewNumber(1))
	kf.Set(0.5, PropertyMarginTop, NewLength(4, PX))
	kf.Set(0.5, PropertyOpacity, NewNumber(0.8)) // replaces
	assert.Equal(t, 2, kf.Len())
	assert.Equal(t, []PropertyID{PropertyMarginTop, PropertyOpacity}, kf.Properties())
	//
	base := NewNumber(0.4)
	start, end, p := kf.Segment(PropertyOpacity, 0.25, base)
	assert.True(t, start == Value(base), "offset 0 is taken from the base value")
	assert.Equal(t, "0.8", end.String())
	assert.InDelta(t, 0.5, p, 1e-9)
	start, end, p = kf.Segment(PropertyOpacity, 0.75, base)
	assert.Equal(t, "0.8", start.String())
	assert.Equal(t, "0", end.String())
	assert.InDelta(t, 0.5, p, 1e-9)
	start, end, _ = kf.Segment(PropertyMarginTop, 0.9, NewLength(0, PX))
	assert.Equal(t, "4px", start.String())
	assert.Equal(t, "0px", end.String())
	//
	c := kf.Compute(nil, nil, nil)
	assert.Equal(t, 2, c.Len())
	kf.Release()
	assert.Equal(t, 0, kf.Len())
	assert.True(t, strings.HasPrefix(c.String(), "@keyframes pulse"))
	assert.Panics(t, func() { kf.Set(1.5, PropertyOpacity, NewNumber(1)) })
}

func TestDumpShowsStructure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.css")
	defer teardown()
	//
	v := NewArray(NewCrossFade(0.5, NewImageURL("a"), NoneImage()), NewImageURL("b"))
	s := Dump(v)
	t.Logf("\n%s", s)
	assert.Contains(t, s, "array")
	assert.Contains(t, s, `url("a") (refs=1)`)
	assert.Contains(t, s, "none (static)")
}

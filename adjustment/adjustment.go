/*
Package adjustment implements a bounded numeric range value.

An Adjustment models the state behind scroll bars, sliders and spin
buttons: a value within [lower … upper − page size], step and page
increments and, optionally, a fill level restricting the reachable
values. Changes are announced through two signals: Changed for the
bounds and increments, ValueChanged for the value.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package adjustment

import (
	"math"

	"github.com/npillmayer/csscascade/css"
	"github.com/npillmayer/csscascade/signal"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cascade.adjust'.
func tracer() tracing.Trace {
	return tracing.Select("cascade.adjust")
}

// Adjustment is a value within a range.
type Adjustment struct {
	value, lower, upper float64
	step, page          float64
	pageSize            float64
	fillLevel           float64
	restrictToFill      bool
	anim                *animation
	changed             *signal.Signal
	valueChanged        *signal.Signal
}

type animation struct {
	source, target float64
	easing         *css.TimingFunction
}

// New creates an adjustment. Bounds are normalized so that
// lower ≤ upper and 0 ≤ pageSize ≤ upper − lower, then value is clamped.
func New(value, lower, upper, step, page, pageSize float64) *Adjustment {
	adj := &Adjustment{
		step:           step,
		page:           page,
		fillLevel:      math.MaxFloat64,
		restrictToFill: true,
		changed:        signal.New("adjustment-changed"),
		valueChanged:   signal.New("adjustment-value-changed"),
	}
	adj.lower, adj.upper, adj.pageSize = normalize(lower, upper, pageSize)
	adj.value = adj.clamp(value)
	return adj
}

func normalize(lower, upper, pageSize float64) (float64, float64, float64) {
	if upper < lower {
		tracer().Infof("adjustment upper %g below lower %g, using lower", upper, lower)
		upper = lower
	}
	pageSize = math.Max(0, math.Min(pageSize, upper-lower))
	return lower, upper, pageSize
}

// Changed is emitted when bounds or increments change.
func (adj *Adjustment) Changed() *signal.Signal { return adj.changed }

// ValueChanged is emitted when the value changes.
func (adj *Adjustment) ValueChanged() *signal.Signal { return adj.valueChanged }

// Value returns the current value. During an animation this is the
// intermediate value.
func (adj *Adjustment) Value() float64 { return adj.value }

// Lower returns the lower bound.
func (adj *Adjustment) Lower() float64 { return adj.lower }

// Upper returns the upper bound.
func (adj *Adjustment) Upper() float64 { return adj.upper }

// PageSize returns the size of the visible page.
func (adj *Adjustment) PageSize() float64 { return adj.pageSize }

// StepIncrement returns the step increment.
func (adj *Adjustment) StepIncrement() float64 { return adj.step }

// PageIncrement returns the page increment.
func (adj *Adjustment) PageIncrement() float64 { return adj.page }

// MinimumIncrement returns the smaller of step and page increment,
// ignoring increments of 0. If both are 0 it returns 1.
func (adj *Adjustment) MinimumIncrement() float64 {
	step, page := math.Abs(adj.step), math.Abs(adj.page)
	switch {
	case step != 0 && page != 0:
		return math.Min(step, page)
	case step != 0:
		return step
	case page != 0:
		return page
	}
	return 1
}

// CurrentMaximum is the largest value the adjustment may take: upper
// minus page size, limited by the fill level if restricted.
func (adj *Adjustment) CurrentMaximum() float64 {
	max := adj.upper - adj.pageSize
	if adj.restrictToFill {
		max = math.Min(max, adj.fillLevel)
	}
	return max
}

// clamp limits v to [lower … current maximum]. The lower bound wins if
// the range is empty.
func (adj *Adjustment) clamp(v float64) float64 {
	v = math.Min(v, adj.CurrentMaximum())
	return math.Max(v, adj.lower)
}

func (adj *Adjustment) setValue(v float64) {
	if v != adj.value {
		adj.value = v
		adj.valueChanged.Emit()
	}
}

// SetValue clamps v and makes it the new value. A running animation is
// stopped.
func (adj *Adjustment) SetValue(v float64) {
	adj.anim = nil
	adj.setValue(adj.clamp(v))
}

// SetBounds changes lower and upper bound and page size, re-clamping the
// value.
func (adj *Adjustment) SetBounds(lower, upper, pageSize float64) {
	lower, upper, pageSize = normalize(lower, upper, pageSize)
	if lower == adj.lower && upper == adj.upper && pageSize == adj.pageSize {
		return
	}
	adj.lower, adj.upper, adj.pageSize = lower, upper, pageSize
	v := adj.clamp(adj.value)
	moved := v != adj.value
	adj.value = v
	adj.changed.Emit()
	if moved {
		adj.valueChanged.Emit()
	}
}

// SetIncrements changes step and page increment.
func (adj *Adjustment) SetIncrements(step, page float64) {
	if step == adj.step && page == adj.page {
		return
	}
	adj.step, adj.page = step, page
	adj.changed.Emit()
}

// ClampPage moves the value so that [lower … upper] is visible within
// the current page. If the range is larger than the page, its start is
// made visible.
func (adj *Adjustment) ClampPage(lower, upper float64) {
	lower = math.Max(adj.lower, math.Min(lower, adj.upper))
	upper = math.Max(adj.lower, math.Min(upper, adj.upper))
	v := adj.value
	if v+adj.pageSize < upper {
		v = upper - adj.pageSize
	}
	if v > lower {
		v = lower
	}
	adj.anim = nil
	adj.setValue(v)
}

// FillLevel returns the fill level.
func (adj *Adjustment) FillLevel() float64 { return adj.fillLevel }

// SetFillLevel sets the level up to which a range is filled, e.g. the
// amount of a stream already buffered.
func (adj *Adjustment) SetFillLevel(level float64) {
	if level == adj.fillLevel {
		return
	}
	adj.fillLevel = level
	adj.changed.Emit()
	if adj.restrictToFill {
		adj.SetValue(adj.value)
	}
}

// SetRestrictToFillLevel controls whether values beyond the fill level
// are allowed.
func (adj *Adjustment) SetRestrictToFillLevel(restrict bool) {
	if restrict == adj.restrictToFill {
		return
	}
	adj.restrictToFill = restrict
	adj.changed.Emit()
	if restrict {
		adj.SetValue(adj.value)
	}
}

// --- Animation -------------------------------------------------------------

// AnimateTo starts an animation from the current value to target, which
// is clamped first. The value is advanced by Tick. If easing is nil,
// css.EaseOutCubic is used.
func (adj *Adjustment) AnimateTo(target float64, easing *css.TimingFunction) {
	target = adj.clamp(target)
	if adj.anim != nil && adj.anim.target == target {
		return
	}
	if easing == nil {
		easing = css.EaseOutCubic
	}
	adj.anim = &animation{source: adj.value, target: target, easing: easing}
	tracer().Debugf("animating adjustment from %g to %g", adj.value, target)
}

// IsAnimating is true while an animation started by AnimateTo runs.
func (adj *Adjustment) IsAnimating() bool {
	return adj.anim != nil
}

// Target returns the value the adjustment will have once the current
// animation has finished, or the current value.
func (adj *Adjustment) Target() float64 {
	if adj.anim != nil {
		return adj.anim.target
	}
	return adj.value
}

// Tick advances a running animation to linear progress ∈ [0…1]. Progress
// 1 finishes the animation.
func (adj *Adjustment) Tick(progress float64) {
	a := adj.anim
	if a == nil {
		return
	}
	if progress >= 1 {
		adj.anim = nil
		adj.setValue(a.target)
		return
	}
	t := a.easing.Apply(progress)
	adj.setValue(a.source + t*(a.target-a.source))
}

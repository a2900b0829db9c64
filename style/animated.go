package style

import (
	"math"
	"strings"
	"time"

	"github.com/npillmayer/csscascade/cascade"
	"github.com/npillmayer/csscascade/css"
	tp "github.com/xlab/treeprint"
)

// Animated is a static base style overlaid with transitions and keyframe
// animations. Value returns the values at the time the animated style
// has been created; ValueAt evaluates the animations at any time.
type Animated struct {
	base        *Static
	created     time.Time
	transitions []*transition
	animations  []*keyframeAnimation
	snapshot    []css.Value
}

var _ Style = (*Animated)(nil)

type transition struct {
	id         css.PropertyID
	start, end css.Value
	timing     *css.TimingFunction
	begin      time.Time
	duration   time.Duration
}

type keyframeAnimation struct {
	name       string
	keyframes  *css.Keyframes
	timing     *css.TimingFunction
	begin      time.Time
	duration   time.Duration
	iterations float64 // +Inf for infinite
	direction  int     // index into css.Directions
	fill       int     // index into css.FillModes
	paused     bool
	pausedAt   time.Time
}

// NewAnimated creates the style of a widget at time now. Base is the newly
// computed static style, parent the style of the parent widget, previous the
// style the widget had before (or nil). Keyframe animations are looked up
// with provider, which may be nil.
//
// If no transition or animation applies, NewAnimated returns nil and
// clients should use base directly. Otherwise the animated style takes over
// the reference to base.
func NewAnimated(base *Static, parent css.Style, previous Style, provider cascade.KeyframesProvider,
	now time.Time) *Animated {
	//
	if p, ok := parent.(*Static); ok && p == nil {
		parent = nil
	}
	a := &Animated{base: base, created: now}
	if previous != nil {
		a.createTransitions(previous, now)
	}
	a.createAnimations(parent, previous, provider, now)
	if len(a.transitions) == 0 && len(a.animations) == 0 {
		return nil
	}
	tracer().Debugf("animated style with %d transitions, %d animations", len(a.transitions), len(a.animations))
	a.snapshot = make([]css.Value, css.NumProperties())
	for _, prop := range css.Properties() {
		a.snapshot[prop.ID] = a.ValueAt(prop.ID, now)
	}
	return a
}

// Base returns the static style underneath the animations.
func (a *Animated) Base() *Static {
	return a.base
}

// Value returns the value of property id at the creation time of a.
// The value is borrowed.
func (a *Animated) Value(id css.PropertyID) css.Value {
	return a.snapshot[id]
}

// ValueAt returns the value of property id at time now, as a new reference.
// Transitions are applied first, then keyframe animations in the order of
// animation-name.
func (a *Animated) ValueAt(id css.PropertyID, now time.Time) css.Value {
	v := css.Ref(a.base.Value(id))
	for _, t := range a.transitions {
		if t.id != id {
			continue
		}
		css.Unref(v)
		v = t.valueAt(now)
	}
	for _, anim := range a.animations {
		p, active := anim.progress(now)
		if !active {
			continue
		}
		start, end, local := anim.keyframes.Segment(id, p, v)
		if start == v && end == v {
			continue
		}
		next := interpolate(start, end, id, local)
		css.Unref(v)
		v = next
	}
	return v
}

// IsStatic is true if no animation of a is running at time now or later.
func (a *Animated) IsStatic(now time.Time) bool {
	for _, t := range a.transitions {
		if now.Before(t.begin.Add(t.duration)) {
			return false
		}
	}
	for _, anim := range a.animations {
		if anim.paused {
			continue
		}
		if math.IsInf(anim.iterations, 1) {
			return false
		}
		end := anim.begin.Add(time.Duration(float64(anim.duration) * anim.iterations))
		if now.Before(end) {
			return false
		}
	}
	return true
}

// Release drops all references held by a, including the base style.
func (a *Animated) Release() {
	for _, t := range a.transitions {
		css.Unref(t.start)
		css.Unref(t.end)
		css.Unref(t.timing)
	}
	for _, anim := range a.animations {
		anim.keyframes.Release()
		css.Unref(anim.timing)
	}
	for i, v := range a.snapshot {
		if v != nil {
			css.Unref(v)
			a.snapshot[i] = nil
		}
	}
	a.transitions, a.animations = nil, nil
	a.base.Release()
}

// Dump returns a tree of the animations and current values, for debugging.
func (a *Animated) Dump() string {
	tree := tp.New()
	tree.SetValue("animated style")
	anims := tree.AddBranch("animations")
	for _, t := range a.transitions {
		anims.AddMetaNode("transition", css.LookupProperty(t.id).Name+" from "+t.start.String())
	}
	for _, anim := range a.animations {
		anims.AddMetaNode("keyframes", anim.keyframes.String())
	}
	dumpValues(tree, a)
	return tree.String()
}

// interpolate is the one place where values which cannot be interpolated
// switch discretely: the start value holds until half of the progress.
func interpolate(start, end css.Value, id css.PropertyID, progress float64) css.Value {
	if v := css.Interpolate(start, end, id, progress); v != nil {
		return v
	}
	if progress < 0.5 {
		return css.Ref(start)
	}
	return css.Ref(end)
}

// --- Transitions -----------------------------------------------------------

func (t *transition) valueAt(now time.Time) css.Value {
	if now.Before(t.begin) {
		return css.Ref(t.start)
	}
	elapsed := now.Sub(t.begin)
	if t.duration <= 0 || elapsed >= t.duration {
		return css.Ref(t.end)
	}
	p := float64(elapsed) / float64(t.duration)
	return interpolate(t.start, t.end, t.id, t.timing.Apply(p))
}

// transitionIndexes maps every property to the position in
// transition-property which names it, or -1. Later positions win.
func transitionIndexes(names css.Value) []int {
	index := make([]int, css.NumProperties())
	for i := range index {
		index[i] = -1
	}
	for i := 0; i < css.Len(names); i++ {
		ident, ok := css.Nth(names, i).(*css.Identifier)
		if !ok {
			continue
		}
		switch name := strings.ToLower(ident.Name()); name {
		case "none":
		case "all":
			for _, prop := range css.Properties() {
				if prop.Animated {
					index[prop.ID] = i
				}
			}
		default:
			if prop, ok := css.PropertyByName(name); ok && prop.Animated {
				index[prop.ID] = i
			}
		}
	}
	return index
}

func (a *Animated) createTransitions(previous Style, now time.Time) {
	base := a.base
	index := transitionIndexes(base.Value(css.PropertyTransitionProperty))
	durations := base.Value(css.PropertyTransitionDuration)
	delays := base.Value(css.PropertyTransitionDelay)
	timings := base.Value(css.PropertyTransitionTimingFunction)
	prevAnimated, _ := previous.(*Animated)
	for _, prop := range css.Properties() {
		i := index[prop.ID]
		if i < 0 {
			continue
		}
		duration := seconds(css.Nth(durations, i))
		delay := seconds(css.Nth(delays, i))
		if duration+delay == 0 {
			continue
		}
		end := base.Value(prop.ID)
		if prevAnimated != nil && css.Equal(prevAnimated.base.Value(prop.ID), end) {
			// target unchanged: keep a running transition going
			if t := prevAnimated.findTransition(prop.ID); t != nil && now.Before(t.begin.Add(t.duration)) {
				a.transitions = append(a.transitions, &transition{
					id: t.id, start: css.Ref(t.start), end: css.Ref(t.end),
					timing: ref(t.timing), begin: t.begin, duration: t.duration,
				})
			}
			continue
		}
		start := previous.ValueAt(prop.ID, now)
		if css.Equal(start, end) {
			css.Unref(start)
			continue
		}
		a.transitions = append(a.transitions, &transition{
			id:       prop.ID,
			start:    start,
			end:      css.Ref(end),
			timing:   timingFunction(css.Nth(timings, i)),
			begin:    now.Add(delay),
			duration: duration,
		})
		tracer().Debugf("transition of %s from %s to %s", prop.Name, start, end)
	}
}

func (a *Animated) findTransition(id css.PropertyID) *transition {
	for _, t := range a.transitions {
		if t.id == id {
			return t
		}
	}
	return nil
}

// --- Keyframe animations ---------------------------------------------------

func (a *Animated) createAnimations(parent css.Style, previous Style, provider cascade.KeyframesProvider,
	now time.Time) {
	//
	base := a.base
	names := base.Value(css.PropertyAnimationName)
	prevAnimated, _ := previous.(*Animated)
	var resolver css.Resolver
	if r, ok := provider.(css.Resolver); ok {
		resolver = r
	}
	for i := 0; i < css.Len(names); i++ {
		ident, ok := css.Nth(names, i).(*css.Identifier)
		if !ok || strings.EqualFold(ident.Name(), "none") || a.findAnimation(ident.Name()) != nil {
			continue
		}
		paused := enumIndex(css.Nth(base.Value(css.PropertyAnimationPlayState), i)) == 1
		if prevAnimated != nil {
			if old := prevAnimated.findAnimation(ident.Name()); old != nil {
				a.animations = append(a.animations, old.advance(paused, now))
				continue
			}
		}
		if provider == nil {
			continue
		}
		kf := provider.GetKeyframes(ident.Name())
		if kf == nil {
			tracer().Infof("no keyframes named '%s'", ident.Name())
			continue
		}
		anim := &keyframeAnimation{
			name:       ident.Name(),
			keyframes:  kf.Compute(resolver, base, parent),
			timing:     timingFunction(css.Nth(base.Value(css.PropertyAnimationTimingFunction), i)),
			begin:      now.Add(seconds(css.Nth(base.Value(css.PropertyAnimationDelay), i))),
			duration:   seconds(css.Nth(base.Value(css.PropertyAnimationDuration), i)),
			iterations: iterationCount(css.Nth(base.Value(css.PropertyAnimationIterationCount), i)),
			direction:  enumIndex(css.Nth(base.Value(css.PropertyAnimationDirection), i)),
			fill:       enumIndex(css.Nth(base.Value(css.PropertyAnimationFillMode), i)),
			paused:     paused,
			pausedAt:   now,
		}
		a.animations = append(a.animations, anim)
	}
}

func (a *Animated) findAnimation(name string) *keyframeAnimation {
	for _, anim := range a.animations {
		if anim.name == name {
			return anim
		}
	}
	return nil
}

// advance copies a running animation into a new style, switching its play
// state. Pausing freezes the progress; resuming shifts the begin time by
// the time spent paused.
func (anim *keyframeAnimation) advance(paused bool, now time.Time) *keyframeAnimation {
	next := *anim
	next.keyframes = anim.keyframes.Compute(nil, nil, nil)
	next.timing = ref(anim.timing)
	switch {
	case anim.paused && !paused:
		next.begin = anim.begin.Add(now.Sub(anim.pausedAt))
	case !anim.paused && paused:
		next.pausedAt = now
	}
	next.paused = paused
	return &next
}

// progress returns the progress within the current iteration at time now,
// after applying direction and timing function. Active is false if the
// animation does not affect values at time now.
func (anim *keyframeAnimation) progress(now time.Time) (p float64, active bool) {
	if anim.paused {
		now = anim.pausedAt
	}
	fillBackwards := anim.fill == 2 || anim.fill == 3
	fillForwards := anim.fill == 1 || anim.fill == 3
	var t float64 // elapsed time in iterations
	if anim.duration > 0 {
		t = float64(now.Sub(anim.begin)) / float64(anim.duration)
	} else if !now.Before(anim.begin) {
		if math.IsInf(anim.iterations, 1) {
			return 0, false
		}
		t = anim.iterations
	}
	switch {
	case now.Before(anim.begin):
		if !fillBackwards {
			return 0, false
		}
		t = 0
	case t >= anim.iterations:
		if !fillForwards {
			return 0, false
		}
		t = anim.iterations
	}
	iteration := math.Floor(t)
	p = t - iteration
	if p == 0 && t > 0 && t >= anim.iterations { // finished exactly at an iteration boundary
		iteration--
		p = 1
	}
	reverse := false
	switch anim.direction {
	case 1: // reverse
		reverse = true
	case 2: // alternate
		reverse = int(iteration)%2 == 1
	case 3: // alternate-reverse
		reverse = int(iteration)%2 == 0
	}
	if reverse {
		p = 1 - p
	}
	return anim.timing.Apply(p), true
}

// --- Helpers ---------------------------------------------------------------

func seconds(v css.Value) time.Duration {
	l, ok := v.(*css.Length)
	if !ok {
		return 0
	}
	var msec float64
	switch m := l.Match(); m {
	case m.Duration(&msec):
		return time.Duration(msec * float64(time.Millisecond))
	}
	return 0
}

// timingFunction returns a new reference to the timing function v.
func timingFunction(v css.Value) *css.TimingFunction {
	if tf, ok := v.(*css.TimingFunction); ok {
		return ref(tf)
	}
	tf, _ := css.TimingKeyword("ease")
	return tf
}

func ref(tf *css.TimingFunction) *css.TimingFunction {
	css.Ref(tf)
	return tf
}

func iterationCount(v css.Value) float64 {
	switch x := v.(type) {
	case *css.Number:
		return x.Value()
	case *css.Identifier:
		if strings.EqualFold(x.Name(), "infinite") {
			return math.Inf(1)
		}
	}
	return 1
}

func enumIndex(v css.Value) int {
	if e, ok := v.(*css.Enum); ok {
		return e.Index()
	}
	return 0
}

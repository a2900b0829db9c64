package css

import (
	"fmt"
	"sort"
)

// Keyframe is one step of a keyframe animation: an offset in [0…1] and the
// values declared at that offset.
type Keyframe struct {
	Offset float64
	values map[PropertyID]Value
}

// Keyframes is a named, sorted list of keyframes as defined by an
// @keyframes rule.
type Keyframes struct {
	Name   string
	frames []*Keyframe
}

// NewKeyframes creates an empty keyframe list.
func NewKeyframes(name string) *Keyframes {
	return &Keyframes{Name: name}
}

// Set declares value v for property id at offset. It takes over the
// reference to v. A repeated declaration replaces the previous one.
func (kf *Keyframes) Set(offset float64, id PropertyID, v Value) {
	assertThat(offset >= 0 && offset <= 1, "keyframe offset %g out of range", offset)
	i := sort.Search(len(kf.frames), func(i int) bool { return kf.frames[i].Offset >= offset })
	if i == len(kf.frames) || kf.frames[i].Offset != offset {
		frame := &Keyframe{Offset: offset, values: make(map[PropertyID]Value)}
		kf.frames = append(kf.frames, nil)
		copy(kf.frames[i+1:], kf.frames[i:])
		kf.frames[i] = frame
	}
	if old, ok := kf.frames[i].values[id]; ok {
		Unref(old)
	}
	kf.frames[i].values[id] = v
}

// Len returns the number of keyframes.
func (kf *Keyframes) Len() int { return len(kf.frames) }

// Properties lists the properties declared in any keyframe, in id order.
func (kf *Keyframes) Properties() []PropertyID {
	seen := make(map[PropertyID]bool)
	var ids []PropertyID
	for _, f := range kf.frames {
		for id := range f.values {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Compute returns a copy of kf with every value computed against the given
// context. Keyframe values are computed before use in an animation.
func (kf *Keyframes) Compute(resolver Resolver, style, parent Style) *Keyframes {
	c := NewKeyframes(kf.Name)
	for _, f := range kf.frames {
		for id, v := range f.values {
			c.Set(f.Offset, id, Compute(v, id, resolver, style, parent))
		}
	}
	return c
}

// Segment locates progress within the keyframes declaring property id.
// It returns the borrowed values at both ends of the enclosing segment
// and the progress local to it. Offsets 0 and 1 missing from the
// keyframes are taken from base, the value of the underlying style.
func (kf *Keyframes) Segment(id PropertyID, progress float64, base Value) (start, end Value, p float64) {
	startOff, endOff := 0.0, 1.0
	start, end = base, base
	for _, f := range kf.frames {
		v, ok := f.values[id]
		if !ok {
			continue
		}
		if f.Offset <= progress {
			startOff, start = f.Offset, v
		}
		if f.Offset >= progress {
			endOff, end = f.Offset, v
			break
		}
	}
	if endOff <= startOff {
		return start, start, 0
	}
	return start, end, (progress - startOff) / (endOff - startOff)
}

// Release drops all values held by kf.
func (kf *Keyframes) Release() {
	for _, f := range kf.frames {
		for id, v := range f.values {
			Unref(v)
			delete(f.values, id)
		}
	}
	kf.frames = nil
}

func (kf *Keyframes) String() string {
	return fmt.Sprintf("@keyframes %s (%d frames)", kf.Name, len(kf.frames))
}

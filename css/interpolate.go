package css

// Interpolate computes the value of an animated property at progress
// between the computed values start and end. Progress is clamped to
// [0…1].
//
// The result is nil if the property is not animated or if the values
// cannot be interpolated. Clients then switch discretely from start to end.
func Interpolate(start, end Value, id PropertyID, progress float64) Value {
	prop := LookupProperty(id)
	if !prop.Animated || start == nil || end == nil {
		return nil
	}
	if Equal(start, end) {
		return Ref(start)
	}
	progress = clamp01(progress)
	v := Transition(start, end, id, progress)
	if v == nil {
		tracer().Debugf("%s: cannot interpolate from %s to %s", prop.Name, start, end)
	}
	return v
}

package style

import (
	"time"

	"github.com/npillmayer/csscascade/cascade"
	"github.com/npillmayer/csscascade/css"
	"github.com/npillmayer/tyse/core/dimen"
	tp "github.com/xlab/treeprint"
)

// Static is a computed style without animations.
type Static struct {
	values []css.Value
}

var _ Style = (*Static)(nil)

// Compute computes a style from the declarations in lookup. Properties are
// computed in id order, so values other properties depend on are available
// when needed. Properties without a declaration are inherited from parent
// if they are inherited properties, and set to their initial value
// otherwise. Lookup and parent may be nil.
func Compute(lookup *cascade.Lookup, resolver css.Resolver, parent css.Style) *Static {
	if p, ok := parent.(*Static); ok && p == nil {
		parent = nil
	}
	st := &Static{values: make([]css.Value, css.NumProperties())}
	for _, prop := range css.Properties() {
		var specified css.Value
		if lookup != nil {
			specified = lookup.Value(prop.ID)
		}
		if specified == nil {
			if prop.Inherited {
				specified = css.Inherit()
			} else {
				specified = css.Initial()
			}
		}
		st.values[prop.ID] = css.Compute(specified, prop.ID, resolver, st, parent)
	}
	return st
}

// Value returns the computed value of property id. The value is borrowed.
func (st *Static) Value(id css.PropertyID) css.Value {
	return st.values[id]
}

// ValueAt returns a new reference to the value of property id.
func (st *Static) ValueAt(id css.PropertyID, now time.Time) css.Value {
	return css.Ref(st.values[id])
}

// IsStatic is always true for static styles.
func (st *Static) IsStatic(time.Time) bool {
	return true
}

// Dimen returns the value of property id as design units, if it is an
// absolute length.
func (st *Static) Dimen(id css.PropertyID) (dimen.DU, bool) {
	l, ok := st.values[id].(*css.Length)
	if !ok {
		return 0, false
	}
	var du dimen.DU
	switch m := l.Match(); m {
	case m.Just(&du):
		return du, true
	}
	return 0, false
}

// Release drops the references to all values of st.
func (st *Static) Release() {
	for i, v := range st.values {
		if v != nil {
			css.Unref(v)
			st.values[i] = nil
		}
	}
}

// Dump returns a tree of all computed values, for debugging.
func (st *Static) Dump() string {
	tree := tp.New()
	tree.SetValue("computed style")
	dumpValues(tree, st)
	return tree.String()
}

func dumpValues(tree tp.Tree, s css.Style) {
	for _, prop := range css.Properties() {
		if v := s.Value(prop.ID); v != nil {
			css.DumpTo(tree, prop.Name, v)
		}
	}
}

package css

import (
	"fmt"

	tp "github.com/xlab/treeprint"
)

// Dump renders the structure of a value as a tree, for debugging.
func Dump(v Value) string {
	tree := tp.New()
	dumpValue(tree, v)
	return tree.String()
}

// DumpTo adds the structure of v as a branch to an existing tree.
func DumpTo(tree tp.Tree, label string, v Value) {
	b := tree.AddMetaBranch(label, describeValue(v))
	dumpChildren(b, v)
}

func dumpValue(tree tp.Tree, v Value) {
	if v == nil {
		tree.AddNode("<nil>")
		return
	}
	if !hasChildren(v) {
		tree.AddMetaNode(v.Kind().String(), describeValue(v))
		return
	}
	b := tree.AddMetaBranch(v.Kind().String(), describeValue(v))
	dumpChildren(b, v)
}

func dumpChildren(b tp.Tree, v Value) {
	switch x := v.(type) {
	case *Array:
		for _, ch := range x.children {
			dumpValue(b, ch)
		}
	case *Shadow:
		for i, l := range x.layers {
			lb := b.AddBranch(fmt.Sprintf("layer %d", i))
			if l.Inset {
				lb.AddNode("inset")
			}
			for _, c := range l.values() {
				dumpValue(lb, c)
			}
		}
	case *Image:
		if x.form == imageCrossFade {
			dumpValue(b, x.start)
			dumpValue(b, x.end)
		}
	case *Color:
		if x.a != nil {
			dumpValue(b, x.a)
		}
		if x.b != nil {
			dumpValue(b, x.b)
		}
	case *Pair:
		dumpValue(b, x.x)
		dumpValue(b, x.y)
	}
}

func hasChildren(v Value) bool {
	switch x := v.(type) {
	case *Array:
		return len(x.children) > 0
	case *Shadow:
		return len(x.layers) > 0
	case *Image:
		return x.form == imageCrossFade
	case *Color:
		return x.a != nil
	case *Pair:
		return true
	}
	return false
}

func describeValue(v Value) string {
	if v == nil {
		return "<nil>"
	}
	rc := "static"
	if n := RefCount(v); n >= 0 {
		rc = fmt.Sprintf("refs=%d", n)
	}
	return fmt.Sprintf("%s (%s)", v.String(), rc)
}

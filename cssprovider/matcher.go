package cssprovider

import (
	"strings"

	"github.com/npillmayer/csscascade/cascade"
	"golang.org/x/net/html"
)

// HTMLMatcher is a matcher for which a provider is able to match
// selectors. Matchers not implementing it are not matched by any rule.
type HTMLMatcher interface {
	cascade.Matcher
	Node() *html.Node
	State() cascade.StateFlags
}

type nodeMatcher struct {
	node  *html.Node
	state cascade.StateFlags
}

// NewNodeMatcher creates a matcher for an element node of an HTML tree.
func NewNodeMatcher(n *html.Node, state cascade.StateFlags) HTMLMatcher {
	return nodeMatcher{node: n, state: state}
}

func (m nodeMatcher) Node() *html.Node          { return m.node }
func (m nodeMatcher) State() cascade.StateFlags { return m.state }

// String returns the path of element names from the root down to the node,
// e.g. "html > body > p#intro.lead".
func (m nodeMatcher) String() string {
	var path []string
	for n := m.node; n != nil; n = n.Parent {
		if n.Type == html.ElementNode {
			path = append(path, describeElement(n))
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return strings.Join(path, " > ")
}

func describeElement(n *html.Node) string {
	var b strings.Builder
	b.WriteString(n.Data)
	for _, a := range n.Attr {
		switch a.Key {
		case "id":
			b.WriteString("#" + a.Val)
		case "class":
			for _, c := range strings.Fields(a.Val) {
				b.WriteString("." + c)
			}
		}
	}
	return b.String()
}

package styledtree

import (
	"fmt"

	"github.com/npillmayer/csscascade/cascade"
	"github.com/npillmayer/csscascade/css"
	"github.com/npillmayer/csscascade/cssom/douceuradapter"
	"github.com/npillmayer/csscascade/cssprovider"
	"github.com/npillmayer/csscascade/style"
	tp "github.com/xlab/treeprint"
	"golang.org/x/net/html"
)

// StyNode is a style node, the building block of the styled tree.
type StyNode struct {
	parent         *StyNode
	children       []*StyNode
	htmlNode       *html.Node
	computedStyles *style.Static
	affects        css.AffectsMask
}

// NewNodeForHTMLNode creates a new styled node linked to an HTML node.
func NewNodeForHTMLNode(html *html.Node) *StyNode {
	return &StyNode{htmlNode: html}
}

// HTMLNode gets the HTML DOM node corresponding to this styled node.
func (sn *StyNode) HTMLNode() *html.Node {
	return sn.htmlNode
}

// Parent returns the parent styled node, or nil for the root.
func (sn *StyNode) Parent() *StyNode {
	return sn.parent
}

// Children returns the styled children of sn.
func (sn *StyNode) Children() []*StyNode {
	return sn.children
}

// AddChild appends ch to the children of sn.
func (sn *StyNode) AddChild(ch *StyNode) *StyNode {
	if ch != nil {
		ch.parent = sn
		sn.children = append(sn.children, ch)
	}
	return sn
}

// Styles returns the computed style of sn.
func (sn *StyNode) Styles() *style.Static {
	return sn.computedStyles
}

// SetStyles sets the computed style of a styled node. sn takes over the
// reference to styles.
func (sn *StyNode) SetStyles(styles *style.Static) {
	if sn.computedStyles != nil {
		sn.computedStyles.Release()
	}
	sn.computedStyles = styles
}

// Affects returns the rendering aspects the declarations for sn touch.
func (sn *StyNode) Affects() css.AffectsMask {
	return sn.affects
}

// Release drops the computed styles of sn and its descendents.
func (sn *StyNode) Release() {
	for _, ch := range sn.children {
		ch.Release()
	}
	sn.SetStyles(nil)
}

func (sn *StyNode) String() string {
	return fmt.Sprintf("<%s>", sn.htmlNode.Data)
}

// --- Styling ---------------------------------------------------------------

// Style creates a styled tree for the element nodes of doc. It returns the
// styled node of the document's root element, or nil if doc does not
// contain an element.
func Style(doc *html.Node, c *cascade.Cascade) *StyNode {
	root := firstElement(doc)
	if root == nil {
		tracer().Errorf("cannot style a document without elements")
		return nil
	}
	sn := styleNode(root, c, nil)
	tracer().Debugf("styled tree:\n%s", Dump(sn, css.PropertyColor))
	return sn
}

func styleNode(n *html.Node, c *cascade.Cascade, parent *StyNode) *StyNode {
	sn := NewNodeForHTMLNode(n)
	lookup := cascade.NewLookup()
	sn.affects = c.Lookup(cssprovider.NewNodeMatcher(n, cascade.StateNormal), lookup)
	var parentStyles css.Style
	if parent != nil {
		parentStyles = parent.computedStyles
	}
	sn.SetStyles(style.Compute(lookup, c, parentStyles))
	lookup.Release()
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type == html.ElementNode {
			sn.AddChild(styleNode(ch, c, sn))
		}
	}
	return sn
}

func firstElement(n *html.Node) *html.Node {
	if n == nil || n.Type == html.ElementNode {
		return n
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		if e := firstElement(ch); e != nil {
			return e
		}
	}
	return nil
}

// DocumentCascade creates a cascade with the style sheets embedded in doc
// as a provider of application priority. The cascade's parent is set to
// parent, which may be nil.
func DocumentCascade(doc *html.Node, parent *cascade.Cascade) (*cascade.Cascade, error) {
	c := cascade.New()
	if parent != nil {
		if err := c.SetParent(parent); err != nil {
			return nil, err
		}
	}
	sheets := douceuradapter.ExtractStyleElements(doc)
	if len(sheets) == 0 {
		return c, nil
	}
	for _, s := range sheets[1:] {
		sheets[0].AppendRules(s)
	}
	p := cssprovider.New()
	p.LoadStyleSheet(sheets[0])
	for _, err := range p.Diagnostics() {
		tracer().Infof("document style sheet: %v", err)
	}
	c.AddProvider(p, cascade.PriorityApplication)
	return c, nil
}

// Dump returns the styled tree below sn as text, listing the values of the
// given properties for each node.
func Dump(sn *StyNode, props ...css.PropertyID) string {
	tree := tp.New()
	if sn == nil {
		return tree.String()
	}
	dumpNode(tree, sn, props)
	return tree.String()
}

func dumpNode(tree tp.Tree, sn *StyNode, props []css.PropertyID) {
	b := tree.AddBranch(sn.String())
	for _, id := range props {
		if sn.computedStyles != nil {
			b.AddMetaNode(css.LookupProperty(id).Name, css.Print(sn.computedStyles.Value(id)))
		}
	}
	for _, ch := range sn.children {
		dumpNode(b, ch, props)
	}
}

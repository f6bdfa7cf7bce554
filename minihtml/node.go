package minihtml

import (
	"bytes"
	"strings"
)

// TreeNode holds the links of a Node inside the document tree.
// A parent exclusively owns its children.
type TreeNode struct {
	Parent, FirstChild, LastChild, PrevSibling, NextSibling *Node
}

// A Node is one markup element. The synthetic document root is the only
// node with an empty Tag.
type Node struct {
	TreeNode
	Tag     string
	Attr    Attributes
	Content string
}

// AppendChild adds a node child as the last child of parent.
//
// It will panic if child already has a parent or siblings.
func (parent *Node) AppendChild(child *Node) {
	if child.Parent != nil || child.PrevSibling != nil || child.NextSibling != nil {
		panic("AppendChild called for an already attached child Node")
	}
	last := parent.LastChild
	if last != nil {
		last.NextSibling = child
	} else {
		parent.FirstChild = child
	}
	parent.LastChild = child

	child.Parent = parent
	child.PrevSibling = last
}

// Children returns the children of n in document order.
func (n *Node) Children() []*Node {
	var out []*Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, c)
	}
	return out
}

// IsRoot reports whether n is the synthetic document root.
func (n *Node) IsRoot() bool {
	return len(n.Tag) == 0
}

// IsStyleDefinition reports whether n registers a style class instead of rendering.
func (n *Node) IsStyleDefinition(prefix string) bool {
	return len(prefix) > 0 && strings.HasPrefix(n.Tag, prefix)
}

// The indentation string
var aBigIndentationString = bytes.Repeat([]byte(" "), 200)

func indent(n int) []byte {
	if n > len(aBigIndentationString) {
		n = len(aBigIndentationString)
	}
	return aBigIndentationString[:n]
}

// Dump writes an indented description of the tree rooted at n, one node per line.
func (n *Node) Dump() string {
	br := &ByteRenderer{}
	n.dump(br, 0)
	return br.String()
}

func (n *Node) dump(br *ByteRenderer, level int) {
	br.Render(indent(2*level), "Tag: ", n.Tag, ", Attributes: {")
	for i, a := range n.Attr {
		if i > 0 {
			br.Render(", ")
		}
		br.Render(a.Key, ": ", a.Val)
	}
	br.Renderln("}, Content: ", n.Content)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		c.dump(br, level+1)
	}
}

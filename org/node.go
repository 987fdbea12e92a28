package org

import "strings"

// Heading is either literal text or a function producing the text when the
// node is rendered. The zero value is an empty heading.
type Heading struct {
	text     string
	deferred func() string
}

// HeadingText returns a heading with fixed text.
func HeadingText(s string) Heading {
	return Heading{text: s}
}

// Deferred returns a heading computed by fn each time its node is rendered.
func Deferred(fn func() string) Heading {
	return Heading{deferred: fn}
}

// IsDeferred reports whether the heading is computed at render time.
func (h Heading) IsDeferred() bool {
	return h.deferred != nil
}

// Resolve returns the heading text, calling the producer if there is one.
func (h Heading) Resolve() string {
	if h.deferred != nil {
		return h.deferred()
	}
	return h.text
}

// Node is an outline entry together with its sub-entries. A node owns its
// children; trees must not share nodes or contain cycles. Nil children are
// skipped.
type Node struct {
	Heading    Heading
	Todo       string
	Tags       []string
	Scheduled  *Timestamp
	Properties []Property
	Body       *string
	Children   []*Node
}

// Block is the rendered text of one node and its depth below the render
// root.
type Block struct {
	Depth int
	Text  string
}

// RenderSelf renders the node's own entry without heading markers.
func (n *Node) RenderSelf() string {
	return Entry{
		Heading:    n.Heading.Resolve(),
		Todo:       n.Todo,
		Tags:       n.Tags,
		Scheduled:  n.Scheduled,
		Properties: n.Properties,
		Body:       n.Body,
	}.Format()
}

// RenderHier renders the subtree in pre-order. The node itself is at depth
// 0, its children at depth 1 and so on.
func (n *Node) RenderHier() []Block {
	blocks := []Block{{Depth: 0, Text: n.RenderSelf()}}
	for _, child := range n.Children {
		if child == nil {
			continue
		}
		for _, b := range child.RenderHier() {
			blocks = append(blocks, Block{Depth: b.Depth + 1, Text: b.Text})
		}
	}
	return blocks
}

// Render renders the subtree with the node itself at depth 0.
func (n *Node) Render() string {
	return n.RenderAt(0)
}

// RenderAt renders the subtree with every depth shifted by level. Only the
// first line of each block gets the star prefix.
func (n *Node) RenderAt(level int) string {
	blocks := n.RenderHier()

	var b strings.Builder
	for i, block := range blocks {
		if i > 0 {
			b.WriteByte('\n')
		}
		if depth := block.Depth + level; depth > 0 {
			b.WriteString(strings.Repeat("*", depth))
			b.WriteByte(' ')
		}
		b.WriteString(block.Text)
	}
	return b.String()
}

// Count returns the number of nodes in the subtree.
func (n *Node) Count() int {
	total := 1
	for _, child := range n.Children {
		if child == nil {
			continue
		}
		total += child.Count()
	}
	return total
}

package ebitenhost

import (
	"github.com/phanxgames/scrollfx"
)

// drawItem is one primitive ready to submit, in screen coordinates.
type drawItem struct {
	node  *scrollfx.Node
	kind  scrollfx.NodeType
	rect  scrollfx.Rect
	color scrollfx.Color // tint with alpha and brightness applied
	text  string
}

// drawList walks the tree in paint order and appends an item for every
// visible node that produces output and intersects view. offsetY is
// subtracted from document Y to get screen Y.
func drawList(dst []drawItem, root *scrollfx.Node, view scrollfx.Rect, offsetY float64) []drawItem {
	if root == nil {
		return dst
	}
	return appendNode(dst, root, view, offsetY, 1, 1)
}

func appendNode(dst []drawItem, n *scrollfx.Node, view scrollfx.Rect, offsetY, alpha, bright float64) []drawItem {
	if !n.Visible || n.IsDisposed() {
		return dst
	}
	alpha *= n.Alpha
	bright *= n.Brightness
	if alpha <= 0 {
		return dst
	}

	if item, ok := itemFor(n, alpha, bright); ok {
		b := scrollfx.VisualBounds(n)
		switch {
		case !b.Intersects(view):
		case n.Type == scrollfx.NodeTypeText:
			// Unsplit text draws word by word so wrapping matches the split layout.
			for _, run := range scrollfx.TextRuns(n) {
				it := item
				it.text = run.Text
				it.rect = scrollfx.Rect{X: b.X + run.X, Y: b.Y + run.Y - offsetY, Width: run.Width, Height: run.Height}
				dst = append(dst, it)
			}
		default:
			b.Y -= offsetY
			item.rect = b
			dst = append(dst, item)
		}
	}
	for _, c := range n.Children() {
		dst = appendNode(dst, c, view, offsetY, alpha, bright)
	}
	return dst
}

// itemFor returns the primitive for n, or false when n draws nothing itself.
func itemFor(n *scrollfx.Node, alpha, bright float64) (drawItem, bool) {
	c := n.Color
	c.R *= bright
	c.G *= bright
	c.B *= bright
	c.A *= alpha
	item := drawItem{node: n, kind: n.Type, color: c}
	switch n.Type {
	case scrollfx.NodeTypeImage:
		return item, true
	case scrollfx.NodeTypeText, scrollfx.NodeTypeSpan:
		if n.Text == "" || n.HasClass("space") {
			return item, false
		}
		item.text = n.Text
		return item, true
	default:
		return item, n.Fill
	}
}

package scrollfx

// LayoutBounds returns the node's box in document space, accumulating the
// local X/Y of every ancestor. Visual offsets are ignored, so trigger
// positions derived from this box stay put while the node animates.
func LayoutBounds(n *Node) Rect {
	x, y := 0.0, 0.0
	for p := n; p != nil; p = p.Parent {
		x += p.X
		y += p.Y
	}
	return Rect{X: x, Y: y, Width: n.Width, Height: n.Height}
}

// VisualBounds returns where the node is drawn in document space: layout
// plus the offsets of the node and its ancestors, scaled around the node's
// own center.
func VisualBounds(n *Node) Rect {
	r := LayoutBounds(n)
	for p := n; p != nil; p = p.Parent {
		r.X += p.OffsetX
		r.Y += p.OffsetY
	}
	if n.Scale != 1 {
		cx := r.X + r.Width/2
		cy := r.Y + r.Height/2
		r.Width *= n.Scale
		r.Height *= n.Scale
		r.X = cx - r.Width/2
		r.Y = cy - r.Height/2
	}
	return r
}

// WorldAlpha returns the node's opacity multiplied through its ancestors.
func WorldAlpha(n *Node) float64 {
	a := 1.0
	for p := n; p != nil; p = p.Parent {
		a *= p.Alpha
	}
	return a
}

// WorldBrightness returns the node's brightness multiplied through its ancestors.
func WorldBrightness(n *Node) float64 {
	b := 1.0
	for p := n; p != nil; p = p.Parent {
		b *= p.Brightness
	}
	return b
}

// WorldVisible reports whether the node and all its ancestors are visible.
func WorldVisible(n *Node) bool {
	for p := n; p != nil; p = p.Parent {
		if !p.Visible {
			return false
		}
	}
	return true
}

// HitTest returns the top-most visible node under (x, y) that has an OnClick
// handler. The point is in the coordinate space of the tree rooted at n.
// Later siblings draw on top of earlier ones, so the tree is searched in
// reverse order.
func HitTest(n *Node, x, y float64) *Node {
	if n == nil || !n.Visible || n.disposed {
		return nil
	}
	for i := len(n.children) - 1; i >= 0; i-- {
		if hit := HitTest(n.children[i], x, y); hit != nil {
			return hit
		}
	}
	if n.OnClick != nil && VisualBounds(n).Contains(x, y) {
		return n
	}
	return nil
}

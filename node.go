package scrollfx

import "strings"

// ClickContext carries click event data.
type ClickContext struct {
	Node    *Node
	GlobalX float64 // document space (scroll applied)
	GlobalY float64
	LocalX  float64
	LocalY  float64
}

// --- ID counter ---

// nodeIDCounter is a plain counter (no atomic, scrollfx is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// --- Node ---

// Node is the element of the page tree. A single flat struct is used for all
// node types; the host decides how to draw each Type.
type Node struct {
	// Identity
	ID    uint32
	Name  string
	Class string // space-separated selector classes
	Type  NodeType

	// Hierarchy
	Parent   *Node
	children []*Node

	// Layout box, local to the parent. Bindings never write these, so
	// trigger positions do not move while an element animates.
	X, Y          float64
	Width, Height float64

	// Visual state, written by bindings.
	OffsetX, OffsetY float64
	Alpha            float64
	Scale            float64
	Rotation         float64 // degrees
	Brightness       float64
	Color            Color
	Fill             bool // containers draw a solid Color rectangle when set
	Visible          bool

	// Text fields (NodeTypeText, NodeTypeSpan)
	Text      string
	WrapWidth float64 // 0 = no wrapping
	Measurer  Measurer

	// Image fields (NodeTypeImage)
	Source string
	Alt    string

	// Metadata
	UserData any

	// Per-node callbacks (nil by default)
	OnClick func(ClickContext)

	// Internal
	disposed bool
	document bool
	split    *SplitArtifact
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.Alpha = 1
	n.Scale = 1
	n.Brightness = 1
	n.Color = ColorWhite
	n.Visible = true
}

// NewDocument creates the root container that defines attachment: a node is
// attached while its parent chain reaches a document.
func NewDocument(width float64) *Node {
	n := &Node{Name: "document", Type: NodeTypeContainer, Width: width, document: true}
	nodeDefaults(n)
	return n
}

// NewContainer creates a container node with no visual representation.
func NewContainer(name string) *Node {
	n := &Node{Name: name, Type: NodeTypeContainer}
	nodeDefaults(n)
	return n
}

// NewImage creates a node standing in for an image asset.
func NewImage(name, source, alt string) *Node {
	n := &Node{Name: name, Type: NodeTypeImage, Source: source, Alt: alt}
	nodeDefaults(n)
	return n
}

// NewText creates a text node with the given content.
func NewText(name, content string) *Node {
	n := &Node{Name: name, Type: NodeTypeText, Text: content}
	nodeDefaults(n)
	return n
}

func newSpan(name, content string) *Node {
	n := &Node{Name: name, Type: NodeTypeSpan, Text: content}
	nodeDefaults(n)
	return n
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("scrollfx: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("scrollfx: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("scrollfx: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.Parent = nil
	n.split = nil
	n.UserData = nil
	n.OnClick = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// IsAttached reports whether the node is live and reachable from a document.
func (n *Node) IsAttached() bool {
	for p := n; p != nil; p = p.Parent {
		if p.disposed {
			return false
		}
		if p.document {
			return true
		}
	}
	return false
}

// IsSplit reports whether the node's text is currently held by a SplitArtifact.
func (n *Node) IsSplit() bool {
	return n.split != nil
}

// --- Classes and lookup ---

// HasClass reports whether class appears in the node's Class list.
func (n *Node) HasClass(class string) bool {
	for _, c := range strings.Fields(n.Class) {
		if c == class {
			return true
		}
	}
	return false
}

// Find returns the first node in the subtree (depth-first, self included)
// whose Name matches, or nil.
func (n *Node) Find(name string) *Node {
	if n.Name == name {
		return n
	}
	for _, child := range n.children {
		if found := child.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns every node in the subtree carrying class, in document order.
func (n *Node) FindAll(class string) []*Node {
	var out []*Node
	n.walk(func(c *Node) {
		if c.HasClass(class) {
			out = append(out, c)
		}
	})
	return out
}

// Select resolves a selector against the subtree: ".class" matches every node
// carrying the class, "#name" or a bare name matches the first node with
// that Name. Returns nil when nothing matches.
func (n *Node) Select(selector string) []*Node {
	selector = strings.TrimSpace(selector)
	switch {
	case selector == "":
		return nil
	case strings.HasPrefix(selector, "."):
		return n.FindAll(selector[1:])
	case strings.HasPrefix(selector, "#"):
		selector = selector[1:]
	}
	if found := n.Find(selector); found != nil {
		return []*Node{found}
	}
	return nil
}

// walk visits the subtree in document order, self first.
func (n *Node) walk(fn func(*Node)) {
	fn(n)
	for _, child := range n.children {
		child.walk(fn)
	}
}

// --- Visual props ---

// propField returns a pointer to the field backing p, or nil for unknown props.
func (n *Node) propField(p Prop) *float64 {
	switch p {
	case PropX:
		return &n.OffsetX
	case PropY:
		return &n.OffsetY
	case PropOpacity:
		return &n.Alpha
	case PropScale:
		return &n.Scale
	case PropRotation:
		return &n.Rotation
	case PropBrightness:
		return &n.Brightness
	}
	return nil
}

// Prop returns the current value of a visual property.
func (n *Node) Prop(p Prop) float64 {
	if f := n.propField(p); f != nil {
		return *f
	}
	return 0
}

// SetProp writes a visual property. Unknown props are ignored.
func (n *Node) SetProp(p Prop, v float64) {
	if f := n.propField(p); f != nil {
		*f = v
	}
}

// snapshotProps reads the current values of every prop named in keys.
func (n *Node) snapshotProps(keys Props) Props {
	out := make(Props, len(keys))
	for p := range keys {
		out[p] = n.Prop(p)
	}
	return out
}

// applyProps writes every value in props.
func (n *Node) applyProps(props Props) {
	for p, v := range props {
		n.SetProp(p, v)
	}
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

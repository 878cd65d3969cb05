package scrollfx

import "testing"

// --- Constructor defaults ---

func TestNewContainerDefaults(t *testing.T) {
	assertNodeDefaults(t, NewContainer("test"), "test", NodeTypeContainer)
}

func TestNewImageDefaults(t *testing.T) {
	n := NewImage("hero", "baita-inverno-aerea.webp", "Baita")
	assertNodeDefaults(t, n, "hero", NodeTypeImage)
	if n.Source != "baita-inverno-aerea.webp" || n.Alt != "Baita" {
		t.Errorf("Source/Alt = %q/%q", n.Source, n.Alt)
	}
}

func TestNewTextDefaults(t *testing.T) {
	n := NewText("text", "hello")
	assertNodeDefaults(t, n, "text", NodeTypeText)
	if n.Text != "hello" {
		t.Errorf("Text = %q", n.Text)
	}
}

func assertNodeDefaults(t *testing.T, n *Node, name string, typ NodeType) {
	t.Helper()
	if n.ID == 0 {
		t.Error("ID should be non-zero")
	}
	if n.Name != name {
		t.Errorf("Name = %q, want %q", n.Name, name)
	}
	if n.Type != typ {
		t.Errorf("Type = %d, want %d", n.Type, typ)
	}
	if n.Alpha != 1 || n.Scale != 1 || n.Brightness != 1 {
		t.Errorf("Alpha/Scale/Brightness = %v/%v/%v, want 1/1/1", n.Alpha, n.Scale, n.Brightness)
	}
	if n.Color != ColorWhite {
		t.Errorf("Color = %v, want white", n.Color)
	}
	if !n.Visible {
		t.Error("Visible should be true")
	}
}

func TestUniqueIDs(t *testing.T) {
	a := NewContainer("a")
	b := NewContainer("b")
	if a.ID == b.ID {
		t.Errorf("IDs should be unique: %d == %d", a.ID, b.ID)
	}
}

// --- Tree manipulation ---

func TestAddChildReparents(t *testing.T) {
	p1 := NewContainer("p1")
	p2 := NewContainer("p2")
	c := NewContainer("c")
	p1.AddChild(c)
	p2.AddChild(c)
	if c.Parent != p2 {
		t.Error("child should belong to p2")
	}
	if len(p1.Children()) != 0 || len(p2.Children()) != 1 {
		t.Errorf("children = %d/%d, want 0/1", len(p1.Children()), len(p2.Children()))
	}
}

func TestAddChildCyclePanics(t *testing.T) {
	a := NewContainer("a")
	b := NewContainer("b")
	a.AddChild(b)
	defer func() {
		if recover() == nil {
			t.Error("expected panic on cycle")
		}
	}()
	b.AddChild(a)
}

func TestDisposeRecursive(t *testing.T) {
	doc := NewDocument(800)
	p := NewContainer("p")
	c := NewContainer("c")
	doc.AddChild(p)
	p.AddChild(c)
	p.Dispose()
	if !p.IsDisposed() || !c.IsDisposed() {
		t.Error("Dispose should mark subtree disposed")
	}
	if len(doc.Children()) != 0 {
		t.Error("Dispose should detach from parent")
	}
	p.Dispose() // no-op
}

func TestIsAttached(t *testing.T) {
	doc := NewDocument(800)
	p := NewContainer("p")
	c := NewContainer("c")
	p.AddChild(c)
	if c.IsAttached() {
		t.Error("orphan subtree should not be attached")
	}
	doc.AddChild(p)
	if !c.IsAttached() {
		t.Error("child of document should be attached")
	}
	p.RemoveFromParent()
	if c.IsAttached() {
		t.Error("removed subtree should not be attached")
	}
}

// --- Lookup ---

func TestSelect(t *testing.T) {
	root := NewContainer("root")
	a := NewContainer("title")
	b := NewContainer("item1")
	b.Class = "gallery-item wide"
	c := NewContainer("item2")
	c.Class = "gallery-item"
	root.AddChild(a)
	root.AddChild(b)
	b.AddChild(c)

	if got := root.Select("#title"); len(got) != 1 || got[0] != a {
		t.Errorf("Select(#title) = %v", got)
	}
	if got := root.Select("title"); len(got) != 1 || got[0] != a {
		t.Errorf("Select(title) = %v", got)
	}
	if got := root.Select(".gallery-item"); len(got) != 2 || got[0] != b || got[1] != c {
		t.Errorf("Select(.gallery-item) returned %d nodes", len(got))
	}
	if got := root.Select(".wide"); len(got) != 1 {
		t.Errorf("Select(.wide) returned %d nodes", len(got))
	}
	if got := root.Select("#missing"); got != nil {
		t.Errorf("Select(#missing) = %v, want nil", got)
	}
	if got := root.Select("#root"); len(got) != 1 || got[0] != root {
		t.Error("Select should match the root itself")
	}
}

func TestPropAccessors(t *testing.T) {
	n := NewContainer("n")
	n.SetProp(PropY, 42)
	n.SetProp(PropOpacity, 0.5)
	n.SetProp(Prop("blur"), 3)
	if n.OffsetY != 42 || n.Alpha != 0.5 {
		t.Errorf("OffsetY/Alpha = %v/%v", n.OffsetY, n.Alpha)
	}
	if n.Prop(PropY) != 42 || n.Prop(Prop("blur")) != 0 {
		t.Error("Prop read back wrong")
	}
}

// --- Layout ---

func TestLayoutBoundsIgnoresOffsets(t *testing.T) {
	doc := NewDocument(800)
	s := box("s", 1000, 500)
	c := box("c", 100, 50)
	doc.AddChild(s)
	s.AddChild(c)
	c.OffsetY = -40

	lb := LayoutBounds(c)
	if lb.Y != 1100 || lb.Height != 50 {
		t.Errorf("LayoutBounds = %v, want Y=1100 H=50", lb)
	}
	vb := VisualBounds(c)
	if vb.Y != 1060 {
		t.Errorf("VisualBounds.Y = %v, want 1060", vb.Y)
	}
}

func TestVisualBoundsScalesAroundCenter(t *testing.T) {
	n := NewContainer("n")
	n.Width, n.Height = 100, 100
	n.Scale = 2
	vb := VisualBounds(n)
	if vb != (Rect{X: -50, Y: -50, Width: 200, Height: 200}) {
		t.Errorf("VisualBounds = %v", vb)
	}
}

func TestWorldAlpha(t *testing.T) {
	p := NewContainer("p")
	c := NewContainer("c")
	p.AddChild(c)
	p.Alpha = 0.5
	c.Alpha = 0.5
	if WorldAlpha(c) != 0.25 {
		t.Errorf("WorldAlpha = %v, want 0.25", WorldAlpha(c))
	}
}

package ebitenhost

import (
	"testing"

	"github.com/phanxgames/scrollfx"
)

func page() (*scrollfx.Node, *scrollfx.Node, *scrollfx.Node) {
	doc := scrollfx.NewDocument(800)
	panel := scrollfx.NewContainer("panel")
	panel.Y, panel.Width, panel.Height = 1000, 800, 400
	panel.Fill = true
	panel.Color = scrollfx.Color{R: 0.1, G: 0.1, B: 0.1, A: 1}
	img := scrollfx.NewImage("img", "baita.webp", "Baita")
	img.Width, img.Height = 800, 300
	panel.AddChild(img)
	doc.AddChild(panel)
	return doc, panel, img
}

func TestDrawListCullsOffscreen(t *testing.T) {
	doc, _, _ := page()
	items := drawList(nil, doc, scrollfx.Rect{Width: 800, Height: 600}, 0)
	if len(items) != 0 {
		t.Errorf("items at the top = %d, want 0", len(items))
	}

	items = drawList(nil, doc, scrollfx.Rect{Y: 700, Width: 800, Height: 600}, 700)
	if len(items) != 2 {
		t.Fatalf("items = %d, want 2", len(items))
	}
	if items[0].node.Name != "panel" || items[1].node.Name != "img" {
		t.Errorf("paint order = %q, %q", items[0].node.Name, items[1].node.Name)
	}
	if items[1].rect.Y != 300 {
		t.Errorf("image screen Y = %v, want 300", items[1].rect.Y)
	}
}

func TestDrawListAppliesVisualState(t *testing.T) {
	doc, panel, img := page()
	panel.Alpha = 0.5
	img.OffsetY = -75
	img.Brightness = 0.5

	items := drawList(nil, doc, scrollfx.Rect{Y: 1000, Width: 800, Height: 600}, 1000)
	if len(items) != 2 {
		t.Fatalf("items = %d", len(items))
	}
	it := items[1]
	if it.rect.Y != -75 {
		t.Errorf("image Y = %v, want -75", it.rect.Y)
	}
	if it.color.A != 0.5 || it.color.R != 0.5 {
		t.Errorf("image tint = %+v", it.color)
	}
}

func TestDrawListSkipsHidden(t *testing.T) {
	doc, panel, _ := page()
	view := scrollfx.Rect{Y: 1000, Width: 800, Height: 600}

	panel.Alpha = 0
	if items := drawList(nil, doc, view, 1000); len(items) != 0 {
		t.Errorf("transparent subtree drew %d items", len(items))
	}
	panel.Alpha = 1
	panel.Visible = false
	if items := drawList(nil, doc, view, 1000); len(items) != 0 {
		t.Errorf("invisible subtree drew %d items", len(items))
	}
}

func TestDrawListText(t *testing.T) {
	doc := scrollfx.NewDocument(800)
	title := scrollfx.NewText("title", "Baita Paradiso")
	title.Width, title.Height = 800, 16
	doc.AddChild(title)
	view := scrollfx.Rect{Width: 800, Height: 600}

	items := drawList(nil, doc, view, 0)
	if len(items) != 2 || items[0].text != "Baita" || items[1].text != "Paradiso" {
		t.Fatalf("unsplit items = %+v", items)
	}
	if items[1].rect.X != 36 {
		t.Errorf("second word X = %v, want 36", items[1].rect.X)
	}

	art, err := scrollfx.Split(title, scrollfx.SplitChars)
	if err != nil {
		t.Fatal(err)
	}
	defer art.Release()
	items = drawList(nil, doc, view, 0)
	if len(items) != 13 {
		t.Errorf("split items = %d, want 13 (spaces skipped)", len(items))
	}
}

func TestToRGBA(t *testing.T) {
	c := toRGBA(scrollfx.Color{R: 1, G: 0.5, B: 0, A: 0.5})
	if c.A != 128 || c.R != 128 || c.B != 0 {
		t.Errorf("toRGBA = %+v", c)
	}
	if c := toRGBA(scrollfx.Color{R: 2, A: -1}); c.A != 0 || c.R != 0 {
		t.Errorf("clamped = %+v", c)
	}
}

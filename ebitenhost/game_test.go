package ebitenhost

import (
	"testing"

	"github.com/phanxgames/scrollfx"
)

type fakeOverlay struct {
	root    *scrollfx.Node
	updated float64
}

func (f *fakeOverlay) Root() *scrollfx.Node { return f.root }
func (f *fakeOverlay) Update(dt float64)    { f.updated += dt }

func TestNewGameDefaults(t *testing.T) {
	obs := scrollfx.NewObserver(scrollfx.NewDocument(800), nil)
	g := NewGame(obs, Config{}, nil)
	if g.cfg.Width != 1280 || g.cfg.Height != 720 || g.cfg.WheelStep != 60 {
		t.Errorf("config = %+v", g.cfg)
	}
	if obs.Viewport().Width != 1280 || obs.Viewport().Height != 720 {
		t.Errorf("viewport not resized: %+v", obs.Viewport())
	}
	if w, h := g.Layout(100, 100); w != 1280 || h != 720 {
		t.Errorf("Layout = %dx%d", w, h)
	}
}

func TestWheelScrolls(t *testing.T) {
	obs := scrollfx.NewObserver(scrollfx.NewDocument(800), nil)
	g := NewGame(obs, Config{Width: 800, Height: 600}, nil)
	g.wheel(-2)
	if obs.ScrollY() != 120 {
		t.Errorf("ScrollY = %v, want 120", obs.ScrollY())
	}
	g.wheel(5)
	if obs.ScrollY() != 0 {
		t.Errorf("ScrollY = %v, want clamped 0", obs.ScrollY())
	}
}

func TestSmoothTo(t *testing.T) {
	obs := scrollfx.NewObserver(scrollfx.NewDocument(800), nil)
	g := NewGame(obs, Config{Width: 800, Height: 600, PageDuration: 0.5}, nil)
	g.smoothTo(540)
	for i := 0; i < 60; i++ {
		obs.Update(1.0 / 60)
	}
	if obs.ScrollY() != 540 {
		t.Errorf("ScrollY = %v, want 540", obs.ScrollY())
	}
}

func TestClickRouting(t *testing.T) {
	doc := scrollfx.NewDocument(800)
	card := scrollfx.NewContainer("card")
	card.Width, card.Height = 800, 600
	docClicks := 0
	card.OnClick = func(scrollfx.ClickContext) { docClicks++ }
	doc.AddChild(card)
	obs := scrollfx.NewObserver(doc, nil)

	overlayRoot := scrollfx.NewContainer("overlay")
	overlayRoot.Width, overlayRoot.Height = 800, 600
	overlayClicks := 0
	overlayRoot.OnClick = func(scrollfx.ClickContext) { overlayClicks++ }
	overlayRoot.Visible = false
	ov := &fakeOverlay{root: overlayRoot}
	g := NewGame(obs, Config{Width: 800, Height: 600}, ov)

	if hit := g.click(10, 10); hit != card || docClicks != 1 {
		t.Fatalf("hidden overlay: hit = %v, doc clicks = %d", hit, docClicks)
	}
	overlayRoot.Visible = true
	if hit := g.click(10, 10); hit != overlayRoot || overlayClicks != 1 || docClicks != 1 {
		t.Errorf("visible overlay: overlay clicks = %d, doc clicks = %d", overlayClicks, docClicks)
	}
}

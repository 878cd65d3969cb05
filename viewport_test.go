package scrollfx

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestViewportDefaults(t *testing.T) {
	v := NewViewport(800, 600)
	if v.ScrollY != 0 || v.Width != 800 || v.Height != 600 {
		t.Errorf("viewport = %+v", v)
	}
	if !math.IsInf(v.MaxScroll(), 1) {
		t.Errorf("MaxScroll without content = %v, want +Inf", v.MaxScroll())
	}
}

func TestViewportClamp(t *testing.T) {
	v := NewViewport(800, 600)
	v.ContentHeight = 2000
	tests := []struct {
		to, want float64
	}{
		{-50, 0},
		{700, 700},
		{1400, 1400},
		{9000, 1400},
	}
	for _, tt := range tests {
		v.ScrollTo(tt.to)
		if v.ScrollY != tt.want {
			t.Errorf("ScrollTo(%v) = %v, want %v", tt.to, v.ScrollY, tt.want)
		}
	}

	v.ContentHeight = 300 // shorter than the viewport
	v.ScrollTo(100)
	if v.ScrollY != 0 {
		t.Errorf("short content ScrollY = %v, want 0", v.ScrollY)
	}
}

func TestViewportScrollBy(t *testing.T) {
	v := NewViewport(800, 600)
	v.ScrollBy(120)
	v.ScrollBy(-20)
	if v.ScrollY != 100 {
		t.Errorf("ScrollY = %v, want 100", v.ScrollY)
	}
}

func TestViewportSmoothScroll(t *testing.T) {
	v := NewViewport(800, 600)
	v.SmoothScrollTo(1000, 1.0, ease.Linear)
	if !v.Scrolling() {
		t.Fatal("expected Scrolling after SmoothScrollTo")
	}
	v.update(0.5)
	if !approxEqual(v.ScrollY, 500, 1) {
		t.Errorf("halfway ScrollY = %v, want ~500", v.ScrollY)
	}
	v.update(0.5)
	if v.Scrolling() || v.ScrollY != 1000 {
		t.Errorf("ScrollY = %v, Scrolling = %v", v.ScrollY, v.Scrolling())
	}
}

func TestViewportScrollToCancelsSmooth(t *testing.T) {
	v := NewViewport(800, 600)
	v.SmoothScrollTo(1000, 1.0, ease.Linear)
	v.update(0.25)
	v.ScrollTo(40)
	v.update(0.25)
	if v.Scrolling() || v.ScrollY != 40 {
		t.Errorf("ScrollY = %v, Scrolling = %v", v.ScrollY, v.Scrolling())
	}
}

func TestViewportZeroDurationJumps(t *testing.T) {
	v := NewViewport(800, 600)
	v.SmoothScrollTo(300, 0, ease.Linear)
	if v.Scrolling() || v.ScrollY != 300 {
		t.Errorf("ScrollY = %v, Scrolling = %v", v.ScrollY, v.Scrolling())
	}
}

func TestViewportCoordinates(t *testing.T) {
	v := NewViewport(800, 600)
	v.ScrollTo(250)
	if vb := v.VisibleBounds(); vb != (Rect{0, 250, 800, 600}) {
		t.Errorf("VisibleBounds = %v", vb)
	}
	sx, sy := v.DocumentToScreen(10, 300)
	if sx != 10 || sy != 50 {
		t.Errorf("DocumentToScreen = (%v,%v)", sx, sy)
	}
	x, y := v.ScreenToDocument(sx, sy)
	if x != 10 || y != 300 {
		t.Errorf("ScreenToDocument = (%v,%v)", x, y)
	}
}

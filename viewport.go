package scrollfx

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Viewport is the visible window onto the document: its size and the
// current vertical scroll offset.
type Viewport struct {
	// ScrollY is the document-space Y shown at the top of the viewport.
	ScrollY float64
	// Width and Height are the viewport size in pixels.
	Width, Height float64

	// ContentHeight is the document height scrolling is clamped to.
	// Zero disables clamping.
	ContentHeight float64

	scrollTween *gween.Tween
}

// NewViewport creates a viewport of the given size scrolled to the top.
func NewViewport(width, height float64) *Viewport {
	return &Viewport{Width: width, Height: height}
}

// MaxScroll returns the largest reachable ScrollY.
func (v *Viewport) MaxScroll() float64 {
	if v.ContentHeight <= 0 {
		return math.Inf(1)
	}
	return math.Max(0, v.ContentHeight-v.Height)
}

// clamp restricts y to the scrollable range.
func (v *Viewport) clamp(y float64) float64 {
	return math.Max(0, math.Min(y, v.MaxScroll()))
}

// ScrollTo jumps to y, cancelling any smooth scroll in progress.
func (v *Viewport) ScrollTo(y float64) {
	v.scrollTween = nil
	v.ScrollY = v.clamp(y)
}

// ScrollBy jumps by dy.
func (v *Viewport) ScrollBy(dy float64) {
	v.ScrollTo(v.ScrollY + dy)
}

// SmoothScrollTo animates ScrollY to y over duration seconds.
func (v *Viewport) SmoothScrollTo(y float64, duration float32, easeFn ease.TweenFunc) {
	y = v.clamp(y)
	if duration <= 0 {
		v.ScrollTo(y)
		return
	}
	v.scrollTween = gween.New(float32(v.ScrollY), float32(y), duration, easeFn)
}

// Scrolling reports whether a smooth scroll is in progress.
func (v *Viewport) Scrolling() bool {
	return v.scrollTween != nil
}

// update advances a smooth scroll. Called from Observer.Update.
func (v *Viewport) update(dt float32) {
	if v.scrollTween == nil {
		return
	}
	val, done := v.scrollTween.Update(dt)
	v.ScrollY = v.clamp(float64(val))
	if done {
		v.scrollTween = nil
	}
}

// VisibleBounds returns the document-space rectangle currently on screen.
func (v *Viewport) VisibleBounds() Rect {
	return Rect{X: 0, Y: v.ScrollY, Width: v.Width, Height: v.Height}
}

// DocumentToScreen converts document coordinates to screen coordinates.
func (v *Viewport) DocumentToScreen(x, y float64) (sx, sy float64) {
	return x, y - v.ScrollY
}

// ScreenToDocument converts screen coordinates to document coordinates.
func (v *Viewport) ScreenToDocument(sx, sy float64) (x, y float64) {
	return sx, sy + v.ScrollY
}

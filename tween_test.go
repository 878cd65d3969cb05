package scrollfx

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenPropsReachesTarget(t *testing.T) {
	node := NewContainer("pos")
	node.OffsetY = 150
	node.Alpha = 0

	g := TweenProps(node, Props{PropY: 0, PropOpacity: 1}, 1.0, 0, ease.Linear)

	// Exact halves avoid float32 accumulation drift.
	g.Update(0.5)
	g.Update(0.5)

	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	if node.OffsetY != 0 || node.Alpha != 1 {
		t.Errorf("OffsetY/Alpha = %v/%v, want 0/1", node.OffsetY, node.Alpha)
	}
}

func TestTweenPropsInterpolates(t *testing.T) {
	node := NewContainer("alpha")
	tw := TweenProps(node, Props{PropOpacity: 0}, 1.0, 0, ease.Linear)

	tw.Update(0.5)
	if tw.Done {
		t.Fatal("should not be done at halfway")
	}
	if math.Abs(node.Alpha-0.5) > 0.05 {
		t.Errorf("Alpha = %f, want ~0.5 at halfway", node.Alpha)
	}
}

func TestTweenPropsDelay(t *testing.T) {
	node := NewContainer("delayed")
	tw := TweenProps(node, Props{PropY: 100}, 1.0, 0.5, ease.Linear)

	tw.Update(0.25)
	if tw.Started() || node.OffsetY != 0 {
		t.Fatalf("started during delay: OffsetY = %v", node.OffsetY)
	}

	// The 0.25s left after the delay runs out is applied this frame.
	tw.Update(0.5)
	if !tw.Started() {
		t.Fatal("expected Started after delay")
	}
	if math.Abs(node.OffsetY-25) > 0.5 {
		t.Errorf("OffsetY = %v, want ~25", node.OffsetY)
	}
}

func TestTweenPropsZeroDuration(t *testing.T) {
	node := NewContainer("snap")
	tw := TweenProps(node, Props{PropScale: 1.4, PropBrightness: 0.3}, 0, 0, ease.OutCubic)
	tw.Update(0)
	if !tw.Done {
		t.Fatal("zero duration should finish on first update")
	}
	if node.Scale != 1.4 || node.Brightness != 0.3 {
		t.Errorf("Scale/Brightness = %v/%v", node.Scale, node.Brightness)
	}
}

func TestTweenPropsDisposedNode(t *testing.T) {
	node := NewContainer("gone")
	tw := TweenProps(node, Props{PropY: 100}, 1.0, 0, ease.Linear)
	node.Dispose()
	tw.Update(0.5)
	if !tw.Done {
		t.Error("expected Done for disposed target")
	}
	if node.OffsetY != 0 {
		t.Errorf("disposed node written: OffsetY = %v", node.OffsetY)
	}
}

func TestTweenPropsIgnoresUnknownProps(t *testing.T) {
	node := NewContainer("n")
	tw := TweenProps(node, Props{"blur": 4, PropX: 10}, 0.5, 0, ease.Linear)
	tw.Update(0.5)
	if !tw.Done || node.OffsetX != 10 {
		t.Errorf("Done=%v OffsetX=%v", tw.Done, node.OffsetX)
	}
}

func TestTweenStop(t *testing.T) {
	node := NewContainer("n")
	tw := TweenProps(node, Props{PropY: 100}, 1.0, 0, ease.Linear)
	tw.Update(0.5)
	tw.Stop()
	y := node.OffsetY
	tw.Update(0.5)
	if node.OffsetY != y {
		t.Error("stopped group kept writing")
	}
}

func TestLookupEase(t *testing.T) {
	for _, name := range []string{"power4.out", "Power3.InOut", "none", "linear", "sine", "", "bounce.in"} {
		if _, err := LookupEase(name); err != nil {
			t.Errorf("LookupEase(%q): %v", name, err)
		}
	}
	if _, err := LookupEase("wobble.out"); err == nil {
		t.Error("expected error for unknown ease")
	}
}

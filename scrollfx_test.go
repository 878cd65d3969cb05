package scrollfx

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

// newTestPage returns an empty 800-wide document watched through an
// 800x600 viewport.
func newTestPage() (*Node, *Observer) {
	doc := NewDocument(800)
	return doc, NewObserver(doc, NewViewport(800, 600))
}

// box creates a full-width container at document-local y.
func box(name string, y, h float64) *Node {
	n := NewContainer(name)
	n.Y = y
	n.Width = 800
	n.Height = h
	return n
}

// run advances the observer by seconds in 60 Hz frames.
func run(o *Observer, seconds float64) {
	frames := int(math.Round(seconds * 60))
	for i := 0; i < frames; i++ {
		o.Update(1.0 / 60)
	}
}

// --- Rect ---

func TestRectContains(t *testing.T) {
	r := Rect{10, 20, 100, 50}
	tests := []struct {
		name   string
		x, y   float64
		expect bool
	}{
		{"inside", 50, 40, true},
		{"top-left corner", 10, 20, true},
		{"bottom-right corner", 110, 70, true},
		{"outside left", 9, 40, false},
		{"outside below", 50, 71, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.expect {
				t.Errorf("Rect%v.Contains(%v, %v) = %v, want %v", r, tt.x, tt.y, got, tt.expect)
			}
		})
	}
}

func TestRectIntersects(t *testing.T) {
	base := Rect{10, 10, 100, 100}
	tests := []struct {
		name   string
		other  Rect
		expect bool
	}{
		{"overlapping", Rect{50, 50, 100, 100}, true},
		{"adjacent bottom", Rect{10, 110, 50, 50}, true},
		{"disjoint above", Rect{10, -100, 50, 50}, false},
		{"disjoint below", Rect{10, 111, 50, 50}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Intersects(tt.other); got != tt.expect {
				t.Errorf("Intersects(%v) = %v, want %v", tt.other, got, tt.expect)
			}
		})
	}
}

// --- Enums ---

func TestKindText(t *testing.T) {
	for _, k := range []Kind{KindReveal, KindParallax, KindStaggerReveal} {
		b, err := k.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var got Kind
		if err := got.UnmarshalText(b); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", b, err)
		}
		if got != k {
			t.Errorf("round trip %v -> %v", k, got)
		}
	}
	var k Kind
	if err := k.UnmarshalText([]byte("explode")); err == nil {
		t.Error("expected error for unknown kind")
	}
	if err := k.UnmarshalText([]byte("")); err == nil {
		t.Error("expected error for empty kind")
	}
	if k.Valid() || k.String() != "Kind(0)" {
		t.Errorf("zero Kind: Valid = %v, String = %q", k.Valid(), k.String())
	}
}

func TestGranularityText(t *testing.T) {
	tests := map[string]Granularity{
		"":      SplitNone,
		"chars": SplitChars,
		"word":  SplitWords,
		"WORDS": SplitWords,
	}
	for in, want := range tests {
		var g Granularity
		if err := g.UnmarshalText([]byte(in)); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", in, err)
		}
		if g != want {
			t.Errorf("UnmarshalText(%q) = %v, want %v", in, g, want)
		}
	}
	var g Granularity
	if err := g.UnmarshalText([]byte("lines")); err == nil {
		t.Error("expected error for lines")
	}
}

func TestPlayStateString(t *testing.T) {
	if StateIdle.String() != "not-yet-entered" {
		t.Errorf("StateIdle = %q", StateIdle.String())
	}
	if StateSettledReverse.String() != "settled-reverse" {
		t.Errorf("StateSettledReverse = %q", StateSettledReverse.String())
	}
	if !StatePlayingForward.Forward() || StatePlayingReverse.Forward() {
		t.Error("Forward() wrong")
	}
}

func TestPropsClone(t *testing.T) {
	p := Props{PropY: 10}
	c := p.Clone()
	c[PropY] = 20
	if p[PropY] != 10 {
		t.Error("Clone shares storage")
	}
	if Props(nil).Clone() != nil {
		t.Error("nil Clone should be nil")
	}
	if Prop("blur").Valid() {
		t.Error("blur should not be a valid prop")
	}
}

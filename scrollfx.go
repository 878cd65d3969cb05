package scrollfx

import (
	"fmt"
	"strings"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint.
var ColorWhite = Color{1, 1, 1, 1}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward (document order).
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Bottom returns the Y coordinate of the rectangle's lower edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// NodeType distinguishes how the host draws a Node.
type NodeType uint8

const (
	NodeTypeContainer NodeType = iota // group node with no visual output
	NodeTypeImage                     // placeholder for an image asset reference
	NodeTypeText                      // a run of text laid out by a Measurer
	NodeTypeSpan                      // wrapper created by Split
)

// Prop names an animatable visual property of a Node.
type Prop string

const (
	PropX          Prop = "x"          // horizontal offset in pixels
	PropY          Prop = "y"          // vertical offset in pixels
	PropOpacity    Prop = "opacity"    // 0..1, multiplied into Alpha
	PropScale      Prop = "scale"      // uniform scale around the center
	PropRotation   Prop = "rotation"   // rotateX-style flip in degrees
	PropBrightness Prop = "brightness" // 0 = black, 1 = unchanged
)

var knownProps = [...]Prop{PropX, PropY, PropOpacity, PropScale, PropRotation, PropBrightness}

// Valid reports whether p is one of the known props.
func (p Prop) Valid() bool {
	for _, k := range knownProps {
		if p == k {
			return true
		}
	}
	return false
}

// Props maps visual properties to values. A nil Props animates nothing.
type Props map[Prop]float64

// Clone returns a copy of p.
func (p Props) Clone() Props {
	if p == nil {
		return nil
	}
	out := make(Props, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Kind selects how a Binding reacts to scrolling. The zero Kind is unset
// and never valid.
type Kind uint8

const (
	KindReveal        Kind = iota + 1 // one-shot toggle on trigger start crossing
	KindParallax                      // continuous function of scroll position
	KindStaggerReveal                 // reveal applied to ordered sub-targets
)

var kindNames = [...]string{
	KindReveal:        "reveal",
	KindParallax:      "parallax",
	KindStaggerReveal: "stagger-reveal",
}

// Valid reports whether k is one of the defined kinds.
func (k Kind) Valid() bool {
	return k >= KindReveal && k <= KindStaggerReveal
}

func (k Kind) String() string {
	if k.Valid() {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(b []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(b)))
	for i, name := range kindNames {
		if name != "" && s == name {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown effect kind %q", s)
}

// PlayState is the playback state of a reveal or stagger-reveal binding.
// Parallax bindings stay in StateIdle.
type PlayState uint8

const (
	StateIdle            PlayState = iota // not yet entered
	StatePlayingForward                   // animating from -> to
	StateSettledForward                   // reached to
	StatePlayingReverse                   // animating back toward from
	StateSettledReverse                   // reached from after a reverse
)

var stateNames = [...]string{
	"not-yet-entered",
	"playing-forward",
	"settled-forward",
	"playing-reverse",
	"settled-reverse",
}

func (s PlayState) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("PlayState(%d)", s)
}

// Forward reports whether the state is heading toward or resting at the
// entered side of the toggle.
func (s PlayState) Forward() bool {
	return s == StatePlayingForward || s == StateSettledForward
}

// Granularity selects the unit Split wraps text into.
type Granularity uint8

const (
	SplitNone  Granularity = iota // no splitting
	SplitChars                    // one wrapper per grapheme cluster
	SplitWords                    // one wrapper per whitespace-delimited word
)

var granularityNames = [...]string{"", "chars", "words"}

func (g Granularity) String() string {
	if int(g) < len(granularityNames) {
		return granularityNames[g]
	}
	return fmt.Sprintf("Granularity(%d)", g)
}

// MarshalText implements encoding.TextMarshaler.
func (g Granularity) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (g *Granularity) UnmarshalText(b []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(b))) {
	case "", "none":
		*g = SplitNone
	case "chars", "char", "characters":
		*g = SplitChars
	case "words", "word":
		*g = SplitWords
	default:
		return fmt.Errorf("unknown split granularity %q", string(b))
	}
	return nil
}

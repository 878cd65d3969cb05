package scrollfx

import (
	"fmt"
	"strconv"
	"strings"
)

// Anchor pins a point on the trigger element to a line across the viewport.
// Element is a fraction of the trigger's height (0 = top edge, 1 = bottom
// edge); Viewport is a fraction of the viewport height measured from its top.
// The anchor is reached when the element point scrolls onto the viewport line.
type Anchor struct {
	Element  float64
	Viewport float64
}

// Default anchors, matching ScrollTrigger's defaults.
var (
	DefaultStart = Anchor{Element: 0, Viewport: 1} // "top bottom"
	DefaultEnd   = Anchor{Element: 1, Viewport: 0} // "bottom top"
)

// ParseAnchor reads a two-word anchor such as "top 85%", "bottom top" or
// "center 50%". Each word is top, center, bottom or a percentage.
func ParseAnchor(s string) (Anchor, error) {
	parts := strings.Fields(s)
	if len(parts) != 2 {
		return Anchor{}, fmt.Errorf("anchor %q: want \"<element> <viewport>\"", s)
	}
	el, err := parseEdge(parts[0])
	if err != nil {
		return Anchor{}, fmt.Errorf("anchor %q: %w", s, err)
	}
	vp, err := parseEdge(parts[1])
	if err != nil {
		return Anchor{}, fmt.Errorf("anchor %q: %w", s, err)
	}
	return Anchor{Element: el, Viewport: vp}, nil
}

// MustParseAnchor is ParseAnchor for literals; it panics on error.
func MustParseAnchor(s string) Anchor {
	a, err := ParseAnchor(s)
	if err != nil {
		panic(err)
	}
	return a
}

func parseEdge(word string) (float64, error) {
	switch strings.ToLower(word) {
	case "top":
		return 0, nil
	case "center":
		return 0.5, nil
	case "bottom":
		return 1, nil
	}
	if strings.HasSuffix(word, "%") {
		v, err := strconv.ParseFloat(strings.TrimSuffix(word, "%"), 64)
		if err != nil {
			return 0, fmt.Errorf("bad percentage %q", word)
		}
		return v / 100, nil
	}
	return 0, fmt.Errorf("unknown edge %q", word)
}

func formatEdge(v float64) string {
	switch v {
	case 0:
		return "top"
	case 0.5:
		return "center"
	case 1:
		return "bottom"
	}
	return strconv.FormatFloat(v*100, 'f', -1, 64) + "%"
}

func (a Anchor) String() string {
	return formatEdge(a.Element) + " " + formatEdge(a.Viewport)
}

// MarshalText implements encoding.TextMarshaler.
func (a Anchor) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Anchor) UnmarshalText(b []byte) error {
	v, err := ParseAnchor(string(b))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// ScrollPosition returns the scroll offset at which the anchor is reached
// for a trigger occupying bounds in a viewport viewportH tall.
func (a Anchor) ScrollPosition(bounds Rect, viewportH float64) float64 {
	return bounds.Y + a.Element*bounds.Height - a.Viewport*viewportH
}

// Zone is the scroll span a binding reacts to.
type Zone struct {
	Start Anchor
	End   Anchor
}

// DefaultZone spans from the trigger's top meeting the viewport bottom to its
// bottom leaving the viewport top.
var DefaultZone = Zone{Start: DefaultStart, End: DefaultEnd}

// Resolve converts the zone into absolute scroll offsets.
func (z Zone) Resolve(bounds Rect, viewportH float64) (start, end float64) {
	return z.Start.ScrollPosition(bounds, viewportH), z.End.ScrollPosition(bounds, viewportH)
}

// Progress returns how far scrollY has travelled from start to end, clamped
// to [0, 1]. An empty or inverted span reports 0 before start and 1 after.
func Progress(scrollY, start, end float64) float64 {
	if end <= start {
		if scrollY < start {
			return 0
		}
		return 1
	}
	p := (scrollY - start) / (end - start)
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}

package scrollfx

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Errors returned by Split.
var (
	ErrDetached     = errors.New("scrollfx: node is not attached to a document")
	ErrAlreadySplit = errors.New("scrollfx: node is already split")
)

// Measurer is the interface for text measurement and layout.
type Measurer interface {
	MeasureString(text string) (width, height float64)
	LineHeight() float64
}

// MonoMeasurer measures text on a fixed cell grid. Wide graphemes (CJK,
// emoji) take two cells.
type MonoMeasurer struct {
	CellWidth  float64
	CellHeight float64
}

// DefaultMeasurer matches the glyph grid of ebitenutil.DebugPrint.
var DefaultMeasurer = MonoMeasurer{CellWidth: 6, CellHeight: 16}

// MeasureString returns the width of text in cells times CellWidth.
func (m MonoMeasurer) MeasureString(text string) (width, height float64) {
	return float64(uniseg.StringWidth(text)) * m.CellWidth, m.CellHeight
}

// LineHeight returns CellHeight.
func (m MonoMeasurer) LineHeight() float64 {
	return m.CellHeight
}

func measurerOf(n *Node) Measurer {
	if n.Measurer != nil {
		return n.Measurer
	}
	return DefaultMeasurer
}

// textSegment is a word or a whitespace run placed by layoutText.
type textSegment struct {
	text  string
	space bool
	x, y  float64
	w, h  float64
}

// tokenize cuts text into alternating word and whitespace runs along
// grapheme boundaries. Concatenating the runs reproduces text exactly.
func tokenize(text string) []textSegment {
	var segs []textSegment
	g := uniseg.NewGraphemes(text)
	start, end := 0, 0
	curSpace := false
	for g.Next() {
		from, to := g.Positions()
		r, _ := utf8.DecodeRuneInString(text[from:to])
		space := unicode.IsSpace(r)
		if end > start && space != curSpace {
			segs = append(segs, textSegment{text: text[start:end], space: curSpace})
			start = from
		}
		curSpace = space
		end = to
	}
	if end > start {
		segs = append(segs, textSegment{text: text[start:end], space: curSpace})
	}
	return segs
}

// layoutText places every segment of text the way the unsplit node would be
// drawn: words wrap as a whole at wrap (0 disables wrapping) and newlines
// inside whitespace runs start a new line.
func layoutText(text string, m Measurer, wrap float64) []textSegment {
	segs := tokenize(text)
	lh := m.LineHeight()
	x, y := 0.0, 0.0
	for i := range segs {
		s := &segs[i]
		if s.space && strings.ContainsRune(s.text, '\n') {
			s.x, s.y, s.h = x, y, lh
			breaks := strings.Count(s.text, "\n")
			y += float64(breaks) * lh
			tail := s.text[strings.LastIndexByte(s.text, '\n')+1:]
			x, _ = m.MeasureString(tail)
			continue
		}
		w, _ := m.MeasureString(s.text)
		if !s.space && wrap > 0 && x > 0 && x+w > wrap {
			x = 0
			y += lh
		}
		s.x, s.y, s.w, s.h = x, y, w, lh
		x += w
	}
	return segs
}

// MeasureText returns the laid-out size of a text node's content.
func MeasureText(n *Node) (width, height float64) {
	m := measurerOf(n)
	segs := layoutText(n.Text, m, n.WrapWidth)
	if len(segs) == 0 {
		return 0, 0
	}
	for _, s := range segs {
		if !s.space && s.x+s.w > width {
			width = s.x + s.w
		}
	}
	last := segs[len(segs)-1]
	return width, last.y + m.LineHeight()
}

// SplitArtifact owns the wrapper spans Split put in place of a node's text.
// Release puts the original text back.
type SplitArtifact struct {
	node        *Node
	original    string
	granularity Granularity
	wrappers    []*Node // animatable units, in reading order
	spans       []*Node // wrappers plus whitespace spacers
	released    bool
}

// Split replaces the text of n with one span per character or word and
// returns the artifact holding them. Whitespace between units becomes
// spacer spans that are not returned as wrappers, so the concatenated span
// text always equals the original and line breaks fall where they did.
//
// Empty text yields an artifact with no wrappers. A node may be split once
// until its artifact is released.
func Split(n *Node, g Granularity) (*SplitArtifact, error) {
	if n == nil || !n.IsAttached() {
		return nil, ErrDetached
	}
	if n.split != nil {
		return nil, ErrAlreadySplit
	}
	if g != SplitChars && g != SplitWords {
		return nil, fmt.Errorf("split %q: unsupported granularity %v", n.Name, g)
	}

	a := &SplitArtifact{node: n, original: n.Text, granularity: g}
	n.split = a
	if n.Text == "" {
		return a, nil
	}

	m := measurerOf(n)
	for _, seg := range layoutText(n.Text, m, n.WrapWidth) {
		if seg.space {
			a.addSpan(seg.text, "space", seg.x, seg.y, seg.w, seg.h, false)
			continue
		}
		if g == SplitWords {
			a.addSpan(seg.text, "word", seg.x, seg.y, seg.w, seg.h, true)
			continue
		}
		x := seg.x
		gr := uniseg.NewGraphemes(seg.text)
		for gr.Next() {
			cluster := gr.Str()
			w, _ := m.MeasureString(cluster)
			a.addSpan(cluster, "char", x, seg.y, w, seg.h, true)
			x += w
		}
	}
	n.Text = ""
	return a, nil
}

func (a *SplitArtifact) addSpan(text, class string, x, y, w, h float64, unit bool) {
	span := newSpan(fmt.Sprintf("%s/%s%d", a.node.Name, class, len(a.spans)), text)
	span.Class = class
	span.X, span.Y = x, y
	span.Width, span.Height = w, h
	span.Color = a.node.Color
	span.Measurer = a.node.Measurer
	a.node.AddChild(span)
	a.spans = append(a.spans, span)
	if unit {
		a.wrappers = append(a.wrappers, span)
	}
}

// Node returns the split node.
func (a *SplitArtifact) Node() *Node { return a.node }

// Granularity returns the unit the artifact was split into.
func (a *SplitArtifact) Granularity() Granularity { return a.granularity }

// Wrappers returns the animatable units in reading order. The returned slice
// MUST NOT be mutated by the caller.
func (a *SplitArtifact) Wrappers() []*Node { return a.wrappers }

// Original returns the text the node held before the split.
func (a *SplitArtifact) Original() string { return a.original }

// Released reports whether Release has run.
func (a *SplitArtifact) Released() bool { return a.released }

// Text returns the concatenated text of every span, which equals Original
// while the artifact is live.
func (a *SplitArtifact) Text() string {
	var sb strings.Builder
	for _, s := range a.spans {
		sb.WriteString(s.Text)
	}
	return sb.String()
}

// Release removes every span and restores the node's original text. Visual
// changes made to the spans do not matter. Safe to call more than once.
func (a *SplitArtifact) Release() {
	if a.released {
		return
	}
	a.released = true
	for _, s := range a.spans {
		if s.Parent == a.node {
			a.node.RemoveChild(s)
		}
		s.Dispose()
	}
	a.spans = nil
	a.wrappers = nil
	if a.node.disposed {
		return
	}
	a.node.Text = a.original
	a.node.split = nil
}

// TextRun is one laid-out word of a text node, positioned relative to the
// node's box.
type TextRun struct {
	Text                string
	X, Y, Width, Height float64
}

// TextRuns lays out the text of n the way Split would place its words.
// Whitespace runs are omitted.
func TextRuns(n *Node) []TextRun {
	var runs []TextRun
	for _, s := range layoutText(n.Text, measurerOf(n), n.WrapWidth) {
		if s.space {
			continue
		}
		runs = append(runs, TextRun{Text: s.text, X: s.x, Y: s.y, Width: s.w, Height: s.h})
	}
	return runs
}

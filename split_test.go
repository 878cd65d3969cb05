package scrollfx

import (
	"errors"
	"testing"
)

func attachedText(content string) (*Node, *Node) {
	doc := NewDocument(800)
	n := NewText("text", content)
	doc.AddChild(n)
	return doc, n
}

func TestSplitWordsRoundTrip(t *testing.T) {
	original := "Il paradiso non è un luogo lontano,\n  è qui, tra le montagne"
	_, n := attachedText(original)

	a, err := Split(n, SplitWords)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if n.Text != "" {
		t.Errorf("node text should be moved into spans, got %q", n.Text)
	}
	if got := len(a.Wrappers()); got != 12 {
		t.Errorf("wrappers = %d, want 12", got)
	}
	if a.Text() != original {
		t.Errorf("span text = %q, want %q", a.Text(), original)
	}

	// Mutations made by animations must not matter.
	for _, w := range a.Wrappers() {
		w.OffsetY = 80
		w.Alpha = 0
		w.Rotation = -90
	}

	a.Release()
	if n.Text != original {
		t.Errorf("released text = %q, want %q", n.Text, original)
	}
	if len(n.Children()) != 0 {
		t.Errorf("residual children = %d", len(n.Children()))
	}
	if n.IsSplit() {
		t.Error("node still marked split")
	}
	a.Release() // idempotent
	if n.Text != original {
		t.Error("second Release changed the text")
	}
}

func TestSplitCharsGraphemes(t *testing.T) {
	_, n := attachedText("Café Baita")
	a, err := Split(n, SplitChars)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	ws := a.Wrappers()
	if len(ws) != 9 {
		t.Fatalf("wrappers = %d, want 9", len(ws))
	}
	if ws[3].Text != "é" {
		t.Errorf("wrapper 3 = %q, want combining cluster", ws[3].Text)
	}
	for _, w := range ws {
		if w.Type != NodeTypeSpan || !w.HasClass("char") {
			t.Errorf("wrapper %q has type %d class %q", w.Name, w.Type, w.Class)
		}
	}
	a.Release()
	if n.Text != "Café Baita" {
		t.Errorf("Text = %q", n.Text)
	}
}

func TestSplitPreservesWrapPositions(t *testing.T) {
	_, n := attachedText("aaa bbb ccc")
	n.WrapWidth = 40

	words, err := Split(n, SplitWords)
	if err != nil {
		t.Fatal(err)
	}
	want := []struct{ x, y float64 }{{0, 0}, {0, 16}, {0, 32}}
	for i, w := range words.Wrappers() {
		if w.X != want[i].x || w.Y != want[i].y {
			t.Errorf("word %d at (%v,%v), want (%v,%v)", i, w.X, w.Y, want[i].x, want[i].y)
		}
	}
	words.Release()

	chars, err := Split(n, SplitChars)
	if err != nil {
		t.Fatal(err)
	}
	ws := chars.Wrappers()
	if len(ws) != 9 {
		t.Fatalf("chars = %d, want 9", len(ws))
	}
	// "bbb" sits on the second line, one cell apart.
	for i, x := range []float64{0, 6, 12} {
		c := ws[3+i]
		if c.X != x || c.Y != 16 {
			t.Errorf("char %d at (%v,%v), want (%v,16)", 3+i, c.X, c.Y, x)
		}
	}
	chars.Release()

	w, h := MeasureText(n)
	if w != 18 || h != 48 {
		t.Errorf("MeasureText = %vx%v, want 18x48", w, h)
	}
}

func TestSplitEmptyText(t *testing.T) {
	_, n := attachedText("")
	a, err := Split(n, SplitChars)
	if err != nil {
		t.Fatalf("Split of empty text: %v", err)
	}
	if len(a.Wrappers()) != 0 {
		t.Errorf("wrappers = %d, want 0", len(a.Wrappers()))
	}
	a.Release()
	if n.Text != "" || len(n.Children()) != 0 {
		t.Error("empty release left residue")
	}
}

func TestSplitTwiceRejected(t *testing.T) {
	_, n := attachedText("Menu")
	a, err := Split(n, SplitChars)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Split(n, SplitWords); !errors.Is(err, ErrAlreadySplit) {
		t.Errorf("second Split err = %v, want ErrAlreadySplit", err)
	}
	if len(a.Wrappers()) != 4 || len(n.Children()) != 4 {
		t.Error("rejected split changed the node")
	}
	a.Release()
	if _, err := Split(n, SplitWords); err != nil {
		t.Errorf("Split after Release: %v", err)
	}
}

func TestSplitDetached(t *testing.T) {
	n := NewText("orphan", "Contatti")
	if _, err := Split(n, SplitChars); !errors.Is(err, ErrDetached) {
		t.Errorf("err = %v, want ErrDetached", err)
	}
	if _, err := Split(nil, SplitChars); !errors.Is(err, ErrDetached) {
		t.Errorf("nil err = %v, want ErrDetached", err)
	}
}

func TestSplitUnsupportedGranularity(t *testing.T) {
	_, n := attachedText("x")
	if _, err := Split(n, SplitNone); err == nil {
		t.Error("expected error for SplitNone")
	}
	if n.IsSplit() {
		t.Error("failed split marked node")
	}
}

func TestReleaseAfterDispose(t *testing.T) {
	_, n := attachedText("Storia")
	a, err := Split(n, SplitChars)
	if err != nil {
		t.Fatal(err)
	}
	n.Dispose()
	a.Release()
	if !a.Released() {
		t.Error("Released should be true")
	}
}

func TestTextRuns(t *testing.T) {
	_, n := attachedText("aaa bbb\nccc")
	runs := TextRuns(n)
	want := []TextRun{
		{Text: "aaa", X: 0, Y: 0, Width: 18, Height: 16},
		{Text: "bbb", X: 24, Y: 0, Width: 18, Height: 16},
		{Text: "ccc", X: 0, Y: 16, Width: 18, Height: 16},
	}
	if len(runs) != len(want) {
		t.Fatalf("runs = %+v", runs)
	}
	for i := range want {
		if runs[i] != want[i] {
			t.Errorf("run %d = %+v, want %+v", i, runs[i], want[i])
		}
	}
}

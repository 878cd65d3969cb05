// Package scrollfx drives scroll-triggered entrance and parallax effects on
// a retained node tree.
//
// A page is a tree of [Node] values under a document root ([NewDocument]).
// One [Observer] owns the scroll position and every registered [Binding];
// the host calls [Observer.Update] once per frame. Sections mount through
// [Mount], which turns a declarative [Spec] into bindings and removes all
// of them again on [Controller.Unmount].
//
// # Quick start
//
//	doc := scrollfx.NewDocument(1280)
//	section := scrollfx.NewContainer("storia")
//	section.Y, section.Height = 900, 1600
//	doc.AddChild(section)
//	title := scrollfx.NewText("title", "Una baita tra le vette")
//	section.AddChild(title)
//
//	obs := scrollfx.NewObserver(doc, scrollfx.NewViewport(1280, 800))
//	ctrl, err := scrollfx.Mount(obs, section, scrollfx.Spec{
//		Section: "storia",
//		Effects: []scrollfx.Effect{{
//			Kind:     scrollfx.KindStaggerReveal,
//			Target:   "#title",
//			Split:    scrollfx.SplitChars,
//			From:     scrollfx.Props{scrollfx.PropY: 150, scrollfx.PropOpacity: 0},
//			To:       scrollfx.Props{scrollfx.PropY: 0, scrollfx.PropOpacity: 1},
//			Start:    "top 85%",
//			Duration: 1.4,
//			Stagger:  0.02,
//			Ease:     "power4.out",
//		}},
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer ctrl.Unmount()
//
//	// each frame:
//	obs.ScrollBy(wheelDelta)
//	obs.Update(1.0 / 60)
//
// # Effects
//
// reveal and stagger-reveal play forward when the trigger's start anchor is
// scrolled past and back when it is scrolled above again, on every crossing.
// parallax maps scroll progress through the zone linearly onto its props
// every frame. Tweens use [gween]; ease names follow GSAP ("power3.out").
//
// # Text splitting
//
// [Split] replaces a text node's content with one span per grapheme or word
// laid out exactly where the unsplit text would be; [SplitArtifact.Release]
// restores it byte-for-byte.
//
// Rendering is left to the host; package ebitenhost draws the tree with
// Ebitengine.
//
// [gween]: https://github.com/tanema/gween
package scrollfx

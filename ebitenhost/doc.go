// Package ebitenhost runs a scrollfx page in an Ebitengine window.
//
// The [Game] feeds the mouse wheel, keyboard and clicks into a
// [scrollfx.Observer] and draws the node tree every frame: containers with
// Fill set and image placeholders as solid rectangles, text through
// ebitenutil's debug font, each tinted by its animated opacity and
// brightness. Nodes outside the viewport are culled.
//
// An optional [Overlay] (the gallery lightbox) is drawn in screen space above
// the document and takes every click while it is visible.
//
//	if err := ebitenhost.Run(obs, ebitenhost.Config{Title: "Baita"}, nil); err != nil {
//		log.Fatal(err)
//	}
package ebitenhost

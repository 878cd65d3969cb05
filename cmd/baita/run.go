package main

import (
	"github.com/spf13/cobra"

	"github.com/phanxgames/scrollfx"
	"github.com/phanxgames/scrollfx/ebitenhost"
)

// runCmd opens the page window.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the page in a window",
	Args:  cobra.NoArgs,
	RunE:  runWindow,
}

func runWindow(cmd *cobra.Command, args []string) error {
	s, err := newScene(cfg, logger)
	if err != nil {
		return err
	}
	defer s.close()

	return ebitenhost.Run(s.obs, ebitenhost.Config{
		Title:        s.page.Copy.HeroTitle,
		Width:        cfg.Window.Width,
		Height:       cfg.Window.Height,
		ShowFPS:      cfg.Window.ShowFPS,
		Background:   scrollfx.Color{R: 0.04, G: 0.04, B: 0.04, A: 1},
		WheelStep:    cfg.Scroll.WheelStep,
		PageDuration: float32(cfg.Scroll.PageDuration),
	}, s.page.Lightbox)
}

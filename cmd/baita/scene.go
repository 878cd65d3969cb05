package main

import (
	"fmt"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"go.uber.org/zap"

	"github.com/phanxgames/scrollfx"
	"github.com/phanxgames/scrollfx/ecs"
	"github.com/phanxgames/scrollfx/internal/config"
	"github.com/phanxgames/scrollfx/site"
)

// scene is a mounted page with its observer and ECS mirror.
type scene struct {
	page  *site.Page
	obs   *scrollfx.Observer
	world donburi.World
	sink  *ecs.DonburiSink
}

func newScene(cfg *config.Config, log *zap.Logger) (*scene, error) {
	lang, err := site.ParseLang(cfg.Lang)
	if err != nil {
		return nil, err
	}
	w, h := float64(cfg.Window.Width), float64(cfg.Window.Height)
	page := site.Build(lang, w, h)

	world := donburi.NewWorld()
	sink := ecs.NewDonburiSink(world)
	obs := scrollfx.NewObserver(page.Doc, scrollfx.NewViewport(w, h),
		scrollfx.WithLogger(log),
		scrollfx.WithEventSink(sink),
		scrollfx.WithWatchMargin(cfg.Scroll.WatchMargin))
	obs.SetDebugMode(cfg.Log.Debug)

	ecs.BindingEventType.Subscribe(world, func(_ donburi.World, e scrollfx.BindingEvent) {
		log.Debug("binding state",
			zap.String("binding", e.Name),
			zap.Stringer("kind", e.Kind),
			zap.Stringer("state", e.State),
			zap.Float64("time", e.Time))
	})
	obs.SetUpdateFunc(func() error {
		events.ProcessAllEvents(world)
		return nil
	})

	specs, err := site.LoadSpecs(cfg.EffectsDir)
	if err != nil {
		return nil, fmt.Errorf("load effects: %w", err)
	}
	if err := page.Mount(obs, specs); err != nil {
		return nil, err
	}
	return &scene{page: page, obs: obs, world: world, sink: sink}, nil
}

func (s *scene) close() {
	s.page.Unmount()
}

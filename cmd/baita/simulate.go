package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/phanxgames/scrollfx"
	"github.com/phanxgames/scrollfx/ecs"
	"github.com/phanxgames/scrollfx/site"
)

var (
	scriptPath    string
	settleSeconds float64
	jsonOutput    bool
)

// simulateCmd runs the page headless.
var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Drive the page headless from a scroll script and print binding states",
	Long: `Runs the mounted page at 60 frames per second without a window. The
script is the JSON format of scrollfx.LoadTestScript; every "snapshot" step
prints the state of every binding. Without --script the page is toured
section by section and back to the top.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newScene(cfg, logger)
		if err != nil {
			return err
		}
		defer s.close()

		var script []byte
		if scriptPath != "" {
			script, err = os.ReadFile(scriptPath)
		} else {
			script, err = tourScript(s.page)
		}
		if err != nil {
			return err
		}

		snaps, err := simulate(s, script, settleSeconds)
		if err != nil {
			return err
		}
		if jsonOutput {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(snaps)
		}
		return writeSnapshots(cmd.OutOrStdout(), snaps)
	},
}

const (
	simFPS       = 60
	simMaxFrames = simFPS * 60 * 10
)

// scriptStep mirrors one step of the scroll script format.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// tourScript lets the intro play, then visits every section in page order
// and returns to the top.
func tourScript(p *site.Page) ([]byte, error) {
	steps := []scriptStep{
		{Action: "wait", Frames: 5 * simFPS},
		{Action: "snapshot", Label: "intro"},
	}
	for _, name := range site.SectionOrder[1:] {
		sec := p.Section(name)
		if sec == nil {
			continue
		}
		steps = append(steps,
			scriptStep{Action: "smooth", Y: sec.Y, Frames: simFPS},
			scriptStep{Action: "wait", Frames: 3 * simFPS},
			scriptStep{Action: "snapshot", Label: name},
		)
	}
	steps = append(steps,
		scriptStep{Action: "smooth", Y: 0, Frames: 2 * simFPS},
		scriptStep{Action: "wait", Frames: 3 * simFPS},
		scriptStep{Action: "snapshot", Label: "top"},
	)
	return json.Marshal(struct {
		Steps []scriptStep `json:"steps"`
	}{steps})
}

// bindingState is one row of a snapshot.
type bindingState struct {
	Section  string  `json:"section"`
	Name     string  `json:"name"`
	Kind     string  `json:"kind"`
	State    string  `json:"state"`
	Progress float64 `json:"progress"`
}

// snapshot records every binding at one point of the run.
type snapshot struct {
	Label    string         `json:"label"`
	Time     float64        `json:"time"`
	ScrollY  float64        `json:"scroll_y"`
	Revealed int            `json:"revealed"`
	Bindings []bindingState `json:"bindings"`
}

func takeSnapshot(label string, s *scene) snapshot {
	snap := snapshot{
		Label:    label,
		Time:     s.obs.Now(),
		ScrollY:  s.obs.ScrollY(),
		Revealed: ecs.CountState(s.world, scrollfx.StateSettledForward),
	}
	for _, c := range s.page.Controllers() {
		for _, b := range c.Bindings() {
			snap.Bindings = append(snap.Bindings, bindingState{
				Section:  c.Name(),
				Name:     b.Name,
				Kind:     b.Kind.String(),
				State:    b.State().String(),
				Progress: b.Progress(),
			})
		}
	}
	return snap
}

// simulate runs script to completion, then settle more seconds, and returns
// the snapshots it asked for plus a final "end" snapshot.
func simulate(s *scene, script []byte, settle float64) ([]snapshot, error) {
	runner, err := scrollfx.LoadTestScript(script)
	if err != nil {
		return nil, err
	}
	var snaps []snapshot
	runner.OnSnapshot = func(label string, _ *scrollfx.Observer) {
		snaps = append(snaps, takeSnapshot(label, s))
	}
	s.obs.SetTestRunner(runner)

	const dt = 1.0 / simFPS
	frames := 0
	for !runner.Done() {
		if frames >= simMaxFrames {
			return nil, fmt.Errorf("script still running after %d frames", frames)
		}
		if err := s.obs.Update(dt); err != nil {
			return nil, err
		}
		frames++
	}
	for i := 0; i < int(settle*simFPS); i++ {
		if err := s.obs.Update(dt); err != nil {
			return nil, err
		}
		frames++
	}
	snaps = append(snaps, takeSnapshot("end", s))
	logger.Info("simulation finished",
		zap.Int("frames", frames),
		zap.Int("snapshots", len(snaps)),
		zap.Float64("scrollY", s.obs.ScrollY()))
	return snaps, nil
}

func writeSnapshots(w io.Writer, snaps []snapshot) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, snap := range snaps {
		fmt.Fprintf(tw, "== %s\tt=%.2fs\tscroll=%.0f\trevealed=%d\n",
			snap.Label, snap.Time, snap.ScrollY, snap.Revealed)
		for _, b := range snap.Bindings {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%.3f\n", b.Section, b.Name, b.Kind, b.State, b.Progress)
		}
	}
	return tw.Flush()
}

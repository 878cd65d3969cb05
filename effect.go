package scrollfx

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Effect declares one scroll effect of a section. Target and Trigger are
// selectors resolved against the section root (see Node.Select).
//
// With Split set, the target's text is split and the wrappers become the
// binding targets, with the text node as trigger. Otherwise a ".class"
// target gives one binding per match for reveal and parallax, and one
// binding over all matches (trigger = first match) for stagger-reveal.
type Effect struct {
	Name            string      `yaml:"name"`
	Kind            Kind        `yaml:"kind"`
	Target          string      `yaml:"target"`
	Trigger         string      `yaml:"trigger,omitempty"`
	Split           Granularity `yaml:"split,omitempty"`
	From            Props       `yaml:"from,omitempty"`
	To              Props       `yaml:"to,omitempty"`
	Start           string      `yaml:"start,omitempty"`
	End             string      `yaml:"end,omitempty"`
	Duration        float64     `yaml:"duration,omitempty"`
	ReverseDuration float64     `yaml:"reverseDuration,omitempty"`
	Delay           float64     `yaml:"delay,omitempty"`
	Stagger         float64     `yaml:"stagger,omitempty"`
	Ease            string      `yaml:"ease,omitempty"`
	Scrub           float64     `yaml:"scrub,omitempty"`
}

// DefaultDuration is used by reveal effects that name no duration.
const DefaultDuration = 1.0

// Spec is the declarative animation spec of one section.
type Spec struct {
	Section string   `yaml:"section"`
	Effects []Effect `yaml:"effects"`
}

// zone resolves the effect's anchors, defaulting to DefaultZone.
func (e *Effect) zone() (Zone, error) {
	z := DefaultZone
	if e.Start != "" {
		a, err := ParseAnchor(e.Start)
		if err != nil {
			return z, err
		}
		z.Start = a
	}
	if e.End != "" {
		a, err := ParseAnchor(e.End)
		if err != nil {
			return z, err
		}
		z.End = a
	}
	return z, nil
}

// Validate checks one effect.
func (e *Effect) Validate() error {
	if e.Target == "" {
		return errors.New("no target")
	}
	if e.Kind == 0 {
		return errors.New("missing kind")
	}
	if !e.Kind.Valid() {
		return fmt.Errorf("unknown kind %v", e.Kind)
	}
	if len(e.From) == 0 && len(e.To) == 0 {
		return errors.New("no props to animate")
	}
	for _, props := range []Props{e.From, e.To} {
		for p := range props {
			if !p.Valid() {
				return fmt.Errorf("unknown prop %q", p)
			}
		}
	}
	if _, err := e.zone(); err != nil {
		return err
	}
	if _, err := LookupEase(e.Ease); err != nil {
		return err
	}
	if e.Duration < 0 || e.ReverseDuration < 0 || e.Delay < 0 || e.Stagger < 0 || e.Scrub < 0 {
		return errors.New("negative timing value")
	}
	return nil
}

// Validate checks every effect of the spec.
func (s *Spec) Validate() error {
	for i := range s.Effects {
		if err := s.Effects[i].Validate(); err != nil {
			return fmt.Errorf("section %q effect %d (%s): %w", s.Section, i, s.Effects[i].Name, err)
		}
	}
	return nil
}

// ParseSpec decodes and validates a YAML spec.
func ParseSpec(data []byte) (Spec, error) {
	var s Spec
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Spec{}, fmt.Errorf("parse spec: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Spec{}, fmt.Errorf("parse spec: %w", err)
	}
	return s, nil
}

// LoadSpec reads a YAML spec from path.
func LoadSpec(path string) (Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Spec{}, fmt.Errorf("load spec: %w", err)
	}
	return ParseSpec(data)
}

// MarshalSpecs encodes specs as a YAML stream, one document per section.
func MarshalSpecs(specs ...Spec) ([]byte, error) {
	var out []byte
	for i, s := range specs {
		data, err := yaml.Marshal(s)
		if err != nil {
			return nil, fmt.Errorf("marshal spec %q: %w", s.Section, err)
		}
		if i > 0 {
			out = append(out, "---\n"...)
		}
		out = append(out, data...)
	}
	return out, nil
}

// newBinding builds the runtime binding for targets. Defaults for duration
// and ease are filled in here.
func (e *Effect) newBinding(name string, targets []*Node, trigger *Node) (*Binding, error) {
	z, err := e.zone()
	if err != nil {
		return nil, err
	}
	fn, err := LookupEase(e.Ease)
	if err != nil {
		return nil, err
	}
	dur := e.Duration
	if dur == 0 && e.Kind != KindParallax {
		dur = DefaultDuration
	}
	return &Binding{
		Name:            name,
		Kind:            e.Kind,
		Targets:         targets,
		Trigger:         trigger,
		Zone:            z,
		From:            e.From.Clone(),
		To:              e.To.Clone(),
		Duration:        dur,
		ReverseDuration: e.ReverseDuration,
		Delay:           e.Delay,
		Stagger:         e.Stagger,
		Ease:            fn,
		Scrub:           e.Scrub,
	}, nil
}

package site

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/phanxgames/scrollfx"
)

//go:embed effects/*.yaml
var effectFS embed.FS

// SectionOrder lists the page sections from top to bottom. Each has an
// effect file under effects/.
var SectionOrder = []string{"hero", "storia", "sale", "menu", "contatti", "footer"}

// Specs parses the built-in effect files in page order.
func Specs() ([]scrollfx.Spec, error) {
	specs := make([]scrollfx.Spec, 0, len(SectionOrder))
	for _, name := range SectionOrder {
		data, err := effectFS.ReadFile("effects/" + name + ".yaml")
		if err != nil {
			return nil, fmt.Errorf("effects %q: %w", name, err)
		}
		spec, err := scrollfx.ParseSpec(data)
		if err != nil {
			return nil, fmt.Errorf("effects %q: %w", name, err)
		}
		if spec.Section == "" {
			spec.Section = name
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

// LoadSpecs reads <dir>/<section>.yaml for every section. Sections without
// a file fall back to the built-in effects.
func LoadSpecs(dir string) ([]scrollfx.Spec, error) {
	builtin, err := Specs()
	if err != nil {
		return nil, err
	}
	if dir == "" {
		return builtin, nil
	}
	for i, name := range SectionOrder {
		spec, err := scrollfx.LoadSpec(filepath.Join(dir, name+".yaml"))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		if spec.Section == "" {
			spec.Section = name
		}
		builtin[i] = spec
	}
	return builtin, nil
}

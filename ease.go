package scrollfx

import (
	"fmt"
	"strings"

	"github.com/tanema/gween/ease"
)

// easeTable maps GSAP-style ease names onto gween easing functions.
// powerN follows GSAP's numbering: power1 = quad, power2 = cubic,
// power3 = quart, power4 = quint.
var easeTable = map[string]ease.TweenFunc{
	"none":   ease.Linear,
	"linear": ease.Linear,

	"power1.in": ease.InQuad, "power1.out": ease.OutQuad, "power1.inout": ease.InOutQuad,
	"power2.in": ease.InCubic, "power2.out": ease.OutCubic, "power2.inout": ease.InOutCubic,
	"power3.in": ease.InQuart, "power3.out": ease.OutQuart, "power3.inout": ease.InOutQuart,
	"power4.in": ease.InQuint, "power4.out": ease.OutQuint, "power4.inout": ease.InOutQuint,

	"sine.in": ease.InSine, "sine.out": ease.OutSine, "sine.inout": ease.InOutSine,
	"expo.in": ease.InExpo, "expo.out": ease.OutExpo, "expo.inout": ease.InOutExpo,
	"circ.in": ease.InCirc, "circ.out": ease.OutCirc, "circ.inout": ease.InOutCirc,
	"back.in": ease.InBack, "back.out": ease.OutBack, "back.inout": ease.InOutBack,

	"elastic.in": ease.InElastic, "elastic.out": ease.OutElastic, "elastic.inout": ease.InOutElastic,
	"bounce.in": ease.InBounce, "bounce.out": ease.OutBounce, "bounce.inout": ease.InOutBounce,
}

// DefaultEase is used when an effect names no ease.
const DefaultEase = "power3.out"

// LookupEase resolves an ease name. Names are case-insensitive and a bare
// family ("power2") means its ".out" variant, as in GSAP.
func LookupEase(name string) (ease.TweenFunc, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		key = DefaultEase
	}
	if !strings.Contains(key, ".") && key != "none" && key != "linear" {
		key += ".out"
	}
	fn, ok := easeTable[key]
	if !ok {
		return nil, fmt.Errorf("unknown ease %q", name)
	}
	return fn, nil
}

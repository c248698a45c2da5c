package animation

import (
	"fmt"
	"sort"

	"github.com/fogleman/ease"
)

// EasingFunc maps linear progress in [0, 1] to eased progress.
// Back and elastic curves intentionally leave [0, 1] near their
// endpoints; callers must tolerate overshoot.
type EasingFunc func(t float64) float64

// The plain ease-in/out names use the sine curves, the gentlest of the
// families, leaving the steeper quad and cubic variants to their
// explicit names.
var easings = map[string]EasingFunc{
	"linear":              ease.Linear,
	"ease-in":             ease.InSine,
	"ease-out":            ease.OutSine,
	"ease-in-out":         ease.InOutSine,
	"ease-in-quad":        ease.InQuad,
	"ease-out-quad":       ease.OutQuad,
	"ease-in-out-quad":    ease.InOutQuad,
	"ease-in-cubic":       ease.InCubic,
	"ease-out-cubic":      ease.OutCubic,
	"ease-in-out-cubic":   ease.InOutCubic,
	"ease-in-back":        ease.InBack,
	"ease-out-back":       ease.OutBack,
	"ease-in-out-back":    ease.InOutBack,
	"ease-in-elastic":     ease.InElastic,
	"ease-out-elastic":    ease.OutElastic,
	"ease-in-out-elastic": ease.InOutElastic,
	"ease-in-bounce":      ease.InBounce,
	"ease-out-bounce":     ease.OutBounce,
	"ease-in-out-bounce":  ease.InOutBounce,
}

// LookupEasing resolves an easing curve by name.
// The catalog is closed; an unknown name is the only failure.
func LookupEasing(name string) (EasingFunc, error) {
	fn, ok := easings[name]
	if !ok {
		return nil, fmt.Errorf("unknown easing: %s", name)
	}
	return fn, nil
}

// EasingNames lists every supported easing name in sorted order
func EasingNames() []string {
	names := make([]string, 0, len(easings))
	for name := range easings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

package color

import (
	"fmt"
	"sort"
)

// Stop anchors a color at a position along the gradient axis
type Stop struct {
	Color RGB
	Pos   float64
}

// Gradient interpolates between ordered color stops on [0, 1].
// Angle is the declared axis in degrees; cell ramps across text are
// one-dimensional, so the angle is validated and recorded but does not
// change sampling.
type Gradient struct {
	stops []Stop
	Angle float64
}

// NewGradient builds a gradient from at least one stop.
// Stops are sorted by position; positions outside [0, 1] are clamped.
func NewGradient(stops []Stop) (*Gradient, error) {
	if len(stops) == 0 {
		return nil, fmt.Errorf("gradient requires at least one color stop")
	}
	owned := make([]Stop, len(stops))
	copy(owned, stops)
	for i := range owned {
		owned[i].Pos = clamp01(owned[i].Pos)
	}
	sort.SliceStable(owned, func(i, j int) bool {
		return owned[i].Pos < owned[j].Pos
	})
	return &Gradient{stops: owned}, nil
}

// Stops returns a copy of the ordered stop list
func (g *Gradient) Stops() []Stop {
	out := make([]Stop, len(g.stops))
	copy(out, g.stops)
	return out
}

// ColorAt samples the gradient at position t, clamped to [0, 1].
// Positions outside the stop range take the nearest endpoint color.
func (g *Gradient) ColorAt(t float64) RGB {
	t = clamp01(t)
	first := g.stops[0]
	last := g.stops[len(g.stops)-1]
	if t <= first.Pos {
		return first.Color
	}
	if t >= last.Pos {
		return last.Color
	}
	for i := 0; i < len(g.stops)-1; i++ {
		lo := g.stops[i]
		hi := g.stops[i+1]
		if lo.Pos <= t && t <= hi.Pos {
			span := hi.Pos - lo.Pos
			if span <= 0 {
				return hi.Color
			}
			return lo.Color.Lerp(hi.Color, (t-lo.Pos)/span)
		}
	}
	return last.Color
}

// Colors samples n evenly spaced colors including both endpoints
func (g *Gradient) Colors(n int) []RGB {
	if n <= 0 {
		return nil
	}
	out := make([]RGB, n)
	if n == 1 {
		out[0] = g.ColorAt(0)
		return out
	}
	for i := 0; i < n; i++ {
		out[i] = g.ColorAt(float64(i) / float64(n-1))
	}
	return out
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

package color

import (
	"fmt"
	"sort"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Palette is a non-empty ordered set of colors addressed cyclically
type Palette struct {
	colors []RGB
}

// NewPalette builds a palette from an ordered color list
func NewPalette(colors []RGB) (*Palette, error) {
	if len(colors) == 0 {
		return nil, fmt.Errorf("palette requires at least one color")
	}
	owned := make([]RGB, len(colors))
	copy(owned, colors)
	return &Palette{colors: owned}, nil
}

// Color returns the color at index i, wrapping in both directions
func (p *Palette) Color(i int) RGB {
	n := len(p.colors)
	i = ((i % n) + n) % n
	return p.colors[i]
}

// Len returns the number of colors in the palette
func (p *Palette) Len() int {
	return len(p.colors)
}

// Colors returns a copy of the palette's color list
func (p *Palette) Colors() []RGB {
	out := make([]RGB, len(p.colors))
	copy(out, p.colors)
	return out
}

// rainbowColors sweeps the HSV hue circle at full saturation and value
func rainbowColors(n int) []RGB {
	out := make([]RGB, n)
	for i := 0; i < n; i++ {
		hue := 360.0 * float64(i) / float64(n)
		out[i] = FromColorful(colorful.Hsv(hue, 1.0, 1.0))
	}
	return out
}

var builtins = map[string][]RGB{
	"rainbow": rainbowColors(7),
	"fire": {
		{R: 128, G: 17, B: 0},
		{R: 182, G: 34, B: 3},
		{R: 215, G: 53, B: 2},
		{R: 252, G: 100, B: 0},
		{R: 255, G: 170, B: 0},
		{R: 255, G: 220, B: 80},
	},
	"ocean": {
		{R: 0, G: 50, B: 98},
		{R: 0, G: 119, B: 190},
		{R: 0, G: 180, B: 216},
		{R: 72, G: 202, B: 228},
		{R: 144, G: 224, B: 239},
		{R: 202, G: 240, B: 248},
	},
	"neon": {
		{R: 255, G: 0, B: 255},
		{R: 0, G: 255, B: 255},
		{R: 57, G: 255, B: 20},
		{R: 255, G: 255, B: 0},
	},
	"mono": {
		{R: 255, G: 255, B: 255},
		{R: 200, G: 200, B: 200},
		{R: 150, G: 150, B: 150},
		{R: 100, G: 100, B: 100},
	},
}

// Builtin looks up a named built-in palette
func Builtin(name string) (*Palette, bool) {
	colors, ok := builtins[name]
	if !ok {
		return nil, false
	}
	p, err := NewPalette(colors)
	if err != nil {
		return nil, false
	}
	return p, true
}

// BuiltinNames lists the built-in palette names in sorted order
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

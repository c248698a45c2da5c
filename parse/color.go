package parse

import (
	"fmt"

	"github.com/mazznoer/csscolorparser"

	"github.com/typefall/marquee/color"
)

// Color parses any CSS color form into an RGB triple. Hex strings,
// named colors, rgb()/hsl() functions all work.
func Color(s string) (color.RGB, error) {
	c, err := csscolorparser.Parse(s)
	if err != nil {
		return color.RGB{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b, _ := c.RGBA255()
	return color.RGB{R: r, G: g, B: b}, nil
}

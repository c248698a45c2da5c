package parse

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/typefall/marquee/color"
)

// Gradient parses a CSS-style linear-gradient declaration into an
// ordered-stop gradient. The first comma segment may carry an angle
// ("90deg") or a direction ("to right"); every other segment is a
// color with an optional percentage position. Colors without explicit
// positions are spread evenly across [0, 1].
func Gradient(s string) (*color.Gradient, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "linear-gradient(") {
		return nil, fmt.Errorf("only linear-gradient is supported")
	}
	content, ok := strings.CutSuffix(strings.TrimPrefix(s, "linear-gradient("), ")")
	if !ok {
		return nil, fmt.Errorf("invalid gradient syntax: %s", s)
	}

	parts := strings.Split(content, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	angle := 180.0
	colorParts := parts
	if len(parts) > 0 {
		first := parts[0]
		switch {
		case strings.HasSuffix(first, "deg"):
			if v, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(first, "deg")), 64); err == nil {
				angle = v
			}
			colorParts = parts[1:]
		case strings.HasPrefix(first, "to "):
			switch first {
			case "to right":
				angle = 90
			case "to left":
				angle = 270
			case "to top":
				angle = 0
			default:
				angle = 180
			}
			colorParts = parts[1:]
		}
	}

	if len(colorParts) == 0 {
		return nil, fmt.Errorf("gradient requires at least one color")
	}

	count := len(colorParts)
	stops := make([]color.Stop, 0, count)
	for i, part := range colorParts {
		colorStr := part
		pos := evenPosition(i, count)

		// Split a trailing "NN%" position off the color, as in
		// "red 50%" or "#FF5733 25%".
		if percent := strings.LastIndexByte(part, '%'); percent >= 0 {
			if space := strings.LastIndexFunc(part[:percent], unicode.IsSpace); space >= 0 {
				colorStr = strings.TrimSpace(part[:space])
				if v, err := strconv.ParseFloat(strings.TrimSpace(part[space+1:percent]), 64); err == nil {
					pos = v / 100
				}
			}
		}

		c, err := Color(colorStr)
		if err != nil {
			return nil, err
		}
		stops = append(stops, color.Stop{Color: c, Pos: pos})
	}

	g, err := color.NewGradient(stops)
	if err != nil {
		return nil, err
	}
	g.Angle = angle
	return g, nil
}

func evenPosition(i, count int) float64 {
	if count <= 1 {
		return 0
	}
	return float64(i) / float64(count-1)
}

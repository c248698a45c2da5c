// Package art models pre-rendered block-letter text as an immutable
// grid of lines. Transformations return new values so a single Art can
// back every frame of a playback.
package art

import (
	"math"
	"strings"
	"unicode"
)

// Art holds ordered text lines with derived geometry.
// Width is the longest line in runes, Height the line count.
type Art struct {
	lines  []string
	width  int
	height int
}

// New builds an Art from a source string. Lines split on newlines,
// a single trailing newline does not produce an extra empty line.
// An empty source yields a 0x0 art.
func New(source string) *Art {
	lines := splitLines(source)
	width := 0
	for _, line := range lines {
		if n := runeLen(line); n > width {
			width = n
		}
	}
	return &Art{
		lines:  lines,
		width:  width,
		height: len(lines),
	}
}

func splitLines(source string) []string {
	if source == "" {
		return nil
	}
	source = strings.ReplaceAll(source, "\r\n", "\n")
	source = strings.TrimSuffix(source, "\n")
	return strings.Split(source, "\n")
}

func runeLen(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}

// Lines returns a copy of the line list
func (a *Art) Lines() []string {
	out := make([]string, len(a.lines))
	copy(out, a.lines)
	return out
}

// Width returns the rune count of the longest line
func (a *Art) Width() int {
	return a.width
}

// Height returns the line count
func (a *Art) Height() int {
	return a.height
}

// Render joins the lines with newlines
func (a *Art) Render() string {
	return strings.Join(a.lines, "\n")
}

// CharCount counts non-whitespace runes
func (a *Art) CharCount() int {
	count := 0
	for _, line := range a.lines {
		for _, ch := range line {
			if !unicode.IsSpace(ch) {
				count++
			}
		}
	}
	return count
}

// CharPosition locates one visible rune within the art grid
type CharPosition struct {
	X, Y int
	Ch   rune
}

// CharPositions returns every non-whitespace rune with its position,
// scanned top-to-bottom and left-to-right. The order is the reveal
// order for typewriter-style effects.
func (a *Art) CharPositions() []CharPosition {
	var positions []CharPosition
	for y, line := range a.lines {
		x := 0
		for _, ch := range line {
			if !unicode.IsSpace(ch) {
				positions = append(positions, CharPosition{X: x, Y: y, Ch: ch})
			}
			x++
		}
	}
	return positions
}

// fadeRamp orders placeholder glyphs from invisible to solid
var fadeRamp = []rune{' ', '.', '·', '-', '~', '=', '+', '*', '#', '@'}

// ApplyFade renders the art at a given opacity by substituting every
// visible rune with a density glyph: index floor(opacity*9) into the
// ramp. Opacity >= 1 returns the original text, <= 0 a blank block of
// the same dimensions. Whitespace is preserved.
func (a *Art) ApplyFade(opacity float64) string {
	if opacity >= 1.0 {
		return a.Render()
	}
	if opacity <= 0.0 {
		return a.blankBlock()
	}

	index := int(opacity * float64(len(fadeRamp)-1))
	if index >= len(fadeRamp) {
		index = len(fadeRamp) - 1
	}
	fadeChar := fadeRamp[index]

	faded := make([]string, len(a.lines))
	for i, line := range a.lines {
		var b strings.Builder
		for _, ch := range line {
			if unicode.IsSpace(ch) {
				b.WriteRune(ch)
			} else {
				b.WriteRune(fadeChar)
			}
		}
		faded[i] = b.String()
	}
	return strings.Join(faded, "\n")
}

func (a *Art) blankBlock() string {
	if a.height == 0 {
		return ""
	}
	blank := strings.Repeat(" ", a.width)
	lines := make([]string, a.height)
	for i := range lines {
		lines[i] = blank
	}
	return strings.Join(lines, "\n")
}

// Scale resizes by character repetition. Factors at or below zero
// yield an empty art, factors within 0.01 of 1.0 return an unchanged
// copy. Larger factors repeat rows and columns int(factor) times,
// smaller ones sample every int(1/factor)-th row and column with the
// stride clamped to at least one.
func (a *Art) Scale(factor float64) *Art {
	if factor <= 0.0 {
		return New("")
	}
	if math.Abs(factor-1.0) < 0.01 {
		return a.clone()
	}

	var lines []string
	if factor > 1.0 {
		repeat := int(factor)
		if repeat < 1 {
			repeat = 1
		}
		for _, line := range a.lines {
			var b strings.Builder
			for _, ch := range line {
				for r := 0; r < repeat; r++ {
					b.WriteRune(ch)
				}
			}
			scaled := b.String()
			for r := 0; r < repeat; r++ {
				lines = append(lines, scaled)
			}
		}
	} else {
		step := int(1.0 / factor)
		if step < 1 {
			step = 1
		}
		for y := 0; y < len(a.lines); y += step {
			runes := []rune(a.lines[y])
			var b strings.Builder
			for x := 0; x < len(runes); x += step {
				b.WriteRune(runes[x])
			}
			lines = append(lines, b.String())
		}
	}
	return New(strings.Join(lines, "\n"))
}

// Mirrored reverses each line's runes, producing a left-right mirror
func (a *Art) Mirrored() *Art {
	lines := make([]string, len(a.lines))
	for i, line := range a.lines {
		runes := []rune(line)
		for l, r := 0, len(runes)-1; l < r; l, r = l+1, r-1 {
			runes[l], runes[r] = runes[r], runes[l]
		}
		lines[i] = string(runes)
	}
	return &Art{lines: lines, width: a.width, height: a.height}
}

// Reversed flips the line order, producing a top-bottom mirror
func (a *Art) Reversed() *Art {
	lines := make([]string, len(a.lines))
	for i, line := range a.lines {
		lines[len(lines)-1-i] = line
	}
	return &Art{lines: lines, width: a.width, height: a.height}
}

func (a *Art) clone() *Art {
	lines := make([]string, len(a.lines))
	copy(lines, a.lines)
	return &Art{lines: lines, width: a.width, height: a.height}
}

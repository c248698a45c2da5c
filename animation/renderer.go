package animation

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/mattn/go-runewidth"

	"github.com/typefall/marquee/art"
	"github.com/typefall/marquee/color"
)

// Outcome reports how a playback ended. Cancellation is a successful
// outcome, not an error; callers use it to stop loop playback.
type Outcome int

const (
	Completed Outcome = iota
	Cancelled
)

// String returns the outcome name
func (o Outcome) String() string {
	switch o {
	case Cancelled:
		return "cancelled"
	default:
		return "completed"
	}
}

// Surface is the terminal contract the render loop paints against.
// Implementations must tolerate out-of-range coordinates. Any error
// is treated as fatal; the loop does not retry paints.
type Surface interface {
	Clear() error
	RefreshSize() error
	Size() (width, height int)
	PrintAt(x, y int, text string, colors []color.RGB) error
	PrintCentered(text string, colors []color.RGB) error
	Show() error
}

// Renderer composes art, effect, easing, and colors into a paced
// frame loop. Configuration is read-only once built; each Run owns a
// fresh timeline, so the same renderer can replay for loop mode.
type Renderer struct {
	art        *art.Art
	effect     Effect
	easing     EasingFunc
	colors     *color.Engine
	durationMS uint64
	fps        int
}

// NewRenderer builds a renderer for one playback configuration
func NewRenderer(a *art.Art, durationMS uint64, fps int, effect Effect, easing EasingFunc, colors *color.Engine) *Renderer {
	return &Renderer{
		art:        a,
		effect:     effect,
		easing:     easing,
		colors:     colors,
		durationMS: durationMS,
		fps:        fps,
	}
}

// Run plays the animation until the timeline completes or ctx is
// cancelled. The final-progress frame is painted before completion is
// reported. Cancellation is checked before progress math, before and
// after painting, and throughout the inter-frame sleep, so the loop
// reacts within a frame even under cancellation mid-sleep.
func (r *Renderer) Run(ctx context.Context, surface Surface) (Outcome, error) {
	timeline := NewTimeline(r.durationMS, r.fps)
	timeline.Start()

	for {
		if ctx.Err() != nil {
			return Cancelled, nil
		}

		frameStart := time.Now()

		linear := timeline.Progress()
		eased := r.easing(linear)

		if ctx.Err() != nil {
			return Cancelled, nil
		}

		frame := r.effect.Apply(r.art, eased)

		var charColors []color.RGB
		if r.colors.HasColors() {
			charColors = r.colorize(frame.Text, linear)
		}

		if ctx.Err() != nil {
			return Cancelled, nil
		}

		if err := r.paint(surface, frame, charColors); err != nil {
			return Cancelled, err
		}

		if ctx.Err() != nil {
			return Cancelled, nil
		}

		if timeline.IsComplete() {
			return Completed, nil
		}
		timeline.NextFrame()

		if wait := timeline.FrameDuration() - time.Since(frameStart); wait > 0 {
			timer := time.NewTimer(wait)
			select {
			case <-ctx.Done():
				if !timer.Stop() {
					<-timer.C
				}
				return Cancelled, nil
			case <-timer.C:
			}
		}
	}
}

// paint clears, re-measures, and draws one frame. Zero offsets center
// the whole block; otherwise the block is placed at its centered base
// plus the offsets, clamped to the screen origin, dropping lines that
// fall below the visible height.
func (r *Renderer) paint(surface Surface, frame Frame, charColors []color.RGB) error {
	if err := surface.Clear(); err != nil {
		return fmt.Errorf("clear: %w", err)
	}
	if err := surface.RefreshSize(); err != nil {
		return fmt.Errorf("refresh size: %w", err)
	}

	if frame.OffsetX == 0 && frame.OffsetY == 0 {
		if err := surface.PrintCentered(frame.Text, charColors); err != nil {
			return fmt.Errorf("print centered: %w", err)
		}
		if err := surface.Show(); err != nil {
			return fmt.Errorf("show: %w", err)
		}
		return nil
	}

	width, height := surface.Size()
	lines := strings.Split(frame.Text, "\n")
	textWidth := 0
	for _, line := range lines {
		if w := runewidth.StringWidth(line); w > textWidth {
			textWidth = w
		}
	}

	x := (width-textWidth)/2 + frame.OffsetX
	if x < 0 {
		x = 0
	}
	y := (height-len(lines))/2 + frame.OffsetY
	if y < 0 {
		y = 0
	}

	cursor := 0
	for i, line := range lines {
		visible := visibleRunes(line)
		lineY := y + i
		if lineY >= height {
			cursor += visible
			continue
		}
		var lineColors []color.RGB
		if cursor < len(charColors) {
			end := cursor + visible
			if end > len(charColors) {
				end = len(charColors)
			}
			lineColors = charColors[cursor:end]
		}
		cursor += visible
		if err := surface.PrintAt(x, lineY, line, lineColors); err != nil {
			return fmt.Errorf("print line: %w", err)
		}
	}
	if err := surface.Show(); err != nil {
		return fmt.Errorf("show: %w", err)
	}
	return nil
}

// colorize picks one color per visible rune of the frame text.
// Rainbow and color-cycle spread the engine's range across the text,
// gradient-flow additionally rotates the samples with progress so the
// ramp appears to travel, and every other effect paints a single
// progress-indexed color, falling back to a positional ramp when the
// engine cannot name one.
func (r *Renderer) colorize(text string, progress float64) []color.RGB {
	count := visibleRunes(text)
	if count == 0 {
		return nil
	}

	switch r.effect.Name() {
	case "rainbow", "color-cycle":
		return spread(r.colors.Colors(count), count)
	case "gradient-flow":
		samples := r.colors.Colors(count * 2)
		if len(samples) == 0 {
			return nil
		}
		offset := int(progress*float64(len(samples))) % len(samples)
		rotated := make([]color.RGB, 0, len(samples))
		rotated = append(rotated, samples[offset:]...)
		rotated = append(rotated, samples[:offset]...)
		if len(rotated) > count {
			rotated = rotated[:count]
		}
		return spread(rotated, count)
	default:
		if c, ok := r.colors.ColorAt(progress); ok {
			solid := make([]color.RGB, count)
			for i := range solid {
				solid[i] = c
			}
			return solid
		}
		n := count
		if n < 10 {
			n = 10
		}
		return spread(r.colors.Colors(n), count)
	}
}

// spread maps the k-th of count runes onto samples by even division
func spread(samples []color.RGB, count int) []color.RGB {
	if len(samples) == 0 || count <= 0 {
		return nil
	}
	out := make([]color.RGB, count)
	for k := 0; k < count; k++ {
		idx := k * len(samples) / count
		if idx >= len(samples) {
			idx = len(samples) - 1
		}
		out[k] = samples[idx]
	}
	return out
}

func visibleRunes(text string) int {
	n := 0
	for _, ch := range text {
		if !unicode.IsSpace(ch) {
			n++
		}
	}
	return n
}

package animation

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/typefall/marquee/art"
)

// Frame is the per-tick render descriptor an effect produces: the text
// variant to paint plus placement metadata. Painting consumes Text and
// the offsets; Opacity and Scale report the values the effect used.
type Frame struct {
	Text    string
	Opacity float64
	OffsetX int
	OffsetY int
	Scale   float64
}

// NewFrame starts a descriptor at full opacity and natural scale
func NewFrame(text string) Frame {
	return Frame{Text: text, Opacity: 1.0, Scale: 1.0}
}

// WithOpacity returns the frame with opacity set
func (f Frame) WithOpacity(opacity float64) Frame {
	f.Opacity = opacity
	return f
}

// WithOffset returns the frame with offsets from center set
func (f Frame) WithOffset(x, y int) Frame {
	f.OffsetX = x
	f.OffsetY = y
	return f
}

// WithScale returns the frame with the scale factor set
func (f Frame) WithScale(scale float64) Frame {
	f.Scale = scale
	return f
}

// ApplyFunc is a pure effect formula: same art and progress, same frame
type ApplyFunc func(a *art.Art, progress float64) Frame

// Effect pairs a catalog name with its formula. The name doubles as
// the colorization strategy key during painting.
type Effect struct {
	name  string
	apply ApplyFunc
}

// Name returns the catalog name the effect was resolved under
func (e Effect) Name() string {
	return e.name
}

// Apply runs the effect formula for one frame
func (e Effect) Apply(a *art.Art, progress float64) Frame {
	return e.apply(a, progress)
}

// LookupEffect resolves an effect by name from the closed catalog
func LookupEffect(name string) (Effect, error) {
	fn, ok := effects[name]
	if !ok {
		return Effect{}, fmt.Errorf("unknown effect: %s", name)
	}
	return Effect{name: name, apply: fn}, nil
}

// EffectNames lists every catalog name in sorted order
func EffectNames() []string {
	names := make([]string, 0, len(effects))
	for name := range effects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var effects = map[string]ApplyFunc{
	"fade-in":            fadeIn,
	"fade-out":           fadeOut,
	"fade-in-out":        fadeInOut,
	"slide-in-top":       slideInTop,
	"slide-in-bottom":    slideInBottom,
	"slide-in-left":      slideInLeft,
	"slide-in-right":     slideInRight,
	"slide-out-top":      slideOutTop,
	"slide-out-bottom":   slideOutBottom,
	"slide-out-left":     slideOutLeft,
	"slide-out-right":    slideOutRight,
	"scale-up":           scaleUp,
	"scale-down":         scaleDown,
	"pulse":              pulse,
	"bounce-in":          bounceIn,
	"bounce-out":         bounceOut,
	"bounce-top":         bounceTop,
	"bounce-bottom":      bounceBottom,
	"typewriter":         typewriter,
	"typewriter-reverse": typewriterReverse,
	"wave":               wave,
	"jello":              jello,
	"color-cycle":        passthrough,
	"rainbow":            passthrough,
	"gradient-flow":      passthrough,
	"rotate-in":          rotateIn,
	"rotate-out":         rotateOut,
	"rotate-center":      rotateCenter,
	"shake":              shake,
	"wobble":             wobble,
	"vibrate":            vibrate,
	"heartbeat":          heartbeat,
	"flip-horizontal":    flipHorizontal,
	"flip-vertical":      flipVertical,
	"swing":              swing,
	"sway":               sway,
	"roll-in":            rollIn,
	"roll-out":           rollOut,
	"puff-in":            puffIn,
	"puff-out":           puffOut,
	"slide-rotate-hor":   slideRotateHor,
	"slide-rotate-ver":   slideRotateVer,
	"flicker":            flicker,
	"tracking-in":        trackingIn,
	"tracking-out":       trackingOut,
	"tilt-in":            tiltIn,
	"blink":              blink,
	"focus-in":           focusIn,
	"blur-out":           blurOut,
	"shadow-drop":        shadowDrop,
	"shadow-pop":         shadowPop,
}

// Fade family

func fadeIn(a *art.Art, progress float64) Frame {
	return NewFrame(a.ApplyFade(progress)).WithOpacity(progress)
}

func fadeOut(a *art.Art, progress float64) Frame {
	opacity := 1.0 - progress
	return NewFrame(a.ApplyFade(opacity)).WithOpacity(opacity)
}

func fadeInOut(a *art.Art, progress float64) Frame {
	var opacity float64
	if progress < 0.5 {
		opacity = progress * 2.0
	} else {
		opacity = (1.0 - progress) * 2.0
	}
	return NewFrame(a.ApplyFade(opacity)).WithOpacity(opacity)
}

// Slide family

func slideInTop(a *art.Art, progress float64) Frame {
	offsetY := int((1.0 - progress) * -float64(a.Height()))
	return NewFrame(a.Render()).WithOffset(0, offsetY)
}

func slideInBottom(a *art.Art, progress float64) Frame {
	offsetY := int((1.0 - progress) * float64(a.Height()))
	return NewFrame(a.Render()).WithOffset(0, offsetY)
}

func slideInLeft(a *art.Art, progress float64) Frame {
	offsetX := int((1.0 - progress) * -float64(a.Width()))
	return NewFrame(a.Render()).WithOffset(offsetX, 0)
}

func slideInRight(a *art.Art, progress float64) Frame {
	offsetX := int((1.0 - progress) * float64(a.Width()))
	return NewFrame(a.Render()).WithOffset(offsetX, 0)
}

func slideOutTop(a *art.Art, progress float64) Frame {
	offsetY := -int(progress * (float64(a.Height()) + 10.0))
	return NewFrame(a.Render()).WithOffset(0, offsetY)
}

func slideOutBottom(a *art.Art, progress float64) Frame {
	offsetY := int(progress * (float64(a.Height()) + 10.0))
	return NewFrame(a.Render()).WithOffset(0, offsetY)
}

func slideOutLeft(a *art.Art, progress float64) Frame {
	offsetX := -int(progress * (float64(a.Width()) + 10.0))
	return NewFrame(a.Render()).WithOffset(offsetX, 0)
}

func slideOutRight(a *art.Art, progress float64) Frame {
	offsetX := int(progress * (float64(a.Width()) + 10.0))
	return NewFrame(a.Render()).WithOffset(offsetX, 0)
}

// Scale family

func scaleUp(a *art.Art, progress float64) Frame {
	scaled := a.Scale(progress)
	return NewFrame(scaled.Render()).WithScale(progress)
}

func scaleDown(a *art.Art, progress float64) Frame {
	scale := 2.0 - progress
	scaled := a.Scale(scale)
	return NewFrame(scaled.Render()).WithScale(scale)
}

func pulse(a *art.Art, progress float64) Frame {
	scale := 1.0 + math.Sin(progress*math.Pi*2.0)*0.1
	scaled := a.Scale(scale)
	return NewFrame(scaled.Render()).WithScale(scale)
}

// Bounce family

func bounceIn(a *art.Art, progress float64) Frame {
	var offsetY int
	if progress < 0.8 {
		offsetY = int((1.0 - progress/0.8) * -float64(a.Height()))
	} else {
		bounce := (progress - 0.8) / 0.2
		offsetY = int(bounce * 10.0 * (1.0 - bounce))
	}
	return NewFrame(a.Render()).WithOffset(0, offsetY)
}

func bounceOut(a *art.Art, progress float64) Frame {
	var offsetY int
	if progress < 0.2 {
		offsetY = -int(progress * 10.0 * (1.0 - progress/0.2))
	} else {
		offsetY = int((progress - 0.2) / 0.8 * float64(a.Height()))
	}
	return NewFrame(a.Render()).WithOffset(0, offsetY)
}

func bounceTop(a *art.Art, progress float64) Frame {
	bounceHeight := float64(a.Height()) + 10.0
	base := (1.0 - progress) * bounceHeight
	factor := math.Abs(math.Sin(progress*2.0*math.Pi)) * (1.0 - progress)
	offsetY := -int(base + factor*5.0)
	return NewFrame(a.Render()).WithOffset(0, offsetY)
}

func bounceBottom(a *art.Art, progress float64) Frame {
	bounceHeight := float64(a.Height()) + 10.0
	base := (1.0 - progress) * bounceHeight
	factor := math.Abs(math.Sin(progress*2.0*math.Pi)) * (1.0 - progress)
	offsetY := int(base + factor*5.0)
	return NewFrame(a.Render()).WithOffset(0, offsetY)
}

// Typewriter family

func typewriter(a *art.Art, progress float64) Frame {
	return NewFrame(revealChars(a, progress))
}

func typewriterReverse(a *art.Art, progress float64) Frame {
	return NewFrame(revealChars(a, 1.0-progress))
}

// revealChars blanks every visible rune and restores the first
// fraction of them in scan order
func revealChars(a *art.Art, fraction float64) string {
	visible := int(float64(a.CharCount()) * fraction)

	lines := make([][]rune, 0, a.Height())
	for _, line := range a.Lines() {
		runes := []rune(line)
		for i, ch := range runes {
			if !unicode.IsSpace(ch) {
				runes[i] = ' '
			}
		}
		lines = append(lines, runes)
	}

	for i, pos := range a.CharPositions() {
		if i >= visible {
			break
		}
		if pos.Y < len(lines) && pos.X < len(lines[pos.Y]) {
			lines[pos.Y][pos.X] = pos.Ch
		}
	}

	rendered := make([]string, len(lines))
	for i, runes := range lines {
		rendered[i] = string(runes)
	}
	return strings.Join(rendered, "\n")
}

// Distortion family

func wave(a *art.Art, progress float64) Frame {
	lines := a.Lines()
	out := make([]string, len(lines))
	for i, line := range lines {
		offset := int(math.Sin(progress*math.Pi*2.0+float64(i)*0.5) * 3.0)
		if offset < 0 {
			offset = 0
		}
		out[i] = strings.Repeat(" ", offset) + line
	}
	return NewFrame(strings.Join(out, "\n"))
}

func jello(a *art.Art, progress float64) Frame {
	wobble := math.Sin(progress*math.Pi*4.0) * (1.0 - progress)
	scale := math.Abs(1.0 + wobble*0.1)
	scaled := a.Scale(scale)
	return NewFrame(scaled.Render()).WithScale(scale)
}

// Color passthroughs: the text is untouched, the painting stage keys
// its colorization strategy off the effect name.
func passthrough(a *art.Art, _ float64) Frame {
	return NewFrame(a.Render())
}

// Rotate family

func rotateIn(a *art.Art, progress float64) Frame {
	angle := (1.0 - progress) * math.Pi
	scaled := a.Scale(progress)
	offsetX := int(math.Cos(angle) * 10.0 * (1.0 - progress))
	return NewFrame(scaled.Render()).WithScale(progress).WithOffset(offsetX, 0)
}

func rotateOut(a *art.Art, progress float64) Frame {
	angle := progress * math.Pi
	scale := 1.0 - progress
	scaled := a.Scale(scale)
	offsetX := int(math.Cos(angle) * 10.0 * progress)
	return NewFrame(scaled.Render()).WithScale(scale).WithOffset(offsetX, 0)
}

// rotateCenter shears lines around the vertical midpoint to fake a
// rotation: lines above center shift one way, lines below the other.
func rotateCenter(a *art.Art, progress float64) Frame {
	angle := progress * math.Pi * 2.0
	const maxOffset = 5.0

	lines := a.Lines()
	height := len(lines)
	if height < 1 {
		height = 1
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		lineFactor := float64(i)/float64(height) - 0.5
		offset := int(math.Sin(angle) * lineFactor * maxOffset)
		switch {
		case offset > 0:
			out[i] = strings.Repeat(" ", offset) + line
		case offset < 0:
			runes := []rune(line)
			skip := -offset
			if skip > len(runes) {
				skip = len(runes)
			}
			out[i] = string(runes[skip:])
		default:
			out[i] = line
		}
	}
	return NewFrame(strings.Join(out, "\n"))
}

// Agitation family

func shake(a *art.Art, progress float64) Frame {
	const frequency = 20.0
	amplitude := 10.0 * (1.0 - progress)
	offsetX := math.Sin(progress*frequency*math.Pi*2.0) * amplitude
	return NewFrame(a.Render()).WithOffset(int(offsetX), 0)
}

func wobble(a *art.Art, progress float64) Frame {
	angle := progress * math.Pi * 4.0
	amplitude := 15.0 * (1.0 - progress)
	offsetX := int(math.Sin(angle) * amplitude)
	offsetY := int(math.Cos(angle) * amplitude * 0.3)
	return NewFrame(a.Render()).WithOffset(offsetX, offsetY)
}

func vibrate(a *art.Art, progress float64) Frame {
	const frequency = 50.0
	const amplitude = 3.0
	offsetX := math.Sin(progress*frequency*math.Pi) * amplitude
	offsetY := math.Cos(progress*frequency*math.Pi*1.3) * amplitude
	return NewFrame(a.Render()).WithOffset(int(offsetX), int(offsetY))
}

// heartbeat pulses twice per playback: a strong beat and a weaker
// echo, each with a sharp release back to rest.
func heartbeat(a *art.Art, progress float64) Frame {
	beat := math.Mod(progress*2.0, 1.0)
	var scale float64
	switch {
	case beat < 0.3:
		scale = 1.0 + (beat/0.3)*0.15
	case beat < 0.4:
		scale = 1.15 - ((beat-0.3)/0.1)*0.15
	case beat < 0.6:
		scale = 1.0 + ((beat-0.4)/0.2)*0.1
	case beat < 0.7:
		scale = 1.1 - ((beat-0.6)/0.1)*0.1
	default:
		scale = 1.0
	}
	scaled := a.Scale(scale)
	return NewFrame(scaled.Render()).WithScale(scale)
}

// Flip family

func flipHorizontal(a *art.Art, progress float64) Frame {
	scale := 1.0 - progress*2.0
	if scale <= 0.0 {
		return NewFrame(a.Mirrored().Render())
	}
	scaled := a.Scale(scale)
	return NewFrame(scaled.Render()).WithScale(scale)
}

func flipVertical(a *art.Art, progress float64) Frame {
	if progress > 0.5 {
		scale := (progress - 0.5) * 2.0
		scaled := a.Reversed().Scale(scale)
		return NewFrame(scaled.Render()).WithScale(scale)
	}
	scale := 1.0 - math.Min(progress*2.0, 1.0)
	if scale < 0.1 {
		scale = 0.1
	}
	scaled := a.Scale(scale)
	return NewFrame(scaled.Render()).WithScale(scale)
}

// Pendulum family

func swing(a *art.Art, progress float64) Frame {
	const swings = 2.0
	angle := math.Sin(progress*swings*math.Pi*2.0) * (1.0 - progress)
	offsetX := int(angle * 20.0)
	offsetY := int(math.Abs(angle) * 5.0)
	return NewFrame(a.Render()).WithOffset(offsetX, -offsetY)
}

func sway(a *art.Art, progress float64) Frame {
	angle := math.Sin(progress * math.Pi * 2.0)
	offsetX := int(angle * 8.0)
	offsetY := int(math.Abs(angle) * 2.0)
	return NewFrame(a.Render()).WithOffset(offsetX, offsetY)
}

// Roll family

func rollIn(a *art.Art, progress float64) Frame {
	offsetX := int((1.0 - progress) * -(float64(a.Width()) + 20.0))
	rotation := int((1.0 - progress) * 5.0)
	offsetY := int(float64(rotation) * math.Sin(progress*math.Pi))
	return NewFrame(a.Render()).WithOffset(offsetX, offsetY)
}

func rollOut(a *art.Art, progress float64) Frame {
	offsetX := int(progress * (float64(a.Width()) + 20.0))
	rotation := int(progress * 5.0)
	offsetY := int(float64(rotation) * math.Sin(progress*math.Pi))
	return NewFrame(a.Render()).WithOffset(offsetX, offsetY)
}

// Puff family

func puffIn(a *art.Art, progress float64) Frame {
	scale := 0.1 + progress*0.9
	scaled := a.Scale(scale)
	return NewFrame(scaled.Render()).WithScale(scale).WithOpacity(progress)
}

func puffOut(a *art.Art, progress float64) Frame {
	scale := 1.0 - progress*0.9
	scaled := a.Scale(math.Max(scale, 0.1))
	return NewFrame(scaled.Render()).WithScale(scale).WithOpacity(1.0 - progress)
}

// Slide-rotate family

func slideRotateHor(a *art.Art, progress float64) Frame {
	offsetX := int((1.0 - progress) * -(float64(a.Width()) + 10.0))
	remaining := 1.0 - progress
	offsetY := int(remaining * 10.0 * math.Sin(remaining*math.Pi))
	return NewFrame(a.Render()).WithOffset(offsetX, offsetY)
}

func slideRotateVer(a *art.Art, progress float64) Frame {
	offsetY := int((1.0 - progress) * -(float64(a.Height()) + 5.0))
	remaining := 1.0 - progress
	offsetX := int(remaining * 15.0 * math.Cos(remaining*math.Pi))
	return NewFrame(a.Render()).WithOffset(offsetX, offsetY)
}

// Visibility family

func flicker(a *art.Art, progress float64) Frame {
	const flickerSpeed = 30.0
	stability := progress
	flick := (math.Sin(progress*flickerSpeed) + 1.0) / 2.0
	opacity := stability + (1.0-stability)*flick
	return NewFrame(a.Render()).WithOpacity(opacity)
}

func blink(a *art.Art, progress float64) Frame {
	const blinks = 6.0
	opacity := 1.0
	if int(math.Floor(progress*blinks))%2 != 0 {
		opacity = 0.0
	}
	return NewFrame(a.Render()).WithOpacity(opacity)
}

func focusIn(a *art.Art, progress float64) Frame {
	scale := 0.7 + progress*0.3
	scaled := a.Scale(scale)
	return NewFrame(scaled.Render()).WithScale(scale).WithOpacity(math.Sqrt(progress))
}

func blurOut(a *art.Art, progress float64) Frame {
	scale := 1.0 - progress*0.3
	scaled := a.Scale(scale)
	return NewFrame(scaled.Render()).WithScale(scale).WithOpacity(math.Sqrt(1.0 - progress))
}

// Tracking family: letter spacing grows or shrinks by padding each
// glyph; a plain space widens by one extra column to keep word gaps
// proportional.

func trackingIn(a *art.Art, progress float64) Frame {
	spacing := int((1.0 - progress) * 3.0)
	return NewFrame(track(a, spacing))
}

func trackingOut(a *art.Art, progress float64) Frame {
	spacing := int(progress * 3.0)
	return NewFrame(track(a, spacing))
}

func track(a *art.Art, spacing int) string {
	if spacing <= 0 {
		return a.Render()
	}
	pad := strings.Repeat(" ", spacing)
	lines := a.Lines()
	out := make([]string, len(lines))
	for i, line := range lines {
		var b strings.Builder
		for _, ch := range line {
			if ch == ' ' {
				b.WriteString(pad + " ")
			} else {
				b.WriteRune(ch)
				b.WriteString(pad)
			}
		}
		out[i] = b.String()
	}
	return strings.Join(out, "\n")
}

// Perspective family

func tiltIn(a *art.Art, progress float64) Frame {
	tilt := 1.0 - progress
	scale := 0.5 + progress*0.5
	offsetX := int(tilt * 20.0 * math.Sin(tilt*math.Pi))
	offsetY := -int(tilt * 15.0)
	scaled := a.Scale(scale)
	return NewFrame(scaled.Render()).WithScale(scale).WithOffset(offsetX, offsetY)
}

func shadowDrop(a *art.Art, progress float64) Frame {
	const dropDistance = 20.0
	offsetY := -int((1.0 - progress) * dropDistance)
	opacity := 0.3 + progress*0.7
	return NewFrame(a.Render()).WithOffset(0, offsetY).WithOpacity(opacity)
}

func shadowPop(a *art.Art, progress float64) Frame {
	var scale float64
	if progress < 0.5 {
		scale = 1.0 + progress*2.0*0.3
	} else {
		scale = 1.3 - (progress-0.5)*2.0*0.3
	}
	scaled := a.Scale(scale)
	return NewFrame(scaled.Render()).WithScale(scale)
}

package color

// Mode selects the engine's colorization source
type Mode int

const (
	// ModeNone leaves text in the terminal's default foreground
	ModeNone Mode = iota
	// ModePalette cycles through a fixed color list
	ModePalette
	// ModeGradient interpolates between gradient stops
	ModeGradient
)

// String returns the mode name for diagnostics
func (m Mode) String() string {
	switch m {
	case ModePalette:
		return "palette"
	case ModeGradient:
		return "gradient"
	default:
		return "none"
	}
}

// Engine resolves colors for animation progress and character positions.
// Configuration happens before playback; the engine is read-only while
// a renderer samples it. Palette and gradient modes are mutually
// exclusive, the last one configured wins.
type Engine struct {
	mode     Mode
	palette  *Palette
	gradient *Gradient
}

// NewEngine returns an engine in ModeNone
func NewEngine() *Engine {
	return &Engine{mode: ModeNone}
}

// SetPalette switches the engine to palette mode
func (e *Engine) SetPalette(p *Palette) {
	e.mode = ModePalette
	e.palette = p
	e.gradient = nil
}

// SetGradient switches the engine to gradient mode
func (e *Engine) SetGradient(g *Gradient) {
	e.mode = ModeGradient
	e.gradient = g
	e.palette = nil
}

// Mode reports the active colorization source
func (e *Engine) Mode() Mode {
	return e.mode
}

// HasColors reports whether the engine produces any color at all
func (e *Engine) HasColors() bool {
	return e.mode != ModeNone
}

// ColorAt resolves a single color for progress t.
// Palette mode steps through entries cyclically, gradient mode
// interpolates. The second return is false in ModeNone.
func (e *Engine) ColorAt(t float64) (RGB, bool) {
	switch e.mode {
	case ModePalette:
		idx := int(clamp01(t) * float64(e.palette.Len()))
		return e.palette.Color(idx), true
	case ModeGradient:
		return e.gradient.ColorAt(t), true
	default:
		return RGB{}, false
	}
}

// Colors produces n colors spanning the engine's range.
// Palette mode repeats cyclically, gradient mode samples evenly.
// ModeNone yields nil.
func (e *Engine) Colors(n int) []RGB {
	if n <= 0 {
		return nil
	}
	switch e.mode {
	case ModePalette:
		out := make([]RGB, n)
		for i := 0; i < n; i++ {
			out[i] = e.palette.Color(i)
		}
		return out
	case ModeGradient:
		return e.gradient.Colors(n)
	default:
		return nil
	}
}

// Package terminal wraps a tcell screen behind the small painting
// surface the animation loop needs: scoped setup/cleanup around raw
// mode and the alternate screen, size queries, and line painting with
// optional per-character colors.
package terminal

import (
	"fmt"
	"os"
	"runtime/debug"
	"strings"
	"sync"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/typefall/marquee/color"
)

// Terminal owns a screen for the lifetime of one player session.
// Setup acquires the terminal, Cleanup releases it; Cleanup is safe to
// call from multiple exit paths and runs at most once.
type Terminal struct {
	screen tcell.Screen
	width  int
	height int
	fini   sync.Once
}

// New creates a terminal against the default tty screen
func New() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return NewWith(screen), nil
}

// NewWith wraps an existing screen, typically a tcell simulation
// screen under test
func NewWith(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

// Setup enters raw mode and the alternate screen and hides the cursor
func (t *Terminal) Setup() error {
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	t.screen.HideCursor()
	t.width, t.height = t.screen.Size()
	return nil
}

// Cleanup restores the terminal. Idempotent.
func (t *Terminal) Cleanup() {
	t.fini.Do(func() {
		t.screen.Fini()
	})
}

// Clear wipes the pending frame buffer
func (t *Terminal) Clear() error {
	t.screen.Clear()
	return nil
}

// Size returns the last known dimensions in cells
func (t *Terminal) Size() (int, int) {
	return t.width, t.height
}

// RefreshSize re-reads the screen dimensions, picking up resizes
func (t *Terminal) RefreshSize() error {
	t.width, t.height = t.screen.Size()
	return nil
}

// Show flushes the pending frame to the terminal
func (t *Terminal) Show() error {
	t.screen.Show()
	return nil
}

// PollEvent blocks for the next input, resize, or interrupt event.
// Returns nil once the screen is finalized.
func (t *Terminal) PollEvent() tcell.Event {
	return t.screen.PollEvent()
}

// PostQuit wakes a PollEvent call so its goroutine can exit
func (t *Terminal) PostQuit() {
	_ = t.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

// PrintAt paints one text line at a cell position. colors supplies one
// foreground per visible rune in order; nil paints the terminal
// default. Painting outside the screen is silently dropped.
func (t *Terminal) PrintAt(x, y int, text string, colors []color.RGB) error {
	consumed := 0
	t.paintLine(x, y, text, colors, &consumed)
	return nil
}

// PrintCentered paints a multi-line block centered on the screen: the
// block centers on its widest line and each line re-centers within the
// block. colors supplies one foreground per visible rune across the
// whole block in scan order.
func (t *Terminal) PrintCentered(text string, colors []color.RGB) error {
	lines := strings.Split(text, "\n")
	maxWidth := 0
	for _, line := range lines {
		if w := runewidth.StringWidth(line); w > maxWidth {
			maxWidth = w
		}
	}

	startX := (t.width - maxWidth) / 2
	if startX < 0 {
		startX = 0
	}
	startY := (t.height - len(lines)) / 2
	if startY < 0 {
		startY = 0
	}

	consumed := 0
	for i, line := range lines {
		lineWidth := runewidth.StringWidth(line)
		x := startX + (maxWidth-lineWidth)/2
		t.paintLine(x, startY+i, line, colors, &consumed)
	}
	return nil
}

// HandleCrash restores the terminal, prints the panic and its stack
// trace to stderr, and exits. A nil recover value is a no-op.
func HandleCrash(t *Terminal, r any) {
	if r == nil {
		return
	}

	if t != nil {
		t.Cleanup()
	}
	os.Stdout.Sync()

	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mcrash: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "stack trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	os.Exit(1)
}

// Go runs fn in a new goroutine with panic recovery. Use this instead
// of the go keyword so a crash restores the terminal before exiting.
func (t *Terminal) Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(t, r)
			}
		}()
		fn()
	}()
}

// paintLine writes one line's runes, advancing x by display width and
// consuming one color per visible rune
func (t *Terminal) paintLine(x, y int, line string, colors []color.RGB, consumed *int) {
	if y < 0 || y >= t.height {
		// Keep the color cursor in sync for clipped lines
		for _, ch := range line {
			if !unicode.IsSpace(ch) {
				*consumed++
			}
		}
		return
	}
	for _, ch := range line {
		width := runewidth.RuneWidth(ch)
		if unicode.IsSpace(ch) {
			x += width
			continue
		}
		style := tcell.StyleDefault
		if *consumed < len(colors) {
			c := colors[*consumed]
			style = style.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
		}
		*consumed++
		if x >= 0 {
			t.screen.SetContent(x, y, ch, nil, style)
		}
		x += width
	}
}

package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/typefall/marquee/animation"
	"github.com/typefall/marquee/art"
	"github.com/typefall/marquee/color"
	"github.com/typefall/marquee/figlet"
	"github.com/typefall/marquee/parse"
	"github.com/typefall/marquee/sound"
	"github.com/typefall/marquee/terminal"
)

// play validates every option, renders the art, then hands off to the
// render loop. All configuration errors surface here, before the
// terminal leaves cooked mode.
func play(cmd *cobra.Command, text string, figletArgs []string) error {
	durationMS, err := parse.Duration(flagDuration)
	if err != nil {
		return err
	}
	if flagFPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", flagFPS)
	}

	effect, err := animation.LookupEffect(flagEffect)
	if err != nil {
		return err
	}
	easing, err := animation.LookupEasing(flagEasing)
	if err != nil {
		return err
	}

	engine, err := buildEngine()
	if err != nil {
		return err
	}

	a, err := loadArt(text, figletArgs)
	if err != nil {
		return err
	}

	outcome, err := runAnimation(a, durationMS, effect, easing, engine)
	if err != nil {
		return err
	}

	if outcome == animation.Completed && flagChime {
		if err := sound.Chime(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "chime: %v\n", err)
		}
	}
	return nil
}

// buildEngine assembles the color engine from the palette and
// gradient flags. The palette value may name a built-in palette or
// list colors separated by commas.
func buildEngine() (*color.Engine, error) {
	engine := color.NewEngine()

	if flagPalette != "" {
		if p, ok := color.Builtin(flagPalette); ok {
			engine.SetPalette(p)
		} else {
			parts := strings.Split(flagPalette, ",")
			colors := make([]color.RGB, 0, len(parts))
			for _, part := range parts {
				c, err := parse.Color(strings.TrimSpace(part))
				if err != nil {
					return nil, err
				}
				colors = append(colors, c)
			}
			p, err := color.NewPalette(colors)
			if err != nil {
				return nil, err
			}
			engine.SetPalette(p)
		}
	}

	if flagGradient != "" {
		g, err := parse.Gradient(flagGradient)
		if err != nil {
			return nil, err
		}
		engine.SetGradient(g)
	}

	return engine, nil
}

// loadArt produces the block-letter art, either from a pre-rendered
// file or by running figlet over the text.
func loadArt(text string, figletArgs []string) (*art.Art, error) {
	if flagArtFile != "" {
		data, err := os.ReadFile(flagArtFile)
		if err != nil {
			return nil, fmt.Errorf("read art file: %w", err)
		}
		return art.New(string(data)), nil
	}

	if err := figlet.CheckInstalled(); err != nil {
		return nil, err
	}

	rendered, err := figlet.New().WithFont(flagFont).WithArgs(figletArgs...).Render(text)
	if err != nil {
		return nil, err
	}
	return art.New(rendered), nil
}

// runAnimation owns the terminal for one or more playbacks. Cleanup
// runs on every exit path; a cancelled playback stops loop mode.
func runAnimation(a *art.Art, durationMS uint64, effect animation.Effect, easing animation.EasingFunc, engine *color.Engine) (animation.Outcome, error) {
	term, err := terminal.New()
	if err != nil {
		return animation.Cancelled, err
	}
	if err := term.Setup(); err != nil {
		return animation.Cancelled, err
	}
	defer term.Cleanup()
	defer term.PostQuit()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	term.Go(func() { listenForQuit(term, cancel) })

	renderer := animation.NewRenderer(a, durationMS, flagFPS, effect, easing, engine)

	for {
		outcome, err := renderer.Run(ctx, term)
		if err != nil {
			return outcome, err
		}
		if outcome != animation.Completed || !flagLoop {
			return outcome, nil
		}
	}
}

// listenForQuit owns the cancellation side of a playback. It exits
// when the screen is finalized or an interrupt event is posted. The
// cancel func is the only state shared with the render loop; resize
// events are ignored here and picked up by the loop's per-frame size
// refresh, keeping the size cache single-writer.
func listenForQuit(term *terminal.Terminal, cancel context.CancelFunc) {
	for {
		ev := term.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if isQuitKey(ev) {
				cancel()
			}
		case *tcell.EventInterrupt:
			return
		}
	}
}

func isQuitKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		return true
	}
	return ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q')
}

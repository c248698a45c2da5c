// Package cli wires the command line to the animation player.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/typefall/marquee/config"
)

var (
	flagDuration   string
	flagEffect     string
	flagEasing     string
	flagFPS        int
	flagPalette    string
	flagGradient   string
	flagFont       string
	flagFigletArgs []string
	flagArtFile    string
	flagLoop       bool
	flagChime      bool
	flagConfig     string
)

var rootCmd = newRootCmd()

// Execute runs the command tree. Returned errors are already
// descriptive; main prints them to stderr.
func Execute() error {
	return rootCmd.Execute()
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "marquee [text]",
		Short: "Animated and colorful figlet player",
		Long: `Marquee renders text as block letters and plays a timed animation
over it in the terminal: a motion effect shaped by an easing curve,
with optional palette or gradient coloring.

Examples:
  marquee Hello -p red,blue,green
  marquee World -g "linear-gradient(90deg, red, blue)" -e fade-in
  marquee Cool! -e typewriter -d 2s -i ease-out
  marquee "Big News" -f banner -l -- -w 120`,
		Args:          cobra.ArbitraryArgs,
		RunE:          runRoot,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.Flags()
	flags.StringVarP(&flagDuration, "duration", "d", "3s", "animation duration (e.g. 3000ms, 0.3s, 5m)")
	flags.StringVarP(&flagEffect, "effect", "e", "fade-in", "motion effect name (see 'marquee list effects')")
	flags.StringVarP(&flagEasing, "easing", "i", "ease-in-out", "easing function name (see 'marquee list easings')")
	flags.IntVar(&flagFPS, "fps", 30, "frame rate")
	flags.StringVarP(&flagPalette, "palette", "p", "", "comma-separated colors or a built-in palette name")
	flags.StringVarP(&flagGradient, "gradient", "g", "", "CSS linear-gradient definition")
	flags.StringVarP(&flagFont, "font", "f", "", "figlet font")
	flags.StringArrayVar(&flagFigletArgs, "figlet-arg", nil, "extra figlet argument (repeatable; or place after --)")
	flags.StringVar(&flagArtFile, "art-file", "", "read pre-rendered art from a file instead of running figlet")
	flags.BoolVarP(&flagLoop, "loop", "l", false, "loop the animation until cancelled")
	flags.BoolVar(&flagChime, "chime", false, "play a chime when the animation completes")
	flags.StringVar(&flagConfig, "config", "", "YAML config file (default ~/.config/marquee/config.yaml)")

	cmd.AddCommand(newListCmd())
	return cmd
}

func runRoot(cmd *cobra.Command, args []string) error {
	if len(args) == 0 && cmd.Flags().NFlag() == 0 && cmd.ArgsLenAtDash() < 0 {
		showWelcome(cmd.OutOrStdout())
		return nil
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	applyConfig(cmd, cfg)

	text, figletArgs, err := splitArgs(args, cmd.ArgsLenAtDash())
	if err != nil {
		return err
	}

	return play(cmd, text, figletArgs)
}

// splitArgs separates the text to render from figlet passthrough
// arguments placed after "--". dash is the pre-dash argument count,
// negative when no "--" was given.
func splitArgs(args []string, dash int) (string, []string, error) {
	positional := args
	var extra []string
	if dash >= 0 && dash <= len(args) {
		positional = args[:dash]
		extra = args[dash:]
	}

	if len(positional) > 1 {
		return "", nil, fmt.Errorf("expected one text argument, got %d", len(positional))
	}

	text := ""
	if len(positional) == 1 {
		text = positional[0]
	}
	if text == "" && flagArtFile == "" {
		return "", nil, fmt.Errorf("text to render is required (or use --art-file)")
	}

	combined := make([]string, 0, len(flagFigletArgs)+len(extra))
	combined = append(combined, flagFigletArgs...)
	combined = append(combined, extra...)
	return text, combined, nil
}

// applyConfig fills in file-sourced defaults for every flag the user
// did not set explicitly.
func applyConfig(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if !flags.Changed("duration") && cfg.Duration != "" {
		flagDuration = cfg.Duration
	}
	if !flags.Changed("fps") && cfg.FPS > 0 {
		flagFPS = cfg.FPS
	}
	if !flags.Changed("effect") && cfg.Effect != "" {
		flagEffect = cfg.Effect
	}
	if !flags.Changed("easing") && cfg.Easing != "" {
		flagEasing = cfg.Easing
	}
	if !flags.Changed("palette") && cfg.Palette != "" {
		flagPalette = cfg.Palette
	}
	if !flags.Changed("gradient") && cfg.Gradient != "" {
		flagGradient = cfg.Gradient
	}
	if !flags.Changed("font") && cfg.Font != "" {
		flagFont = cfg.Font
	}
	if !flags.Changed("figlet-arg") && len(cfg.FigletArgs) > 0 {
		flagFigletArgs = cfg.FigletArgs
	}
	if !flags.Changed("art-file") && cfg.ArtFile != "" {
		flagArtFile = cfg.ArtFile
	}
	if !flags.Changed("loop") && cfg.Loop {
		flagLoop = true
	}
	if !flags.Changed("chime") && cfg.Chime {
		flagChime = true
	}
}

func showWelcome(w io.Writer) {
	fmt.Fprint(w, `
   ____ ___  ____ __________ ___  _____  ___
  / __ '__ \/ __ '/ ___/ __ '/ / / / _ \/ _ \
 / / / / / / /_/ / /  / /_/ / /_/ /  __/  __/
/_/ /_/ /_/\__,_/_/   \__, /\__,_/\___/\___/
                         /_/

Marquee - Animated Figlet Player

Usage: marquee [TEXT] [OPTIONS]

Examples:
  marquee Hello -p red,blue,green
  marquee World -g "linear-gradient(90deg, red, blue)" -e fade-in
  marquee Cool! -e typewriter -d 2s -i ease-out

Run 'marquee --help' for more information.
`)
}

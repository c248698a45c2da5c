package cli

import (
	"fmt"

	fcolor "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/typefall/marquee/animation"
	"github.com/typefall/marquee/color"
	"github.com/typefall/marquee/figlet"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available effects, easings, palettes, or fonts",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "effects",
			Short: "List motion effect names",
			RunE: func(cmd *cobra.Command, args []string) error {
				printHeader(cmd, "Available effects:")
				for _, name := range animation.EffectNames() {
					fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", name)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "easings",
			Short: "List easing function names",
			RunE: func(cmd *cobra.Command, args []string) error {
				printHeader(cmd, "Available easing functions:")
				for _, name := range animation.EasingNames() {
					fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", name)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "palettes",
			Short: "List built-in color palettes",
			RunE: func(cmd *cobra.Command, args []string) error {
				printHeader(cmd, "Built-in palettes:")
				for _, name := range color.BuiltinNames() {
					p, _ := color.Builtin(name)
					fmt.Fprintf(cmd.OutOrStdout(), "  %-8s ", name)
					for _, c := range p.Colors() {
						fcolor.RGB(int(c.R), int(c.G), int(c.B)).Fprint(cmd.OutOrStdout(), "██")
					}
					fmt.Fprintln(cmd.OutOrStdout())
				}
				fmt.Fprintln(cmd.OutOrStdout(), "\nAny comma-separated CSS colors work too, e.g. -p \"#FF5733,gold,teal\"")
				return nil
			},
		},
		&cobra.Command{
			Use:   "fonts",
			Short: "List installed figlet fonts",
			RunE: func(cmd *cobra.Command, args []string) error {
				fonts, err := figlet.ListFonts()
				if err != nil {
					return err
				}
				printHeader(cmd, "Installed figlet fonts:")
				for _, font := range fonts {
					fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", font)
				}
				return nil
			},
		},
	)

	return cmd
}

func printHeader(cmd *cobra.Command, text string) {
	fcolor.New(fcolor.FgCyan, fcolor.Bold).Fprintln(cmd.OutOrStdout(), text)
}

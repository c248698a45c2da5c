// Package figlet shells out to the system figlet binary to turn
// plain text into block letters.
package figlet

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

// Renderer invokes figlet with an optional font and extra passthrough
// arguments. The zero value renders with figlet's defaults.
type Renderer struct {
	font string
	args []string
}

func New() *Renderer {
	return &Renderer{}
}

// WithFont selects a figlet font by name. Empty keeps the default.
func (r *Renderer) WithFont(font string) *Renderer {
	r.font = font
	return r
}

// WithArgs appends raw figlet arguments, passed through unchanged.
func (r *Renderer) WithArgs(args ...string) *Renderer {
	r.args = append(r.args, args...)
	return r
}

// Render runs figlet over text and returns its block-letter output
func (r *Renderer) Render(text string) (string, error) {
	args := make([]string, 0, len(r.args)+3)
	if r.font != "" {
		args = append(args, "-f", r.font)
	}
	args = append(args, r.args...)
	args = append(args, text)

	cmd := exec.Command("figlet", args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("figlet: %s", msg)
		}
		return "", fmt.Errorf("run figlet: %w", err)
	}

	return stdout.String(), nil
}

// CheckInstalled verifies the figlet binary is reachable on PATH,
// with install hints when it is not.
func CheckInstalled() error {
	if _, err := exec.LookPath("figlet"); err != nil {
		return fmt.Errorf("figlet not found, install it first:\n" +
			"  Ubuntu/Debian: sudo apt-get install figlet\n" +
			"  macOS:         brew install figlet\n" +
			"  Arch:          sudo pacman -S figlet")
	}
	return nil
}

// ListFonts asks figlet for its font listing. The first output line
// is a directory header and is skipped.
func ListFonts() ([]string, error) {
	out, err := exec.Command("figlet", "-l").Output()
	if err != nil {
		return nil, fmt.Errorf("list figlet fonts: %w", err)
	}

	lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	fonts := make([]string, 0, len(lines))
	for i, line := range lines {
		if i == 0 {
			continue
		}
		if fields := strings.Fields(line); len(fields) > 0 {
			fonts = append(fonts, fields[0])
		}
	}
	return fonts, nil
}

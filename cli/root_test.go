package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/typefall/marquee/config"
)

// newTestCmd builds a fresh command tree, which also resets every
// bound flag variable to its default.
func newTestCmd() (*cobra.Command, *bytes.Buffer) {
	cmd := newRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	return cmd, out
}

func TestWelcomeShownWithoutArgs(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cmd, out := newTestCmd()
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if !strings.Contains(out.String(), "Marquee") {
		t.Errorf("Expected welcome banner, got %q", out.String())
	}
	if !strings.Contains(out.String(), "Usage:") {
		t.Error("Expected usage hint in welcome banner")
	}
}

func TestTextRequiredWithFlags(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cmd, _ := newTestCmd()
	cmd.SetArgs([]string{"--loop"})

	err := cmd.Execute()
	if err == nil {
		t.Fatal("Expected error when text is missing")
	}
	if !strings.Contains(err.Error(), "text") {
		t.Errorf("Expected text-required error, got %q", err)
	}
}

func TestUnknownEffectFailsBeforeTerminal(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cmd, _ := newTestCmd()
	cmd.SetArgs([]string{"hi", "--effect", "not-an-effect"})

	err := cmd.Execute()
	if err == nil {
		t.Fatal("Expected unknown effect error")
	}
	if !strings.Contains(err.Error(), "unknown effect") {
		t.Errorf("Expected unknown effect error, got %q", err)
	}
}

func TestUnknownEasingFailsBeforeTerminal(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cmd, _ := newTestCmd()
	cmd.SetArgs([]string{"hi", "--easing", "not-an-easing"})

	err := cmd.Execute()
	if err == nil {
		t.Fatal("Expected unknown easing error")
	}
	if !strings.Contains(err.Error(), "unknown easing") {
		t.Errorf("Expected unknown easing error, got %q", err)
	}
}

func TestSplitArgs(t *testing.T) {
	newRootCmd()

	text, extra, err := splitArgs([]string{"hello"}, -1)
	if err != nil {
		t.Fatalf("splitArgs failed: %v", err)
	}
	if text != "hello" || len(extra) != 0 {
		t.Errorf("Expected plain text arg, got %q and %v", text, extra)
	}

	text, extra, err = splitArgs([]string{"hello", "-w", "120"}, 1)
	if err != nil {
		t.Fatalf("splitArgs failed: %v", err)
	}
	if text != "hello" {
		t.Errorf("Expected text hello, got %q", text)
	}
	if len(extra) != 2 || extra[0] != "-w" || extra[1] != "120" {
		t.Errorf("Expected figlet passthrough args, got %v", extra)
	}

	if _, _, err := splitArgs([]string{"a", "b"}, -1); err == nil {
		t.Error("Expected error for multiple text arguments")
	}

	if _, _, err := splitArgs(nil, -1); err == nil {
		t.Error("Expected error when text and art file are both missing")
	}
}

func TestSplitArgsAllowsArtFileWithoutText(t *testing.T) {
	newRootCmd()
	flagArtFile = "banner.txt"

	text, _, err := splitArgs(nil, -1)
	if err != nil {
		t.Fatalf("splitArgs failed: %v", err)
	}
	if text != "" {
		t.Errorf("Expected empty text, got %q", text)
	}
}

func TestSplitArgsCombinesFlagAndDashArgs(t *testing.T) {
	newRootCmd()
	flagFigletArgs = []string{"-c"}

	_, extra, err := splitArgs([]string{"hi", "-w", "80"}, 1)
	if err != nil {
		t.Fatalf("splitArgs failed: %v", err)
	}
	expected := []string{"-c", "-w", "80"}
	if len(extra) != len(expected) {
		t.Fatalf("Expected %v, got %v", expected, extra)
	}
	for i := range expected {
		if extra[i] != expected[i] {
			t.Errorf("Expected %v, got %v", expected, extra)
			break
		}
	}
}

func TestApplyConfigPrecedence(t *testing.T) {
	cmd := newRootCmd()
	if err := cmd.ParseFlags([]string{"--duration", "9s"}); err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}

	applyConfig(cmd, &config.Config{
		Duration: "5s",
		Effect:   "wave",
		FPS:      60,
		Loop:     true,
	})

	if flagDuration != "9s" {
		t.Errorf("Expected explicit flag to win, got %q", flagDuration)
	}
	if flagEffect != "wave" {
		t.Errorf("Expected config to fill unset effect, got %q", flagEffect)
	}
	if flagFPS != 60 {
		t.Errorf("Expected config to fill unset fps, got %d", flagFPS)
	}
	if !flagLoop {
		t.Error("Expected config to enable loop")
	}
}

func TestApplyConfigIgnoresEmptyValues(t *testing.T) {
	cmd := newRootCmd()

	applyConfig(cmd, &config.Config{})

	if flagDuration != "3s" {
		t.Errorf("Expected default duration to survive, got %q", flagDuration)
	}
	if flagEffect != "fade-in" {
		t.Errorf("Expected default effect to survive, got %q", flagEffect)
	}
	if flagFPS != 30 {
		t.Errorf("Expected default fps to survive, got %d", flagFPS)
	}
}

func TestListEffects(t *testing.T) {
	cmd, out := newTestCmd()
	cmd.SetArgs([]string{"list", "effects"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	for _, name := range []string{"fade-in", "typewriter", "wave", "heartbeat"} {
		if !strings.Contains(out.String(), name) {
			t.Errorf("Expected effect %q in listing", name)
		}
	}
}

func TestListEasings(t *testing.T) {
	cmd, out := newTestCmd()
	cmd.SetArgs([]string{"list", "easings"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	for _, name := range []string{"linear", "ease-in-out", "ease-out-bounce"} {
		if !strings.Contains(out.String(), name) {
			t.Errorf("Expected easing %q in listing", name)
		}
	}
}

func TestListPalettes(t *testing.T) {
	cmd, out := newTestCmd()
	cmd.SetArgs([]string{"list", "palettes"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	for _, name := range []string{"rainbow", "fire", "ocean"} {
		if !strings.Contains(out.String(), name) {
			t.Errorf("Expected palette %q in listing", name)
		}
	}
}

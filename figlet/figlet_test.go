package figlet

import (
	"os/exec"
	"strings"
	"testing"
)

func requireFiglet(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("figlet"); err != nil {
		t.Skip("figlet not installed")
	}
}

func TestRenderBasic(t *testing.T) {
	requireFiglet(t)

	out, err := New().Render("Hi")
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if out == "" {
		t.Fatal("Expected non-empty output")
	}
	if !strings.ContainsAny(out, "H_|") {
		t.Errorf("Expected block-letter shapes in output, got %q", out)
	}
}

func TestRenderUnknownFontFails(t *testing.T) {
	requireFiglet(t)

	_, err := New().WithFont("definitely-not-a-font").Render("Hi")
	if err == nil {
		t.Fatal("Expected error for unknown font")
	}
}

func TestCheckInstalled(t *testing.T) {
	requireFiglet(t)

	if err := CheckInstalled(); err != nil {
		t.Errorf("Expected figlet to be reported installed, got %v", err)
	}
}

func TestCheckInstalledMissing(t *testing.T) {
	t.Setenv("PATH", "")

	err := CheckInstalled()
	if err == nil {
		t.Fatal("Expected error with empty PATH")
	}
	if !strings.Contains(err.Error(), "install") {
		t.Errorf("Expected install hint in error, got %q", err)
	}
}

func TestListFonts(t *testing.T) {
	requireFiglet(t)

	fonts, err := ListFonts()
	if err != nil {
		t.Fatalf("ListFonts failed: %v", err)
	}
	for _, font := range fonts {
		if font == "" {
			t.Error("Expected non-empty font names")
		}
	}
}

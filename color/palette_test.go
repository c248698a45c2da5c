package color

import "testing"

func TestNewPaletteRejectsEmpty(t *testing.T) {
	if _, err := NewPalette(nil); err == nil {
		t.Error("Expected error for empty palette")
	}
}

func TestPaletteCyclicIndexing(t *testing.T) {
	a := RGB{R: 255}
	b := RGB{G: 255}
	c := RGB{B: 255}
	p, err := NewPalette([]RGB{a, b, c})
	if err != nil {
		t.Fatalf("Expected palette to build, got %v", err)
	}

	tests := []struct {
		index int
		want  RGB
	}{
		{0, a},
		{1, b},
		{2, c},
		{3, a},
		{7, b},
		{-1, c},
		{-3, a},
	}
	for _, tt := range tests {
		if got := p.Color(tt.index); got != tt.want {
			t.Errorf("Expected color at %d to be %v, got %v", tt.index, tt.want, got)
		}
	}
}

func TestPaletteCopiesInput(t *testing.T) {
	colors := []RGB{{R: 1}, {R: 2}}
	p, err := NewPalette(colors)
	if err != nil {
		t.Fatalf("Expected palette to build, got %v", err)
	}
	colors[0] = RGB{R: 99}
	if got := p.Color(0); got.R != 1 {
		t.Errorf("Expected palette to own its colors, got %v", got)
	}
}

func TestBuiltinPalettes(t *testing.T) {
	names := BuiltinNames()
	if len(names) == 0 {
		t.Fatal("Expected at least one built-in palette")
	}
	for _, name := range names {
		p, ok := Builtin(name)
		if !ok {
			t.Errorf("Expected built-in %q to resolve", name)
			continue
		}
		if p.Len() == 0 {
			t.Errorf("Expected built-in %q to be non-empty", name)
		}
	}

	if _, ok := Builtin("no-such-palette"); ok {
		t.Error("Expected unknown palette name to fail lookup")
	}
}

func TestRainbowSweepsHues(t *testing.T) {
	p, ok := Builtin("rainbow")
	if !ok {
		t.Fatal("Expected rainbow built-in to exist")
	}
	// First hue of the HSV sweep is pure red
	if got := p.Color(0); got.R != 255 || got.G != 0 || got.B != 0 {
		t.Errorf("Expected rainbow to start at red, got %v", got)
	}
	seen := make(map[RGB]bool)
	for i := 0; i < p.Len(); i++ {
		seen[p.Color(i)] = true
	}
	if len(seen) != p.Len() {
		t.Errorf("Expected %d distinct rainbow colors, got %d", p.Len(), len(seen))
	}
}

package parse

import "testing"

func TestDurationUnits(t *testing.T) {
	tests := []struct {
		input    string
		expected uint64
	}{
		{"3000ms", 3000},
		{"500ms", 500},
		{"3s", 3000},
		{"0.5s", 500},
		{"1.5s", 1500},
		{"1m", 60000},
		{"0.5m", 30000},
		{"1h", 3600000},
		{"0.5h", 1800000},
	}

	for _, tt := range tests {
		got, err := Duration(tt.input)
		if err != nil {
			t.Errorf("Duration(%q) failed: %v", tt.input, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("Duration(%q): expected %d, got %d", tt.input, tt.expected, got)
		}
	}
}

func TestDurationTrimsWhitespace(t *testing.T) {
	got, err := Duration("  3s  ")
	if err != nil {
		t.Fatalf("Duration failed: %v", err)
	}
	if got != 3000 {
		t.Errorf("Expected 3000, got %d", got)
	}
}

func TestDurationInvalidFormats(t *testing.T) {
	invalid := []string{"invalid", "10", "10x", "", "-5s", "s", "1.2.3s", "3 s"}

	for _, input := range invalid {
		if _, err := Duration(input); err == nil {
			t.Errorf("Expected error for %q, got none", input)
		}
	}
}

package color

import "testing"

func TestLerpEndpoints(t *testing.T) {
	red := RGB{R: 255}
	blue := RGB{B: 255}

	if got := red.Lerp(blue, 0); got != red {
		t.Errorf("Expected t=0 to return start color, got %v", got)
	}
	if got := red.Lerp(blue, 1); got != blue {
		t.Errorf("Expected t=1 to return end color, got %v", got)
	}

	// Out-of-range t clamps to the endpoints
	if got := red.Lerp(blue, -0.5); got != red {
		t.Errorf("Expected t<0 to clamp to start, got %v", got)
	}
	if got := red.Lerp(blue, 1.5); got != blue {
		t.Errorf("Expected t>1 to clamp to end, got %v", got)
	}
}

func TestLerpMidpoint(t *testing.T) {
	got := Black.Lerp(White, 0.5)
	if got.R != 127 || got.G != 127 || got.B != 127 {
		t.Errorf("Expected mid gray (127,127,127), got %v", got)
	}
}

func TestScale(t *testing.T) {
	c := RGB{R: 200, G: 100, B: 50}

	if got := c.Scale(0); got != Black {
		t.Errorf("Expected factor 0 to return black, got %v", got)
	}
	if got := c.Scale(1); got != c {
		t.Errorf("Expected factor 1 to return original, got %v", got)
	}
	if got := c.Scale(0.5); got.R != 100 || got.G != 50 || got.B != 25 {
		t.Errorf("Expected half brightness (100,50,25), got %v", got)
	}
}

func TestHex(t *testing.T) {
	if got := (RGB{R: 255, G: 0, B: 128}).Hex(); got != "#ff0080" {
		t.Errorf("Expected #ff0080, got %s", got)
	}
}

func TestColorfulRoundTrip(t *testing.T) {
	c := RGB{R: 10, G: 200, B: 99}
	if got := FromColorful(c.Colorful()); got != c {
		t.Errorf("Expected round trip to preserve %v, got %v", c, got)
	}
}

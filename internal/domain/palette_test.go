package domain

import (
	"testing"
)

func TestNewPalette(t *testing.T) {
	if _, err := NewPalette(); err != ErrEmptyPalette {
		t.Errorf("expected ErrEmptyPalette, got %v", err)
	}

	pairs := []ColorPair{{Background: White, Icon: Black}}
	p, err := NewPalette(pairs...)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Mutating the input must not leak into the palette
	pairs[0].Background = Black
	if p.At(0).Background != White {
		t.Error("palette shares caller's slice")
	}
}

func TestPalette_Normalize(t *testing.T) {
	p := DefaultTrafficLights()

	tests := []struct {
		in   int
		want int
	}{
		{in: 0, want: 0},
		{in: 2, want: 2},
		{in: 3, want: 0},
		{in: -1, want: 2},
		{in: 7, want: 1},
	}

	for _, tt := range tests {
		t.Run("", func(t *testing.T) {
			if got := p.Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%d) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestPalette_ZeroValue(t *testing.T) {
	var p Palette
	if p.Len() != 1 {
		t.Errorf("expected length 1, got %d", p.Len())
	}
	if p.Next(0) != 0 {
		t.Errorf("expected Next to stay at 0, got %d", p.Next(0))
	}
	if p.At(5).Background != Black {
		t.Errorf("expected black, got %s", p.At(5).Background.Hex())
	}
}

func TestColor_Hex(t *testing.T) {
	if got := DefaultTrafficLights().At(0).Background.Hex(); got != "#EC3C1AFF" {
		t.Errorf("expected #EC3C1AFF, got %s", got)
	}
}

func TestParseMode(t *testing.T) {
	for _, m := range Modes() {
		got, err := ParseMode(m.String())
		if err != nil {
			t.Errorf("ParseMode(%q): unexpected error %v", m.String(), err)
		}
		if got != m {
			t.Errorf("ParseMode(%q) = %v, want %v", m.String(), got, m)
		}
	}

	if _, err := ParseMode("disco"); err != ErrInvalidMode {
		t.Errorf("expected ErrInvalidMode, got %v", err)
	}
}

func TestMode_Fields(t *testing.T) {
	tests := []struct {
		mode Mode
		want Field
	}{
		{ModeScreenSimple, FieldScreenLight},
		{ModeScreenTrafficLights, FieldTrafficLightsIndex},
		{ModeCameraOnly, FieldCameraLight},
		{ModeCameraAndScreen, FieldScreenLight | FieldCameraLight},
		{Mode(9), 0},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			if got := tt.mode.Fields(); got != tt.want {
				t.Errorf("Fields() = %b, want %b", got, tt.want)
			}
		})
	}

	if !ModeCameraAndScreen.Uses(FieldCameraLight) {
		t.Error("expected camera and screen to use the camera flag")
	}
}

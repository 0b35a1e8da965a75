package domain

import (
	"fmt"
	"image/color"
)

// Color is an 8-bit straight-alpha RGBA color
type Color struct {
	R, G, B, A uint8
}

var (
	White       = Color{R: 255, G: 255, B: 255, A: 255}
	Black       = Color{R: 0, G: 0, B: 0, A: 255}
	NeutralGray = Color{R: 128, G: 128, B: 128, A: 255}
)

// NRGBA converts to the image/color representation
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Hex formats the color as #RRGGBBAA
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

// ColorPair is one palette entry: the screen color and the icon tint drawn over it
type ColorPair struct {
	Background Color
	Icon       Color
}

// Palette is an immutable, non-empty ordered sequence of color pairs
type Palette struct {
	pairs []ColorPair
}

// NewPalette copies pairs into a palette
func NewPalette(pairs ...ColorPair) (Palette, error) {
	if len(pairs) == 0 {
		return Palette{}, ErrEmptyPalette
	}
	cp := make([]ColorPair, len(pairs))
	copy(cp, pairs)
	return Palette{pairs: cp}, nil
}

// DefaultTrafficLights returns the red, yellow, green palette
func DefaultTrafficLights() Palette {
	lightIcon := Color{R: 255, G: 255, B: 255, A: 199}
	p, _ := NewPalette(
		ColorPair{Background: Color{R: 236, G: 60, B: 26, A: 255}, Icon: lightIcon},
		ColorPair{Background: Color{R: 242, G: 236, B: 89, A: 255}, Icon: NeutralGray},
		ColorPair{Background: Color{R: 119, G: 195, B: 68, A: 255}, Icon: lightIcon},
	)
	return p
}

// Len returns the number of pairs. A zero Palette reports 1 so index
// arithmetic stays defined; its single entry is black on gray.
func (p Palette) Len() int {
	if len(p.pairs) == 0 {
		return 1
	}
	return len(p.pairs)
}

// Normalize folds any index into [0, Len())
func (p Palette) Normalize(i int) int {
	n := p.Len()
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// Next returns the index after i, wrapping to 0
func (p Palette) Next(i int) int {
	return p.Normalize(p.Normalize(i) + 1)
}

// At returns the pair at index i (normalized)
func (p Palette) At(i int) ColorPair {
	if len(p.pairs) == 0 {
		return ColorPair{Background: Black, Icon: NeutralGray}
	}
	return p.pairs[p.Normalize(i)]
}

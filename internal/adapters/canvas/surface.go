package canvas

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/quentinrf/the-light/internal/domain"
)

const (
	barHeightRatio = 0.12
	buttonRadius   = 0.3 // of the bar height
	strokeWidth    = 3.0
)

var labels = map[domain.Mode]string{
	domain.ModeScreenSimple:        "SCREEN",
	domain.ModeScreenTrafficLights: "TRAFFIC",
	domain.ModeCameraOnly:          "TORCH",
	domain.ModeCameraAndScreen:     "BOTH",
}

// Surface rasterizes the light: a full-screen background with a row of
// mode selector buttons along the bottom edge.
// It implements ports.Display, ports.ModeButtons and ports.Flusher.
// Not safe for concurrent use; the controller serializes calls.
type Surface struct {
	dc        *gg.Context
	framePath string

	background domain.Color
	buttons    map[domain.Mode]domain.ButtonVisual
}

// NewSurface creates a width x height surface. When framePath is set every
// Flush also writes the frame there as PNG.
func NewSurface(width, height int, framePath string) *Surface {
	dc := gg.NewContext(width, height)
	dc.SetFontFace(basicfont.Face7x13)

	return &Surface{
		dc:         dc,
		framePath:  framePath,
		background: domain.Black,
		buttons:    make(map[domain.Mode]domain.ButtonVisual),
	}
}

// SetBackground sets the fill drawn behind the selector bar on the next Flush
func (s *Surface) SetBackground(c domain.Color) {
	s.background = c
}

// SetButton replaces the visual for b.Mode on the next Flush
func (s *Surface) SetButton(b domain.ButtonVisual) {
	s.buttons[b.Mode] = b
}

// Flush redraws the frame from the latest background and buttons
func (s *Surface) Flush() error {
	s.draw()

	if s.framePath == "" {
		return nil
	}
	if err := s.dc.SavePNG(s.framePath); err != nil {
		return fmt.Errorf("save frame: %w", err)
	}
	return nil
}

// Frame returns the last drawn frame
func (s *Surface) Frame() image.Image {
	return s.dc.Image()
}

// ButtonCenter returns where the selector for mode is drawn
func (s *Surface) ButtonCenter(mode domain.Mode) (x, y float64) {
	w := float64(s.dc.Width())
	h := float64(s.dc.Height())
	barH := h * barHeightRatio

	slot := w / float64(len(domain.Modes()))
	return slot*float64(mode) + slot/2, h - barH/2
}

func (s *Surface) draw() {
	dc := s.dc
	dc.SetColor(s.background.NRGBA())
	dc.Clear()

	r := float64(dc.Height()) * barHeightRatio * buttonRadius
	for _, mode := range domain.Modes() {
		b, ok := s.buttons[mode]
		if !ok {
			continue
		}

		x, y := s.ButtonCenter(mode)
		dc.SetColor(b.Tint.NRGBA())
		dc.DrawCircle(x, y, r)
		if b.Selected {
			dc.Fill()
		} else {
			dc.SetLineWidth(strokeWidth)
			dc.Stroke()
		}

		dc.DrawStringAnchored(labels[mode], x, y-r-8, 0.5, 0)
	}
}

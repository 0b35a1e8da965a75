package domain

// Engine holds the pure transition and render rules.
// The only thing it carries is the immutable traffic-light palette, so an
// Engine value can be shared freely.
type Engine struct {
	palette Palette
}

// NewEngine creates an engine cycling through the given palette
func NewEngine(palette Palette) Engine {
	return Engine{palette: palette}
}

// Palette returns the traffic-light palette
func (e Engine) Palette() Palette {
	return e.palette
}

// EnterMode switches to target and puts it in its canonical starting
// configuration. The traffic-light cursor is kept, folded into range.
func (e Engine) EnterMode(s UIState, target Mode) UIState {
	if !target.Valid() {
		return s
	}

	s.Mode = target
	s.TrafficLightsIndex = e.palette.Normalize(s.TrafficLightsIndex)

	switch target {
	case ModeScreenSimple:
		s.IsCameraLightOn = false
		s.IsScreenLightOn = true
	case ModeScreenTrafficLights:
		s.IsCameraLightOn = false
	case ModeCameraOnly:
		s.IsCameraLightOn = true
		s.IsScreenLightOn = false
	case ModeCameraAndScreen:
		s.IsCameraLightOn = true
		s.IsScreenLightOn = s.IsCameraLightOn
	}
	return s
}

// TapScreen advances the active mode: a toggle, or one palette step
func (e Engine) TapScreen(s UIState) UIState {
	switch s.Mode {
	case ModeScreenSimple:
		s.IsScreenLightOn = !s.IsScreenLightOn
	case ModeScreenTrafficLights:
		s.TrafficLightsIndex = e.palette.Next(s.TrafficLightsIndex)
	case ModeCameraOnly:
		s.IsCameraLightOn = !s.IsCameraLightOn
	case ModeCameraAndScreen:
		s.IsCameraLightOn = !s.IsCameraLightOn
		s.IsScreenLightOn = s.IsCameraLightOn
	}
	return s
}

// SelectModeButton handles a tap on a mode selector. Tapping the active
// mode's button again acts as a screen tap rather than a no-op.
func (e Engine) SelectModeButton(s UIState, tapped Mode) UIState {
	if tapped != s.Mode {
		return e.EnterMode(s, tapped)
	}
	return e.TapScreen(s)
}

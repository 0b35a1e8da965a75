package domain

// TorchCommand is the on/off instruction for the flashlight
type TorchCommand bool

const (
	TorchOff TorchCommand = false
	TorchOn  TorchCommand = true
)

func (t TorchCommand) String() string {
	if t {
		return "on"
	}
	return "off"
}

// ButtonVisual is the look of one mode selector button
type ButtonVisual struct {
	Mode     Mode
	Tint     Color
	Selected bool
}

// RenderInstructions is everything the effectors need to show a state.
// It is comparable, so two renders can be checked with ==.
type RenderInstructions struct {
	Background Color
	Torch      TorchCommand
	Buttons    [modeCount]ButtonVisual
}

// Render derives the output for s. It depends on s alone.
func (e Engine) Render(s UIState) RenderInstructions {
	var out RenderInstructions

	switch s.Mode {
	case ModeScreenSimple, ModeCameraAndScreen:
		out.Background = screenColor(s.IsScreenLightOn)
	case ModeScreenTrafficLights:
		out.Background = e.palette.At(s.TrafficLightsIndex).Background
	default:
		out.Background = Black
	}

	// Every mode commands the torch; entry normalization keeps it off
	// outside the camera modes.
	out.Torch = TorchCommand(s.IsCameraLightOn && s.Mode.Valid())

	tint := NeutralGray
	if s.Mode == ModeScreenTrafficLights {
		tint = e.palette.At(s.TrafficLightsIndex).Icon
	}
	for i, m := range Modes() {
		out.Buttons[i] = ButtonVisual{
			Mode:     m,
			Tint:     tint,
			Selected: m == s.Mode,
		}
	}

	return out
}

func screenColor(on bool) Color {
	if on {
		return White
	}
	return Black
}

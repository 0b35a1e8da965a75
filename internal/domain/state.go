package domain

// UIState is the single mutable value of the light.
// Fields a mode does not consume are still normalized on mode entry,
// so every reachable state is fully determined.
type UIState struct {
	Mode               Mode
	IsScreenLightOn    bool
	IsCameraLightOn    bool
	TrafficLightsIndex int
}

// DefaultState is the state on activation: plain white screen, torch off
func DefaultState() UIState {
	return UIState{
		Mode:               ModeScreenSimple,
		IsScreenLightOn:    true,
		IsCameraLightOn:    false,
		TrafficLightsIndex: 0,
	}
}

package domain

import (
	"testing"
)

func newTestEngine() Engine {
	return NewEngine(DefaultTrafficLights())
}

// allStates enumerates every combination of mode, flags and palette index
func allStates(p Palette) []UIState {
	var states []UIState
	for _, m := range Modes() {
		for _, screen := range []bool{false, true} {
			for _, camera := range []bool{false, true} {
				for i := 0; i < p.Len(); i++ {
					states = append(states, UIState{
						Mode:               m,
						IsScreenLightOn:    screen,
						IsCameraLightOn:    camera,
						TrafficLightsIndex: i,
					})
				}
			}
		}
	}
	return states
}

func TestEnterMode_Normalization(t *testing.T) {
	e := newTestEngine()

	tests := []struct {
		name       string
		target     Mode
		wantScreen func(prev UIState) bool
		wantCamera bool
	}{
		{
			name:       "screen simple forces screen on, camera off",
			target:     ModeScreenSimple,
			wantScreen: func(UIState) bool { return true },
			wantCamera: false,
		},
		{
			name:       "traffic lights keeps screen flag, camera off",
			target:     ModeScreenTrafficLights,
			wantScreen: func(prev UIState) bool { return prev.IsScreenLightOn },
			wantCamera: false,
		},
		{
			name:       "camera only forces screen off, camera on",
			target:     ModeCameraOnly,
			wantScreen: func(UIState) bool { return false },
			wantCamera: true,
		},
		{
			name:       "camera and screen mirrors camera into screen",
			target:     ModeCameraAndScreen,
			wantScreen: func(UIState) bool { return true },
			wantCamera: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, prev := range allStates(e.Palette()) {
				got := e.EnterMode(prev, tt.target)

				if got.Mode != tt.target {
					t.Fatalf("expected mode %v, got %v", tt.target, got.Mode)
				}
				if got.IsScreenLightOn != tt.wantScreen(prev) {
					t.Errorf("from %+v: expected screen %v, got %v", prev, tt.wantScreen(prev), got.IsScreenLightOn)
				}
				if got.IsCameraLightOn != tt.wantCamera {
					t.Errorf("from %+v: expected camera %v, got %v", prev, tt.wantCamera, got.IsCameraLightOn)
				}
				if got.TrafficLightsIndex != prev.TrafficLightsIndex {
					t.Errorf("from %+v: expected index unchanged, got %d", prev, got.TrafficLightsIndex)
				}
			}
		})
	}
}

func TestEnterMode_RenderIndependentOfPriorMode(t *testing.T) {
	e := newTestEngine()

	for _, target := range Modes() {
		t.Run(target.String(), func(t *testing.T) {
			for i := 0; i < e.Palette().Len(); i++ {
				for _, screen := range []bool{false, true} {
					var want RenderInstructions
					for n, prior := range Modes() {
						s := UIState{Mode: prior, IsScreenLightOn: screen, IsCameraLightOn: n%2 == 0, TrafficLightsIndex: i}
						got := e.Render(e.EnterMode(s, target))
						if n == 0 {
							want = got
							continue
						}
						if got != want {
							t.Errorf("render after entering %v from %v differs: %+v vs %+v", target, prior, got, want)
						}
					}
				}
			}
		})
	}
}

func TestEnterMode_FoldsIndexIntoRange(t *testing.T) {
	e := newTestEngine()

	for _, idx := range []int{-4, -1, 3, 7, 100} {
		got := e.EnterMode(UIState{TrafficLightsIndex: idx}, ModeScreenTrafficLights)
		if got.TrafficLightsIndex < 0 || got.TrafficLightsIndex >= e.Palette().Len() {
			t.Errorf("index %d: expected in range, got %d", idx, got.TrafficLightsIndex)
		}
	}
}

func TestEnterMode_InvalidModeIsNoOp(t *testing.T) {
	e := newTestEngine()
	s := DefaultState()

	if got := e.EnterMode(s, Mode(42)); got != s {
		t.Errorf("expected state unchanged, got %+v", got)
	}
}

func TestTapScreen_SelfInverse(t *testing.T) {
	e := newTestEngine()

	for _, s := range allStates(e.Palette()) {
		if s.Mode != ModeScreenSimple && s.Mode != ModeCameraOnly {
			continue
		}
		if got := e.TapScreen(e.TapScreen(s)); got != s {
			t.Errorf("double tap from %+v: got %+v", s, got)
		}
	}
}

func TestTapScreen_CameraAndScreenCoupling(t *testing.T) {
	e := newTestEngine()

	for _, s := range allStates(e.Palette()) {
		if s.Mode != ModeCameraAndScreen {
			continue
		}
		got := e.TapScreen(s)
		if got.IsScreenLightOn != got.IsCameraLightOn {
			t.Errorf("from %+v: screen %v and camera %v not coupled", s, got.IsScreenLightOn, got.IsCameraLightOn)
		}
		if got.IsCameraLightOn == s.IsCameraLightOn {
			t.Errorf("from %+v: expected camera to flip", s)
		}
		// Once coupled, two taps round-trip
		if again := e.TapScreen(e.TapScreen(got)); again != got {
			t.Errorf("double tap from coupled %+v: got %+v", got, again)
		}
	}
}

func TestTapScreen_TrafficLightsCycle(t *testing.T) {
	e := newTestEngine()
	n := e.Palette().Len()

	for start := 0; start < n; start++ {
		s := UIState{Mode: ModeScreenTrafficLights, TrafficLightsIndex: start}
		for i := 0; i < n; i++ {
			s = e.TapScreen(s)
			if s.TrafficLightsIndex < 0 || s.TrafficLightsIndex >= n {
				t.Fatalf("index out of range: %d", s.TrafficLightsIndex)
			}
		}
		if s.TrafficLightsIndex != start {
			t.Errorf("expected index %d after %d taps, got %d", start, n, s.TrafficLightsIndex)
		}
	}
}

func TestTapScreen_TrafficLightsWrapAround(t *testing.T) {
	e := newTestEngine()
	if e.Palette().Len() != 3 {
		t.Fatalf("expected 3-entry palette, got %d", e.Palette().Len())
	}

	got := e.TapScreen(UIState{Mode: ModeScreenTrafficLights, TrafficLightsIndex: 2})
	if got.TrafficLightsIndex != 0 {
		t.Errorf("expected index 0, got %d", got.TrafficLightsIndex)
	}
}

func TestTapScreen_ScreenSimpleTurnsOff(t *testing.T) {
	e := newTestEngine()

	got := e.TapScreen(DefaultState())
	if got.IsScreenLightOn {
		t.Error("expected screen light off")
	}
	if bg := e.Render(got).Background; bg != Black {
		t.Errorf("expected black background, got %s", bg.Hex())
	}
}

func TestTapScreen_CameraAndScreenFromDark(t *testing.T) {
	e := newTestEngine()

	got := e.TapScreen(UIState{Mode: ModeCameraAndScreen})
	if !got.IsCameraLightOn || !got.IsScreenLightOn {
		t.Errorf("expected both lights on, got %+v", got)
	}
}

func TestSelectModeButton_Dispatch(t *testing.T) {
	e := newTestEngine()

	for _, s := range allStates(e.Palette()) {
		for _, m := range Modes() {
			got := e.SelectModeButton(s, m)

			var want UIState
			if m == s.Mode {
				want = e.TapScreen(s)
			} else {
				want = e.EnterMode(s, m)
			}
			if got != want {
				t.Errorf("select %v from %+v: expected %+v, got %+v", m, s, want, got)
			}
		}
	}
}

func TestSelectModeButton_EnterTrafficLights(t *testing.T) {
	e := newTestEngine()

	got := e.SelectModeButton(DefaultState(), ModeScreenTrafficLights)
	if got.Mode != ModeScreenTrafficLights {
		t.Fatalf("expected traffic lights mode, got %v", got.Mode)
	}
	if got.TrafficLightsIndex != 0 {
		t.Errorf("expected index unchanged at 0, got %d", got.TrafficLightsIndex)
	}
	if bg := e.Render(got).Background; bg != e.Palette().At(0).Background {
		t.Errorf("expected first palette color, got %s", bg.Hex())
	}
}

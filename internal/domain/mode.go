package domain

// Mode is the active operating behavior of the light.
// Exactly one mode is active at a time.
type Mode int

const (
	ModeScreenSimple Mode = iota
	ModeScreenTrafficLights
	ModeCameraOnly
	ModeCameraAndScreen
)

// modeCount is the number of selectable modes (one selector button each)
const modeCount = 4

// Field identifies a UIState field a mode consumes
type Field uint8

const (
	FieldScreenLight Field = 1 << iota
	FieldCameraLight
	FieldTrafficLightsIndex
)

// modeInfo is one row of the mode registry
type modeInfo struct {
	name   string
	fields Field
}

var registry = [modeCount]modeInfo{
	ModeScreenSimple:        {name: "screen_simple", fields: FieldScreenLight},
	ModeScreenTrafficLights: {name: "screen_traffic_lights", fields: FieldTrafficLightsIndex},
	ModeCameraOnly:          {name: "camera_only", fields: FieldCameraLight},
	ModeCameraAndScreen:     {name: "camera_and_screen", fields: FieldScreenLight | FieldCameraLight},
}

// Modes returns every valid mode in selector-button order
func Modes() []Mode {
	return []Mode{ModeScreenSimple, ModeScreenTrafficLights, ModeCameraOnly, ModeCameraAndScreen}
}

// Valid reports whether m is one of the known modes
func (m Mode) Valid() bool {
	return m >= 0 && m < modeCount
}

// String returns the stable wire name of the mode
func (m Mode) String() string {
	if !m.Valid() {
		return "unknown"
	}
	return registry[m].name
}

// Fields returns the UIState fields the mode reads when rendering
func (m Mode) Fields() Field {
	if !m.Valid() {
		return 0
	}
	return registry[m].fields
}

// Uses reports whether the mode consumes field f
func (m Mode) Uses(f Field) bool {
	return m.Fields()&f != 0
}

// ParseMode maps a wire name back to its Mode
func ParseMode(name string) (Mode, error) {
	for i, info := range registry {
		if info.name == name {
			return Mode(i), nil
		}
	}
	return 0, ErrInvalidMode
}

package schema

import "fmt"

// Field keys as they travel over the wire. These match the JSON tags on
// Settings so the daemon can apply an update generically.
const (
	KeyPosition       = "position"
	KeyHeight         = "height"
	KeyOpacity        = "opacity"
	KeyVisualizerMode = "visualizerMode"
	KeyAudioDeviceID  = "audioDeviceId"
	KeyColorScheme    = "colorScheme"
	KeyBarCount       = "barCount"
	KeyShowPeaks      = "showPeaks"
)

// FieldUpdate is a single-field settings mutation. The closed set of
// implementations below means a caller can neither typo a key nor pair
// a key with a value of the wrong type.
type FieldUpdate interface {
	// Key returns the wire name of the field being changed.
	Key() string
	// Value returns the new value in its JSON-compatible form.
	Value() any
	// Apply writes the new value into a settings record.
	Apply(*Settings)
}

// PositionUpdate moves the overlay bar to another screen edge.
type PositionUpdate struct {
	Position Position
}

func (u PositionUpdate) Key() string       { return KeyPosition }
func (u PositionUpdate) Value() any        { return string(u.Position) }
func (u PositionUpdate) Apply(s *Settings) { s.Position = u.Position }

// HeightUpdate changes the bar thickness in pixels.
type HeightUpdate struct {
	Height int
}

func (u HeightUpdate) Key() string       { return KeyHeight }
func (u HeightUpdate) Value() any        { return u.Height }
func (u HeightUpdate) Apply(s *Settings) { s.Height = u.Height }

// OpacityUpdate changes the overlay opacity as a unit fraction.
type OpacityUpdate struct {
	Opacity float64
}

func (u OpacityUpdate) Key() string       { return KeyOpacity }
func (u OpacityUpdate) Value() any        { return u.Opacity }
func (u OpacityUpdate) Apply(s *Settings) { s.Opacity = u.Opacity }

// VisualizerModeUpdate switches the rendering mode.
type VisualizerModeUpdate struct {
	Mode VisualizerMode
}

func (u VisualizerModeUpdate) Key() string       { return KeyVisualizerMode }
func (u VisualizerModeUpdate) Value() any        { return string(u.Mode) }
func (u VisualizerModeUpdate) Apply(s *Settings) { s.VisualizerMode = u.Mode }

// AudioDeviceUpdate selects the capture device; empty means the system
// default device.
type AudioDeviceUpdate struct {
	DeviceID string
}

func (u AudioDeviceUpdate) Key() string       { return KeyAudioDeviceID }
func (u AudioDeviceUpdate) Value() any        { return u.DeviceID }
func (u AudioDeviceUpdate) Apply(s *Settings) { s.AudioDeviceID = u.DeviceID }

// ColorSchemeUpdate switches the overlay palette.
type ColorSchemeUpdate struct {
	Scheme ColorScheme
}

func (u ColorSchemeUpdate) Key() string       { return KeyColorScheme }
func (u ColorSchemeUpdate) Value() any        { return string(u.Scheme) }
func (u ColorSchemeUpdate) Apply(s *Settings) { s.ColorScheme = u.Scheme }

// BarCountUpdate changes the visual density of the rendered bars. The
// panel labels this control "density"; the stored field has always been
// named barCount, and the two names are kept distinct on purpose.
type BarCountUpdate struct {
	BarCount int
}

func (u BarCountUpdate) Key() string       { return KeyBarCount }
func (u BarCountUpdate) Value() any        { return u.BarCount }
func (u BarCountUpdate) Apply(s *Settings) { s.BarCount = u.BarCount }

// ShowPeaksUpdate toggles the peak-marker rendering flag.
type ShowPeaksUpdate struct {
	ShowPeaks bool
}

func (u ShowPeaksUpdate) Key() string       { return KeyShowPeaks }
func (u ShowPeaksUpdate) Value() any        { return u.ShowPeaks }
func (u ShowPeaksUpdate) Apply(s *Settings) { s.ShowPeaks = u.ShowPeaks }

// UpdateForKey reconstructs a typed FieldUpdate from a wire key and a
// decoded JSON value. Numeric values arrive as float64 from
// encoding/json. Used by the daemon side of the set-settings channel.
func UpdateForKey(key string, value any) (FieldUpdate, error) {
	switch key {
	case KeyPosition:
		str, ok := value.(string)
		if !ok || !ValidPosition(Position(str)) {
			return nil, fmt.Errorf("invalid position value: %v", value)
		}
		return PositionUpdate{Position: Position(str)}, nil

	case KeyHeight:
		n, ok := toNumber(value)
		if !ok || n < 0 {
			return nil, fmt.Errorf("invalid height value: %v", value)
		}
		return HeightUpdate{Height: int(n)}, nil

	case KeyOpacity:
		n, ok := toNumber(value)
		if !ok || n < 0 || n > 1 {
			return nil, fmt.Errorf("invalid opacity value: %v", value)
		}
		return OpacityUpdate{Opacity: n}, nil

	case KeyVisualizerMode:
		str, ok := value.(string)
		if !ok || !ValidVisualizerMode(VisualizerMode(str)) {
			return nil, fmt.Errorf("invalid visualizer mode: %v", value)
		}
		return VisualizerModeUpdate{Mode: VisualizerMode(str)}, nil

	case KeyAudioDeviceID:
		str, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("invalid audio device id: %v", value)
		}
		return AudioDeviceUpdate{DeviceID: str}, nil

	case KeyColorScheme:
		str, ok := value.(string)
		if !ok || !ValidColorScheme(ColorScheme(str)) {
			return nil, fmt.Errorf("invalid color scheme: %v", value)
		}
		return ColorSchemeUpdate{Scheme: ColorScheme(str)}, nil

	case KeyBarCount:
		n, ok := toNumber(value)
		if !ok || n <= 0 {
			return nil, fmt.Errorf("invalid bar count: %v", value)
		}
		return BarCountUpdate{BarCount: int(n)}, nil

	case KeyShowPeaks:
		b, ok := value.(bool)
		if !ok {
			return nil, fmt.Errorf("invalid show peaks value: %v", value)
		}
		return ShowPeaksUpdate{ShowPeaks: b}, nil
	}

	return nil, fmt.Errorf("unknown settings field: %q", key)
}

func toNumber(value any) (float64, bool) {
	switch n := value.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	}
	return 0, false
}

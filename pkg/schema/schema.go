package schema

// Position identifies the screen edge the overlay bar docks to.
type Position string

const (
	PositionTop    Position = "top"
	PositionBottom Position = "bottom"
	PositionLeft   Position = "left"
	PositionRight  Position = "right"
)

// VisualizerMode selects how the overlay renders the audio signal.
type VisualizerMode string

const (
	ModeSpectrum VisualizerMode = "spectrum"
	ModeWaveform VisualizerMode = "waveform"
	ModePeaks    VisualizerMode = "peaks"
)

// ColorScheme names one of the built-in overlay palettes.
type ColorScheme string

const (
	SchemeClassic ColorScheme = "classic"
	SchemeAurora  ColorScheme = "aurora"
	SchemeEmber   ColorScheme = "ember"
	SchemeMono    ColorScheme = "mono"
)

// Option sets presented by the settings panel. The panel builds one
// control per entry, so order here is display order.
var (
	Positions       = []Position{PositionTop, PositionBottom, PositionLeft, PositionRight}
	VisualizerModes = []VisualizerMode{ModeSpectrum, ModeWaveform, ModePeaks}
	ColorSchemes    = []ColorScheme{SchemeClassic, SchemeAurora, SchemeEmber, SchemeMono}

	// PanelHeights are the selectable bar thicknesses in pixels.
	PanelHeights = []int{40, 60, 80, 120}
)

// Density slider bounds (bar count of the rendered visualizer).
const (
	MinBarCount = 16
	MaxBarCount = 256
)

// Settings represents the persisted overlay configuration owned by the
// host daemon. Add additional fields here as new settings are
// introduced; every field must have a default so a fresh installation
// always yields a complete record.
type Settings struct {
	Position       Position       `json:"position"`
	Height         int            `json:"height"`
	Opacity        float64        `json:"opacity"`
	VisualizerMode VisualizerMode `json:"visualizerMode"`
	AudioDeviceID  string         `json:"audioDeviceId,omitempty"` // empty means system default
	ColorScheme    ColorScheme    `json:"colorScheme"`
	BarCount       int            `json:"barCount"`
	ShowPeaks      bool           `json:"showPeaks"`
}

// Default returns the fully-populated settings record used for fresh
// installations and as the repair source for malformed records.
func Default() Settings {
	return Settings{
		Position:       PositionBottom,
		Height:         60,
		Opacity:        0.85,
		VisualizerMode: ModeSpectrum,
		AudioDeviceID:  "",
		ColorScheme:    SchemeClassic,
		BarCount:       64,
		ShowPeaks:      true,
	}
}

// Normalize replaces out-of-vocabulary or zero-valued fields with their
// defaults so that partially written records do not break behaviour
// when new fields are added. AudioDeviceID is left alone: empty is a
// meaningful value ("use system default"), and ShowPeaks false is a
// legal choice.
func (s *Settings) Normalize() {
	def := Default()

	if !ValidPosition(s.Position) {
		s.Position = def.Position
	}
	if s.Height <= 0 {
		s.Height = def.Height
	}
	if s.Opacity <= 0 {
		s.Opacity = def.Opacity
	} else if s.Opacity > 1 {
		s.Opacity = 1
	}
	if !ValidVisualizerMode(s.VisualizerMode) {
		s.VisualizerMode = def.VisualizerMode
	}
	if !ValidColorScheme(s.ColorScheme) {
		s.ColorScheme = def.ColorScheme
	}
	if s.BarCount <= 0 {
		s.BarCount = def.BarCount
	}
}

// ValidPosition reports whether p is a known screen edge.
func ValidPosition(p Position) bool {
	for _, known := range Positions {
		if p == known {
			return true
		}
	}
	return false
}

// ValidVisualizerMode reports whether m is a known rendering mode.
func ValidVisualizerMode(m VisualizerMode) bool {
	for _, known := range VisualizerModes {
		if m == known {
			return true
		}
	}
	return false
}

// ValidColorScheme reports whether c is a known palette.
func ValidColorScheme(c ColorScheme) bool {
	for _, known := range ColorSchemes {
		if c == known {
			return true
		}
	}
	return false
}

package schema

import (
	"encoding/json"
	"testing"
)

func TestDefaultIsFullyPopulated(t *testing.T) {
	def := Default()

	if !ValidPosition(def.Position) {
		t.Errorf("default position %q is not a known edge", def.Position)
	}
	if def.Height <= 0 {
		t.Errorf("default height must be positive, got %d", def.Height)
	}
	if def.Opacity <= 0 || def.Opacity > 1 {
		t.Errorf("default opacity out of range: %v", def.Opacity)
	}
	if !ValidVisualizerMode(def.VisualizerMode) {
		t.Errorf("default visualizer mode %q is not known", def.VisualizerMode)
	}
	if !ValidColorScheme(def.ColorScheme) {
		t.Errorf("default color scheme %q is not known", def.ColorScheme)
	}
	if def.BarCount <= 0 {
		t.Errorf("default bar count must be positive, got %d", def.BarCount)
	}
}

func TestDefaultHeightIsSelectable(t *testing.T) {
	def := Default()
	for _, h := range PanelHeights {
		if h == def.Height {
			return
		}
	}
	t.Errorf("default height %d is not one of the selectable heights %v", def.Height, PanelHeights)
}

func TestNormalizeRepairsZeroRecord(t *testing.T) {
	var s Settings
	s.Normalize()

	// ShowPeaks stays false: a zero value there is indistinguishable
	// from a deliberate choice.
	want := Default()
	want.ShowPeaks = false
	if s != want {
		t.Errorf("normalizing a zero record should yield defaults, got %+v", s)
	}
}

func TestNormalizeRepairsUnknownEnums(t *testing.T) {
	s := Default()
	s.Position = "diagonal"
	s.VisualizerMode = "lasers"
	s.ColorScheme = "plaid"
	s.Normalize()

	def := Default()
	if s.Position != def.Position {
		t.Errorf("position = %q, want %q", s.Position, def.Position)
	}
	if s.VisualizerMode != def.VisualizerMode {
		t.Errorf("visualizer mode = %q, want %q", s.VisualizerMode, def.VisualizerMode)
	}
	if s.ColorScheme != def.ColorScheme {
		t.Errorf("color scheme = %q, want %q", s.ColorScheme, def.ColorScheme)
	}
}

func TestNormalizeClampsOpacity(t *testing.T) {
	s := Default()
	s.Opacity = 1.4
	s.Normalize()
	if s.Opacity != 1 {
		t.Errorf("opacity = %v, want clamped to 1", s.Opacity)
	}
}

func TestNormalizeKeepsMeaningfulZeroes(t *testing.T) {
	s := Default()
	s.AudioDeviceID = ""
	s.ShowPeaks = false
	s.Normalize()

	if s.AudioDeviceID != "" {
		t.Errorf("empty audio device id must survive normalization, got %q", s.AudioDeviceID)
	}
	if s.ShowPeaks {
		t.Error("showPeaks=false must survive normalization")
	}
}

func TestSettingsJSONRoundTrip(t *testing.T) {
	in := Settings{
		Position:       PositionLeft,
		Height:         80,
		Opacity:        0.42,
		VisualizerMode: ModeWaveform,
		AudioDeviceID:  "hw:1,0",
		ColorScheme:    SchemeAurora,
		BarCount:       128,
		ShowPeaks:      false,
	}

	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var out Settings
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out != in {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", out, in)
	}
}

func TestAbsentAudioDeviceOmitted(t *testing.T) {
	data, err := json.Marshal(Default())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, present := raw["audioDeviceId"]; present {
		t.Error("audioDeviceId should be omitted when using the system default")
	}
}

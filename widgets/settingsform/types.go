package settingsform

import (
	"math"

	"wavebar/pkg/schema"
)

// Rect is an axis-aligned hit region in window coordinates.
type Rect struct {
	X, Y, W, H int32
}

// Contains reports whether the point lies inside the rect.
func (r Rect) Contains(x, y int32) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// ModeSelect shows the current visualizer mode; clicking advances to
// the next mode, wrapping around.
type ModeSelect struct {
	Rect  Rect
	Modes []schema.VisualizerMode
	Value schema.VisualizerMode
}

// Advance moves the selection to the next mode.
func (m *ModeSelect) Advance() {
	for i, mode := range m.Modes {
		if mode == m.Value {
			m.Value = m.Modes[(i+1)%len(m.Modes)]
			return
		}
	}
	if len(m.Modes) > 0 {
		m.Value = m.Modes[0]
	}
}

// Zone is one selectable screen-edge tile.
type Zone struct {
	Rect     Rect
	Position schema.Position
	Active   bool
}

// SizeButton selects one panel thickness.
type SizeButton struct {
	Rect   Rect
	Size   int
	Active bool
}

// Slider edits an integer value by dragging along a horizontal track.
type Slider struct {
	Rect     Rect
	Min, Max int
	Value    int
	Dragging bool
}

// ValueAt maps a window x coordinate to a slider value, clamped to the
// slider's range.
func (s *Slider) ValueAt(x int32) int {
	if s.Rect.W <= 1 || s.Max <= s.Min {
		return s.Min
	}
	t := float64(x-s.Rect.X) / float64(s.Rect.W-1)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return s.Min + int(math.Round(t*float64(s.Max-s.Min)))
}

// KnobX returns the x coordinate of the slider knob for the current
// value.
func (s *Slider) KnobX() int32 {
	if s.Max <= s.Min {
		return s.Rect.X
	}
	t := float64(s.Value-s.Min) / float64(s.Max-s.Min)
	return s.Rect.X + int32(math.Round(t*float64(s.Rect.W-1)))
}

// Radio is one color-scheme choice.
type Radio struct {
	Rect    Rect
	Scheme  schema.ColorScheme
	Checked bool
}

package panel

import (
	"wavebar/pkg/input"
	"wavebar/pkg/performance"
	"wavebar/ui"
	"wavebar/widgets/settingsform"

	"github.com/veandco/go-sdl2/sdl"
)

// PanelScreen manages the settings panel window
type PanelScreen struct {
	// SDL2 rendering
	window   *sdl.Window
	renderer *sdl.Renderer

	// UI components
	fonts *ui.Fonts
	form  *settingsform.Form

	// Input tracking
	keyState []uint8
	// Mouse state from sdl.GetMouseState
	mouseX, mouseY int32
	mouseButtons   uint32

	// Key press state tracking to avoid duplicate calls
	keyTracker input.KeyPressTracker
	// Mouse press state tracking to avoid duplicate calls
	mouseTracker input.MousePressTracker

	// Frame timing
	monitor *performance.FrameMonitor

	done bool
}

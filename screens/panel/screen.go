package panel

import (
	"context"
	"log"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"wavebar/pkg/bridge"
	"wavebar/pkg/input"
	"wavebar/pkg/performance"
	"wavebar/ui"
	"wavebar/widgets/settingsform"
)

const headerHeight = 72

// NewPanelScreen creates and initializes the settings panel screen.
// The store is usually a connected bridge client; the form starts its
// settings fetch immediately and paints defaults until it lands.
func NewPanelScreen(window *sdl.Window, renderer *sdl.Renderer, store bridge.Store, frameBudget time.Duration) *PanelScreen {
	ps := &PanelScreen{
		window:       window,
		renderer:     renderer,
		form:         settingsform.NewForm(store),
		keyTracker:   input.NewKeyPressTracker(),
		mouseTracker: input.NewMousePressTracker(),
		monitor:      performance.NewFrameMonitor(120, frameBudget),
	}

	// Initialize UI components
	fonts, err := ui.LoadFonts()
	if err != nil {
		log.Printf("Warning: Failed to initialize fonts: %v", err)
	}
	ps.fonts = fonts

	ps.form.Init(context.Background())

	return ps
}

// Update handles SDL2 input and updates screen state
func (ps *PanelScreen) Update() error {
	// Get current keyboard state
	ps.keyState = sdl.GetKeyboardState()
	// Get current mouse state
	x, y, buttons := sdl.GetMouseState()
	ps.mouseX, ps.mouseY, ps.mouseButtons = x, y, buttons

	ps.handleInput()

	// Apply a fetched settings record if one arrived
	ps.form.Poll()

	return nil
}

// handleInput routes mouse edges and movement to the form
func (ps *PanelScreen) handleInput() {
	pressed, released := ps.mouseTracker.Update(ps.mouseButtons, sdl.ButtonLMask())

	if pressed {
		ps.form.MouseDown(ps.mouseX, ps.mouseY)
	}
	// MouseMove is a no-op unless a slider drag is in progress
	ps.form.MouseMove(ps.mouseX, ps.mouseY)
	if released {
		ps.form.MouseUp(ps.mouseX, ps.mouseY)
	}

	if ps.keyTracker.IsPressed(ps.keyState, sdl.SCANCODE_ESCAPE) {
		ps.done = true
	}
}

// Draw renders the complete frame using SDL2
func (ps *PanelScreen) Draw() error {
	start := time.Now()

	// Get screen dimensions
	w, h := ps.window.GetSize()

	// Clear screen with the panel background
	ps.renderer.SetDrawColor(15, 23, 42, 255)
	ps.renderer.Clear()

	if ps.fonts != nil && ps.fonts.Large != nil {
		ui.RenderText(ps.renderer, "Wavebar", 24, 20, sdl.Color{R: 255, G: 255, B: 255, A: 255}, ps.fonts.Large)
	}

	ps.form.Layout(0, headerHeight, w, h-headerHeight)
	if err := ps.form.Draw(ps.renderer, ps.fonts); err != nil {
		return err
	}

	// Present the complete frame
	ps.renderer.Present()

	ps.monitor.RecordFrame(time.Since(start))
	return nil
}

// Done reports whether the user asked to close the panel
func (ps *PanelScreen) Done() bool {
	return ps.done
}

// FrameReport returns the current render timing metrics
func (ps *PanelScreen) FrameReport() performance.FrameReport {
	return ps.monitor.Report()
}

// Close flushes pending writes and releases UI resources
func (ps *PanelScreen) Close() {
	ps.form.Flush()
	if ps.fonts != nil {
		ps.fonts.Close()
	}
}

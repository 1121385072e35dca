package settingsform

import (
	"strconv"

	"github.com/veandco/go-sdl2/sdl"

	"wavebar/pkg/schema"
	"wavebar/ui"
)

var (
	colorText   = sdl.Color{R: 255, G: 255, B: 255, A: 255}
	colorMuted  = sdl.Color{R: 148, G: 163, B: 184, A: 255}
	colorAccent = sdl.Color{R: 59, G: 130, B: 246, A: 255}
)

// Swatch gradients for the color-scheme radios.
var schemeColors = map[schema.ColorScheme][2][3]uint8{
	schema.SchemeClassic: {{41, 98, 255}, {13, 71, 161}},
	schema.SchemeAurora:  {{52, 211, 153}, {124, 58, 237}},
	schema.SchemeEmber:   {{251, 146, 60}, {220, 38, 38}},
	schema.SchemeMono:    {{148, 163, 184}, {51, 65, 85}},
}

// Draw renders the whole form.
func (f *Form) Draw(renderer *sdl.Renderer, fonts *ui.Fonts) error {
	if fonts == nil {
		return nil
	}

	// Form background.
	renderer.SetDrawColor(30, 41, 59, 255)
	renderer.FillRect(&sdl.Rect{X: f.area.X, Y: f.area.Y, W: f.area.W, H: f.area.H})

	f.drawSection(renderer, fonts, "Visualizer", f.visualizer.Rect)
	f.drawSelect(renderer, fonts)

	f.drawSection(renderer, fonts, "Position", f.zones[0].Rect)
	for _, z := range f.zones {
		f.drawChoice(renderer, fonts, z.Rect, titleCase(string(z.Position)), z.Active)
	}

	f.drawSection(renderer, fonts, "Size", f.sizes[0].Rect)
	for _, b := range f.sizes {
		f.drawChoice(renderer, fonts, b.Rect, strconv.Itoa(b.Size), b.Active)
	}

	f.drawSection(renderer, fonts, "Density", f.density.Rect)
	f.drawSlider(renderer, fonts, f.density, f.densityLabel)

	f.drawSection(renderer, fonts, "Opacity", f.opacity.Rect)
	f.drawSlider(renderer, fonts, f.opacity, f.opacityLabel)

	f.drawSection(renderer, fonts, "Color", f.radios[0].Rect)
	for _, r := range f.radios {
		f.drawRadio(renderer, fonts, r)
	}

	return nil
}

// drawSection renders a section label above the control row.
func (f *Form) drawSection(renderer *sdl.Renderer, fonts *ui.Fonts, title string, below Rect) {
	if fonts.Small == nil {
		return
	}
	ui.RenderText(renderer, title, below.X, below.Y-sectionH+4, colorMuted, fonts.Small)
}

func (f *Form) drawSelect(renderer *sdl.Renderer, fonts *ui.Fonts) {
	r := f.visualizer.Rect
	renderer.SetDrawColor(51, 65, 85, 255)
	renderer.FillRect(&sdl.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H})
	renderer.SetDrawColor(colorAccent.R, colorAccent.G, colorAccent.B, 255)
	renderer.DrawRect(&sdl.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H})

	if fonts.Medium != nil {
		ui.RenderText(renderer, titleCase(string(f.visualizer.Value)), r.X+12, r.Y+6, colorText, fonts.Medium)
		// Cycle hint on the right edge.
		ui.RenderText(renderer, "»", r.X+r.W-24, r.Y+6, colorMuted, fonts.Medium)
	}
}

// drawChoice renders one tile of a single-choice group.
func (f *Form) drawChoice(renderer *sdl.Renderer, fonts *ui.Fonts, r Rect, label string, active bool) {
	if active {
		renderer.SetDrawColor(colorAccent.R, colorAccent.G, colorAccent.B, 255)
	} else {
		renderer.SetDrawColor(51, 65, 85, 255)
	}
	renderer.FillRect(&sdl.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H})

	if fonts.Small != nil {
		ui.RenderTextCentered(renderer, label, r.X+r.W/2, r.Y+(r.H-18)/2, colorText, fonts.Small)
	}
}

func (f *Form) drawSlider(renderer *sdl.Renderer, fonts *ui.Fonts, s *Slider, label string) {
	r := s.Rect

	// Track.
	trackY := r.Y + r.H/2 - 2
	renderer.SetDrawColor(51, 65, 85, 255)
	renderer.FillRect(&sdl.Rect{X: r.X, Y: trackY, W: r.W, H: 4})

	// Filled portion and knob.
	knobX := s.KnobX()
	renderer.SetDrawColor(colorAccent.R, colorAccent.G, colorAccent.B, 255)
	renderer.FillRect(&sdl.Rect{X: r.X, Y: trackY, W: knobX - r.X, H: 4})
	renderer.FillRect(&sdl.Rect{X: knobX - 6, Y: r.Y, W: 12, H: r.H})

	// Value label right of the track.
	if fonts.Small != nil {
		ui.RenderText(renderer, label, r.X+r.W+16, r.Y+2, colorText, fonts.Small)
	}
}

func (f *Form) drawRadio(renderer *sdl.Renderer, fonts *ui.Fonts, r *Radio) {
	colors, ok := schemeColors[r.Scheme]
	if !ok {
		colors = schemeColors[schema.SchemeMono]
	}
	ui.DrawGradientRect(renderer, r.Rect.X, r.Rect.Y, r.Rect.W, r.Rect.H, colors[0], colors[1])

	if r.Checked {
		renderer.SetDrawColor(255, 255, 255, 255)
		renderer.DrawRect(&sdl.Rect{X: r.Rect.X, Y: r.Rect.Y, W: r.Rect.W, H: r.Rect.H})
		renderer.DrawRect(&sdl.Rect{X: r.Rect.X + 1, Y: r.Rect.Y + 1, W: r.Rect.W - 2, H: r.Rect.H - 2})
	}

	if fonts.Small != nil {
		ui.RenderTextCentered(renderer, titleCase(string(r.Scheme)), r.Rect.X+r.Rect.W/2, r.Rect.Y+(r.Rect.H-18)/2, colorText, fonts.Small)
	}
}

// titleCase uppercases the first byte; enum identifiers are plain
// ASCII.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-'a'+'A') + s[1:]
	}
	return s
}

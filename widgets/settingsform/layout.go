package settingsform

// Fixed form geometry. The panel window is a single non-resizable
// column, so the layout is computed once from the content rect.
const (
	margin     = 24
	sectionH   = 28 // section label row
	controlGap = 12

	selectW  = 240
	selectH  = 36
	zoneH    = 56
	sizeW    = 72
	sizeH    = 36
	sliderH  = 24
	sliderRM = 80 // room for the value label right of the track
	radioH   = 44
)

// Layout positions every control inside the given content rect. Must
// be called before hit-testing or drawing.
func (f *Form) Layout(x, y, w, h int32) {
	f.area = Rect{X: x, Y: y, W: w, H: h}
	innerW := w - 2*margin
	cy := y + margin

	// Visualizer mode select.
	cy += sectionH
	f.visualizer.Rect = Rect{X: x + margin, Y: cy, W: selectW, H: selectH}
	cy += selectH + margin

	// Position zones, one row.
	cy += sectionH
	zoneW := (innerW - controlGap*int32(len(f.zones)-1)) / int32(len(f.zones))
	for i, z := range f.zones {
		z.Rect = Rect{
			X: x + margin + int32(i)*(zoneW+controlGap),
			Y: cy,
			W: zoneW,
			H: zoneH,
		}
	}
	cy += zoneH + margin

	// Size buttons, one row.
	cy += sectionH
	for i, b := range f.sizes {
		b.Rect = Rect{
			X: x + margin + int32(i)*(sizeW+controlGap),
			Y: cy,
			W: sizeW,
			H: sizeH,
		}
	}
	cy += sizeH + margin

	// Density slider.
	cy += sectionH
	f.density.Rect = Rect{X: x + margin, Y: cy, W: innerW - sliderRM, H: sliderH}
	cy += sliderH + margin

	// Opacity slider.
	cy += sectionH
	f.opacity.Rect = Rect{X: x + margin, Y: cy, W: innerW - sliderRM, H: sliderH}
	cy += sliderH + margin

	// Color scheme radios, one row.
	cy += sectionH
	radioW := (innerW - controlGap*int32(len(f.radios)-1)) / int32(len(f.radios))
	for i, r := range f.radios {
		r.Rect = Rect{
			X: x + margin + int32(i)*(radioW+controlGap),
			Y: cy,
			W: radioW,
			H: radioH,
		}
	}
}

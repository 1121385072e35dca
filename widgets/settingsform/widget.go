package settingsform

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"sync"
	"time"

	"wavebar/pkg/bridge"
	"wavebar/pkg/schema"
)

const writeTimeout = 3 * time.Second

// Form binds the overlay settings record to a fixed set of controls
// and persists each edit back through the store as it happens. It
// never holds a durable copy of the record: after the initial paint
// the controls themselves are the live state.
type Form struct {
	store bridge.Store

	visualizer *ModeSelect
	zones      []*Zone
	sizes      []*SizeButton
	density    *Slider
	opacity    *Slider
	radios     []*Radio

	densityLabel string
	opacityLabel string

	area Rect

	loaded chan schema.Settings
	writes sync.WaitGroup
}

// NewForm creates the control set and paints it with defaults. The
// real record replaces the defaults once the async fetch started by
// Init arrives; until then the controls are interactive and show the
// default state, mirroring a form rendered before its data loads.
func NewForm(store bridge.Store) *Form {
	f := &Form{
		store: store,
		visualizer: &ModeSelect{
			Modes: schema.VisualizerModes,
		},
		density: &Slider{Min: schema.MinBarCount, Max: schema.MaxBarCount},
		opacity: &Slider{Min: 0, Max: 100},
		loaded:  make(chan schema.Settings, 1),
	}

	for _, p := range schema.Positions {
		f.zones = append(f.zones, &Zone{Position: p})
	}
	for _, h := range schema.PanelHeights {
		f.sizes = append(f.sizes, &SizeButton{Size: h})
	}
	for _, c := range schema.ColorSchemes {
		f.radios = append(f.radios, &Radio{Scheme: c})
	}

	f.ApplySettings(schema.Default())
	return f
}

// Init fetches the persisted record in the background. The result is
// delivered to the UI thread through Poll; a fetch failure is logged
// and the form simply keeps its default paint.
func (f *Form) Init(ctx context.Context) {
	go func() {
		s, err := f.store.GetSettings(ctx)
		if err != nil {
			log.Printf("settings fetch failed: %v", err)
			return
		}
		f.loaded <- s
	}()
}

// Poll applies a fetched record if one has arrived. Called once per
// frame from the UI loop.
func (f *Form) Poll() {
	select {
	case s := <-f.loaded:
		f.ApplySettings(s)
	default:
	}
}

// ApplySettings projects a settings record onto every control. It is
// deterministic and idempotent; painting the same record twice leaves
// the controls unchanged. AudioDeviceID and ShowPeaks have no control
// in this form and are not painted.
func (f *Form) ApplySettings(s schema.Settings) {
	f.visualizer.Value = s.VisualizerMode

	for _, z := range f.zones {
		z.Active = z.Position == s.Position
	}
	for _, b := range f.sizes {
		b.Active = b.Size == s.Height
	}

	f.density.Value = s.BarCount
	f.densityLabel = strconv.Itoa(s.BarCount)

	f.opacity.Value = opacityPercent(s.Opacity)
	f.opacityLabel = fmt.Sprintf("%d%%", f.opacity.Value)

	for _, r := range f.radios {
		r.Checked = r.Scheme == s.ColorScheme
	}
}

// opacityPercent converts the stored unit fraction to the displayed
// whole percent. Inverted exactly on write-back by dividing by 100.
func opacityPercent(opacity float64) int {
	return int(opacity*100 + 0.5)
}

// MouseDown dispatches a press to the control under the pointer.
func (f *Form) MouseDown(x, y int32) {
	if f.visualizer.Rect.Contains(x, y) {
		f.visualizer.Advance()
		f.persist(schema.VisualizerModeUpdate{Mode: f.visualizer.Value})
		return
	}

	for _, z := range f.zones {
		if z.Rect.Contains(x, y) {
			f.activateZone(z)
			f.persist(schema.PositionUpdate{Position: z.Position})
			return
		}
	}

	for _, b := range f.sizes {
		if b.Rect.Contains(x, y) {
			f.activateSize(b)
			f.persist(schema.HeightUpdate{Height: b.Size})
			return
		}
	}

	if f.density.Rect.Contains(x, y) {
		f.density.Dragging = true
		f.dragDensity(x)
		return
	}
	if f.opacity.Rect.Contains(x, y) {
		f.opacity.Dragging = true
		f.dragOpacity(x)
		return
	}

	for _, r := range f.radios {
		if r.Rect.Contains(x, y) {
			f.checkRadio(r)
			if r.Checked {
				f.persist(schema.ColorSchemeUpdate{Scheme: r.Scheme})
			}
			return
		}
	}
}

// MouseMove updates whichever slider is being dragged. Only the value
// and its label change; nothing is persisted until release.
func (f *Form) MouseMove(x, y int32) {
	if f.density.Dragging {
		f.dragDensity(x)
	}
	if f.opacity.Dragging {
		f.dragOpacity(x)
	}
}

// MouseUp ends a slider drag and persists the released value.
func (f *Form) MouseUp(x, y int32) {
	if f.density.Dragging {
		f.density.Dragging = false
		f.persist(schema.BarCountUpdate{BarCount: f.density.Value})
	}
	if f.opacity.Dragging {
		f.opacity.Dragging = false
		f.persist(schema.OpacityUpdate{Opacity: float64(f.opacity.Value) / 100})
	}
}

func (f *Form) dragDensity(x int32) {
	f.density.Value = f.density.ValueAt(x)
	f.densityLabel = strconv.Itoa(f.density.Value)
}

func (f *Form) dragOpacity(x int32) {
	f.opacity.Value = f.opacity.ValueAt(x)
	f.opacityLabel = fmt.Sprintf("%d%%", f.opacity.Value)
}

func (f *Form) activateZone(target *Zone) {
	for _, z := range f.zones {
		z.Active = z == target
	}
}

func (f *Form) activateSize(target *SizeButton) {
	for _, b := range f.sizes {
		b.Active = b == target
	}
}

func (f *Form) checkRadio(target *Radio) {
	for _, r := range f.radios {
		r.Checked = r == target
	}
}

// persist issues a best-effort background write. The success flag is
// deliberately discarded; a transport error is logged here and nowhere
// surfaced to the user.
func (f *Form) persist(update schema.FieldUpdate) {
	f.writes.Add(1)
	go func() {
		defer f.writes.Done()

		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		defer cancel()

		if _, err := f.store.SetSetting(ctx, update); err != nil {
			log.Printf("settings write failed (%s): %v", update.Key(), err)
		}
	}()
}

// Flush waits for in-flight writes. Called on shutdown so a write
// issued just before closing the window still reaches the daemon.
func (f *Form) Flush() {
	f.writes.Wait()
}

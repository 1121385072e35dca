package settingsd

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"wavebar/pkg/bridge"
	"wavebar/pkg/schema"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	store := Open(filepath.Join(t.TempDir(), "settings.json"))
	devices := []bridge.AudioDevice{
		{ID: "hw:0,0", Name: "Built-in Audio"},
		{ID: "hw:1,0", Name: "USB Interface"},
	}
	return NewServer(store, devices, nil)
}

func rawFrame(t *testing.T, channel string, data any) frame {
	t.Helper()
	req := frame{Channel: channel}
	if data != nil {
		raw, err := json.Marshal(data)
		if err != nil {
			t.Fatal(err)
		}
		req.Data = raw
	}
	return req
}

func TestDispatchGetSettings(t *testing.T) {
	srv := testServer(t)

	resp := srv.dispatch(rawFrame(t, schema.ChannelGetSettings, nil))
	if resp.Status != "ok" {
		t.Fatalf("status = %q (%s)", resp.Status, resp.Error)
	}
	if got := resp.Data.(schema.Settings); got != schema.Default() {
		t.Errorf("settings = %+v, want defaults", got)
	}
}

func TestDispatchSetSetting(t *testing.T) {
	srv := testServer(t)

	resp := srv.dispatch(rawFrame(t, schema.ChannelSetSettings, setPayload{
		Key:   schema.KeyColorScheme,
		Value: "aurora",
	}))
	if resp.Status != "ok" {
		t.Fatalf("status = %q (%s)", resp.Status, resp.Error)
	}
	if ok := resp.Data.(bool); !ok {
		t.Error("write should report success")
	}
	if got := srv.store.Settings().ColorScheme; got != schema.SchemeAurora {
		t.Errorf("colorScheme = %q, want aurora", got)
	}
}

func TestDispatchSetSettingRejectsUnknownField(t *testing.T) {
	srv := testServer(t)

	resp := srv.dispatch(rawFrame(t, schema.ChannelSetSettings, setPayload{
		Key:   "volume",
		Value: 0.5,
	}))
	if resp.Status != "error" {
		t.Errorf("unknown field should be a protocol error, got status %q", resp.Status)
	}
}

func TestDispatchSetSettingRejectsMistypedValue(t *testing.T) {
	srv := testServer(t)

	resp := srv.dispatch(rawFrame(t, schema.ChannelSetSettings, setPayload{
		Key:   schema.KeyOpacity,
		Value: "very",
	}))
	if resp.Status != "error" {
		t.Errorf("mistyped value should be a protocol error, got status %q", resp.Status)
	}
}

func TestDispatchAudioDevices(t *testing.T) {
	srv := testServer(t)

	resp := srv.dispatch(rawFrame(t, schema.ChannelGetAudioDevices, nil))
	if resp.Status != "ok" {
		t.Fatalf("status = %q (%s)", resp.Status, resp.Error)
	}
	devices := resp.Data.([]bridge.AudioDevice)
	if len(devices) != 2 {
		t.Errorf("got %d devices, want 2", len(devices))
	}
}

func TestDispatchToggleVisualizer(t *testing.T) {
	srv := testServer(t)

	if !srv.Visible() {
		t.Fatal("overlay should start visible")
	}
	resp := srv.dispatch(rawFrame(t, schema.ChannelToggleVisualizer, nil))
	if resp.Status != "ok" {
		t.Fatalf("status = %q (%s)", resp.Status, resp.Error)
	}
	if srv.Visible() {
		t.Error("toggle should hide the overlay")
	}
	srv.dispatch(rawFrame(t, schema.ChannelToggleVisualizer, nil))
	if !srv.Visible() {
		t.Error("second toggle should show the overlay again")
	}
}

func TestDispatchTypedChannels(t *testing.T) {
	srv := testServer(t)

	cases := []struct {
		channel string
		value   any
		check   func(schema.Settings) bool
	}{
		{schema.ChannelSetPosition, "right", func(s schema.Settings) bool { return s.Position == schema.PositionRight }},
		{schema.ChannelSetOpacity, 0.3, func(s schema.Settings) bool { return s.Opacity == 0.3 }},
		{schema.ChannelSetVisualizerMode, "waveform", func(s schema.Settings) bool { return s.VisualizerMode == schema.ModeWaveform }},
	}

	for _, tc := range cases {
		resp := srv.dispatch(rawFrame(t, tc.channel, tc.value))
		if resp.Status != "ok" {
			t.Errorf("%s: status = %q (%s)", tc.channel, resp.Status, resp.Error)
			continue
		}
		if !tc.check(srv.store.Settings()) {
			t.Errorf("%s: value not applied, record %+v", tc.channel, srv.store.Settings())
		}
	}
}

func TestDispatchUnknownChannel(t *testing.T) {
	srv := testServer(t)

	resp := srv.dispatch(rawFrame(t, "reboot", nil))
	if resp.Status != "error" {
		t.Errorf("unknown channel should error, got status %q", resp.Status)
	}
}

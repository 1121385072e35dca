package settingsd

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"wavebar/pkg/bridge"
	"wavebar/pkg/schema"
)

// Wire envelope shared with the panel's bridge client: one request
// frame in, one reply frame out.
type frame struct {
	Channel string          `json:"channel"`
	Data    json.RawMessage `json:"data,omitempty"`
}

type reply struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
	Data   any    `json:"data,omitempty"`
}

type setPayload struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
}

// Server exposes the settings channels over a websocket endpoint.
type Server struct {
	store   *Store
	devices []bridge.AudioDevice
	logger  *slog.Logger

	mu        sync.Mutex
	server    *http.Server
	isRunning bool
	visible   bool

	upgrader websocket.Upgrader
}

// NewServer creates a server around the given store. devices is the
// static capture-device list served on get-audio-devices; real device
// discovery belongs to the audio engine.
func NewServer(store *Store, devices []bridge.AudioDevice, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		store:   store,
		devices: devices,
		logger:  logger,
		visible: true,
	}
}

// Handler returns the HTTP handler serving the websocket endpoint.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleWS)
	return mux
}

// Start begins listening on addr.
func (s *Server) Start(addr string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return fmt.Errorf("settings server already running")
	}

	s.server = &http.Server{
		Addr:        addr,
		Handler:     s.Handler(),
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 60 * time.Second,
	}
	s.isRunning = true

	go func() {
		s.logger.Info("settings server listening", "addr", addr)
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Error("settings server stopped", "error", err)
			s.mu.Lock()
			s.isRunning = false
			s.mu.Unlock()
		}
	}()

	return nil
}

// Stop gracefully shuts the server down.
func (s *Server) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return nil
	}
	s.isRunning = false

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Visible reports whether the overlay is currently shown. Toggled over
// the toggle-visualizer channel; the render loop polls this.
func (s *Server) Visible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.visible
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	s.logger.Debug("panel connected", "remote", conn.RemoteAddr())

	for {
		var req frame
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Warn("panel connection error", "error", err)
			}
			return
		}

		resp := s.dispatch(req)
		if err := conn.WriteJSON(resp); err != nil {
			s.logger.Warn("reply failed", "channel", req.Channel, "error", err)
			return
		}
	}
}

func (s *Server) dispatch(req frame) reply {
	switch req.Channel {
	case schema.ChannelGetSettings:
		return okReply(s.store.Settings())

	case schema.ChannelSetSettings:
		return s.handleSetSetting(req.Data)

	case schema.ChannelGetAudioDevices:
		devices := s.devices
		if devices == nil {
			devices = []bridge.AudioDevice{}
		}
		return okReply(devices)

	case schema.ChannelToggleVisualizer:
		s.mu.Lock()
		s.visible = !s.visible
		visible := s.visible
		s.mu.Unlock()
		s.logger.Info("visualizer toggled", "visible", visible)
		return okReply(visible)

	case schema.ChannelSetPosition:
		return s.handleTypedSet(schema.KeyPosition, req.Data)

	case schema.ChannelSetOpacity:
		return s.handleTypedSet(schema.KeyOpacity, req.Data)

	case schema.ChannelSetVisualizerMode:
		return s.handleTypedSet(schema.KeyVisualizerMode, req.Data)
	}

	return errReply(fmt.Sprintf("unknown channel: %q", req.Channel))
}

// handleSetSetting services the panel's per-field writes. An unknown
// field or mistyped value is a protocol error; a disk failure is
// reported as an unsuccessful-but-valid write.
func (s *Server) handleSetSetting(data json.RawMessage) reply {
	var payload setPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return errReply(fmt.Sprintf("decode set-settings payload: %v", err))
	}

	update, err := schema.UpdateForKey(payload.Key, payload.Value)
	if err != nil {
		return errReply(err.Error())
	}

	if _, err := s.store.Apply(update); err != nil {
		s.logger.Error("write failed", "field", payload.Key, "error", err)
		return okReply(false)
	}

	s.logger.Debug("setting updated", "field", payload.Key, "value", payload.Value)
	return okReply(true)
}

// handleTypedSet services the single-purpose channels that carry a bare
// value instead of a key/value pair.
func (s *Server) handleTypedSet(key string, data json.RawMessage) reply {
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return errReply(fmt.Sprintf("decode %s value: %v", key, err))
	}

	update, err := schema.UpdateForKey(key, value)
	if err != nil {
		return errReply(err.Error())
	}

	if _, err := s.store.Apply(update); err != nil {
		s.logger.Error("write failed", "field", key, "error", err)
		return okReply(false)
	}
	return okReply(true)
}

func okReply(data any) reply {
	return reply{Status: "ok", Data: data}
}

func errReply(msg string) reply {
	return reply{Status: "error", Error: msg}
}

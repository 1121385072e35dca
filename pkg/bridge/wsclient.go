package bridge

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"wavebar/pkg/schema"
)

// Wire envelope: every request names a channel and carries an optional
// JSON payload; every reply echoes a status plus an optional payload.
type frame struct {
	Channel string          `json:"channel"`
	Data    json.RawMessage `json:"data,omitempty"`
}

type reply struct {
	Status string          `json:"status"`          // "ok" or "error"
	Error  string          `json:"error,omitempty"` // set when status == "error"
	Data   json.RawMessage `json:"data,omitempty"`
}

type setPayload struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
}

// Client is a websocket Store implementation talking to the wavebar
// host daemon. Requests are serialized over a single connection; the
// daemon answers each frame with exactly one reply frame.
type Client struct {
	mu      sync.Mutex
	conn    *websocket.Conn
	wsURL   string
	timeout time.Duration
}

var _ Store = (*Client)(nil)

// NewClient creates a client for the given ws:// URL. timeout bounds
// each round trip unless the caller's context is stricter.
func NewClient(wsURL string, timeout time.Duration) *Client {
	return &Client{wsURL: wsURL, timeout: timeout}
}

// Connect establishes the websocket connection, replacing any existing
// one.
func (c *Client) Connect() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn != nil {
		c.conn.Close()
		c.conn = nil
	}

	u, err := url.Parse(c.wsURL)
	if err != nil {
		return fmt.Errorf("invalid ws url: %w", err)
	}

	d := websocket.Dialer{
		HandshakeTimeout: 2 * time.Second,
	}

	conn, _, err := d.Dial(u.String(), nil)
	if err != nil {
		return err
	}

	c.conn = conn
	return nil
}

// ConnectWithRetry keeps dialing until the daemon answers or the
// context is cancelled.
func (c *Client) ConnectWithRetry(ctx context.Context) error {
	for {
		err := c.Connect()
		if err == nil {
			return nil
		}
		log.Printf("bridge: connect failed: %v; retrying...", err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(500 * time.Millisecond):
		}
	}
}

// Close tears down the websocket connection.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn != nil {
		c.conn.Close()
		c.conn = nil
	}
}

// GetSettings implements Store.
func (c *Client) GetSettings(ctx context.Context) (schema.Settings, error) {
	data, err := c.roundTrip(ctx, schema.ChannelGetSettings, nil)
	if err != nil {
		return schema.Settings{}, err
	}

	var s schema.Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return schema.Settings{}, fmt.Errorf("decode settings: %w", err)
	}
	s.Normalize()
	return s, nil
}

// SetSetting implements Store.
func (c *Client) SetSetting(ctx context.Context, update schema.FieldUpdate) (bool, error) {
	data, err := c.roundTrip(ctx, schema.ChannelSetSettings, setPayload{
		Key:   update.Key(),
		Value: update.Value(),
	})
	if err != nil {
		return false, err
	}

	var ok bool
	if err := json.Unmarshal(data, &ok); err != nil {
		return false, fmt.Errorf("decode write result: %w", err)
	}
	return ok, nil
}

// AudioDevices lists the capture devices the host knows about.
func (c *Client) AudioDevices(ctx context.Context) ([]AudioDevice, error) {
	data, err := c.roundTrip(ctx, schema.ChannelGetAudioDevices, nil)
	if err != nil {
		return nil, err
	}

	var devices []AudioDevice
	if err := json.Unmarshal(data, &devices); err != nil {
		return nil, fmt.Errorf("decode device list: %w", err)
	}
	return devices, nil
}

// ToggleVisualizer asks the host to show or hide the overlay. Declared
// for the tray/hotkey components that share this client.
func (c *Client) ToggleVisualizer(ctx context.Context) error {
	_, err := c.roundTrip(ctx, schema.ChannelToggleVisualizer, nil)
	return err
}

// roundTrip sends one frame and reads one reply. The connection is
// locked for the whole exchange so replies cannot be attributed to the
// wrong request.
func (c *Client) roundTrip(ctx context.Context, channel string, payload any) (json.RawMessage, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return nil, fmt.Errorf("no websocket connection")
	}

	deadline := time.Now().Add(c.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	req := frame{Channel: channel}
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode %s payload: %w", channel, err)
		}
		req.Data = data
	}

	c.conn.SetWriteDeadline(deadline)
	if err := c.conn.WriteJSON(req); err != nil {
		return nil, fmt.Errorf("send %s: %w", channel, err)
	}

	c.conn.SetReadDeadline(deadline)
	defer c.conn.SetReadDeadline(time.Time{})

	var resp reply
	if err := c.conn.ReadJSON(&resp); err != nil {
		return nil, fmt.Errorf("read %s reply: %w", channel, err)
	}

	if resp.Status != "ok" {
		return nil, fmt.Errorf("daemon error on %s: %s", channel, resp.Error)
	}
	return resp.Data, nil
}

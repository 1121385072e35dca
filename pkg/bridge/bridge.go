// Package bridge carries settings traffic between the panel and the
// wavebar host daemon. The panel never talks to the daemon directly;
// it receives a Store and treats every call as best-effort.
package bridge

import (
	"context"

	"wavebar/pkg/schema"
)

// Store is the capability the settings panel needs from the host
// process: read the full record once, then persist one field at a time.
// Implementations must be safe for use from multiple goroutines.
type Store interface {
	// GetSettings returns the current persisted settings record.
	GetSettings(ctx context.Context) (schema.Settings, error)

	// SetSetting persists a single field change and reports whether the
	// host accepted the write. The panel discards the boolean; it is
	// part of the contract for callers that do care.
	SetSetting(ctx context.Context, update schema.FieldUpdate) (bool, error)
}

// AudioDevice describes one capture device offered by the host.
type AudioDevice struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

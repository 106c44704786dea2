// SPDX-License-Identifier: Apache-2.0
package settings

import (
	"context"
	"fmt"
)

// Keys persisted by the wizard
const (
	// KeyWelcomeStep holds the step the administrator is currently on
	KeyWelcomeStep = "welcome-step"

	// KeyExecuted holds the unix time the welcome message was last shown
	KeyExecuted = "executed"
)

// Backend names accepted by Open
const (
	BackendFile  = "file"
	BackendRedis = "redis"
)

// Reader is the read side of the panel settings store
type Reader interface {
	// GetInt returns the value stored under key, or def when the key is unset.
	// Values that are set but not numeric read as 0.
	GetInt(key string, def int) int
}

// Store is a Reader that can also persist values
type Store interface {
	Reader
	Set(key string, value any) error
	Close() error
}

// Options selects and configures a settings backend
type Options struct {
	Backend  string
	Path     string // settings file for the file backend
	RedisURL string // connection URL for the redis backend
}

// Open returns the store for the configured backend
func Open(ctx context.Context, opts Options) (Store, error) {
	switch opts.Backend {
	case "", BackendFile:
		return NewFileStore(opts.Path)
	case BackendRedis:
		return NewRedisStore(ctx, opts.RedisURL)
	default:
		return nil, fmt.Errorf("unknown settings backend: %s", opts.Backend)
	}
}

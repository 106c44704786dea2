// SPDX-License-Identifier: Apache-2.0

// Package welcome implements the decisions behind the panel's onboarding
// wizard: where to send the administrator back to, which sibling extensions
// to offer and install, which wizard step comes next and whether the
// welcome message may be shown again.
package welcome

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Work-Fort/Welcome/pkg/apirpc"
	"github.com/Work-Fort/Welcome/pkg/platform"
	"github.com/Work-Fort/Welcome/pkg/settings"
)

// RPC is the panel API-RPC service. An empty protocolVersion selects the
// service's default version.
type RPC interface {
	Call(ctx context.Context, protocolVersion, request string) (*apirpc.Response, error)
}

// Options holds the collaborators a Helper works against
type Options struct {
	Settings settings.Reader
	RPC      RPC
	OS       platform.Detector

	// RPCError is why RPC could not be built. It is reported by operations
	// that need the panel API when RPC is nil.
	RPCError error

	// PluginDir is this extension's plib directory. Sibling extensions are
	// looked up next to it.
	PluginDir string

	// Now defaults to time.Now
	Now func() time.Time
}

// Helper answers the wizard's questions. It keeps no state of its own;
// everything persistent lives in the settings store.
type Helper struct {
	settings  settings.Reader
	rpc       RPC
	rpcErr    error
	os        platform.Detector
	pluginDir string
	now       func() time.Time
}

// New creates a Helper. A nil OS detects the host, a nil Settings reads
// every key as unset.
func New(opts Options) *Helper {
	h := &Helper{
		settings:  opts.Settings,
		rpc:       opts.RPC,
		rpcErr:    opts.RPCError,
		os:        opts.OS,
		pluginDir: opts.PluginDir,
		now:       opts.Now,
	}

	if h.settings == nil {
		h.settings = unsetSettings{}
	}
	if h.os == nil {
		h.os = platform.Host{}
	}
	if h.now == nil {
		h.now = time.Now
	}

	return h
}

// IsWindows reports the OS variant the helper resolves tables for
func (h *Helper) IsWindows() bool {
	return h.os.IsWindows()
}

// ErrNoRPC is returned by operations that need the panel API when none
// was configured
var ErrNoRPC = errors.New("panel API is not configured")

// panelAPI returns the RPC service or the reason there is none
func (h *Helper) panelAPI() (RPC, error) {
	if h.rpc != nil {
		return h.rpc, nil
	}
	if h.rpcErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoRPC, h.rpcErr)
	}
	return nil, ErrNoRPC
}

type unsetSettings struct{}

func (unsetSettings) GetInt(_ string, def int) int { return def }

// SPDX-License-Identifier: Apache-2.0
package cmdutil

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/term"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/Work-Fort/Welcome/pkg/apirpc"
	"github.com/Work-Fort/Welcome/pkg/config"
	"github.com/Work-Fort/Welcome/pkg/platform"
	"github.com/Work-Fort/Welcome/pkg/settings"
	"github.com/Work-Fort/Welcome/pkg/welcome"
)

// IsInteractive checks if stdin is connected to a terminal AND the user wants TUI mode
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && config.GetUseTUI()
}

// Session is a wizard helper wired to the configured panel and settings store
type Session struct {
	Helper   *welcome.Helper
	Settings settings.Store
	OS       platform.Detector

	// RPCError is why the panel API client could not be built, if it
	// could not
	RPCError error
}

// Close releases the settings store
func (s *Session) Close() error {
	return s.Settings.Close()
}

// OpenSession builds a Helper from config. The panel API client is only
// attached when it can be built. Otherwise operations that need it fail
// with welcome.ErrNoRPC wrapping the build error.
func OpenSession(ctx context.Context) (*Session, error) {
	detector, err := platform.FromSetting(config.GetPanelOS())
	if err != nil {
		return nil, err
	}

	store, err := OpenSettings(ctx)
	if err != nil {
		return nil, err
	}

	opts := welcome.Options{
		Settings:  store,
		OS:        detector,
		PluginDir: config.GetPlibDir(),
	}

	client, err := NewRPCClient()
	if err != nil {
		log.Debug("Panel API client unavailable", "err", err)
		opts.RPCError = err
	} else {
		opts.RPC = client
	}

	return &Session{
		Helper:   welcome.New(opts),
		Settings: store,
		OS:       detector,
		RPCError: opts.RPCError,
	}, nil
}

// OpenSettings opens the configured settings backend
func OpenSettings(ctx context.Context) (settings.Store, error) {
	store, err := settings.Open(ctx, settings.Options{
		Backend:  config.GetSettingsBackend(),
		Path:     config.GlobalPaths.SettingsFile,
		RedisURL: config.GetSettingsRedisURL(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open settings: %w", err)
	}
	return store, nil
}

// NewRPCClient creates a panel API client from config
func NewRPCClient() (*apirpc.Client, error) {
	return apirpc.NewClient(apirpc.Options{
		URL:         config.GetPanelURL(),
		APIKey:      config.GetPanelAPIKey(),
		Login:       config.GetPanelLogin(),
		Password:    config.GetPanelPassword(),
		Version:     config.GetPanelAPIVersion(),
		InsecureTLS: config.GetPanelInsecureTLS(),
		Timeout:     config.GetPanelTimeout(),
	})
}

// PrintResult writes v in the configured output format. text renders the
// human form and is used when the format is "text".
func PrintResult(v any, text func()) error {
	return WriteResult(os.Stdout, config.GetOutput(), v, text)
}

// WriteResult writes v to w as json or yaml, or calls text
func WriteResult(w io.Writer, format string, v any, text func()) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		text()
		return nil
	}
}

// DisplayName turns an extension or step ID into a title, e.g.
// "security-advisor" becomes "Security Advisor"
func DisplayName(id string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(id, "-", " "))
}

// SPDX-License-Identifier: Apache-2.0
package step

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Work-Fort/Welcome/cmd/cmdutil"
	"github.com/Work-Fort/Welcome/pkg/platform"
	"github.com/Work-Fort/Welcome/pkg/settings"
	"github.com/Work-Fort/Welcome/pkg/welcome"
)

func newTestSession(t *testing.T, windows bool) *cmdutil.Session {
	t.Helper()

	store, err := settings.NewFileStore(filepath.Join(t.TempDir(), "settings.yaml"))
	require.NoError(t, err)

	return &cmdutil.Session{
		Helper:   welcome.New(welcome.Options{Settings: store, OS: platform.Fixed(windows)}),
		Settings: store,
		OS:       platform.Fixed(windows),
	}
}

func TestSetStep(t *testing.T) {
	session := newTestSession(t, false)

	p, err := setStep(session, 2)
	require.NoError(t, err)

	assert.Equal(t, position{Number: 2, ID: "security-advisor"}, p)
	assert.Equal(t, 2, session.Settings.GetInt(settings.KeyWelcomeStep, 0))
}

func TestSetStep_RejectsStepMissingForOS(t *testing.T) {
	session := newTestSession(t, true)
	require.NoError(t, session.Settings.Set(settings.KeyWelcomeStep, 3))

	_, err := setStep(session, 2)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not part of the windows wizard")
	assert.Contains(t, err.Error(), "[1 3 4]")
	assert.Equal(t, 3, session.Settings.GetInt(settings.KeyWelcomeStep, 0))
}

func TestAdvance(t *testing.T) {
	tests := []struct {
		name    string
		windows bool
		stored  int
		want    position
	}{
		{name: "linux first to second", stored: 1, want: position{Number: 2, ID: "security-advisor"}},
		{name: "windows skips security advisor", windows: true, stored: 1, want: position{Number: 3, ID: "pagespeed-insights"}},
		{name: "last step is sticky", stored: 4, want: position{Number: 4, ID: welcome.RestartStep}},
		{name: "past the end stays on last", stored: 9, want: position{Number: 4, ID: welcome.RestartStep}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := newTestSession(t, tt.windows)
			require.NoError(t, session.Settings.Set(settings.KeyWelcomeStep, tt.stored))

			got, err := advance(session)
			require.NoError(t, err)

			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want.Number, session.Settings.GetInt(settings.KeyWelcomeStep, 0))
		})
	}
}

// SPDX-License-Identifier: Apache-2.0
package config

import (
	"strings"
	"testing"
)

func TestThemeMessages(t *testing.T) {
	theme := CurrentTheme

	tests := []struct {
		got  string
		want string
	}{
		{got: theme.SuccessMessage("Installed Wp Toolkit"), want: "✓ Installed Wp Toolkit"},
		{got: theme.InfoMessage("No domains yet"), want: "ℹ No domains yet"},
		{got: theme.WarningMessage("Could not reach the panel API"), want: "⚠ Could not reach the panel API"},
		{got: theme.ErrorMessage("install failed"), want: "✗ install failed"},
	}

	for _, tt := range tests {
		if !strings.Contains(tt.got, tt.want) {
			t.Errorf("message %q should contain %q", tt.got, tt.want)
		}
	}
}

func TestThemeRenderHeader(t *testing.T) {
	header := CurrentTheme.RenderHeader(60, "WIZARD", "welcome")
	if !strings.Contains(header, "WELCOME  ▸  WIZARD  ▸  [welcome]") {
		t.Errorf("header %q should name the section and context", header)
	}
}

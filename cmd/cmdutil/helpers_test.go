// SPDX-License-Identifier: Apache-2.0
package cmdutil

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Work-Fort/Welcome/pkg/welcome"
)

func TestWriteResult(t *testing.T) {
	result := welcome.InstallResult{Extension: "wp-toolkit", Installed: true}

	tests := []struct {
		format string
		want   string
	}{
		{format: "json", want: `"extension": "wp-toolkit"`},
		{format: "yaml", want: "extension: wp-toolkit"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			textCalled := false

			if err := WriteResult(&buf, tt.format, result, func() { textCalled = true }); err != nil {
				t.Fatalf("WriteResult failed: %v", err)
			}
			if textCalled {
				t.Error("text renderer should not run for machine output")
			}
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("output %q should contain %q", buf.String(), tt.want)
			}
		})
	}
}

func TestWriteResult_TextCallsRenderer(t *testing.T) {
	var buf bytes.Buffer
	textCalled := false

	if err := WriteResult(&buf, "text", nil, func() { textCalled = true }); err != nil {
		t.Fatalf("WriteResult failed: %v", err)
	}
	if !textCalled {
		t.Error("text renderer should run for text output")
	}
	if buf.Len() != 0 {
		t.Error("text output should not write to the buffer")
	}
}

func TestDisplayName(t *testing.T) {
	tests := map[string]string{
		"wp-toolkit":         "Wp Toolkit",
		"security-advisor":   "Security Advisor",
		"pagespeed-insights": "Pagespeed Insights",
		"restart":            "Restart",
	}

	for id, want := range tests {
		if got := DisplayName(id); got != want {
			t.Errorf("DisplayName(%q) = %q, want %q", id, got, want)
		}
	}
}

// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"strings"
	"testing"
)

func TestHelpMarkdown_ListsCommands(t *testing.T) {
	md := helpMarkdown(GetRootCommand())

	for _, name := range []string{"catalog", "install", "step", "status", "return-url", "serve", "wizard", "config", "version"} {
		if !strings.Contains(md, "**"+name+"**") {
			t.Errorf("root help should list %s", name)
		}
	}
}

func TestHelpMarkdown_IncludesExamples(t *testing.T) {
	installCmd, _, err := GetRootCommand().Find([]string{"install"})
	if err != nil {
		t.Fatalf("install command not found: %v", err)
	}

	md := helpMarkdown(installCmd)
	if !strings.Contains(md, "## Examples") {
		t.Error("install help should include examples")
	}
	if !strings.Contains(md, "## Usage") {
		t.Error("install help should include usage")
	}
}

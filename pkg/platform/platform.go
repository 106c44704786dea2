// SPDX-License-Identifier: Apache-2.0
package platform

import (
	"fmt"
	"runtime"
)

// Detector reports which operating system the panel is running on
type Detector interface {
	IsWindows() bool
}

// Host detects the OS of the machine the binary runs on
type Host struct{}

// IsWindows implements Detector
func (Host) IsWindows() bool {
	return runtime.GOOS == "windows"
}

// Fixed is a Detector with a forced answer, used when the panel OS is
// configured explicitly (e.g. when managing a remote panel)
type Fixed bool

// IsWindows implements Detector
func (f Fixed) IsWindows() bool {
	return bool(f)
}

// FromSetting returns a Detector for the panel.os config value
// Accepted values: auto, windows, linux
func FromSetting(value string) (Detector, error) {
	switch value {
	case "", "auto":
		return Host{}, nil
	case "windows":
		return Fixed(true), nil
	case "linux":
		return Fixed(false), nil
	default:
		return nil, fmt.Errorf("unsupported panel OS: %s", value)
	}
}

// Name returns a display name for the OS a detector reports
func Name(d Detector) string {
	if d.IsWindows() {
		return "windows"
	}
	return "linux"
}

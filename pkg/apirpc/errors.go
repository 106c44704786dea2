// SPDX-License-Identifier: Apache-2.0
package apirpc

import "fmt"

// ResultError is an operation the panel rejected
type ResultError struct {
	Status string
	Code   int
	Text   string
}

// Error returns the panel's error text verbatim
func (e *ResultError) Error() string {
	if e.Text != "" {
		return e.Text
	}
	return fmt.Sprintf("operation failed (status %q, code %d)", e.Status, e.Code)
}

// SystemError is a packet the panel rejected as a whole (bad credentials,
// malformed packet, unsupported version)
type SystemError struct {
	Code int
	Text string
}

func (e *SystemError) Error() string {
	return fmt.Sprintf("panel API error %d: %s", e.Code, e.Text)
}

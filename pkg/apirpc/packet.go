// SPDX-License-Identifier: Apache-2.0
package apirpc

import (
	"encoding/xml"
	"fmt"
)

// StatusOK is the status the panel reports for a successful operation
const StatusOK = "ok"

// Response is a decoded-on-demand API response packet
type Response struct {
	Version string
	Raw     []byte
}

// Decode unmarshals the response packet into v. v should describe the
// packet from its root element.
func (r *Response) Decode(v any) error {
	if err := xml.Unmarshal(r.Raw, v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// Result is the status block every operation answers with
type Result struct {
	Status  string `xml:"status"`
	ErrCode int    `xml:"errcode"`
	ErrText string `xml:"errtext"`
}

// OK reports whether the operation succeeded
func (r Result) OK() bool {
	return r.Status == StatusOK
}

// Err returns a *ResultError for a failed result, nil otherwise
func (r Result) Err() error {
	if r.OK() {
		return nil
	}
	return &ResultError{Status: r.Status, Code: r.ErrCode, Text: r.ErrText}
}

type packetEnvelope struct {
	XMLName xml.Name `xml:"packet"`
	Version string   `xml:"version,attr"`
	System  *Result  `xml:"system"`
}

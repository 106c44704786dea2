// SPDX-License-Identifier: Apache-2.0
package welcome

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

const statRequest = "<server><get><stat/></get></server>"

type statObjects struct {
	Domains *string `xml:"domains"`
}

// HasActiveDomains asks the panel for its object statistics and reports
// whether the domain count is anything other than zero. A response without
// an objects block counts as zero; a count that is present but not a
// number counts as non-zero.
func (h *Helper) HasActiveDomains(ctx context.Context) (bool, error) {
	rpc, err := h.panelAPI()
	if err != nil {
		return false, err
	}

	resp, err := rpc.Call(ctx, "", statRequest)
	if err != nil {
		return false, err
	}

	objects, err := firstObjects(resp.Raw)
	if err != nil {
		return false, err
	}
	if objects == nil || objects.Domains == nil {
		log.Debugf("welcome: stat response has no domain count")
		return false, nil
	}

	// numeric zero in any spelling ("0", "+0", "0.0") means no domains
	count, err := strconv.ParseFloat(strings.TrimSpace(*objects.Domains), 64)
	if err != nil {
		log.Debugf("welcome: unreadable domain count %q", *objects.Domains)
		return true, nil
	}

	return count != 0, nil
}

// firstObjects returns the first <objects> element anywhere in the packet
func firstObjects(raw []byte) (*statObjects, error) {
	dec := xml.NewDecoder(bytes.NewReader(raw))
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to decode stat response: %w", err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "objects" {
			continue
		}

		var objects statObjects
		if err := dec.DecodeElement(&objects, &start); err != nil {
			return nil, fmt.Errorf("failed to decode stat objects: %w", err)
		}
		return &objects, nil
	}
}

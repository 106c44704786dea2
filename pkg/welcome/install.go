// SPDX-License-Identifier: Apache-2.0
package welcome

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/Work-Fort/Welcome/pkg/apirpc"
)

// InstallProtocolVersion is the packet version install requests are sent
// with
const InstallProtocolVersion = "1.6.7.0"

// InstallResult is the outcome of InstallExtension. Failures are reported
// in Message rather than as an error.
type InstallResult struct {
	Extension string `json:"extension" yaml:"extension"`
	CatalogID string `json:"catalog_id,omitempty" yaml:"catalog_id,omitempty"`
	URL       string `json:"url,omitempty" yaml:"url,omitempty"`
	Installed bool   `json:"installed" yaml:"installed"`
	Skipped   bool   `json:"skipped" yaml:"skipped"`
	Message   string `json:"message,omitempty" yaml:"message,omitempty"`
}

// OK reports success. Extensions missing from the catalog are skipped and
// count as success.
func (r InstallResult) OK() bool {
	return r.Message == ""
}

// InstallExtension asks the panel to install a catalog extension. Unknown
// names are skipped without contacting the panel. Any failure, from the
// transport or from the panel, ends up in the result's Message.
func (h *Helper) InstallExtension(ctx context.Context, name string) InstallResult {
	result := InstallResult{Extension: name}

	id, ok := CatalogID(name)
	if !ok {
		log.Debugf("welcome: %s is not in the catalog, skipping install", name)
		result.Skipped = true
		return result
	}

	result.CatalogID = id
	result.URL, _ = PackageURL(name)

	if err := h.installViaAPI(ctx, result.URL); err != nil {
		log.Debugf("welcome: install of %s failed: %v", name, err)
		result.Message = err.Error()
		return result
	}

	log.Debugf("welcome: installed %s from %s", name, result.URL)
	result.Installed = true
	return result
}

type installModuleResponse struct {
	XMLName xml.Name      `xml:"packet"`
	Result  apirpc.Result `xml:"server>install-module>result"`
}

// installViaAPI sends an install-module request for url. A rejected
// install is returned as *apirpc.ResultError carrying the panel's text.
func (h *Helper) installViaAPI(ctx context.Context, url string) error {
	rpc, err := h.panelAPI()
	if err != nil {
		return err
	}

	var escaped bytes.Buffer
	if err := xml.EscapeText(&escaped, []byte(url)); err != nil {
		return fmt.Errorf("failed to escape package URL: %w", err)
	}

	request := "<server><install-module><url>" + escaped.String() + "</url></install-module></server>"

	resp, err := rpc.Call(ctx, InstallProtocolVersion, request)
	if err != nil {
		return err
	}

	var decoded installModuleResponse
	if err := resp.Decode(&decoded); err != nil {
		return err
	}

	return decoded.Result.Err()
}

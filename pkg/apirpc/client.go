// SPDX-License-Identifier: Apache-2.0
package apirpc

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/go-version"
)

const (
	// AgentPath is the XML API endpoint on the panel
	AgentPath = "/enterprise/control/agent.php"

	// DefaultProtocolVersion is used when neither the caller nor the
	// configuration pins a packet version
	DefaultProtocolVersion = "1.6.9.1"

	// MinProtocolVersion is the oldest packet version the client speaks
	MinProtocolVersion = "1.6.3.0"

	defaultTimeout = 60 * time.Second
)

// Options configures a Client
type Options struct {
	// URL is the panel base URL, e.g. https://panel.example.com:8443
	URL string

	// APIKey is sent as the KEY header. Takes precedence over Login/Password.
	APIKey   string
	Login    string
	Password string

	// Version is the default packet version
	Version string

	// InsecureTLS skips certificate verification (self-signed panel certs)
	InsecureTLS bool

	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client calls the panel XML API-RPC
type Client struct {
	endpoint       string
	opts           Options
	defaultVersion string
	httpClient     *http.Client
}

// NewClient validates opts and creates a client
func NewClient(opts Options) (*Client, error) {
	if opts.URL == "" {
		return nil, fmt.Errorf("panel URL is not configured")
	}

	if opts.Version == "" {
		opts.Version = DefaultProtocolVersion
	}
	if _, err := checkVersion(opts.Version); err != nil {
		return nil, err
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout == 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
		if opts.InsecureTLS {
			httpClient.Transport = &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
			}
		}
	}

	return &Client{
		endpoint:       strings.TrimRight(opts.URL, "/") + AgentPath,
		opts:           opts,
		defaultVersion: opts.Version,
		httpClient:     httpClient,
	}, nil
}

// DefaultVersion returns the packet version used when Call is given none
func (c *Client) DefaultVersion() string {
	return c.defaultVersion
}

// Endpoint returns the full agent URL
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Call wraps request in a packet of the given protocol version, sends it
// and returns the raw response. An empty protocolVersion uses the client's
// default. Packet-level failures are returned as *SystemError; per-operation
// results are left to the caller.
func (c *Client) Call(ctx context.Context, protocolVersion, request string) (*Response, error) {
	if protocolVersion == "" {
		protocolVersion = c.defaultVersion
	}
	if _, err := checkVersion(protocolVersion); err != nil {
		return nil, err
	}

	body := fmt.Sprintf("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n<packet version=\"%s\">%s</packet>", protocolVersion, request)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewBufferString(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	c.authorize(req)

	log.Debugf("apirpc: POST %s version=%s", c.endpoint, protocolVersion)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call panel API: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("panel API returned %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var envelope packetEnvelope
	if err := xml.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode response packet: %w", err)
	}

	if envelope.System != nil && !envelope.System.OK() {
		return nil, &SystemError{Code: envelope.System.ErrCode, Text: envelope.System.ErrText}
	}

	return &Response{Version: envelope.Version, Raw: raw}, nil
}

// authorize sets the credential headers the agent expects
func (c *Client) authorize(req *http.Request) {
	req.Header.Set("Content-Type", "text/xml")
	req.Header.Set("HTTP_PRETTY_PRINT", "TRUE")

	if c.opts.APIKey != "" {
		req.Header.Set("KEY", c.opts.APIKey)
		return
	}
	if c.opts.Login != "" {
		req.Header.Set("HTTP_AUTH_LOGIN", c.opts.Login)
		req.Header.Set("HTTP_AUTH_PASSWD", c.opts.Password)
	}
}

// checkVersion parses a packet version and enforces MinProtocolVersion
func checkVersion(v string) (*version.Version, error) {
	parsed, err := version.NewVersion(v)
	if err != nil {
		return nil, fmt.Errorf("invalid API protocol version %q: %w", v, err)
	}

	minimum := version.Must(version.NewVersion(MinProtocolVersion))
	if parsed.LessThan(minimum) {
		return nil, fmt.Errorf("API protocol version %s is older than the supported minimum %s", v, MinProtocolVersion)
	}

	return parsed, nil
}

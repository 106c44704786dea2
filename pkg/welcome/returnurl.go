// SPDX-License-Identifier: Apache-2.0
package welcome

import (
	"net"
	"net/http"
	"strings"
)

// whitelistPages are the panel pages it is safe to send the administrator
// back to
var whitelistPages = []string{
	"/admin/",
	"/admin/home?context=home",
	"/smb/",
	"/smb/web/view",
}

// ServerVars are the request variables the return URL is built from
type ServerVars struct {
	RequestScheme string // REQUEST_SCHEME
	HTTPS         string // HTTPS
	HTTPHost      string // HTTP_HOST
	LocalAddr     string // LOCAL_ADDR (IIS)
	ServerAddr    string // SERVER_ADDR
	ServerPort    string // SERVER_PORT
}

// WhitelistPages returns the pages accepted as return targets
func WhitelistPages() []string {
	pages := make([]string, len(whitelistPages))
	copy(pages, whitelistPages)
	return pages
}

// ResolveReturnURL returns referrer when it points at a whitelisted page
// of this panel, and the panel origin otherwise.
func (h *Helper) ResolveReturnURL(vars ServerVars, referrer string) string {
	origin := h.Origin(vars)

	if referrer != "" {
		for _, page := range whitelistPages {
			if origin+page == referrer {
				return referrer
			}
		}
	}

	return origin
}

// Origin returns the HTML-escaped scheme://host of the panel
func (h *Helper) Origin(vars ServerVars) string {
	return escapeHTML(serverScheme(vars) + "://" + h.serverHost(vars))
}

// serverScheme prefers REQUEST_SCHEME. A set HTTPS flag that is not "on"
// yields http, everything else https.
func serverScheme(vars ServerVars) string {
	if vars.RequestScheme != "" {
		return vars.RequestScheme
	}

	if vars.HTTPS != "" && vars.HTTPS != "on" {
		return "http"
	}

	return "https"
}

func (h *Helper) serverHost(vars ServerVars) string {
	if vars.HTTPHost != "" {
		return vars.HTTPHost
	}

	if h.os.IsWindows() {
		return vars.LocalAddr + ":" + vars.ServerPort
	}

	return vars.ServerAddr + ":" + vars.ServerPort
}

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	`"`, "&quot;",
	"'", "&#039;",
	"<", "&lt;",
	">", "&gt;",
)

// escapeHTML escapes the five HTML special characters using the panel's
// entity spellings. Invalid UTF-8 becomes U+FFFD first.
func escapeHTML(s string) string {
	return htmlEscaper.Replace(strings.ToValidUTF8(s, "\uFFFD"))
}

// ServerVarsFromRequest derives ServerVars from an incoming request.
// X-Forwarded-Proto stands in for REQUEST_SCHEME so a proxy in front of the
// server decides the scheme.
func ServerVarsFromRequest(r *http.Request) ServerVars {
	vars := ServerVars{
		RequestScheme: r.Header.Get("X-Forwarded-Proto"),
		HTTPHost:      r.Host,
	}

	if r.TLS != nil {
		vars.HTTPS = "on"
	}

	if addr, ok := r.Context().Value(http.LocalAddrContextKey).(net.Addr); ok {
		if host, port, err := net.SplitHostPort(addr.String()); err == nil {
			vars.LocalAddr = host
			vars.ServerAddr = host
			vars.ServerPort = port
		}
	}

	return vars
}

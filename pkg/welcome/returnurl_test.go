// SPDX-License-Identifier: Apache-2.0
package welcome

import (
	"context"
	"crypto/tls"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/Work-Fort/Welcome/pkg/platform"
)

func TestResolveReturnURL(t *testing.T) {
	linux := New(Options{OS: platform.Fixed(false)})
	windows := New(Options{OS: platform.Fixed(true)})

	tests := []struct {
		name     string
		helper   *Helper
		vars     ServerVars
		referrer string
		want     string
	}{
		{
			name:     "whitelisted admin page is returned",
			helper:   linux,
			vars:     ServerVars{RequestScheme: "https", HTTPHost: "panel.example.com:8443"},
			referrer: "https://panel.example.com:8443/admin/",
			want:     "https://panel.example.com:8443/admin/",
		},
		{
			name:     "whitelisted page with query",
			helper:   linux,
			vars:     ServerVars{RequestScheme: "https", HTTPHost: "panel.example.com"},
			referrer: "https://panel.example.com/admin/home?context=home",
			want:     "https://panel.example.com/admin/home?context=home",
		},
		{
			name:     "smb web view",
			helper:   linux,
			vars:     ServerVars{RequestScheme: "https", HTTPHost: "panel.example.com"},
			referrer: "https://panel.example.com/smb/web/view",
			want:     "https://panel.example.com/smb/web/view",
		},
		{
			name:     "other page falls back to origin",
			helper:   linux,
			vars:     ServerVars{RequestScheme: "https", HTTPHost: "panel.example.com"},
			referrer: "https://panel.example.com/admin/server/tools",
			want:     "https://panel.example.com",
		},
		{
			name:     "foreign host falls back to origin",
			helper:   linux,
			vars:     ServerVars{RequestScheme: "https", HTTPHost: "panel.example.com"},
			referrer: "https://evil.example.net/admin/",
			want:     "https://panel.example.com",
		},
		{
			name:   "empty referrer",
			helper: linux,
			vars:   ServerVars{RequestScheme: "http", HTTPHost: "panel"},
			want:   "http://panel",
		},
		{
			name:   "HTTPS flag other than on yields http",
			helper: linux,
			vars:   ServerVars{HTTPS: "off", HTTPHost: "panel"},
			want:   "http://panel",
		},
		{
			name:   "HTTPS flag on yields https",
			helper: linux,
			vars:   ServerVars{HTTPS: "on", HTTPHost: "panel"},
			want:   "https://panel",
		},
		{
			name:   "no scheme information yields https",
			helper: linux,
			vars:   ServerVars{HTTPHost: "panel"},
			want:   "https://panel",
		},
		{
			name:   "linux without host header uses server address",
			helper: linux,
			vars:   ServerVars{ServerAddr: "10.0.0.5", LocalAddr: "10.0.0.9", ServerPort: "8443"},
			want:   "https://10.0.0.5:8443",
		},
		{
			name:   "windows without host header uses local address",
			helper: windows,
			vars:   ServerVars{ServerAddr: "10.0.0.5", LocalAddr: "10.0.0.9", ServerPort: "8443"},
			want:   "https://10.0.0.9:8443",
		},
		{
			name:   "nothing known",
			helper: linux,
			want:   "https://:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.helper.ResolveReturnURL(tt.vars, tt.referrer))
		})
	}
}

func TestResolveReturnURL_EscapesOrigin(t *testing.T) {
	h := New(Options{OS: platform.Fixed(false)})
	vars := ServerVars{RequestScheme: "https", HTTPHost: `panel"><script>&'`}

	want := "https://panel&quot;&gt;&lt;script&gt;&amp;&#039;"
	assert.Equal(t, want, h.ResolveReturnURL(vars, ""))

	// the unescaped referrer never matches the escaped origin
	raw := `https://panel"><script>&'/admin/`
	assert.Equal(t, want, h.ResolveReturnURL(vars, raw))

	// the escaped form does
	assert.Equal(t, want+"/admin/", h.ResolveReturnURL(vars, want+"/admin/"))
}

func TestResolveReturnURL_SubstitutesInvalidUTF8(t *testing.T) {
	h := New(Options{OS: platform.Fixed(false)})
	vars := ServerVars{RequestScheme: "https", HTTPHost: "panel\xff\xfe.example.com'"}

	got := h.ResolveReturnURL(vars, "")
	assert.Equal(t, "https://panel\uFFFD.example.com&#039;", got)
	assert.True(t, utf8.ValidString(got))
}

func TestWhitelistPages_ReturnsCopy(t *testing.T) {
	pages := WhitelistPages()
	assert.Len(t, pages, 4)
	pages[0] = "/mutated"
	assert.Equal(t, "/admin/", WhitelistPages()[0])
}

func TestServerVarsFromRequest(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/return", nil)
	r.Host = "panel.example.com:8443"
	r.Header.Set("X-Forwarded-Proto", "https")
	r.TLS = &tls.ConnectionState{}
	addr := &net.TCPAddr{IP: net.ParseIP("192.0.2.10"), Port: 8443}
	r = r.WithContext(context.WithValue(r.Context(), http.LocalAddrContextKey, addr))

	vars := ServerVarsFromRequest(r)
	assert.Equal(t, ServerVars{
		RequestScheme: "https",
		HTTPS:         "on",
		HTTPHost:      "panel.example.com:8443",
		LocalAddr:     "192.0.2.10",
		ServerAddr:    "192.0.2.10",
		ServerPort:    "8443",
	}, vars)
}

func TestServerVarsFromRequest_Plain(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/return", nil)
	r.Host = ""
	r.TLS = nil

	vars := ServerVarsFromRequest(r)
	assert.Empty(t, vars.HTTPS)
	assert.Empty(t, vars.RequestScheme)
	assert.Empty(t, vars.ServerPort)
}

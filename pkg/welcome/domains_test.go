// SPDX-License-Identifier: Apache-2.0
package welcome

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statReply(objects string) string {
	return `<packet version="1.6.9.1"><server><get><result><status>ok</status><stat>` +
		objects +
		`<version><plesk_name>Plesk</plesk_name></version></stat></result></get></server></packet>`
}

func TestHasActiveDomains(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  bool
	}{
		{name: "zero domains", reply: statReply("<objects><clients>1</clients><domains>0</domains></objects>"), want: false},
		{name: "one domain", reply: statReply("<objects><clients>1</clients><domains>1</domains></objects>"), want: true},
		{name: "many domains", reply: statReply("<objects><domains>42</domains></objects>"), want: true},
		{name: "padded zero", reply: statReply("<objects><domains> 0 </domains></objects>"), want: false},
		{name: "float zero", reply: statReply("<objects><domains>0.0</domains></objects>"), want: false},
		{name: "signed zero", reply: statReply("<objects><domains>+0</domains></objects>"), want: false},
		{name: "exponent zero", reply: statReply("<objects><domains>0e3</domains></objects>"), want: false},
		{name: "negative count", reply: statReply("<objects><domains>-1</domains></objects>"), want: true},
		{name: "non numeric count", reply: statReply("<objects><domains>n/a</domains></objects>"), want: true},
		{name: "no domains element", reply: statReply("<objects><clients>3</clients></objects>"), want: false},
		{name: "no objects block", reply: statReply(""), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rpc := &fakeRPC{reply: tt.reply}
			h := New(Options{RPC: rpc})

			got, err := h.HasActiveDomains(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			require.Len(t, rpc.calls, 1)
			assert.Equal(t, "", rpc.calls[0].version, "stat uses the default protocol version")
			assert.Equal(t, "<server><get><stat/></get></server>", rpc.calls[0].request)
		})
	}
}

func TestHasActiveDomains_Errors(t *testing.T) {
	h := New(Options{RPC: &fakeRPC{err: errors.New("timeout")}})
	_, err := h.HasActiveDomains(context.Background())
	assert.Error(t, err)

	h = New(Options{RPC: &fakeRPC{reply: "<packet><objects><domains>1"}})
	_, err = h.HasActiveDomains(context.Background())
	assert.Error(t, err)

	h = New(Options{})
	_, err = h.HasActiveDomains(context.Background())
	assert.ErrorIs(t, err, ErrNoRPC)
}

func TestHasActiveDomains_ReportsWhyRPCIsMissing(t *testing.T) {
	cause := errors.New("API protocol version 1.0 is older than the supported minimum 1.6.3.0")
	h := New(Options{RPCError: cause})

	_, err := h.HasActiveDomains(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoRPC)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "older than the supported minimum")
}

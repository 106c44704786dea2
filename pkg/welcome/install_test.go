// SPDX-License-Identifier: Apache-2.0
package welcome

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Work-Fort/Welcome/pkg/apirpc"
)

func TestInstallExtension_Success(t *testing.T) {
	rpc := &fakeRPC{reply: `<packet version="1.6.7.0"><server><install-module><result><status>ok</status></result></install-module></server></packet>`}
	h := New(Options{RPC: rpc})

	result := h.InstallExtension(context.Background(), "wp-toolkit")

	assert.True(t, result.OK())
	assert.True(t, result.Installed)
	assert.False(t, result.Skipped)
	assert.Equal(t, "00d002a7-3252-4996-8a08-aa1c89cf29f7", result.CatalogID)

	require.Len(t, rpc.calls, 1)
	assert.Equal(t, InstallProtocolVersion, rpc.calls[0].version)
	assert.Equal(t,
		"<server><install-module><url>https://ext.plesk.com/packages/00d002a7-3252-4996-8a08-aa1c89cf29f7-wp-toolkit/download</url></install-module></server>",
		rpc.calls[0].request)
}

func TestInstallExtension_UnknownSkipsRPC(t *testing.T) {
	rpc := &fakeRPC{}
	h := New(Options{RPC: rpc})

	result := h.InstallExtension(context.Background(), "not-in-catalog")

	assert.True(t, result.OK())
	assert.True(t, result.Skipped)
	assert.False(t, result.Installed)
	assert.Empty(t, rpc.calls)
}

func TestInstallExtension_PanelRejects(t *testing.T) {
	rpc := &fakeRPC{reply: `<packet><server><install-module><result><status>error</status><errcode>1023</errcode><errtext>Unable to install the extension: signature check failed</errtext></result></install-module></server></packet>`}
	h := New(Options{RPC: rpc})

	result := h.InstallExtension(context.Background(), "security-advisor")

	assert.False(t, result.OK())
	assert.False(t, result.Installed)
	assert.Equal(t, "Unable to install the extension: signature check failed", result.Message)
}

func TestInstallExtension_TransportFailure(t *testing.T) {
	rpc := &fakeRPC{err: errors.New("connection refused")}
	h := New(Options{RPC: rpc})

	result := h.InstallExtension(context.Background(), "panel-migrator")

	assert.False(t, result.OK())
	assert.Equal(t, "connection refused", result.Message)
}

func TestInstallExtension_NoRPCConfigured(t *testing.T) {
	h := New(Options{})

	result := h.InstallExtension(context.Background(), "wp-toolkit")
	assert.False(t, result.OK())
	assert.Equal(t, ErrNoRPC.Error(), result.Message)
}

func TestInstallExtension_ReportsWhyRPCIsMissing(t *testing.T) {
	h := New(Options{RPCError: errors.New("invalid API protocol version \"x\"")})

	result := h.InstallExtension(context.Background(), "wp-toolkit")
	assert.False(t, result.OK())
	assert.False(t, result.Installed)
	assert.Contains(t, result.Message, ErrNoRPC.Error())
	assert.Contains(t, result.Message, `invalid API protocol version "x"`)
}

func TestInstallViaAPI_ReturnsResultError(t *testing.T) {
	rpc := &fakeRPC{reply: `<packet><server><install-module><result><status>error</status><errtext>disk full</errtext></result></install-module></server></packet>`}
	h := New(Options{RPC: rpc})

	err := h.installViaAPI(context.Background(), "https://ext.plesk.com/packages/x/download")

	var resErr *apirpc.ResultError
	require.True(t, errors.As(err, &resErr))
	assert.Equal(t, "disk full", resErr.Text)
}

func TestInstallViaAPI_MalformedResponse(t *testing.T) {
	rpc := &fakeRPC{reply: `<packet><server>`}
	h := New(Options{RPC: rpc})

	assert.Error(t, h.installViaAPI(context.Background(), "u"))
}

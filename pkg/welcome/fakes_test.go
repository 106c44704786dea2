// SPDX-License-Identifier: Apache-2.0
package welcome

import (
	"context"

	"github.com/Work-Fort/Welcome/pkg/apirpc"
)

type fakeSettings map[string]int

func (f fakeSettings) GetInt(key string, def int) int {
	if v, ok := f[key]; ok {
		return v
	}
	return def
}

type rpcCall struct {
	version string
	request string
}

type fakeRPC struct {
	calls []rpcCall
	reply string
	err   error
}

func (f *fakeRPC) Call(_ context.Context, protocolVersion, request string) (*apirpc.Response, error) {
	f.calls = append(f.calls, rpcCall{version: protocolVersion, request: request})
	if f.err != nil {
		return nil, f.err
	}
	return &apirpc.Response{Raw: []byte(f.reply)}, nil
}

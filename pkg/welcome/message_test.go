// SPDX-License-Identifier: Apache-2.0
package welcome

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Work-Fort/Welcome/pkg/settings"
)

func TestShouldShowMessage(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	clock := func() time.Time { return now }

	tests := []struct {
		name     string
		executed *int
		want     bool
	}{
		{name: "never shown", want: true},
		{name: "stamped zero", executed: intp(0), want: true},
		{name: "one second ago", executed: intp(int(now.Unix()) - 1), want: false},
		{name: "just now", executed: intp(int(now.Unix())), want: false},
		{name: "exactly three seconds ago", executed: intp(int(now.Unix()) - 3), want: true},
		{name: "four seconds ago", executed: intp(int(now.Unix()) - 4), want: true},
		{name: "stamp in the future", executed: intp(int(now.Unix()) + 60), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := fakeSettings{}
			if tt.executed != nil {
				store[settings.KeyExecuted] = *tt.executed
			}
			h := New(Options{Settings: store, Now: clock})
			assert.Equal(t, tt.want, h.ShouldShowMessage())
		})
	}
}

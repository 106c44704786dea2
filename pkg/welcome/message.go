// SPDX-License-Identifier: Apache-2.0
package welcome

import (
	"time"

	"github.com/Work-Fort/Welcome/pkg/settings"
)

// MessageDebounce is how long the welcome message stays suppressed after
// it was shown
const MessageDebounce = 3 * time.Second

// ShouldShowMessage keeps view changes from stacking duplicate welcome
// messages: it is true when the message was never stamped as shown or the
// stamp is at least MessageDebounce old. Stamping is left to the caller.
func (h *Helper) ShouldShowMessage() bool {
	executed := h.settings.GetInt(settings.KeyExecuted, 0)
	if executed == 0 {
		return true
	}

	return h.now().Unix()-int64(executed) >= int64(MessageDebounce/time.Second)
}

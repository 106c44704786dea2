// SPDX-License-Identifier: Apache-2.0
package serve

import (
	"encoding/json"
	"net/http"

	"github.com/charmbracelet/log"

	"github.com/Work-Fort/Welcome/pkg/welcome"
)

// State is the body of GET /state
type State struct {
	CurrentStep int               `json:"current_step"`
	NextStep    int               `json:"next_step"`
	NextStepID  string            `json:"next_step_id"`
	Steps       welcome.StepTable `json:"steps"`
	ShowMessage bool              `json:"show_message"`
	Whitelist   []string          `json:"whitelist"`
}

// NewHandler serves the wizard endpoints for helper
func NewHandler(helper *welcome.Helper) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /return", func(w http.ResponseWriter, r *http.Request) {
		target := helper.ResolveReturnURL(welcome.ServerVarsFromRequest(r), r.Referer())
		log.Debug("Resolved return URL", "referrer", r.Referer(), "target", target)
		http.Redirect(w, r, target, http.StatusFound)
	})

	mux.HandleFunc("GET /state", func(w http.ResponseWriter, r *http.Request) {
		state := State{
			CurrentStep: helper.CurrentStep(),
			NextStep:    helper.NextStep(),
			NextStepID:  helper.NextStepID(),
			Steps:       helper.StepListForOS(),
			ShowMessage: helper.ShouldShowMessage(),
			Whitelist:   welcome.WhitelistPages(),
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(state); err != nil {
			log.Error("Failed to write state", "err", err)
		}
	})

	return mux
}

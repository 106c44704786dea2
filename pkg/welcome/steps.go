// SPDX-License-Identifier: Apache-2.0
package welcome

import (
	"github.com/Work-Fort/Welcome/pkg/settings"
)

// RestartStep is the identifier of the final wizard step
const RestartStep = "restart"

// Step is one wizard page
type Step struct {
	Number int    `json:"number" yaml:"number"`
	ID     string `json:"id" yaml:"id"`
}

// StepTable is the ordered list of wizard steps. Numbers ascend but may
// have gaps; the last step is always RestartStep.
type StepTable []Step

var (
	windowsSteps = StepTable{
		{Number: 1, ID: "wp-toolkit"},
		{Number: 3, ID: "pagespeed-insights"},
		{Number: 4, ID: RestartStep},
	}

	defaultSteps = StepTable{
		{Number: 1, ID: "wp-toolkit"},
		{Number: 2, ID: "security-advisor"},
		{Number: 3, ID: "pagespeed-insights"},
		{Number: 4, ID: RestartStep},
	}
)

// Lookup returns the identifier of step n
func (t StepTable) Lookup(n int) (string, bool) {
	for _, s := range t {
		if s.Number == n {
			return s.ID, true
		}
	}
	return "", false
}

// Last returns the final step
func (t StepTable) Last() Step {
	return t[len(t)-1]
}

// Numbers returns the step numbers in order
func (t StepTable) Numbers() []int {
	numbers := make([]int, len(t))
	for i, s := range t {
		numbers[i] = s.Number
	}
	return numbers
}

// StepListForOS returns the step table for the panel's OS. Windows panels
// have no security-advisor step.
func (h *Helper) StepListForOS() StepTable {
	src := defaultSteps
	if h.os.IsWindows() {
		src = windowsSteps
	}

	table := make(StepTable, len(src))
	copy(table, src)
	return table
}

// CurrentStep returns the stored wizard step, 1 when none is stored
func (h *Helper) CurrentStep() int {
	return h.settings.GetInt(settings.KeyWelcomeStep, 1)
}

// NextStep returns the step after the stored one. Numbers missing from the
// OS table snap forward to the next existing step; running past the end
// stays on the last step.
func (h *Helper) NextStep() int {
	next := h.CurrentStep() + 1
	table := h.StepListForOS()

	if _, ok := table.Lookup(next); ok {
		return next
	}

	for _, s := range table {
		if s.Number >= next {
			return s.Number
		}
	}

	return table.Last().Number
}

// NextStepID returns the identifier of NextStep
func (h *Helper) NextStepID() string {
	id, _ := h.StepListForOS().Lookup(h.NextStep())
	return id
}

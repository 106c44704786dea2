// SPDX-License-Identifier: Apache-2.0
package ui

import (
	"github.com/charmbracelet/huh"
)

// Confirm shows a yes/no confirmation dialog using huh
func Confirm(prompt string) (bool, error) {
	return ConfirmStep(prompt, "", "Yes", "No")
}

// ConfirmStep asks a single wizard question with custom answers.
// description may be empty.
func ConfirmStep(title, description, affirmative, negative string) (bool, error) {
	var confirmed bool

	field := huh.NewConfirm().
		Title(title).
		Affirmative(affirmative).
		Negative(negative).
		Value(&confirmed)
	if description != "" {
		field = field.Description(description)
	}

	if err := huh.NewForm(huh.NewGroup(field)).Run(); err != nil {
		return false, err
	}

	return confirmed, nil
}

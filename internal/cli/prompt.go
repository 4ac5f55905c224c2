package cli

import (
	"github.com/charmbracelet/huh"
)

// ConfirmFunc asks a yes/no question. Commands take one so tests can
// inject an answer instead of driving a terminal form.
type ConfirmFunc func(prompt string) (bool, error)

// NewConfirmFunc returns a ConfirmFunc backed by a huh confirm form.
func NewConfirmFunc() ConfirmFunc {
	return func(prompt string) (bool, error) {
		var result bool
		err := huh.NewConfirm().
			Title(prompt).
			Value(&result).
			Run()
		return result, err
	}
}

// AlwaysYes returns a ConfirmFunc that confirms without asking. Used for
// --yes and in tests.
func AlwaysYes() ConfirmFunc {
	return func(_ string) (bool, error) {
		return true, nil
	}
}

// PromptFunc asks for a free-text answer, such as the output file name.
type PromptFunc func(prompt string) (string, error)

// NewPromptFunc returns a PromptFunc backed by a huh input form.
func NewPromptFunc() PromptFunc {
	return func(prompt string) (string, error) {
		var result string
		err := huh.NewInput().
			Title(prompt).
			Value(&result).
			Run()
		return result, err
	}
}

// MultiSelectFunc asks the user to pick any number of options, returning
// their 0-based indices. The interactive defaults editor uses it for the
// excluded-weekday set.
type MultiSelectFunc func(title string, options []string) ([]int, error)

// NewMultiSelectFunc returns a MultiSelectFunc backed by a huh
// multi-select form.
func NewMultiSelectFunc() MultiSelectFunc {
	return func(title string, options []string) ([]int, error) {
		var result []int
		opts := make([]huh.Option[int], len(options))
		for i, o := range options {
			opts[i] = huh.NewOption(o, i)
		}
		err := huh.NewMultiSelect[int]().
			Title(title).
			Options(opts...).
			Value(&result).
			Run()
		return result, err
	}
}

// PromptKit bundles the prompt functions a command needs. Production code
// builds it with NewPromptKit; tests fill in the fields they care about.
type PromptKit struct {
	Prompt      PromptFunc
	Confirm     ConfirmFunc
	MultiSelect MultiSelectFunc
}

// NewPromptKit returns a PromptKit wired to interactive huh forms.
func NewPromptKit() PromptKit {
	return PromptKit{
		Prompt:      NewPromptFunc(),
		Confirm:     NewConfirmFunc(),
		MultiSelect: NewMultiSelectFunc(),
	}
}

package ports

import "context"

type OptionTone int

const (
	ToneDefault OptionTone = iota
	ToneHighlight
	TonePositive
	ToneFollowed
	ToneNegative
)

type Option struct {
	Label string
	Value string
	Tone  OptionTone
}

type TextPrompt struct {
	Message string
	Default string
}

type SelectPrompt struct {
	Message string
	Options []Option
	// Default is the Value of the initially highlighted option.
	Default string
}

type MultiSelectPrompt struct {
	Message  string
	Options  []Option
	Defaults []string
}

type ConfirmPrompt struct {
	Message string
	Default bool
}

// Prompter asks the user for input. Implementations return domain.ErrPromptAborted
// when the user cancels.
type Prompter interface {
	Text(ctx context.Context, p TextPrompt) (string, error)
	Password(ctx context.Context, p TextPrompt) (string, error)
	Select(ctx context.Context, p SelectPrompt) (string, error)
	MultiSelect(ctx context.Context, p MultiSelectPrompt) ([]string, error)
	Confirm(ctx context.Context, p ConfirmPrompt) (bool, error)
}

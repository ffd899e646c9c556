package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/yuzawa-san/wawona/internal/domain"
	"github.com/yuzawa-san/wawona/internal/ports"
)

var ErrUnexpectedPromptModel = errors.New("unexpected final prompt model type")

// Terminal asks questions with one short-lived bubbletea program per prompt.
type Terminal struct {
	in   io.Reader
	out  io.Writer
	keys KeyMap
}

var _ ports.Prompter = (*Terminal)(nil)

func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return &Terminal{in: in, out: out, keys: DefaultKeyMap}
}

func (t *Terminal) Text(ctx context.Context, p ports.TextPrompt) (string, error) {
	final, err := t.run(ctx, newInputModel(p.Message, p.Default, false, t.keys))
	if err != nil {
		return "", err
	}
	m, ok := final.(inputModel)
	if !ok {
		return "", ErrUnexpectedPromptModel
	}
	if m.aborted {
		return "", domain.ErrPromptAborted
	}
	return m.Value(), nil
}

func (t *Terminal) Password(ctx context.Context, p ports.TextPrompt) (string, error) {
	final, err := t.run(ctx, newInputModel(p.Message, "", true, t.keys))
	if err != nil {
		return "", err
	}
	m, ok := final.(inputModel)
	if !ok {
		return "", ErrUnexpectedPromptModel
	}
	if m.aborted {
		return "", domain.ErrPromptAborted
	}
	return m.Value(), nil
}

func (t *Terminal) Select(ctx context.Context, p ports.SelectPrompt) (string, error) {
	if len(p.Options) == 0 {
		return "", fmt.Errorf("select %q: no options", p.Message)
	}

	final, err := t.run(ctx, newSelectModel(p, t.keys))
	if err != nil {
		return "", err
	}
	m, ok := final.(listModel)
	if !ok {
		return "", ErrUnexpectedPromptModel
	}
	if m.aborted {
		return "", domain.ErrPromptAborted
	}
	return m.Value(), nil
}

func (t *Terminal) MultiSelect(ctx context.Context, p ports.MultiSelectPrompt) ([]string, error) {
	if len(p.Options) == 0 {
		return nil, nil
	}

	final, err := t.run(ctx, newMultiSelectModel(p, t.keys))
	if err != nil {
		return nil, err
	}
	m, ok := final.(listModel)
	if !ok {
		return nil, ErrUnexpectedPromptModel
	}
	if m.aborted {
		return nil, domain.ErrPromptAborted
	}
	return m.Values(), nil
}

func (t *Terminal) Confirm(ctx context.Context, p ports.ConfirmPrompt) (bool, error) {
	final, err := t.run(ctx, newConfirmModel(p.Message, p.Default, t.keys))
	if err != nil {
		return false, err
	}
	m, ok := final.(confirmModel)
	if !ok {
		return false, ErrUnexpectedPromptModel
	}
	if m.aborted {
		return false, domain.ErrPromptAborted
	}
	return m.value, nil
}

func (t *Terminal) run(ctx context.Context, model tea.Model) (tea.Model, error) {
	p := tea.NewProgram(
		model,
		tea.WithInput(t.in),
		tea.WithOutput(t.out),
		tea.WithContext(ctx),
	)

	final, err := p.Run()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("run prompt: %w", err)
	}
	return final, nil
}

package application

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/yuzawa-san/wawona/internal/domain"
	"github.com/yuzawa-san/wawona/internal/ports"
)

// choose runs a single selection. A lone option is taken without asking.
func choose(ctx context.Context, prompter ports.Prompter, out io.Writer, p ports.SelectPrompt) (string, error) {
	switch len(p.Options) {
	case 0:
		return "", &domain.NoChoiceError{Prompt: p.Message}
	case 1:
		fmt.Fprintf(out, "[?] %s: %s (only choice)\n", p.Message, p.Options[0].Label)
		return p.Options[0].Value, nil
	}

	value, err := prompter.Select(ctx, p)
	if err != nil {
		if errors.Is(err, domain.ErrPromptAborted) {
			return "", &domain.NoChoiceError{Prompt: p.Message, Err: err}
		}
		return "", fmt.Errorf("select %q: %w", p.Message, err)
	}
	return value, nil
}

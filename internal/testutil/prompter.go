package testutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/yuzawa-san/wawona/internal/domain"
	"github.com/yuzawa-san/wawona/internal/ports"
)

// Answer is one scripted reply. Values is used by multi-selects, Confirmed by
// confirmations and Value by everything else.
type Answer struct {
	Value     string
	Values    []string
	Confirmed bool
	Err       error
}

// ScriptedPrompter answers prompts from per-message queues. An unscripted prompt
// fails with domain.ErrPromptAborted.
type ScriptedPrompter struct {
	mu      sync.Mutex
	answers map[string][]Answer
	// Asked records prompt messages in order.
	Asked []string
	// Selects records every select prompt that reached the prompter.
	Selects []ports.SelectPrompt
}

var _ ports.Prompter = (*ScriptedPrompter)(nil)

func NewScriptedPrompter() *ScriptedPrompter {
	return &ScriptedPrompter{answers: make(map[string][]Answer)}
}

// On queues answers for prompts with the given message.
func (p *ScriptedPrompter) On(message string, answers ...Answer) *ScriptedPrompter {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.answers[message] = append(p.answers[message], answers...)
	return p
}

// Pending returns the messages that still have queued answers.
func (p *ScriptedPrompter) Pending() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []string
	for message, queue := range p.answers {
		if len(queue) > 0 {
			out = append(out, message)
		}
	}
	return out
}

func (p *ScriptedPrompter) next(message string) (Answer, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Asked = append(p.Asked, message)
	queue := p.answers[message]
	if len(queue) == 0 {
		return Answer{}, fmt.Errorf("unscripted prompt %q: %w", message, domain.ErrPromptAborted)
	}
	p.answers[message] = queue[1:]
	return queue[0], queue[0].Err
}

func (p *ScriptedPrompter) Text(ctx context.Context, prompt ports.TextPrompt) (string, error) {
	answer, err := p.next(prompt.Message)
	if err != nil {
		return "", err
	}
	if answer.Value == "" {
		return prompt.Default, nil
	}
	return answer.Value, nil
}

func (p *ScriptedPrompter) Password(ctx context.Context, prompt ports.TextPrompt) (string, error) {
	answer, err := p.next(prompt.Message)
	return answer.Value, err
}

func (p *ScriptedPrompter) Select(ctx context.Context, prompt ports.SelectPrompt) (string, error) {
	p.mu.Lock()
	p.Selects = append(p.Selects, prompt)
	p.mu.Unlock()

	answer, err := p.next(prompt.Message)
	if err != nil {
		return "", err
	}
	if answer.Value == "" {
		return prompt.Default, nil
	}
	return answer.Value, nil
}

func (p *ScriptedPrompter) MultiSelect(ctx context.Context, prompt ports.MultiSelectPrompt) ([]string, error) {
	answer, err := p.next(prompt.Message)
	return answer.Values, err
}

func (p *ScriptedPrompter) Confirm(ctx context.Context, prompt ports.ConfirmPrompt) (bool, error) {
	answer, err := p.next(prompt.Message)
	return answer.Confirmed, err
}

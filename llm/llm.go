// Package llm wraps the external chat-completion API behind a small
// interface so the planner can be exercised without a network.
package llm

import "context"

const (
	DefaultModel       = "gpt-3.5-turbo"
	DefaultTemperature = float32(0.7)
	DefaultMaxTokens   = 500
)

// Completer sends a system instruction and a user prompt to a language model
// and returns the raw text of the first reply.
type Completer interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
}

// CompleterFunc adapts a plain function to Completer.
type CompleterFunc func(ctx context.Context, system, prompt string) (string, error)

func (f CompleterFunc) Complete(ctx context.Context, system, prompt string) (string, error) {
	return f(ctx, system, prompt)
}

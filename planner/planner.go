// Package planner turns a list of task names into a schedule by asking a
// language model. It holds no scheduling logic of its own: it renders the
// prompt, performs one completion and parses the reply.
package planner

import (
	"context"

	"github.com/andrewcbuensalida/mudita-task-organizer-assignment/llm"
	"github.com/andrewcbuensalida/mudita-task-organizer-assignment/logger"
)

// Planner is safe for concurrent use; it keeps no per-request state.
type Planner struct {
	completer llm.Completer
	log       logger.Logger
}

// New returns a Planner calling c. A nil log discards output.
func New(c llm.Completer, log logger.Logger) *Planner {
	if log == nil {
		log = logger.NopLogger{}
	}
	return &Planner{completer: c, log: log}
}

// Plan asks the model to schedule tasks. Failures are either a
// *ResponseParseError or an *UpstreamError. The completion is attempted
// exactly once.
func (p *Planner) Plan(ctx context.Context, tasks []string) (*Plan, error) {
	prompt, err := BuildPrompt(tasks)
	if err != nil {
		return nil, &UpstreamError{Err: err}
	}
	p.log.Debugw("completion request", map[string]any{"tasks": len(tasks), "prompt": prompt})

	reply, err := p.completer.Complete(ctx, SystemPrompt, prompt)
	if err != nil {
		return nil, &UpstreamError{Err: err}
	}
	p.log.Debugw("completion reply", map[string]any{"reply": reply})

	plan, err := ParseReply(reply)
	if err != nil {
		p.log.Warnf("unparseable model reply: %v", err)
		return nil, err
	}
	return plan, nil
}

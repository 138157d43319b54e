package planner

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ParseReply decodes a model reply into a Plan. A single surrounding Markdown
// code fence is tolerated; otherwise the reply must be a JSON object holding
// a "schedule" list and an "explanation" string. Each schedule entry must be
// an object with string "time" and "task" members; it is kept verbatim.
func ParseReply(reply string) (*Plan, error) {
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal([]byte(stripFence(reply)), &fields); err != nil {
		return nil, &ResponseParseError{Reply: reply, Err: err}
	}
	rawSchedule, ok := fields["schedule"]
	if !ok {
		return nil, &ResponseParseError{Reply: reply, Err: errors.New(`missing "schedule"`)}
	}
	rawExplanation, ok := fields["explanation"]
	if !ok {
		return nil, &ResponseParseError{Reply: reply, Err: errors.New(`missing "explanation"`)}
	}

	var plan Plan
	if err := json.Unmarshal(rawSchedule, &plan.Schedule); err != nil {
		return nil, &ResponseParseError{Reply: reply, Err: fmt.Errorf("schedule: %w", err)}
	}
	if plan.Schedule == nil {
		return nil, &ResponseParseError{Reply: reply, Err: errors.New("schedule is null")}
	}
	if string(rawExplanation) == "null" {
		return nil, &ResponseParseError{Reply: reply, Err: errors.New("explanation is null")}
	}
	if err := json.Unmarshal(rawExplanation, &plan.Explanation); err != nil {
		return nil, &ResponseParseError{Reply: reply, Err: fmt.Errorf("explanation: %w", err)}
	}
	return &plan, nil
}

func stripFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") || !strings.HasSuffix(s, "```") || len(s) < 6 {
		return s
	}
	s = strings.TrimSuffix(strings.TrimPrefix(s, "```"), "```")
	// Drop the info string, e.g. "json".
	if i := strings.IndexByte(s, '\n'); i >= 0 && !strings.ContainsAny(s[:i], "{[") {
		s = s[i+1:]
	}
	return strings.TrimSpace(s)
}

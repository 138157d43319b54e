package planner

import "fmt"

// ParseFailureDetail is the message reported to callers when the model reply
// cannot be read as a plan.
const ParseFailureDetail = "Failed to parse AI response"

// ResponseParseError reports a model reply that is not a JSON object with
// "schedule" and "explanation" keys.
type ResponseParseError struct {
	Reply string
	Err   error
}

func (e *ResponseParseError) Error() string {
	return fmt.Sprintf("parse model reply: %v", e.Err)
}

func (e *ResponseParseError) Unwrap() error { return e.Err }

// UpstreamError reports any failure while talking to the completion API.
// Its message is the message of the underlying failure.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string { return e.Err.Error() }

func (e *UpstreamError) Unwrap() error { return e.Err }

package planner

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Entry is a single slot of a generated schedule. Neither field is
// validated: the model decides the time format.
//
// An Entry decoded from a model reply keeps the object exactly as it was
// sent, extra keys included, and encodes back to it unchanged.
type Entry struct {
	Time string
	Task string

	raw json.RawMessage
}

// Plan is the structured form of a model reply.
type Plan struct {
	Schedule    []Entry `json:"schedule"`
	Explanation string  `json:"explanation"`
}

type entryFields struct {
	Time string `json:"time"`
	Task string `json:"task"`
}

// MarshalJSON implements json.Marshaler.
func (e Entry) MarshalJSON() ([]byte, error) {
	if e.raw != nil {
		return e.raw, nil
	}
	return json.Marshal(entryFields{Time: e.Time, Task: e.Task})
}

// UnmarshalJSON implements json.Unmarshaler. The value must be an object
// with string "time" and "task" members.
func (e *Entry) UnmarshalJSON(b []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil {
		return err
	}
	if fields == nil {
		return errors.New("entry is null")
	}
	var out Entry
	if err := entryString(fields, "time", &out.Time); err != nil {
		return err
	}
	if err := entryString(fields, "task", &out.Task); err != nil {
		return err
	}
	out.raw = append(json.RawMessage(nil), b...)
	*e = out
	return nil
}

func entryString(fields map[string]json.RawMessage, key string, dst *string) error {
	raw, ok := fields[key]
	if !ok {
		return fmt.Errorf("entry: missing %q", key)
	}
	if string(raw) == "null" {
		return fmt.Errorf("entry: %q is null", key)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("entry %q: %w", key, err)
	}
	return nil
}

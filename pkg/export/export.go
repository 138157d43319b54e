// Package export renders a generated plan for the command line.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"github.com/andrewcbuensalida/mudita-task-organizer-assignment/planner"
)

// Format names accepted by Write.
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// Write renders p in the given format.
func Write(w io.Writer, format string, p *planner.Plan) error {
	switch format {
	case FormatJSON, "":
		return WriteJSON(w, p)
	case FormatCSV:
		return WriteCSV(w, p)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

// WriteJSON writes the plan to w as indented JSON, the same shape the API returns.
func WriteJSON(w io.Writer, p *planner.Plan) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}

// WriteCSV writes one row per schedule entry. The explanation is dropped.
func WriteCSV(w io.Writer, p *planner.Plan) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"time", "task"}); err != nil {
		return err
	}
	for _, e := range p.Schedule {
		if err := cw.Write([]string{e.Time, e.Task}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

package health

import (
	"net/http"

	"github.com/andrewcbuensalida/mudita-task-organizer-assignment/api"
)

// Status is the fixed payload of the health endpoint.
type Status struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

var healthy = Status{Status: "healthy", Service: "Task Planner API", Version: "1.0.0"}

// NewHandler returns an HTTP handler answering GET / with the service status.
// The payload does not depend on configuration.
func NewHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			_ = api.WriteDetail(w, http.StatusMethodNotAllowed, "Method Not Allowed")
			return
		}
		_ = api.WriteJSON(w, http.StatusOK, healthy)
	})
}

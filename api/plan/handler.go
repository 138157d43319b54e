package plan

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/andrewcbuensalida/mudita-task-organizer-assignment/api"
	"github.com/andrewcbuensalida/mudita-task-organizer-assignment/logger"
	"github.com/andrewcbuensalida/mudita-task-organizer-assignment/metrics"
	"github.com/andrewcbuensalida/mudita-task-organizer-assignment/monitoring"
	"github.com/andrewcbuensalida/mudita-task-organizer-assignment/planner"
)

const maxRequestBodySize = 1 << 20

// Request is the body of POST /api/plan-tasks.
type Request struct {
	Tasks []string `json:"tasks"`
}

// Planner produces a plan for a task list.
type Planner interface {
	Plan(ctx context.Context, tasks []string) (*planner.Plan, error)
}

// Handler serves POST /api/plan-tasks.
type Handler struct {
	planner Planner
	sink    metrics.MetricsSink
	monitor monitoring.Monitor
	log     logger.Logger
}

// NewHandler returns the plan handler. Nil sink, monitor and log are
// replaced by no-op implementations.
func NewHandler(p Planner, sink metrics.MetricsSink, mon monitoring.Monitor, log logger.Logger) *Handler {
	if sink == nil {
		sink = metrics.NopSink{}
	}
	if mon == nil {
		mon = monitoring.NopMonitor{}
	}
	if log == nil {
		log = logger.NopLogger{}
	}
	return &Handler{planner: p, sink: sink, monitor: mon, log: log}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		_ = api.WriteDetail(w, http.StatusMethodNotAllowed, "Method Not Allowed")
		return
	}
	req, err := decodeRequest(w, r)
	if err != nil {
		_ = api.WriteDetail(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	reqID := api.RequestID(r.Context())
	start := time.Now()
	result, err := h.planner.Plan(r.Context(), req.Tasks)
	ev := metrics.PlanEvent{
		RequestID: reqID,
		Tasks:     len(req.Tasks),
		Outcome:   metrics.OutcomeOK,
		Latency:   time.Since(start),
		Time:      start,
	}

	status, detail := http.StatusOK, ""
	var parseErr *planner.ResponseParseError
	switch {
	case err == nil:
	case errors.As(err, &parseErr):
		ev.Outcome = metrics.OutcomeParseError
		status, detail = http.StatusInternalServerError, planner.ParseFailureDetail
	default:
		ev.Outcome = metrics.OutcomeUpstreamError
		status, detail = http.StatusInternalServerError, err.Error()
	}

	if recErr := h.sink.RecordPlan(ev); recErr != nil {
		h.log.Warnf("record plan event: %v", recErr)
	}
	if err != nil {
		h.log.Errorf("plan request %s failed: %v", reqID, err)
		h.monitor.CaptureException(err, map[string]string{
			"outcome":    string(ev.Outcome),
			"request_id": reqID,
		})
		_ = api.WriteDetail(w, status, detail)
		return
	}
	h.log.Infof("plan request %s: %d tasks, %d entries in %s", reqID, len(req.Tasks), len(result.Schedule), ev.Latency)
	if err := api.WriteJSON(w, status, result); err != nil {
		h.log.Errorf("write plan response: %v", err)
	}
}

// decodeRequest reads a single JSON object holding a "tasks" list of
// strings. Null items and trailing data are rejected.
func decodeRequest(w http.ResponseWriter, r *http.Request) (Request, error) {
	var body struct {
		Tasks []*string `json:"tasks"`
	}
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodySize))
	err := dec.Decode(&body)
	if err == nil {
		if extra := dec.Decode(&struct{}{}); extra == nil {
			err = errors.New("unexpected data after JSON object")
		} else if !errors.Is(extra, io.EOF) {
			err = extra
		}
	}
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return Request{}, fmt.Errorf("request body exceeds %d bytes", tooLarge.Limit)
		}
		return Request{}, fmt.Errorf("invalid request body: %w", err)
	}
	if body.Tasks == nil {
		return Request{}, errors.New("tasks: field required")
	}
	req := Request{Tasks: make([]string, len(body.Tasks))}
	for i, task := range body.Tasks {
		if task == nil {
			return Request{}, fmt.Errorf("tasks.%d: must be a string", i)
		}
		req.Tasks[i] = *task
	}
	return req, nil
}

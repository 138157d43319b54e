package cmd

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrewcbuensalida/mudita-task-organizer-assignment/llm"
	"github.com/andrewcbuensalida/mudita-task-organizer-assignment/planner"
)

func newCmd() (*cobra.Command, *bytes.Buffer) {
	var out bytes.Buffer
	c := &cobra.Command{}
	c.SetOut(&out)
	c.SetContext(context.Background())
	return c, &out
}

func TestRunPlan(t *testing.T) {
	var prompt string
	p := planner.New(llm.CompleterFunc(func(_ context.Context, _, pr string) (string, error) {
		prompt = pr
		return `{"schedule":[{"time":"9:00 AM","task":"Write report"}],"explanation":"Report first"}`, nil
	}), nil)
	c, out := newCmd()

	require.NoError(t, runPlan(c, p, []string{"Write report", "Call client"}))
	assert.Contains(t, prompt, "Write report, Call client")
	assert.JSONEq(t, `{"schedule":[{"time":"9:00 AM","task":"Write report"}],"explanation":"Report first"}`, out.String())
}

func TestRunPlanErrors(t *testing.T) {
	c, _ := newCmd()
	bad := planner.New(llm.CompleterFunc(func(context.Context, string, string) (string, error) {
		return "not json", nil
	}), nil)
	err := runPlan(c, bad, []string{"a"})
	assert.ErrorContains(t, err, planner.ParseFailureDetail)

	down := planner.New(llm.CompleterFunc(func(context.Context, string, string) (string, error) {
		return "", errors.New("connection refused")
	}), nil)
	err = runPlan(c, down, []string{"a"})
	assert.EqualError(t, err, "connection refused")
}

func TestPlanCommandRequiresTasks(t *testing.T) {
	assert.Error(t, planCmd.Args(planCmd, nil))
	assert.NoError(t, planCmd.Args(planCmd, []string{"a"}))
}

func TestRunPlanCSV(t *testing.T) {
	planFormat = "csv"
	defer func() { planFormat = "json" }()
	p := planner.New(llm.CompleterFunc(func(context.Context, string, string) (string, error) {
		return `{"schedule":[{"time":"9:00 AM","task":"Write report"}],"explanation":"Report first"}`, nil
	}), nil)
	c, out := newCmd()

	require.NoError(t, runPlan(c, p, []string{"Write report"}))
	assert.Equal(t, "time,task\n9:00 AM,Write report\n", out.String())
}

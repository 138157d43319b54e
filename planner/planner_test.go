package planner

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/andrewcbuensalida/mudita-task-organizer-assignment/llm"
)

type completerMock struct{ mock.Mock }

func (m *completerMock) Complete(ctx context.Context, system, prompt string) (string, error) {
	args := m.Called(ctx, system, prompt)
	return args.String(0), args.Error(1)
}

func TestPlanRoundTrip(t *testing.T) {
	reply := `{"schedule":[{"time":"9:00 AM","task":"Write report"}],"explanation":"Report first"}`
	c := &completerMock{}
	c.On("Complete", mock.Anything, SystemPrompt, mock.MatchedBy(func(p string) bool {
		return strings.Contains(p, "Write report") && strings.Contains(p, "Call client")
	})).Return(reply, nil).Once()

	plan, err := New(c, nil).Plan(context.Background(), []string{"Write report", "Call client"})
	require.NoError(t, err)
	require.Len(t, plan.Schedule, 1)
	assert.Equal(t, "9:00 AM", plan.Schedule[0].Time)
	assert.Equal(t, "Write report", plan.Schedule[0].Task)
	assert.Equal(t, "Report first", plan.Explanation)
	c.AssertExpectations(t)
}

func TestPlanSystemMessageFirst(t *testing.T) {
	var system, user string
	c := llm.CompleterFunc(func(_ context.Context, s, p string) (string, error) {
		system, user = s, p
		return `{"schedule":[],"explanation":""}`, nil
	})
	_, err := New(c, nil).Plan(context.Background(), []string{"Gym"})
	require.NoError(t, err)
	assert.Equal(t, "You are a helpful task planning assistant.", system)
	assert.Contains(t, user, "Gym")
}

func TestPlanMalformedReply(t *testing.T) {
	c := &completerMock{}
	c.On("Complete", mock.Anything, mock.Anything, mock.Anything).Return("not json", nil)

	_, err := New(c, nil).Plan(context.Background(), []string{"a"})
	var perr *ResponseParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "not json", perr.Reply)
	var uerr *UpstreamError
	assert.False(t, errors.As(err, &uerr))
}

func TestPlanUpstreamFailure(t *testing.T) {
	cause := errors.New("connection refused")
	c := &completerMock{}
	c.On("Complete", mock.Anything, mock.Anything, mock.Anything).Return("", cause).Once()

	_, err := New(c, nil).Plan(context.Background(), []string{"a"})
	var uerr *UpstreamError
	require.ErrorAs(t, err, &uerr)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "connection refused", err.Error())
	c.AssertNumberOfCalls(t, "Complete", 1)
}

func TestPlanEmptyTaskList(t *testing.T) {
	var user string
	c := llm.CompleterFunc(func(_ context.Context, _, p string) (string, error) {
		user = p
		return `{"schedule":[],"explanation":"nothing to do"}`, nil
	})
	plan, err := New(c, nil).Plan(context.Background(), []string{})
	require.NoError(t, err)
	assert.Empty(t, plan.Schedule)
	assert.Contains(t, user, "Given these tasks for today: \n")
}

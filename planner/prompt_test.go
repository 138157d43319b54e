package planner

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPrompt(t *testing.T) {
	tasks := []string{"Write report", "Call client", "Pick up kids at 3"}
	prompt, err := BuildPrompt(tasks)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(prompt, "Given these tasks for today: Write report, Call client, Pick up kids at 3\n"))
	for _, task := range tasks {
		assert.Contains(t, prompt, task)
	}
	for _, want := range []string{
		"Task dependencies",
		"Time of day appropriateness",
		"Energy levels",
		"School/work hour conflicts",
		`"schedule"`,
		`"explanation"`,
		`{"time": "9:00 AM", "task": "Task 1"}`,
	} {
		assert.Contains(t, prompt, want)
	}
}

func TestBuildPromptDoesNotEscapeTasks(t *testing.T) {
	prompt, err := BuildPrompt([]string{`<b>"quoted" & raw</b>`})
	require.NoError(t, err)
	assert.Contains(t, prompt, `<b>"quoted" & raw</b>`)
}

package planner

import (
	"strings"
	"text/template"
)

// SystemPrompt is sent as the system-role message of every completion.
const SystemPrompt = "You are a helpful task planning assistant."

var userPrompt = template.Must(template.New("plan").Funcs(template.FuncMap{
	"join": strings.Join,
}).Parse(`Given these tasks for today: {{join .Tasks ", "}}
Please create an optimal schedule for these tasks. Consider:
1. Task dependencies
2. Time of day appropriateness
3. Energy levels
4. School/work hour conflicts

Format the response as a JSON with two fields:
1. "schedule": A list of objects with "time" and "task" fields
2. "explanation": A brief explanation of the reasoning behind the schedule

Example format:
{
    "schedule": [
        {"time": "9:00 AM", "task": "Task 1"},
        {"time": "11:00 AM", "task": "Task 2"}
    ],
    "explanation": "Explanation here..."
}`))

// BuildPrompt renders the user message for tasks. Task strings are embedded
// verbatim.
func BuildPrompt(tasks []string) (string, error) {
	var b strings.Builder
	if err := userPrompt.Execute(&b, struct{ Tasks []string }{tasks}); err != nil {
		return "", err
	}
	return b.String(), nil
}

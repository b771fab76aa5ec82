package breakdown

import (
	"fmt"
	"strings"

	"github.com/mlindqvist/focal/internal/domain"
)

const breakdownSystemPrompt = `You help people with ADHD break a task into small, concrete, immediately actionable steps. Respond with JSON only, no prose, matching this shape:
{"steps": [{"title": "...", "duration": "10 min", "description": "...", "kind": "prep|work|review", "energy": "low|medium|high", "tip": "..."}]}
Rules:
- 3 to 6 steps, each 25 minutes or less.
- The first step must take 5 minutes or less so it is easy to start.
- Titles are imperative ("Open the document"), not vague ("Think about it").
- Every step gets one short tip for staying on track.`

func breakdownUserPrompt(task *domain.Task, budgetMin int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Task: %s\n", task.Title)
	if task.Description != "" {
		fmt.Fprintf(&b, "Details: %s\n", task.Description)
	}
	if task.EstimatedMin > 0 {
		fmt.Fprintf(&b, "Estimated total: %.0f minutes\n", task.EstimatedMin)
	}
	if budgetMin > 0 {
		fmt.Fprintf(&b, "Available time right now: %d minutes. The steps must fit this budget.\n", budgetMin)
	}
	if task.EmotionalWeight == domain.EmotionalStressful || task.EmotionalWeight == domain.EmotionalDreading {
		b.WriteString("The person is dreading this task, so make the first step especially small.\n")
	}
	b.WriteString("Break this down.")
	return b.String()
}

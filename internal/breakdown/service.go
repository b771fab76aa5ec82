// Package breakdown suggests small concrete steps for a task, using a
// language model when one is configured and a deterministic keyword-based
// fallback otherwise.
package breakdown

import (
	"context"
	"fmt"
	"strings"

	"github.com/mlindqvist/focal/internal/domain"
	"github.com/mlindqvist/focal/internal/llm"
)

// Step is one suggested sub-step of a task.
type Step struct {
	Title         string `json:"title"`
	DurationLabel string `json:"duration"`
	Description   string `json:"description"`
	Kind          string `json:"kind"`
	Energy        string `json:"energy"`
	Tip           string `json:"tip"`
}

type stepsPayload struct {
	Steps []Step `json:"steps"`
}

// Service produces step suggestions. A nil client means fallback-only.
type Service struct {
	client llm.Client
}

func NewService(client llm.Client) *Service {
	return &Service{client: client}
}

// Suggest returns an ordered list of steps for the task. budgetMin caps the
// total suggested time; zero means no cap. Any model failure or unusable
// model output falls back to the deterministic keyword breakdown, so the
// only error surfaced is context cancellation.
func (s *Service) Suggest(ctx context.Context, task *domain.Task, budgetMin int) ([]Step, error) {
	if s.client == nil || !s.client.Available(ctx) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return FallbackSteps(task, budgetMin), nil
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskBreakdown,
		SystemPrompt: breakdownSystemPrompt,
		UserPrompt:   breakdownUserPrompt(task, budgetMin),
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return FallbackSteps(task, budgetMin), nil
	}

	payload, err := llm.ExtractJSON(resp.Text, validateSteps)
	if err != nil {
		return FallbackSteps(task, budgetMin), nil
	}
	return payload.Steps, nil
}

func validateSteps(p stepsPayload) error {
	if len(p.Steps) == 0 {
		return fmt.Errorf("no steps returned")
	}
	for i, step := range p.Steps {
		if strings.TrimSpace(step.Title) == "" {
			return fmt.Errorf("step %d has no title", i)
		}
	}
	return nil
}

package cli

import (
	"context"
	"fmt"
	"strings"
)

// resolveTaskID resolves a task identifier which can be a full UUID or a
// unique UUID prefix.
func resolveTaskID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("task ID is required")
	}

	tasks, err := app.Tasks.List(ctx)
	if err != nil {
		return "", err
	}

	for _, t := range tasks {
		if t.ID == input {
			return t.ID, nil
		}
	}

	var matches []string
	for _, t := range tasks {
		if strings.HasPrefix(t.ID, input) {
			matches = append(matches, t.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("task not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("task ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveProjectID resolves a project identifier: exact name
// (case-insensitive), full UUID, or unique UUID prefix.
func resolveProjectID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("project ID is required")
	}

	projects, err := app.Projects.List(ctx)
	if err != nil {
		return "", err
	}

	for _, p := range projects {
		if strings.EqualFold(p.Name, input) {
			return p.ID, nil
		}
	}
	for _, p := range projects {
		if p.ID == input {
			return p.ID, nil
		}
	}

	var matches []string
	for _, p := range projects {
		if strings.HasPrefix(p.ID, input) {
			matches = append(matches, p.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("project not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("project ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveCategoryID resolves a category identifier: exact name
// (case-insensitive), full UUID, or unique UUID prefix.
func resolveCategoryID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("category ID is required")
	}

	categories, err := app.Categories.List(ctx)
	if err != nil {
		return "", err
	}

	for _, c := range categories {
		if strings.EqualFold(c.Name, input) {
			return c.ID, nil
		}
	}
	for _, c := range categories {
		if c.ID == input {
			return c.ID, nil
		}
	}

	var matches []string
	for _, c := range categories {
		if strings.HasPrefix(c.ID, input) {
			matches = append(matches, c.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("category not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("category ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

package planner

import (
	"strings"

	"github.com/mlindqvist/focal/internal/domain"
)

// TrackedFields are the optional task fields the completeness nudge watches.
var TrackedFields = []string{
	"dueDate", "priority", "description", "estimatedMinutes",
	"energyLevel", "project", "categories",
}

// Completeness reports how fully a task's optional metadata is filled in.
type Completeness struct {
	MissingFields []string
	Score         float64 // 0-100
}

// AnalyzeCompleteness checks the seven tracked fields on a single task and
// returns which are missing plus the inverted percentage. Pure function.
func AnalyzeCompleteness(t *domain.Task) Completeness {
	var missing []string
	if t.DueDate == nil {
		missing = append(missing, "dueDate")
	}
	if t.Priority == "" {
		missing = append(missing, "priority")
	}
	if len(strings.TrimSpace(t.Description)) < 10 {
		missing = append(missing, "description")
	}
	if t.EstimatedMin <= 0 {
		missing = append(missing, "estimatedMinutes")
	}
	if t.EnergyRequired == "" {
		missing = append(missing, "energyLevel")
	}
	if t.ProjectID == nil {
		missing = append(missing, "project")
	}
	if len(t.CategoryIDs) == 0 {
		missing = append(missing, "categories")
	}

	total := float64(len(TrackedFields))
	return Completeness{
		MissingFields: missing,
		Score:         (total - float64(len(missing))) / total * 100,
	}
}

// CriticalField reports whether a tracked field must be filled before the
// setup wizard may skip it. Only priority is treated as critical.
func CriticalField(field string) bool {
	return field == "priority"
}

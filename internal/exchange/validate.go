package exchange

import (
	"fmt"
	"strings"
	"time"

	"github.com/mlindqvist/focal/internal/domain"
)

// ValidateDocument checks the document for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateDocument(doc *Document) []error {
	var errs []error

	if doc.Version > SchemaVersion {
		errs = append(errs, fmt.Errorf("version %d is newer than supported version %d", doc.Version, SchemaVersion))
	}

	projectIDs := make(map[string]bool)
	errs = append(errs, validateProjects(doc.Projects, projectIDs)...)

	categoryIDs := make(map[string]bool)
	errs = append(errs, validateCategories(doc.Categories, categoryIDs)...)

	taskIDs := make(map[string]bool)
	for i, t := range doc.Tasks {
		prefix := fmt.Sprintf("tasks[%d]", i)
		if t.ID == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", prefix))
		} else if taskIDs[t.ID] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate id %q", prefix, t.ID))
		} else {
			taskIDs[t.ID] = true
		}
	}
	errs = append(errs, validateTasks(doc.Tasks, taskIDs, projectIDs, categoryIDs)...)
	errs = append(errs, validateDependencies(doc.Tasks, taskIDs)...)
	errs = append(errs, validateJournal(doc.JournalEntries)...)

	return errs
}

func validateProjects(projects []ProjectRecord, ids map[string]bool) []error {
	var errs []error
	for i, p := range projects {
		prefix := fmt.Sprintf("projects[%d]", i)
		if p.ID == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", prefix))
		} else if ids[p.ID] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate id %q", prefix, p.ID))
		} else {
			ids[p.ID] = true
		}
		if p.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
		if p.Color != "" && !domain.ValidColor(p.Color) {
			errs = append(errs, fmt.Errorf("%s.color: invalid value %q", prefix, p.Color))
		}
	}
	return errs
}

func validateCategories(categories []CategoryRecord, ids map[string]bool) []error {
	var errs []error
	for i, c := range categories {
		prefix := fmt.Sprintf("categories[%d]", i)
		if c.ID == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", prefix))
		} else if ids[c.ID] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate id %q", prefix, c.ID))
		} else {
			ids[c.ID] = true
		}
		if c.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
		if c.Color != "" && !domain.ValidColor(c.Color) {
			errs = append(errs, fmt.Errorf("%s.color: invalid value %q", prefix, c.Color))
		}
	}
	return errs
}

func validateTasks(tasks []TaskRecord, taskIDs, projectIDs, categoryIDs map[string]bool) []error {
	var errs []error
	for i, t := range tasks {
		prefix := fmt.Sprintf("tasks[%d]", i)

		if strings.TrimSpace(t.Title) == "" {
			errs = append(errs, fmt.Errorf("%s.title is required", prefix))
		}
		if t.Priority != "" && !domain.ValidPriorities[t.Priority] {
			errs = append(errs, fmt.Errorf("%s.priority: invalid value %q", prefix, t.Priority))
		}
		if t.Urgency != "" && !domain.ValidUrgencies[t.Urgency] {
			errs = append(errs, fmt.Errorf("%s.urgency: invalid value %q", prefix, t.Urgency))
		}
		if t.EmotionalWeight != "" && !domain.ValidEmotionalWeights[t.EmotionalWeight] {
			errs = append(errs, fmt.Errorf("%s.emotional_weight: invalid value %q", prefix, t.EmotionalWeight))
		}
		if t.EnergyRequired != "" && !domain.ValidEnergyLevels[t.EnergyRequired] {
			errs = append(errs, fmt.Errorf("%s.energy_required: invalid value %q", prefix, t.EnergyRequired))
		}
		if t.Importance != 0 && (t.Importance < 1 || t.Importance > 10) {
			errs = append(errs, fmt.Errorf("%s.importance must be between 1 and 10", prefix))
		}
		if t.EstimatedMin < 0 {
			errs = append(errs, fmt.Errorf("%s.estimated_minutes must be non-negative", prefix))
		}

		if t.ProjectID != nil && *t.ProjectID != "" && !projectIDs[*t.ProjectID] {
			errs = append(errs, fmt.Errorf("%s.project_id: id %q not found in projects", prefix, *t.ProjectID))
		}
		for _, cid := range t.CategoryIDs {
			if !categoryIDs[cid] {
				errs = append(errs, fmt.Errorf("%s.category_ids: id %q not found in categories", prefix, cid))
			}
		}
		if t.ParentTaskID != nil && *t.ParentTaskID != "" {
			if *t.ParentTaskID == t.ID {
				errs = append(errs, fmt.Errorf("%s.parent_task_id: task is its own parent", prefix))
			} else if !taskIDs[*t.ParentTaskID] {
				errs = append(errs, fmt.Errorf("%s.parent_task_id: id %q not found in tasks", prefix, *t.ParentTaskID))
			}
		}

		errs = append(errs, validateOptionalDate(prefix+".due_date", t.DueDate)...)
	}
	errs = append(errs, detectParentCycles(tasks)...)
	return errs
}

func validateDependencies(tasks []TaskRecord, taskIDs map[string]bool) []error {
	var errs []error
	for i, t := range tasks {
		prefix := fmt.Sprintf("tasks[%d]", i)
		for _, dep := range t.DependsOn {
			if dep == t.ID {
				errs = append(errs, fmt.Errorf("%s.depends_on: self-dependency %q", prefix, dep))
			} else if !taskIDs[dep] {
				errs = append(errs, fmt.Errorf("%s.depends_on: id %q not found in tasks", prefix, dep))
			}
		}
	}
	errs = append(errs, detectDependencyCycles(tasks)...)
	return errs
}

func detectParentCycles(tasks []TaskRecord) []error {
	graph := make(map[string][]string)
	nodes := make(map[string]bool)
	for _, t := range tasks {
		if t.ParentTaskID != nil && *t.ParentTaskID != "" && *t.ParentTaskID != t.ID {
			graph[*t.ParentTaskID] = append(graph[*t.ParentTaskID], t.ID)
			nodes[*t.ParentTaskID] = true
			nodes[t.ID] = true
		}
	}
	return detectCycles(graph, nodes, "parent cycle detected involving %q and %q")
}

func detectDependencyCycles(tasks []TaskRecord) []error {
	graph := make(map[string][]string)
	nodes := make(map[string]bool)
	for _, t := range tasks {
		for _, dep := range t.DependsOn {
			if dep != "" && dep != t.ID {
				graph[t.ID] = append(graph[t.ID], dep)
				nodes[t.ID] = true
				nodes[dep] = true
			}
		}
	}
	return detectCycles(graph, nodes, "dependency cycle detected involving %q and %q")
}

func detectCycles(graph map[string][]string, nodes map[string]bool, format string) []error {
	const (
		white = 0 // unvisited
		gray  = 1 // in current path
		black = 2 // fully processed
	)

	color := make(map[string]int)
	var errs []error

	var visit func(node string) bool
	visit = func(node string) bool {
		color[node] = gray
		for _, neighbor := range graph[node] {
			if color[neighbor] == gray {
				errs = append(errs, fmt.Errorf(format, node, neighbor))
				return true
			}
			if color[neighbor] == white {
				if visit(neighbor) {
					return true
				}
			}
		}
		color[node] = black
		return false
	}

	for node := range nodes {
		if color[node] == white {
			visit(node)
		}
	}

	return errs
}

func validateJournal(entries []JournalRecord) []error {
	var errs []error
	for i, e := range entries {
		prefix := fmt.Sprintf("journal_entries[%d]", i)
		if e.Date == "" {
			errs = append(errs, fmt.Errorf("%s.date is required", prefix))
		} else {
			errs = append(errs, validateOptionalDate(prefix+".date", &e.Date)...)
		}
		if e.Section == "" {
			errs = append(errs, fmt.Errorf("%s.section is required", prefix))
		} else if !domain.ValidJournalSections[e.Section] {
			errs = append(errs, fmt.Errorf("%s.section: invalid value %q", prefix, e.Section))
		}
		if e.Content == "" {
			errs = append(errs, fmt.Errorf("%s.content is required", prefix))
		}
	}
	return errs
}

func validateOptionalDate(field string, dateStr *string) []error {
	if dateStr == nil || *dateStr == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", *dateStr); err != nil {
		return []error{fmt.Errorf("%s: invalid date format %q (expected YYYY-MM-DD)", field, *dateStr)}
	}
	return nil
}

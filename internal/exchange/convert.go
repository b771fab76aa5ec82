package exchange

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/mlindqvist/focal/internal/dates"
	"github.com/mlindqvist/focal/internal/domain"
	"github.com/mlindqvist/focal/internal/taskgraph"
)

// Bundle holds converted domain objects in write order: categories and
// projects carry no references, tasks are ordered parents before children,
// and edges come last.
type Bundle struct {
	Projects   []*domain.Project
	Categories []*domain.Category
	Tasks      []*domain.Task
	Edges      []taskgraph.Edge
	Journal    []*domain.JournalEntry
}

// Convert transforms a validated document into domain objects ready for
// persistence. Every id is re-minted; document-local references are remapped
// through the old-id to new-id table. Call ValidateDocument first; Convert
// assumes the document is valid.
func Convert(doc *Document, userID string) (*Bundle, error) {
	now := time.Now().UTC()
	idMap := make(map[string]string) // document id -> minted UUID

	bundle := &Bundle{}

	for _, c := range doc.Categories {
		realID := uuid.New().String()
		idMap[c.ID] = realID
		bundle.Categories = append(bundle.Categories, &domain.Category{
			ID:        realID,
			UserID:    userID,
			Name:      c.Name,
			Color:     c.Color,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	for _, p := range doc.Projects {
		realID := uuid.New().String()
		idMap[p.ID] = realID
		bundle.Projects = append(bundle.Projects, &domain.Project{
			ID:        realID,
			UserID:    userID,
			Name:      p.Name,
			Color:     p.Color,
			Order:     p.Order,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	ordered := parentFirst(doc.Tasks)
	for _, rec := range ordered {
		realID := uuid.New().String()
		idMap[rec.ID] = realID

		task := &domain.Task{
			ID:              realID,
			UserID:          userID,
			Title:           rec.Title,
			Description:     rec.Description,
			Tags:            rec.Tags,
			Priority:        domain.Priority(rec.Priority),
			Urgency:         domain.Urgency(rec.Urgency),
			EmotionalWeight: domain.EmotionalWeight(rec.EmotionalWeight),
			EnergyRequired:  domain.EnergyLevel(rec.EnergyRequired),
			Importance:      rec.Importance,
			EstimatedMin:    rec.EstimatedMin,
			DueDate:         parseOptionalDate(rec.DueDate),
			Completed:       rec.Completed,
			Archived:        rec.Archived,
			CompletedAt:     parseOptionalTimestamp(rec.CompletedAt),
			CreatedAt:       parseTimestamp(rec.CreatedAt, now),
			UpdatedAt:       parseTimestamp(rec.UpdatedAt, now),
		}

		if rec.ProjectID != nil && *rec.ProjectID != "" {
			pid, ok := idMap[*rec.ProjectID]
			if !ok {
				return nil, fmt.Errorf("project id %q not found for task %q", *rec.ProjectID, rec.ID)
			}
			task.ProjectID = &pid
		}
		for _, cid := range rec.CategoryIDs {
			mapped, ok := idMap[cid]
			if !ok {
				return nil, fmt.Errorf("category id %q not found for task %q", cid, rec.ID)
			}
			task.CategoryIDs = append(task.CategoryIDs, mapped)
		}
		if rec.ParentTaskID != nil && *rec.ParentTaskID != "" {
			parentID, ok := idMap[*rec.ParentTaskID]
			if !ok {
				return nil, fmt.Errorf("parent id %q not found for task %q", *rec.ParentTaskID, rec.ID)
			}
			task.ParentTaskID = &parentID
		}

		bundle.Tasks = append(bundle.Tasks, task)
	}

	// Edges last: both ends are minted by now.
	for _, rec := range ordered {
		for _, dep := range rec.DependsOn {
			from, ok := idMap[rec.ID]
			if !ok {
				return nil, fmt.Errorf("task id %q not found", rec.ID)
			}
			to, ok := idMap[dep]
			if !ok {
				return nil, fmt.Errorf("dependency id %q not found for task %q", dep, rec.ID)
			}
			bundle.Edges = append(bundle.Edges, taskgraph.Edge{TaskID: from, DependsOnID: to})
		}
	}

	for _, e := range doc.JournalEntries {
		d, ok := dates.ParseDate(e.Date)
		if !ok {
			return nil, fmt.Errorf("parsing journal date %q", e.Date)
		}
		week, year := domain.BucketFor(d)
		bundle.Journal = append(bundle.Journal, &domain.JournalEntry{
			ID:          uuid.New().String(),
			UserID:      userID,
			Date:        d,
			Week:        week,
			Year:        year,
			Section:     domain.JournalSection(e.Section),
			PromptIndex: e.PromptIndex,
			Content:     e.Content,
			Mood:        e.Mood,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}

	return bundle, nil
}

// parentFirst orders task records so every parent precedes its children.
// Document order is preserved within each generation.
func parentFirst(tasks []TaskRecord) []TaskRecord {
	present := make(map[string]bool, len(tasks))
	for _, t := range tasks {
		present[t.ID] = true
	}

	placed := make(map[string]bool, len(tasks))
	ordered := make([]TaskRecord, 0, len(tasks))
	remaining := tasks

	for len(remaining) > 0 {
		var next []TaskRecord
		progressed := false
		for _, t := range remaining {
			ready := t.ParentTaskID == nil || *t.ParentTaskID == "" ||
				!present[*t.ParentTaskID] || placed[*t.ParentTaskID]
			if ready {
				ordered = append(ordered, t)
				placed[t.ID] = true
				progressed = true
			} else {
				next = append(next, t)
			}
		}
		if !progressed {
			// Parent cycle; validation rejects these, but never loop.
			ordered = append(ordered, next...)
			break
		}
		remaining = next
	}

	return ordered
}

// BuildDocument assembles an export document from domain objects.
func BuildDocument(now time.Time, tasks []*domain.Task, projects []*domain.Project,
	categories []*domain.Category, journal []*domain.JournalEntry, edges []taskgraph.Edge) *Document {

	dependsOn := make(map[string][]string)
	for _, e := range edges {
		dependsOn[e.TaskID] = append(dependsOn[e.TaskID], e.DependsOnID)
	}
	for id := range dependsOn {
		sort.Strings(dependsOn[id])
	}

	doc := &Document{
		Version:        SchemaVersion,
		ExportedAt:     Timestamp(now),
		Tasks:          []TaskRecord{},
		Projects:       []ProjectRecord{},
		Categories:     []CategoryRecord{},
		JournalEntries: []JournalRecord{},
	}

	for _, t := range tasks {
		rec := TaskRecord{
			ID:              t.ID,
			Title:           t.Title,
			Description:     t.Description,
			Tags:            t.Tags,
			ProjectID:       t.ProjectID,
			CategoryIDs:     t.CategoryIDs,
			ParentTaskID:    t.ParentTaskID,
			Priority:        string(t.Priority),
			Urgency:         string(t.Urgency),
			EmotionalWeight: string(t.EmotionalWeight),
			EnergyRequired:  string(t.EnergyRequired),
			Importance:      t.Importance,
			EstimatedMin:    t.EstimatedMin,
			DueDate:         formatOptionalDate(t.DueDate),
			Completed:       t.Completed,
			Archived:        t.Archived,
			CompletedAt:     formatOptionalTimestamp(t.CompletedAt),
			DependsOn:       dependsOn[t.ID],
			CreatedAt:       Timestamp(t.CreatedAt),
			UpdatedAt:       Timestamp(t.UpdatedAt),
		}
		doc.Tasks = append(doc.Tasks, rec)
	}

	for _, p := range projects {
		doc.Projects = append(doc.Projects, ProjectRecord{
			ID: p.ID, Name: p.Name, Color: p.Color, Order: p.Order,
		})
	}
	for _, c := range categories {
		doc.Categories = append(doc.Categories, CategoryRecord{
			ID: c.ID, Name: c.Name, Color: c.Color,
		})
	}
	for _, e := range journal {
		doc.JournalEntries = append(doc.JournalEntries, JournalRecord{
			ID:          e.ID,
			Date:        dates.FormatDate(e.Date),
			Section:     string(e.Section),
			PromptIndex: e.PromptIndex,
			Content:     e.Content,
			Mood:        e.Mood,
		})
	}

	return doc
}

func parseOptionalDate(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, ok := dates.ParseDate(*s)
	if !ok {
		return nil
	}
	return &t
}

func formatOptionalDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := dates.FormatDate(*t)
	return &s
}

func parseTimestamp(s string, fallback time.Time) time.Time {
	if s == "" {
		return fallback
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fallback
	}
	return t.UTC()
}

func parseOptionalTimestamp(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, *s)
	if err != nil {
		return nil
	}
	u := t.UTC()
	return &u
}

func formatOptionalTimestamp(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := Timestamp(*t)
	return &s
}

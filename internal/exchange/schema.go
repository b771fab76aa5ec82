package exchange

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// SchemaVersion is the current export document version.
const SchemaVersion = 1

// Document is the top-level JSON structure for export and import.
type Document struct {
	Version        int               `json:"version"`
	ExportedAt     string            `json:"exported_at"`
	Tasks          []TaskRecord      `json:"tasks"`
	Projects       []ProjectRecord   `json:"projects"`
	Categories     []CategoryRecord  `json:"categories"`
	JournalEntries []JournalRecord   `json:"journal_entries"`
	Settings       map[string]string `json:"settings,omitempty"`
}

// TaskRecord is one task in the document. References (project_id,
// category_ids, parent_task_id, depends_on) use document-local ids and are
// remapped on import.
type TaskRecord struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description,omitempty"`
	Tags            []string `json:"tags,omitempty"`
	ProjectID       *string  `json:"project_id,omitempty"`
	CategoryIDs     []string `json:"category_ids,omitempty"`
	ParentTaskID    *string  `json:"parent_task_id,omitempty"`
	Priority        string   `json:"priority,omitempty"`
	Urgency         string   `json:"urgency,omitempty"`
	EmotionalWeight string   `json:"emotional_weight,omitempty"`
	EnergyRequired  string   `json:"energy_required,omitempty"`
	Importance      int      `json:"importance,omitempty"`
	EstimatedMin    float64  `json:"estimated_minutes,omitempty"`
	DueDate         *string  `json:"due_date,omitempty"`
	Completed       bool     `json:"completed,omitempty"`
	Archived        bool     `json:"archived,omitempty"`
	CompletedAt     *string  `json:"completed_at,omitempty"`
	DependsOn       []string `json:"depends_on,omitempty"`
	CreatedAt       string   `json:"created_at,omitempty"`
	UpdatedAt       string   `json:"updated_at,omitempty"`
}

// ProjectRecord is one project in the document.
type ProjectRecord struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
	Order *int   `json:"order,omitempty"`
}

// CategoryRecord is one category in the document.
type CategoryRecord struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// JournalRecord is one journal entry in the document.
type JournalRecord struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Section     string `json:"section"`
	PromptIndex int    `json:"prompt_index,omitempty"`
	Content     string `json:"content"`
	Mood        string `json:"mood,omitempty"`
}

// LoadDocument reads and parses an export JSON file.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing export file: %w", err)
	}
	return &doc, nil
}

// SaveDocument writes the document as indented JSON.
func SaveDocument(path string, doc *Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// Timestamp formats an export timestamp.
func Timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

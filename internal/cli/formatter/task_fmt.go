package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/mlindqvist/focal/internal/dates"
	"github.com/mlindqvist/focal/internal/domain"
	"github.com/mlindqvist/focal/internal/planner"
)

// FormatTaskList renders a styled task table inside a bordered box.
func FormatTaskList(tasks []*domain.Task, now time.Time) string {
	if len(tasks) == 0 {
		return Dim("No tasks. Add one with `focal task add`.")
	}

	headers := []string{"ID", "", "TITLE", "DUE", "PRIORITY", "ENERGY", "EST"}
	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		title := StyleFg.Render(t.Title)
		if t.Completed {
			title = StyleDim.Render(t.Title)
		}
		if t.ParentTaskID != nil {
			title = StyleDim.Render("↳ ") + title
		}
		rows = append(rows, []string{
			TruncID(t.ID),
			Checkbox(t),
			title,
			DueLabel(t.DueDate, now),
			PriorityPill(t.Priority),
			EnergyPill(t.EnergyRequired),
			StyleBlue.Render(FormatMinutes(t.EstimatedMin)),
		})
	}

	return RenderBox("Tasks", RenderTable(headers, rows))
}

// FormatTaskDetail renders a single task card with all metadata and relations.
func FormatTaskDetail(t *domain.Task, now time.Time) string {
	var b strings.Builder

	b.WriteString(Bold(t.Title))
	b.WriteString("  ")
	b.WriteString(Checkbox(t))
	b.WriteString("\n")
	b.WriteString(Dim(t.ID))
	b.WriteString("\n\n")

	if t.Description != "" {
		b.WriteString(StyleFg.Render(t.Description))
		b.WriteString("\n\n")
	}

	writeField := func(label, value string) {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim(label+":"), value))
	}

	writeField("Due", DueLabel(t.DueDate, now))
	writeField("Priority", PriorityPill(t.Priority))
	writeField("Urgency", UrgencyPill(t.Urgency))
	writeField("Emotional", EmotionPill(t.EmotionalWeight))
	writeField("Energy", EnergyPill(t.EnergyRequired))
	if t.Importance > 0 {
		writeField("Importance", StyleFg.Render(fmt.Sprintf("%d/10", t.Importance)))
	}
	writeField("Estimate", StyleBlue.Render(FormatMinutes(t.EstimatedMin)))
	if len(t.Tags) > 0 {
		writeField("Tags", StylePurple.Render(strings.Join(t.Tags, ", ")))
	}
	if t.ProjectID != nil {
		writeField("Project", TruncID(*t.ProjectID))
	}
	if t.ParentTaskID != nil {
		writeField("Parent", TruncID(*t.ParentTaskID))
	}
	if len(t.SubtaskIDs) > 0 {
		writeField("Subtasks", Dim(fmt.Sprintf("%d", len(t.SubtaskIDs))))
	}
	if len(t.DependsOn) > 0 {
		short := make([]string, len(t.DependsOn))
		for i, id := range t.DependsOn {
			short[i] = TruncID(id)
		}
		writeField("Blocked by", strings.Join(short, ", "))
	}
	if len(t.DependedOnBy) > 0 {
		short := make([]string, len(t.DependedOnBy))
		for i, id := range t.DependedOnBy {
			short[i] = TruncID(id)
		}
		writeField("Blocks", strings.Join(short, ", "))
	}

	return RenderBox("Task", b.String())
}

// FormatFocusList renders a numbered, prioritized task list for a focus session.
func FormatFocusList(tasks []*domain.Task, mode domain.SortMode, now time.Time) string {
	var b strings.Builder

	b.WriteString(StylePurple.Render(fmt.Sprintf("MODE: %s", strings.ToUpper(string(mode)))))
	b.WriteString("\n\n")

	if len(tasks) == 0 {
		b.WriteString(Dim("Nothing to focus on. Enjoy the quiet."))
		b.WriteString("\n")
		return RenderBox("Focus", b.String())
	}

	for i, t := range tasks {
		titleLine := fmt.Sprintf(
			"%s %s  %s  %s",
			Bold(fmt.Sprintf("%d.", i+1)),
			StyleFg.Render(t.Title),
			StyleBlue.Render(fmt.Sprintf("(%s)", FormatMinutes(t.EstimatedMin))),
			PriorityPill(t.Priority),
		)
		b.WriteString(titleLine + "\n")

		if t.DueDate != nil {
			b.WriteString(fmt.Sprintf("   %s %s\n", Dim("Due:"), DueLabel(t.DueDate, now)))
		}
		if mode == domain.SortSmart {
			b.WriteString(fmt.Sprintf("   %s\n", Dim(fmt.Sprintf("Score: %.1f", planner.Score(t, now)))))
		}
		if t.EstimatedMin > 0 && !dates.FitsInRemainingDay(t.EstimatedMin, now, dates.DefaultDayEndHour) {
			b.WriteString(fmt.Sprintf("   %s\n", StyleYellow.Render("Won't fit before the day winds down")))
		}
		if len(t.DependsOn) > 0 {
			b.WriteString(fmt.Sprintf("   %s\n", StyleYellow.Render(fmt.Sprintf("Blocked by %d open task(s)", len(t.DependsOn)))))
		}
		if i < len(tasks)-1 {
			b.WriteString("\n")
		}
	}

	return RenderBox("Focus", b.String())
}

// FormatCompleteness renders the metadata-completeness nudge for a task.
func FormatCompleteness(t *domain.Task, c planner.Completeness) string {
	var b strings.Builder

	b.WriteString(Bold(t.Title))
	b.WriteString("\n\n")

	scoreStyle := StyleGreen
	if c.Score < 50 {
		scoreStyle = StyleRed
	} else if c.Score < 80 {
		scoreStyle = StyleYellow
	}
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Completeness:"), scoreStyle.Render(fmt.Sprintf("%.0f%%", c.Score))))

	if len(c.MissingFields) == 0 {
		b.WriteString(StyleGreen.Render("All planning fields are filled in."))
		b.WriteString("\n")
	} else {
		b.WriteString(Dim("Missing:"))
		b.WriteString("\n")
		for _, f := range c.MissingFields {
			marker := StyleDim.Render("○")
			if planner.CriticalField(f) {
				marker = StyleRed.Render("●")
			}
			b.WriteString(fmt.Sprintf("  %s %s\n", marker, StyleFg.Render(f)))
		}
	}

	return RenderBox("Completeness", b.String())
}

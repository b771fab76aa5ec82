package formatter

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/mlindqvist/focal/internal/breakdown"
	"github.com/mlindqvist/focal/internal/dates"
	"github.com/mlindqvist/focal/internal/domain"
)

// FormatProjectList renders projects in manual order, then by name.
func FormatProjectList(projects []*domain.Project) string {
	if len(projects) == 0 {
		return Dim("No projects.")
	}

	ordered := make([]*domain.Project, len(projects))
	copy(ordered, projects)
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		switch {
		case a.Order != nil && b.Order != nil:
			return *a.Order < *b.Order
		case a.Order != nil:
			return true
		case b.Order != nil:
			return false
		default:
			return a.Name < b.Name
		}
	})

	headers := []string{"ID", "NAME", "COLOR"}
	rows := make([][]string, 0, len(ordered))
	for _, p := range ordered {
		swatch := Dim("--")
		if p.Color != "" {
			swatch = EntityColor(p.Color).Render("■ " + p.Color)
		}
		rows = append(rows, []string{TruncID(p.ID), Bold(p.Name), swatch})
	}

	return RenderBox("Projects", RenderTable(headers, rows))
}

// FormatCategoryList renders categories alphabetically.
func FormatCategoryList(categories []*domain.Category) string {
	if len(categories) == 0 {
		return Dim("No categories.")
	}

	ordered := make([]*domain.Category, len(categories))
	copy(ordered, categories)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Name < ordered[j].Name })

	headers := []string{"ID", "NAME", "COLOR"}
	rows := make([][]string, 0, len(ordered))
	for _, c := range ordered {
		swatch := Dim("--")
		if c.Color != "" {
			swatch = EntityColor(c.Color).Render("■ " + c.Color)
		}
		rows = append(rows, []string{TruncID(c.ID), Bold(c.Name), swatch})
	}

	return RenderBox("Categories", RenderTable(headers, rows))
}

// FormatJournalWeek renders one week of journal entries grouped by section.
func FormatJournalWeek(year, week int, entries []*domain.JournalEntry) string {
	var b strings.Builder

	b.WriteString(StylePurple.Render(fmt.Sprintf("WEEK %d, %d", week, year)))
	b.WriteString("\n\n")

	if len(entries) == 0 {
		b.WriteString(Dim("No entries this week."))
		b.WriteString("\n")
		return RenderBox("Journal", b.String())
	}

	bySection := make(map[domain.JournalSection][]*domain.JournalEntry)
	for _, e := range entries {
		bySection[e.Section] = append(bySection[e.Section], e)
	}

	first := true
	for _, section := range domain.JournalSectionOrder {
		group := bySection[section]
		if len(group) == 0 {
			continue
		}
		if !first {
			b.WriteString("\n")
		}
		first = false

		b.WriteString(StyleHeader.Render(strings.ToUpper(string(section))))
		b.WriteString("\n")
		for _, e := range group {
			line := fmt.Sprintf("  %s %s", Dim(dates.FormatDate(e.Date)), StyleFg.Render(e.Content))
			if e.Mood != "" {
				line += "  " + StylePurple.Render("["+e.Mood+"]")
			}
			b.WriteString(line + "\n")
		}
	}

	return RenderBox("Journal", b.String())
}

// FormatSteps renders a task breakdown as a numbered checklist.
func FormatSteps(task *domain.Task, steps []breakdown.Step) string {
	var b strings.Builder

	b.WriteString(Bold(task.Title))
	b.WriteString("\n\n")

	total := 0
	for i, s := range steps {
		b.WriteString(fmt.Sprintf(
			"%s %s  %s\n",
			Bold(fmt.Sprintf("%d.", i+1)),
			StyleFg.Render(s.Title),
			StyleBlue.Render("("+s.DurationLabel+")"),
		))
		if s.Description != "" {
			b.WriteString(fmt.Sprintf("   %s\n", Dim(s.Description)))
		}
		if s.Tip != "" {
			b.WriteString(fmt.Sprintf("   %s %s\n", StyleYellow.Render("TIP:"), Dim(s.Tip)))
		}
		total += breakdown.DurationMinutes(s.DurationLabel)
		if i < len(steps)-1 {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(StyleGreen.Render(fmt.Sprintf("Total: %s", FormatMinutes(float64(total)))))
	b.WriteString("\n")

	return RenderBox("Breakdown", b.String())
}

// FormatDayBudget renders how much productive time remains today.
func FormatDayBudget(now time.Time, endHour int) string {
	remaining := dates.RemainingProductiveMinutes(now, endHour)
	if remaining <= 0 {
		return Dim("The productive day is over. Rest up.")
	}
	return Dim(fmt.Sprintf("%s left before %d:00", FormatMinutes(float64(remaining)), endHour))
}

package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/mlindqvist/focal/internal/domain"
	"github.com/stretchr/testify/assert"
)

func intPtr(n int) *int { return &n }

func TestFormatProjectList_HonorsManualOrder(t *testing.T) {
	projects := []*domain.Project{
		{ID: "a", Name: "Zeta", Order: intPtr(1)},
		{ID: "b", Name: "Alpha"},
		{ID: "c", Name: "Midway", Order: intPtr(2)},
	}

	out := FormatProjectList(projects)
	zeta := indexOf(out, "Zeta")
	midway := indexOf(out, "Midway")
	alpha := indexOf(out, "Alpha")
	assert.True(t, zeta < midway, "ordered projects come first")
	assert.True(t, midway < alpha, "unordered projects sort after ordered ones")
}

func TestFormatProjectList_ShowsColorSwatch(t *testing.T) {
	out := FormatProjectList([]*domain.Project{{ID: "a", Name: "Home", Color: "#8ec07c"}})
	assert.Contains(t, out, "#8ec07c")
}

func TestFormatCategoryList_SortsByName(t *testing.T) {
	out := FormatCategoryList([]*domain.Category{
		{ID: "a", Name: "Work"},
		{ID: "b", Name: "Errands"},
	})
	assert.True(t, indexOf(out, "Errands") < indexOf(out, "Work"))
}

func TestFormatJournalWeek_GroupsBySection(t *testing.T) {
	date := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)
	entries := []*domain.JournalEntry{
		{ID: "1", Date: date, Section: domain.SectionChallenges, Content: "Too many meetings"},
		{ID: "2", Date: date, Section: domain.SectionWins, Content: "Shipped the release", Mood: "proud"},
	}

	out := FormatJournalWeek(2025, 24, entries)
	assert.Contains(t, out, "WEEK 24, 2025")
	assert.Contains(t, out, "WINS")
	assert.Contains(t, out, "CHALLENGES")
	assert.Contains(t, out, "[proud]")
	assert.True(t, indexOf(out, "Shipped the release") < indexOf(out, "Too many meetings"),
		"wins render before challenges")
}

func TestFormatJournalWeek_Empty(t *testing.T) {
	out := FormatJournalWeek(2025, 24, nil)
	assert.Contains(t, out, "No entries this week")
}

func indexOf(s, sub string) int {
	return strings.Index(s, sub)
}

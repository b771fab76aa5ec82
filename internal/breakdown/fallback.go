package breakdown

import (
	"strings"

	"github.com/mlindqvist/focal/internal/domain"
)

type fallbackPattern struct {
	keywords []string
	steps    []Step
}

// Pattern order matters: the first keyword hit wins.
var fallbackPatterns = []fallbackPattern{
	{
		keywords: []string{"write", "draft", "essay", "report", "blog"},
		steps: []Step{
			{Title: "Open a blank document and write one sentence", DurationLabel: "5 min", Kind: "prep", Energy: "low",
				Description: "Any sentence counts. The goal is a non-empty page.",
				Tip:         "Do not edit yet, just get words down."},
			{Title: "List the main points as bullets", DurationLabel: "10 min", Kind: "prep", Energy: "medium",
				Description: "Three to five bullets covering what the piece must say.",
				Tip:         "Ugly bullets are fine, order them later."},
			{Title: "Turn each bullet into a rough paragraph", DurationLabel: "25 min", Kind: "work", Energy: "high",
				Description: "Expand the bullets without worrying about style.",
				Tip:         "Set a timer and stop when it rings."},
			{Title: "Read it once and fix the worst spots", DurationLabel: "10 min", Kind: "review", Energy: "medium",
				Description: "One pass for clarity, not perfection.",
				Tip:         "Reading aloud catches the clunky sentences."},
		},
	},
	{
		keywords: []string{"clean", "tidy", "declutter", "organize"},
		steps: []Step{
			{Title: "Set a timer and clear one surface", DurationLabel: "5 min", Kind: "prep", Energy: "low",
				Description: "Pick the most visible surface and clear just that.",
				Tip:         "One surface only, ignore the rest for now."},
			{Title: "Gather everything that belongs elsewhere into a box", DurationLabel: "10 min", Kind: "work", Energy: "medium",
				Description: "Do not deliver anything yet, just collect.",
				Tip:         "A box keeps you from wandering between rooms."},
			{Title: "Deliver the box contents to their homes", DurationLabel: "10 min", Kind: "work", Energy: "medium",
				Description: "One trip per room, quickest items first.",
				Tip:         "If something has no home, it goes in a donate pile."},
			{Title: "Do a final sweep of the floor", DurationLabel: "5 min", Kind: "review", Energy: "low",
				Description: "Quick vacuum or sweep to lock in the win.",
				Tip:         "Take a before/after photo for the dopamine."},
		},
	},
	{
		keywords: []string{"study", "learn", "read", "review", "revise"},
		steps: []Step{
			{Title: "Lay out the material and skim the headings", DurationLabel: "5 min", Kind: "prep", Energy: "low",
				Description: "Know the shape of what you are covering before diving in.",
				Tip:         "Phone in another room."},
			{Title: "Work through one section, notes in your own words", DurationLabel: "25 min", Kind: "work", Energy: "high",
				Description: "Summarize as you go instead of re-reading.",
				Tip:         "If a sentence will not stick, say it out loud."},
			{Title: "Quiz yourself on what you just covered", DurationLabel: "10 min", Kind: "review", Energy: "medium",
				Description: "Close the material and recall the key points cold.",
				Tip:         "Recall beats re-reading every time."},
		},
	},
	{
		keywords: []string{"call", "email", "contact", "message", "reply"},
		steps: []Step{
			{Title: "Write down the one thing you need from this contact", DurationLabel: "2 min", Kind: "prep", Energy: "low",
				Description: "One sentence stating the outcome you want.",
				Tip:         "Having it written stops mid-call rambling."},
			{Title: "Draft your opening line", DurationLabel: "3 min", Kind: "prep", Energy: "low",
				Description: "The first sentence is the hard part, script it.",
				Tip:         "Keep it to one breath."},
			{Title: "Make the call or send the message", DurationLabel: "10 min", Kind: "work", Energy: "medium",
				Description: "Do it right now, before the dread rebuilds.",
				Tip:         "Standing up while calling helps momentum."},
			{Title: "Note what was agreed and any follow-up", DurationLabel: "5 min", Kind: "review", Energy: "low",
				Description: "Two lines, while it is fresh.",
				Tip:         "Add follow-ups as new tasks immediately."},
		},
	},
	{
		keywords: []string{"plan", "schedule", "prepare", "research"},
		steps: []Step{
			{Title: "Write the goal at the top of a page", DurationLabel: "2 min", Kind: "prep", Energy: "low",
				Description: "One line describing what done looks like.",
				Tip:         "If you cannot state the goal, that is the first problem to solve."},
			{Title: "Brain-dump everything that needs to happen", DurationLabel: "10 min", Kind: "work", Energy: "medium",
				Description: "Unordered list, no filtering.",
				Tip:         "Quantity over quality, prune later."},
			{Title: "Pick the first three items and give them dates", DurationLabel: "10 min", Kind: "work", Energy: "medium",
				Description: "Only the next three steps need scheduling.",
				Tip:         "Everything else stays on the dump list."},
		},
	},
}

// defaultFallbackSteps covers titles no pattern matches.
var defaultFallbackSteps = []Step{
	{Title: "Set up: gather what this task needs", DurationLabel: "5 min", Kind: "prep", Energy: "low",
		Description: "Tools, tabs, documents, whatever the task takes.",
		Tip:         "Starting with setup counts as starting."},
	{Title: "Do the first small piece", DurationLabel: "15 min", Kind: "work", Energy: "medium",
		Description: "Pick the smallest piece that shows visible progress.",
		Tip:         "Momentum matters more than picking the right piece."},
	{Title: "Keep going or book the next session", DurationLabel: "15 min", Kind: "work", Energy: "medium",
		Description: "Continue while it flows; otherwise schedule the next chunk.",
		Tip:         "Stopping on purpose beats fading out."},
	{Title: "Tidy the loose ends and mark progress", DurationLabel: "5 min", Kind: "review", Energy: "low",
		Description: "Note where you stopped so restarting is cheap.",
		Tip:         "Future you will thank present you."},
}

// FallbackSteps returns a deterministic breakdown based on keywords in the
// task title. budgetMin caps the list: steps are included in order while
// they fit, keeping at least the first step.
func FallbackSteps(task *domain.Task, budgetMin int) []Step {
	title := strings.ToLower(task.Title)

	steps := defaultFallbackSteps
	for _, p := range fallbackPatterns {
		if matchesAny(title, p.keywords) {
			steps = p.steps
			break
		}
	}

	if budgetMin <= 0 {
		return cloneSteps(steps)
	}

	var fit []Step
	remaining := budgetMin
	for _, step := range steps {
		cost := DurationMinutes(step.DurationLabel)
		if len(fit) > 0 && cost > remaining {
			break
		}
		fit = append(fit, step)
		remaining -= cost
	}
	return fit
}

func matchesAny(title string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(title, kw) {
			return true
		}
	}
	return false
}

func cloneSteps(steps []Step) []Step {
	out := make([]Step, len(steps))
	copy(out, steps)
	return out
}

// DurationMinutes parses labels like "10 min"; unparseable labels count as 0.
func DurationMinutes(label string) int {
	fields := strings.Fields(label)
	if len(fields) == 0 {
		return 0
	}
	n := 0
	for _, c := range fields[0] {
		if c < '0' || c > '9' {
			return 0
		}
		n = n*10 + int(c-'0')
	}
	return n
}

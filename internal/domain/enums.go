package domain

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

type Urgency string

const (
	UrgencyToday    Urgency = "today"
	UrgencyTomorrow Urgency = "tomorrow"
	UrgencyWeek     Urgency = "week"
	UrgencyMonth    Urgency = "month"
	UrgencySomeday  Urgency = "someday"
)

type EmotionalWeight string

const (
	EmotionalEasy      EmotionalWeight = "easy"
	EmotionalNeutral   EmotionalWeight = "neutral"
	EmotionalStressful EmotionalWeight = "stressful"
	EmotionalDreading  EmotionalWeight = "dreading"
)

type EnergyLevel string

const (
	EnergyLow    EnergyLevel = "low"
	EnergyMedium EnergyLevel = "medium"
	EnergyHigh   EnergyLevel = "high"
)

// ValidPriorities is the canonical set of accepted priority strings.
var ValidPriorities = map[string]bool{
	"low": true, "medium": true, "high": true,
}

// ValidUrgencies is the canonical set of accepted urgency strings.
var ValidUrgencies = map[string]bool{
	"today": true, "tomorrow": true, "week": true, "month": true, "someday": true,
}

// ValidEmotionalWeights is the canonical set of accepted emotional weight strings.
var ValidEmotionalWeights = map[string]bool{
	"easy": true, "neutral": true, "stressful": true, "dreading": true,
}

// ValidEnergyLevels is the canonical set of accepted energy level strings.
var ValidEnergyLevels = map[string]bool{
	"low": true, "medium": true, "high": true,
}

type SortMode string

const (
	SortSmart       SortMode = "smart"
	SortEnergyMatch SortMode = "energymatch"
	SortQuickWins   SortMode = "quickwins"
	SortEatTheFrog  SortMode = "eatthefrog"
	SortDeadline    SortMode = "deadline"
	SortPriority    SortMode = "priority"
)

// ValidSortModes is the canonical set of accepted sort mode strings.
var ValidSortModes = map[string]bool{
	"smart": true, "energymatch": true, "quickwins": true,
	"eatthefrog": true, "deadline": true, "priority": true,
}

type JournalSection string

const (
	SectionWins       JournalSection = "wins"
	SectionChallenges JournalSection = "challenges"
	SectionGratitude  JournalSection = "gratitude"
	SectionNextWeek   JournalSection = "nextweek"
	SectionFreeform   JournalSection = "freeform"
)

// ValidJournalSections is the canonical set of weekly-review section tags.
var ValidJournalSections = map[string]bool{
	"wins": true, "challenges": true, "gratitude": true,
	"nextweek": true, "freeform": true,
}

// JournalSectionOrder is the display order for weekly-review sections.
var JournalSectionOrder = []JournalSection{
	SectionWins, SectionChallenges, SectionGratitude, SectionNextWeek, SectionFreeform,
}

// PriorityRank maps a priority to its scoring ordinal. Unset defaults to medium.
func PriorityRank(p Priority) float64 {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityLow:
		return 1
	default:
		return 2
	}
}

// UrgencyRank maps an urgency to its scoring ordinal. Unset defaults to month.
// Tomorrow sits between today and week so the ranking stays strictly monotonic.
func UrgencyRank(u Urgency) float64 {
	switch u {
	case UrgencyToday:
		return 4
	case UrgencyTomorrow:
		return 3.5
	case UrgencyWeek:
		return 3
	case UrgencySomeday:
		return 1
	default:
		return 2
	}
}

// EmotionalRank maps an emotional weight to its ordinal (easy=1 .. dreading=4).
// Unset defaults to neutral.
func EmotionalRank(w EmotionalWeight) float64 {
	switch w {
	case EmotionalEasy:
		return 1
	case EmotionalStressful:
		return 3
	case EmotionalDreading:
		return 4
	default:
		return 2
	}
}

// EnergyRank maps an energy level to its scoring ordinal (low=1, medium=2, high=3).
// Unset defaults to medium.
func EnergyRank(e EnergyLevel) float64 {
	switch e {
	case EnergyLow:
		return 1
	case EnergyHigh:
		return 3
	default:
		return 2
	}
}

// EnergyMatchRank maps an energy level to the zero-based ordinal used by the
// energy-match filter (low=0, medium=1, high=2). Unset defaults to medium.
func EnergyMatchRank(e EnergyLevel) int {
	switch e {
	case EnergyLow:
		return 0
	case EnergyHigh:
		return 2
	default:
		return 1
	}
}

package dates

import (
	"fmt"
	"time"
)

// DueState classifies how a due date relates to now at day granularity.
type DueState string

const (
	DueOverdue DueState = "overdue"
	DueToday   DueState = "today"
	DueSoon    DueState = "soon" // within the next 7 days
	DueLater   DueState = "later"
)

// DueUrgency classifies a due date against now.
func DueUrgency(due, now time.Time) DueState {
	diff := DaysBetween(now, due)
	switch {
	case diff < 0:
		return DueOverdue
	case diff == 0:
		return DueToday
	case diff <= 7:
		return DueSoon
	default:
		return DueLater
	}
}

// RelativeLabel renders a date as the coarsest human label that stays
// unambiguous relative to now: day names within the week, then weeks, then
// months. Mirrored for past dates.
func RelativeLabel(d, now time.Time) string {
	diff := DaysBetween(now, d)
	switch {
	case diff == 0:
		return "Today"
	case diff == 1:
		return "Tomorrow"
	case diff == -1:
		return "Yesterday"
	case diff > 1 && diff <= 6:
		return "This " + d.Weekday().String()
	case diff > 6 && diff <= 13:
		return "Next week"
	case diff > 13 && diff <= 30:
		return fmt.Sprintf("In %d weeks", roundDiv(diff, 7))
	case diff > 30:
		return fmt.Sprintf("In %d months", roundDiv(diff, 30))
	case diff < -1 && diff >= -6:
		return fmt.Sprintf("%d days ago", -diff)
	case diff < -6 && diff >= -13:
		return "Last week"
	case diff < -13 && diff >= -30:
		return fmt.Sprintf("%d weeks ago", roundDiv(-diff, 7))
	default:
		return fmt.Sprintf("%d months ago", roundDiv(-diff, 30))
	}
}

// WeekendRelativeLabel is a variant of RelativeLabel that anchors far-out
// dates to weekends instead of week counts, which reads more concretely for
// planning ("Monday after this weekend" rather than "In 9 days"). Dates within
// the next six days, and all past dates, fall back to RelativeLabel.
func WeekendRelativeLabel(d, now time.Time) string {
	diff := DaysBetween(now, d)
	if diff <= 6 {
		return RelativeLabel(d, now)
	}

	offset := DaysBetween(weekSaturday(now), weekSaturday(d)) / 7
	onWeekend := d.Weekday() == time.Saturday || d.Weekday() == time.Sunday

	if onWeekend {
		switch offset {
		case 0:
			return "This weekend"
		case 1:
			return "Next weekend"
		default:
			return fmt.Sprintf("In %d weekends", offset)
		}
	}

	switch offset {
	case 1:
		return d.Weekday().String() + " after this weekend"
	case 2:
		return d.Weekday().String() + " after next weekend"
	default:
		return fmt.Sprintf("%s, %d weekends away", d.Weekday(), offset)
	}
}

// weekSaturday returns the Saturday of the Monday-to-Sunday week containing d.
func weekSaturday(d time.Time) time.Time {
	day := DayOf(d)
	// Monday-based index: Monday=0 .. Sunday=6.
	idx := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, 5-idx)
}

func roundDiv(n, div int) int {
	return (n + div/2) / div
}

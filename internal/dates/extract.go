package dates

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// The inline date grammar. Each pattern is tried independently against the
// input text; the first one that produces a valid date wins and its matched
// substring is stripped, so task titles can embed a date phrase inline
// ("call mom tomorrow" -> title "call mom", due tomorrow).
var (
	relativeWordRe = regexp.MustCompile(`(?i)\b(today|tomorrow|yesterday)\b`)
	nextWeekdayRe  = regexp.MustCompile(`(?i)\bnext\s+(monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`)
	inAmountRe     = regexp.MustCompile(`(?i)\bin\s+(\d+)\s+(day|week|month)s?\b`)
	shorthandRe    = regexp.MustCompile(`(?i)\b(\d+)(d|w|m)\b`)
	byMonthRe      = regexp.MustCompile(`(?i)\bby\s+(january|february|march|april|may|june|july|august|september|october|november|december|jan|feb|mar|apr|jun|jul|aug|sep|oct|nov|dec)(?:\s+(\d{1,2}))?\b`)
	endOfMonthRe   = regexp.MustCompile(`(?i)\b(?:end of (?:the )?month|eom)\b`)
	monthDayRe     = regexp.MustCompile(`(?i)\b(january|february|march|april|may|june|july|august|september|october|november|december|jan|feb|mar|apr|jun|jul|aug|sep|oct|nov|dec)\s+(\d{1,2})(?:st|nd|rd|th)?\b`)
	numericDateRe  = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})\b`)

	spacesRe = regexp.MustCompile(`\s+`)
)

var monthsByName = map[string]time.Month{
	"january": time.January, "jan": time.January,
	"february": time.February, "feb": time.February,
	"march": time.March, "mar": time.March,
	"april": time.April, "apr": time.April,
	"may": time.May,
	"june": time.June, "jun": time.June,
	"july": time.July, "jul": time.July,
	"august": time.August, "aug": time.August,
	"september": time.September, "sep": time.September,
	"october": time.October, "oct": time.October,
	"november": time.November, "nov": time.November,
	"december": time.December, "dec": time.December,
}

var weekdaysByName = map[string]time.Weekday{
	"monday": time.Monday, "tuesday": time.Tuesday, "wednesday": time.Wednesday,
	"thursday": time.Thursday, "friday": time.Friday,
	"saturday": time.Saturday, "sunday": time.Sunday,
}

type extractor func(text string, now time.Time) (loc []int, d time.Time, ok bool)

// ExtractDateFromText scans free text for the first date phrase in the fixed
// grammar and returns the text with that phrase removed plus the resolved
// calendar date. ok is false when no pattern matches.
func ExtractDateFromText(text string, now time.Time) (cleaned string, d time.Time, ok bool) {
	extractors := []extractor{
		extractRelativeWord,
		extractNextWeekday,
		extractInAmount,
		extractShorthand,
		extractByMonth,
		extractEndOfMonth,
		extractMonthDay,
		extractNumericDate,
	}

	for _, ex := range extractors {
		loc, d, ok := ex(text, now)
		if !ok {
			continue
		}
		cleaned := text[:loc[0]] + " " + text[loc[1]:]
		cleaned = strings.TrimSpace(spacesRe.ReplaceAllString(cleaned, " "))
		return cleaned, DayOf(d), true
	}
	return text, time.Time{}, false
}

func extractRelativeWord(text string, now time.Time) ([]int, time.Time, bool) {
	loc := relativeWordRe.FindStringSubmatchIndex(text)
	if loc == nil {
		return nil, time.Time{}, false
	}
	word := strings.ToLower(text[loc[2]:loc[3]])
	today := DayOf(now)
	switch word {
	case "today":
		return loc[:2], today, true
	case "tomorrow":
		return loc[:2], today.AddDate(0, 0, 1), true
	default: // yesterday
		return loc[:2], today.AddDate(0, 0, -1), true
	}
}

func extractNextWeekday(text string, now time.Time) ([]int, time.Time, bool) {
	loc := nextWeekdayRe.FindStringSubmatchIndex(text)
	if loc == nil {
		return nil, time.Time{}, false
	}
	wd := weekdaysByName[strings.ToLower(text[loc[2]:loc[3]])]
	ahead := (int(wd) - int(now.Weekday()) + 7) % 7
	if ahead == 0 {
		ahead = 7
	}
	return loc[:2], DayOf(now).AddDate(0, 0, ahead), true
}

func extractInAmount(text string, now time.Time) ([]int, time.Time, bool) {
	loc := inAmountRe.FindStringSubmatchIndex(text)
	if loc == nil {
		return nil, time.Time{}, false
	}
	n, err := strconv.Atoi(text[loc[2]:loc[3]])
	if err != nil {
		return nil, time.Time{}, false
	}
	unit := strings.ToLower(text[loc[4]:loc[5]])
	return loc[:2], addAmount(DayOf(now), n, unit), true
}

func extractShorthand(text string, now time.Time) ([]int, time.Time, bool) {
	loc := shorthandRe.FindStringSubmatchIndex(text)
	if loc == nil {
		return nil, time.Time{}, false
	}
	n, err := strconv.Atoi(text[loc[2]:loc[3]])
	if err != nil {
		return nil, time.Time{}, false
	}
	var unit string
	switch strings.ToLower(text[loc[4]:loc[5]]) {
	case "d":
		unit = "day"
	case "w":
		unit = "week"
	default:
		unit = "month"
	}
	return loc[:2], addAmount(DayOf(now), n, unit), true
}

func extractByMonth(text string, now time.Time) ([]int, time.Time, bool) {
	loc := byMonthRe.FindStringSubmatchIndex(text)
	if loc == nil {
		return nil, time.Time{}, false
	}
	month := monthsByName[strings.ToLower(text[loc[2]:loc[3]])]
	day := 1
	if loc[4] != -1 {
		n, err := strconv.Atoi(text[loc[4]:loc[5]])
		if err != nil {
			return nil, time.Time{}, false
		}
		day = n
	}
	d, ok := resolveMonthDay(month, day, now)
	if !ok {
		return nil, time.Time{}, false
	}
	return loc[:2], d, true
}

func extractEndOfMonth(text string, now time.Time) ([]int, time.Time, bool) {
	loc := endOfMonthRe.FindStringIndex(text)
	if loc == nil {
		return nil, time.Time{}, false
	}
	firstOfNext := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, 1, 0)
	return loc, firstOfNext.AddDate(0, 0, -1), true
}

func extractMonthDay(text string, now time.Time) ([]int, time.Time, bool) {
	loc := monthDayRe.FindStringSubmatchIndex(text)
	if loc == nil {
		return nil, time.Time{}, false
	}
	month := monthsByName[strings.ToLower(text[loc[2]:loc[3]])]
	day, err := strconv.Atoi(text[loc[4]:loc[5]])
	if err != nil {
		return nil, time.Time{}, false
	}
	d, ok := resolveMonthDay(month, day, now)
	if !ok {
		return nil, time.Time{}, false
	}
	return loc[:2], d, true
}

func extractNumericDate(text string, now time.Time) ([]int, time.Time, bool) {
	loc := numericDateRe.FindStringSubmatchIndex(text)
	if loc == nil {
		return nil, time.Time{}, false
	}
	m, err1 := strconv.Atoi(text[loc[2]:loc[3]])
	day, err2 := strconv.Atoi(text[loc[4]:loc[5]])
	if err1 != nil || err2 != nil || m < 1 || m > 12 {
		return nil, time.Time{}, false
	}
	d, ok := resolveMonthDay(time.Month(m), day, now)
	if !ok {
		return nil, time.Time{}, false
	}
	return loc[:2], d, true
}

// resolveMonthDay resolves a month/day pair to the next occurrence at or after
// today, rolling the year forward when the date has already passed. Invalid
// calendar dates (Feb 30) are rejected rather than rolled over.
func resolveMonthDay(month time.Month, day int, now time.Time) (time.Time, bool) {
	if !ValidCalendarDate(now.Year(), month, day) {
		return time.Time{}, false
	}
	d := time.Date(now.Year(), month, day, 0, 0, 0, 0, now.Location())
	if IsPastDate(d, now) {
		if !ValidCalendarDate(now.Year()+1, month, day) {
			return time.Time{}, false
		}
		d = time.Date(now.Year()+1, month, day, 0, 0, 0, 0, now.Location())
	}
	return d, true
}

func addAmount(today time.Time, n int, unit string) time.Time {
	switch unit {
	case "day":
		return today.AddDate(0, 0, n)
	case "week":
		return today.AddDate(0, 0, n*7)
	default: // month
		return today.AddDate(0, n, 0)
	}
}

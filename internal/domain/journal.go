package domain

import "time"

type JournalEntry struct {
	ID          string
	UserID      string
	Date        time.Time // calendar date of the entry
	Week        int       // ISO week bucket
	Year        int
	Section     JournalSection
	PromptIndex int
	Content     string
	Mood        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// BucketFor returns the ISO week/year bucket for a date.
func BucketFor(d time.Time) (week, year int) {
	year, week = d.ISOWeek()
	return week, year
}

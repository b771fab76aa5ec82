package dates

import "time"

// DefaultDayEndHour is when the productive day is assumed to wind down.
const DefaultDayEndHour = 22

// RemainingProductiveMinutes returns how many whole minutes are left between
// now and endHour o'clock today. Returns 0 once the hour has passed.
func RemainingProductiveMinutes(now time.Time, endHour int) int {
	end := time.Date(now.Year(), now.Month(), now.Day(), endHour, 0, 0, 0, now.Location())
	if !now.Before(end) {
		return 0
	}
	return int(end.Sub(now).Minutes())
}

// FitsInRemainingDay reports whether a task estimate fits before the day winds
// down. Zero estimates always fit.
func FitsInRemainingDay(estimatedMin float64, now time.Time, endHour int) bool {
	if estimatedMin <= 0 {
		return true
	}
	return estimatedMin <= float64(RemainingProductiveMinutes(now, endHour))
}

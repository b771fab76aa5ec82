package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate_Canonical(t *testing.T) {
	d, ok := ParseDate("2025-06-10")
	assert.True(t, ok)
	assert.Equal(t, 2025, d.Year())
	assert.Equal(t, time.June, d.Month())
	assert.Equal(t, 10, d.Day())
}

func TestParseDate_RFC3339(t *testing.T) {
	d, ok := ParseDate("2025-06-10T15:04:05Z")
	assert.True(t, ok)
	assert.Equal(t, "2025-06-10", FormatDate(d))
}

func TestParseDate_Invalid(t *testing.T) {
	for _, s := range []string{"", "not a date", "2025-13-01", "2025-02-30", "10/06/2025"} {
		_, ok := ParseDate(s)
		assert.False(t, ok, "input %q should not parse", s)
	}
}

func TestParseDate_RoundTrip(t *testing.T) {
	for _, s := range []string{"2025-01-01", "2024-02-29", "2025-12-31", "2025-06-10"} {
		d, ok := ParseDate(s)
		assert.True(t, ok)
		assert.Equal(t, s, FormatDate(d))
	}
}

func TestDaysBetween(t *testing.T) {
	a := time.Date(2025, 6, 10, 23, 59, 0, 0, time.UTC)
	b := time.Date(2025, 6, 12, 0, 1, 0, 0, time.UTC)
	assert.Equal(t, 2, DaysBetween(a, b), "comparison is by calendar day, not wall clock")
	assert.Equal(t, -2, DaysBetween(b, a))
	assert.Equal(t, 0, DaysBetween(a, a))
}

func TestDaysBetween_MixedLocations(t *testing.T) {
	// Due dates are stored at UTC midnight while now comes from the local
	// clock; the diff must be by calendar fields, never instant arithmetic.
	west := time.FixedZone("UTC-5", -5*3600)
	east := time.FixedZone("UTC+9", 9*3600)

	now := time.Date(2025, 6, 10, 20, 0, 0, 0, west)
	tomorrow := time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 1, DaysBetween(now, tomorrow))

	nowEast := time.Date(2025, 6, 10, 3, 0, 0, 0, east)
	yesterday := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, -1, DaysBetween(nowEast, yesterday))
	assert.True(t, IsPastDate(yesterday, nowEast))
	assert.True(t, IsFutureDate(tomorrow, now))
}

func TestDayRelations(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	assert.True(t, IsToday(time.Date(2025, 6, 10, 1, 0, 0, 0, time.UTC), now))
	assert.True(t, IsPastDate(time.Date(2025, 6, 9, 23, 0, 0, 0, time.UTC), now))
	assert.True(t, IsFutureDate(time.Date(2025, 6, 11, 1, 0, 0, 0, time.UTC), now))
	assert.False(t, IsPastDate(now, now))
	assert.False(t, IsFutureDate(now, now))
}

func TestValidCalendarDate(t *testing.T) {
	assert.True(t, ValidCalendarDate(2024, time.February, 29))
	assert.False(t, ValidCalendarDate(2025, time.February, 29))
	assert.False(t, ValidCalendarDate(2025, time.February, 30))
	assert.False(t, ValidCalendarDate(2025, time.April, 31))
	assert.False(t, ValidCalendarDate(2025, time.June, 0))
}

func TestRemainingProductiveMinutes(t *testing.T) {
	morning := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, 13*60, RemainingProductiveMinutes(morning, 22))

	late := time.Date(2025, 6, 10, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, 0, RemainingProductiveMinutes(late, 22))
}

func TestFitsInRemainingDay(t *testing.T) {
	evening := time.Date(2025, 6, 10, 21, 30, 0, 0, time.UTC)
	assert.True(t, FitsInRemainingDay(20, evening, 22))
	assert.False(t, FitsInRemainingDay(45, evening, 22))
	assert.True(t, FitsInRemainingDay(0, evening, 22), "no estimate always fits")
}

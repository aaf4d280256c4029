// Package ledger holds the date conventions shared by every table: dates are
// text, generated timestamps share one layout and one offset, and calendar
// days are the first ten characters.
package ledger

import "time"

// TimestampLayout keeps millisecond precision and an explicit offset so that
// stored dates compare correctly as strings.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

const DayLayout = "2006-01-02"

type Clock struct {
	now func() time.Time
	loc *time.Location
}

func NewClock(loc *time.Location) Clock {
	if loc == nil {
		loc = time.Local
	}
	return Clock{now: time.Now, loc: loc}
}

// FixedClock always reports t. Used by tests and by backfills.
func FixedClock(t time.Time) Clock {
	return Clock{now: func() time.Time { return t }, loc: t.Location()}
}

func (c Clock) Now() time.Time {
	if c.now == nil {
		return time.Now()
	}
	if c.loc == nil {
		return c.now()
	}
	return c.now().In(c.loc)
}

func (c Clock) Location() *time.Location {
	if c.loc == nil {
		return time.Local
	}
	return c.loc
}

// Timestamp formats the current instant for storage.
func (c Clock) Timestamp() string {
	return Format(c.Now())
}

func (c Clock) Today() string {
	return c.Now().Format(DayLayout)
}

// Since returns the stored form of the instant n days before now.
func (c Clock) Since(days int) string {
	return Format(c.Now().AddDate(0, 0, -days))
}

func Format(t time.Time) string {
	return t.Format(TimestampLayout)
}

// Day returns the YYYY-MM-DD prefix of a stored date, or "" when too short.
func Day(date string) string {
	if len(date) < len(DayLayout) {
		return ""
	}
	return date[:len(DayLayout)]
}

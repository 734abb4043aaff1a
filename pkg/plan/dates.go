package plan

import (
	"sort"
	"strings"
	"time"
)

const dateKeyLayout = "2006-01-02"

// FormatDate renders a time as a YYYY-MM-DD date key using the calendar
// day of the time's own location.
func FormatDate(t time.Time) string {
	return t.Format(dateKeyLayout)
}

// ParseDate parses a date key as midnight UTC. Keys are formatted from
// local dates but parsed as UTC on purpose: weekday and display
// computations on a stored key must not shift with the host timezone.
func ParseDate(key string) time.Time {
	t, _ := time.Parse(dateKeyLayout, key)
	return t
}

// DayName returns the lowercase weekday name for a time.
func DayName(t time.Time) string {
	return strings.ToLower(t.Weekday().String())
}

// DisplayName returns the long display form of a date, e.g. "Saturday, Sep 14".
func DisplayName(t time.Time) string {
	return t.Format("Monday, Jan 2")
}

// NextDate returns the date key one day after the given key.
func NextDate(key string) string {
	return FormatDate(ParseDate(key).AddDate(0, 0, 1))
}

// PreviousDate returns the date key one day before the given key.
func PreviousDate(key string) string {
	return FormatDate(ParseDate(key).AddDate(0, 0, -1))
}

// IsWeekend reports whether a date key falls on a Saturday or Sunday.
func IsWeekend(key string) bool {
	wd := ParseDate(key).Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// UpcomingWeekend returns the date keys of the weekend in progress or
// imminent: on a Sunday that is yesterday and today, on a Saturday today
// and tomorrow, otherwise the next Saturday and Sunday.
func UpcomingWeekend() (saturday, sunday string) {
	return upcomingWeekendFrom(time.Now())
}

func upcomingWeekendFrom(today time.Time) (saturday, sunday string) {
	switch today.Weekday() {
	case time.Sunday:
		return FormatDate(today.AddDate(0, 0, -1)), FormatDate(today)
	case time.Saturday:
		return FormatDate(today), FormatDate(today.AddDate(0, 0, 1))
	default:
		sat := today.AddDate(0, 0, int(time.Saturday-today.Weekday()))
		return FormatDate(sat), FormatDate(sat.AddDate(0, 0, 1))
	}
}

// NextWeekend returns the Saturday/Sunday pair strictly after the
// upcoming weekend.
func NextWeekend() (saturday, sunday string) {
	return nextWeekendFrom(time.Now())
}

func nextWeekendFrom(today time.Time) (saturday, sunday string) {
	var days int
	switch today.Weekday() {
	case time.Sunday:
		days = 6
	case time.Saturday:
		days = 7
	default:
		days = int(time.Saturday-today.Weekday()) + 7
	}
	sat := today.AddDate(0, 0, days)
	return FormatDate(sat), FormatDate(sat.AddDate(0, 0, 1))
}

// NewPlanDay builds a PlanDay from a date key.
func NewPlanDay(key string) PlanDay {
	t := ParseDate(key)
	return PlanDay{
		Date:        key,
		DayName:     DayName(t),
		DisplayName: DisplayName(t),
	}
}

// SortPlanDays sorts plan days ascending by date, in place, and returns
// the slice.
func SortPlanDays(days []PlanDay) []PlanDay {
	sort.Slice(days, func(i, j int) bool {
		return ParseDate(days[i].Date).Before(ParseDate(days[j].Date))
	})
	return days
}

// DateRange enumerates every date key from start to end inclusive. An
// inverted range yields nothing.
func DateRange(start, end string) []string {
	var keys []string
	endT := ParseDate(end)
	for t := ParseDate(start); !t.After(endT); t = t.AddDate(0, 0, 1) {
		keys = append(keys, FormatDate(t))
	}
	return keys
}

// IsValidDateRange reports whether start is on or before end.
func IsValidDateRange(start, end string) bool {
	return !ParseDate(start).After(ParseDate(end))
}

package plan

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"
	"time"
)

const minutesPerDay = 24 * 60

// TimeToMinutes parses an HH:mm string into minutes since midnight.
// Malformed input yields 0 for the unparseable component; callers are
// expected to hand in clock times.
func TimeToMinutes(t string) int {
	h, m, _ := strings.Cut(t, ":")
	hours, _ := strconv.Atoi(h)
	minutes, _ := strconv.Atoi(m)
	return hours*60 + minutes
}

// MinutesToTime renders minutes since midnight as a zero-padded HH:mm
// string. Values are not wrapped; keep them within a day.
func MinutesToTime(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// AddHours adds a possibly fractional hour count to an HH:mm time. The
// result wraps past midnight silently.
func AddHours(t string, hours float64) string {
	total := TimeToMinutes(t) + int(math.Round(hours*60))
	total %= minutesPerDay
	if total < 0 {
		total += minutesPerDay
	}
	return MinutesToTime(total)
}

// FormatTime converts an HH:mm time to its 12-hour display form, so
// "14:30" becomes "2:30 PM".
func FormatTime(t string) string {
	minutes := TimeToMinutes(t)
	hours := minutes / 60
	ampm := "AM"
	if hours >= 12 {
		ampm = "PM"
	}
	display := hours % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:%02d %s", display, minutes%60, ampm)
}

// TimeSlots enumerates HH:mm values from start to end inclusive in
// 30-minute steps.
func TimeSlots(start, end string) []string {
	var slots []string
	for m := TimeToMinutes(start); m <= TimeToMinutes(end); m += 30 {
		slots = append(slots, MinutesToTime(m))
	}
	return slots
}

// NewID produces a unique-enough token for plans and scheduled activities:
// a base-36 millisecond timestamp plus a random base-36 suffix. Good for a
// single-user session; not cryptographically secure.
func NewID() string {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 36)
	suffix := strconv.FormatInt(rand.Int63(), 36)
	return ts + suffix
}

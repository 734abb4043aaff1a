package plan

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Scheduling conflicts are values, not errors: callers present them to the
// user and decide whether to proceed.

// RangesOverlap reports whether two half-open time ranges overlap.
// Touching endpoints do not count: an activity ending at 10:00 does not
// conflict with one starting at 10:00.
func RangesOverlap(start1, end1, start2, end2 string) bool {
	return TimeToMinutes(start1) < TimeToMinutes(end2) &&
		TimeToMinutes(start2) < TimeToMinutes(end1)
}

// FindConflicts returns every existing scheduled activity whose time range
// overlaps [startTime, endTime), preserving input order. excludeID skips one
// entry by id, used when re-evaluating an activity that is being moved;
// pass "" to exclude nothing.
func FindConflicts(startTime, endTime string, existing []ScheduledActivity, excludeID string) []ScheduledActivity {
	var conflicts []ScheduledActivity
	for _, e := range existing {
		if excludeID != "" && e.ID == excludeID {
			continue
		}
		if RangesOverlap(startTime, endTime, e.StartTime, e.EndTime) {
			conflicts = append(conflicts, e)
		}
	}
	return conflicts
}

// ConflictMessage renders a human-readable warning listing each conflicting
// activity and asking whether to proceed. Empty when there are no conflicts.
func ConflictMessage(conflicts []ScheduledActivity, newActivityName string) string {
	if len(conflicts) == 0 {
		return ""
	}

	var lines []string
	for _, c := range conflicts {
		lines = append(lines, fmt.Sprintf("• %s (%s-%s)", c.Activity.Name, c.StartTime, c.EndTime))
	}

	word := "activities"
	if len(conflicts) == 1 {
		word = "activity"
	}

	return fmt.Sprintf(`⚠️ Time Conflict Warning!

%q overlaps with existing %s:

%s

Do you want to proceed anyway? This will create overlapping activities in your schedule.`,
		newActivityName, word, strings.Join(lines, "\n"))
}

// NextAvailableSlot finds the earliest slot of the given duration (hours)
// within the 06:00-23:59 day window, starting no earlier than
// preferredStart. Earliest fit wins: before the first activity, then each
// gap between activities sorted by start time, then after the last one.
// Returns nil when nothing fits.
//
// An empty day returns the preferred slot without checking the end-of-day
// bound; that quirk is load-bearing for callers that expect a suggestion
// for any preferred time.
func NextAvailableSlot(durationHours float64, existing []ScheduledActivity, preferredStart string) *TimeSlot {
	if preferredStart == "" {
		preferredStart = "09:00"
	}

	duration := int(math.Round(durationHours * 60))
	dayStart := TimeToMinutes("06:00")
	dayEnd := TimeToMinutes("23:59")

	current := TimeToMinutes(preferredStart)
	if current < dayStart {
		current = dayStart
	}

	if len(existing) == 0 {
		return &TimeSlot{
			StartTime: MinutesToTime(current),
			EndTime:   MinutesToTime(current + duration),
		}
	}

	sorted := append([]ScheduledActivity(nil), existing...)
	sort.Slice(sorted, func(i, j int) bool {
		return TimeToMinutes(sorted[i].StartTime) < TimeToMinutes(sorted[j].StartTime)
	})

	// Before the first activity.
	if current+duration <= TimeToMinutes(sorted[0].StartTime) {
		return &TimeSlot{
			StartTime: MinutesToTime(current),
			EndTime:   MinutesToTime(current + duration),
		}
	}

	// Gaps between consecutive activities.
	for i := 0; i < len(sorted)-1; i++ {
		gapStart := TimeToMinutes(sorted[i].EndTime)
		if current > gapStart {
			gapStart = current
		}
		if TimeToMinutes(sorted[i+1].StartTime)-gapStart >= duration {
			return &TimeSlot{
				StartTime: MinutesToTime(gapStart),
				EndTime:   MinutesToTime(gapStart + duration),
			}
		}
	}

	// After the last activity, bounded by the end of the day.
	finalStart := TimeToMinutes(sorted[len(sorted)-1].EndTime)
	if current > finalStart {
		finalStart = current
	}
	if finalStart+duration <= dayEnd {
		return &TimeSlot{
			StartTime: MinutesToTime(finalStart),
			EndTime:   MinutesToTime(finalStart + duration),
		}
	}

	return nil
}

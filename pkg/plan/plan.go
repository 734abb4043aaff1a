package plan

import "time"

// DefaultPlanName is the name given to a freshly created plan.
const DefaultPlanName = "My Weekend Plan"

// defaultStartTime is where scheduling begins on an empty day.
const defaultStartTime = "09:00"

// NewEmptyWeekendPlan creates a plan covering the upcoming weekend with no
// activities.
func NewEmptyWeekendPlan() *WeekendPlan {
	saturday, sunday := UpcomingWeekend()
	return NewWeekendPlan(saturday, sunday, DefaultPlanName)
}

// NewWeekendPlan creates a plan spanning every day from start to end
// inclusive. The caller validates start <= end; an inverted range produces a
// plan with no days, which no store operation will ever hand out.
func NewWeekendPlan(start, end, name string) *WeekendPlan {
	keys := DateRange(start, end)
	days := make(map[string][]ScheduledActivity, len(keys))
	planDays := make([]PlanDay, 0, len(keys))
	for _, key := range keys {
		days[key] = []ScheduledActivity{}
		planDays = append(planDays, NewPlanDay(key))
	}

	now := time.Now()
	return &WeekendPlan{
		ID:         NewID(),
		Name:       name,
		StartDate:  start,
		EndDate:    end,
		Days:       days,
		ActiveDays: keys,
		PlanDays:   SortPlanDays(planDays),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Clone returns a deep copy of the plan. Saved plans and the current plan
// never share day slices or activity snapshots.
func (p *WeekendPlan) Clone() *WeekendPlan {
	c := *p
	c.Days = make(map[string][]ScheduledActivity, len(p.Days))
	for key, list := range p.Days {
		copied := make([]ScheduledActivity, len(list))
		for i, sa := range list {
			copied[i] = sa
			copied[i].Activity = sa.Activity.Clone()
		}
		c.Days[key] = copied
	}
	c.ActiveDays = append([]string(nil), p.ActiveDays...)
	c.PlanDays = append([]PlanDay(nil), p.PlanDays...)
	return &c
}

// ActivitiesOn returns the scheduled activities for a date key, in
// insertion order. Sort by start time for display.
func (p *WeekendPlan) ActivitiesOn(dateKey string) []ScheduledActivity {
	return p.Days[dateKey]
}

// FindScheduled locates a scheduled activity by id across all days.
// Returns nil when absent.
func (p *WeekendPlan) FindScheduled(id string) *ScheduledActivity {
	for _, list := range p.Days {
		for i := range list {
			if list[i].ID == id {
				return &list[i]
			}
		}
	}
	return nil
}

func (p *WeekendPlan) touch() {
	p.UpdatedAt = time.Now()
}

// newScheduled builds a scheduled instance with a fresh id and a deep
// snapshot of the activity.
func newScheduled(a Activity, dateKey, startTime, endTime string) ScheduledActivity {
	return ScheduledActivity{
		ID:        NewID(),
		Activity:  a.Clone(),
		Day:       DayName(ParseDate(dateKey)),
		Date:      dateKey,
		StartTime: startTime,
		EndTime:   endTime,
	}
}

// ScheduleActivity appends an activity to a day without conflict checking.
// An empty startTime defaults to 09:00 on an empty day, otherwise to the
// end time of the day's last activity by start-time order. An empty
// endTime is derived from the activity's duration.
func (p *WeekendPlan) ScheduleActivity(a Activity, dateKey, startTime, endTime string) ScheduledActivity {
	existing := p.Days[dateKey]

	if startTime == "" {
		startTime = defaultStartTime
		if len(existing) > 0 {
			last := existing[0]
			for _, sa := range existing[1:] {
				if sa.StartTime >= last.StartTime {
					last = sa
				}
			}
			startTime = last.EndTime
		}
	}
	if endTime == "" {
		endTime = AddHours(startTime, a.Duration)
	}

	sa := newScheduled(a, dateKey, startTime, endTime)
	p.Days[dateKey] = append(existing, sa)
	p.touch()
	return sa
}

// ScheduleActivityForced appends an activity with explicit times and no
// defaulting, after the caller has resolved any conflict.
func (p *WeekendPlan) ScheduleActivityForced(a Activity, dateKey, startTime, endTime string) ScheduledActivity {
	sa := newScheduled(a, dateKey, startTime, endTime)
	p.Days[dateKey] = append(p.Days[dateKey], sa)
	p.touch()
	return sa
}

// RemoveActivity removes a scheduled activity by id from whichever day
// holds it. Reports whether anything was removed.
func (p *WeekendPlan) RemoveActivity(id string) bool {
	for key, list := range p.Days {
		for i, sa := range list {
			if sa.ID == id {
				p.Days[key] = append(list[:i:i], list[i+1:]...)
				p.touch()
				return true
			}
		}
	}
	return false
}

// RetimeActivity moves a scheduled activity to a new start time and
// recomputes its end from the snapshot's duration.
func (p *WeekendPlan) RetimeActivity(id, newStartTime string) bool {
	for _, list := range p.Days {
		for i := range list {
			if list[i].ID == id {
				list[i].StartTime = newStartTime
				list[i].EndTime = AddHours(newStartTime, list[i].Activity.Duration)
				p.touch()
				return true
			}
		}
	}
	return false
}

// MoveActivity relocates a scheduled activity from one day to another,
// rewriting its date and day name. A no-op when the activity is not on the
// source day.
func (p *WeekendPlan) MoveActivity(id, sourceDate, targetDate string) bool {
	source := p.Days[sourceDate]
	idx := -1
	for i, sa := range source {
		if sa.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return false
	}

	moved := source[idx]
	moved.Date = targetDate
	moved.Day = DayName(ParseDate(targetDate))

	p.Days[sourceDate] = append(source[:idx:idx], source[idx+1:]...)
	p.Days[targetDate] = append(p.Days[targetDate], moved)
	p.touch()
	return true
}

// Clear empties every active day's activity list. The day set is untouched.
func (p *WeekendPlan) Clear() {
	cleared := make(map[string][]ScheduledActivity, len(p.ActiveDays))
	for _, key := range p.ActiveDays {
		cleared[key] = []ScheduledActivity{}
	}
	p.Days = cleared
	p.touch()
}

// AddDay extends the plan by one day: the day after afterDateKey, or the
// day before the chronologically first day when afterDateKey is empty.
// Returns the new date key, or false when that key already exists.
func (p *WeekendPlan) AddDay(afterDateKey string) (string, bool) {
	var newKey string
	if afterDateKey != "" {
		newKey = NextDate(afterDateKey)
	} else {
		sorted := SortPlanDays(p.PlanDays)
		newKey = PreviousDate(sorted[0].Date)
	}

	for _, key := range p.ActiveDays {
		if key == newKey {
			return "", false
		}
	}

	p.ActiveDays = append(p.ActiveDays, newKey)
	p.PlanDays = SortPlanDays(append(p.PlanDays, NewPlanDay(newKey)))
	p.StartDate = p.PlanDays[0].Date
	p.EndDate = p.PlanDays[len(p.PlanDays)-1].Date
	p.Days[newKey] = []ScheduledActivity{}
	p.touch()
	return newKey, true
}

// RemoveDay drops a day from the plan. Refused (no-op, false) for the last
// remaining day, and for a day that still has activities unless forced.
func (p *WeekendPlan) RemoveDay(dateKey string, force bool) bool {
	if len(p.ActiveDays) <= 1 {
		return false
	}
	if !force && len(p.Days[dateKey]) > 0 {
		return false
	}

	found := false
	active := p.ActiveDays[:0]
	for _, key := range p.ActiveDays {
		if key == dateKey {
			found = true
			continue
		}
		active = append(active, key)
	}
	if !found {
		return false
	}
	p.ActiveDays = active

	days := p.PlanDays[:0]
	for _, pd := range p.PlanDays {
		if pd.Date != dateKey {
			days = append(days, pd)
		}
	}
	p.PlanDays = days
	delete(p.Days, dateKey)

	if len(p.PlanDays) > 0 {
		p.StartDate = p.PlanDays[0].Date
		p.EndDate = p.PlanDays[len(p.PlanDays)-1].Date
	}
	p.touch()
	return true
}

// DayHasActivities reports whether a day has any scheduled activities.
func (p *WeekendPlan) DayHasActivities(dateKey string) bool {
	return len(p.Days[dateKey]) > 0
}

// DayActivityCount returns the number of activities scheduled on a day.
func (p *WeekendPlan) DayActivityCount(dateKey string) int {
	return len(p.Days[dateKey])
}

// ApplyTheme clears the schedule and bulk-places the given activities.
// Each activity prefers a day chosen round-robin over the sorted plan
// days; a full preferred day falls through to the first other day with
// room, and when no day has room the activity is force-placed at 09:00 on
// its preferred day, overlap accepted. Ids missing from available are
// skipped. Returns the number of activities placed.
func (p *WeekendPlan) ApplyTheme(activityIDs []string, available []Activity) int {
	sorted := SortPlanDays(p.PlanDays)
	if len(sorted) == 0 {
		return 0
	}

	placed := make(map[string][]ScheduledActivity, len(sorted))
	for _, day := range sorted {
		placed[day.Date] = []ScheduledActivity{}
	}

	count := 0
	for i, id := range activityIDs {
		var activity *Activity
		for j := range available {
			if available[j].ID == id {
				activity = &available[j]
				break
			}
		}
		if activity == nil {
			continue
		}

		preferred := sorted[i%len(sorted)].Date
		slot := NextAvailableSlot(activity.Duration, placed[preferred], defaultStartTime)
		target := preferred

		if slot == nil {
			for _, day := range sorted {
				if day.Date == preferred {
					continue
				}
				if s := NextAvailableSlot(activity.Duration, placed[day.Date], defaultStartTime); s != nil {
					slot, target = s, day.Date
					break
				}
			}
		}
		if slot == nil {
			// Last resort: overlap on the preferred day rather than drop
			// the activity.
			slot = &TimeSlot{
				StartTime: defaultStartTime,
				EndTime:   AddHours(defaultStartTime, activity.Duration),
			}
			target = preferred
		}

		placed[target] = append(placed[target], newScheduled(*activity, target, slot.StartTime, slot.EndTime))
		count++
	}

	p.Days = placed
	p.touch()
	return count
}

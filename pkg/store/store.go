// Package store owns the planner's mutable state: the current plan, the
// saved-plan collection, and the user's custom activities. Every mutation
// funnels through the Store, which persists the affected record after each
// committed change. Persistence is fire-and-forget: a storage failure is
// logged, never rolled back into the in-memory state.
//
// The Store is not safe for concurrent use; the planner is a single-user,
// single-goroutine tool.
package store

import (
	"log/slog"
	"time"

	"github.com/arpannema1234/weekendly/pkg/catalog"
	"github.com/arpannema1234/weekendly/pkg/plan"
)

// nowFunc is swapped in tests.
var nowFunc = time.Now

// Store is the single authority over plan state.
type Store struct {
	records Records
	log     *slog.Logger

	current *plan.WeekendPlan
	saved   []*plan.WeekendPlan
	custom  []plan.Activity
}

// NewStore creates a Store over the given records backend and loads its
// state, falling back to a default plan when records are missing or
// unreadable. Loading never fails; see Reload.
func NewStore(records Records, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{records: records, log: logger}
	s.Reload()
	return s
}

// Reload re-reads all records from the backend, replacing in-memory state.
// Load failures are logged and the affected record defaulted, so there is
// nothing for the caller to handle.
func (s *Store) Reload() {
	data, err := s.records.Load(RecordCurrentPlan)
	if err != nil {
		s.log.Warn("loading current plan", "error", err)
	}
	s.current = decodeCurrentPlan(data)

	data, err = s.records.Load(RecordSavedPlans)
	if err != nil {
		s.log.Warn("loading saved plans", "error", err)
	}
	s.saved = decodeSavedPlans(data)

	data, err = s.records.Load(RecordCustomActivities)
	if err != nil {
		s.log.Warn("loading custom activities", "error", err)
	}
	s.custom = decodeActivities(data)

	// Write back so a migrated or freshly defaulted plan is durable.
	s.persistCurrent()
}

func (s *Store) persistCurrent() {
	data, err := encodePlan(s.current)
	if err == nil {
		err = s.records.Save(RecordCurrentPlan, data)
	}
	if err != nil {
		s.log.Warn("persisting current plan", "error", err)
	}
}

func (s *Store) persistSaved() {
	data, err := encodePlans(s.saved)
	if err == nil {
		err = s.records.Save(RecordSavedPlans, data)
	}
	if err != nil {
		s.log.Warn("persisting saved plans", "error", err)
	}
}

func (s *Store) persistCustom() {
	data, err := encodeActivities(s.custom)
	if err == nil {
		err = s.records.Save(RecordCustomActivities, data)
	}
	if err != nil {
		s.log.Warn("persisting custom activities", "error", err)
	}
}

// CurrentPlan returns the live current plan. There is always exactly one.
func (s *Store) CurrentPlan() *plan.WeekendPlan {
	return s.current
}

// SavedPlans returns the saved-plan collection.
func (s *Store) SavedPlans() []*plan.WeekendPlan {
	return s.saved
}

// FindSavedPlan returns the saved plan with the given id, or nil.
func (s *Store) FindSavedPlan(id string) *plan.WeekendPlan {
	for _, p := range s.saved {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// AddActivityToSchedule appends an activity to a day without conflict
// checking; callers are expected to have run CheckActivityConflicts first.
// Empty times default as described on plan.WeekendPlan.ScheduleActivity.
func (s *Store) AddActivityToSchedule(a plan.Activity, dateKey, startTime, endTime string) plan.ScheduledActivity {
	sa := s.current.ScheduleActivity(a, dateKey, startTime, endTime)
	s.persistCurrent()
	return sa
}

// AddActivityToScheduleForced appends with explicit times and no
// defaulting, after the caller resolved a conflict decision.
func (s *Store) AddActivityToScheduleForced(a plan.Activity, dateKey, startTime, endTime string) plan.ScheduledActivity {
	sa := s.current.ScheduleActivityForced(a, dateKey, startTime, endTime)
	s.persistCurrent()
	return sa
}

// RemoveActivityFromSchedule removes a scheduled activity by id from
// whichever day holds it.
func (s *Store) RemoveActivityFromSchedule(activityID string) bool {
	if !s.current.RemoveActivity(activityID) {
		return false
	}
	s.persistCurrent()
	return true
}

// UpdateActivityTime relocates a scheduled activity to a new start time,
// recomputing its end from the snapshot's duration.
func (s *Store) UpdateActivityTime(activityID, newStartTime string) bool {
	if !s.current.RetimeActivity(activityID, newStartTime) {
		return false
	}
	s.persistCurrent()
	return true
}

// MoveActivity relocates a scheduled activity between days. A no-op when
// the activity is not on the source day.
func (s *Store) MoveActivity(activityID, sourceDate, targetDate string) bool {
	if !s.current.MoveActivity(activityID, sourceDate, targetDate) {
		return false
	}
	s.persistCurrent()
	return true
}

// ClearSchedule empties every active day.
func (s *Store) ClearSchedule() {
	s.current.Clear()
	s.persistCurrent()
}

// ConflictCheck reports the outcome of a read-only conflict probe.
type ConflictCheck struct {
	HasConflicts bool
	Conflicts    []plan.ScheduledActivity
	Message      string
}

// MoveConflictCheck extends ConflictCheck with the moved activity's
// display name for messaging.
type MoveConflictCheck struct {
	ConflictCheck
	ActivityName string
}

// CheckActivityConflicts probes a candidate placement against a day's
// current activities. Read-only.
func (s *Store) CheckActivityConflicts(a plan.Activity, dateKey, startTime, endTime string) ConflictCheck {
	conflicts := plan.FindConflicts(startTime, endTime, s.current.ActivitiesOn(dateKey), "")
	return ConflictCheck{
		HasConflicts: len(conflicts) > 0,
		Conflicts:    conflicts,
		Message:      plan.ConflictMessage(conflicts, a.Name),
	}
}

// CheckMoveConflicts probes moving an existing scheduled activity onto a
// target day, excluding the activity itself. Read-only.
func (s *Store) CheckMoveConflicts(activityID, targetDate string) MoveConflictCheck {
	moving := s.current.FindScheduled(activityID)
	if moving == nil {
		return MoveConflictCheck{}
	}

	conflicts := plan.FindConflicts(moving.StartTime, moving.EndTime, s.current.ActivitiesOn(targetDate), activityID)
	return MoveConflictCheck{
		ConflictCheck: ConflictCheck{
			HasConflicts: len(conflicts) > 0,
			Conflicts:    conflicts,
			Message:      plan.ConflictMessage(conflicts, moving.Activity.Name),
		},
		ActivityName: moving.Activity.Name,
	}
}

// SuggestAlternativeTime finds the earliest free slot for an activity on a
// day. Nil when the day has no room.
func (s *Store) SuggestAlternativeTime(a plan.Activity, dateKey, preferredStart string) *plan.TimeSlot {
	return plan.NextAvailableSlot(a.Duration, s.current.ActivitiesOn(dateKey), preferredStart)
}

// AddDay extends the current plan by one day; see plan.WeekendPlan.AddDay.
func (s *Store) AddDay(afterDateKey string) (string, bool) {
	key, ok := s.current.AddDay(afterDateKey)
	if ok {
		s.persistCurrent()
	}
	return key, ok
}

// RemoveDay drops a day from the current plan; see
// plan.WeekendPlan.RemoveDay for the refusal rules.
func (s *Store) RemoveDay(dateKey string, force bool) bool {
	if !s.current.RemoveDay(dateKey, force) {
		return false
	}
	s.persistCurrent()
	return true
}

// DayHasActivities reports whether a day of the current plan has
// scheduled activities.
func (s *Store) DayHasActivities(dateKey string) bool {
	return s.current.DayHasActivities(dateKey)
}

// DayActivityCount returns the number of activities on a day of the
// current plan.
func (s *Store) DayActivityCount(dateKey string) int {
	return s.current.DayActivityCount(dateKey)
}

// CreateNewPlan replaces the current plan with a fresh one spanning the
// inclusive date range. The caller validates startDate <= endDate.
func (s *Store) CreateNewPlan(startDate, endDate, name string) *plan.WeekendPlan {
	s.current = plan.NewWeekendPlan(startDate, endDate, name)
	s.persistCurrent()
	return s.current
}

// SavePlan upserts a plan into the saved collection by id, refreshing its
// updated timestamp. A nil plan saves the current plan.
func (s *Store) SavePlan(p *plan.WeekendPlan) {
	if p == nil {
		p = s.current
	}
	c := p.Clone()
	c.UpdatedAt = nowFunc()

	for i, existing := range s.saved {
		if existing.ID == c.ID {
			s.saved[i] = c
			s.persistSaved()
			return
		}
	}
	s.saved = append(s.saved, c)
	s.persistSaved()
}

// LoadPlan replaces the current plan with a saved plan. A no-op when the
// id is unknown.
func (s *Store) LoadPlan(planID string) bool {
	p := s.FindSavedPlan(planID)
	if p == nil {
		return false
	}
	s.current = p.Clone()
	s.persistCurrent()
	return true
}

// DeleteSavedPlan removes a plan from the saved collection. The current
// plan is untouched even when it was loaded from the deleted entry.
func (s *Store) DeleteSavedPlan(planID string) bool {
	for i, p := range s.saved {
		if p.ID == planID {
			s.saved = append(s.saved[:i:i], s.saved[i+1:]...)
			s.persistSaved()
			return true
		}
	}
	return false
}

// DuplicatePlan clones a saved plan under a fresh id and appends it to
// the saved collection. The name defaults to "<original> (Copy)". Nil when
// the source id is unknown.
func (s *Store) DuplicatePlan(planID, newName string) *plan.WeekendPlan {
	src := s.FindSavedPlan(planID)
	if src == nil {
		return nil
	}

	dup := src.Clone()
	dup.ID = plan.NewID()
	if newName != "" {
		dup.Name = newName
	} else {
		dup.Name = src.Name + " (Copy)"
	}
	now := nowFunc()
	dup.CreatedAt = now
	dup.UpdatedAt = now

	s.saved = append(s.saved, dup)
	s.persistSaved()
	return dup
}

// ApplyTheme clears the current schedule and bulk-places a theme's
// activities across the plan's days; see plan.WeekendPlan.ApplyTheme.
// Returns the number of activities placed.
func (s *Store) ApplyTheme(activityIDs []string, available []plan.Activity) int {
	placed := s.current.ApplyTheme(activityIDs, available)
	s.persistCurrent()
	return placed
}

// Activities returns the combined catalog: built-ins followed by the
// user's custom activities.
func (s *Store) Activities() []plan.Activity {
	out := make([]plan.Activity, 0, len(catalog.Activities)+len(s.custom))
	for _, a := range catalog.Activities {
		out = append(out, a.Clone())
	}
	for _, a := range s.custom {
		out = append(out, a.Clone())
	}
	return out
}

// CustomActivities returns the user's custom activities.
func (s *Store) CustomActivities() []plan.Activity {
	out := make([]plan.Activity, 0, len(s.custom))
	for _, a := range s.custom {
		out = append(out, a.Clone())
	}
	return out
}

// FindActivity resolves an id against the combined catalog. Nil when
// unknown.
func (s *Store) FindActivity(id string) *plan.Activity {
	if a := catalog.Find(id); a != nil {
		return a
	}
	for i := range s.custom {
		if s.custom[i].ID == id {
			a := s.custom[i].Clone()
			return &a
		}
	}
	return nil
}

// AddCustomActivity adds a user-owned catalog entry. A missing id is
// generated and a missing icon inferred from the name.
func (s *Store) AddCustomActivity(a plan.Activity) plan.Activity {
	if a.ID == "" {
		a.ID = plan.NewID()
	}
	if a.Icon == "" {
		a.Icon = catalog.DefaultIcon(a.Name)
	}
	s.custom = append(s.custom, a.Clone())
	s.persistCustom()
	return a
}

// UpdateCustomActivity replaces a custom entry by id. Built-in catalog
// entries are read-only; updates against them are no-ops.
func (s *Store) UpdateCustomActivity(a plan.Activity) bool {
	for i := range s.custom {
		if s.custom[i].ID == a.ID {
			s.custom[i] = a.Clone()
			s.persistCustom()
			return true
		}
	}
	return false
}

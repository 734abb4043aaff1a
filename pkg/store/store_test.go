package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arpannema1234/weekendly/pkg/catalog"
	"github.com/arpannema1234/weekendly/pkg/plan"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	records, err := NewFileRecords(t.TempDir())
	require.NoError(t, err)
	return NewStore(records, nil)
}

func testActivity(name string, duration float64) plan.Activity {
	return plan.Activity{
		ID:       plan.NewID(),
		Name:     name,
		Category: plan.CategoryFood,
		Duration: duration,
		Mood:     plan.MoodRelaxed,
	}
}

func firstDay(s *Store) string {
	return s.CurrentPlan().ActiveDays[0]
}

func TestNewStoreDefaults(t *testing.T) {
	s := setupTestStore(t)

	p := s.CurrentPlan()
	require.NotNil(t, p)
	assert.Equal(t, plan.DefaultPlanName, p.Name)
	assert.Len(t, p.ActiveDays, 2)
	assert.True(t, plan.IsWeekend(p.StartDate))
	assert.True(t, plan.IsWeekend(p.EndDate))
	assert.Empty(t, s.SavedPlans())
	assert.Empty(t, s.CustomActivities())
}

func TestNewStorePersistsDefaultPlan(t *testing.T) {
	dir := t.TempDir()
	records, err := NewFileRecords(dir)
	require.NoError(t, err)
	NewStore(records, nil)

	// The freshly defaulted plan is written back on load.
	_, err = os.Stat(filepath.Join(dir, "current-plan.yaml"))
	assert.NoError(t, err)
}

func TestAddAndRemoveActivity(t *testing.T) {
	s := setupTestStore(t)
	day := firstDay(s)

	sa := s.AddActivityToSchedule(testActivity("Brunch", 1.5), day, "", "")
	assert.Equal(t, "09:00", sa.StartTime)
	assert.Equal(t, "10:30", sa.EndTime)
	assert.Equal(t, 1, s.DayActivityCount(day))

	assert.True(t, s.RemoveActivityFromSchedule(sa.ID))
	assert.False(t, s.DayHasActivities(day))
	assert.False(t, s.RemoveActivityFromSchedule(sa.ID))
}

func TestAddActivityForced(t *testing.T) {
	s := setupTestStore(t)
	day := firstDay(s)

	s.AddActivityToSchedule(testActivity("Brunch", 2), day, "09:00", "11:00")
	forced := s.AddActivityToScheduleForced(testActivity("Yoga", 1), day, "09:30", "10:30")

	assert.Equal(t, "09:30", forced.StartTime)
	assert.Equal(t, 2, s.DayActivityCount(day))
}

func TestUpdateActivityTime(t *testing.T) {
	s := setupTestStore(t)
	day := firstDay(s)

	sa := s.AddActivityToSchedule(testActivity("Brunch", 1.5), day, "09:00", "")
	assert.True(t, s.UpdateActivityTime(sa.ID, "12:00"))

	got := s.CurrentPlan().FindScheduled(sa.ID)
	require.NotNil(t, got)
	assert.Equal(t, "12:00", got.StartTime)
	assert.Equal(t, "13:30", got.EndTime)
}

func TestMoveActivityBetweenDays(t *testing.T) {
	s := setupTestStore(t)
	source := s.CurrentPlan().ActiveDays[0]
	target := s.CurrentPlan().ActiveDays[1]

	sa := s.AddActivityToSchedule(testActivity("Brunch", 1), source, "", "")
	assert.True(t, s.MoveActivity(sa.ID, source, target))
	assert.Equal(t, 0, s.DayActivityCount(source))
	assert.Equal(t, 1, s.DayActivityCount(target))
}

func TestCheckActivityConflicts(t *testing.T) {
	s := setupTestStore(t)
	day := firstDay(s)
	s.AddActivityToSchedule(testActivity("Brunch", 2), day, "09:00", "11:00")

	check := s.CheckActivityConflicts(testActivity("Yoga", 1), day, "10:00", "11:00")
	assert.True(t, check.HasConflicts)
	assert.Len(t, check.Conflicts, 1)
	assert.Contains(t, check.Message, "Brunch")
	assert.Contains(t, check.Message, `"Yoga"`)

	clear := s.CheckActivityConflicts(testActivity("Yoga", 1), day, "11:00", "12:00")
	assert.False(t, clear.HasConflicts)
	assert.Empty(t, clear.Message)
}

func TestCheckMoveConflicts(t *testing.T) {
	s := setupTestStore(t)
	source := s.CurrentPlan().ActiveDays[0]
	target := s.CurrentPlan().ActiveDays[1]

	moving := s.AddActivityToSchedule(testActivity("Brunch", 2), source, "09:00", "11:00")
	s.AddActivityToSchedule(testActivity("Hike", 2), target, "10:00", "12:00")

	check := s.CheckMoveConflicts(moving.ID, target)
	assert.True(t, check.HasConflicts)
	assert.Equal(t, "Brunch", check.ActivityName)
	assert.Contains(t, check.Message, "Hike")
}

func TestCheckMoveConflictsUnknownID(t *testing.T) {
	s := setupTestStore(t)
	check := s.CheckMoveConflicts("nope", firstDay(s))
	assert.False(t, check.HasConflicts)
	assert.Empty(t, check.ActivityName)
}

func TestSuggestAlternativeTime(t *testing.T) {
	s := setupTestStore(t)
	day := firstDay(s)
	s.AddActivityToSchedule(testActivity("Brunch", 2), day, "09:00", "11:00")

	slot := s.SuggestAlternativeTime(testActivity("Yoga", 1), day, "09:00")
	require.NotNil(t, slot)
	assert.Equal(t, "11:00", slot.StartTime)
	assert.Equal(t, "12:00", slot.EndTime)
}

func TestClearSchedule(t *testing.T) {
	s := setupTestStore(t)
	day := firstDay(s)
	s.AddActivityToSchedule(testActivity("Brunch", 1), day, "", "")

	s.ClearSchedule()
	assert.False(t, s.DayHasActivities(day))
	assert.Len(t, s.CurrentPlan().ActiveDays, 2)
}

func TestAddAndRemoveDay(t *testing.T) {
	s := setupTestStore(t)
	end := s.CurrentPlan().EndDate

	key, ok := s.AddDay(end)
	require.True(t, ok)
	assert.Equal(t, plan.NextDate(end), key)
	assert.Len(t, s.CurrentPlan().ActiveDays, 3)

	assert.True(t, s.RemoveDay(key, false))
	assert.Len(t, s.CurrentPlan().ActiveDays, 2)
}

func TestRemoveDayGuards(t *testing.T) {
	s := setupTestStore(t)
	day := firstDay(s)
	s.AddActivityToSchedule(testActivity("Brunch", 1), day, "", "")

	assert.False(t, s.RemoveDay(day, false))
	assert.True(t, s.RemoveDay(day, true))
	assert.False(t, s.RemoveDay(s.CurrentPlan().ActiveDays[0], true), "last day must survive")
}

func TestCreateNewPlan(t *testing.T) {
	s := setupTestStore(t)

	p := s.CreateNewPlan("2025-06-06", "2025-06-09", "Long Weekend")
	assert.Equal(t, "Long Weekend", p.Name)
	assert.Len(t, p.ActiveDays, 4)
	assert.Same(t, p, s.CurrentPlan())
}

func TestSaveAndLoadPlan(t *testing.T) {
	s := setupTestStore(t)
	day := firstDay(s)
	s.AddActivityToSchedule(testActivity("Brunch", 1), day, "", "")

	s.SavePlan(nil)
	require.Len(t, s.SavedPlans(), 1)
	savedID := s.SavedPlans()[0].ID

	// Mutating the current plan must not touch the saved copy.
	s.ClearSchedule()
	assert.Equal(t, 1, len(s.SavedPlans()[0].Days[day]))

	assert.True(t, s.LoadPlan(savedID))
	assert.Equal(t, 1, s.DayActivityCount(day))
	assert.False(t, s.LoadPlan("nope"))
}

func TestSavePlanUpserts(t *testing.T) {
	s := setupTestStore(t)

	s.SavePlan(nil)
	s.CurrentPlan().Name = "Renamed"
	s.SavePlan(nil)

	require.Len(t, s.SavedPlans(), 1)
	assert.Equal(t, "Renamed", s.SavedPlans()[0].Name)
}

func TestSavePlanRefreshesTimestamp(t *testing.T) {
	s := setupTestStore(t)
	fixed := time.Date(2025, time.June, 7, 12, 0, 0, 0, time.UTC)
	nowFunc = func() time.Time { return fixed }
	defer func() { nowFunc = time.Now }()

	s.SavePlan(nil)
	assert.Equal(t, fixed, s.SavedPlans()[0].UpdatedAt)
}

func TestDeleteSavedPlan(t *testing.T) {
	s := setupTestStore(t)
	s.SavePlan(nil)
	id := s.SavedPlans()[0].ID

	assert.True(t, s.DeleteSavedPlan(id))
	assert.Empty(t, s.SavedPlans())
	assert.False(t, s.DeleteSavedPlan(id))

	// Deleting the source of the current plan leaves it alone.
	assert.NotNil(t, s.CurrentPlan())
}

func TestDuplicatePlan(t *testing.T) {
	s := setupTestStore(t)
	s.CurrentPlan().Name = "Original"
	s.SavePlan(nil)
	id := s.SavedPlans()[0].ID

	dup := s.DuplicatePlan(id, "")
	require.NotNil(t, dup)
	assert.Equal(t, "Original (Copy)", dup.Name)
	assert.NotEqual(t, id, dup.ID)
	assert.Len(t, s.SavedPlans(), 2)

	named := s.DuplicatePlan(id, "Spring Trip")
	require.NotNil(t, named)
	assert.Equal(t, "Spring Trip", named.Name)

	assert.Nil(t, s.DuplicatePlan("nope", ""))
}

func TestApplyTheme(t *testing.T) {
	s := setupTestStore(t)
	info := catalog.WeekendThemes[plan.ThemeLazy]

	placed := s.ApplyTheme(info.SuggestedActivities, s.Activities())
	assert.Equal(t, len(info.SuggestedActivities), placed)

	total := 0
	for _, day := range s.CurrentPlan().ActiveDays {
		total += s.DayActivityCount(day)
	}
	assert.Equal(t, placed, total)
}

func TestActivitiesCombinesCatalogAndCustom(t *testing.T) {
	s := setupTestStore(t)
	assert.Len(t, s.Activities(), len(catalog.Activities))

	s.AddCustomActivity(testActivity("Pottery", 2))
	assert.Len(t, s.Activities(), len(catalog.Activities)+1)
	assert.Len(t, s.CustomActivities(), 1)
}

func TestAddCustomActivityDefaults(t *testing.T) {
	s := setupTestStore(t)

	added := s.AddCustomActivity(plan.Activity{
		Name:     "Cooking class",
		Category: plan.CategoryFood,
		Duration: 2,
		Mood:     plan.MoodCreative,
	})
	assert.NotEmpty(t, added.ID)
	assert.Equal(t, "chefHat", added.Icon)
}

func TestFindActivity(t *testing.T) {
	s := setupTestStore(t)
	custom := s.AddCustomActivity(testActivity("Pottery", 2))

	assert.NotNil(t, s.FindActivity("hiking"))
	assert.NotNil(t, s.FindActivity(custom.ID))
	assert.Nil(t, s.FindActivity("nope"))
}

func TestUpdateCustomActivity(t *testing.T) {
	s := setupTestStore(t)
	custom := s.AddCustomActivity(testActivity("Pottery", 2))

	custom.Name = "Pottery Wheel"
	assert.True(t, s.UpdateCustomActivity(custom))
	assert.Equal(t, "Pottery Wheel", s.CustomActivities()[0].Name)

	// Built-ins are read-only.
	builtin := s.FindActivity("hiking")
	require.NotNil(t, builtin)
	assert.False(t, s.UpdateCustomActivity(*builtin))
}

func TestReloadDefaultsUnreadableRecord(t *testing.T) {
	dir := t.TempDir()
	records, err := NewFileRecords(dir)
	require.NoError(t, err)
	s := NewStore(records, nil)

	s.CurrentPlan().Name = "Renamed"
	s.AddActivityToSchedule(testActivity("Brunch", 1), firstDay(s), "", "")

	// Corrupt the record on disk; reloading falls back to a fresh default.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "current-plan.yaml"), []byte("{{{"), 0644))
	s.Reload()

	assert.Equal(t, plan.DefaultPlanName, s.CurrentPlan().Name)
	assert.False(t, s.DayHasActivities(firstDay(s)))
}

func TestReloadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	records, err := NewFileRecords(dir)
	require.NoError(t, err)
	s := NewStore(records, nil)

	day := firstDay(s)
	sa := s.AddActivityToSchedule(testActivity("Brunch", 1), day, "", "")
	s.SavePlan(nil)
	s.AddCustomActivity(testActivity("Pottery", 2))

	reopened := NewStore(records, nil)
	require.NotNil(t, reopened.CurrentPlan().FindScheduled(sa.ID))
	assert.Len(t, reopened.SavedPlans(), 1)
	assert.Len(t, reopened.CustomActivities(), 1)
}

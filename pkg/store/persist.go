package store

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/arpannema1234/weekendly/pkg/plan"
)

// Loading is forgiving by design: a corrupt or half-shaped record falls
// back to a fresh default rather than refusing to start.

func encodePlan(p *plan.WeekendPlan) ([]byte, error) {
	data, err := yaml.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encoding plan: %w", err)
	}
	return data, nil
}

func encodePlans(plans []*plan.WeekendPlan) ([]byte, error) {
	data, err := yaml.Marshal(plans)
	if err != nil {
		return nil, fmt.Errorf("encoding plans: %w", err)
	}
	return data, nil
}

func encodeActivities(activities []plan.Activity) ([]byte, error) {
	data, err := yaml.Marshal(activities)
	if err != nil {
		return nil, fmt.Errorf("encoding activities: %w", err)
	}
	return data, nil
}

// legacyPlan is the pre-multi-day record shape, keyed by literal
// saturday/sunday lists instead of a days map.
type legacyPlan struct {
	ID        string                   `yaml:"id"`
	Name      string                   `yaml:"name"`
	Saturday  []plan.ScheduledActivity `yaml:"saturday"`
	Sunday    []plan.ScheduledActivity `yaml:"sunday"`
	CreatedAt time.Time                `yaml:"createdAt"`
	UpdatedAt time.Time                `yaml:"updatedAt"`
}

// decodeCurrentPlan turns a stored current-plan record into a usable plan.
// Legacy records are re-anchored onto the current upcoming weekend with
// their activity lists carried over. Anything unusable becomes a fresh
// default plan.
func decodeCurrentPlan(data []byte) *plan.WeekendPlan {
	if len(data) == 0 {
		return plan.NewEmptyWeekendPlan()
	}

	var probe map[string]yaml.Node
	if err := yaml.Unmarshal(data, &probe); err != nil {
		return plan.NewEmptyWeekendPlan()
	}

	_, hasSaturday := probe["saturday"]
	_, hasSunday := probe["sunday"]
	if hasSaturday || hasSunday {
		var legacy legacyPlan
		if err := yaml.Unmarshal(data, &legacy); err != nil {
			return plan.NewEmptyWeekendPlan()
		}
		return migrateLegacyPlan(legacy)
	}

	var p plan.WeekendPlan
	if err := yaml.Unmarshal(data, &p); err != nil {
		return plan.NewEmptyWeekendPlan()
	}
	if p.Days == nil || len(p.ActiveDays) == 0 {
		return plan.NewEmptyWeekendPlan()
	}
	return &p
}

func migrateLegacyPlan(legacy legacyPlan) *plan.WeekendPlan {
	saturday, sunday := plan.UpcomingWeekend()

	id := legacy.ID
	if id == "" {
		id = plan.NewID()
	}
	name := legacy.Name
	if name == "" {
		name = plan.DefaultPlanName
	}
	createdAt := legacy.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	updatedAt := legacy.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}

	satList := legacy.Saturday
	if satList == nil {
		satList = []plan.ScheduledActivity{}
	}
	sunList := legacy.Sunday
	if sunList == nil {
		sunList = []plan.ScheduledActivity{}
	}

	return &plan.WeekendPlan{
		ID:        id,
		Name:      name,
		StartDate: saturday,
		EndDate:   sunday,
		Days: map[string][]plan.ScheduledActivity{
			saturday: satList,
			sunday:   sunList,
		},
		ActiveDays: []string{saturday, sunday},
		PlanDays: []plan.PlanDay{
			plan.NewPlanDay(saturday),
			plan.NewPlanDay(sunday),
		},
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// decodeSavedPlans turns a stored saved-plans record into a plan list.
// Unusable data yields an empty list.
func decodeSavedPlans(data []byte) []*plan.WeekendPlan {
	if len(data) == 0 {
		return nil
	}
	var plans []*plan.WeekendPlan
	if err := yaml.Unmarshal(data, &plans); err != nil {
		return nil
	}
	return plans
}

// decodeActivities turns a stored custom-activities record into an
// activity list. Unusable data yields an empty list.
func decodeActivities(data []byte) []plan.Activity {
	if len(data) == 0 {
		return nil
	}
	var activities []plan.Activity
	if err := yaml.Unmarshal(data, &activities); err != nil {
		return nil
	}
	return activities
}

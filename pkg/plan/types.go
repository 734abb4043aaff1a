package plan

import "time"

// Category classifies an activity in the catalog.
type Category string

const (
	CategoryFood          Category = "food"
	CategoryOutdoor       Category = "outdoor"
	CategoryIndoor        Category = "indoor"
	CategorySocial        Category = "social"
	CategoryWellness      Category = "wellness"
	CategoryEntertainment Category = "entertainment"
	CategoryProductivity  Category = "productivity"
	CategoryHobbies       Category = "hobbies"
)

// Categories lists every valid category, in display order.
var Categories = []Category{
	CategoryFood,
	CategoryOutdoor,
	CategoryIndoor,
	CategorySocial,
	CategoryWellness,
	CategoryEntertainment,
	CategoryProductivity,
	CategoryHobbies,
}

// Label returns the display label for a category.
func (c Category) Label() string {
	switch c {
	case CategoryFood:
		return "Food & Dining"
	case CategoryOutdoor:
		return "Outdoor"
	case CategoryIndoor:
		return "Indoor"
	case CategorySocial:
		return "Social"
	case CategoryWellness:
		return "Wellness"
	case CategoryEntertainment:
		return "Entertainment"
	case CategoryProductivity:
		return "Productivity"
	case CategoryHobbies:
		return "Hobbies"
	default:
		return string(c)
	}
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryFood, CategoryOutdoor, CategoryIndoor, CategorySocial,
		CategoryWellness, CategoryEntertainment, CategoryProductivity, CategoryHobbies:
		return true
	default:
		return false
	}
}

// Mood captures the vibe an activity is meant to deliver.
type Mood string

const (
	MoodRelaxed     Mood = "relaxed"
	MoodEnergetic   Mood = "energetic"
	MoodSocial      Mood = "social"
	MoodAdventurous Mood = "adventurous"
	MoodCreative    Mood = "creative"
	MoodPeaceful    Mood = "peaceful"
)

// Moods lists every valid mood, in display order.
var Moods = []Mood{
	MoodRelaxed,
	MoodEnergetic,
	MoodSocial,
	MoodAdventurous,
	MoodCreative,
	MoodPeaceful,
}

// Label returns the display label for a mood.
func (m Mood) Label() string {
	switch m {
	case MoodRelaxed:
		return "Relaxed"
	case MoodEnergetic:
		return "Energetic"
	case MoodSocial:
		return "Social"
	case MoodAdventurous:
		return "Adventurous"
	case MoodCreative:
		return "Creative"
	case MoodPeaceful:
		return "Peaceful"
	default:
		return string(m)
	}
}

// Valid reports whether m is one of the known moods.
func (m Mood) Valid() bool {
	switch m {
	case MoodRelaxed, MoodEnergetic, MoodSocial, MoodAdventurous, MoodCreative, MoodPeaceful:
		return true
	default:
		return false
	}
}

// TimeOfDay marks a part of the day an activity suits.
type TimeOfDay string

const (
	EarlyMorning TimeOfDay = "early_morning"
	Morning      TimeOfDay = "morning"
	Afternoon    TimeOfDay = "afternoon"
	Evening      TimeOfDay = "evening"
	Night        TimeOfDay = "night"
)

// TimesOfDay lists every time-of-day value, in chronological order.
var TimesOfDay = []TimeOfDay{EarlyMorning, Morning, Afternoon, Evening, Night}

// Label returns the display label for a time of day, including its hour span.
func (t TimeOfDay) Label() string {
	switch t {
	case EarlyMorning:
		return "Early Morning (6-9 AM)"
	case Morning:
		return "Morning (9-12 PM)"
	case Afternoon:
		return "Afternoon (12-5 PM)"
	case Evening:
		return "Evening (5-8 PM)"
	case Night:
		return "Night (8-11 PM)"
	default:
		return string(t)
	}
}

// Theme identifies a curated weekend theme.
type Theme string

const (
	ThemeLazy        Theme = "lazy"
	ThemeAdventurous Theme = "adventurous"
	ThemeFamily      Theme = "family"
	ThemeRomantic    Theme = "romantic"
	ThemeProductive  Theme = "productive"
	ThemeSocial      Theme = "social"
)

// Themes lists every theme, in display order.
var Themes = []Theme{
	ThemeLazy,
	ThemeAdventurous,
	ThemeFamily,
	ThemeRomantic,
	ThemeProductive,
	ThemeSocial,
}

// Activity is a catalog entry that can be scheduled onto plan days.
type Activity struct {
	ID          string      `yaml:"id" json:"id"`
	Name        string      `yaml:"name" json:"name"`
	Description string      `yaml:"description" json:"description"`
	Category    Category    `yaml:"category" json:"category"`
	Duration    float64     `yaml:"duration" json:"duration"` // hours
	Icon        string      `yaml:"icon" json:"icon"`
	Mood        Mood        `yaml:"mood" json:"mood"`
	TimeOfDay   []TimeOfDay `yaml:"timeOfDay" json:"timeOfDay"`
	Color       string      `yaml:"color" json:"color"`
}

// Clone returns a deep copy of the activity. Scheduled instances keep a
// snapshot, so later catalog edits never touch what is already on the plan.
func (a Activity) Clone() Activity {
	c := a
	c.TimeOfDay = append([]TimeOfDay(nil), a.TimeOfDay...)
	return c
}

// ScheduledActivity is one timed placement of an activity on one plan day.
// Its ID is independent of the activity's; the same catalog entry may be
// scheduled any number of times.
type ScheduledActivity struct {
	ID        string   `yaml:"id" json:"id"`
	Activity  Activity `yaml:"activity" json:"activity"`
	Day       string   `yaml:"day" json:"day"`   // lowercase weekday name, for display
	Date      string   `yaml:"date" json:"date"` // date key, YYYY-MM-DD
	StartTime string   `yaml:"startTime" json:"startTime"`
	EndTime   string   `yaml:"endTime" json:"endTime"`
}

// PlanDay is a calendar day belonging to a plan, identified by its date key.
type PlanDay struct {
	Date        string `yaml:"date" json:"date"`
	DayName     string `yaml:"dayName" json:"dayName"`
	DisplayName string `yaml:"displayName" json:"displayName"`
}

// WeekendPlan is the aggregate root: a named set of days with their
// scheduled activities.
//
// Invariants maintained by every mutation:
//   - every key in ActiveDays has an entry in Days and a PlanDay
//   - PlanDays stays sorted ascending by date
//   - StartDate/EndDate equal the first/last sorted PlanDays
//   - at least one active day always remains
type WeekendPlan struct {
	ID         string                         `yaml:"id" json:"id"`
	Name       string                         `yaml:"name" json:"name"`
	StartDate  string                         `yaml:"startDate" json:"startDate"`
	EndDate    string                         `yaml:"endDate" json:"endDate"`
	Days       map[string][]ScheduledActivity `yaml:"days" json:"days"`
	ActiveDays []string                       `yaml:"activeDays" json:"activeDays"`
	PlanDays   []PlanDay                      `yaml:"planDays" json:"planDays"`
	CreatedAt  time.Time                      `yaml:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time                      `yaml:"updatedAt" json:"updatedAt"`
}

// TimeSlot is a suggested start/end pair returned by the slot search.
type TimeSlot struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

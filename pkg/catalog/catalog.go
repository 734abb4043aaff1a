// Package catalog holds the read-only built-in activity catalog and the
// curated weekend themes.
package catalog

import "github.com/arpannema1234/weekendly/pkg/plan"

// Activities is the built-in catalog. Entries are never mutated; schedule
// operations snapshot them.
var Activities = []plan.Activity{
	{
		ID:          "brunch",
		Name:        "Weekend Brunch",
		Description: "Long, lazy brunch with pancakes and good coffee",
		Category:    plan.CategoryFood,
		Duration:    1.5,
		Icon:        "coffee",
		Mood:        plan.MoodRelaxed,
		TimeOfDay:   []plan.TimeOfDay{plan.Morning},
		Color:       "#f59e0b",
	},
	{
		ID:          "hiking",
		Name:        "Trail Hiking",
		Description: "Hit a nearby trail and get some elevation",
		Category:    plan.CategoryOutdoor,
		Duration:    3,
		Icon:        "trees",
		Mood:        plan.MoodAdventurous,
		TimeOfDay:   []plan.TimeOfDay{plan.EarlyMorning, plan.Morning},
		Color:       "#22c55e",
	},
	{
		ID:          "cycling",
		Name:        "Bike Ride",
		Description: "A loop around the park or along the river",
		Category:    plan.CategoryOutdoor,
		Duration:    2,
		Icon:        "bike",
		Mood:        plan.MoodEnergetic,
		TimeOfDay:   []plan.TimeOfDay{plan.Morning, plan.Afternoon},
		Color:       "#10b981",
	},
	{
		ID:          "picnic",
		Name:        "Park Picnic",
		Description: "Blanket, snacks, and an afternoon outside",
		Category:    plan.CategoryOutdoor,
		Duration:    2,
		Icon:        "palmtree",
		Mood:        plan.MoodPeaceful,
		TimeOfDay:   []plan.TimeOfDay{plan.Afternoon},
		Color:       "#84cc16",
	},
	{
		ID:          "movie-night",
		Name:        "Movie Night",
		Description: "Pick a film, make popcorn, dim the lights",
		Category:    plan.CategoryEntertainment,
		Duration:    2.5,
		Icon:        "film",
		Mood:        plan.MoodRelaxed,
		TimeOfDay:   []plan.TimeOfDay{plan.Evening, plan.Night},
		Color:       "#8b5cf6",
	},
	{
		ID:          "board-games",
		Name:        "Board Game Session",
		Description: "Gather friends around the table for a few rounds",
		Category:    plan.CategorySocial,
		Duration:    3,
		Icon:        "gamepad",
		Mood:        plan.MoodSocial,
		TimeOfDay:   []plan.TimeOfDay{plan.Afternoon, plan.Evening},
		Color:       "#ec4899",
	},
	{
		ID:          "dinner-party",
		Name:        "Dinner Party",
		Description: "Host friends for a home-cooked dinner",
		Category:    plan.CategorySocial,
		Duration:    3,
		Icon:        "utensils",
		Mood:        plan.MoodSocial,
		TimeOfDay:   []plan.TimeOfDay{plan.Evening},
		Color:       "#f43f5e",
	},
	{
		ID:          "yoga",
		Name:        "Yoga Session",
		Description: "Stretch, breathe, and reset",
		Category:    plan.CategoryWellness,
		Duration:    1,
		Icon:        "heart",
		Mood:        plan.MoodPeaceful,
		TimeOfDay:   []plan.TimeOfDay{plan.EarlyMorning, plan.Morning},
		Color:       "#14b8a6",
	},
	{
		ID:          "spa-afternoon",
		Name:        "Home Spa Afternoon",
		Description: "Face masks, a long bath, and zero obligations",
		Category:    plan.CategoryWellness,
		Duration:    2,
		Icon:        "sparkles",
		Mood:        plan.MoodRelaxed,
		TimeOfDay:   []plan.TimeOfDay{plan.Afternoon},
		Color:       "#06b6d4",
	},
	{
		ID:          "reading",
		Name:        "Reading Time",
		Description: "A quiet stretch with the book on your nightstand",
		Category:    plan.CategoryIndoor,
		Duration:    1.5,
		Icon:        "book",
		Mood:        plan.MoodPeaceful,
		TimeOfDay:   []plan.TimeOfDay{plan.Morning, plan.Afternoon, plan.Night},
		Color:       "#64748b",
	},
	{
		ID:          "cooking-project",
		Name:        "Cooking Project",
		Description: "Try that recipe you bookmarked months ago",
		Category:    plan.CategoryFood,
		Duration:    2,
		Icon:        "chefHat",
		Mood:        plan.MoodCreative,
		TimeOfDay:   []plan.TimeOfDay{plan.Afternoon, plan.Evening},
		Color:       "#f97316",
	},
	{
		ID:          "painting",
		Name:        "Painting & Sketching",
		Description: "Watercolors, acrylics, or just a pencil",
		Category:    plan.CategoryHobbies,
		Duration:    2,
		Icon:        "palette",
		Mood:        plan.MoodCreative,
		TimeOfDay:   []plan.TimeOfDay{plan.Afternoon},
		Color:       "#a855f7",
	},
	{
		ID:          "live-music",
		Name:        "Live Music",
		Description: "Catch a local gig or open mic",
		Category:    plan.CategoryEntertainment,
		Duration:    3,
		Icon:        "music",
		Mood:        plan.MoodEnergetic,
		TimeOfDay:   []plan.TimeOfDay{plan.Evening, plan.Night},
		Color:       "#6366f1",
	},
	{
		ID:          "museum-visit",
		Name:        "Museum Visit",
		Description: "Wander an exhibition at your own pace",
		Category:    plan.CategoryIndoor,
		Duration:    2.5,
		Icon:        "camera",
		Mood:        plan.MoodCreative,
		TimeOfDay:   []plan.TimeOfDay{plan.Morning, plan.Afternoon},
		Color:       "#0ea5e9",
	},
	{
		ID:          "gym-workout",
		Name:        "Gym Workout",
		Description: "Strength or cardio, your pick",
		Category:    plan.CategoryWellness,
		Duration:    1.5,
		Icon:        "dumbbell",
		Mood:        plan.MoodEnergetic,
		TimeOfDay:   []plan.TimeOfDay{plan.EarlyMorning, plan.Morning, plan.Evening},
		Color:       "#ef4444",
	},
	{
		ID:          "meal-prep",
		Name:        "Meal Prep",
		Description: "Cook ahead so the week takes care of itself",
		Category:    plan.CategoryProductivity,
		Duration:    2,
		Icon:        "salad",
		Mood:        plan.MoodEnergetic,
		TimeOfDay:   []plan.TimeOfDay{plan.Afternoon},
		Color:       "#65a30d",
	},
	{
		ID:          "deep-clean",
		Name:        "Deep Clean",
		Description: "Tidy the corners the weekdays never reach",
		Category:    plan.CategoryProductivity,
		Duration:    2,
		Icon:        "cleaning",
		Mood:        plan.MoodEnergetic,
		TimeOfDay:   []plan.TimeOfDay{plan.Morning, plan.Afternoon},
		Color:       "#78716c",
	},
	{
		ID:          "side-project",
		Name:        "Side Project Time",
		Description: "A focused block on whatever you are building",
		Category:    plan.CategoryProductivity,
		Duration:    3,
		Icon:        "laptop",
		Mood:        plan.MoodCreative,
		TimeOfDay:   []plan.TimeOfDay{plan.Morning, plan.Afternoon},
		Color:       "#475569",
	},
	{
		ID:          "sunrise-walk",
		Name:        "Sunrise Walk",
		Description: "Quiet streets and first light",
		Category:    plan.CategoryOutdoor,
		Duration:    1,
		Icon:        "sunrise",
		Mood:        plan.MoodPeaceful,
		TimeOfDay:   []plan.TimeOfDay{plan.EarlyMorning},
		Color:       "#fb923c",
	},
	{
		ID:          "afternoon-nap",
		Name:        "Afternoon Nap",
		Description: "The weekend's most underrated activity",
		Category:    plan.CategoryIndoor,
		Duration:    1,
		Icon:        "bed",
		Mood:        plan.MoodRelaxed,
		TimeOfDay:   []plan.TimeOfDay{plan.Afternoon},
		Color:       "#94a3b8",
	},
	{
		ID:          "farmers-market",
		Name:        "Farmers Market",
		Description: "Browse the stalls and stock up on produce",
		Category:    plan.CategoryFood,
		Duration:    1.5,
		Icon:        "shoppingCart",
		Mood:        plan.MoodSocial,
		TimeOfDay:   []plan.TimeOfDay{plan.Morning},
		Color:       "#eab308",
	},
	{
		ID:          "date-night",
		Name:        "Date Night Out",
		Description: "Dinner somewhere nice, no phones",
		Category:    plan.CategorySocial,
		Duration:    2.5,
		Icon:        "heart",
		Mood:        plan.MoodRelaxed,
		TimeOfDay:   []plan.TimeOfDay{plan.Evening},
		Color:       "#e11d48",
	},
	{
		ID:          "puzzle-evening",
		Name:        "Puzzle Evening",
		Description: "A jigsaw or crossword with tea",
		Category:    plan.CategoryHobbies,
		Duration:    1.5,
		Icon:        "puzzle",
		Mood:        plan.MoodPeaceful,
		TimeOfDay:   []plan.TimeOfDay{plan.Evening, plan.Night},
		Color:       "#7c3aed",
	},
	{
		ID:          "day-trip",
		Name:        "Day Trip",
		Description: "Drive somewhere you have never been",
		Category:    plan.CategoryOutdoor,
		Duration:    6,
		Icon:        "car",
		Mood:        plan.MoodAdventurous,
		TimeOfDay:   []plan.TimeOfDay{plan.Morning, plan.Afternoon},
		Color:       "#0d9488",
	},
	{
		ID:          "camping",
		Name:        "Overnight Camping",
		Description: "Tent, fire, and stars",
		Category:    plan.CategoryOutdoor,
		Duration:    8,
		Icon:        "tent",
		Mood:        plan.MoodAdventurous,
		TimeOfDay:   []plan.TimeOfDay{plan.Afternoon, plan.Evening, plan.Night},
		Color:       "#166534",
	},
	{
		ID:          "swimming",
		Name:        "Swimming",
		Description: "Laps at the pool or a dip in the lake",
		Category:    plan.CategoryWellness,
		Duration:    1.5,
		Icon:        "waves",
		Mood:        plan.MoodEnergetic,
		TimeOfDay:   []plan.TimeOfDay{plan.Morning, plan.Afternoon},
		Color:       "#0284c7",
	},
}

// ThemeInfo describes one curated weekend theme.
type ThemeInfo struct {
	Theme       plan.Theme
	Name        string
	Description string
	Icon        string
	// SuggestedActivities lists built-in activity ids, in placement order.
	SuggestedActivities []string
}

// WeekendThemes maps each theme to its curated activity list.
var WeekendThemes = map[plan.Theme]ThemeInfo{
	plan.ThemeLazy: {
		Theme:               plan.ThemeLazy,
		Name:                "Lazy Weekend",
		Description:         "Slow mornings, naps, and nowhere to be",
		Icon:                "bed",
		SuggestedActivities: []string{"brunch", "reading", "afternoon-nap", "movie-night", "spa-afternoon"},
	},
	plan.ThemeAdventurous: {
		Theme:               plan.ThemeAdventurous,
		Name:                "Adventure Weekend",
		Description:         "Get outside and go somewhere new",
		Icon:                "tent",
		SuggestedActivities: []string{"sunrise-walk", "hiking", "day-trip", "camping", "swimming"},
	},
	plan.ThemeFamily: {
		Theme:               plan.ThemeFamily,
		Name:                "Family Weekend",
		Description:         "Time together, screens down",
		Icon:                "home",
		SuggestedActivities: []string{"brunch", "picnic", "board-games", "museum-visit", "movie-night"},
	},
	plan.ThemeRomantic: {
		Theme:               plan.ThemeRomantic,
		Name:                "Romantic Weekend",
		Description:         "Just the two of you",
		Icon:                "heart",
		SuggestedActivities: []string{"brunch", "picnic", "date-night", "live-music"},
	},
	plan.ThemeProductive: {
		Theme:               plan.ThemeProductive,
		Name:                "Productive Weekend",
		Description:         "Reset the house and get ahead",
		Icon:                "laptop",
		SuggestedActivities: []string{"gym-workout", "deep-clean", "meal-prep", "side-project"},
	},
	plan.ThemeSocial: {
		Theme:               plan.ThemeSocial,
		Name:                "Social Weekend",
		Description:         "Fill the days with people you like",
		Icon:                "users",
		SuggestedActivities: []string{"farmers-market", "board-games", "dinner-party", "live-music"},
	},
}

// Find returns the built-in activity with the given id, or nil.
func Find(id string) *plan.Activity {
	for i := range Activities {
		if Activities[i].ID == id {
			a := Activities[i].Clone()
			return &a
		}
	}
	return nil
}

// Filter returns built-in activities matching the given category and mood.
// Empty values match everything.
func Filter(category plan.Category, mood plan.Mood) []plan.Activity {
	var out []plan.Activity
	for _, a := range Activities {
		if category != "" && a.Category != category {
			continue
		}
		if mood != "" && a.Mood != mood {
			continue
		}
		out = append(out, a.Clone())
	}
	return out
}

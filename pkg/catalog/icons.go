package catalog

import "strings"

// IconOption pairs an icon key with its display label.
type IconOption struct {
	Key  string
	Name string
}

// IconOptions lists every icon key a custom activity may use.
var IconOptions = []IconOption{
	{Key: "target", Name: "Target"},
	{Key: "users", Name: "Social"},
	{Key: "music", Name: "Music"},
	{Key: "book", Name: "Reading"},
	{Key: "chefHat", Name: "Cooking"},
	{Key: "palette", Name: "Art"},
	{Key: "heart", Name: "Wellness"},
	{Key: "gamepad", Name: "Gaming"},
	{Key: "trees", Name: "Nature"},
	{Key: "coffee", Name: "Coffee"},
	{Key: "theater", Name: "Theater"},
	{Key: "camera", Name: "Photography"},
	{Key: "waves", Name: "Swimming"},
	{Key: "bike", Name: "Cycling"},
	{Key: "puzzle", Name: "Puzzles"},
	{Key: "tent", Name: "Camping"},
	{Key: "sunrise", Name: "Morning"},
	{Key: "pizza", Name: "Pizza"},
	{Key: "film", Name: "Movies"},
	{Key: "palmtree", Name: "Beach"},
	{Key: "dumbbell", Name: "Exercise"},
	{Key: "sparkles", Name: "Fun"},
	{Key: "home", Name: "Home"},
	{Key: "car", Name: "Driving"},
	{Key: "plane", Name: "Travel"},
	{Key: "shoppingCart", Name: "Shopping"},
	{Key: "smartphone", Name: "Phone"},
	{Key: "laptop", Name: "Work"},
	{Key: "utensils", Name: "Dining"},
	{Key: "salad", Name: "Healthy Food"},
	{Key: "cake", Name: "Dessert"},
	{Key: "bed", Name: "Rest"},
	{Key: "cleaning", Name: "Cleaning"},
}

// ValidIcon reports whether key names a known icon.
func ValidIcon(key string) bool {
	for _, opt := range IconOptions {
		if opt.Key == key {
			return true
		}
	}
	return false
}

// iconKeywords maps name substrings to icon keys, checked in order.
var iconKeywords = []struct {
	words []string
	icon  string
}{
	{[]string{"cook", "kitchen"}, "chefHat"},
	{[]string{"read", "book"}, "book"},
	{[]string{"music", "song"}, "music"},
	{[]string{"art", "paint", "draw"}, "palette"},
	{[]string{"exercise", "gym", "workout"}, "dumbbell"},
	{[]string{"game", "play"}, "gamepad"},
	{[]string{"photo", "picture"}, "camera"},
	{[]string{"swim", "pool"}, "waves"},
	{[]string{"bike", "cycle"}, "bike"},
	{[]string{"coffee", "cafe"}, "coffee"},
	{[]string{"movie", "film", "cinema"}, "film"},
	{[]string{"social", "friend", "people"}, "users"},
	{[]string{"nature", "park", "outdoor"}, "trees"},
	{[]string{"shop", "mall", "buy"}, "shoppingCart"},
	{[]string{"travel", "trip", "vacation"}, "plane"},
	{[]string{"work", "office", "computer"}, "laptop"},
	{[]string{"sleep", "nap", "rest"}, "bed"},
	{[]string{"clean", "tidy", "organize"}, "cleaning"},
	{[]string{"food", "eat", "meal"}, "utensils"},
}

// DefaultIcon infers an icon key from an activity name, falling back to
// "target" when nothing matches.
func DefaultIcon(activityName string) string {
	name := strings.ToLower(activityName)
	for _, kw := range iconKeywords {
		for _, w := range kw.words {
			if strings.Contains(name, w) {
				return kw.icon
			}
		}
	}
	return "target"
}

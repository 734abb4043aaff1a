package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/arpannema1234/weekendly/pkg/catalog"
	"github.com/arpannema1234/weekendly/pkg/plan"
	"github.com/arpannema1234/weekendly/pkg/store"
)

var (
	dayHeaderStyle = lipgloss.NewStyle().Bold(true)
	timeStyle      = lipgloss.NewStyle().Faint(true)
	idStyle        = lipgloss.NewStyle().Faint(true)
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	setupLogging()

	records, err := openRecords()
	if err != nil {
		return err
	}
	defer records.Close()

	s := store.NewStore(records, slog.Default())

	args := os.Args[1:]
	jsonOutput := hasFlag(args, "--json")
	force := hasFlag(args, "--force")
	args = removeFlags(args)

	if len(args) == 0 {
		return cmdSchedule(s, "", jsonOutput)
	}

	switch args[0] {
	case "schedule":
		date := ""
		if len(args) >= 2 {
			date = args[1]
		}
		return cmdSchedule(s, date, jsonOutput)
	case "add":
		if len(args) < 3 {
			return fmt.Errorf("usage: weekendly add <activity-id> <date> [start] [end] [--force]")
		}
		start, end := "", ""
		if len(args) >= 4 {
			start = args[3]
		}
		if len(args) >= 5 {
			end = args[4]
		}
		return cmdAdd(s, args[1], args[2], start, end, force, jsonOutput)
	case "remove":
		if len(args) < 2 {
			return fmt.Errorf("usage: weekendly remove <scheduled-id>")
		}
		return cmdRemove(s, args[1], jsonOutput)
	case "retime":
		if len(args) < 3 {
			return fmt.Errorf("usage: weekendly retime <scheduled-id> <start>")
		}
		return cmdRetime(s, args[1], args[2], jsonOutput)
	case "move":
		if len(args) < 4 {
			return fmt.Errorf("usage: weekendly move <scheduled-id> <source-date> <target-date> [--force]")
		}
		return cmdMove(s, args[1], args[2], args[3], force, jsonOutput)
	case "suggest":
		if len(args) < 3 {
			return fmt.Errorf("usage: weekendly suggest <activity-id> <date> [preferred-start]")
		}
		preferred := ""
		if len(args) >= 4 {
			preferred = args[3]
		}
		return cmdSuggest(s, args[1], args[2], preferred, jsonOutput)
	case "clear":
		s.ClearSchedule()
		fmt.Println("Schedule cleared.")
		return nil
	case "day":
		if len(args) < 2 {
			return fmt.Errorf("usage: weekendly day <add|remove> ...")
		}
		switch args[1] {
		case "add":
			after := ""
			if len(args) >= 3 {
				after = args[2]
			}
			return cmdDayAdd(s, after)
		case "remove":
			if len(args) < 3 {
				return fmt.Errorf("usage: weekendly day remove <date> [--force]")
			}
			return cmdDayRemove(s, args[2], force)
		default:
			return fmt.Errorf("unknown day command: %s", args[1])
		}
	case "plan":
		if len(args) < 2 {
			return fmt.Errorf("usage: weekendly plan <new|list|save|load|delete|duplicate> ...")
		}
		return cmdPlan(s, args[1:], jsonOutput)
	case "themes":
		return cmdThemes(jsonOutput)
	case "theme":
		if len(args) < 2 {
			return fmt.Errorf("usage: weekendly theme <lazy|adventurous|family|romantic|productive|social>")
		}
		return cmdTheme(s, args[1], jsonOutput)
	case "activities":
		category := ""
		if len(args) >= 2 {
			category = args[1]
		}
		return cmdActivities(s, category, jsonOutput)
	case "activity":
		if len(args) < 2 {
			return fmt.Errorf("usage: weekendly activity <add|edit> ...")
		}
		return cmdActivity(s, args[1:], jsonOutput)
	case "watch":
		date := ""
		if len(args) >= 2 {
			date = args[1]
		}
		return cmdWatch(s, date)
	default:
		return fmt.Errorf("unknown command: %s\nUsage: weekendly [schedule|add|remove|retime|move|suggest|clear|day|plan|themes|theme|activities|activity|watch]", args[0])
	}
}

func setupLogging() {
	var lvl slog.Level
	switch strings.ToLower(os.Getenv("WEEKENDLY_LOG")) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}

// getDataDir honors --dir first; DefaultDataDir handles WEEKENDLY_DIR.
func getDataDir() string {
	for i, a := range os.Args {
		if a == "--dir" && i+1 < len(os.Args) {
			return os.Args[i+1]
		}
	}
	return store.DefaultDataDir()
}

// openRecords picks the records backend: a sqlite database when --db or
// WEEKENDLY_DB is set, YAML files in the data directory otherwise.
func openRecords() (store.Records, error) {
	dbPath := os.Getenv("WEEKENDLY_DB")
	for i, a := range os.Args {
		if a == "--db" && i+1 < len(os.Args) {
			dbPath = os.Args[i+1]
		}
	}
	if dbPath != "" {
		return store.NewSQLiteRecords(dbPath)
	}
	return store.NewFileRecords(getDataDir())
}

func hasFlag(args []string, flag string) bool {
	for _, a := range args {
		if a == flag {
			return true
		}
	}
	return false
}

// removeFlags strips every --flag and the value following --dir/--db.
func removeFlags(args []string) []string {
	var result []string
	skip := false
	for _, a := range args {
		if skip {
			skip = false
			continue
		}
		if a == "--dir" || a == "--db" {
			skip = true
			continue
		}
		if strings.HasPrefix(a, "--") {
			continue
		}
		result = append(result, a)
	}
	return result
}

// Commands

func cmdSchedule(s *store.Store, date string, jsonOut bool) error {
	p := s.CurrentPlan()

	if jsonOut {
		if date != "" {
			return outputJSON(p.ActivitiesOn(date))
		}
		return outputJSON(p)
	}

	fmt.Printf("%s (%s – %s)\n", p.Name, p.StartDate, p.EndDate)
	for _, day := range p.PlanDays {
		if date != "" && day.Date != date {
			continue
		}
		printDay(p, day)
	}
	return nil
}

func printDay(p *plan.WeekendPlan, day plan.PlanDay) {
	fmt.Println()
	fmt.Println(dayHeaderStyle.Render(day.DisplayName))

	activities := append([]plan.ScheduledActivity(nil), p.ActivitiesOn(day.Date)...)
	if len(activities) == 0 {
		fmt.Println(timeStyle.Render("  (nothing planned)"))
		return
	}

	sort.Slice(activities, func(i, j int) bool {
		return plan.TimeToMinutes(activities[i].StartTime) < plan.TimeToMinutes(activities[j].StartTime)
	})

	for _, sa := range activities {
		name := lipgloss.NewStyle().Foreground(lipgloss.Color(sa.Activity.Color)).Render(sa.Activity.Name)
		times := timeStyle.Render(fmt.Sprintf("%s – %s", plan.FormatTime(sa.StartTime), plan.FormatTime(sa.EndTime)))
		fmt.Printf("  %s  %s %s\n", times, name, idStyle.Render("["+sa.ID+"]"))
	}
}

func cmdAdd(s *store.Store, activityID, date, start, end string, force, jsonOut bool) error {
	activity := s.FindActivity(activityID)
	if activity == nil {
		return fmt.Errorf("unknown activity: %s", activityID)
	}
	if !containsDay(s.CurrentPlan().ActiveDays, date) {
		return fmt.Errorf("%s is not a day of the current plan", date)
	}

	// With explicit times, check for conflicts before committing.
	if start != "" {
		if end == "" {
			end = plan.AddHours(start, activity.Duration)
		}
		if plan.TimeToMinutes(end) <= plan.TimeToMinutes(start) {
			return fmt.Errorf("end time %s must be after start time %s", end, start)
		}

		check := s.CheckActivityConflicts(*activity, date, start, end)
		if check.HasConflicts && !force {
			fmt.Println(check.Message)
			if slot := s.SuggestAlternativeTime(*activity, date, start); slot != nil {
				fmt.Printf("\nNext free slot: %s – %s\n", slot.StartTime, slot.EndTime)
			}
			return fmt.Errorf("scheduling conflict; re-run with --force to add anyway")
		}
		if check.HasConflicts {
			sa := s.AddActivityToScheduleForced(*activity, date, start, end)
			return reportScheduled(sa, jsonOut)
		}
	}

	sa := s.AddActivityToSchedule(*activity, date, start, end)
	return reportScheduled(sa, jsonOut)
}

func reportScheduled(sa plan.ScheduledActivity, jsonOut bool) error {
	if jsonOut {
		return outputJSON(sa)
	}
	fmt.Printf("Scheduled %s on %s at %s – %s [%s]\n",
		sa.Activity.Name, sa.Date, plan.FormatTime(sa.StartTime), plan.FormatTime(sa.EndTime), sa.ID)
	return nil
}

func cmdRemove(s *store.Store, id string, jsonOut bool) error {
	if !s.RemoveActivityFromSchedule(id) {
		return fmt.Errorf("no scheduled activity with id %s", id)
	}
	if jsonOut {
		return outputJSON(map[string]string{"removed": id})
	}
	fmt.Printf("Removed: %s\n", id)
	return nil
}

func cmdRetime(s *store.Store, id, start string, jsonOut bool) error {
	if !s.UpdateActivityTime(id, start) {
		return fmt.Errorf("no scheduled activity with id %s", id)
	}
	sa := s.CurrentPlan().FindScheduled(id)
	if jsonOut {
		return outputJSON(sa)
	}
	fmt.Printf("%s → %s – %s\n", sa.Activity.Name, plan.FormatTime(sa.StartTime), plan.FormatTime(sa.EndTime))
	return nil
}

func cmdMove(s *store.Store, id, sourceDate, targetDate string, force, jsonOut bool) error {
	if !containsDay(s.CurrentPlan().ActiveDays, targetDate) {
		return fmt.Errorf("%s is not a day of the current plan", targetDate)
	}

	check := s.CheckMoveConflicts(id, targetDate)
	if check.HasConflicts && !force {
		fmt.Println(check.Message)
		return fmt.Errorf("scheduling conflict; re-run with --force to move anyway")
	}

	if !s.MoveActivity(id, sourceDate, targetDate) {
		return fmt.Errorf("no scheduled activity %s on %s", id, sourceDate)
	}
	if jsonOut {
		return outputJSON(s.CurrentPlan().FindScheduled(id))
	}
	fmt.Printf("Moved %s: %s → %s\n", check.ActivityName, sourceDate, targetDate)
	return nil
}

func cmdSuggest(s *store.Store, activityID, date, preferred string, jsonOut bool) error {
	activity := s.FindActivity(activityID)
	if activity == nil {
		return fmt.Errorf("unknown activity: %s", activityID)
	}

	slot := s.SuggestAlternativeTime(*activity, date, preferred)
	if jsonOut {
		return outputJSON(slot)
	}
	if slot == nil {
		fmt.Printf("No free slot for %s on %s.\n", activity.Name, date)
		return nil
	}
	fmt.Printf("%s fits on %s at %s – %s\n", activity.Name, date, slot.StartTime, slot.EndTime)
	return nil
}

func cmdDayAdd(s *store.Store, after string) error {
	key, ok := s.AddDay(after)
	if !ok {
		return fmt.Errorf("that day already exists in the plan")
	}
	fmt.Printf("Added day: %s\n", key)
	return nil
}

func cmdDayRemove(s *store.Store, date string, force bool) error {
	if s.DayHasActivities(date) && !force {
		return fmt.Errorf("%s has %d scheduled activities; re-run with --force to remove it",
			date, s.DayActivityCount(date))
	}
	if !s.RemoveDay(date, force) {
		return fmt.Errorf("cannot remove %s (last remaining day, or not part of the plan)", date)
	}
	fmt.Printf("Removed day: %s\n", date)
	return nil
}

func cmdPlan(s *store.Store, args []string, jsonOut bool) error {
	switch args[0] {
	case "new":
		if len(args) < 3 {
			return fmt.Errorf("usage: weekendly plan new <start-date> <end-date> [name]")
		}
		start, end := args[1], args[2]
		if !plan.IsValidDateRange(start, end) {
			return fmt.Errorf("invalid date range: %s is after %s", start, end)
		}
		name := plan.DefaultPlanName
		if len(args) >= 4 {
			name = strings.Join(args[3:], " ")
		}
		p := s.CreateNewPlan(start, end, name)
		if jsonOut {
			return outputJSON(p)
		}
		fmt.Printf("Created plan %q with %d days [%s]\n", p.Name, len(p.PlanDays), p.ID)
		return nil
	case "list":
		plans := s.SavedPlans()
		if jsonOut {
			return outputJSON(plans)
		}
		if len(plans) == 0 {
			fmt.Println("No saved plans.")
			return nil
		}
		for _, p := range plans {
			fmt.Printf("%s  %s (%s – %s) %s\n", idStyle.Render(p.ID), p.Name, p.StartDate, p.EndDate,
				timeStyle.Render("updated "+p.UpdatedAt.Format("2006-01-02 15:04")))
		}
		return nil
	case "save":
		s.SavePlan(nil)
		fmt.Printf("Saved: %s\n", s.CurrentPlan().Name)
		return nil
	case "load":
		if len(args) < 2 {
			return fmt.Errorf("usage: weekendly plan load <plan-id>")
		}
		if !s.LoadPlan(args[1]) {
			return fmt.Errorf("no saved plan with id %s", args[1])
		}
		fmt.Printf("Loaded: %s\n", s.CurrentPlan().Name)
		return nil
	case "delete":
		if len(args) < 2 {
			return fmt.Errorf("usage: weekendly plan delete <plan-id>")
		}
		if !s.DeleteSavedPlan(args[1]) {
			return fmt.Errorf("no saved plan with id %s", args[1])
		}
		fmt.Printf("Deleted: %s\n", args[1])
		return nil
	case "duplicate":
		if len(args) < 2 {
			return fmt.Errorf("usage: weekendly plan duplicate <plan-id> [name]")
		}
		name := ""
		if len(args) >= 3 {
			name = strings.Join(args[2:], " ")
		}
		dup := s.DuplicatePlan(args[1], name)
		if dup == nil {
			return fmt.Errorf("no saved plan with id %s", args[1])
		}
		if jsonOut {
			return outputJSON(dup)
		}
		fmt.Printf("Duplicated as %q [%s]\n", dup.Name, dup.ID)
		return nil
	default:
		return fmt.Errorf("unknown plan command: %s", args[0])
	}
}

func cmdThemes(jsonOut bool) error {
	if jsonOut {
		return outputJSON(catalog.WeekendThemes)
	}
	for _, t := range plan.Themes {
		info := catalog.WeekendThemes[t]
		fmt.Printf("%-12s %s  %s\n", t, info.Name, timeStyle.Render(info.Description))
	}
	return nil
}

func cmdTheme(s *store.Store, name string, jsonOut bool) error {
	info, ok := catalog.WeekendThemes[plan.Theme(name)]
	if !ok {
		return fmt.Errorf("unknown theme: %s", name)
	}

	placed := s.ApplyTheme(info.SuggestedActivities, s.Activities())
	if jsonOut {
		return outputJSON(s.CurrentPlan())
	}
	fmt.Printf("Applied %q: %d activities placed.\n", info.Name, placed)
	return cmdSchedule(s, "", false)
}

func cmdActivities(s *store.Store, category string, jsonOut bool) error {
	activities := s.Activities()
	if category != "" {
		c := plan.Category(category)
		if !c.Valid() {
			return fmt.Errorf("unknown category: %s", category)
		}
		filtered := activities[:0]
		for _, a := range activities {
			if a.Category == c {
				filtered = append(filtered, a)
			}
		}
		activities = filtered
	}

	if jsonOut {
		return outputJSON(activities)
	}
	for _, a := range activities {
		name := lipgloss.NewStyle().Foreground(lipgloss.Color(a.Color)).Render(a.Name)
		fmt.Printf("%-16s %s %s\n", a.ID, name,
			timeStyle.Render(fmt.Sprintf("(%s, %s, %.1fh)", a.Category.Label(), a.Mood.Label(), a.Duration)))
	}
	return nil
}

func cmdActivity(s *store.Store, args []string, jsonOut bool) error {
	switch args[0] {
	case "add":
		if len(args) < 4 {
			return fmt.Errorf("usage: weekendly activity add <name> <category> <duration-hours> [description]")
		}
		a, err := parseActivityArgs("", args[1:])
		if err != nil {
			return err
		}
		added := s.AddCustomActivity(a)
		if jsonOut {
			return outputJSON(added)
		}
		fmt.Printf("Added custom activity %q [%s]\n", added.Name, added.ID)
		return nil
	case "edit":
		if len(args) < 5 {
			return fmt.Errorf("usage: weekendly activity edit <id> <name> <category> <duration-hours> [description]")
		}
		a, err := parseActivityArgs(args[1], args[2:])
		if err != nil {
			return err
		}
		if !s.UpdateCustomActivity(a) {
			return fmt.Errorf("no custom activity with id %s (built-in activities cannot be edited)", args[1])
		}
		if jsonOut {
			return outputJSON(a)
		}
		fmt.Printf("Updated: %s\n", a.Name)
		return nil
	default:
		return fmt.Errorf("unknown activity command: %s", args[0])
	}
}

func parseActivityArgs(id string, args []string) (plan.Activity, error) {
	name := args[0]
	category := plan.Category(args[1])
	if !category.Valid() {
		return plan.Activity{}, fmt.Errorf("unknown category: %s (valid: %v)", args[1], plan.Categories)
	}
	duration, err := strconv.ParseFloat(args[2], 64)
	if err != nil || duration <= 0 {
		return plan.Activity{}, fmt.Errorf("invalid duration: %s", args[2])
	}
	description := ""
	if len(args) >= 4 {
		description = strings.Join(args[3:], " ")
	}

	return plan.Activity{
		ID:          id,
		Name:        name,
		Description: description,
		Category:    category,
		Duration:    duration,
		Icon:        catalog.DefaultIcon(name),
		Mood:        plan.MoodRelaxed,
		TimeOfDay:   []plan.TimeOfDay{plan.Afternoon},
		Color:       "#6366f1",
	}, nil
}

func cmdWatch(s *store.Store, date string) error {
	fileRecords, ok := recordsRoot()
	if !ok {
		return fmt.Errorf("watch requires the file backend (not --db)")
	}

	render := func() {
		fmt.Print("\033[2J\033[H") // clear screen
		cmdSchedule(s, date, false)
	}
	render()

	cleanup, err := store.Watch(fileRecords, func() {
		s.Reload()
		render()
	})
	if err != nil {
		return err
	}
	defer cleanup()

	select {} // until interrupted
}

func recordsRoot() (string, bool) {
	if os.Getenv("WEEKENDLY_DB") != "" || hasFlag(os.Args, "--db") {
		return "", false
	}
	return getDataDir(), true
}

func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func containsDay(days []string, date string) bool {
	for _, d := range days {
		if d == date {
			return true
		}
	}
	return false
}

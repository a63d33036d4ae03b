// Package itinerary builds day-by-day trip plans from fixed template
// tables. Everything is deterministic except tip selection, which
// draws from an injected randomness source so tests can seed it.
package itinerary

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"
)

const (
	minDays = 1
	maxDays = 14
)

// paceActivities maps a pace to the target number of activities per
// day. Unrecognized paces fall back to moderate.
var paceActivities = map[string]int{
	"relaxed":  3,
	"moderate": 4,
	"packed":   6,
}

// dayTitles are used for the first seven days; longer trips fall back
// to a generic "Day N in <destination>" label.
var dayTitles = []string{
	"Arrival and First Impressions",
	"Historic Landmarks",
	"Local Culture Immersion",
	"Markets and Neighborhoods",
	"Nature and Open Spaces",
	"Hidden Gems",
	"Farewell Highlights",
}

// activityTemplates has exactly 6 entries, which caps the packed pace
// at 6 activities per day. That ceiling is part of the contract; do
// not extend the table to lift it without redesigning the templates.
var activityTemplates = []struct {
	time     string
	name     string
	duration string
}{
	{"09:00", "Guided morning walking tour", "2 hours"},
	{"11:30", "Museum or gallery visit", "1.5 hours"},
	{"13:30", "Stroll through the main market district", "1 hour"},
	{"15:00", "Landmark sightseeing", "2 hours"},
	{"17:30", "Sunset viewpoint visit", "1 hour"},
	{"20:00", "Evening entertainment district walk", "1.5 hours"},
}

var tipPool = []string{
	"Carry a refillable water bottle.",
	"Learn a few phrases in the local language.",
	"Keep digital copies of your travel documents.",
	"Try at least one street food specialty.",
	"Validate public transport tickets before boarding.",
}

// Activity is a single scheduled slot within a day.
type Activity struct {
	Time     string `json:"time"`
	Name     string `json:"name"`
	Duration string `json:"duration"`
	Location string `json:"location"`
}

// Meals lists the three meal suggestions for a day.
type Meals struct {
	Breakfast string `json:"breakfast"`
	Lunch     string `json:"lunch"`
	Dinner    string `json:"dinner"`
}

// Day is one day of a plan.
type Day struct {
	DayNumber  int        `json:"day_number"`
	Title      string     `json:"title"`
	Activities []Activity `json:"activities"`
	Meals      Meals      `json:"meals"`
	Tips       []string   `json:"tips"`
}

// Plan is the structured result of a Build. Status is "success" or
// "error"; only success plans carry days.
type Plan struct {
	Status      string   `json:"status"`
	Destination string   `json:"destination,omitempty"`
	Duration    string   `json:"duration,omitempty"`
	Pace        string   `json:"pace,omitempty"`
	Interests   []string `json:"interests,omitempty"`
	Days        []Day    `json:"days,omitempty"`
	Summary     string   `json:"summary,omitempty"`
	Message     string   `json:"message,omitempty"`
}

// Generator builds plans. The rand source is only used for tip
// sampling; the mutex makes Build safe for concurrent callers since
// rand.Rand is not goroutine-safe.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewGenerator constructs a Generator. A nil rng gets a time-seeded
// source; tests pass a seeded one for reproducible tips.
func NewGenerator(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rng: rng}
}

// Build assembles a plan for destination. days is clamped to [1,14]
// and unknown paces become "moderate". The caller decides how the
// result is delivered; Build itself never fails beyond the empty
// destination check.
func (g *Generator) Build(destination string, days int, interests []string, pace string) *Plan {
	destination = strings.TrimSpace(destination)
	if destination == "" {
		return &Plan{Status: "error", Message: "destination cannot be empty"}
	}

	if days < minDays {
		days = minDays
	} else if days > maxDays {
		days = maxDays
	}

	pace = strings.ToLower(strings.TrimSpace(pace))
	target, ok := paceActivities[pace]
	if !ok {
		pace = "moderate"
		target = paceActivities[pace]
	}
	if target > len(activityTemplates) {
		target = len(activityTemplates)
	}

	wantsFood := false
	for _, interest := range interests {
		if strings.EqualFold(strings.TrimSpace(interest), "food") {
			wantsFood = true
			break
		}
	}

	totalActivities := 0
	planDays := make([]Day, 0, days)
	for i := 0; i < days; i++ {
		day := g.buildDay(destination, i, target, wantsFood)
		totalActivities += len(day.Activities)
		planDays = append(planDays, day)
	}

	if interests == nil {
		interests = []string{}
	}

	return &Plan{
		Status:      "success",
		Destination: destination,
		Duration:    fmt.Sprintf("%d-day", days),
		Pace:        pace,
		Interests:   interests,
		Days:        planDays,
		Summary: fmt.Sprintf("Your %d-day trip to %s includes %d planned activities at a %s pace.",
			days, destination, totalActivities, pace),
	}
}

func (g *Generator) buildDay(destination string, index, target int, wantsFood bool) Day {
	title := fmt.Sprintf("Day %d in %s", index+1, destination)
	if index < len(dayTitles) {
		title = dayTitles[index]
	}

	activities := make([]Activity, 0, target)
	for _, tpl := range activityTemplates[:target] {
		activities = append(activities, Activity{
			Time:     tpl.time,
			Name:     tpl.name,
			Duration: tpl.duration,
			Location: fmt.Sprintf("Central %s", destination),
		})
	}

	dinner := "Casual dinner at a neighborhood favorite"
	if wantsFood {
		dinner = "Fine dining experience"
	}

	return Day{
		DayNumber:  index + 1,
		Title:      title,
		Activities: activities,
		Meals: Meals{
			Breakfast: "Breakfast at the hotel",
			Lunch:     fmt.Sprintf("Lunch at a local spot in %s", destination),
			Dinner:    dinner,
		},
		Tips: g.sampleTips(2),
	}
}

// sampleTips picks n tips from the pool without replacement.
func (g *Generator) sampleTips(n int) []string {
	g.mu.Lock()
	perm := g.rng.Perm(len(tipPool))
	g.mu.Unlock()
	tips := make([]string, 0, n)
	for _, idx := range perm[:n] {
		tips = append(tips, tipPool[idx])
	}
	return tips
}

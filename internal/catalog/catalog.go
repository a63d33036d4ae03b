// Package catalog searches a static, tier-gated destination catalog.
// Higher pass tiers unlock strict supersets of lower ones; all tables
// are read-only after init, so Search is pure and goroutine-safe.
package catalog

import (
	"fmt"
	"strings"
)

const (
	defaultLimit = 10
	maxLimit     = 20
)

// View is the display projection of a Destination: list fields are
// joined into single strings and internal fields are dropped.
type View struct {
	Name        string `json:"name"`
	Region      string `json:"region"`
	Type        string `json:"type"`
	Activities  string `json:"activities"`
	BestSeasons string `json:"best_seasons"`
	Highlights  string `json:"highlights"`
}

// PassInfo summarizes what a tier unlocks.
type PassInfo struct {
	Tier        string   `json:"tier"`
	DisplayName string   `json:"display_name"`
	Unlocked    int      `json:"destinations_unlocked"`
	Regions     []string `json:"regions"`
	Description string   `json:"description"`
}

// Filters echoes the parameters a search was run with.
type Filters struct {
	Query  string `json:"query"`
	Season string `json:"season"`
	Limit  int    `json:"limit"`
}

// SearchResponse is the structured result of a Search. Status is one
// of "success", "no_results", or "error".
type SearchResponse struct {
	Status         string    `json:"status"`
	Message        string    `json:"message,omitempty"`
	Pass           *PassInfo `json:"pass,omitempty"`
	Results        []View    `json:"results"`
	Filters        *Filters  `json:"filters,omitempty"`
	TotalAvailable int       `json:"total_available,omitempty"`
}

// Search filters the destinations unlocked by passTier. A query or
// season of "any" (or empty) matches everything. The tier is not
// defaulted: unknown tiers produce an "error" response. limit is
// clamped to [1,20] and results keep catalog order.
func Search(passTier, query, season string, limit int) *SearchResponse {
	tier := strings.ToLower(strings.TrimSpace(passTier))

	all, ok := unlocked(tier)
	if !ok {
		return &SearchResponse{
			Status:  "error",
			Message: fmt.Sprintf("unknown pass tier %q: must be silver, gold, or platinum", passTier),
			Results: []View{},
		}
	}

	if limit < 1 {
		limit = 1
	} else if limit > maxLimit {
		limit = maxLimit
	}

	query = normalizeFilter(query)
	season = normalizeFilter(season)

	var results []View
	for _, d := range all {
		if len(results) == limit {
			break
		}
		if matchesQuery(d, query) && matchesSeason(d, season) {
			results = append(results, project(d))
		}
	}

	filters := &Filters{Query: query, Season: season, Limit: limit}

	if len(results) == 0 {
		return &SearchResponse{
			Status:         "no_results",
			Message:        fmt.Sprintf("no destinations matched; %d are available on the %s pass", len(all), tier),
			Results:        []View{},
			Filters:        filters,
			TotalAvailable: len(all),
		}
	}

	info := tiers[tier]
	return &SearchResponse{
		Status: "success",
		Pass: &PassInfo{
			Tier:        tier,
			DisplayName: info.display,
			Unlocked:    len(all),
			Regions:     regions(all),
			Description: info.description,
		},
		Results: results,
		Filters: filters,
	}
}

func normalizeFilter(v string) string {
	v = strings.ToLower(strings.TrimSpace(v))
	if v == "" {
		return "any"
	}
	return v
}

// matchesQuery reports whether d matches the lowercased free-text
// query: against the type tag, either direction against each activity
// tag, or against the name.
func matchesQuery(d Destination, query string) bool {
	if query == "any" {
		return true
	}
	if strings.Contains(strings.ToLower(d.Type), query) {
		return true
	}
	for _, act := range d.Activities {
		act = strings.ToLower(act)
		if strings.Contains(act, query) || strings.Contains(query, act) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(d.Name), query)
}

// matchesSeason requires literal membership in the destination's
// season set.
func matchesSeason(d Destination, season string) bool {
	if season == "any" {
		return true
	}
	for _, s := range d.BestSeasons {
		if s == season {
			return true
		}
	}
	return false
}

func project(d Destination) View {
	return View{
		Name:        d.Name,
		Region:      d.Region,
		Type:        d.Type,
		Activities:  strings.Join(d.Activities, ", "),
		BestSeasons: strings.Join(d.BestSeasons, ", "),
		Highlights:  d.Highlights,
	}
}

// regions returns the distinct regions covered by ds, in first-seen
// order.
func regions(ds []Destination) []string {
	seen := make(map[string]bool, len(ds))
	var out []string
	for _, d := range ds {
		if !seen[d.Region] {
			seen[d.Region] = true
			out = append(out, d.Region)
		}
	}
	return out
}

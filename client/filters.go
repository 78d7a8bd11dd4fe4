package client

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/packtime/api/catalog"
)

// All is the sentinel for dropdown filters that have no selection.
const All = "all"

// FilterState holds the in-progress filter selections. The UI mutates
// it freely; nothing reads it for results until Apply is called.
type FilterState struct {
	Term              string
	SearchQuery       string
	Department        string
	Room              string
	CourseCareer      string
	ShowOpenOnly      bool
	ModeOfInstruction string
	Level             string
	Credits           string
	SelectedDays      []string
}

// AppliedFilters is the snapshot taken when the user commits a search.
// Results always derive from the most recent snapshot, never from
// in-progress edits.
type AppliedFilters struct {
	Term              string
	SearchQuery       string
	Department        string
	Room              string
	CourseCareer      string
	ShowOpenOnly      bool
	ModeOfInstruction string
	Level             string
	Credits           string
	SelectedDays      []string
}

// NewFilterState returns filter state at its defaults.
func NewFilterState() *FilterState {
	f := &FilterState{}
	f.Reset()
	return f
}

// Reset restores every filter to its default.
func (f *FilterState) Reset() {
	*f = FilterState{
		Term:              "Spring 2025",
		Department:        All,
		CourseCareer:      All,
		ModeOfInstruction: All,
		Level:             All,
		Credits:           All,
	}
}

// Apply snapshots the current selections.
func (f *FilterState) Apply() AppliedFilters {
	days := make([]string, len(f.SelectedDays))
	copy(days, f.SelectedDays)
	return AppliedFilters{
		Term:              f.Term,
		SearchQuery:       f.SearchQuery,
		Department:        f.Department,
		Room:              f.Room,
		CourseCareer:      f.CourseCareer,
		ShowOpenOnly:      f.ShowOpenOnly,
		ModeOfInstruction: f.ModeOfInstruction,
		Level:             f.Level,
		Credits:           f.Credits,
		SelectedDays:      days,
	}
}

// ToggleDay adds a weekday to the selection, or removes it if it is
// already selected. Selection order is preserved for the days token.
func (f *FilterState) ToggleDay(day string) {
	for i, d := range f.SelectedDays {
		if d == day {
			f.SelectedDays = append(f.SelectedDays[:i], f.SelectedDays[i+1:]...)
			return
		}
	}
	f.SelectedDays = append(f.SelectedDays, day)
}

// courseCodePattern matches queries like "CS 101" or "bio120" so they
// can become exact subject and catalog number filters.
var courseCodePattern = regexp.MustCompile(`^([A-Za-z]+)\s*([0-9]+)$`)

// BuildSearchParams translates an applied filter snapshot into the
// search endpoint's query parameters. Only non-default fields appear
// in the output. The translation is pure, identical snapshots always
// produce identical parameters.
func BuildSearchParams(f AppliedFilters) url.Values {
	params := url.Values{}
	if q := strings.TrimSpace(f.SearchQuery); q != "" {
		if m := courseCodePattern.FindStringSubmatch(q); m != nil {
			params.Set("subject", strings.ToUpper(m[1]))
			params.Set("catalog_num", m[2])
		} else {
			params.Set("search_query", q)
		}
	}
	if f.Department != "" && f.Department != All {
		params.Set("department", f.Department)
	}
	if room := strings.TrimSpace(f.Room); room != "" {
		params.Set("room", room)
	}
	if tok := catalog.DaysToken(f.SelectedDays); tok != "" {
		params.Set("days", tok)
	}
	if f.Term != "" && f.Term != All {
		params.Set("term", catalog.TermCode(f.Term))
	}
	if f.CourseCareer != "" && f.CourseCareer != All {
		params.Set("course_career", f.CourseCareer)
	}
	switch f.Credits {
	case "", All:
	case "5+":
		params.Set("units", "5")
		params.Set("units_operator", "greater_equal")
	default:
		if _, err := strconv.Atoi(f.Credits); err == nil {
			params.Set("units", f.Credits)
			params.Set("units_operator", "exact")
		}
	}
	if f.ModeOfInstruction != "" && f.ModeOfInstruction != All {
		params.Set("instruction_mode", catalog.ModeCode(f.ModeOfInstruction))
	}
	if f.Level != "" && f.Level != All {
		if tok, ok := catalog.LevelToken(f.Level); ok {
			params.Set("level", tok)
		}
	}
	// ShowOpenOnly has no parameter yet. The search contract has no
	// agreed status filter, so the toggle is held client-side until
	// one exists.
	return params
}

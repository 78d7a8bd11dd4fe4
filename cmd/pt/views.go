package main

import (
	"fmt"
	"strings"

	"github.com/packtime/api/catalog"
	"github.com/packtime/api/client"
)

func (s *shell) searchCommand(cmd string, args []string, line string) error {
	arg := strings.Join(args, " ")
	switch cmd {
	case "query":
		// keep the raw text, including extra spaces
		s.filters.SearchQuery = strings.TrimSpace(strings.TrimPrefix(line, "query"))
	case "dept":
		s.filters.Department = strings.ToUpper(arg)
		if strings.EqualFold(arg, client.All) {
			s.filters.Department = client.All
		}
	case "term":
		s.filters.Term = arg
	case "day":
		if len(args) != 1 {
			return fmt.Errorf("usage: day <Mon..Sun>")
		}
		s.filters.ToggleDay(capitalize(args[0]))
	case "mode":
		s.filters.ModeOfInstruction = arg
	case "level":
		s.filters.Level = arg
	case "credits":
		s.filters.Credits = arg
	case "career":
		s.filters.CourseCareer = arg
	case "open":
		s.filters.ShowOpenOnly = !s.filters.ShowOpenOnly
		fmt.Printf("open sections only: %v\n", s.filters.ShowOpenOnly)
	case "filters":
		s.renderFilters()
	case "reset":
		s.filters.Reset()
		fmt.Println("Filters reset.")
	case "search":
		return s.runSearch()
	case "show":
		return s.showSection(args)
	case "add":
		return s.plannerCommand("add", args)
	default:
		return fmt.Errorf("unknown command: %s", cmd)
	}
	return nil
}

// capitalize normalizes day names like "mon" or "TUE" to "Mon", "Tue".
func capitalize(s string) string {
	if s == "" {
		return s
	}
	s = strings.ToLower(s)
	return strings.ToUpper(s[:1]) + s[1:]
}

func (s *shell) runSearch() error {
	applied := s.filters.Apply()
	if s.offline {
		s.renderLocal(applied)
		return nil
	}
	fmt.Println("Searching...")
	s.searcher.Search(applied)
	return nil
}

func (s *shell) renderResults() {
	sections, err := s.searcher.Results()
	fmt.Println()
	if err != nil {
		fmt.Println("Search failed:", err)
		return
	}
	if len(sections) == 0 {
		fmt.Println("No sections found.")
		return
	}
	fmt.Printf("%d sections:\n", len(sections))
	for i := range sections {
		d := catalog.NewDisplayCourse(&sections[i])
		s.renderCard(&d)
	}
}

// renderLocal filters the bundled course list in memory. Only the
// filters that make sense without a backend apply.
func (s *shell) renderLocal(f client.AppliedFilters) {
	n := 0
	q := strings.ToLower(strings.TrimSpace(f.SearchQuery))
	for i := range localCourses {
		c := &localCourses[i]
		if f.Department != client.All && !strings.EqualFold(c.Department, f.Department) {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(c.Title), q) &&
			!strings.Contains(strings.ToLower(c.Code), q) &&
			!strings.Contains(strings.ToLower(c.Instructor), q) {
			continue
		}
		d := catalog.DisplayCourseFromLocal(c)
		if f.ShowOpenOnly && d.Availability() != catalog.StatusOpen {
			continue
		}
		s.renderCard(&d)
		n++
	}
	if n == 0 {
		fmt.Println("No courses match.")
	}
}

// renderCard prints one course card. The same card renders live
// sections and the bundled courses because both come in as a
// DisplayCourse.
func (s *shell) renderCard(d *catalog.DisplayCourse) {
	planned := ""
	if s.planner.Has(d.ID) {
		planned = "  [planned]"
	}
	fmt.Printf(
		"  [%s] %s - %s%s\n      %s | %s | %d units | %s | %s\n      %s, %d/%d enrolled (%s)\n",
		d.ID, d.Code, d.Title, planned,
		d.Schedule, d.Instructor, d.Credits, d.Level, d.ModeOfInstruction,
		d.Location, d.Enrolled, d.Capacity, d.Availability(),
	)
}

func (s *shell) renderFilters() {
	f := s.filters
	fmt.Printf(`Current filters:
  query:   %q
  dept:    %s
  term:    %s
  days:    %s
  mode:    %s
  level:   %s
  credits: %s
  career:  %s
  open only: %v
`, f.SearchQuery, f.Department, f.Term, strings.Join(f.SelectedDays, ","),
		f.ModeOfInstruction, f.Level, f.Credits, f.CourseCareer, f.ShowOpenOnly)
}

func (s *shell) showSection(args []string) error {
	id, err := oneID(args)
	if err != nil {
		return fmt.Errorf("usage: show <section id>")
	}
	if s.offline {
		return fmt.Errorf("section details need a server")
	}
	detail, err := s.client.SectionDetails(id)
	if err != nil {
		return err
	}
	fmt.Printf("%s (%s, %s, %s)\n",
		detail.CourseCode, detail.Level, detail.CourseCareer, detail.InstructionMode)
	for _, inst := range detail.Instructors {
		fmt.Printf("  instructor: %s %s\n", inst["first_name"], inst["last_name"])
	}
	return nil
}

func (s *shell) renderHome() {
	fmt.Println("Home. Views: search, planner, programs, settings.")
	if s.offline {
		fmt.Printf("%d courses available offline.\n", len(localCourses))
		return
	}
	if depts, err := s.client.Departments(); err == nil {
		codes := make([]string, 0, len(depts))
		for _, d := range depts {
			codes = append(codes, d.Code)
		}
		fmt.Println("Departments:", strings.Join(codes, ", "))
	}
	if terms, err := s.client.Terms(); err == nil {
		names := make([]string, 0, len(terms))
		for _, t := range terms {
			names = append(names, t.Name)
		}
		fmt.Println("Terms:", strings.Join(names, ", "))
	}
}

// renderPrograms groups the known catalog by department. Offline it
// walks the bundled list; online it uses the overview endpoint's
// department list.
func (s *shell) renderPrograms() {
	if s.offline {
		byDept := map[string]int{}
		for i := range localCourses {
			d := catalog.DisplayCourseFromLocal(&localCourses[i])
			byDept[d.Department]++
		}
		for dept, n := range byDept {
			fmt.Printf("  %s: %d courses\n", dept, n)
		}
		return
	}
	depts, err := s.client.Departments()
	if err != nil {
		fmt.Println("Could not load programs:", err)
		return
	}
	for _, d := range depts {
		fmt.Printf("  %s", d.Code)
		if d.College != "" {
			fmt.Printf(" (%s)", d.College)
		}
		fmt.Println()
	}
}

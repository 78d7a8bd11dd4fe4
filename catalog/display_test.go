package catalog

import "testing"

func strptr(s string) *string { return &s }

func TestNewDisplayCourse(t *testing.T) {
	sec := Section{
		SectionID:       1201,
		CourseCode:      "CS 135",
		CourseTitle:     "Computer Science I",
		SectionNum:      2,
		Days:            strptr("MWF"),
		StartTime:       strptr("14:30:00"),
		EndTime:         strptr("15:45:00"),
		Units:           3,
		Instructor:      "Ada Lovelace",
		Status:          "Open",
		Room:            strptr("SEM 101"),
		Component:       "LEC",
		InstructionMode: "P",
		CatalogNum:      135,
		Enrolled:        20,
		Capacity:        30,
	}
	d := NewDisplayCourse(&sec)
	if d.ID != "1201" {
		t.Errorf("id = %q", d.ID)
	}
	if d.Schedule != "MWF 2:30 PM - 3:45 PM" {
		t.Errorf("schedule = %q", d.Schedule)
	}
	if d.Department != "CS" {
		t.Errorf("department should fall back to the code subject, got %q", d.Department)
	}
	if d.Level != "100 Level" {
		t.Errorf("level = %q", d.Level)
	}
	if d.CourseCareer != "Undergraduate" {
		t.Errorf("career = %q", d.CourseCareer)
	}
	if d.ModeOfInstruction != "In Person" {
		t.Errorf("mode = %q", d.ModeOfInstruction)
	}
	if d.Availability() != StatusOpen {
		t.Errorf("availability = %q", d.Availability())
	}
}

func TestNewDisplayCourseMissingFields(t *testing.T) {
	// nil days, times and room must not crash and must render defaults
	sec := Section{
		SectionID:       8,
		CourseCode:      "BIO500",
		CourseTitle:     "Advanced Molecular Biology",
		InstructionMode: "WA",
		CatalogNum:      500,
		Enrolled:        12,
		Capacity:        0,
	}
	d := NewDisplayCourse(&sec)
	if d.Schedule != "TBA  - " {
		t.Errorf("schedule = %q", d.Schedule)
	}
	if d.Location != "" {
		t.Errorf("location = %q", d.Location)
	}
	if d.Department != "BIO500" {
		t.Errorf("department = %q", d.Department)
	}
	if d.Availability() != StatusFull {
		t.Error("zero capacity should read as full")
	}
	if d.ModeOfInstruction != "Asynchronous Online" {
		t.Errorf("mode = %q", d.ModeOfInstruction)
	}
}

func TestDisplayCourseFromLocal(t *testing.T) {
	c := LocalCourse{
		ID:                "11",
		Code:              "CS 401",
		CourseNumber:      "401",
		Title:             "Machine Learning",
		Instructor:        "Alex Zhang",
		Schedule:          "MW 4:00 PM - 5:30 PM",
		Credits:           3,
		Enrolled:          19,
		Capacity:          20,
		Location:          "AI Research Center 301",
		Department:        "Computer Science",
		CourseCareer:      "Graduate",
		ModeOfInstruction: "Synchronous Online",
	}
	d := DisplayCourseFromLocal(&c)
	if d.ID != "11" || d.Code != "CS 401" {
		t.Errorf("bad identity fields: %+v", d)
	}
	if d.Department != "Computer Science" {
		t.Errorf("department = %q", d.Department)
	}
	if d.Level != "400 Level" {
		t.Errorf("level = %q", d.Level)
	}
	if d.Availability() != StatusFull { // 19/20 = 0.95
		t.Errorf("availability = %q", d.Availability())
	}

	c.Department = ""
	d = DisplayCourseFromLocal(&c)
	if d.Department != "CS" {
		t.Errorf("department fallback = %q", d.Department)
	}
}

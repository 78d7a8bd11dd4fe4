package catalog

import (
	"strconv"
	"strings"
)

// DisplayCourse is the normalized shape consumed by result rendering.
// It is derived fresh from a Section or LocalCourse on every render
// and never persisted.
type DisplayCourse struct {
	ID                string `json:"id"`
	Code              string `json:"code"`
	Title             string `json:"title"`
	Instructor        string `json:"instructor"`
	Schedule          string `json:"schedule"`
	Credits           int    `json:"credits"`
	Enrolled          int    `json:"enrolled"`
	Capacity          int    `json:"capacity"`
	Location          string `json:"location"`
	Department        string `json:"department"`
	Component         string `json:"component"`
	Section           int    `json:"section"`
	Level             string `json:"level"`
	CourseCareer      string `json:"course_career"`
	ModeOfInstruction string `json:"mode_of_instruction"`
}

// Availability reports the enrollment state for the course card badge.
func (d *DisplayCourse) Availability() string {
	return Availability(d.Enrolled, d.Capacity)
}

// NewDisplayCourse normalizes a live section record for rendering.
// Missing days render as "TBA" and missing times as empty segments.
func NewDisplayCourse(s *Section) DisplayCourse {
	var room string
	if s.Room != nil {
		room = *s.Room
	}
	return DisplayCourse{
		ID:                strconv.Itoa(s.SectionID),
		Code:              s.CourseCode,
		Title:             s.CourseTitle,
		Instructor:        s.Instructor,
		Schedule:          schedule(s.Days, s.StartTime, s.EndTime),
		Credits:           s.Units,
		Enrolled:          s.Enrolled,
		Capacity:          s.Capacity,
		Location:          room,
		Department:        subjectOf(s.CourseCode),
		Component:         s.Component,
		Section:           s.SectionNum,
		Level:             CourseLevel(s.CatalogNum),
		CourseCareer:      CourseCareer(s.CatalogNum),
		ModeOfInstruction: ModeLabel(s.InstructionMode),
	}
}

// DisplayCourseFromLocal normalizes one of the bundled offline
// courses. Callers pick the constructor for their data source instead
// of probing fields at render time.
func DisplayCourseFromLocal(c *LocalCourse) DisplayCourse {
	dept := c.Department
	if dept == "" {
		dept = subjectOf(c.Code)
	}
	num, _ := strconv.Atoi(c.CourseNumber)
	return DisplayCourse{
		ID:                c.ID,
		Code:              c.Code,
		Title:             c.Title,
		Instructor:        c.Instructor,
		Schedule:          c.Schedule,
		Credits:           c.Credits,
		Enrolled:          c.Enrolled,
		Capacity:          c.Capacity,
		Location:          c.Location,
		Department:        dept,
		Level:             CourseLevel(num),
		CourseCareer:      c.CourseCareer,
		ModeOfInstruction: c.ModeOfInstruction,
	}
}

func schedule(days, start, end *string) string {
	d := "TBA"
	if days != nil && *days != "" {
		d = *days
	}
	var s, e string
	if start != nil {
		s = FormatTime(*start)
	}
	if end != nil {
		e = FormatTime(*end)
	}
	return d + " " + s + " - " + e
}

// subjectOf returns the subject portion of a course code like
// "CS 101". Codes with no space come back whole.
func subjectOf(code string) string {
	if i := strings.IndexByte(code, ' '); i > 0 {
		return code[:i]
	}
	return code
}

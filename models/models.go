package models

import "time"

// Section components
const (
	Lecture    = "LEC"
	Lab        = "LAB"
	Discussion = "DIS"
	Seminar    = "SEM"
	Studio     = "STD"
)

// Scanable is an sql.Row or sql.Rows
type Scanable interface {
	Scan(...interface{}) error
}

// Course is a row in the course table.
type Course struct {
	ID           int    `db:"id" json:"id"`
	DepartmentID int    `db:"department_id" json:"department_id"`
	Subject      string `db:"subject" json:"subject"`
	CatalogNum   int    `db:"catalog_num" json:"catalog_num"`
	Title        string `db:"title" json:"title"`
	Description  string `db:"description" json:"description"`
	Units        int    `db:"units" json:"units"`
}

// Section is a row in the section table.
type Section struct {
	ID              int     `db:"id" json:"id"`
	CourseID        int     `db:"course_id" json:"course_id"`
	TermID          int     `db:"term_id" json:"term_id"`
	SectionNum      int     `db:"section_num" json:"section_num"`
	Component       string  `db:"component" json:"component"`
	InstructionMode string  `db:"instruction_mode" json:"instruction_mode"`
	ClassDays       *string `db:"class_days" json:"class_days"`
	StartTime       *string `db:"start_time" json:"start_time"`
	EndTime         *string `db:"end_time" json:"end_time"`
	Combined        bool    `db:"combined" json:"combined"`
	ClassStatus     string  `db:"class_status" json:"class_status"`
	Enrolled        int     `db:"enrolled" json:"enrolled"`
	Capacity        int     `db:"enrollment_capacity" json:"capacity"`
	RoomCode        *string `db:"room_code" json:"room_code"`
}

// Term is an academic term.
type Term struct {
	ID          int       `db:"id" json:"id"`
	SessionCode string    `db:"session_code" json:"session_code"`
	StartDate   time.Time `db:"start_date" json:"start_date"`
	EndDate     time.Time `db:"end_date" json:"end_date"`
	Year        int       `db:"year" json:"year"`
}

// Department is an academic department.
type Department struct {
	ID      int    `db:"id" json:"id"`
	Code    string `db:"department_code" json:"department_code"`
	College string `db:"college" json:"college"`
}

// Instructor is a row in the instructor table.
type Instructor struct {
	ID        int    `db:"id" json:"instructor_id"`
	FirstName string `db:"first_name" json:"first_name"`
	LastName  string `db:"last_name" json:"last_name"`
}

// FullName joins the instructor's first and last name.
func (i *Instructor) FullName() string {
	if i.FirstName == "" {
		return i.LastName
	}
	return i.FirstName + " " + i.LastName
}

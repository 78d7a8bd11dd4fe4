package catalog

// Section is one scheduled offering of a course. This is the record
// shape returned by the search and planner endpoints and is the only
// shape the client pipeline sees for live data.
type Section struct {
	SectionID       int     `db:"section_id" json:"section_id"`
	CourseCode      string  `db:"course_code" json:"course_code"`
	CourseTitle     string  `db:"course_title" json:"course_title"`
	SectionNum      int     `db:"section_num" json:"section_num"`
	Days            *string `db:"days" json:"days"`
	StartTime       *string `db:"start_time" json:"start_time"`
	EndTime         *string `db:"end_time" json:"end_time"`
	Units           int     `db:"units" json:"units"`
	Instructor      string  `db:"instructor" json:"instructor"`
	Status          string  `db:"status" json:"status"`
	Room            *string `db:"room" json:"room"`
	Component       string  `db:"component" json:"component"`
	InstructionMode string  `db:"instruction_mode" json:"instruction_mode"`
	CatalogNum      int     `db:"catalog_num" json:"catalog_num"`
	Enrolled        int     `db:"enrolled" json:"enrolled"`
	Capacity        int     `db:"capacity" json:"capacity"`
}

// LocalCourse is the in-memory course shape that predates the live
// search integration. It is still used as an offline fallback dataset.
type LocalCourse struct {
	ID                string   `json:"id"`
	Code              string   `json:"code"`
	CourseNumber      string   `json:"courseNumber"`
	Title             string   `json:"title"`
	Instructor        string   `json:"instructor"`
	Schedule          string   `json:"schedule"`
	Credits           int      `json:"credits"`
	Enrolled          int      `json:"enrolled"`
	Capacity          int      `json:"capacity"`
	Location          string   `json:"location"`
	Department        string   `json:"department"`
	Days              []string `json:"days"`
	CourseCareer      string   `json:"courseCareer"`
	ModeOfInstruction string   `json:"modeOfInstruction"`
}

// Section availability states derived from enrollment.
const (
	StatusOpen    = "open"
	StatusLimited = "limited"
	StatusFull    = "full"
)

// Availability derives the enrollment state of a section from its
// enrolled count and capacity. A capacity of zero or less is treated
// as full instead of dividing by zero.
func Availability(enrolled, capacity int) string {
	if capacity <= 0 {
		return StatusFull
	}
	ratio := float64(enrolled) / float64(capacity)
	switch {
	case ratio >= 0.90:
		return StatusFull
	case ratio >= 0.70:
		return StatusLimited
	default:
		return StatusOpen
	}
}

package catalog

import (
	"fmt"
	"strings"

	"github.com/lib/pq"
	"github.com/packtime/api/db"
)

// CourseOverview is a summary of every section of one course. It
// carries the combined enrollment numbers and a list of section IDs
// that point at the individual offerings.
type CourseOverview struct {
	Subject    string        `db:"subject" json:"subject"`
	CatalogNum int           `db:"catalog_num" json:"catalog_num"`
	Title      string        `db:"title" json:"title"`
	MinUnits   int           `db:"min_units" json:"min_units"`
	MaxUnits   int           `db:"max_units" json:"max_units"`
	Enrolled   int           `db:"enrolled" json:"enrolled"`
	Capacity   int           `db:"capacity" json:"capacity"`
	SectionIDs pq.Int32Array `db:"section_ids" json:"section_ids"`
	Count      int           `db:"count" json:"count"`
}

// Availability reports the combined enrollment state of the course.
func (co *CourseOverview) Availability() string {
	return Availability(co.Enrolled, co.Capacity)
}

const overviewQuery = `
	SELECT
		  c.subject,
		  c.catalog_num,
		  min(c.title) AS title,
		  min(c.units) AS min_units,
		  max(c.units) AS max_units,
		  sum(s.enrolled) AS enrolled,
		  sum(s.enrollment_capacity) AS capacity,
		  array_agg(s.id) AS section_ids,
		  count(*) AS count
	  FROM
		  section s
	  JOIN course c ON s.course_id = c.id
	 WHERE 0 = 0
		  %s
  GROUP BY
		  c.subject,
		  c.catalog_num
  ORDER BY
		  c.subject ASC,
		  c.catalog_num ASC
  LIMIT $%d OFFSET $%d`

// OverviewParams narrows the course overview query.
type OverviewParams struct {
	Subject string `query:"subject" form:"subject"`
	Term    string `query:"term" form:"term"`
	Limit   int    `query:"limit" form:"limit"`
	Offset  int    `query:"offset" form:"offset"`
}

// GetOverviews returns one summary row per course matching the params.
// Requires a postgres connection for array_agg.
func GetOverviews(params *OverviewParams) ([]*CourseOverview, error) {
	var (
		where string
		db    = db.Get()
		args  = make([]interface{}, 0, 2)
		resp  = make([]*CourseOverview, 0, 64)
	)
	if params.Subject != "" {
		args = append(args, strings.ToUpper(params.Subject))
		where += fmt.Sprintf("AND c.subject = $%d ", len(args))
	}
	if params.Term != "" {
		args = append(args, TermCode(params.Term))
		where += fmt.Sprintf(
			"AND s.term_id IN (SELECT id FROM term WHERE session_code = $%d) ",
			len(args))
	}
	if params.Limit == 0 {
		params.Limit = 100
	}
	l := len(args) + 1
	err := db.Select(
		&resp, fmt.Sprintf(overviewQuery, where, l, l+1),
		append(args, params.Limit, params.Offset)...,
	)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

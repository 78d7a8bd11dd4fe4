package app

import (
	"strconv"
	"strings"

	"github.com/doug-martin/goqu/v9"
	"github.com/gin-gonic/gin"

	"github.com/packtime/api/catalog"
)

// SearchParams is the full query parameter surface of the section
// search endpoint. Every field is optional; empty fields add no
// condition to the query.
type SearchParams struct {
	Subject            string `form:"subject" query:"subject"`
	CatalogNum         string `form:"catalog_num" query:"catalog_num"`
	CatalogNumOperator string `form:"catalog_num_operator" query:"catalog_num_operator"`
	Title              string `form:"title" query:"title"`
	Instructor         string `form:"instructor" query:"instructor"`
	Days               string `form:"days" query:"days"`
	Term               string `form:"term" query:"term"`
	Units              string `form:"units" query:"units"`
	UnitsOperator      string `form:"units_operator" query:"units_operator"`
	InstructionMode    string `form:"instruction_mode" query:"instruction_mode"`
	Component          string `form:"component" query:"component"`
	Status             string `form:"status" query:"status"`
	Department         string `form:"department" query:"department"`
	Room               string `form:"room" query:"room"`
	SearchQuery        string `form:"search_query" query:"search_query"`
	CourseCareer       string `form:"course_career" query:"course_career"`
	Level              string `form:"level" query:"level"`
}

// instructor names are nullable in the join, everything else has a
// column to point at directly
const instructorName = "coalesce(i.first_name || ' ' || i.last_name, 'TBA')"

var sectionColumns = []interface{}{
	goqu.I("s.id").As("section_id"),
	goqu.L("c.subject || ' ' || c.catalog_num").As("course_code"),
	goqu.I("c.title").As("course_title"),
	goqu.I("s.section_num").As("section_num"),
	goqu.I("s.class_days").As("days"),
	goqu.I("s.start_time").As("start_time"),
	goqu.I("s.end_time").As("end_time"),
	goqu.I("c.units").As("units"),
	goqu.L(instructorName).As("instructor"),
	goqu.I("s.class_status").As("status"),
	goqu.I("s.room_code").As("room"),
	goqu.I("s.component").As("component"),
	goqu.I("s.instruction_mode").As("instruction_mode"),
	goqu.I("c.catalog_num").As("catalog_num"),
	goqu.I("s.enrolled").As("enrolled"),
	goqu.I("s.enrollment_capacity").As("capacity"),
}

func (sp *SearchParams) exprs() ([]goqu.Expression, error) {
	ex := make([]goqu.Expression, 0, 8)
	if sp.Subject != "" {
		ex = append(ex, goqu.I("c.subject").Eq(strings.ToUpper(sp.Subject)))
	}
	if sp.CatalogNum != "" {
		cond, err := numericCond("c.catalog_num", sp.CatalogNum, sp.CatalogNumOperator)
		if err != nil {
			return nil, err
		}
		ex = append(ex, cond)
	}
	if sp.Title != "" {
		ex = append(ex, containsLower("c.title", sp.Title))
	}
	if sp.Instructor != "" {
		ex = append(ex, containsLower(instructorName, sp.Instructor))
	}
	if sp.Days != "" {
		ex = append(ex, containsLower("s.class_days", sp.Days))
	}
	if sp.Term != "" {
		ex = append(ex, goqu.I("t.session_code").Eq(catalog.TermCode(sp.Term)))
	}
	if sp.Units != "" {
		cond, err := numericCond("c.units", sp.Units, sp.UnitsOperator)
		if err != nil {
			return nil, err
		}
		ex = append(ex, cond)
	}
	if sp.InstructionMode != "" {
		ex = append(ex, goqu.I("s.instruction_mode").Eq(catalog.ModeCode(sp.InstructionMode)))
	}
	if sp.Component != "" {
		ex = append(ex, goqu.I("s.component").Eq(strings.ToUpper(sp.Component)))
	}
	if sp.Status != "" {
		ex = append(ex, goqu.I("s.class_status").Eq(sp.Status))
	}
	if sp.Department != "" {
		ex = append(ex, goqu.I("d.department_code").Eq(strings.ToUpper(sp.Department)))
	}
	if sp.Room != "" {
		ex = append(ex, containsLower("s.room_code", sp.Room))
	}
	if sp.SearchQuery != "" {
		ex = append(ex, goqu.Or(
			containsLower("c.title", sp.SearchQuery),
			containsLower(instructorName, sp.SearchQuery),
			containsLower("c.subject || ' ' || c.catalog_num", sp.SearchQuery),
		))
	}
	switch sp.CourseCareer {
	case "Graduate":
		ex = append(ex, goqu.I("c.catalog_num").Gte(600))
	case "Undergraduate":
		ex = append(ex, goqu.I("c.catalog_num").Lt(600))
	}
	if sp.Level != "" {
		if e, ok := levelExpr(sp.Level); ok {
			ex = append(ex, e)
		}
	}
	return ex, nil
}

// containsLower is a case insensitive substring match that works on
// both postgres and sqlite, unlike ILIKE.
func containsLower(col, val string) goqu.Expression {
	return goqu.L("lower(" + col + ")").Like("%" + strings.ToLower(val) + "%")
}

func numericCond(col, raw, op string) (goqu.Expression, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, ErrStatus(400, col+" is not a number")
	}
	ident := goqu.I(col)
	switch op {
	case "", "exact":
		return ident.Eq(n), nil
	case "greater":
		return ident.Gt(n), nil
	case "less":
		return ident.Lt(n), nil
	case "greater_equal":
		return ident.Gte(n), nil
	case "less_equal":
		return ident.Lte(n), nil
	default:
		return nil, ErrStatus(400, "unknown operator "+op)
	}
}

// levelExpr converts a single digit level token into a catalog number
// range. Tokens outside the table add no condition.
func levelExpr(level string) (goqu.Expression, bool) {
	n, err := strconv.Atoi(level)
	if err != nil || n < 1 || n > 5 {
		return nil, false
	}
	if n == 5 {
		return goqu.I("c.catalog_num").Gte(500), true
	}
	return goqu.And(
		goqu.I("c.catalog_num").Gte(n*100),
		goqu.I("c.catalog_num").Lt(n*100+100),
	), true
}

func (a *App) searchSections(c *gin.Context) {
	var params SearchParams
	if err := c.BindQuery(&params); err != nil {
		senderr(c, err, 400)
		return
	}
	exprs, err := params.exprs()
	if err != nil {
		e := err.(*Error)
		c.AbortWithStatusJSON(e.Status, e)
		return
	}

	stmt := a.dialect.From(goqu.T("section").As("s")).
		Prepared(true).
		Distinct().
		Select(sectionColumns...).
		Join(goqu.T("course").As("c"),
			goqu.On(goqu.I("s.course_id").Eq(goqu.I("c.id")))).
		Join(goqu.T("term").As("t"),
			goqu.On(goqu.I("s.term_id").Eq(goqu.I("t.id")))).
		LeftJoin(goqu.T("department").As("d"),
			goqu.On(goqu.I("c.department_id").Eq(goqu.I("d.id")))).
		LeftJoin(goqu.T("section_instructor").As("si"),
			goqu.On(goqu.I("si.section_id").Eq(goqu.I("s.id")))).
		LeftJoin(goqu.T("instructor").As("i"),
			goqu.On(goqu.I("si.instructor_id").Eq(goqu.I("i.id")))).
		Where(exprs...).
		Order(
			goqu.I("c.subject").Asc(),
			goqu.I("c.catalog_num").Asc(),
			goqu.I("s.section_num").Asc(),
		)

	query, args, err := stmt.ToSQL()
	if err != nil {
		senderr(c, err, 500)
		return
	}
	sections := make([]catalog.Section, 0, 64)
	if err = a.DB.Select(&sections, query, args...); err != nil {
		senderr(c, ErrStatus(500, "could not search sections"), 500)
		return
	}
	c.JSON(200, gin.H{
		"status":   "success",
		"sections": sections,
		"count":    len(sections),
	})
}

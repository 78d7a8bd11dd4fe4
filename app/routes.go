package app

import (
	"database/sql"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/packtime/api/catalog"
	"github.com/packtime/api/models"
)

// RegisterRoutes will setup all the app routes
func (a *App) RegisterRoutes(g *gin.RouterGroup) {
	// Main data
	g.GET("/courses/search", a.searchSections)
	g.GET("/courses", a.courseOverviews)
	g.GET("/sections/:id", idParamMiddleware, a.sectionDetails)

	// utility endpoints
	g.GET("/departments", a.departments)
	g.GET("/terms", a.availableTerms)
	g.GET("/csrf-token", a.csrfToken)
	g.GET("/auth/status", a.authStatus)

	planner := g.Group("/planner", a.Protected)
	planner.GET("", a.plannerList)
	planner.POST("/:id", a.csrf.Guard(), idParamMiddleware, a.plannerAdd)
	planner.DELETE("/:id", a.csrf.Guard(), idParamMiddleware, a.plannerRemove)

	g.POST("/user", createUserRateLimit(a.RateStore), a.csrf.Guard(), a.PostUser)
	g.GET("/user/:id", a.Protected, a.getUser)
	g.DELETE("/user/:id", a.Protected, a.csrf.Guard(), idParamMiddleware, a.deleteUser)

	ch := make(chan interface{})
	g.GET("/updates", a.wsSub(ch))
	g.POST("/update", a.wsPublisher(ch))
}

func (a *App) departments(c *gin.Context) {
	resp := make([]models.Department, 0, 10)
	err := a.DB.Select(&resp, "SELECT id, department_code, college FROM department ORDER BY department_code")
	if err != nil {
		c.JSON(500, Error{Msg: "could not get departments"})
		return
	}
	c.JSON(200, gin.H{"status": "success", "departments": resp})
}

func (a *App) availableTerms(c *gin.Context) {
	type response struct {
		ID          int    `db:"id" json:"id"`
		SessionCode string `db:"session_code" json:"session_code"`
		Name        string `db:"-" json:"name"`
	}
	resp := make([]response, 0, 5)
	err := a.DB.Select(
		&resp,
		"SELECT id, session_code FROM term ORDER BY session_code",
	)
	if err != nil {
		c.JSON(500, Error{Msg: "could not get availible terms"})
		return
	}
	for i := range resp {
		resp[i].Name = catalog.TermName(resp[i].SessionCode)
	}
	c.JSON(200, gin.H{"status": "success", "terms": resp})
}

func (a *App) courseOverviews(c *gin.Context) {
	var params catalog.OverviewParams
	if err := c.BindQuery(&params); err != nil {
		senderr(c, err, 400)
		return
	}
	if a.Config.Database.Driver != "postgres" {
		c.JSON(501, Error{Msg: "course overviews need postgres", Status: 501})
		return
	}
	resp, err := catalog.GetOverviews(&params)
	if err != nil {
		senderr(c, ErrStatus(500, "could not get course overviews"), 500)
		return
	}
	c.JSON(200, gin.H{"status": "success", "courses": resp, "count": len(resp)})
}

var sectionDetailQuery = `
	SELECT ` + strings.Join(models.GetNamedSchema("s", models.Section{}), ",") + `
	FROM section s
	WHERE s.id = $1`

func (a *App) sectionDetails(c *gin.Context) {
	var (
		id  = c.GetInt("id")
		sec models.Section
	)
	err := a.DB.Get(&sec, a.DB.Rebind(sectionDetailQuery), id)
	if err == sql.ErrNoRows {
		c.JSON(404, &Error{"could not find section", 404})
		return
	}
	if err != nil {
		senderr(c, err, 500)
		return
	}

	var course models.Course
	if err = a.DB.Get(&course,
		a.DB.Rebind("SELECT * FROM course WHERE id = $1"), sec.CourseID); err != nil {
		senderr(c, ErrStatus(500, "could not find course for section"), 500)
		return
	}
	var term models.Term
	if err = a.DB.Get(&term,
		a.DB.Rebind("SELECT * FROM term WHERE id = $1"), sec.TermID); err != nil && err != sql.ErrNoRows {
		senderr(c, err, 500)
		return
	}
	instructors := make([]models.Instructor, 0, 2)
	err = a.DB.Select(&instructors, a.DB.Rebind(`
		SELECT i.id, i.first_name, i.last_name
		FROM instructor i, section_instructor si
		WHERE si.section_id = $1 AND si.instructor_id = i.id`), id)
	if err != nil {
		senderr(c, err, 500)
		return
	}
	c.JSON(200, gin.H{
		"status": "success",
		"section": gin.H{
			"section_info":     sec,
			"course_info":      course,
			"term_info":        term,
			"instructors":      instructors,
			"course_code":      course.Subject + " " + strconv.Itoa(course.CatalogNum),
			"level":            catalog.CourseLevel(course.CatalogNum),
			"course_career":    catalog.CourseCareer(course.CatalogNum),
			"instruction_mode": catalog.ModeLabel(sec.InstructionMode),
		},
	})
}

func idParamMiddleware(c *gin.Context) {
	idStr, ok := c.Params.Get("id")
	if !ok {
		c.AbortWithStatusJSON(400, &Error{
			Msg:    "no id given",
			Status: 400,
		})
		return
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		c.AbortWithStatusJSON(400, &Error{Msg: "id is not a number", Status: 400})
		return
	}
	c.Set("id", id)
	c.Next()
}

func senderr(c *gin.Context, e error, status int) {
	c.AbortWithStatusJSON(
		status,
		&Error{
			Msg:    strings.Replace(e.Error(), "\"", "'", -1),
			Status: status,
		},
	)
}

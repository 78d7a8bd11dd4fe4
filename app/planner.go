package app

import (
	"database/sql"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/packtime/api/catalog"
)

// The planner is a per-user set of saved sections. List responses use
// the same section record shape as search so clients render both with
// one path.

var plannerListQuery = `
	SELECT DISTINCT
		s.id AS section_id,
		c.subject || ' ' || c.catalog_num AS course_code,
		c.title AS course_title,
		s.section_num AS section_num,
		s.class_days AS days,
		s.start_time AS start_time,
		s.end_time AS end_time,
		c.units AS units,
		` + instructorName + ` AS instructor,
		s.class_status AS status,
		s.room_code AS room,
		s.component AS component,
		s.instruction_mode AS instruction_mode,
		c.catalog_num AS catalog_num,
		s.enrolled AS enrolled,
		s.enrollment_capacity AS capacity
	FROM planner p
	JOIN section s ON p.section_id = s.id
	JOIN course c ON s.course_id = c.id
	LEFT JOIN section_instructor si ON si.section_id = s.id
	LEFT JOIN instructor i ON si.instructor_id = i.id
	WHERE p.user_id = $1
	ORDER BY course_code, section_num`

func (a *App) plannerList(c *gin.Context) {
	u, ok := currentUser(a.jwtIdentityKey, c)
	if !ok {
		c.AbortWithStatusJSON(401, &Error{"no identity", 401})
		return
	}
	sections := make([]catalog.Section, 0, 8)
	err := a.DB.Select(&sections, a.DB.Rebind(plannerListQuery), u.ID)
	if err != nil {
		senderr(c, ErrStatus(500, "could not load planner"), 500)
		return
	}
	c.JSON(200, gin.H{"status": "success", "sections": sections})
}

func (a *App) plannerAdd(c *gin.Context) {
	u, ok := currentUser(a.jwtIdentityKey, c)
	if !ok {
		c.AbortWithStatusJSON(401, &Error{"no identity", 401})
		return
	}
	id := c.GetInt("id")

	var exists int
	err := a.DB.Get(&exists,
		a.DB.Rebind("SELECT count(*) FROM section WHERE id = $1"), id)
	if err != nil || exists == 0 {
		c.AbortWithStatusJSON(404, &Error{"no such section", 404})
		return
	}
	err = a.DB.Get(&exists, a.DB.Rebind(
		"SELECT count(*) FROM planner WHERE user_id = $1 AND section_id = $2"), u.ID, id)
	if err != nil {
		senderr(c, err, 500)
		return
	}
	if exists > 0 {
		c.JSON(200, &Msg{Msg: "section already planned", Status: 200})
		return
	}
	_, err = a.DB.Exec(a.DB.Rebind(
		"INSERT INTO planner (user_id, section_id, added_at) VALUES ($1, $2, $3)"),
		u.ID, id, time.Now().UTC())
	if err != nil {
		senderr(c, ErrStatus(500, "could not save section"), 500)
		return
	}
	c.JSON(201, &Msg{Msg: "section added to planner", Status: 201})
}

func (a *App) plannerRemove(c *gin.Context) {
	u, ok := currentUser(a.jwtIdentityKey, c)
	if !ok {
		c.AbortWithStatusJSON(401, &Error{"no identity", 401})
		return
	}
	res, err := a.DB.Exec(a.DB.Rebind(
		"DELETE FROM planner WHERE user_id = $1 AND section_id = $2"),
		u.ID, c.GetInt("id"))
	if err != nil {
		senderr(c, err, 500)
		return
	}
	n, err := res.RowsAffected()
	if err != nil && err != sql.ErrNoRows {
		senderr(c, err, 500)
		return
	}
	if n == 0 {
		c.JSON(404, &Error{"section was not planned", 404})
		return
	}
	c.JSON(200, &Msg{Msg: "section removed from planner", Status: 200})
}

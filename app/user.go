package app

import (
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/ulule/limiter/v3"
	ginlimit "github.com/ulule/limiter/v3/drivers/middleware/gin"

	"github.com/packtime/api/users"
)

func (a *App) getUser(c *gin.Context) {
	var (
		id  int
		err error
	)
	rawid, ok := c.Params.Get("id")
	if !ok {
		c.AbortWithStatusJSON(400, &Error{
			Msg:    "no id given",
			Status: 400,
		})
		return
	}

	// If the url parameter was self, get the
	// ID of the current user.
	if rawid == "self" {
		id, err = getSelfID(a.jwtIdentityKey, c)
		if err != nil {
			err = &Error{Msg: "could not get user: " + err.Error()}
		}
	} else {
		id, err = strconv.Atoi(rawid)
		if err != nil {
			err = &Error{Msg: "id is not a number"}
		}
	}
	if err != nil {
		c.AbortWithStatusJSON(400, err)
		return
	}

	u, err := a.GetUser(users.User{ID: id})
	if err != nil {
		senderr(c, users.ErrUserNotFound, 404)
		return
	}
	c.JSON(200, u)
}

func getSelfID(key string, c *gin.Context) (int, error) {
	u, ok := currentUser(key, c)
	if !ok {
		return 0, errors.New("no identity")
	}
	return u.ID, nil
}

// PostUser handles user creation
func (a *App) PostUser(c *gin.Context) {
	u, err := a.createUser(c)
	if err != nil {
		log.Printf("%T %v\n", err, err)
	}
	switch e := err.(type) {
	case *pq.Error:
		if e.Code == "23505" {
			c.AbortWithStatusJSON(400, &Error{"Duplicate username or email", 400})
		} else {
			c.AbortWithStatusJSON(500, &Error{e.Detail, 500})
		}
		return
	case *Error:
		c.AbortWithStatusJSON(e.Status, e)
		return
	default:
		break
	}
	switch err {
	case nil:
		c.JSON(201, u)
	case users.ErrInvalidUser:
		c.AbortWithStatusJSON(400, &Error{Msg: "must give a username or email", Status: 400})
	default:
		c.AbortWithStatusJSON(500, gin.H{"error": err})
	}
}

// SilentCreateUser will create a new user without writing to the
// response body so the login handler after it can answer.
func (a *App) SilentCreateUser(c *gin.Context) {
	u, err := a.createUser(c)
	switch e := err.(type) {
	case nil:
		c.Set("new-user", u)
		c.Next()
	case *pq.Error:
		if e.Code == "23505" {
			c.AbortWithStatusJSON(400, &Error{"Duplicate username or email", 400})
		} else {
			c.AbortWithStatusJSON(400, &Error{e.Detail, 400})
		}
	case *Error:
		c.AbortWithStatusJSON(e.Status, e)
	default:
		switch err {
		case users.ErrInvalidUser:
			c.AbortWithStatusJSON(400, &Error{Msg: "must give a username or email", Status: 400})
		default:
			c.AbortWithStatusJSON(500, gin.H{"error": err.Error()})
		}
	}
}

func (a *App) createUser(c *gin.Context) (*users.User, error) {
	type user struct {
		users.User
		Password string
	}
	u := user{}
	err := c.BindJSON(&u)
	if err != nil {
		return nil, &Error{"could not read request body", 400}
	}
	u.IsAdmin = false
	u.CreatedAt = time.Time{} // set on insert
	u.ID = 0                  // database handles this
	if u.Password == "" {
		return nil, ErrStatus(400, "no password for new user")
	}
	return a.CreateUser(&u.User, u.Password)
}

func (a *App) deleteUser(c *gin.Context) {
	u := users.User{ID: c.GetInt("id")}
	switch err := users.Delete(a.DB, u); err {
	case nil:
		c.JSON(200, &Msg{
			Msg:    "user successfully deleted",
			Status: 200,
		})
	case users.ErrUserNotFound:
		senderr(c, err, 404)
	default:
		senderr(c, err, 500)
	}
}

func createUserRateLimit(store limiter.Store) gin.HandlerFunc {
	return ginlimit.NewMiddleware(limiter.New(
		store,
		limiter.Rate{
			Period: time.Minute,
			Limit:  5,
		},
	))
}

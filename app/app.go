package app

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	ginjwt "github.com/appleboy/gin-jwt/v2"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	apidb "github.com/packtime/api/db"
	"github.com/packtime/api/users"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // search query dialect
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3"  // search query dialect
	_ "github.com/lib/pq"                               // app package relies on pq for postgres
	_ "github.com/mattn/go-sqlite3"                     // local development and tests
)

// App is the main app
type App struct {
	DB        *sqlx.DB
	Config    *Config
	Engine    *gin.Engine
	RateStore limiter.Store
	Protected gin.HandlerFunc

	csrf           *csrfStore
	auth           *ginjwt.GinJWTMiddleware
	dialect        goqu.DialectWrapper
	jwtIdentityKey string
}

// New creates a new app
func New(conf *Config) (*App, error) {
	db, err := sqlx.Connect(conf.Database.Driver, conf.GetDSN())
	if err != nil {
		return nil, err
	}
	apidb.Set(db)
	a := &App{
		DB:      db,
		Config:  conf,
		csrf:    newCSRFStore(time.Hour),
		dialect: goqu.Dialect(conf.Database.Driver),
	}
	if conf.InMemoryRateStore {
		a.RateStore = memory.NewStore()
	} else {
		return nil, errors.New("don't know how to create rate limit storage")
	}
	return a, nil
}

// Close the application resourses
func (a *App) Close() error {
	return a.DB.Close()
}

// CreateUser stores a user in the database and sets its private variables
func (a *App) CreateUser(u *users.User, password string) (*users.User, error) {
	return u, users.Create(a.DB, u, password)
}

// GetUser will find a full initialized user give a partially
// initialized user.
func (a *App) GetUser(u users.User) (*users.User, error) {
	if u.ID != 0 {
		return users.GetUserByID(a.DB, u.ID)
	} else if u.Name != "" {
		return users.GetUserByName(a.DB, u.Name)
	}
	return nil, &Error{"not enough info to find user", 500}
}

func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.Engine.ServeHTTP(w, r)
}

var _ http.Handler = (*App)(nil)

// Msg is a standardized response message
// for misc json endpoints.
type Msg struct {
	Msg    string `json:"message"`
	Status int    `json:"status,omitempty"`
}

// Error is an app spesific error
type Error struct {
	Msg    string `json:"error"`
	Status int    `json:"status,omitempty"`
}

// NewErr creates a new error type
func NewErr(msg string) error {
	return &Error{
		Msg:    msg,
		Status: 500,
	}
}

// ErrStatus creates a new error type with a spesific status code
func ErrStatus(status int, msg string) error {
	return &Error{
		Msg:    msg,
		Status: status,
	}
}

func (e *Error) Error() string {
	return e.Msg
}

// LoggerConfig is a config for gin loggers that has cleaner output
var LoggerConfig = gin.LoggerConfig{
	Formatter: func(f gin.LogFormatterParams) string {
		return fmt.Sprintf(
			"[\x1b[35m%s\x1b[0m] \"\x1b[34m%s\x1b[0m\" %6v %s%d%s %s %s\n",
			f.TimeStamp.Format(time.Stamp),
			f.ClientIP,
			f.Latency,
			statusColor(f.StatusCode), f.StatusCode, "\x1b[0m",
			f.Method,
			f.Path,
		)
	},
}

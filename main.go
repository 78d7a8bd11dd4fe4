package main

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/harrybrwn/config"
	"github.com/pkg/errors"

	"github.com/packtime/api/app"
)

func main() {
	if err := run(); err != nil {
		log.Println(err)
	}
}

func run() error {
	var conf = &app.Config{}
	config.SetFilename("api.yml")
	config.SetType("yml")
	config.AddPath(".")
	config.SetConfig(conf)
	if err := config.ReadConfigFile(); err != nil {
		log.Println("Warning:", err)
	}
	if err := conf.Init(); err != nil {
		return err
	}
	gin.SetMode(config.GetString("mode"))

	a, err := app.New(conf)
	if err != nil {
		return errors.Wrap(err, "could not create app")
	}
	defer a.Close()

	r := gin.New()
	r.Use(gin.Recovery(), gin.LoggerWithConfig(app.LoggerConfig))
	r.NoRoute(func(c *gin.Context) {
		c.JSON(404, app.ErrStatus(404, "no route for "+c.Request.URL.Path))
	})
	a.Engine = r

	auth, err := a.NewJWTAuth()
	if err != nil {
		return errors.Wrap(err, "could not create auth middleware")
	}
	if err = auth.MiddlewareInit(); err != nil {
		return errors.Wrap(err, "could not init auth middleware")
	}

	cors := func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "POST, GET, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", strings.Join([]string{
			"Content-Type",
			"Authorization",
			"X-CSRFToken",
		}, ","))
		c.Next()
	}
	v1 := r.Group("/api/v1")
	if config.GetString("mode") == "debug" {
		r.Use(cors)
		v1.Use(cors)
	}
	a.RegisterRoutes(v1)

	v1.OPTIONS("/auth/login", func(c *gin.Context) { c.Status(204) })
	v1.POST("/auth/login", a.CSRFGuard(), auth.LoginHandler)

	v1.OPTIONS("/auth/logout", func(c *gin.Context) { c.Status(204) })
	v1.POST("/auth/logout", a.CSRFGuard(), auth.LogoutHandler)

	v1.OPTIONS("/auth/refresh", func(c *gin.Context) { c.Status(204) })
	v1.GET("/auth/refresh", auth.RefreshHandler)

	v1.OPTIONS("/auth/signup", func(c *gin.Context) { c.Status(204) })
	v1.POST("/auth/signup", a.CSRFGuard(), a.SilentCreateUser, auth.LoginHandler)

	addr := conf.Address()
	fmt.Printf("\n\nRunning on \x1b[32;4mhttp://%s\x1b[0m\n", addr)

	srv := http.Server{
		Addr:           addr,
		Handler:        a,
		ReadTimeout:    time.Minute * 5,
		WriteTimeout:   time.Minute * 5,
		MaxHeaderBytes: http.DefaultMaxHeaderBytes,
	}
	return srv.ListenAndServe()
}

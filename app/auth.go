package app

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	ginjwt "github.com/appleboy/gin-jwt/v2"
	"github.com/gin-gonic/gin"

	"github.com/packtime/api/users"
)

// NewJWTAuth creates the default jwt auth middleware. The token is
// sent and read back as a cookie so browser clients get plain session
// cookie semantics.
func (a *App) NewJWTAuth() (*ginjwt.GinJWTMiddleware, error) {
	if a.jwtIdentityKey == "" {
		a.jwtIdentityKey = "identity"
	}
	middleware, err := ginjwt.New(&ginjwt.GinJWTMiddleware{
		IdentityKey: a.jwtIdentityKey,
		Key:         []byte(a.Config.Secret),
		Timeout:     time.Hour * 8,
		MaxRefresh:  time.Hour * 12,

		TokenLookup:   "cookie: jwt, header: Authorization",
		TokenHeadName: "Bearer",
		SendCookie:    true,

		Authenticator:   a.authenticate,
		PayloadFunc:     a.jwtPayload,
		Authorizator:    a.authorize,
		IdentityHandler: a.identityHandler,
		Unauthorized: func(c *gin.Context, code int, message string) {
			c.AbortWithStatusJSON(code, &Error{
				Status: code,
				Msg:    message,
			})
		},
		LoginResponse: func(c *gin.Context, code int, token string, expire time.Time) {
			resp := gin.H{
				"status": "success",
				"expire": expire.Format(time.RFC3339),
			}
			if u, ok := c.Get("new-user"); ok {
				resp["user"] = u
				c.JSON(http.StatusCreated, resp)
			} else {
				c.JSON(http.StatusOK, resp)
			}
		},
		LogoutResponse: func(c *gin.Context, code int) {
			c.JSON(code, &Msg{Msg: "logged out", Status: code})
		},
	})
	if err != nil {
		return nil, err
	}
	a.Protected = middleware.MiddlewareFunc()
	a.auth = middleware
	return middleware, nil
}

func (a *App) authenticate(c *gin.Context) (interface{}, error) {
	newuser, ok := c.Get("new-user")
	if ok && newuser != nil {
		return newuser, nil
	}
	type login struct {
		Name     string `form:"name" json:"name" binding:"required"`
		Password string `form:"password" json:"password" binding:"required"`
	}
	var l login
	err := c.ShouldBind(&l)
	if err != nil {
		return nil, ginjwt.ErrMissingLoginValues
	}
	u, err := users.GetUserByName(a.DB, l.Name)
	if err != nil {
		return nil, ginjwt.ErrFailedAuthentication
	}
	if u.PasswordOK(l.Password) {
		return u, nil
	}
	return nil, ginjwt.ErrFailedAuthentication
}

func (a *App) authorize(data interface{}, c *gin.Context) bool {
	u, ok := data.(*users.User)
	if !ok {
		return false
	}
	r := c.Request
	path := r.URL.Path
	if r.Method == "POST" || r.Method == "DELETE" {
		switch {
		case strings.HasSuffix(path, fmt.Sprintf("/user/%d", u.ID)),
			strings.HasSuffix(path, fmt.Sprintf("/user/%d/", u.ID)):
			// account owners manage their own account
			return true
		case strings.Contains(path, "/user/"):
			return u.IsAdmin
		}
	}
	switch path {
	case "/admin":
		return u.IsAdmin
	default:
		return true
	}
}

func (a *App) jwtPayload(data interface{}) ginjwt.MapClaims {
	u, ok := data.(*users.User)
	if !ok {
		return ginjwt.MapClaims{}
	}
	return ginjwt.MapClaims{
		a.jwtIdentityKey: u.ID,
		"name":           u.Name,
		"email":          u.Email,
		"is_admin":       u.IsAdmin,
	}
}

func (a *App) identityHandler(c *gin.Context) interface{} {
	var (
		name   string
		admin  bool
		claims = ginjwt.ExtractClaims(c)
	)
	val, ok := claims["name"]
	if ok {
		name = val.(string)
	}
	val, ok = claims["is_admin"]
	if ok {
		admin = val.(bool)
	}
	id, ok := claims[a.jwtIdentityKey]
	if !ok {
		log.Println("claims should have the identity key")
		return nil // should not happen
	}
	return &users.User{
		ID:      int(id.(float64)),
		Name:    name,
		IsAdmin: admin,
	}
}

// authStatus reports whether the request carries a valid session
// without ever answering with a 401. The startup view choice hangs
// off of this response.
func (a *App) authStatus(c *gin.Context) {
	claims, err := a.auth.GetClaimsFromJWT(c)
	if err != nil {
		c.JSON(200, gin.H{"authenticated": false, "user": nil})
		return
	}
	if exp, ok := claims["exp"].(float64); !ok || int64(exp) < time.Now().Unix() {
		c.JSON(200, gin.H{"authenticated": false, "user": nil})
		return
	}
	c.JSON(200, gin.H{
		"authenticated": true,
		"user": gin.H{
			"name":  claims["name"],
			"email": claims["email"],
		},
	})
}

// currentUser pulls the authenticated user set by the jwt middleware.
func currentUser(identityKey string, c *gin.Context) (*users.User, bool) {
	val, ok := c.Get(identityKey)
	if !ok {
		return nil, false
	}
	u, ok := val.(*users.User)
	return u, ok
}

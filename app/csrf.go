package app

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// csrfHeader is the request header that carries the token issued by
// the csrf-token endpoint.
const csrfHeader = "X-CSRFToken"

// csrfStore hands out single use tokens for mutating requests. Tokens
// expire after the ttl whether or not they were used.
type csrfStore struct {
	mu     sync.Mutex
	tokens map[string]time.Time
	ttl    time.Duration
}

func newCSRFStore(ttl time.Duration) *csrfStore {
	return &csrfStore{
		tokens: make(map[string]time.Time),
		ttl:    ttl,
	}
}

func (s *csrfStore) issue() string {
	tok := uuid.New().String()
	s.mu.Lock()
	s.tokens[tok] = time.Now().Add(s.ttl)
	// opportunistic cleanup so the map does not grow forever
	for t, exp := range s.tokens {
		if time.Now().After(exp) {
			delete(s.tokens, t)
		}
	}
	s.mu.Unlock()
	return tok
}

func (s *csrfStore) check(tok string) bool {
	if tok == "" {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	exp, ok := s.tokens[tok]
	if !ok {
		return false
	}
	delete(s.tokens, tok)
	return time.Now().Before(exp)
}

// Guard rejects mutating requests that don't carry a valid token.
func (s *csrfStore) Guard() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !s.check(c.GetHeader(csrfHeader)) {
			c.AbortWithStatusJSON(403, &Error{"missing or expired csrf token", 403})
			return
		}
		c.Next()
	}
}

// CSRFGuard exposes the token check for routes registered outside of
// RegisterRoutes, the auth endpoints mainly.
func (a *App) CSRFGuard() gin.HandlerFunc {
	return a.csrf.Guard()
}

func (a *App) csrfToken(c *gin.Context) {
	c.JSON(200, gin.H{"csrf_token": a.csrf.issue()})
}

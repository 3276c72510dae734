package middleware

import (
	"encoding/json"
	"time"

	"github.com/gin-gonic/gin"

	"gofolio/internal/session"
)

const (
	sessionCookie = "folio_session"
	sessionTTL    = 24 * time.Hour
	sessionCtxKey = "sessionToken"
	cookieMaxAge  = int(sessionTTL / time.Second)
)

type sessionData struct {
	LastSeen time.Time `json:"lastSeen"`
}

// SessionMiddleware assigns an anonymous session to every visitor and keeps
// its last-seen timestamp in the session store. Session loss is tolerated;
// store errors never fail the request.
func SessionMiddleware(store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		token, err := c.Cookie(sessionCookie)
		if err != nil || token == "" {
			token = session.NewToken()
			c.SetCookie(sessionCookie, token, cookieMaxAge, "/", "", false, true)
		}
		c.Set(sessionCtxKey, token)

		data, _ := json.Marshal(sessionData{LastSeen: time.Now().UTC()})
		_ = store.Set(ctx, token, data, sessionTTL)

		c.Next()
	}
}

// SessionToken returns the visitor's session token.
func SessionToken(c *gin.Context) string {
	if value, ok := c.Get(sessionCtxKey); ok {
		if token, ok := value.(string); ok {
			return token
		}
	}
	return ""
}

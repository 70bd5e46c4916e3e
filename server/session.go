package server

import (
	"github.com/example/craftshop/pkg/cart"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionContextKey = "server.session_id"

// sessionMiddleware resolves the guest session id: the X-Session-ID header
// wins, then the session cookie; first-time visitors get a fresh id set as a
// cookie. The id is what correlates carts, wishlists and recently-viewed
// rows with one visitor.
func (s *Server) sessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Session-ID")
		if id == "" {
			if cookie, err := c.Cookie(sessionCookie); err == nil {
				id = cookie
			}
		}
		if id == "" {
			id = uuid.NewString()
			c.SetCookie(sessionCookie, id, int(cart.DefaultSessionTTL.Seconds()), "/", "", false, true)
		}
		c.Set(sessionContextKey, id)
		c.Next()
	}
}

func (s *Server) sessionID(c *gin.Context) string {
	return c.GetString(sessionContextKey)
}

func (s *Server) session(c *gin.Context) *cart.Session {
	return s.sessions.Session(s.sessionID(c))
}

package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const userContextKey = "auth.user"

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}

// RequireUser rejects requests without a valid bearer token and stores the
// resolved user in the gin context.
func RequireUser(client *Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		user, err := client.CurrentUser(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// OptionalUser resolves identity when a token is present but lets anonymous
// requests through.
func OptionalUser(client *Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := bearerToken(c); token != "" {
			if user, err := client.CurrentUser(c.Request.Context(), token); err == nil {
				c.Set(userContextKey, user)
			}
		}
		c.Next()
	}
}

// RequireAdmin sits behind RequireUser and checks the caller's role row.
func RequireAdmin(roles *RoleStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := UserFrom(c)
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		isAdmin, err := roles.IsAdmin(c.Request.Context(), user.ID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to check role"})
			return
		}
		if !isAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin role required"})
			return
		}
		c.Next()
	}
}

// UserFrom returns the authenticated user stored by the middleware, or nil.
func UserFrom(c *gin.Context) *User {
	v, ok := c.Get(userContextKey)
	if !ok {
		return nil
	}
	user, _ := v.(*User)
	return user
}

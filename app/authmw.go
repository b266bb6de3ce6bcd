package app

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Arss011/network-toolkit-management-api/auth"
	"github.com/Arss011/network-toolkit-management-api/db"
	"github.com/Arss011/network-toolkit-management-api/models"
	"github.com/Arss011/network-toolkit-management-api/session"
)

// AuthRequired verifies the bearer token on every request: signature
// and expiry via the JWT, liveness via the redis session registry. A
// token whose jti is gone (logout, user deleted) is unauthorized even
// if the JWT itself has not expired yet.
func AuthRequired(mgr *auth.Manager, tokens *session.TokenStore, repo *db.Repo) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearerToken(c.GetHeader("Authorization"))
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, H{"success": false, "message": "unauthorized"})
			return
		}
		claims, err := mgr.Parse(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, H{"success": false, "message": "invalid token"})
			return
		}
		if _, err := tokens.Get(c.Request.Context(), claims.ID); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, H{"success": false, "message": "session expired"})
			return
		}

		// Confirm the user still exists and is active (one query).
		u, err := repo.FindUserByID(c.Request.Context(), claims.UserID)
		if err != nil || !u.IsActive {
			_ = tokens.Delete(c.Request.Context(), claims.ID)
			c.AbortWithStatusJSON(http.StatusUnauthorized, H{"success": false, "message": "unauthorized"})
			return
		}

		c.Set("userID", u.ID)
		c.Set("username", u.Username)
		c.Set("isAdmin", u.Role == models.RoleAdmin)
		c.Set("jti", claims.ID)

		c.Next()
	}
}

// AdminOnly gates mutating catalog routes. Runs after AuthRequired.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		v, ok := c.Get("isAdmin")
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, H{"success": false, "message": "unauthorized"})
			return
		}
		if isAdmin, _ := v.(bool); !isAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, H{"success": false, "message": "forbidden"})
			return
		}
		c.Next()
	}
}

func bearerToken(header string) string {
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	return ""
}

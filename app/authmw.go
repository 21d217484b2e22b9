package app

import (
	"Gin_postgres_redis_equipment_lab/db"
	"Gin_postgres_redis_equipment_lab/session"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// AuthRequired verifies the Bearer token, rejects revoked token ids, and
// loads the caller so handlers get userID/email/isAdmin from the context
// with a single lookup.
func AuthRequired(tokens *session.TokenStore, repo *db.Repo, cfg Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, H{"error": "unauthorized access"})
			return
		}
		raw := strings.TrimPrefix(h, "Bearer ")

		claims, err := ParseToken(cfg.JWTSecret, raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, H{"error": "unauthorized access"})
			return
		}
		if revoked, err := tokens.IsRevoked(c.Request.Context(), claims.ID); err == nil && revoked {
			c.AbortWithStatusJSON(http.StatusUnauthorized, H{"error": "unauthorized access"})
			return
		}

		u, err := repo.FindUserByEmail(c.Request.Context(), claims.Subject)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, H{"error": "unauthorized access"})
			return
		}

		isAdmin := u.IsAdmin()
		for _, admin := range cfg.AdminEmails {
			if strings.EqualFold(admin, u.Email) {
				isAdmin = true
			}
		}

		c.Set("userID", u.ID)
		c.Set("email", u.Email)
		c.Set("username", u.Name)
		c.Set("isAdmin", isAdmin)
		c.Set("tokenID", claims.ID)
		if claims.ExpiresAt != nil {
			c.Set("tokenExp", claims.ExpiresAt.Time)
		}
		c.Next()
	}
}

// AdminOnly guards the privileged operations: direct quantity edits, item
// deletion, user management. Must run after AuthRequired.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if v, ok := c.Get("isAdmin"); !ok || v != true {
			c.AbortWithStatusJSON(http.StatusForbidden, H{"error": "forbidden access"})
			return
		}
		c.Next()
	}
}

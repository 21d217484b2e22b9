// controllers/auth_controller.go
package controllers

import (
	"net/http"
	"time"

	"Gin_postgres_redis_equipment_lab/app"

	"github.com/gin-gonic/gin"
)

type AuthController struct{ *Srv }

func NewAuthController(s *Srv) *AuthController { return &AuthController{Srv: s} }

type tokenRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// POST /api/auth/token — issue a bearer token for a registered user.
func (ac *AuthController) IssueToken(c *gin.Context) {
	var in tokenRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}

	u, err := ac.Repo.FindUserByEmail(c.Request.Context(), in.Email)
	if err != nil {
		fail(c, err)
		return
	}

	token, expiresAt, err := app.IssueToken(ac.Cfg, u.Email, u.Name)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"token": token, "expiresAt": expiresAt})
}

// POST /api/auth/logout — deny the presented token until it expires.
func (ac *AuthController) Logout(c *gin.Context) {
	jtiV, _ := c.Get("tokenID")
	jti, _ := jtiV.(string)
	if jti == "" {
		c.JSON(http.StatusUnauthorized, app.H{"error": "unauthorized access"})
		return
	}
	until := time.Now().Add(ac.Cfg.TokenTTL)
	if v, ok := c.Get("tokenExp"); ok {
		if exp, ok := v.(time.Time); ok {
			until = exp
		}
	}

	if err := ac.Tokens.Revoke(c.Request.Context(), jti, until); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"ok": true})
}

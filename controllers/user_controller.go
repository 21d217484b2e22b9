// controllers/user_controller.go
package controllers

import (
	"net/http"

	"Gin_postgres_redis_equipment_lab/app"
	"Gin_postgres_redis_equipment_lab/models"

	"github.com/gin-gonic/gin"
)

type UserController struct{ *Srv }

func NewUserController(s *Srv) *UserController { return &UserController{Srv: s} }

type registerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email" binding:"required,email"`
}

// POST /api/users — idempotent on email.
func (uc *UserController) Register(c *gin.Context) {
	var in registerRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}

	u, created, err := uc.Repo.RegisterUser(c.Request.Context(), in.Name, in.Email)
	if err != nil {
		fail(c, err)
		return
	}
	if !created {
		c.JSON(http.StatusOK, app.H{"message": "user already exists", "user": u})
		return
	}
	c.JSON(http.StatusCreated, u)
}

// GET /api/users/admin/:email — the "is privileged" probe used by clients.
func (uc *UserController) IsAdmin(c *gin.Context) {
	admin := false
	if u, err := uc.Repo.FindUserByEmail(c.Request.Context(), c.Param("email")); err == nil {
		admin = u.IsAdmin()
	}
	c.JSON(http.StatusOK, app.H{"admin": admin})
}

// GET /api/users (admin)
func (uc *UserController) ListUsers(c *gin.Context) {
	users, err := uc.Repo.ListUsers(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// PATCH /api/users/admin/:id (admin)
func (uc *UserController) MakeAdmin(c *gin.Context) {
	u, err := uc.Repo.MakeAdmin(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}

	uc.logActivity(c, callerEmail(c), models.ActionMakeAdmin, map[string]any{
		"targetUserId":    u.ID,
		"targetUserEmail": u.Email,
		"targetUserName":  u.Name,
	})
	c.JSON(http.StatusOK, u)
}

// DELETE /api/users/:id (admin)
func (uc *UserController) DeleteUser(c *gin.Context) {
	u, err := uc.Repo.DeleteUserByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}

	uc.logActivity(c, callerEmail(c), models.ActionDeleteUser, map[string]any{
		"deletedUserId":    u.ID,
		"deletedUserEmail": u.Email,
		"deletedUserName":  u.Name,
	})
	c.JSON(http.StatusOK, app.H{"message": "User deleted successfully"})
}

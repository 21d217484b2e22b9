package routes

import (
	"time"

	"Gin_postgres_redis_equipment_lab/app"
	"Gin_postgres_redis_equipment_lab/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, a *app.App) {
	s := controllers.GetSrv(a)
	authCtl := controllers.NewAuthController(s)
	userCtl := controllers.NewUserController(s)
	itemCtl := controllers.NewItemController(s)
	loanCtl := controllers.NewLoanController(s)
	statsCtl := controllers.NewStatsController(s)
	logCtl := controllers.NewActivityLogController(s)

	authMW := app.AuthRequired(s.Tokens, s.Repo, a.Config)
	adminMW := app.AdminOnly()
	seenMW := app.TouchLastSeen(s.Repo, a.RDB, 5*time.Minute)

	// ------------------------------
	// Auth / users (public)
	// ------------------------------
	auth := r.Group("/api/auth")
	{
		auth.POST("/token", authCtl.IssueToken)
		auth.POST("/logout", authMW, authCtl.Logout)
	}

	users := r.Group("/api/users")
	{
		users.POST("", userCtl.Register)
		users.GET("/admin/:email", userCtl.IsAdmin)
	}

	// User management (admin only)
	usersAdmin := r.Group("/api/users", authMW, adminMW)
	{
		usersAdmin.GET("", userCtl.ListUsers)
		usersAdmin.PATCH("/admin/:id", userCtl.MakeAdmin)
		usersAdmin.DELETE("/:id", userCtl.DeleteUser)
	}

	// ------------------------------
	// Equipment (browse public, mutate admin)
	// ------------------------------
	equipment := r.Group("/api/equipment")
	{
		equipment.GET("", itemCtl.ListItems)
		equipment.GET("/suggestions", itemCtl.Suggestions)
		equipment.GET("/:id", itemCtl.GetItem)
	}

	equipmentAdmin := r.Group("/api/equipment", authMW, adminMW)
	{
		equipmentAdmin.POST("", itemCtl.CreateItem)
		equipmentAdmin.PUT("/:id", itemCtl.UpdateItem)
		equipmentAdmin.DELETE("/:id", itemCtl.DeleteItem)
	}

	// Collect / return (any signed-in user)
	accounting := r.Group("/api/equipment", authMW, seenMW)
	{
		accounting.POST("/:id/collect", loanCtl.Collect)
		accounting.POST("/:id/return", loanCtl.Return)
	}

	// ------------------------------
	// History / stats / overdue
	// ------------------------------
	history := r.Group("/api/history", authMW, seenMW)
	{
		history.GET("", loanCtl.ListHistory)
		history.GET("/user/:email", loanCtl.ListUserHistory)
		history.GET("/stats", statsCtl.Stats)
		history.GET("/due", statsCtl.Overdue)
	}

	// ------------------------------
	// Activity logs (admin only)
	// ------------------------------
	admin := r.Group("/api/admin", authMW, adminMW)
	{
		admin.GET("/activity-logs", logCtl.ListLogs)
		admin.GET("/my-activity/:email", logCtl.MyActivity)
	}
}

// controllers/activity_log_controller.go
package controllers

import (
	"net/http"
	"strconv"

	"Gin_postgres_redis_equipment_lab/db"

	"github.com/gin-gonic/gin"
)

type ActivityLogController struct{ *Srv }

func NewActivityLogController(s *Srv) *ActivityLogController {
	return &ActivityLogController{Srv: s}
}

// GET /api/admin/activity-logs?action=&page=&limit=
func (alc *ActivityLogController) ListLogs(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	res, err := alc.Repo.ListActivityLogs(c.Request.Context(), db.ActivityLogsQuery{
		Action: c.Query("action"),
		Page:   page,
		Size:   limit,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GET /api/admin/my-activity/:email?page=&limit=
func (alc *ActivityLogController) MyActivity(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	res, err := alc.Repo.ListActivityLogs(c.Request.Context(), db.ActivityLogsQuery{
		ActorEmail: c.Param("email"),
		Page:       page,
		Size:       limit,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

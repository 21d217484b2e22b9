// controllers/stats_controller.go
package controllers

import (
	"net/http"
	"strconv"

	"Gin_postgres_redis_equipment_lab/db"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type StatsController struct{ *Srv }

func NewStatsController(s *Srv) *StatsController { return &StatsController{Srv: s} }

// GET /api/history/stats — dashboard aggregation, served from the redis
// cache when fresh. Cache trouble degrades to a direct read, never an error.
func (sc *StatsController) Stats(c *gin.Context) {
	var cached db.Stats
	if hit, err := sc.StatsCache.Get(c.Request.Context(), &cached); err == nil && hit {
		c.JSON(http.StatusOK, cached)
		return
	}

	stats, err := sc.Repo.Stats(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	if err := sc.StatsCache.Set(c.Request.Context(), stats); err != nil {
		sc.Log.Warn("stats cache write failed", zap.Error(err))
	}
	c.JSON(http.StatusOK, stats)
}

// GET /api/history/due?page=&limit= — open loans past their return date,
// most overdue first.
func (sc *StatsController) Overdue(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	res, err := sc.Repo.ListOverdueLoans(c.Request.Context(), page, limit)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

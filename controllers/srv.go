// controllers/srv.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"Gin_postgres_redis_equipment_lab/app"
	"Gin_postgres_redis_equipment_lab/db"
	"Gin_postgres_redis_equipment_lab/session"
	"Gin_postgres_redis_equipment_lab/uploads"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Srv struct {
	Repo       *db.Repo
	RDB        *redis.Client
	Tokens     *session.TokenStore
	StatsCache *session.StatsCache
	Images     uploads.Store
	Log        *zap.Logger
	Cfg        app.Config
}

func GetSrv(a *app.App) *Srv {
	return &Srv{
		Repo:       db.NewRepo(a.DB),
		RDB:        a.RDB,
		Tokens:     a.Tokens(),
		StatsCache: session.NewStatsCache(a.RDB, 30*time.Second),
		Images:     uploads.NewDiskStore(a.Config.UploadDir),
		Log:        a.Log,
		Cfg:        a.Config,
	}
}

// errStatus maps the repo's error taxonomy onto HTTP statuses. Anything
// outside the taxonomy is an internal error.
func errStatus(err error) int {
	switch {
	case errors.Is(err, db.ErrItemNotFound),
		errors.Is(err, db.ErrLoanNotFound),
		errors.Is(err, db.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, db.ErrInvalidArgument),
		errors.Is(err, db.ErrInsufficientQuantity):
		return http.StatusBadRequest
	case errors.Is(err, db.ErrAlreadyReturned),
		errors.Is(err, db.ErrAmbiguousLoan),
		errors.Is(err, db.ErrItemHasOpenLoans),
		errors.Is(err, db.ErrQuantityConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func fail(c *gin.Context, err error) {
	c.JSON(errStatus(err), app.H{"error": err.Error()})
}

// logActivity notifies the activity-log collaborator. Always best effort: a
// failed write is logged and swallowed, never surfaced to the caller.
func (s *Srv) logActivity(c *gin.Context, actorEmail, action string, details map[string]any) {
	if actorEmail == "" {
		return
	}
	if _, err := s.Repo.LogActivity(c.Request.Context(), actorEmail, action, details, c.ClientIP()); err != nil {
		s.Log.Warn("activity log write failed",
			zap.String("action", action),
			zap.String("actor", actorEmail),
			zap.Error(err))
	}
}

func callerEmail(c *gin.Context) string {
	v, _ := c.Get("email")
	email, _ := v.(string)
	return email
}

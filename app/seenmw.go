// app/seenmw.go
package app

import (
	"Gin_postgres_redis_equipment_lab/db"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// TouchLastSeen stamps the caller's last_seen_at at most once per throttle
// window, using a redis SETNX as the rate gate.
func TouchLastSeen(repo *db.Repo, rdb *redis.Client, throttle time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, ok := c.Get("email")
		if !ok {
			c.Next()
			return
		}
		email, _ := v.(string)
		if email == "" {
			c.Next()
			return
		}

		key := "user:lastseen:" + email
		if ok, _ := rdb.SetNX(c, key, "1", throttle).Result(); ok {
			_ = repo.TouchUserSeen(c, email) // best effort, never blocks the request
		}
		c.Next()
	}
}

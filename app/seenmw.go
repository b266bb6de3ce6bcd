package app

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/Arss011/network-toolkit-management-api/db"
)

// TouchLastSeen stamps users.last_seen_at at most once per throttle
// window, gated by a redis SetNX so the write never runs per request.
func TouchLastSeen(repo *db.Repo, rdb *redis.Client, throttle time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, ok := c.Get("userID")
		if !ok {
			c.Next()
			return
		}
		uid, _ := v.(uint)
		if uid == 0 {
			c.Next()
			return
		}

		key := fmt.Sprintf("user:lastseen:%d", uid)
		if ok, _ := rdb.SetNX(c, key, "1", throttle).Result(); ok {
			_ = repo.TouchUserSeen(c, uid) // best effort, never blocks the request
		}
		c.Next()
	}
}

package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Health reports DB and Redis connectivity. Redis being down degrades the
// response but the API itself keeps serving (the cache is best effort).
func Health(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		dbOK := false
		if sqlDB, err := db.DB(); err == nil && sqlDB.PingContext(ctx) == nil {
			dbOK = true
		}
		redisOK := rdb != nil && rdb.Ping(ctx).Err() == nil

		status := http.StatusOK
		if !dbOK {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{
			"ok":    dbOK,
			"db":    estado(dbOK),
			"redis": estado(redisOK),
		})
	}
}

func estado(ok bool) string {
	if ok {
		return "connected"
	}
	return "error"
}

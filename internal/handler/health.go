package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Health reports liveness plus the state of each backing dependency.
// Degraded dependencies flip the overall status but still return 200 so
// orchestrators don't kill a pod that can serve reads.
func Health(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := "ok"
		deps := gin.H{}

		sqlDB, err := db.DB()
		if err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
			deps["database"] = "down"
			status = "degraded"
		} else {
			deps["database"] = "ok"
		}

		if rdb.Ping(c.Request.Context()).Err() != nil {
			deps["redis"] = "down"
			status = "degraded"
		} else {
			deps["redis"] = "ok"
		}

		c.JSON(http.StatusOK, gin.H{
			"status":       status,
			"dependencies": deps,
			"timestamp":    time.Now().UTC().Format(time.RFC3339),
		})
	}
}

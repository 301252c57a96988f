package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"curator/internal/shared/logger"
	"curator/internal/shared/utils"
)

// Recovery converts panics into a generic 500 response. The stack goes to
// the log, never to the client.
func Recovery() gin.HandlerFunc {
	log := logger.NewLogger().Named("recovery")

	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Errorw("panic recovered",
					"panic", r,
					"path", c.Request.URL.Path,
					"stack", string(debug.Stack()),
				)
				utils.ErrorResponse(c, http.StatusInternalServerError, "Internal server error occurred")
				c.Abort()
			}
		}()
		c.Next()
	}
}

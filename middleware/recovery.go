package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/rabinshresthaaa/CoverPage/pkg/logger"
	"github.com/rabinshresthaaa/CoverPage/pkg/metrics"
)

// Recovery converts a handler panic into a 500 carrying the request ID, so
// a failed download can be matched to its log line.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			recovered := recover()
			if recovered == nil {
				return
			}

			route := routeLabel(c)
			metrics.PanicsRecovered.WithLabelValues(route).Inc()
			logger.Error(c.Request.Context(), "handler panicked",
				"panic", fmt.Sprint(recovered),
				"route", route,
				"stack", string(debug.Stack()),
			)

			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error":      "Internal server error",
				"request_id": GetRequestID(c),
			})
		}()

		c.Next()
	}
}

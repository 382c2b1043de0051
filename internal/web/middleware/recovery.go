package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Recovery middleware for panic handling. onPanic writes the response.
func Recovery(logger *zap.Logger, onPanic gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered",
					zap.Any("panic", r),
					zap.Stack("stack"),
					zap.String("method", c.Request.Method),
					zap.String("path", c.Request.URL.Path),
				)

				if c.Writer.Written() {
					c.Abort()
					return
				}

				c.Status(http.StatusInternalServerError)
				onPanic(c)
				c.Abort()
			}
		}()

		c.Next()
	}
}

package middleware

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Errors logs the errors handlers attached to the context once the request completes.
func Errors(log *zap.SugaredLogger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Next()

		for _, err := range ctx.Errors {
			log.Errorw("request",
				"requestID", GetRequestID(ctx),
				"method", ctx.Request.Method,
				"path", ctx.Request.URL.Path,
				"status", ctx.Writer.Status(),
				"ERROR", err.Err,
			)
		}
	}
}

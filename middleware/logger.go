package middleware

import (
	"time"

	pctx "Persona/pkg/context"
	"Persona/pkg/log"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GinZap 访问日志，每个请求挂一个 request_id
func GinZap() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader("X-Request-Id")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(pctx.CtxRequestID, requestID)
		c.Header("X-Request-Id", requestID)

		c.Next()

		log.L.Info("http request",
			zap.String("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("cost", time.Since(start)),
		)
	}
}

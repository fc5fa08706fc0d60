// pkg/middleware/logger.go

package middleware

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"virtusim-backend/pkg/utils"
)

const HeaderRequestID = "X-Request-Id"

// InjectLogger кладёт в контекст запроса логгер с request_id.
// Ставится после RequestLogger.
func InjectLogger(logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			reqLogger := logger
			if requestID := utils.GetRequestIDFromCtx(ctx); requestID != "" {
				reqLogger = logger.With(zap.String("request_id", requestID))
			}
			c.SetRequest(c.Request().WithContext(utils.WithLogger(ctx, reqLogger)))
			return next(c)
		}
	}
}

// RequestLogger присваивает запросу request id и пишет итоговую строку лога.
func RequestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			requestID := c.Request().Header.Get(HeaderRequestID)
			if requestID == "" {
				requestID = uuid.NewString()
			}
			c.Response().Header().Set(HeaderRequestID, requestID)
			c.SetRequest(c.Request().WithContext(utils.WithRequestID(c.Request().Context(), requestID)))

			err := next(c)
			if err != nil {
				// отдаём ошибку echo, чтобы статус в логе был итоговым
				c.Error(err)
			}

			logger.Info("HTTP запрос",
				zap.String("request_id", requestID),
				zap.String("method", c.Request().Method),
				zap.String("path", c.Path()),
				zap.String("uri", c.Request().RequestURI),
				zap.Int("status", c.Response().Status),
				zap.Int64("bytes_out", c.Response().Size),
				zap.Duration("latency", time.Since(start)),
				zap.String("remote_ip", c.RealIP()),
			)
			return nil
		}
	}
}

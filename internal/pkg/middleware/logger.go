package middleware

import (
	"time"

	"github.com/antarkita/dispatch/internal/pkg/logger"
	"github.com/labstack/echo/v4"
)

// RequestLoggerMiddleware logs every HTTP request with latency and
// status through the structured logger.
func RequestLoggerMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			path := c.Request().URL.Path
			if raw := c.Request().URL.RawQuery; raw != "" {
				path = path + "?" + raw
			}

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			zapLogger.Info("request",
				logger.String("method", c.Request().Method),
				logger.String("path", path),
				logger.Int("status", c.Response().Status),
				logger.String("client_ip", c.RealIP()),
				logger.Duration("latency", time.Since(start)),
			)

			return err
		}
	}
}

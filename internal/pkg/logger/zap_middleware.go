package logger

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderRequestID is read from and echoed back on every request
const HeaderRequestID = "X-Request-ID"

// ZapEchoMiddleware tags each request with an id and logs it once served
func ZapEchoMiddleware(zl *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()

			requestID := req.Header.Get(HeaderRequestID)
			if requestID == "" {
				requestID = uuid.NewString()
			}
			c.Response().Header().Set(HeaderRequestID, requestID)
			c.SetRequest(req.WithContext(WithRequestID(req.Context(), requestID)))

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			path := req.URL.Path
			if raw := req.URL.RawQuery; raw != "" {
				path = path + "?" + raw
			}

			zl.LogHTTPRequest(req.Method, path, c.RealIP(), requestID, c.Response().Status, time.Since(start), err)
			return nil
		}
	}
}

package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/lailaduaibes/Building-Materials-Uber-APP-sub001/internal/pkg/logger"
	"github.com/lailaduaibes/Building-Materials-Uber-APP-sub001/internal/utils"
)

// PanicRecovery turns a handler panic into a logged 500 response
func PanicRecovery(zl *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					zl.Error("Panic recovered during request processing",
						logger.String("panic_value", fmt.Sprintf("%v", r)),
						logger.String("panic_type", fmt.Sprintf("%T", r)),
						logger.String("method", c.Request().Method),
						logger.String("path", c.Path()),
						logger.String("driver_id", c.Param("driverID")),
						logger.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
						logger.String("stack_trace", string(debug.Stack())))

					if !c.Response().Committed {
						err = utils.ErrorResponseHandler(c, http.StatusInternalServerError, "An unexpected error occurred")
					}
				}
			}()

			return next(c)
		}
	}
}

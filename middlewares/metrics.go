package middlewares

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/estiakahmed98/islami-dawa-production-sub001/metrics"
)

// CountRequests feeds the prometheus request counter after each response.
func CountRequests() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)
			status := c.Response().Status
			if he, ok := err.(*echo.HTTPError); ok {
				status = he.Code
			}
			metrics.HTTPRequests.WithLabelValues(c.Request().Method, strconv.Itoa(status)).Inc()
			return err
		}
	}
}

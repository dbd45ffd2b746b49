package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/estiakahmed98/islami-dawa-production-sub001/database"
)

// GET /healthz
func Health(c echo.Context) error {
	sqlDB, err := database.DB.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]any{"status": "degraded"})
	}
	return c.JSON(http.StatusOK, map[string]any{"status": "ok"})
}

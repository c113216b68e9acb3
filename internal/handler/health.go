package handler // declare the package name; contains HTTP handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Health is a simple liveness endpoint used by load balancers and
// monitoring systems. It reports a fixed status with the current UTC
// timestamp and touches no storage.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

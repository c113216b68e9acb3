package router // package router defines how HTTP routes are registered for the API

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/hrcauto/workshop-backoffice/internal/config"
	"github.com/hrcauto/workshop-backoffice/internal/handler"
	"github.com/hrcauto/workshop-backoffice/internal/middleware"
	"github.com/hrcauto/workshop-backoffice/internal/session"
)

// Register wires every endpoint onto the Echo instance. The login and
// health routes stay outside the session gate; everything else under
// /api requires a live session. rdb may be nil, which disables the
// login rate limiter.
func Register(e *echo.Echo, cfg config.Config, rdb *redis.Client,
	a *handler.AuthHandler, j *handler.JobCardHandler, cl *handler.ClientHandler,
	store session.Store) {

	e.HTTPErrorHandler = jsonErrorHandler

	e.GET("/api/health", handler.Health)
	e.POST("/api/login", a.Login, middleware.LoginRateLimit(config.LoadLoginRateLimit(), rdb))
	// Logout sits outside the gate so a request with a dead session
	// still gets its cookie cleared and a success response.
	e.POST("/api/logout", a.Logout)

	api := e.Group("/api")
	api.Use(middleware.RequireSession(cfg.SessionSecret, store))
	api.GET("/me", a.Me)
	api.POST("/create-job-card", j.Create)
	api.GET("/next-job-no", j.NextJobNo)
	api.GET("/search-client/:phone", cl.Search)
	api.GET("/all-clients", cl.List)
}

// jsonErrorHandler guarantees that unmatched routes and uncaught
// errors come back as structured JSON instead of Echo's default pages.
func jsonErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	code := http.StatusInternalServerError
	msg := "internal server error"
	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if s, ok := he.Message.(string); ok {
			msg = s
		}
	}
	if code == http.StatusNotFound {
		msg = "route not found"
	}
	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	_ = c.JSON(code, echo.Map{"error": msg})
}

package middleware // middleware provides shared request processing for handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hrcauto/workshop-backoffice/internal/session"
)

// RequireSession returns an Echo middleware that gates protected
// routes behind a live session. It verifies the cookie's HMAC
// signature with the given secret before consulting the store, so
// forged cookies never reach it. On success the identity is stashed in
// the request context under "user_id" and "username"; any failure
// short-circuits with 401 and the downstream handler never runs.
func RequireSession(secret string, store session.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(session.CookieName)
			if err != nil || cookie.Value == "" {
				return unauthorized(c)
			}
			token, ok := session.Verify(secret, cookie.Value)
			if !ok {
				return unauthorized(c)
			}
			id, err := store.Lookup(c.Request().Context(), token)
			if err != nil {
				// unknown, expired, or store unreachable: all end here
				return unauthorized(c)
			}
			c.Set("user_id", id.UserID)
			c.Set("username", id.Username)
			return next(c)
		}
	}
}

func unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Unauthorized. Please log in."})
}

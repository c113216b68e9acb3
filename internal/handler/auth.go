package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/hrcauto/workshop-backoffice/internal/config"
	"github.com/hrcauto/workshop-backoffice/internal/repository"
	"github.com/hrcauto/workshop-backoffice/internal/session"
)

// AuthHandler bundles dependencies for the login/logout endpoints.
type AuthHandler struct {
	Cfg      config.Config
	Users    UserStore
	Sessions session.Store
}

func NewAuthHandler(cfg config.Config, u UserStore, s session.Store) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: u, Sessions: s}
}

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// invalidCredentials is the single 401 body for both "no such user"
// and "wrong password", so callers cannot enumerate usernames.
func invalidCredentials(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid username or password"})
}

// Login verifies the credentials, establishes a session and sets the
// signed session cookie.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username and password required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return invalidCredentials(c)
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		return invalidCredentials(c)
	}

	token, err := h.Sessions.Create(ctx, session.Identity{UserID: u.ID, Username: u.Username})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create session failed"})
	}
	session.SetCookie(
		c.Response(),
		session.Sign(h.Cfg.SessionSecret, token),
		time.Now().Add(session.TTL),
		session.CookieOptionsForEnv(h.Cfg.Env),
	)
	return c.JSON(http.StatusOK, echo.Map{"message": "Login successful"})
}

// Logout destroys the session named by the cookie, if any, and clears
// the cookie. A request without a live session still succeeds; only a
// failing store turns into a 500.
func (h *AuthHandler) Logout(c echo.Context) error {
	opts := session.CookieOptionsForEnv(h.Cfg.Env)

	if cookie, err := c.Cookie(session.CookieName); err == nil && cookie.Value != "" {
		if token, ok := session.Verify(h.Cfg.SessionSecret, cookie.Value); ok {
			ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
			defer cancel()
			if err := h.Sessions.Destroy(ctx, token); err != nil {
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": "logout failed"})
			}
		}
	}
	session.ClearCookie(c.Response(), opts)
	return c.JSON(http.StatusOK, echo.Map{"message": "Logged out"})
}

// Me returns the identity attached to the current session.
func (h *AuthHandler) Me(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"user_id":  c.Get("user_id"),
		"username": c.Get("username"),
	})
}

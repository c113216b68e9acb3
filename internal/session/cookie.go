package session

import (
	"net/http"
	"time"
)

// CookieName is the name of the session cookie.
const CookieName = "workshop_session"

// CookieOptions control the security attributes of the session cookie.
type CookieOptions struct {
	Secure   bool
	SameSite http.SameSite
}

// CookieOptionsForEnv maps the deployment environment to cookie flags.
// Production serves the SPA from a different origin, so the cookie must
// be Secure + SameSite=None there; everywhere else Lax is the safer
// default.
func CookieOptionsForEnv(env string) CookieOptions {
	if env == "prod" {
		return CookieOptions{Secure: true, SameSite: http.SameSiteNoneMode}
	}
	return CookieOptions{Secure: false, SameSite: http.SameSiteLaxMode}
}

// SetCookie issues the session cookie carrying the signed token value.
func SetCookie(w http.ResponseWriter, value string, expiresAt time.Time, opts CookieOptions) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: opts.SameSite,
	})
}

// ClearCookie removes the session cookie from the client.
func ClearCookie(w http.ResponseWriter, opts CookieOptions) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: opts.SameSite,
	})
}

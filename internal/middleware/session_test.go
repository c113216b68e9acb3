package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/hrcauto/workshop-backoffice/internal/session"
)

const testSecret = "gate-secret"

func runGate(t *testing.T, store session.Store, cookie *http.Cookie) (*httptest.ResponseRecorder, int) {
	t.Helper()
	e := echo.New()
	calls := 0
	next := func(c echo.Context) error {
		calls++
		if c.Get("user_id") == nil || c.Get("username") == nil {
			t.Fatalf("identity missing from context")
		}
		return c.NoContent(http.StatusOK)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/all-clients", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := RequireSession(testSecret, store)(next)(c); err != nil {
		t.Fatalf("middleware: %v", err)
	}
	return rec, calls
}

func TestRequireSessionNoCookie(t *testing.T) {
	rec, calls := runGate(t, session.NewMemoryStore(), nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if calls != 0 {
		t.Fatalf("handler ran without a session")
	}
}

func TestRequireSessionForgedCookie(t *testing.T) {
	store := session.NewMemoryStore()
	token, _ := store.Create(context.Background(), session.Identity{UserID: 1, Username: "x"})

	// right token, wrong signature
	forged := &http.Cookie{Name: session.CookieName, Value: session.Sign("other-secret", token)}
	rec, calls := runGate(t, store, forged)
	if rec.Code != http.StatusUnauthorized || calls != 0 {
		t.Fatalf("forged cookie passed the gate (status %d, calls %d)", rec.Code, calls)
	}
}

func TestRequireSessionUnknownToken(t *testing.T) {
	token, _ := session.NewToken()
	cookie := &http.Cookie{Name: session.CookieName, Value: session.Sign(testSecret, token)}
	rec, calls := runGate(t, session.NewMemoryStore(), cookie)
	if rec.Code != http.StatusUnauthorized || calls != 0 {
		t.Fatalf("unknown token passed the gate (status %d, calls %d)", rec.Code, calls)
	}
}

func TestRequireSessionLiveSession(t *testing.T) {
	store := session.NewMemoryStore()
	token, err := store.Create(context.Background(), session.Identity{UserID: 9, Username: "mira"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	cookie := &http.Cookie{Name: session.CookieName, Value: session.Sign(testSecret, token)}
	rec, calls := runGate(t, store, cookie)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if calls != 1 {
		t.Fatalf("handler ran %d times, want 1", calls)
	}
}

func TestRequireSessionAfterLogout(t *testing.T) {
	store := session.NewMemoryStore()
	ctx := context.Background()
	token, _ := store.Create(ctx, session.Identity{UserID: 9, Username: "mira"})
	if err := store.Destroy(ctx, token); err != nil {
		t.Fatalf("Destroy: %v", err)
	}

	cookie := &http.Cookie{Name: session.CookieName, Value: session.Sign(testSecret, token)}
	rec, calls := runGate(t, store, cookie)
	if rec.Code != http.StatusUnauthorized || calls != 0 {
		t.Fatalf("destroyed session passed the gate (status %d, calls %d)", rec.Code, calls)
	}
}

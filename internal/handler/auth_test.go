package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/hrcauto/workshop-backoffice/internal/config"
	"github.com/hrcauto/workshop-backoffice/internal/model"
	"github.com/hrcauto/workshop-backoffice/internal/repository"
	"github.com/hrcauto/workshop-backoffice/internal/session"
)

type fakeUsers struct {
	users map[string]model.User
	calls int
}

func (f *fakeUsers) GetByUsername(_ context.Context, username string) (model.User, error) {
	f.calls++
	u, ok := f.users[username]
	if !ok {
		return model.User{}, repository.ErrNotFound
	}
	return u, nil
}

func newTestAuthHandler(t *testing.T) (*AuthHandler, *fakeUsers, *session.MemoryStore) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	users := &fakeUsers{users: map[string]model.User{
		"dana": {ID: 3, Username: "dana", PasswordHash: string(hash)},
	}}
	store := session.NewMemoryStore()
	cfg := config.Config{Env: "dev", SessionSecret: "test-secret"}
	return NewAuthHandler(cfg, users, store), users, store
}

func postJSON(e *echo.Echo, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func getJSON(e *echo.Echo, path string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &m); err != nil {
		t.Fatalf("decode body %q: %v", rec.Body.String(), err)
	}
	return m
}

func TestLoginSuccessEstablishesSession(t *testing.T) {
	h, _, store := newTestAuthHandler(t)
	e := echo.New()
	c, rec := postJSON(e, "/api/login", `{"username":"dana","password":"correct-horse"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := decodeBody(t, rec)["message"]; got != "Login successful" {
		t.Fatalf("message = %v", got)
	}

	var cookie *http.Cookie
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == session.CookieName {
			cookie = ck
		}
	}
	if cookie == nil {
		t.Fatalf("no session cookie set")
	}
	if !cookie.HttpOnly {
		t.Fatalf("cookie must be HttpOnly")
	}
	token, ok := session.Verify("test-secret", cookie.Value)
	if !ok {
		t.Fatalf("cookie value %q not verifiable", cookie.Value)
	}
	id, err := store.Lookup(context.Background(), token)
	if err != nil {
		t.Fatalf("session missing from store: %v", err)
	}
	if id.UserID != 3 || id.Username != "dana" {
		t.Fatalf("identity = %+v", id)
	}
}

func TestLoginEnumerationResistance(t *testing.T) {
	h, _, _ := newTestAuthHandler(t)
	e := echo.New()

	c1, rec1 := postJSON(e, "/api/login", `{"username":"dana","password":"wrong"}`)
	if err := h.Login(c1); err != nil {
		t.Fatalf("Login: %v", err)
	}
	c2, rec2 := postJSON(e, "/api/login", `{"username":"nobody","password":"wrong"}`)
	if err := h.Login(c2); err != nil {
		t.Fatalf("Login: %v", err)
	}

	if rec1.Code != http.StatusUnauthorized || rec2.Code != http.StatusUnauthorized {
		t.Fatalf("statuses = %d, %d, want 401, 401", rec1.Code, rec2.Code)
	}
	if rec1.Body.String() != rec2.Body.String() {
		t.Fatalf("bodies differ: %q vs %q", rec1.Body.String(), rec2.Body.String())
	}
}

func TestLoginMissingFieldsRejectedBeforeStorage(t *testing.T) {
	h, users, _ := newTestAuthHandler(t)
	e := echo.New()

	for _, body := range []string{`{}`, `{"username":"dana"}`, `{"password":"x"}`} {
		c, rec := postJSON(e, "/api/login", body)
		if err := h.Login(c); err != nil {
			t.Fatalf("Login: %v", err)
		}
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("body %s: status = %d, want 400", body, rec.Code)
		}
	}
	if users.calls != 0 {
		t.Fatalf("user store touched %d times for invalid input", users.calls)
	}
}

func TestLogoutDestroysSessionAndIsIdempotent(t *testing.T) {
	h, _, store := newTestAuthHandler(t)
	e := echo.New()

	token, err := store.Create(context.Background(), session.Identity{UserID: 3, Username: "dana"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	c, rec := postJSON(e, "/api/logout", "")
	c.Request().AddCookie(&http.Cookie{Name: session.CookieName, Value: session.Sign("test-secret", token)})
	if err := h.Logout(c); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if _, err := store.Lookup(context.Background(), token); !errors.Is(err, session.ErrNoSession) {
		t.Fatalf("session still live after logout: %v", err)
	}

	// no cookie at all still succeeds
	c2, rec2 := postJSON(e, "/api/logout", "")
	if err := h.Logout(c2); err != nil {
		t.Fatalf("Logout without session: %v", err)
	}
	if rec2.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec2.Code)
	}
}

type failingStore struct{ session.Store }

func (failingStore) Destroy(context.Context, string) error { return errors.New("store unavailable") }

func TestLogoutReportsStoreFailure(t *testing.T) {
	h, _, store := newTestAuthHandler(t)
	token, _ := store.Create(context.Background(), session.Identity{UserID: 3, Username: "dana"})
	h.Sessions = failingStore{store}

	e := echo.New()
	c, rec := postJSON(e, "/api/logout", "")
	c.Request().AddCookie(&http.Cookie{Name: session.CookieName, Value: session.Sign("test-secret", token)})
	if err := h.Logout(c); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
}

package handlers

import (
	"github.com/teklifhq/offerd/internal/services"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRegisterSetsSessionCookie(t *testing.T) {
	db := setupTestDB(t)
	h := NewAuthHandler(services.NewUserService(db))

	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(`{"email":"ayse@test.local","password":"s3cret","name":"Ayse"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.Register(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d body=%s", w.Code, w.Body.String())
	}
	cookies := w.Result().Cookies()
	var found bool
	for _, c := range cookies {
		if c.Name == "session" && c.Value != "" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected a session cookie")
	}
}

func TestRegisterDuplicateEmailConflict(t *testing.T) {
	db := setupTestDB(t)
	h := NewAuthHandler(services.NewUserService(db))

	body := `{"email":"ayse@test.local","password":"s3cret"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	h.Register(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("first register: expected 201 got %d", w.Code)
	}

	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	h.Register(w2, req2)
	if w2.Code != http.StatusConflict {
		t.Fatalf("expected 409 got %d", w2.Code)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	db := setupTestDB(t)
	h := NewAuthHandler(services.NewUserService(db))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(`{"email":"ayse@test.local","password":"s3cret"}`))
	h.Register(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("register: expected 201 got %d", w.Code)
	}

	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"ayse@test.local","password":"wrong"}`))
	h.Login(w2, req2)
	if w2.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", w2.Code)
	}
}

func TestLogoutClearsCookie(t *testing.T) {
	db := setupTestDB(t)
	h := NewAuthHandler(services.NewUserService(db))

	w := httptest.NewRecorder()
	h.Logout(w, httptest.NewRequest(http.MethodPost, "/auth/logout", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
	var cleared bool
	for _, c := range w.Result().Cookies() {
		if c.Name == "session" && c.Value == "" {
			cleared = true
		}
	}
	if !cleared {
		t.Fatal("expected session cookie to be cleared")
	}
}

package handlers

import (
	"github.com/teklifhq/offerd/internal/auth"
	"github.com/teklifhq/offerd/internal/httpx"
	"github.com/teklifhq/offerd/internal/services"
	"github.com/teklifhq/offerd/internal/validation"
	"encoding/json"
	"errors"
	"net/http"
)

type AuthHandler struct{ Svc *services.UserService }

func NewAuthHandler(svc *services.UserService) *AuthHandler { return &AuthHandler{Svc: svc} }

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var in credentials
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid_json")
		return
	}
	v := validation.Violations{}
	validation.Required("email", in.Email, v)
	validation.MaxLen("email", in.Email, 100, v)
	validation.Required("password", in.Password, v)
	validation.MaxLen("name", in.Name, 200, v)
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	user, err := h.Svc.Register(in.Email, in.Password, in.Name)
	if errors.Is(err, services.ErrEmailTaken) {
		httpx.Error(w, http.StatusConflict, "email_already_registered")
		return
	}
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "register_failed")
		return
	}
	auth.CreateSession(w, user.ID)
	httpx.JSON(w, http.StatusCreated, user)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var in credentials
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid_json")
		return
	}
	user, err := h.Svc.Authenticate(in.Email, in.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		httpx.Error(w, http.StatusUnauthorized, "invalid_credentials")
		return
	}
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "login_failed")
		return
	}
	auth.CreateSession(w, user.ID)
	httpx.JSON(w, http.StatusOK, user)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, _ *http.Request) {
	auth.ClearSession(w)
	httpx.JSON(w, http.StatusOK, map[string]string{"status": "logged_out"})
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	uid, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		httpx.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	user, err := h.Svc.GetByID(uid)
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed_to_load_user")
		return
	}
	if user == nil {
		httpx.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	httpx.JSON(w, http.StatusOK, user)
}

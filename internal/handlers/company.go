package handlers

import (
	"github.com/teklifhq/offerd/internal/auth"
	"github.com/teklifhq/offerd/internal/httpx"
	"github.com/teklifhq/offerd/internal/services"
	"github.com/teklifhq/offerd/internal/validation"
	"encoding/json"
	"net/http"
)

// CompanyHandler manages the caller's own tenant: there is no cross-company
// lookup surface at all.
type CompanyHandler struct{ Svc *services.CompanyService }

func NewCompanyHandler(svc *services.CompanyService) *CompanyHandler {
	return &CompanyHandler{Svc: svc}
}

func (h *CompanyHandler) Get(w http.ResponseWriter, r *http.Request) {
	cid, ok := companyID(w, r)
	if !ok {
		return
	}
	view, err := h.Svc.GetByID(cid)
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed_to_load_company")
		return
	}
	if view == nil {
		httpx.Error(w, http.StatusNotFound, "not_found")
		return
	}
	httpx.JSON(w, http.StatusOK, view)
}

// Create registers a company for a user that does not belong to one yet.
func (h *CompanyHandler) Create(w http.ResponseWriter, r *http.Request) {
	uid, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		httpx.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	if _, has := auth.CompanyIDFromContext(r.Context()); has {
		httpx.Error(w, http.StatusConflict, "company_already_configured")
		return
	}
	var in services.CompanyInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if v := validateCompany(in); !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	view, err := h.Svc.Create(in, uid)
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "company_create_failed")
		return
	}
	httpx.JSON(w, http.StatusCreated, view)
}

func (h *CompanyHandler) Update(w http.ResponseWriter, r *http.Request) {
	cid, ok := companyID(w, r)
	if !ok {
		return
	}
	var in services.CompanyInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if v := validateCompany(in); !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	view, err := h.Svc.Update(cid, in)
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "company_update_failed")
		return
	}
	if view == nil {
		httpx.Error(w, http.StatusNotFound, "not_found")
		return
	}
	httpx.JSON(w, http.StatusOK, view)
}

// Delete removes the caller's company with its full cascade; the session
// user survives, detached.
func (h *CompanyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	cid, ok := companyID(w, r)
	if !ok {
		return
	}
	deleted, err := h.Svc.Delete(cid)
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "delete_failed")
		return
	}
	if !deleted {
		httpx.Error(w, http.StatusNotFound, "not_found")
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"deleted": cid})
}

func validateCompany(in services.CompanyInput) validation.Violations {
	v := validation.Violations{}
	validation.Required("name", in.Name, v)
	validation.MaxLen("name", in.Name, 200, v)
	validation.Required("address", in.Address, v)
	validation.MaxLen("address", in.Address, 500, v)
	validation.Required("phone", in.Phone, v)
	validation.MaxLen("phone", in.Phone, 20, v)
	validation.Required("email", in.Email, v)
	validation.MaxLen("email", in.Email, 100, v)
	validation.MaxLen("tax_number", in.TaxNumber, 50, v)
	validation.MaxLen("iban", in.IBAN, 50, v)
	validation.MaxLen("website", in.Website, 200, v)
	validation.MaxLen("logo", in.Logo, 500, v)
	return v
}

package handlers

import (
	"github.com/teklifhq/offerd/internal/httpx"
	"github.com/teklifhq/offerd/internal/services"
	"github.com/teklifhq/offerd/internal/validation"
	"encoding/json"
	"net/http"
)

type CustomerHandler struct{ Svc *services.CustomerService }

func NewCustomerHandler(svc *services.CustomerService) *CustomerHandler {
	return &CustomerHandler{Svc: svc}
}

func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	cid, ok := companyID(w, r)
	if !ok {
		return
	}
	items, err := h.Svc.List(cid)
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed_to_list_customers")
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"items": items, "total": len(items)})
}

func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	cid, ok := companyID(w, r)
	if !ok {
		return
	}
	id, ok := idParam(r)
	if !ok {
		httpx.Error(w, http.StatusBadRequest, "invalid_id")
		return
	}
	view, err := h.Svc.GetByID(id, cid)
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed_to_load_customer")
		return
	}
	if view == nil {
		httpx.Error(w, http.StatusNotFound, "not_found")
		return
	}
	httpx.JSON(w, http.StatusOK, view)
}

func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	cid, ok := companyID(w, r)
	if !ok {
		return
	}
	var in services.CustomerInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if v := validateCustomer(in); !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	view, err := h.Svc.Create(in, cid)
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "customer_create_failed")
		return
	}
	httpx.JSON(w, http.StatusCreated, view)
}

func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	cid, ok := companyID(w, r)
	if !ok {
		return
	}
	id, ok := idParam(r)
	if !ok {
		httpx.Error(w, http.StatusBadRequest, "invalid_id")
		return
	}
	var in services.CustomerInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if v := validateCustomer(in); !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	view, err := h.Svc.Update(id, in, cid)
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "customer_update_failed")
		return
	}
	if view == nil {
		httpx.Error(w, http.StatusNotFound, "not_found")
		return
	}
	httpx.JSON(w, http.StatusOK, view)
}

func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	cid, ok := companyID(w, r)
	if !ok {
		return
	}
	id, ok := idParam(r)
	if !ok {
		httpx.Error(w, http.StatusBadRequest, "invalid_id")
		return
	}
	deleted, err := h.Svc.Delete(id, cid)
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "delete_failed")
		return
	}
	if !deleted {
		httpx.Error(w, http.StatusNotFound, "not_found")
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"deleted": id})
}

func validateCustomer(in services.CustomerInput) validation.Violations {
	v := validation.Violations{}
	validation.Required("name", in.Name, v)
	validation.Required("email", in.Email, v)
	validation.MaxLen("name", in.Name, 200, v)
	validation.MaxLen("email", in.Email, 100, v)
	validation.MaxLen("phone", in.Phone, 20, v)
	validation.MaxLen("address", in.Address, 500, v)
	return v
}

package handlers

import (
	"github.com/teklifhq/offerd/internal/httpx"
	"github.com/teklifhq/offerd/internal/services"
	"github.com/teklifhq/offerd/internal/validation"
	"encoding/json"
	"net/http"
)

type ProductHandler struct{ Svc *services.ProductService }

func NewProductHandler(svc *services.ProductService) *ProductHandler {
	return &ProductHandler{Svc: svc}
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	cid, ok := companyID(w, r)
	if !ok {
		return
	}
	items, err := h.Svc.List(cid)
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed_to_list_products")
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"items": items, "total": len(items)})
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
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
		httpx.Error(w, http.StatusInternalServerError, "failed_to_load_product")
		return
	}
	if view == nil {
		httpx.Error(w, http.StatusNotFound, "not_found")
		return
	}
	httpx.JSON(w, http.StatusOK, view)
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	cid, ok := companyID(w, r)
	if !ok {
		return
	}
	var in services.ProductInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if v := validateProduct(in); !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	view, err := h.Svc.Create(in, cid)
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "product_create_failed")
		return
	}
	httpx.JSON(w, http.StatusCreated, view)
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	cid, ok := companyID(w, r)
	if !ok {
		return
	}
	id, ok := idParam(r)
	if !ok {
		httpx.Error(w, http.StatusBadRequest, "invalid_id")
		return
	}
	var in services.ProductInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if v := validateProduct(in); !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	view, err := h.Svc.Update(id, in, cid)
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "product_update_failed")
		return
	}
	if view == nil {
		httpx.Error(w, http.StatusNotFound, "not_found")
		return
	}
	httpx.JSON(w, http.StatusOK, view)
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

func validateProduct(in services.ProductInput) validation.Violations {
	v := validation.Violations{}
	validation.Required("name", in.Name, v)
	validation.MaxLen("name", in.Name, 200, v)
	validation.MaxLen("description", in.Description, 1000, v)
	validation.MaxLen("category", in.Category, 100, v)
	validation.NonNegativeDecimal("price", in.Price, v)
	return v
}

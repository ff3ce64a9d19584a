package handlers

import (
	"github.com/teklifhq/offerd/internal/httpx"
	"github.com/teklifhq/offerd/internal/services"
	"github.com/teklifhq/offerd/internal/validation"
	"encoding/json"
	"net/http"
)

type PaymentHandler struct{ Svc *services.PaymentService }

func NewPaymentHandler(svc *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{Svc: svc}
}

func (h *PaymentHandler) List(w http.ResponseWriter, r *http.Request) {
	cid, ok := companyID(w, r)
	if !ok {
		return
	}
	items, err := h.Svc.List(cid)
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed_to_list_payments")
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"items": items, "total": len(items)})
}

func (h *PaymentHandler) Get(w http.ResponseWriter, r *http.Request) {
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
		httpx.Error(w, http.StatusInternalServerError, "failed_to_load_payment")
		return
	}
	if view == nil {
		httpx.Error(w, http.StatusNotFound, "not_found")
		return
	}
	httpx.JSON(w, http.StatusOK, view)
}

func (h *PaymentHandler) Create(w http.ResponseWriter, r *http.Request) {
	cid, ok := companyID(w, r)
	if !ok {
		return
	}
	var in services.PaymentInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid_json")
		return
	}
	v := validation.Violations{}
	validation.PositiveDecimal("amount", in.Amount, v)
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	view, err := h.Svc.Create(in, cid)
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "payment_create_failed")
		return
	}
	httpx.JSON(w, http.StatusCreated, view)
}

func (h *PaymentHandler) Update(w http.ResponseWriter, r *http.Request) {
	cid, ok := companyID(w, r)
	if !ok {
		return
	}
	id, ok := idParam(r)
	if !ok {
		httpx.Error(w, http.StatusBadRequest, "invalid_id")
		return
	}
	var in services.PaymentInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid_json")
		return
	}
	v := validation.Violations{}
	validation.PositiveDecimal("amount", in.Amount, v)
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	view, err := h.Svc.Update(id, in, cid)
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "payment_update_failed")
		return
	}
	if view == nil {
		httpx.Error(w, http.StatusNotFound, "not_found")
		return
	}
	httpx.JSON(w, http.StatusOK, view)
}

func (h *PaymentHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

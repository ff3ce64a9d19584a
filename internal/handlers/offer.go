package handlers

import (
	"github.com/teklifhq/offerd/internal/auth"
	"github.com/teklifhq/offerd/internal/httpx"
	"github.com/teklifhq/offerd/internal/mail"
	"github.com/teklifhq/offerd/internal/services"
	"github.com/teklifhq/offerd/internal/validation"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
)

type OfferHandler struct{ Svc *services.OfferService }

func NewOfferHandler(svc *services.OfferService) *OfferHandler { return &OfferHandler{Svc: svc} }

func (h *OfferHandler) List(w http.ResponseWriter, r *http.Request) {
	cid, ok := companyID(w, r)
	if !ok {
		return
	}
	items, err := h.Svc.List(cid)
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed_to_list_offers")
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"items": items, "total": len(items)})
}

func (h *OfferHandler) Get(w http.ResponseWriter, r *http.Request) {
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
		httpx.Error(w, http.StatusInternalServerError, "failed_to_load_offer")
		return
	}
	if view == nil {
		httpx.Error(w, http.StatusNotFound, "not_found")
		return
	}
	httpx.JSON(w, http.StatusOK, view)
}

func (h *OfferHandler) Create(w http.ResponseWriter, r *http.Request) {
	cid, ok := companyID(w, r)
	if !ok {
		return
	}
	uid, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		httpx.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var in services.OfferInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if v := validateOffer(in); !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	view, err := h.Svc.Create(in, cid, uid)
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "offer_create_failed")
		return
	}
	httpx.JSON(w, http.StatusCreated, view)
}

func (h *OfferHandler) Update(w http.ResponseWriter, r *http.Request) {
	cid, ok := companyID(w, r)
	if !ok {
		return
	}
	id, ok := idParam(r)
	if !ok {
		httpx.Error(w, http.StatusBadRequest, "invalid_id")
		return
	}
	var in services.OfferInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if v := validateOffer(in); !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	view, err := h.Svc.Update(id, in, cid)
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "offer_update_failed")
		return
	}
	if view == nil {
		httpx.Error(w, http.StatusNotFound, "not_found")
		return
	}
	httpx.JSON(w, http.StatusOK, view)
}

func (h *OfferHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

// Send emails the rendered offer (HTML body + PDF attachment) to the
// customer address on the offer snapshot.
func (h *OfferHandler) Send(w http.ResponseWriter, r *http.Request) {
	cid, ok := companyID(w, r)
	if !ok {
		return
	}
	id, ok := idParam(r)
	if !ok {
		httpx.Error(w, http.StatusBadRequest, "invalid_id")
		return
	}
	err := h.Svc.Send(id, cid)
	if err == nil {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "sent"})
		return
	}
	if errors.Is(err, services.ErrOfferNotFound) {
		httpx.Error(w, http.StatusNotFound, "not_found")
		return
	}
	var sendErr *mail.SendError
	if errors.As(err, &sendErr) {
		httpx.JSONError(w, http.StatusBadGateway, "delivery_failed", map[string]string{"reason": string(sendErr.Reason)})
		return
	}
	httpx.Error(w, http.StatusInternalServerError, "send_failed")
}

func validateOffer(in services.OfferInput) validation.Violations {
	v := validation.Violations{}
	validation.Required("offer_number", in.OfferNumber, v)
	validation.MaxLen("offer_number", in.OfferNumber, 50, v)
	validation.Required("customer_name", in.CustomerName, v)
	validation.MaxLen("customer_name", in.CustomerName, 200, v)
	validation.Required("customer_email", in.CustomerEmail, v)
	validation.MaxLen("customer_email", in.CustomerEmail, 100, v)
	validation.MaxLen("customer_phone", in.CustomerPhone, 20, v)
	validation.Required("customer_address", in.CustomerAddress, v)
	validation.MaxLen("customer_address", in.CustomerAddress, 500, v)
	validation.MaxLen("notes", in.Notes, 2000, v)
	for i, it := range in.Items {
		prefix := "items[" + strconv.Itoa(i) + "]."
		validation.Required(prefix+"description", it.Description, v)
		validation.MaxLen(prefix+"description", it.Description, 500, v)
		validation.PositiveInt(prefix+"quantity", it.Quantity, v)
		validation.NonNegativeDecimal(prefix+"unit_price", it.UnitPrice, v)
	}
	return v
}

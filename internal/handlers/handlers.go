package handlers

import (
	"github.com/teklifhq/offerd/internal/auth"
	"github.com/teklifhq/offerd/internal/httpx"
	"net/http"
	"strconv"
)

// idParam reads the target row id from the ?id= query parameter or a
// form field.
func idParam(r *http.Request) (uint, bool) {
	idStr := r.URL.Query().Get("id")
	if idStr == "" {
		idStr = r.FormValue("id")
	}
	n, err := strconv.Atoi(idStr)
	if err != nil || n <= 0 {
		return 0, false
	}
	return uint(n), true
}

// companyID pulls the tenant id from the authenticated context; every scoped
// handler goes through here so no operation can run without a tenant.
func companyID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	cid, ok := auth.CompanyIDFromContext(r.Context())
	if !ok {
		httpx.Error(w, http.StatusBadRequest, "company_not_configured")
	}
	return cid, ok
}

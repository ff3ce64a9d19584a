package server

import (
	"github.com/teklifhq/offerd/internal/auth"
	"github.com/teklifhq/offerd/internal/handlers"
	"github.com/teklifhq/offerd/internal/httpx"
	"github.com/teklifhq/offerd/internal/mail"
	"github.com/teklifhq/offerd/internal/models"
	"github.com/teklifhq/offerd/internal/services"
	"context"
	"log"
	"net/http"
	"time"

	"gorm.io/gorm"
)

// New constructs the root http.Handler with all routes and middlewares applied.
func New(db *gorm.DB, mailer mail.Sender) http.Handler {
	mux := http.NewServeMux()

	// Resolve session user -> tenant so scoped handlers can read the company
	// id straight from context. Also lets RequireAuth reject stale sessions.
	auth.SetResolver(func(_ context.Context, uid uint) (uint, bool) {
		var u models.User
		if err := db.Select("id", "company_id").First(&u, uid).Error; err != nil {
			return 0, false
		}
		if u.CompanyID == nil {
			return 0, true
		}
		return *u.CompanyID, true
	})

	// --- Health endpoints ---
	//revive:disable:unused-parameter simple handlers intentionally ignore *http.Request
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Exec("SELECT 1").Error; err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			if _, werr := w.Write([]byte(`{"status":"degraded"}`)); werr != nil {
				_ = werr
			}
			return
		}
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	//revive:enable:unused-parameter

	// Auth endpoints
	ah := handlers.NewAuthHandler(services.NewUserService(db))
	mux.HandleFunc("/auth/register", ah.Register)
	mux.HandleFunc("/auth/login", ah.Login)
	mux.HandleFunc("/auth/logout", ah.Logout)
	mux.Handle("/auth/me", protect(ah.Me))

	// Company endpoint: the caller's own tenant only.
	ch := handlers.NewCompanyHandler(services.NewCompanyService(db))
	mux.Handle("/company", protect(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			ch.Get(w, r)
		case http.MethodPost:
			ch.Create(w, r)
		case http.MethodPut:
			ch.Update(w, r)
		case http.MethodDelete:
			ch.Delete(w, r)
		default:
			w.Header().Set("Allow", "GET,POST,PUT,DELETE")
			httpx.Error(w, http.StatusMethodNotAllowed, "method_not_allowed")
		}
	}))

	// Tenant-scoped CRUD. List/Create on the collection path, the rest on
	// explicit action paths carrying ?id=.
	ph := handlers.NewProductHandler(services.NewProductService(db))
	mountCRUD(mux, "/products", crud{
		List: ph.List, Create: ph.Create, Get: ph.Get, Update: ph.Update, Delete: ph.Delete,
	})

	cuh := handlers.NewCustomerHandler(services.NewCustomerService(db))
	mountCRUD(mux, "/customers", crud{
		List: cuh.List, Create: cuh.Create, Get: cuh.Get, Update: cuh.Update, Delete: cuh.Delete,
	})

	pyh := handlers.NewPaymentHandler(services.NewPaymentService(db))
	mountCRUD(mux, "/payments", crud{
		List: pyh.List, Create: pyh.Create, Get: pyh.Get, Update: pyh.Update, Delete: pyh.Delete,
	})

	oh := handlers.NewOfferHandler(services.NewOfferService(db, mailer))
	mountCRUD(mux, "/offers", crud{
		List: oh.List, Create: oh.Create, Get: oh.Get, Update: oh.Update, Delete: oh.Delete,
	})
	mux.Handle("/offers/send", protect(oh.Send))

	return withRecover(withLogging(mux))
}

type crud struct {
	List, Create, Get, Update, Delete http.HandlerFunc
}

func mountCRUD(mux *http.ServeMux, base string, h crud) {
	mux.Handle(base, protect(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			h.List(w, r)
		case http.MethodPost:
			h.Create(w, r)
		default:
			w.Header().Set("Allow", "GET,POST")
			httpx.Error(w, http.StatusMethodNotAllowed, "method_not_allowed")
		}
	}))
	mux.Handle(base+"/get", protect(h.Get))
	mux.Handle(base+"/update", protect(h.Update))
	mux.Handle(base+"/delete", protect(h.Delete))
}

func protect(h http.HandlerFunc) http.Handler {
	return auth.Middleware(auth.RequireAuth(h))
}

func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}

func withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("panic recovered: %v", rec)
				httpx.Error(w, http.StatusInternalServerError, "internal_error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}

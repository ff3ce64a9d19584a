// Package auth is the authentication-capability seam: HMAC-signed session
// cookies carrying the user id, context accessors, and middleware. The rest
// of the system only ever consumes the ids this package puts in the context.
package auth

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

type ctxKey string

const (
	sessionCookieName = "session"
	userIDCtxKey      = ctxKey("userID")
	companyIDCtxKey   = ctxKey("companyID")
)

// Resolver maps an authenticated user id to its company id (or false when
// the session user no longer exists). Set during app bootstrap.
type Resolver func(ctx context.Context, uid uint) (companyID uint, ok bool)

var resolver Resolver

func SetResolver(r Resolver) { resolver = r }

// Secret returns SESSION_SECRET or a default dev value.
func Secret() string {
	if s := os.Getenv("SESSION_SECRET"); s != "" {
		return s
	}
	return "devsessionsecret"
}

// CreateSession sets a signed cookie with the user id.
func CreateSession(w http.ResponseWriter, userID uint) {
	uidStr := strconv.FormatUint(uint64(userID), 10)
	mac := hmac.New(sha256.New, []byte(Secret()))
	mac.Write([]byte(uidStr))
	sig := base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    uidStr + "." + sig,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(14 * 24 * time.Hour),
	})
}

// ClearSession deletes the session cookie.
func ClearSession(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{Name: sessionCookieName, Value: "", Path: "/", Expires: time.Unix(0, 0), HttpOnly: true, SameSite: http.SameSiteLaxMode})
}

// ParseSession validates the cookie signature and returns the user id.
func ParseSession(r *http.Request) (uint, bool) {
	c, err := r.Cookie(sessionCookieName)
	if err != nil || c.Value == "" {
		return 0, false
	}
	parts := strings.Split(c.Value, ".")
	if len(parts) != 2 {
		return 0, false
	}
	uidStr, sig := parts[0], parts[1]
	mac := hmac.New(sha256.New, []byte(Secret()))
	mac.Write([]byte(uidStr))
	expected := base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(sig), []byte(expected)) {
		return 0, false
	}
	id64, err := strconv.ParseUint(uidStr, 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id64), true
}

// WithUserID stores the user id in context.
func WithUserID(ctx context.Context, userID uint) context.Context {
	return context.WithValue(ctx, userIDCtxKey, userID)
}

// UserIDFromContext extracts the user id.
func UserIDFromContext(ctx context.Context) (uint, bool) {
	id, ok := ctx.Value(userIDCtxKey).(uint)
	return id, ok
}

// WithCompanyID stores the tenant id in context.
func WithCompanyID(ctx context.Context, companyID uint) context.Context {
	return context.WithValue(ctx, companyIDCtxKey, companyID)
}

// CompanyIDFromContext extracts the tenant id every scoped handler filters by.
func CompanyIDFromContext(ctx context.Context) (uint, bool) {
	id, ok := ctx.Value(companyIDCtxKey).(uint)
	return id, ok
}

// Middleware attaches user and company ids to the request context when a
// valid session cookie is present.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if uid, ok := ParseSession(r); ok {
			ctx := WithUserID(r.Context(), uid)
			if resolver != nil {
				if cid, ok := resolver(ctx, uid); ok && cid != 0 {
					ctx = WithCompanyID(ctx, cid)
				}
			}
			r = r.WithContext(ctx)
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAuth returns 401 when no authenticated user is in context, or when
// the session refers to a user that no longer exists.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uid, ok := UserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			fmt.Fprint(w, `{"error":"unauthorized"}`)
			return
		}
		if resolver != nil {
			if _, exists := resolver(r.Context(), uid); !exists {
				ClearSession(w)
				w.WriteHeader(http.StatusUnauthorized)
				fmt.Fprint(w, `{"error":"unauthorized"}`)
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

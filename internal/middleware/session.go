package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/crucial707/postboard/internal/flash"
	"github.com/crucial707/postboard/internal/models"
	chimw "github.com/go-chi/chi/v5/middleware"
)

type key string

const userKey key = "user"

// LoginRequiredMessage is flashed when an anonymous request hits a guarded page.
const LoginRequiredMessage = "Please log in to access this page."

// Resolver maps a request to the user behind its session, or nil.
type Resolver interface {
	Resolve(r *http.Request) (*models.User, error)
}

// WithUser stores the resolved identity in ctx.
func WithUser(ctx context.Context, u *models.User) context.Context {
	return context.WithValue(ctx, userKey, u)
}

// CurrentUser returns the authenticated user of the request, if any.
func CurrentUser(ctx context.Context) (*models.User, bool) {
	u, ok := ctx.Value(userKey).(*models.User)
	return u, ok && u != nil
}

// LoadUser resolves the session once per request. Handlers downstream read the
// possibly-absent identity with CurrentUser. A store failure is logged and the
// request continues as anonymous.
func LoadUser(res Resolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u, err := res.Resolve(r)
			if err != nil {
				slog.Error("session lookup failed",
					"request_id", chimw.GetReqID(r.Context()),
					"error", err)
			}
			if u != nil {
				r = r.WithContext(WithUser(r.Context(), u))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireUser redirects anonymous requests to /login?next=<path> with an info
// notice.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := CurrentUser(r.Context()); !ok {
			target := r.URL.Path
			if r.URL.RawQuery != "" {
				target += "?" + r.URL.RawQuery
			}
			flash.Set(w, flash.Message{Category: flash.Info, Text: LoginRequiredMessage})
			http.Redirect(w, r, "/login?next="+url.QueryEscape(target), http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// AnonymousOnly sends authenticated users home instead of showing signup or login.
func AnonymousOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := CurrentUser(r.Context()); ok {
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

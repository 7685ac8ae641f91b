package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	chimw "github.com/go-chi/chi/v5/middleware"
)

const panicPage = `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>Server Error · Postboard</title></head>` +
	`<body><h1>Something went wrong</h1><p>Please try again later.</p><p><a href="/">Home</a></p></body></html>`

// Recoverer recovers from panics, logs the stack with request ID, and answers
// with a plain 500 page so the process keeps serving.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				stack := debug.Stack()
				reqID := chimw.GetReqID(r.Context())
				slog.Error("panic recovered",
					"request_id", reqID,
					"method", r.Method,
					"path", r.URL.Path,
					"panic", rec,
					"stack", string(stack))
				w.Header().Set("Content-Type", "text/html; charset=utf-8")
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(panicPage))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

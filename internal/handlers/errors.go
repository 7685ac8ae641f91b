package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// errNoUser means a guarded handler ran without an identity, i.e. the route
// was registered outside middleware.RequireUser.
var errNoUser = errors.New("handler requires an authenticated user")

// ErrMessageInternal is the generic message for 500 responses. Do not expose internal details to clients.
const ErrMessageInternal = "Something went wrong on our side. Please try again later."

// NotFound renders the 404 page.
func (b *Base) NotFound(w http.ResponseWriter, r *http.Request) {
	data := b.page(w, r, "Not Found")
	data["Status"] = http.StatusNotFound
	data["Heading"] = "Page not found"
	data["Message"] = "The page you are looking for does not exist."
	b.View.HTML(w, http.StatusNotFound, "error.html", data)
}

// badRequest answers a request whose body could not be parsed.
func (b *Base) badRequest(w http.ResponseWriter, r *http.Request) {
	data := b.page(w, r, "Bad Request")
	data["Status"] = http.StatusBadRequest
	data["Heading"] = "Bad request"
	data["Message"] = "The submitted form could not be read."
	b.View.HTML(w, http.StatusBadRequest, "error.html", data)
}

// serverError logs err with the request id and renders the generic 500 page.
func (b *Base) serverError(w http.ResponseWriter, r *http.Request, err error) {
	slog.Error("request failed",
		"request_id", chimw.GetReqID(r.Context()),
		"method", r.Method,
		"path", r.URL.Path,
		"error", err)
	data := b.page(w, r, "Server Error")
	data["Status"] = http.StatusInternalServerError
	data["Heading"] = "Server error"
	data["Message"] = ErrMessageInternal
	b.View.HTML(w, http.StatusInternalServerError, "error.html", data)
}

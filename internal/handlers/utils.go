package handlers

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/crucial707/postboard/internal/flash"
	"github.com/crucial707/postboard/internal/middleware"
	"github.com/crucial707/postboard/internal/render"
)

// Base holds what every page handler needs.
type Base struct {
	View *render.Renderer
}

// page starts the view model shared by every page: title, the possibly-absent
// current user and any pending flash messages.
func (b *Base) page(w http.ResponseWriter, r *http.Request, title string) render.Data {
	data := render.Data{
		"Title":   title,
		"Flashes": flash.Pop(w, r),
	}
	if u, ok := middleware.CurrentUser(r.Context()); ok {
		data["CurrentUser"] = u
	}
	return data
}

// addFlash appends an in-page notice to data.
func addFlash(data render.Data, category, text string) {
	msgs, _ := data["Flashes"].([]flash.Message)
	data["Flashes"] = append(msgs, flash.Message{Category: category, Text: text})
}

// safeNext returns next when it is a local absolute path, otherwise "/".
func safeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, `/\`) {
		return "/"
	}
	u, err := url.Parse(next)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return "/"
	}
	return next
}

// parseID reads a positive integer path parameter.
func parseID(s string) (int, bool) {
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/crucial707/postboard/internal/flash"
	"github.com/crucial707/postboard/internal/forms"
	"github.com/crucial707/postboard/internal/metrics"
	"github.com/crucial707/postboard/internal/middleware"
	"github.com/crucial707/postboard/internal/models"
	"github.com/crucial707/postboard/internal/postdate"
	"github.com/crucial707/postboard/internal/repo"
	"github.com/go-chi/chi/v5"
)

// PostStore is what the post pages need from the post repository.
type PostStore interface {
	Create(ctx context.Context, userID int, title, content string, createdAt time.Time, datePosted string) (models.Post, error)
	GetByID(ctx context.Context, id int) (models.Post, error)
	List(ctx context.Context) ([]models.Post, error)
}

// ==========================
// PostHandler
// ==========================
type PostHandler struct {
	Base
	Posts PostStore
	Dates postdate.Formatter

	// Now defaults to time.Now.
	Now func() time.Time
}

func (h *PostHandler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

// ==========================
// List Posts (home)
// ==========================
func (h *PostHandler) Index(w http.ResponseWriter, r *http.Request) {
	posts, err := h.Posts.List(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	data := h.page(w, r, "Home")
	data["Posts"] = posts
	h.View.HTML(w, http.StatusOK, "index.html", data)
}

// ==========================
// Create Post
// ==========================
func (h *PostHandler) NewPostForm(w http.ResponseWriter, r *http.Request) {
	data := h.page(w, r, "New Post")
	data["Form"] = forms.PostForm{}
	h.View.HTML(w, http.StatusOK, "create_post.html", data)
}

func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.CurrentUser(r.Context())
	if !ok {
		h.serverError(w, r, errNoUser)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.badRequest(w, r)
		return
	}
	form := forms.NewPostForm(r)

	var verr *forms.ValidationError
	if err := form.Validate(); errors.As(err, &verr) {
		data := h.page(w, r, "New Post")
		data["Form"] = form
		data["Errors"] = verr.Messages()
		h.View.HTML(w, http.StatusUnprocessableEntity, "create_post.html", data)
		return
	}

	createdAt := h.now()
	if _, err := h.Posts.Create(r.Context(), user.ID, form.Title, form.Content, createdAt, h.Dates.Format(createdAt)); err != nil {
		h.serverError(w, r, err)
		return
	}

	metrics.IncPostsCreated()
	flash.Set(w, flash.Message{Category: flash.Success, Text: "Your post has been created!"})
	http.Redirect(w, r, "/", http.StatusFound)
}

// ==========================
// View Post
// ==========================
// ViewPost renders the owner variant only when the requester is signed in and
// owns the post; anonymous requests always get the generic variant.
func (h *PostHandler) ViewPost(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(chi.URLParam(r, "id"))
	if !ok {
		h.NotFound(w, r)
		return
	}

	post, err := h.Posts.GetByID(r.Context(), id)
	if errors.Is(err, repo.ErrNotFound) {
		h.NotFound(w, r)
		return
	}
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	owner := false
	if user, ok := middleware.CurrentUser(r.Context()); ok {
		owner = user.ID == post.UserID
	}

	title := post.Title
	if owner {
		title = "Post"
	}
	data := h.page(w, r, title)
	data["Post"] = post
	data["Owner"] = owner
	h.View.HTML(w, http.StatusOK, "post.html", data)
}

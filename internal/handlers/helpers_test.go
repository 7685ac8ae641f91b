package handlers

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/crucial707/postboard/internal/auth"
	"github.com/crucial707/postboard/internal/middleware"
	"github.com/crucial707/postboard/internal/models"
	"github.com/crucial707/postboard/internal/postdate"
	"github.com/crucial707/postboard/internal/render"
	"github.com/crucial707/postboard/internal/repo"
	"github.com/go-chi/chi/v5"
	"golang.org/x/crypto/bcrypt"
)

var userCols = []string{"id", "username", "email", "image_file", "password_hash", "created_at"}

var postCols = []string{"id", "title", "content", "created_at", "date_posted", "user_id", "username"}

var testHasher = auth.Hasher{Cost: bcrypt.MinCost}

func newBase(t *testing.T) Base {
	t.Helper()
	view, err := render.New()
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}
	return Base{View: view}
}

func newAuthHandler(t *testing.T, db *sql.DB) *AuthHandler {
	t.Helper()
	users := repo.NewUserRepo(db)
	sessions := &auth.Sessions{Secret: []byte("test-secret"), TTL: time.Hour, RememberTTL: 24 * time.Hour}
	return &AuthHandler{
		Base:  newBase(t),
		Users: users,
		Auth:  auth.NewManager(users, sessions, testHasher),
	}
}

func newPostHandler(t *testing.T, db *sql.DB, now time.Time) *PostHandler {
	t.Helper()
	return &PostHandler{
		Base:  newBase(t),
		Posts: repo.NewPostRepo(db),
		Dates: postdate.New("latin", time.UTC),
		Now:   func() time.Time { return now },
	}
}

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}

// formRequest builds a urlencoded POST.
func formRequest(path string, values url.Values) *http.Request {
	req := httptest.NewRequest("POST", path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// asUser attaches an authenticated identity, as middleware.LoadUser would.
func asUser(req *http.Request, u *models.User) *http.Request {
	return req.WithContext(middleware.WithUser(req.Context(), u))
}

// requestWithChiURLParams returns a request with chi route context and URL params set.
func requestWithChiURLParams(method, path string, params map[string]string) *http.Request {
	r := httptest.NewRequest(method, path, nil)
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func cookieNamed(rr *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rr.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

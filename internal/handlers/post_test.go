package handlers

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/crucial707/postboard/internal/models"
)

var fixedNow = time.Date(2024, time.March, 1, 10, 30, 0, 0, time.UTC)

func TestPostHandler_Index(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery(`ORDER BY p.created_at DESC, p.id DESC`).
		WillReturnRows(sqlmock.NewRows(postCols).
			AddRow(2, "Second", "b", fixedNow, "Friday 01 March 2024", 1, "alice").
			AddRow(1, "First", "a", fixedNow, "Friday 01 March 2024", 1, "alice"))

	h := newPostHandler(t, db, fixedNow)
	rr := httptest.NewRecorder()
	h.Index(rr, httptest.NewRequest("GET", "/", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("Index status: got %d, want 200", rr.Code)
	}
	body := rr.Body.String()
	second, first := strings.Index(body, "Second"), strings.Index(body, "First")
	if second < 0 || first < 0 || second > first {
		t.Errorf("expected newest post first: %s", body)
	}
	if !strings.Contains(body, `href="/post/2"`) {
		t.Error("expected links to posts")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestPostHandler_Index_Empty(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery(`FROM posts p`).WillReturnRows(sqlmock.NewRows(postCols))

	h := newPostHandler(t, db, fixedNow)
	rr := httptest.NewRecorder()
	h.Index(rr, httptest.NewRequest("GET", "/", nil))

	if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), "No posts yet.") {
		t.Errorf("Index empty: got %d %s", rr.Code, rr.Body.String())
	}
}

func TestPostHandler_Index_StoreError(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery(`FROM posts p`).WillReturnError(sql.ErrConnDone)

	h := newPostHandler(t, db, fixedNow)
	rr := httptest.NewRecorder()
	h.Index(rr, httptest.NewRequest("GET", "/", nil))

	if rr.Code != http.StatusInternalServerError {
		t.Errorf("status: got %d, want 500", rr.Code)
	}
	if strings.Contains(rr.Body.String(), sql.ErrConnDone.Error()) {
		t.Error("internal error leaked to the page")
	}
}

func TestPostHandler_CreatePost(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery(`INSERT INTO posts`).
		WithArgs("Hello", "World", fixedNow, "Friday 01 March 2024", 7).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "content", "created_at", "date_posted", "user_id"}).
			AddRow(1, "Hello", "World", fixedNow, "Friday 01 March 2024", 7))

	h := newPostHandler(t, db, fixedNow)
	req := asUser(formRequest("/newpost", url.Values{"title": {"Hello"}, "content": {"World"}}), &models.User{ID: 7})
	rr := httptest.NewRecorder()
	h.CreatePost(rr, req)

	if rr.Code != http.StatusFound || rr.Header().Get("Location") != "/" {
		t.Fatalf("CreatePost: got %d → %q", rr.Code, rr.Header().Get("Location"))
	}
	if cookieNamed(rr, "postboard_flash") == nil {
		t.Error("expected a success flash")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestPostHandler_CreatePost_Invalid(t *testing.T) {
	db, mock := newMock(t)

	h := newPostHandler(t, db, fixedNow)
	req := asUser(formRequest("/newpost", url.Values{"title": {"   "}, "content": {"kept"}}), &models.User{ID: 7})
	rr := httptest.NewRecorder()
	h.CreatePost(rr, req)

	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status: got %d, want 422", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, `data-field="title">This field is required.`) {
		t.Errorf("expected title error: %s", body)
	}
	if !strings.Contains(body, ">kept</textarea>") {
		t.Error("content should be kept on re-render")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("no insert expected: %v", err)
	}
}

func TestPostHandler_CreatePost_WithoutIdentity(t *testing.T) {
	db, mock := newMock(t)

	h := newPostHandler(t, db, fixedNow)
	rr := httptest.NewRecorder()
	h.CreatePost(rr, formRequest("/newpost", url.Values{"title": {"Hello"}, "content": {"World"}}))

	if rr.Code != http.StatusInternalServerError {
		t.Errorf("CreatePost without identity: got %d, want 500", rr.Code)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("no insert expected: %v", err)
	}
}

func TestPostHandler_ViewPost(t *testing.T) {
	alice := &models.User{ID: 1, Username: "alice", Email: "a@x.com"}
	bob := &models.User{ID: 2, Username: "bob", Email: "b@x.com"}

	tests := []struct {
		name     string
		user     *models.User
		wantView string
		wantHead string
	}{
		{"owner", alice, `data-view="owner"`, "<title>Post · Postboard</title>"},
		{"other user", bob, `data-view="generic"`, "<title>Hello · Postboard</title>"},
		{"anonymous", nil, `data-view="generic"`, "<title>Hello · Postboard</title>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMock(t)
			mock.ExpectQuery(`WHERE p.id = \$1`).
				WithArgs(5).
				WillReturnRows(sqlmock.NewRows(postCols).
					AddRow(5, "Hello", "World", fixedNow, "Friday 01 March 2024", 1, "alice"))

			h := newPostHandler(t, db, fixedNow)
			req := requestWithChiURLParams("GET", "/post/5", map[string]string{"id": "5"})
			if tt.user != nil {
				req = asUser(req, tt.user)
			}
			rr := httptest.NewRecorder()
			h.ViewPost(rr, req)

			if rr.Code != http.StatusOK {
				t.Fatalf("ViewPost status: got %d, want 200", rr.Code)
			}
			body := rr.Body.String()
			if !strings.Contains(body, tt.wantView) {
				t.Errorf("expected %s in body: %s", tt.wantView, body)
			}
			if !strings.Contains(body, tt.wantHead) {
				t.Errorf("expected %s in body", tt.wantHead)
			}
			if !strings.Contains(body, "World") {
				t.Error("post content missing")
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("expectations: %v", err)
			}
		})
	}
}

func TestPostHandler_ViewPost_NotFound(t *testing.T) {
	t.Run("missing row", func(t *testing.T) {
		db, mock := newMock(t)
		mock.ExpectQuery(`WHERE p.id = \$1`).WithArgs(99).WillReturnError(sql.ErrNoRows)

		h := newPostHandler(t, db, fixedNow)
		rr := httptest.NewRecorder()
		h.ViewPost(rr, requestWithChiURLParams("GET", "/post/99", map[string]string{"id": "99"}))

		if rr.Code != http.StatusNotFound {
			t.Errorf("status: got %d, want 404", rr.Code)
		}
	})

	for _, id := range []string{"abc", "0", "-3"} {
		t.Run("bad id "+id, func(t *testing.T) {
			db, mock := newMock(t)

			h := newPostHandler(t, db, fixedNow)
			rr := httptest.NewRecorder()
			h.ViewPost(rr, requestWithChiURLParams("GET", "/post/"+id, map[string]string{"id": id}))

			if rr.Code != http.StatusNotFound {
				t.Errorf("status: got %d, want 404", rr.Code)
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("no query expected: %v", err)
			}
		})
	}
}

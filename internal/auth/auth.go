// Package auth implements credential checks and the cookie-backed session
// that remembers which user, if any, issued a request.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/crucial707/postboard/internal/models"
	"github.com/crucial707/postboard/internal/repo"
)

// ErrInvalidCredentials is returned for an unknown email and for a wrong
// password alike, so callers cannot tell which one failed.
var ErrInvalidCredentials = errors.New("invalid email or password")

// UserStore is the subset of the user repository the manager needs.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int) (*models.User, error)
}

type Credentials struct {
	Email    string
	Password string
	Remember bool
}

// Manager drives the Anonymous/Authenticated transitions.
type Manager struct {
	Users    UserStore
	Sessions *Sessions
	Hasher   Hasher

	dummyOnce sync.Once
	dummyHash string
}

func NewManager(users UserStore, sessions *Sessions, hasher Hasher) *Manager {
	return &Manager{Users: users, Sessions: sessions, Hasher: hasher}
}

// Authenticate checks credentials without touching the session.
func (m *Manager) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := m.Users.GetByEmail(ctx, email)
	if errors.Is(err, repo.ErrNotFound) {
		// Spend the same bcrypt work as a real comparison.
		_ = m.Hasher.Verify(password, m.dummy())
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if err := m.Hasher.Verify(password, user.PasswordHash); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// Login authenticates and, on success, issues the session cookie.
func (m *Manager) Login(ctx context.Context, w http.ResponseWriter, c Credentials) (*models.User, error) {
	user, err := m.Authenticate(ctx, c.Email, c.Password)
	if err != nil {
		return nil, err
	}
	if err := m.Sessions.Issue(w, user.ID, c.Remember); err != nil {
		return nil, err
	}
	return user, nil
}

// Logout returns the requester to Anonymous regardless of prior state.
func (m *Manager) Logout(w http.ResponseWriter) {
	m.Sessions.Clear(w)
}

// Resolve returns the user behind the request's session, or nil for an
// anonymous request. A session naming a missing user is anonymous. The error
// is non-nil only when the store failed.
func (m *Manager) Resolve(r *http.Request) (*models.User, error) {
	id, err := m.Sessions.UserID(r)
	if err != nil {
		return nil, nil
	}
	user, err := m.Users.GetByID(r.Context(), id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("resolve session user: %w", err)
	}
	return user, nil
}

func (m *Manager) dummy() string {
	m.dummyOnce.Do(func() {
		m.dummyHash, _ = m.Hasher.Hash("postboard-dummy-password")
	})
	return m.dummyHash
}

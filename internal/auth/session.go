package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// CookieName is the session cookie.
const CookieName = "postboard_session"

const issuer = "postboard"

type sessionClaims struct {
	Remember bool `json:"rem,omitempty"`
	jwt.RegisteredClaims
}

// Sessions stores the authenticated user id in a signed cookie.
type Sessions struct {
	Secret      []byte
	TTL         time.Duration // lifetime of a browser-session cookie
	RememberTTL time.Duration // lifetime of a "remember me" cookie
	Secure      bool

	// Now defaults to time.Now.
	Now func() time.Time
}

func (s *Sessions) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Issue sets the session cookie for userID. Without remember the cookie has
// no Max-Age and is dropped when the browser closes.
func (s *Sessions) Issue(w http.ResponseWriter, userID int, remember bool) error {
	now := s.now()
	ttl := s.TTL
	if remember {
		ttl = s.RememberTTL
	}

	claims := sessionClaims{
		Remember: remember,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.Itoa(userID),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.Secret)
	if err != nil {
		return fmt.Errorf("sign session: %w", err)
	}

	c := &http.Cookie{
		Name:     CookieName,
		Value:    signed,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	if remember {
		c.MaxAge = int(ttl.Seconds())
		c.Expires = now.Add(ttl)
	}
	http.SetCookie(w, c)
	return nil
}

// Clear expires the session cookie.
func (s *Sessions) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

var errNoSession = errors.New("no session")

// UserID returns the user id carried by a valid session cookie.
func (s *Sessions) UserID(r *http.Request) (int, error) {
	c, err := r.Cookie(CookieName)
	if err != nil || c.Value == "" {
		return 0, errNoSession
	}

	var claims sessionClaims
	_, err = jwt.ParseWithClaims(c.Value, &claims,
		func(*jwt.Token) (interface{}, error) { return s.Secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return 0, fmt.Errorf("parse session: %w", err)
	}

	id, err := strconv.Atoi(claims.Subject)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("bad session subject %q", claims.Subject)
	}
	return id, nil
}

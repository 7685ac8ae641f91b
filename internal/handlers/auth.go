package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/crucial707/postboard/internal/auth"
	"github.com/crucial707/postboard/internal/flash"
	"github.com/crucial707/postboard/internal/forms"
	"github.com/crucial707/postboard/internal/metrics"
	"github.com/crucial707/postboard/internal/middleware"
	"github.com/crucial707/postboard/internal/models"
	"github.com/crucial707/postboard/internal/repo"
)

const msgLoginFailed = "Login unsuccessful. Please check email and password."

// UserStore is what registration needs from the user repository.
type UserStore interface {
	forms.UserLookup
	Create(ctx context.Context, username, email, passwordHash string) (*models.User, error)
}

// ==========================
// Auth Handler
// ==========================
type AuthHandler struct {
	Base
	Users UserStore
	Auth  *auth.Manager
}

// ==========================
// Signup
// ==========================
func (h *AuthHandler) SignupForm(w http.ResponseWriter, r *http.Request) {
	data := h.page(w, r, "Sign Up")
	data["Form"] = forms.RegistrationForm{}
	h.View.HTML(w, http.StatusOK, "signup.html", data)
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.badRequest(w, r)
		return
	}
	form := forms.NewRegistrationForm(r)

	err := form.Validate(r.Context(), h.Users)
	if err == nil {
		err = h.register(r.Context(), form)
	}

	var verr *forms.ValidationError
	switch {
	case errors.As(err, &verr):
		data := h.page(w, r, "Sign Up")
		data["Form"] = forms.RegistrationForm{Username: form.Username, Email: form.Email}
		data["Errors"] = verr.Messages()
		h.View.HTML(w, http.StatusUnprocessableEntity, "signup.html", data)
		return
	case err != nil:
		h.serverError(w, r, err)
		return
	}

	metrics.IncUsersRegistered()
	flash.Set(w, flash.Message{Category: flash.Success, Text: "Your account has been created! You are now able to log in."})
	http.Redirect(w, r, "/login", http.StatusFound)
}

// register hashes the password and inserts the user. A unique-constraint
// violation that slipped past the pre-check comes back as a ValidationError.
func (h *AuthHandler) register(ctx context.Context, form forms.RegistrationForm) error {
	hash, err := h.Auth.Hasher.Hash(form.Password)
	if err != nil {
		return err
	}
	_, err = h.Users.Create(ctx, form.Username, form.Email, hash)
	var dup *repo.DuplicateError
	if errors.As(err, &dup) {
		verr := &forms.ValidationError{}
		verr.Add(dup.Field, forms.RuleUnique, forms.UniqueMessage(dup.Field))
		return verr
	}
	return err
}

// ==========================
// Login
// ==========================
func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	data := h.page(w, r, "Login")
	data["Form"] = forms.LoginForm{}
	data["Next"] = r.URL.Query().Get("next")
	h.View.HTML(w, http.StatusOK, "login.html", data)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.badRequest(w, r)
		return
	}
	form := forms.NewLoginForm(r)
	next := r.URL.Query().Get("next")

	rerender := func(errs map[string]string, notice string) {
		data := h.page(w, r, "Login")
		data["Form"] = forms.LoginForm{Email: form.Email, Remember: form.Remember}
		data["Errors"] = errs
		data["Next"] = next
		if notice != "" {
			addFlash(data, flash.Danger, notice)
		}
		h.View.HTML(w, http.StatusUnprocessableEntity, "login.html", data)
	}

	var verr *forms.ValidationError
	if err := form.Validate(); errors.As(err, &verr) {
		metrics.IncLoginAttempt("invalid_form")
		rerender(verr.Messages(), "")
		return
	}

	_, err := h.Auth.Login(r.Context(), w, auth.Credentials{
		Email:    form.Email,
		Password: form.Password,
		Remember: form.Remember,
	})
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		metrics.IncLoginAttempt("invalid")
		rerender(nil, msgLoginFailed)
		return
	case err != nil:
		metrics.IncLoginAttempt("error")
		h.serverError(w, r, err)
		return
	}

	metrics.IncLoginAttempt("success")
	http.Redirect(w, r, safeNext(next), http.StatusFound)
}

// ==========================
// Logout
// ==========================
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.Auth.Logout(w)
	http.Redirect(w, r, "/", http.StatusFound)
}

// ==========================
// Account
// ==========================
func (h *AuthHandler) Account(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.CurrentUser(r.Context()); !ok {
		h.serverError(w, r, errNoUser)
		return
	}
	h.View.HTML(w, http.StatusOK, "account.html", h.page(w, r, "Account"))
}

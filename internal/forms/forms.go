// Package forms decodes and validates the signup, login and post forms.
// Validation never writes; uniqueness checks only read through UserLookup.
package forms

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// UserLookup answers the uniqueness pre-checks for registration. The store's
// unique constraints remain the final word.
type UserLookup interface {
	UsernameTaken(ctx context.Context, username string) (bool, error)
	EmailTaken(ctx context.Context, email string) (bool, error)
}

const (
	msgUsernameTaken = "That username is taken. Please choose a different one."
	msgEmailTaken    = "That email is already registered."
)

// UniqueMessage is the message shown for a uniqueness failure on field.
func UniqueMessage(field string) string {
	switch field {
	case "username":
		return msgUsernameTaken
	case "email":
		return msgEmailTaken
	}
	return "This value is already in use."
}

// ==========================
// Registration
// ==========================
type RegistrationForm struct {
	Username        string `form:"username" validate:"notblank,length=2:20"`
	Email           string `form:"email" validate:"notblank,email,length=:120"`
	Password        string `form:"password" validate:"notblank,maxbytes=72"`
	ConfirmPassword string `form:"confirm_password" validate:"notblank,eqfield=Password"`
}

func NewRegistrationForm(r *http.Request) RegistrationForm {
	return RegistrationForm{
		Username:        strings.TrimSpace(r.PostFormValue("username")),
		Email:           normalizeEmail(r.PostFormValue("email")),
		Password:        r.PostFormValue("password"),
		ConfirmPassword: r.PostFormValue("confirm_password"),
	}
}

// Validate applies the field rules, then checks username and email against
// the store for any field that is otherwise valid. It returns a
// *ValidationError listing every failed field, or a wrapped store error.
func (f RegistrationForm) Validate(ctx context.Context, users UserLookup) error {
	verr := check(f)

	if !verr.Has("username") {
		taken, err := users.UsernameTaken(ctx, f.Username)
		if err != nil {
			return fmt.Errorf("check username: %w", err)
		}
		if taken {
			verr.Add("username", RuleUnique, msgUsernameTaken)
		}
	}
	if !verr.Has("email") {
		taken, err := users.EmailTaken(ctx, f.Email)
		if err != nil {
			return fmt.Errorf("check email: %w", err)
		}
		if taken {
			verr.Add("email", RuleUnique, msgEmailTaken)
		}
	}
	return verr.orNil()
}

// ==========================
// Login
// ==========================
type LoginForm struct {
	Email    string `form:"email" validate:"notblank,email"`
	Password string `form:"password" validate:"notblank"`
	Remember bool   `form:"remember"`
}

func NewLoginForm(r *http.Request) LoginForm {
	return LoginForm{
		Email:    normalizeEmail(r.PostFormValue("email")),
		Password: r.PostFormValue("password"),
		Remember: checked(r.PostFormValue("remember")),
	}
}

// Validate checks syntax only; credentials are verified by the auth manager.
func (f LoginForm) Validate() error {
	return check(f).orNil()
}

// ==========================
// Post
// ==========================
type PostForm struct {
	Title   string `form:"title" validate:"notblank,length=:100"`
	Content string `form:"content" validate:"notblank"`
}

func NewPostForm(r *http.Request) PostForm {
	return PostForm{
		Title:   strings.TrimSpace(r.PostFormValue("title")),
		Content: strings.TrimSpace(r.PostFormValue("content")),
	}
}

func (f PostForm) Validate() error {
	return check(f).orNil()
}

// check runs the struct rules and converts failures into a ValidationError.
func check(form any) *ValidationError {
	verr := &ValidationError{}
	err := validate.Struct(form)
	if err == nil {
		return verr
	}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		// InvalidValidationError: a programming error, not user input.
		panic(err)
	}
	for _, fe := range ves {
		verr.Add(fe.Field(), fe.Tag(), message(fe))
	}
	return verr
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func checked(v string) bool {
	switch strings.ToLower(v) {
	case "on", "y", "yes", "true", "1":
		return true
	}
	return false
}

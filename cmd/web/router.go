package main

import (
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/crucial707/postboard/internal/auth"
	"github.com/crucial707/postboard/internal/config"
	"github.com/crucial707/postboard/internal/handlers"
	"github.com/crucial707/postboard/internal/middleware"
	"github.com/crucial707/postboard/internal/postdate"
	"github.com/crucial707/postboard/internal/render"
	"github.com/crucial707/postboard/internal/repo"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/crypto/bcrypt"
)

// newRouter wires repositories, session handling and handlers into one chi router.
func newRouter(db *sql.DB, cfg config.Config) (http.Handler, error) {
	view, err := render.New()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	userRepo := repo.NewUserRepo(db)
	postRepo := repo.NewPostRepo(db)

	sessions := &auth.Sessions{
		Secret:      []byte(cfg.SessionSecret),
		TTL:         cfg.SessionTTL(),
		RememberTTL: cfg.RememberTTL(),
		Secure:      cfg.TLSEnabled(),
	}
	authManager := auth.NewManager(userRepo, sessions, auth.Hasher{Cost: bcrypt.DefaultCost})

	base := handlers.Base{View: view}
	authHandler := &handlers.AuthHandler{Base: base, Users: userRepo, Auth: authManager}
	postHandler := &handlers.PostHandler{
		Base:  base,
		Posts: postRepo,
		Dates: postdate.New(cfg.DateDigits, time.Local),
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.SecurityHeaders(cfg.TLSEnabled()))
	r.Use(middleware.Prometheus)
	r.Use(middleware.LoadUser(authManager))
	r.Use(middleware.RequestLog)
	r.Use(middleware.MaxBytes(middleware.DefaultMaxBodyBytes))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "ok")
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Handle("/static/*", render.Static())

	r.Get("/", postHandler.Index)
	r.Get("/post/{id}", postHandler.ViewPost)
	r.Get("/logout", authHandler.Logout)

	r.Group(func(r chi.Router) {
		r.Use(middleware.AnonymousOnly)
		r.Get("/signup", authHandler.SignupForm)
		r.Post("/signup", authHandler.Signup)
		r.Get("/login", authHandler.LoginForm)
		r.Post("/login", authHandler.Login)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireUser)
		r.Get("/account", authHandler.Account)
		r.Get("/newpost", postHandler.NewPostForm)
		r.Post("/newpost", postHandler.CreatePost)
	})

	r.NotFound(base.NotFound)

	return r, nil
}

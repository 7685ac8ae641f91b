package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ENV_FILE", "does-not-exist.env")
	for _, k := range []string{"PORT", "DB_HOST", "SESSION_SECRET", "ENV", "SESSION_HOURS", "REMEMBER_DAYS", "MIGRATE_ON_START", "DATE_DIGITS"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	if cfg.Port != "8080" {
		t.Errorf("Port: got %q, want 8080", cfg.Port)
	}
	if cfg.DBHost != "localhost" {
		t.Errorf("DBHost: got %q, want localhost", cfg.DBHost)
	}
	if cfg.SessionSecret != DefaultSessionSecret {
		t.Errorf("SessionSecret: got %q", cfg.SessionSecret)
	}
	if !cfg.MigrateOnStart {
		t.Error("MigrateOnStart should default to true")
	}
	if cfg.SessionTTL() != 12*time.Hour {
		t.Errorf("SessionTTL: got %v", cfg.SessionTTL())
	}
	if cfg.RememberTTL() != 30*24*time.Hour {
		t.Errorf("RememberTTL: got %v", cfg.RememberTTL())
	}
	if cfg.DateDigits != "latin" {
		t.Errorf("DateDigits: got %q", cfg.DateDigits)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ENV_FILE", "does-not-exist.env")
	t.Setenv("PORT", "9000")
	t.Setenv("SESSION_HOURS", "2")
	t.Setenv("REMEMBER_DAYS", "not-a-number")
	t.Setenv("MIGRATE_ON_START", "false")

	cfg := Load()
	if cfg.Port != "9000" {
		t.Errorf("Port: got %q, want 9000", cfg.Port)
	}
	if cfg.SessionHours != 2 {
		t.Errorf("SessionHours: got %d, want 2", cfg.SessionHours)
	}
	if cfg.RememberDays != 30 {
		t.Errorf("RememberDays should fall back on bad input, got %d", cfg.RememberDays)
	}
	if cfg.MigrateOnStart {
		t.Error("MigrateOnStart: expected false")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"dev with default secret", Config{Env: "dev", SessionSecret: DefaultSessionSecret, DateDigits: "latin"}, ""},
		{"prod with default secret", Config{Env: "prod", SessionSecret: DefaultSessionSecret, DateDigits: "latin"}, "SESSION_SECRET"},
		{"prod with real secret", Config{Env: "prod", SessionSecret: "s3cr3t", DateDigits: "persian"}, ""},
		{"half tls", Config{Env: "dev", TLSCertFile: "cert.pem", DateDigits: "latin"}, "TLS_CERT_FILE"},
		{"unknown digits", Config{Env: "dev", DateDigits: "roman"}, "DATE_DIGITS"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("got %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestDatabaseURL(t *testing.T) {
	cfg := Config{DBHost: "db", DBPort: "5432", DBName: "blog", DBUser: "u", DBPass: "p@ss", DBSSLMode: "disable"}
	got := cfg.DatabaseURL()
	want := "postgres://u:p%40ss@db:5432/blog?sslmode=disable"
	if got != want {
		t.Errorf("DatabaseURL: got %q, want %q", got, want)
	}
}

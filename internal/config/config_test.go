package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "SESSION_MAX_AGE", "CART_RATE_LIMIT", "ADMIN_USERNAMES", "MINIO_BUCKET", "SECURE_COOKIES"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.SessionTTL() != 30*24*time.Hour {
		t.Errorf("SessionTTL() = %v, want 720h", cfg.SessionTTL())
	}
	if cfg.CartRateLimit != 20 {
		t.Errorf("CartRateLimit = %d, want 20", cfg.CartRateLimit)
	}
	if cfg.AdminUsernames != nil {
		t.Errorf("AdminUsernames = %v, want nil", cfg.AdminUsernames)
	}
	if cfg.SecureCookies {
		t.Error("SecureCookies should default to false")
	}
	if cfg.MinIOBucket != "pickles-images" {
		t.Errorf("MinIOBucket = %q", cfg.MinIOBucket)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SESSION_MAX_AGE", "60")
	t.Setenv("ADMIN_USERNAMES", " santhi, ,admin ")
	t.Setenv("SECURE_COOKIES", "true")
	t.Setenv("CART_RATE_LIMIT", "not-a-number")
	t.Setenv("SMTP_HOST", "smtp.example.com")

	cfg := Load()

	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want 9090", cfg.Port)
	}
	if cfg.SessionTTL() != time.Minute {
		t.Errorf("SessionTTL() = %v, want 1m", cfg.SessionTTL())
	}
	if diff := cmp.Diff([]string{"santhi", "admin"}, cfg.AdminUsernames); diff != "" {
		t.Errorf("AdminUsernames mismatch (-want +got):\n%s", diff)
	}
	if !cfg.SecureCookies {
		t.Error("SecureCookies should be true")
	}
	if cfg.CartRateLimit != 20 {
		t.Errorf("invalid CART_RATE_LIMIT should fall back to 20, got %d", cfg.CartRateLimit)
	}
	if !cfg.MailEnabled() {
		t.Error("MailEnabled() should be true when SMTP_HOST is set")
	}
}

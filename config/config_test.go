package config

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleConfig = `
database:
  host: localhost
  port: 5432
  user: hub
  password: file-db-pass
  dbname: resource_hub

jwt:
  secret: file-secret

server:
  port: 9090

smtp:
  host: mail.example.edu
  port: 587
  user: notifications
  password: file-smtp-pass
  from: noreply@example.edu
`

func writeConfig(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, sampleConfig))
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Server.Port != 9090 {
		t.Fatalf("expected server port 9090, got %d", cfg.Server.Port)
	}
	if cfg.SMTP.Host != "mail.example.edu" || cfg.SMTP.Port != 587 {
		t.Fatalf("unexpected smtp endpoint: %s:%d", cfg.SMTP.Host, cfg.SMTP.Port)
	}
	if cfg.SMTP.From != "noreply@example.edu" {
		t.Fatalf("unexpected smtp sender: %s", cfg.SMTP.From)
	}
	if cfg.Sweeper.Schedule != "@every 5m" {
		t.Fatalf("expected default sweeper schedule, got %q", cfg.Sweeper.Schedule)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("DB_PASSWORD", "env-db-pass")
	t.Setenv("SMTP_PASSWORD", "env-smtp-pass")

	cfg, err := LoadConfig(writeConfig(t, sampleConfig))
	if err != nil {
		t.Fatal(err)
	}

	if cfg.JWT.Secret != "env-secret" {
		t.Fatalf("expected env jwt secret, got %q", cfg.JWT.Secret)
	}
	if cfg.Database.Password != "env-db-pass" {
		t.Fatalf("expected env db password, got %q", cfg.Database.Password)
	}
	if cfg.SMTP.Password != "env-smtp-pass" {
		t.Fatalf("expected env smtp password, got %q", cfg.SMTP.Password)
	}
}

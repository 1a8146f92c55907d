package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadWithDefaults(t *testing.T) {
	cfg, err := Load(WithEnvMap(map[string]string{}), WithoutSystemEnv(), WithEnvFile(""))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Server.Port)
	}
	if cfg.Server.Environment != "local" {
		t.Errorf("expected local environment, got %s", cfg.Server.Environment)
	}
	if cfg.Production() {
		t.Errorf("local config should not report production")
	}
	if cfg.Content.Dataset != "production" {
		t.Errorf("unexpected dataset: %s", cfg.Content.Dataset)
	}
	if cfg.Content.APIVersion != "2026-02-13" {
		t.Errorf("unexpected api version: %s", cfg.Content.APIVersion)
	}
	if !cfg.Content.UseCDN {
		t.Errorf("expected CDN enabled by default")
	}
	if cfg.Content.Revalidate != 30*time.Second {
		t.Errorf("unexpected revalidate window: %s", cfg.Content.Revalidate)
	}
	if cfg.Content.Remote() {
		t.Errorf("expected embedded content without a project id")
	}
	if cfg.Email.Configured() {
		t.Errorf("expected email to be unconfigured by default")
	}
	if cfg.Email.Endpoint != defaultEmailEndpoint {
		t.Errorf("unexpected email endpoint: %s", cfg.Email.Endpoint)
	}
	if cfg.Session.Secure {
		t.Errorf("session cookie should not be secure outside production")
	}
	if cfg.Session.HashKey != nil || cfg.Session.BlockKey != nil {
		t.Errorf("expected unset session keys to stay nil, got %q / %q", cfg.Session.HashKey, cfg.Session.BlockKey)
	}
}

func TestLoadFallsBackToPlatformPort(t *testing.T) {
	cfg, err := Load(WithEnvMap(map[string]string{"PORT": "9000"}), WithoutSystemEnv(), WithEnvFile(""))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Server.Port != "9000" {
		t.Fatalf("expected PORT fallback, got %s", cfg.Server.Port)
	}

	cfg, err = Load(WithEnvMap(map[string]string{"PORT": "9000", "SGWB_PORT": "9100"}), WithoutSystemEnv(), WithEnvFile(""))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Server.Port != "9100" {
		t.Fatalf("expected SGWB_PORT to win, got %s", cfg.Server.Port)
	}
}

func TestLoadWithOverrides(t *testing.T) {
	env := map[string]string{
		"SGWB_SANITY_PROJECT_ID":   "m2vcpr15",
		"SGWB_SANITY_API_VERSION":  "v2025-01-01",
		"SGWB_SANITY_USE_CDN":      "false",
		"SGWB_CONTENT_REVALIDATE":  "1m",
		"SGWB_REDIS_URL":           "redis://localhost:6379/0",
		"SGWB_EMAILJS_SERVICE_ID":  "service",
		"SGWB_EMAILJS_TEMPLATE_ID": "template",
		"SGWB_EMAILJS_PUBLIC_KEY":  "public",
		"SGWB_SITE_URL":            "https://sgwebsitebuilder.com/",
		"SGWB_DEV":                 "yes",
	}
	cfg, err := Load(WithEnvMap(env), WithoutSystemEnv(), WithEnvFile(""))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !cfg.Content.Remote() || cfg.Content.ProjectID != "m2vcpr15" {
		t.Errorf("expected remote content for project, got %+v", cfg.Content)
	}
	if cfg.Content.APIVersion != "2025-01-01" {
		t.Errorf("expected api version without v prefix, got %s", cfg.Content.APIVersion)
	}
	if cfg.Content.UseCDN {
		t.Errorf("expected CDN disabled")
	}
	if cfg.Content.Revalidate != time.Minute {
		t.Errorf("unexpected revalidate: %s", cfg.Content.Revalidate)
	}
	if !cfg.Email.Configured() {
		t.Errorf("expected email configured")
	}
	if cfg.Site.URL != "https://sgwebsitebuilder.com" {
		t.Errorf("expected trailing slash trimmed, got %s", cfg.Site.URL)
	}
	if !cfg.Server.DevMode {
		t.Errorf("expected dev mode")
	}
}

func TestLoadValidationErrors(t *testing.T) {
	env := map[string]string{
		"SGWB_PORT":               "http",
		"SGWB_SANITY_PROJECT_ID":  "m2vcpr15",
		"SGWB_SANITY_API_VERSION": "latest",
		"SGWB_REDIS_URL":          "localhost:6379",
		"SGWB_ENV":                "prod",
		"SGWB_SESSION_HASH_KEY":   "short",
	}
	_, err := Load(WithEnvMap(env), WithoutSystemEnv(), WithEnvFile(""))
	if err == nil {
		t.Fatal("expected validation error")
	}
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	want := map[string]bool{
		"Server.Port":        true,
		"Content.APIVersion": true,
		"Cache.RedisURL":     true,
		"Session.HashKey":    true,
	}
	fields := vErr.Fields()
	if len(fields) != len(want) {
		t.Fatalf("unexpected fields: %v", fields)
	}
	for _, f := range fields {
		if !want[f] {
			t.Errorf("unexpected invalid field %s", f)
		}
	}
}

func TestLoadReadsDotEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := "SGWB_PORT=7070\nSGWB_EMAILJS_SERVICE_ID=from-file\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	cfg, err := Load(WithEnvFile(path), WithoutSystemEnv(), WithEnvMap(map[string]string{"SGWB_EMAILJS_SERVICE_ID": "from-map"}))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Server.Port != "7070" {
		t.Errorf("expected port from .env, got %s", cfg.Server.Port)
	}
	if cfg.Email.ServiceID != "from-map" {
		t.Errorf("expected explicit map to override .env, got %s", cfg.Email.ServiceID)
	}
}

func TestLoadMissingDotEnvIsIgnored(t *testing.T) {
	_, err := Load(WithEnvFile(filepath.Join(t.TempDir(), "missing.env")), WithoutSystemEnv())
	if err != nil {
		t.Fatalf("expected missing .env to be ignored, got %v", err)
	}
}

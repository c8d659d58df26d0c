package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SSU_APPID_CACHE", "")
	t.Setenv("SSU_APPLIST_URL", "")
	t.Setenv("SSU_HTTP_TIMEOUT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.AppidCacheFile != "appid_names.json" {
		t.Fatalf("AppidCacheFile = %q", cfg.AppidCacheFile)
	}
	if cfg.AppListURL != "https://api.steampowered.com/ISteamApps/GetAppList/v0002" {
		t.Fatalf("AppListURL = %q", cfg.AppListURL)
	}
	if cfg.HTTPTimeout != 30*time.Second {
		t.Fatalf("HTTPTimeout = %v", cfg.HTTPTimeout)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SSU_APPID_CACHE", "/tmp/names.json")
	t.Setenv("SSU_APPLIST_URL", "http://localhost:8080/applist")
	t.Setenv("SSU_HTTP_TIMEOUT", "5s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.AppidCacheFile != "/tmp/names.json" {
		t.Fatalf("AppidCacheFile = %q", cfg.AppidCacheFile)
	}
	if cfg.AppListURL != "http://localhost:8080/applist" {
		t.Fatalf("AppListURL = %q", cfg.AppListURL)
	}
	if cfg.HTTPTimeout != 5*time.Second {
		t.Fatalf("HTTPTimeout = %v", cfg.HTTPTimeout)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("SSU_APPLIST_URL", "ftp://example.com/list")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for non-http applist URL")
	}
	t.Setenv("SSU_APPLIST_URL", "")

	t.Setenv("SSU_HTTP_TIMEOUT", "soon")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for malformed timeout")
	}

	t.Setenv("SSU_HTTP_TIMEOUT", "-1s")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for non-positive timeout")
	}
}

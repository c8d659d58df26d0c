package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultAppidCache  = "appid_names.json"
	defaultAppListURL  = "https://api.steampowered.com/ISteamApps/GetAppList/v0002"
	defaultHTTPTimeout = 30 * time.Second
)

// Config represents environment-derived settings.
type Config struct {
	AppidCacheFile string
	AppListURL     string
	HTTPTimeout    time.Duration
}

// Load reads .env (if present) and validates optional overrides.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		AppidCacheFile: defaultAppidCache,
		AppListURL:     defaultAppListURL,
		HTTPTimeout:    defaultHTTPTimeout,
	}

	if v := strings.TrimSpace(os.Getenv("SSU_APPID_CACHE")); v != "" {
		cfg.AppidCacheFile = v
	}
	if v := strings.TrimSpace(os.Getenv("SSU_APPLIST_URL")); v != "" {
		if !strings.HasPrefix(v, "http://") && !strings.HasPrefix(v, "https://") {
			return cfg, fmt.Errorf("SSU_APPLIST_URL must be an http(s) URL: %q", v)
		}
		cfg.AppListURL = v
	}
	if v := strings.TrimSpace(os.Getenv("SSU_HTTP_TIMEOUT")); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("SSU_HTTP_TIMEOUT is not a valid duration: %q", v)
		}
		if d <= 0 {
			return cfg, fmt.Errorf("SSU_HTTP_TIMEOUT must be positive: %q", v)
		}
		cfg.HTTPTimeout = d
	}

	return cfg, nil
}

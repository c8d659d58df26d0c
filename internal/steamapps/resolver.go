package steamapps

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"time"

	ttlworker "github.com/FloatTech/ttl"
	"github.com/bytedance/sonic"
	"github.com/charmbracelet/log"

	"ssu/internal/config"
)

// resolved names are memoized for the duration of one run; the TTL only
// matters if a single invocation somehow outlives it.
const resolvedTTL = time.Hour

type appListResponse struct {
	AppList struct {
		Apps []struct {
			Appid int    `json:"appid"`
			Name  string `json:"name"`
		} `json:"apps"`
	} `json:"applist"`
}

// Resolver maps Steam app ids to display names. The name table is primed
// from a local JSON cache file and refreshed from the Steam app list
// endpoint at most once per run. Lookup failures are never fatal: an
// unknown id resolves to its own decimal representation.
type Resolver struct {
	cacheFile string
	listURL   string
	client    *http.Client
	log       *log.Logger

	names     map[string]string
	refreshed bool
	resolved  *ttlworker.Cache[int, string]
}

func NewResolver(cfg config.Config, logger *log.Logger) *Resolver {
	return &Resolver{
		cacheFile: cfg.AppidCacheFile,
		listURL:   cfg.AppListURL,
		client:    &http.Client{Timeout: cfg.HTTPTimeout},
		log:       logger,
		names:     map[string]string{},
		resolved:  ttlworker.NewCache[int, string](resolvedTTL),
	}
}

// Load primes the name table from the local cache file, falling back to a
// remote refresh when no usable cache exists. A failed refresh leaves the
// table empty and resolution degrades to id-only naming.
func (r *Resolver) Load() {
	if data, err := os.ReadFile(r.cacheFile); err == nil {
		if err := sonic.Unmarshal(data, &r.names); err == nil {
			r.log.Infof("Loaded %d app names from %s", len(r.names), r.cacheFile)
			return
		}
		r.log.Warnf("Ignoring malformed app name cache %s", r.cacheFile)
	}
	if err := r.refresh(); err != nil {
		r.log.Warnf("Could not fetch the Steam app list: %v", err)
	}
}

// refresh replaces the in-memory name table with a fresh copy from the
// Steam API and persists it for later runs. At most one refresh happens
// per run, even when it fails.
func (r *Resolver) refresh() error {
	r.refreshed = true

	resp, err := r.client.Get(r.listURL)
	if err != nil {
		return fmt.Errorf("fetch app list: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetch app list: unexpected status %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read app list: %w", err)
	}

	var list appListResponse
	if err := sonic.Unmarshal(body, &list); err != nil {
		return fmt.Errorf("decode app list: %w", err)
	}

	names := make(map[string]string, len(list.AppList.Apps))
	for _, app := range list.AppList.Apps {
		names[strconv.Itoa(app.Appid)] = app.Name
	}
	r.names = names
	r.log.Infof("Fetched %d app names from the Steam API", len(names))

	if data, err := sonic.Marshal(names); err == nil {
		if err := os.WriteFile(r.cacheFile, data, 0o644); err != nil {
			r.log.Warnf("Could not persist app name cache %s: %v", r.cacheFile, err)
		}
	}
	return nil
}

// Resolve returns the display name for an app id, or the stringified id
// when no name is known. The first unknown id triggers the one allowed
// refresh of the name table, on the assumption that the local cache is
// stale.
func (r *Resolver) Resolve(appID int) string {
	if name := r.resolved.Get(appID); name != "" {
		return name
	}

	id := strconv.Itoa(appID)
	name, ok := r.names[id]
	if (!ok || name == "") && !r.refreshed {
		r.log.Infof("Appid %d not in the local table, refreshing from the Steam API...", appID)
		if err := r.refresh(); err != nil {
			r.log.Warnf("App list refresh failed: %v", err)
		}
		name = r.names[id]
	}
	if name == "" {
		return id
	}

	r.resolved.Set(appID, name)
	return name
}

// FolderName returns the destination folder name for an app id:
// "<appid> - <name>", or just "<appid>" when the name is unknown or
// sanitizes away entirely.
func (r *Resolver) FolderName(appID int) string {
	id := strconv.Itoa(appID)
	name := r.Resolve(appID)
	if name == id {
		return id
	}
	sanitized := SanitizeName(name)
	if sanitized == "" {
		return id
	}
	return id + " - " + sanitized
}

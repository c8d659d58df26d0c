package app

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"ssu/internal/config"
)

// testConfig points the resolver at a pre-filled local name table and an
// unreachable API, so tests never leave the machine.
func testConfig(t *testing.T) config.Config {
	t.Helper()
	cacheFile := filepath.Join(t.TempDir(), "appid_names.json")
	if err := os.WriteFile(cacheFile, []byte(`{"440":"Team Fortress 2","570":"Dota 2"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	return config.Config{
		AppidCacheFile: cacheFile,
		AppListURL:     "http://127.0.0.1:0/applist",
		HTTPTimeout:    time.Second,
	}
}

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected file %s: %v", path, err)
	}
	return string(data)
}

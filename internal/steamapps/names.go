package steamapps

import (
	"regexp"
	"runtime"
	"strings"
)

var windowsReserved = regexp.MustCompile(`[<>:"/\\|?*]`)

// SanitizeName strips characters that are invalid in filesystem paths from
// an app display name. Windows forbids a larger set than unix-likes.
func SanitizeName(name string) string {
	return sanitizeFor(runtime.GOOS, name)
}

func sanitizeFor(goos, name string) string {
	if goos == "windows" {
		name = windowsReserved.ReplaceAllString(name, "")
	} else {
		name = strings.ReplaceAll(name, "/", "")
	}
	return strings.TrimSpace(name)
}

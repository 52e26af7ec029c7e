package app

import (
	"net/url"
	"strings"
)

// redisTargetFromURL returns host and database of a redis URL without
// credentials, for startup logs.
func redisTargetFromURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	parsed, err := url.Parse(trimmed)
	if err != nil || parsed == nil || parsed.Host == "" {
		return ""
	}

	db := strings.TrimSpace(strings.TrimPrefix(parsed.Path, "/"))
	if db == "" {
		db = "0"
	}

	return parsed.Host + "/" + db
}

package app

import (
	"net/url"
	"strings"
)

const preparedBinaryResultParam = "disable_prepared_binary_result"

// normalizeDBURL adds the pgbouncer friendly flag unless the url already
// sets it.
func normalizeDBURL(raw string, disablePreparedBinaryResult bool) string {
	if !disablePreparedBinaryResult {
		return raw
	}

	parsed, ok := parseDBURL(raw)
	if !ok {
		return raw
	}

	query := parsed.Query()
	if query.Get(preparedBinaryResultParam) == "" {
		query.Set(preparedBinaryResultParam, "yes")
		parsed.RawQuery = query.Encode()
	}

	return parsed.String()
}

// dbNameFromURL reads the database name from either a url or a key=value
// connection string.
func dbNameFromURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if parsed, ok := parseDBURL(trimmed); ok {
		if name := strings.TrimSpace(strings.TrimPrefix(parsed.Path, "/")); name != "" {
			return name
		}
	}

	for _, token := range strings.Fields(trimmed) {
		name, found := strings.CutPrefix(token, "dbname=")
		if !found {
			continue
		}
		if name = strings.Trim(strings.TrimSpace(name), `"'`); name != "" {
			return name
		}
	}

	return ""
}

// redactDBURL hides the password so the url can be logged.
func redactDBURL(raw string) string {
	parsed, ok := parseDBURL(raw)
	if !ok {
		return "<dsn>"
	}
	return parsed.Redacted()
}

func parseDBURL(raw string) (*url.URL, bool) {
	parsed, err := url.Parse(raw)
	if err != nil || parsed == nil || parsed.Scheme == "" {
		return nil, false
	}
	return parsed, true
}

package auth

import (
	"net/url"
	"strings"
)

// ParseCookies parses a raw Cookie header value into a name/value map.
// Segments are split on ";", trimmed, and cut on the first "=". Values are
// URL-decoded; a value that fails to decode is kept verbatim. Malformed
// segments (no "=", empty name) are skipped rather than treated as fatal.
// An empty header yields an empty map.
func ParseCookies(header string) map[string]string {
	cookies := make(map[string]string)

	for segment := range strings.SplitSeq(header, ";") {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}

		name, value, found := strings.Cut(segment, "=")
		if !found {
			continue
		}
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		if decoded, err := url.QueryUnescape(value); err == nil {
			value = decoded
		}
		cookies[name] = value
	}

	return cookies
}

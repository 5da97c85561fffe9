package utils

import "regexp"

var (
	schemeRegexp = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*://`)
	urlRegexp    = regexp.MustCompile(`^(https?|ftp)://([^\s/$.?#]+\.)+[^\s/$.?#]+[^\s]*$`)
)

// NormalizeURL prepends https:// when the input carries no scheme at all.
// Idempotent: a second call is always a no-op.
func NormalizeURL(raw string) string {
	if schemeRegexp.MatchString(raw) {
		return raw
	}
	return "https://" + raw
}

// IsValidURL reports whether the string is an absolute http, https or ftp URL
// with at least one dot-separated host label and no whitespace anywhere.
func IsValidURL(url string) bool {
	return urlRegexp.MatchString(url)
}

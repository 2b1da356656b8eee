package domain

import (
	"net/url"
	"strings"
)

// ValidateLinkFields checks the editable fields shared by add and edit.
// The URL must parse as an absolute URL and the name must be non-empty.
func ValidateLinkFields(rawURL, name string) error {
	if strings.TrimSpace(name) == "" {
		return NewValidationError("name", "must not be empty")
	}
	if !isValidURL(rawURL) {
		return NewValidationError("url", "must be a valid absolute URL")
	}
	return nil
}

// ValidateApplyEntryFields checks the required fields of an application record.
func ValidateApplyEntryFields(title, date, role string) error {
	if strings.TrimSpace(title) == "" {
		return NewValidationError("title", "must not be empty")
	}
	if strings.TrimSpace(date) == "" {
		return NewValidationError("date", "must not be empty")
	}
	if strings.TrimSpace(role) == "" {
		return NewValidationError("role", "must not be empty")
	}
	return nil
}

// isValidURL accepts absolute URLs only. url.Parse is permissive ("not a
// url" parses fine as a relative path), so require a scheme plus either a
// host or an opaque part (mailto:, data:).
func isValidURL(raw string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	if u.Scheme == "" {
		return false
	}
	return u.Host != "" || u.Opaque != ""
}

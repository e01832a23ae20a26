package usecase

import "strings"

// credentials is the canonical form of a username/password pair after
// normalization. The username is trimmed for storage and lookup; the
// password is kept verbatim because the hash covers the raw value, and
// trimming applies only to the blank check.
type credentials struct {
	Username string
	Password string
}

// normalizeCredentials canonicalizes the required fields and reports
// whether both are present and non-blank.
func normalizeCredentials(username, password string) (credentials, bool) {
	c := credentials{
		Username: strings.TrimSpace(username),
		Password: password,
	}
	return c, c.Username != "" && strings.TrimSpace(password) != ""
}

// normalizeOptional trims an optional field, coalescing blank values
// to nil so they are stored as NULL.
func normalizeOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

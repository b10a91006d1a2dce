// Package identity derives the synthetic technical login from an in-world
// static ID.
package identity

import "strings"

// DefaultLoginDomain is the internal domain suffix appended to technical
// logins. The auth layer reuses an email-shaped identity field, so the
// suffix keeps derived logins out of any real mail namespace.
const DefaultLoginDomain = "gosuslugi.local"

// TechnicalLogin converts a user-supplied static ID into the synthetic login
// identifier: trim, lowercase, replace anything outside [a-z0-9._-] with an
// underscore, then prefix "static_" and append "@" + domain.
//
// The mapping is deterministic and one-way; two distinct static IDs can
// collapse to the same login after sanitization, which is accepted (the
// unique index on the column surfaces the collision at sign-up).
func TechnicalLogin(staticID, domain string) string {
	if domain == "" {
		domain = DefaultLoginDomain
	}
	sanitized := sanitize(staticID)
	return "static_" + sanitized + "@" + domain
}

func sanitize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '.', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

package services

import "regexp"

// The same patterns the HTTP surface has always enforced: a basic
// local@domain.tld shape for emails and the canonical hyphenated-hex form
// for identifiers. Malformed identifiers are rejected before any store
// access.
var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	uuidPattern  = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)
)

func validEmail(email string) bool {
	return emailPattern.MatchString(email)
}

func validID(id string) bool {
	return uuidPattern.MatchString(id)
}

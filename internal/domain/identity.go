package domain

import "strings"

// CanonicalIdentity is the storage-safe key derived from a registrant's
// email address. It doubles as the document ID for both the per-event
// registration records and the global participant record.
type CanonicalIdentity string

// NormalizeIdentity derives the CanonicalIdentity for an email address.
// Emails differing only by case or surrounding whitespace map to the same
// identity. Characters reserved in Firestore document paths are replaced
// with underscores.
func NormalizeIdentity(email string) CanonicalIdentity {
	sanitized := strings.Map(func(r rune) rune {
		switch r {
		case '.', '#', '$', '[', ']':
			return '_'
		}
		return r
	}, NormalizeEmail(email))

	return CanonicalIdentity(sanitized)
}

// NormalizeEmail returns the email as stored on registration records:
// lower-cased and trimmed, original characters intact.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

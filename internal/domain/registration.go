package domain

import (
	"strings"
	"time"
)

// OrganizingCollege is the distinguished affiliation treated as the home
// institution in all counter splits.
const OrganizingCollege = "CBIT"

// IsOrganizingCollege classifies an affiliation. A blank value counts as
// the organizing college, matching the form's default.
func IsOrganizingCollege(college string) bool {
	trimmed := strings.TrimSpace(college)
	return trimmed == "" || strings.EqualFold(trimmed, OrganizingCollege)
}

// Registration is one identity's durable registration to one concrete
// event, stored under the event's registration collection keyed by the
// identity. At most one exists per (event, identity).
type Registration struct {
	FullName     string        `firestore:"fullName"`
	RollNumber   string        `firestore:"rollNumber"`
	College      string        `firestore:"college"`
	Branch       string        `firestore:"branch"`
	Year         string        `firestore:"year"`
	Email        string        `firestore:"email"`
	PhoneNumber  string        `firestore:"phoneNumber"`
	Event        EventID       `firestore:"event"`
	Selector     EventSelector `firestore:"selector"`
	RegisteredAt time.Time     `firestore:"registeredAt,serverTimestamp"`
}

// Participant marks that an identity has registered for at least one
// event. One document per identity, created on first registration and
// never touched again; its existence is what the unique counters count.
type Participant struct {
	College           string    `firestore:"college"`
	IsCBIT            bool      `firestore:"isCbit"`
	FirstRegisteredAt time.Time `firestore:"firstRegisteredAt,serverTimestamp"`
}

// Stats is the singleton counters document behind the site's live stats
// section. Counters only ever go up.
type Stats struct {
	TotalRegistrations  int64            `firestore:"totalRegistrations" json:"totalRegistrations"`
	UniqueRegistrations int64            `firestore:"uniqueRegistrations" json:"uniqueRegistrations"`
	CbitCount           int64            `firestore:"cbitCount" json:"cbitCount"`
	NonCbitCount        int64            `firestore:"nonCbitCount" json:"nonCbitCount"`
	UniqueCbitCount     int64            `firestore:"uniqueCbitCount" json:"uniqueCbitCount"`
	UniqueNonCbitCount  int64            `firestore:"uniqueNonCbitCount" json:"uniqueNonCbitCount"`
	Events              map[string]int64 `firestore:"events" json:"events"`
}

// StatsDelta is the per-event share of a submission's counter updates.
// The unique-participant counters are deliberately absent: whether they
// move depends on participant existence, which only the commit itself
// can decide.
type StatsDelta struct {
	Total   int64
	Cbit    int64
	NonCbit int64
	Events  map[EventID]int64
}

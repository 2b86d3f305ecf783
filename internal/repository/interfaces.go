package repository

import (
	"context"

	"github.com/lohithabandirala/vmedha-2026-sudhee/internal/domain"
)

// WriteSet is everything one admitted submission persists. The store must
// apply it indivisibly: every registration, the participant record (only
// if one does not already exist for the identity) and every counter
// increment land together, or none of them do.
type WriteSet struct {
	Identity      domain.CanonicalIdentity
	Registrations []*domain.Registration
	Participant   *domain.Participant
	Delta         domain.StatsDelta
}

// RegistrationRepository defines the interface for registration storage operations
type RegistrationRepository interface {
	// GetRegistration looks up the registration for (event, identity).
	// Returns (nil, nil) when no such registration exists.
	GetRegistration(ctx context.Context, event domain.EventID, identity domain.CanonicalIdentity) (*domain.Registration, error)

	// IsPhoneRegistered reports whether any registration for the event
	// already carries the given phone number.
	IsPhoneRegistered(ctx context.Context, event domain.EventID, phone string) (bool, error)

	// CommitWriteSet applies the write set atomically. Whether the unique
	// participant counters move is decided inside the commit, based on
	// whether the participant record had to be created.
	CommitWriteSet(ctx context.Context, ws *WriteSet) error

	// GetStats retrieves the counters document.
	GetStats(ctx context.Context) (*domain.Stats, error)

	// EnsureStats creates the zeroed counters document if it does not
	// exist yet. The counters are otherwise only ever incremented.
	EnsureStats(ctx context.Context) error

	// Ping checks if the store is reachable
	Ping(ctx context.Context) error

	// Close closes the repository and releases resources
	Close() error
}

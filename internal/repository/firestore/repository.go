package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"go.uber.org/zap"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/lohithabandirala/vmedha-2026-sudhee/internal/domain"
	"github.com/lohithabandirala/vmedha-2026-sudhee/internal/repository"
)

const (
	participantsCollection = "participants"
	countersCollection     = "counters"
	statsDocID             = "stats"
)

// registrationsCollection returns the name of the per-event registration
// collection. Documents inside it are keyed by canonical identity.
func registrationsCollection(event domain.EventID) string {
	return fmt.Sprintf("registrations_%s", event)
}

// Repository implements RegistrationRepository for Cloud Firestore
type Repository struct {
	client *Client
	log    *zap.Logger
}

// NewRepository creates a new Firestore repository
func NewRepository(client *Client, log *zap.Logger) *Repository {
	return &Repository{
		client: client,
		log:    log,
	}
}

func (r *Repository) registrationRef(event domain.EventID, identity domain.CanonicalIdentity) *firestore.DocumentRef {
	return r.client.Conn().Collection(registrationsCollection(event)).Doc(string(identity))
}

func (r *Repository) participantRef(identity domain.CanonicalIdentity) *firestore.DocumentRef {
	return r.client.Conn().Collection(participantsCollection).Doc(string(identity))
}

func (r *Repository) statsRef() *firestore.DocumentRef {
	return r.client.Conn().Collection(countersCollection).Doc(statsDocID)
}

// GetRegistration looks up the registration for (event, identity).
// A missing document is not an error; it returns (nil, nil).
func (r *Repository) GetRegistration(ctx context.Context, event domain.EventID, identity domain.CanonicalIdentity) (*domain.Registration, error) {
	snap, err := r.registrationRef(event, identity).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get registration: %w", err)
	}

	var reg domain.Registration
	if err := snap.DataTo(&reg); err != nil {
		return nil, fmt.Errorf("failed to decode registration: %w", err)
	}
	return &reg, nil
}

// IsPhoneRegistered reports whether any registration for the event
// already carries the given phone number.
func (r *Repository) IsPhoneRegistered(ctx context.Context, event domain.EventID, phone string) (bool, error) {
	iter := r.client.Conn().
		Collection(registrationsCollection(event)).
		Where("phoneNumber", "==", phone).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	_, err := iter.Next()
	if err == iterator.Done {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to query phone number: %w", err)
	}
	return true, nil
}

// CommitWriteSet applies one submission's writes in a single Firestore
// transaction: the per-event registration documents, the participant
// document when the identity is new, and the counter increments. The
// unique counters move only when the participant document is created
// here, so a combo can never count the same person twice.
func (r *Repository) CommitWriteSet(ctx context.Context, ws *repository.WriteSet) error {
	if len(ws.Registrations) == 0 {
		return fmt.Errorf("write set contains no registrations")
	}

	participantRef := r.participantRef(ws.Identity)
	statsRef := r.statsRef()

	return r.client.Conn().RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		// Firestore requires all reads before any write in a transaction.
		_, err := tx.Get(participantRef)
		if err != nil && status.Code(err) != codes.NotFound {
			return fmt.Errorf("failed to get participant: %w", err)
		}
		newParticipant := status.Code(err) == codes.NotFound

		for _, reg := range ws.Registrations {
			if err := tx.Create(r.registrationRef(reg.Event, ws.Identity), reg); err != nil {
				return fmt.Errorf("failed to create registration for %s: %w", reg.Event, err)
			}
		}

		if newParticipant {
			if err := tx.Create(participantRef, ws.Participant); err != nil {
				return fmt.Errorf("failed to create participant: %w", err)
			}
		}

		updates := []firestore.Update{
			{Path: "totalRegistrations", Value: firestore.Increment(ws.Delta.Total)},
		}
		if ws.Delta.Cbit > 0 {
			updates = append(updates, firestore.Update{Path: "cbitCount", Value: firestore.Increment(ws.Delta.Cbit)})
		}
		if ws.Delta.NonCbit > 0 {
			updates = append(updates, firestore.Update{Path: "nonCbitCount", Value: firestore.Increment(ws.Delta.NonCbit)})
		}
		for event, n := range ws.Delta.Events {
			// Event IDs contain dashes, so they need a FieldPath rather
			// than a dotted Path.
			updates = append(updates, firestore.Update{
				FieldPath: firestore.FieldPath{"events", string(event)},
				Value:     firestore.Increment(n),
			})
		}
		if newParticipant {
			uniqueSplit := "uniqueNonCbitCount"
			if ws.Participant.IsCBIT {
				uniqueSplit = "uniqueCbitCount"
			}
			updates = append(updates,
				firestore.Update{Path: "uniqueRegistrations", Value: firestore.Increment(1)},
				firestore.Update{Path: uniqueSplit, Value: firestore.Increment(1)},
			)
		}

		if err := tx.Update(statsRef, updates); err != nil {
			return fmt.Errorf("failed to update stats counters: %w", err)
		}
		return nil
	})
}

// GetStats retrieves the counters document
func (r *Repository) GetStats(ctx context.Context) (*domain.Stats, error) {
	snap, err := r.statsRef().Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	var stats domain.Stats
	if err := snap.DataTo(&stats); err != nil {
		return nil, fmt.Errorf("failed to decode stats: %w", err)
	}
	if stats.Events == nil {
		stats.Events = map[string]int64{}
	}
	return &stats, nil
}

// EnsureStats creates the zeroed counters document if it does not exist.
// After that the document is only ever touched through increments.
func (r *Repository) EnsureStats(ctx context.Context) error {
	events := make(map[string]int64, len(domain.AllEvents()))
	for _, id := range domain.AllEvents() {
		events[string(id)] = 0
	}

	_, err := r.statsRef().Create(ctx, &domain.Stats{Events: events})
	if status.Code(err) == codes.AlreadyExists {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to create stats document: %w", err)
	}

	r.log.Info("Stats counters document created")
	return nil
}

// Ping checks if the store is reachable. Firestore has no dedicated
// health RPC, so a point read of the counters document is used; a
// missing document still proves the store answered.
func (r *Repository) Ping(ctx context.Context) error {
	_, err := r.statsRef().Get(ctx)
	if err != nil && status.Code(err) != codes.NotFound {
		return fmt.Errorf("failed to ping Firestore: %w", err)
	}
	return nil
}

// Close closes the Firestore connection
func (r *Repository) Close() error {
	return r.client.Close()
}

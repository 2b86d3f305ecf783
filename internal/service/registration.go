package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/lohithabandirala/vmedha-2026-sudhee/internal/domain"
	"github.com/lohithabandirala/vmedha-2026-sudhee/internal/dto"
	"github.com/lohithabandirala/vmedha-2026-sudhee/internal/repository"
)

const (
	msgSuccess        = "Registration successful!"
	msgPartialSuccess = "You are now registered for all selected events!"
	msgAlreadySingle  = "You have already registered for this event with this email!"
	msgAlreadyAll     = "You have already registered for all selected events with this email!"
	msgUnknown        = "Something went wrong. Please try again."
)

// dupStatus classifies one target event for a submission before any
// write happens.
type dupStatus int

const (
	dupNone     dupStatus = iota // admissible, should be written
	dupSelf                      // identity already registered; benign no-op
	dupConflict                  // phone number taken by another identity
)

// RegistrationService represents the registration service
type RegistrationService struct {
	repository repository.RegistrationRepository
	log        *zap.Logger
}

// NewRegistrationService creates a new registration service
func NewRegistrationService(repo repository.RegistrationRepository, log *zap.Logger) *RegistrationService {
	return &RegistrationService{
		repository: repo,
		log:        log,
	}
}

// SubmitRegistration processes one registration submission end to end:
// normalize the identity, expand the event selection, classify every
// target, then commit all admissible targets in one atomic write set.
// Expected outcomes come back as a SubmissionResult; store faults are
// logged and reported as UNKNOWN_ERROR.
func (s *RegistrationService) SubmitRegistration(ctx context.Context, req *dto.RegisterRequest) *domain.SubmissionResult {
	identity := domain.NormalizeIdentity(req.Email)
	selector := domain.EventSelector(req.Event)
	targets := selector.Expand()

	// The duplicate checks are plain reads taken before the transactional
	// commit, the same order the site has always used. Two concurrent
	// submissions with the same unused phone number can both pass the
	// phone check before either commits, so phone uniqueness is best
	// effort, not linearizable.
	var toWrite []domain.EventID
	skipped := 0
	for _, event := range targets {
		status, detail, err := s.checkDuplicate(ctx, event, identity, req.PhoneNumber)
		if err != nil {
			s.log.Error("Duplicate check failed",
				zap.String("event", string(event)),
				zap.String("identity", string(identity)),
				zap.Error(err))
			return unknownResult()
		}

		switch status {
		case dupConflict:
			s.log.Info("Registration rejected: phone number conflict",
				zap.String("event", string(event)),
				zap.String("identity", string(identity)),
				zap.String("phone_number", req.PhoneNumber))
			return &domain.SubmissionResult{
				Success:   false,
				Message:   detail,
				ErrorKind: domain.ErrorDuplicateEntry,
			}
		case dupSelf:
			skipped++
		case dupNone:
			toWrite = append(toWrite, event)
		}
	}

	if len(toWrite) == 0 {
		message := msgAlreadySingle
		if len(targets) > 1 {
			message = msgAlreadyAll
		}
		s.log.Info("Registration rejected: already registered",
			zap.String("identity", string(identity)),
			zap.String("selector", req.Event))
		return &domain.SubmissionResult{
			Success:   false,
			Message:   message,
			ErrorKind: domain.ErrorAlreadyRegistered,
		}
	}

	ws := buildWriteSet(identity, selector, toWrite, req)
	if err := s.repository.CommitWriteSet(ctx, ws); err != nil {
		s.log.Error("Failed to commit registration",
			zap.String("identity", string(identity)),
			zap.String("selector", req.Event),
			zap.Error(err))
		return unknownResult()
	}

	s.log.Info("Registration committed",
		zap.String("identity", string(identity)),
		zap.String("selector", req.Event),
		zap.Int("events_written", len(toWrite)),
		zap.Int("events_skipped", skipped))

	message := msgSuccess
	if skipped > 0 {
		message = msgPartialSuccess
	}
	return &domain.SubmissionResult{Success: true, Message: message}
}

// checkDuplicate classifies one target event for the identity. Read-only;
// it must run before any write of the same submission.
func (s *RegistrationService) checkDuplicate(ctx context.Context, event domain.EventID, identity domain.CanonicalIdentity, phone string) (dupStatus, string, error) {
	existing, err := s.repository.GetRegistration(ctx, event, identity)
	if err != nil {
		return dupNone, "", fmt.Errorf("failed to check existing registration: %w", err)
	}
	if existing != nil {
		return dupSelf, "", nil
	}

	taken, err := s.repository.IsPhoneRegistered(ctx, event, phone)
	if err != nil {
		return dupNone, "", fmt.Errorf("failed to check phone number: %w", err)
	}
	if taken {
		detail := fmt.Sprintf("This phone number (%s) is already registered for this event!", phone)
		return dupConflict, detail, nil
	}

	return dupNone, "", nil
}

// buildWriteSet assembles the atomic write set for the admitted events.
// Timestamps stay zero here; the store fills them server-side.
func buildWriteSet(identity domain.CanonicalIdentity, selector domain.EventSelector, events []domain.EventID, req *dto.RegisterRequest) *repository.WriteSet {
	email := domain.NormalizeEmail(req.Email)
	isCBIT := domain.IsOrganizingCollege(req.College)

	college := strings.TrimSpace(req.College)
	if college == "" {
		college = domain.OrganizingCollege
	}

	delta := domain.StatsDelta{
		Total:  int64(len(events)),
		Events: make(map[domain.EventID]int64, len(events)),
	}
	if isCBIT {
		delta.Cbit = int64(len(events))
	} else {
		delta.NonCbit = int64(len(events))
	}

	registrations := make([]*domain.Registration, 0, len(events))
	for _, event := range events {
		registrations = append(registrations, &domain.Registration{
			FullName:    req.FullName,
			RollNumber:  req.RollNumber,
			College:     college,
			Branch:      req.Branch,
			Year:        req.Year,
			Email:       email,
			PhoneNumber: req.PhoneNumber,
			Event:       event,
			Selector:    selector,
		})
		delta.Events[event]++
	}

	return &repository.WriteSet{
		Identity:      identity,
		Registrations: registrations,
		Participant: &domain.Participant{
			College: college,
			IsCBIT:  isCBIT,
		},
		Delta: delta,
	}
}

func unknownResult() *domain.SubmissionResult {
	return &domain.SubmissionResult{
		Success:   false,
		Message:   msgUnknown,
		ErrorKind: domain.ErrorUnknown,
	}
}

// GetStats retrieves the counters document for the stats section
func (s *RegistrationService) GetStats(ctx context.Context) (*dto.StatsResponse, error) {
	stats, err := s.repository.GetStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get stats from repository: %w", err)
	}

	return &dto.StatsResponse{
		TotalRegistrations:  stats.TotalRegistrations,
		UniqueRegistrations: stats.UniqueRegistrations,
		CbitCount:           stats.CbitCount,
		NonCbitCount:        stats.NonCbitCount,
		UniqueCbitCount:     stats.UniqueCbitCount,
		UniqueNonCbitCount:  stats.UniqueNonCbitCount,
		Events:              stats.Events,
	}, nil
}

// ListEvents returns the fixed event catalog
func (s *RegistrationService) ListEvents() []domain.EventInfo {
	return domain.Catalog()
}

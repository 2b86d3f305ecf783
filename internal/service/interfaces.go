package service

import (
	"context"

	"github.com/lohithabandirala/vmedha-2026-sudhee/internal/domain"
	"github.com/lohithabandirala/vmedha-2026-sudhee/internal/dto"
)

// RegistrationServicer defines the interface for registration operations
type RegistrationServicer interface {
	SubmitRegistration(ctx context.Context, req *dto.RegisterRequest) *domain.SubmissionResult
	GetStats(ctx context.Context) (*dto.StatsResponse, error)
	ListEvents() []domain.EventInfo
}

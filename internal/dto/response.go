package dto

import "github.com/lohithabandirala/vmedha-2026-sudhee/internal/domain"

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error" example:"validation_error"`
	Message string `json:"message,omitempty" example:"fullName is required"`
}

// RegisterResponse represents the outcome of a registration submission.
// It keeps the shape the registration form consumes: a success flag, a
// user-facing message and, on failure, a machine-readable error kind.
type RegisterResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Registration successful!"`
	Error   string `json:"error,omitempty" example:"DUPLICATE_ENTRY"`
}

// StatsResponse represents the counters document served to the stats
// section of the site.
type StatsResponse struct {
	TotalRegistrations  int64            `json:"totalRegistrations" example:"128"`
	UniqueRegistrations int64            `json:"uniqueRegistrations" example:"97"`
	CbitCount           int64            `json:"cbitCount" example:"90"`
	NonCbitCount        int64            `json:"nonCbitCount" example:"38"`
	UniqueCbitCount     int64            `json:"uniqueCbitCount" example:"70"`
	UniqueNonCbitCount  int64            `json:"uniqueNonCbitCount" example:"27"`
	Events              map[string]int64 `json:"events"`
}

// EventsResponse lists the event catalog shown on the registration page.
type EventsResponse struct {
	Events []domain.EventInfo `json:"events"`
}

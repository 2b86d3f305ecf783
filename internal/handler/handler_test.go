package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/lohithabandirala/vmedha-2026-sudhee/internal/domain"
	"github.com/lohithabandirala/vmedha-2026-sudhee/internal/dto"
)

// MockRegistrationService is a mock implementation of service.RegistrationServicer
type MockRegistrationService struct {
	mock.Mock
}

func (m *MockRegistrationService) SubmitRegistration(ctx context.Context, req *dto.RegisterRequest) *domain.SubmissionResult {
	args := m.Called(ctx, req)
	return args.Get(0).(*domain.SubmissionResult)
}

func (m *MockRegistrationService) GetStats(ctx context.Context) (*dto.StatsResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.StatsResponse), args.Error(1)
}

func (m *MockRegistrationService) ListEvents() []domain.EventInfo {
	args := m.Called()
	return args.Get(0).([]domain.EventInfo)
}

func newTestHandler(mockService *MockRegistrationService) *Handler {
	return NewHandler(mockService, []string{"*"}, zap.NewNop())
}

func validBody() []byte {
	body, _ := json.Marshal(dto.RegisterRequest{
		FullName:    "Jane Doe",
		RollNumber:  "160123749001",
		College:     "CBIT",
		Branch:      "CSE",
		Year:        "2",
		Email:       "jane.doe@x.com",
		PhoneNumber: "9876543210",
		Event:       "cipherville",
	})
	return body
}

func TestHandler_HealthCheck(t *testing.T) {
	mockService := new(MockRegistrationService)
	handler := newTestHandler(mockService)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "ok", response["status"])
}

func TestHandler_SubmitRegistration_Success(t *testing.T) {
	mockService := new(MockRegistrationService)
	handler := newTestHandler(mockService)

	mockService.On("SubmitRegistration", mock.Anything, mock.AnythingOfType("*dto.RegisterRequest")).
		Return(&domain.SubmissionResult{Success: true, Message: "Registration successful!"})

	req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewReader(validBody()))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response dto.RegisterResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.True(t, response.Success)
	assert.Equal(t, "Registration successful!", response.Message)
	assert.Empty(t, response.Error)
	mockService.AssertExpectations(t)
}

func TestHandler_SubmitRegistration_DuplicateEntry(t *testing.T) {
	mockService := new(MockRegistrationService)
	handler := newTestHandler(mockService)

	mockService.On("SubmitRegistration", mock.Anything, mock.AnythingOfType("*dto.RegisterRequest")).
		Return(&domain.SubmissionResult{
			Success:   false,
			Message:   "This phone number (9876543210) is already registered for this event!",
			ErrorKind: domain.ErrorDuplicateEntry,
		})

	req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewReader(validBody()))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)

	var response dto.RegisterResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.False(t, response.Success)
	assert.Equal(t, "DUPLICATE_ENTRY", response.Error)
	assert.Contains(t, response.Message, "9876543210")
}

func TestHandler_SubmitRegistration_AlreadyRegistered(t *testing.T) {
	mockService := new(MockRegistrationService)
	handler := newTestHandler(mockService)

	mockService.On("SubmitRegistration", mock.Anything, mock.AnythingOfType("*dto.RegisterRequest")).
		Return(&domain.SubmissionResult{
			Success:   false,
			Message:   "You have already registered for this event with this email!",
			ErrorKind: domain.ErrorAlreadyRegistered,
		})

	req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewReader(validBody()))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)

	var response dto.RegisterResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "ALREADY_REGISTERED", response.Error)
}

func TestHandler_SubmitRegistration_UnknownError(t *testing.T) {
	mockService := new(MockRegistrationService)
	handler := newTestHandler(mockService)

	mockService.On("SubmitRegistration", mock.Anything, mock.AnythingOfType("*dto.RegisterRequest")).
		Return(&domain.SubmissionResult{
			Success:   false,
			Message:   "Something went wrong. Please try again.",
			ErrorKind: domain.ErrorUnknown,
		})

	req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewReader(validBody()))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHandler_SubmitRegistration_InvalidJSON(t *testing.T) {
	mockService := new(MockRegistrationService)
	handler := newTestHandler(mockService)

	invalidJSON := []byte(`{"fullName": "Jane", invalid}`)
	req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewReader(invalidJSON))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response dto.ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "validation_error", response.Error)
	mockService.AssertNotCalled(t, "SubmitRegistration")
}

func TestHandler_SubmitRegistration_RejectsBadFields(t *testing.T) {
	mockService := new(MockRegistrationService)
	handler := newTestHandler(mockService)

	cases := map[string]dto.RegisterRequest{
		"short name": {
			FullName: "Jo", RollNumber: "1", Branch: "CSE", Year: "1",
			Email: "jo@x.com", PhoneNumber: "9876543210", Event: "cipherville",
		},
		"bad email": {
			FullName: "Jane Doe", RollNumber: "1", Branch: "CSE", Year: "1",
			Email: "not-an-email", PhoneNumber: "9876543210", Event: "cipherville",
		},
		"short phone": {
			FullName: "Jane Doe", RollNumber: "1", Branch: "CSE", Year: "1",
			Email: "jane@x.com", PhoneNumber: "12345", Event: "cipherville",
		},
		"unknown event": {
			FullName: "Jane Doe", RollNumber: "1", Branch: "CSE", Year: "1",
			Email: "jane@x.com", PhoneNumber: "9876543210", Event: "hackathon",
		},
		"bad year": {
			FullName: "Jane Doe", RollNumber: "1", Branch: "CSE", Year: "5",
			Email: "jane@x.com", PhoneNumber: "9876543210", Event: "cipherville",
		},
	}

	for name, body := range cases {
		payload, _ := json.Marshal(body)
		req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, "case %q should be rejected", name)
	}
	mockService.AssertNotCalled(t, "SubmitRegistration")
}

func TestHandler_GetStats(t *testing.T) {
	mockService := new(MockRegistrationService)
	handler := newTestHandler(mockService)

	mockService.On("GetStats", mock.Anything).Return(&dto.StatsResponse{
		TotalRegistrations:  12,
		UniqueRegistrations: 9,
		Events:              map[string]int64{"cipherville": 5},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/stats", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response dto.StatsResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, int64(12), response.TotalRegistrations)
	assert.Equal(t, int64(5), response.Events["cipherville"])
}

func TestHandler_GetStats_ServiceError(t *testing.T) {
	mockService := new(MockRegistrationService)
	handler := newTestHandler(mockService)

	mockService.On("GetStats", mock.Anything).Return(nil, errors.New("store unavailable"))

	req := httptest.NewRequest(http.MethodGet, "/stats", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var response dto.ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "internal_error", response.Error)
}

func TestHandler_ListEvents(t *testing.T) {
	mockService := new(MockRegistrationService)
	handler := newTestHandler(mockService)

	mockService.On("ListEvents").Return(domain.Catalog())

	req := httptest.NewRequest(http.MethodGet, "/events", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response dto.EventsResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Len(t, response.Events, 4)
}

package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"patient-portal/internal/domain"
	"patient-portal/internal/repository"
	"patient-portal/internal/validation"
)

// AuthorizationService handles prior-authorization requests.
type AuthorizationService interface {
	CreateRequest(ctx context.Context, in validation.AuthorizationInput) (*domain.PriorAuthorization, error)
	ListRequests(ctx context.Context, filter domain.AuthorizationFilter) ([]domain.PriorAuthorization, error)
}

type authorizationService struct {
	requests repository.AuthorizationRepository
}

func NewAuthorizationService(requests repository.AuthorizationRepository) AuthorizationService {
	return &authorizationService{requests: requests}
}

func (s *authorizationService) CreateRequest(ctx context.Context, in validation.AuthorizationInput) (*domain.PriorAuthorization, error) {
	status := domain.RequestStatus(in.RequestStatus)
	if !status.Valid() {
		return nil, validation.NewError(validation.FieldError{Field: "requestStatus", Message: "must be one of: APPROVED, PENDING, DENIED"})
	}

	req := &domain.PriorAuthorization{
		ID:               uuid.NewString(),
		PatientID:        in.PatientID,
		TreatmentDetails: in.TreatmentDetails,
		RequestStatus:    status,
		LabResults:       in.LabResults,
		InsurancePlan:    in.InsurancePlan,
		DiagnosisCode:    in.DiagnosisCode,
		DoctorNote:       in.DoctorNote,
	}
	if in.DateOfService != nil {
		d, err := validation.ParseDate(*in.DateOfService)
		if err != nil {
			return nil, validation.NewError(validation.FieldError{Field: "dateOfService", Message: "must be a date (YYYY-MM-DD)"})
		}
		req.DateOfService = &d
	}

	if err := s.requests.Create(ctx, req); err != nil {
		return nil, fmt.Errorf("create prior authorization: %w", err)
	}
	return req, nil
}

func (s *authorizationService) ListRequests(ctx context.Context, filter domain.AuthorizationFilter) ([]domain.PriorAuthorization, error) {
	requests, err := s.requests.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list prior authorizations: %w", err)
	}
	return requests, nil
}

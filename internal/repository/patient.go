package repository

import (
	"context"

	"patient-portal/internal/domain"
)

// PatientRepository exposes persistence operations for Patient records.
type PatientRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, patient *domain.Patient) error
	Get(ctx context.Context, id string) (*domain.Patient, error)
	List(ctx context.Context, filter domain.PatientFilter) ([]domain.Patient, error)
}

// AuthorizationRepository exposes persistence operations for prior-authorization requests.
type AuthorizationRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, req *domain.PriorAuthorization) error
	List(ctx context.Context, filter domain.AuthorizationFilter) ([]domain.PriorAuthorization, error)
}

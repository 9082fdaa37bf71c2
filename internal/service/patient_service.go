package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"patient-portal/internal/domain"
	"patient-portal/internal/repository"
	"patient-portal/internal/validation"
)

// ErrPatientNotFound is returned when a patient id does not resolve.
var ErrPatientNotFound = errors.New("patient not found")

// PatientService coordinates patient record operations.
type PatientService interface {
	CreatePatient(ctx context.Context, in validation.PatientInput) (*domain.Patient, error)
	GetPatient(ctx context.Context, id string) (*domain.Patient, error)
	ListPatients(ctx context.Context, filter domain.PatientFilter) ([]domain.Patient, error)
}

type patientService struct {
	patients repository.PatientRepository
}

func NewPatientService(patients repository.PatientRepository) PatientService {
	return &patientService{patients: patients}
}

func (s *patientService) CreatePatient(ctx context.Context, in validation.PatientInput) (*domain.Patient, error) {
	if in.Age == nil {
		return nil, validation.NewError(validation.FieldError{Field: "age", Message: "is required"})
	}

	patient := &domain.Patient{
		ID:             uuid.NewString(),
		Name:           in.Name,
		Age:            *in.Age,
		Condition:      in.Condition,
		Email:          in.Email,
		Phone:          in.Phone,
		Address:        in.Address,
		MedicalHistory: in.MedicalHistory,
		TreatmentPlan:  in.TreatmentPlan,
	}
	if err := s.patients.Create(ctx, patient); err != nil {
		return nil, fmt.Errorf("create patient: %w", err)
	}
	return patient, nil
}

func (s *patientService) GetPatient(ctx context.Context, id string) (*domain.Patient, error) {
	patient, err := s.patients.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPatientNotFound
		}
		return nil, fmt.Errorf("get patient: %w", err)
	}
	return patient, nil
}

func (s *patientService) ListPatients(ctx context.Context, filter domain.PatientFilter) ([]domain.Patient, error) {
	patients, err := s.patients.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}
	return patients, nil
}

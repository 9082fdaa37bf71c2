package domain

import "time"

type RequestStatus string

const (
	RequestStatusApproved RequestStatus = "APPROVED"
	RequestStatusPending  RequestStatus = "PENDING"
	RequestStatusDenied   RequestStatus = "DENIED"
)

// Valid reports whether s is one of the known request statuses.
func (s RequestStatus) Valid() bool {
	switch s {
	case RequestStatusApproved, RequestStatusPending, RequestStatusDenied:
		return true
	}
	return false
}

// PriorAuthorization is a prior-authorization request submitted for a patient's treatment.
type PriorAuthorization struct {
	ID               string
	PatientID        string
	TreatmentDetails string
	RequestStatus    RequestStatus
	LabResults       *string
	InsurancePlan    *string
	DateOfService    *time.Time
	DiagnosisCode    *string
	DoctorNote       *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// AuthorizationFilter narrows prior-authorization listings.
type AuthorizationFilter struct {
	PatientID string
	Status    RequestStatus
}

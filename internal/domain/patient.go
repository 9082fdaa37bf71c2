package domain

import "time"

// Patient is a person whose care is tracked by the portal.
type Patient struct {
	ID             string
	Name           string
	Age            int
	Condition      string
	Email          *string
	Phone          *string
	Address        *string
	MedicalHistory *string
	TreatmentPlan  *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// PatientFilter narrows patient listings. Zero values disable a criterion.
type PatientFilter struct {
	Search string
	MinAge *int
	MaxAge *int
}

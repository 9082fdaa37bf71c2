package validation

import "strings"

type LoginInput struct {
	Email    string `json:"email" validate:"email"`
	Password string `json:"password" validate:"min=6"`
}

type SignupInput struct {
	Name     string `json:"name" validate:"min=2"`
	Email    string `json:"email" validate:"email"`
	Password string `json:"password" validate:"min=6"`
}

type PatientInput struct {
	Name           string  `json:"name" validate:"required"`
	Age            *int    `json:"age" validate:"required,gt=0"`
	Condition      string  `json:"condition" validate:"required"`
	Email          *string `json:"email" validate:"omitempty,email"`
	Phone          *string `json:"phone"`
	Address        *string `json:"address"`
	MedicalHistory *string `json:"medicalHistory"`
	TreatmentPlan  *string `json:"treatmentPlan"`
}

type AuthorizationInput struct {
	PatientID        string  `json:"patientId" validate:"required"`
	TreatmentDetails string  `json:"treatmentDetails" validate:"required"`
	RequestStatus    string  `json:"requestStatus" validate:"required,oneof=APPROVED PENDING DENIED"`
	LabResults       *string `json:"labResults"`
	InsurancePlan    *string `json:"insurancePlan"`
	DateOfService    *string `json:"dateOfService" validate:"omitempty,date"`
	DiagnosisCode    *string `json:"diagnosisCode"`
	DoctorNote       *string `json:"doctorNote"`
}

// Normalize trims surrounding whitespace. Decode calls it before validating.
func (in *LoginInput) Normalize() {
	in.Email = strings.TrimSpace(in.Email)
}

func (in *SignupInput) Normalize() {
	in.Email = strings.TrimSpace(in.Email)
	in.Name = strings.TrimSpace(in.Name)
}

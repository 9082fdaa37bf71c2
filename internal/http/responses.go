package http

import (
	"time"

	"patient-portal/internal/domain"
)

type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type SessionResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type PatientResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Age            int     `json:"age"`
	Condition      string  `json:"condition"`
	Email          *string `json:"email"`
	Phone          *string `json:"phone"`
	Address        *string `json:"address"`
	MedicalHistory *string `json:"medicalHistory"`
	TreatmentPlan  *string `json:"treatmentPlan"`
	CreatedAt      string  `json:"createdAt"`
	UpdatedAt      string  `json:"updatedAt"`
}

type AuthorizationResponse struct {
	ID               string               `json:"id"`
	PatientID        string               `json:"patientId"`
	TreatmentDetails string               `json:"treatmentDetails"`
	RequestStatus    domain.RequestStatus `json:"requestStatus"`
	LabResults       *string              `json:"labResults"`
	InsurancePlan    *string              `json:"insurancePlan"`
	DateOfService    *string              `json:"dateOfService"`
	DiagnosisCode    *string              `json:"diagnosisCode"`
	DoctorNote       *string              `json:"doctorNote"`
	CreatedAt        string               `json:"createdAt"`
	UpdatedAt        string               `json:"updatedAt"`
}

type DocumentResponse struct {
	Key          string  `json:"key"`
	Name         string  `json:"name"`
	Size         int64   `json:"size"`
	LastModified *string `json:"lastModified,omitempty"`
	URL          string  `json:"url,omitempty"`
}

func userToResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}
}

func patientToResponse(p domain.Patient) PatientResponse {
	return PatientResponse{
		ID:             p.ID,
		Name:           p.Name,
		Age:            p.Age,
		Condition:      p.Condition,
		Email:          p.Email,
		Phone:          p.Phone,
		Address:        p.Address,
		MedicalHistory: p.MedicalHistory,
		TreatmentPlan:  p.TreatmentPlan,
		CreatedAt:      p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      p.UpdatedAt.Format(time.RFC3339),
	}
}

func authorizationToResponse(r domain.PriorAuthorization) AuthorizationResponse {
	resp := AuthorizationResponse{
		ID:               r.ID,
		PatientID:        r.PatientID,
		TreatmentDetails: r.TreatmentDetails,
		RequestStatus:    r.RequestStatus,
		LabResults:       r.LabResults,
		InsurancePlan:    r.InsurancePlan,
		DiagnosisCode:    r.DiagnosisCode,
		DoctorNote:       r.DoctorNote,
		CreatedAt:        r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        r.UpdatedAt.Format(time.RFC3339),
	}
	if r.DateOfService != nil {
		v := r.DateOfService.UTC().Format(time.RFC3339)
		resp.DateOfService = &v
	}
	return resp
}

func documentToResponse(d domain.PatientDocument) DocumentResponse {
	resp := DocumentResponse{
		Key:  d.Key,
		Name: d.Name,
		Size: d.Size,
		URL:  d.URL,
	}
	if d.LastModified != nil && !d.LastModified.IsZero() {
		v := d.LastModified.Format(time.RFC3339)
		resp.LastModified = &v
	}
	return resp
}

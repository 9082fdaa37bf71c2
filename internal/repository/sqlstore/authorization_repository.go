package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"patient-portal/internal/domain"
	"patient-portal/internal/repository"
)

const (
	createAuthorizationsTable = `
CREATE TABLE IF NOT EXISTS prior_authorizations (
	id TEXT PRIMARY KEY,
	patient_id TEXT NOT NULL,
	treatment_details TEXT NOT NULL,
	request_status TEXT NOT NULL,
	lab_results TEXT NULL,
	insurance_plan TEXT NULL,
	date_of_service TIMESTAMP NULL,
	diagnosis_code TEXT NULL,
	doctor_note TEXT NULL,
	created_at TIMESTAMP NOT NULL,
	updated_at TIMESTAMP NOT NULL
);
`
	createAuthorizationsPatientIndex = `
CREATE INDEX IF NOT EXISTS idx_prior_authorizations_patient_id ON prior_authorizations(patient_id);
`
)

type AuthorizationRepository struct {
	db *DB
}

func NewAuthorizationRepository(db *DB) repository.AuthorizationRepository {
	return &AuthorizationRepository{db: db}
}

func (r *AuthorizationRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createAuthorizationsTable); err != nil {
		return fmt.Errorf("create prior_authorizations table: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, createAuthorizationsPatientIndex); err != nil {
		return fmt.Errorf("create prior_authorizations index: %w", err)
	}
	return nil
}

func (r *AuthorizationRepository) Create(ctx context.Context, req *domain.PriorAuthorization) error {
	now := time.Now().UTC()
	req.CreatedAt = now
	req.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, r.db.rebind(`
INSERT INTO prior_authorizations (id, patient_id, treatment_details, request_status, lab_results, insurance_plan, date_of_service, diagnosis_code, doctor_note, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`),
		req.ID,
		req.PatientID,
		req.TreatmentDetails,
		string(req.RequestStatus),
		nullString(req.LabResults),
		nullString(req.InsurancePlan),
		nullTime(req.DateOfService),
		nullString(req.DiagnosisCode),
		nullString(req.DoctorNote),
		req.CreatedAt,
		req.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert prior authorization %s: %w", req.ID, repository.ErrDuplicate)
		}
		return fmt.Errorf("insert prior authorization: %w", err)
	}
	return nil
}

func (r *AuthorizationRepository) List(ctx context.Context, filter domain.AuthorizationFilter) ([]domain.PriorAuthorization, error) {
	var (
		conds []string
		args  []any
	)
	if filter.PatientID != "" {
		conds = append(conds, `patient_id = ?`)
		args = append(args, filter.PatientID)
	}
	if filter.Status != "" {
		conds = append(conds, `request_status = ?`)
		args = append(args, string(filter.Status))
	}

	query := `
SELECT id, patient_id, treatment_details, request_status, lab_results, insurance_plan, date_of_service, diagnosis_code, doctor_note, created_at, updated_at
FROM prior_authorizations`
	if len(conds) > 0 {
		query += "\nWHERE " + strings.Join(conds, " AND ")
	}
	query += "\nORDER BY created_at ASC, id ASC"

	rows, err := r.db.QueryContext(ctx, r.db.rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("query prior authorizations: %w", err)
	}
	defer rows.Close()

	requests := []domain.PriorAuthorization{}
	for rows.Next() {
		var (
			req                                        domain.PriorAuthorization
			status                                     string
			labResults, insurancePlan, diagnosis, note sql.NullString
			dateOfService                              sql.NullTime
		)
		if err := rows.Scan(
			&req.ID,
			&req.PatientID,
			&req.TreatmentDetails,
			&status,
			&labResults,
			&insurancePlan,
			&dateOfService,
			&diagnosis,
			&note,
			&req.CreatedAt,
			&req.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan prior authorization: %w", err)
		}
		req.RequestStatus = domain.RequestStatus(status)
		req.LabResults = stringPtr(labResults)
		req.InsurancePlan = stringPtr(insurancePlan)
		req.DateOfService = timePtr(dateOfService)
		req.DiagnosisCode = stringPtr(diagnosis)
		req.DoctorNote = stringPtr(note)
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate prior authorizations: %w", err)
	}
	return requests, nil
}

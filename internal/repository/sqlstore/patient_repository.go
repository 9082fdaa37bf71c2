package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"patient-portal/internal/domain"
	"patient-portal/internal/repository"
)

const createPatientsTable = `
CREATE TABLE IF NOT EXISTS patients (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	age INTEGER NOT NULL,
	condition TEXT NOT NULL,
	email TEXT NULL,
	phone TEXT NULL,
	address TEXT NULL,
	medical_history TEXT NULL,
	treatment_plan TEXT NULL,
	created_at TIMESTAMP NOT NULL,
	updated_at TIMESTAMP NOT NULL
);
`

const selectPatientColumns = `
SELECT id, name, age, condition, email, phone, address, medical_history, treatment_plan, created_at, updated_at
FROM patients`

type PatientRepository struct {
	db *DB
}

func NewPatientRepository(db *DB) repository.PatientRepository {
	return &PatientRepository{db: db}
}

func (r *PatientRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createPatientsTable); err != nil {
		return fmt.Errorf("create patients table: %w", err)
	}
	return nil
}

func (r *PatientRepository) Create(ctx context.Context, patient *domain.Patient) error {
	now := time.Now().UTC()
	patient.CreatedAt = now
	patient.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, r.db.rebind(`
INSERT INTO patients (id, name, age, condition, email, phone, address, medical_history, treatment_plan, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`),
		patient.ID,
		patient.Name,
		patient.Age,
		patient.Condition,
		nullString(patient.Email),
		nullString(patient.Phone),
		nullString(patient.Address),
		nullString(patient.MedicalHistory),
		nullString(patient.TreatmentPlan),
		patient.CreatedAt,
		patient.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert patient %s: %w", patient.ID, repository.ErrDuplicate)
		}
		return fmt.Errorf("insert patient: %w", err)
	}
	return nil
}

func (r *PatientRepository) Get(ctx context.Context, id string) (*domain.Patient, error) {
	row := r.db.QueryRowContext(ctx, r.db.rebind(selectPatientColumns+`
WHERE id = ?`), id)
	patient, err := scanPatient(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return patient, nil
}

func (r *PatientRepository) List(ctx context.Context, filter domain.PatientFilter) ([]domain.Patient, error) {
	var (
		conds []string
		args  []any
	)
	if s := strings.TrimSpace(filter.Search); s != "" {
		conds = append(conds, `LOWER(name) LIKE ? ESCAPE '\'`)
		args = append(args, likePattern(s))
	}
	if filter.MinAge != nil {
		conds = append(conds, `age >= ?`)
		args = append(args, *filter.MinAge)
	}
	if filter.MaxAge != nil {
		conds = append(conds, `age <= ?`)
		args = append(args, *filter.MaxAge)
	}

	query := selectPatientColumns
	if len(conds) > 0 {
		query += "\nWHERE " + strings.Join(conds, " AND ")
	}
	query += "\nORDER BY created_at ASC, id ASC"

	rows, err := r.db.QueryContext(ctx, r.db.rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("query patients: %w", err)
	}
	defer rows.Close()

	patients := []domain.Patient{}
	for rows.Next() {
		patient, err := scanPatient(rows)
		if err != nil {
			return nil, err
		}
		patients = append(patients, *patient)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate patients: %w", err)
	}
	return patients, nil
}

func scanPatient(row scanner) (*domain.Patient, error) {
	var (
		patient                                          domain.Patient
		email, phone, address, medicalHistory, treatment sql.NullString
	)
	if err := row.Scan(
		&patient.ID,
		&patient.Name,
		&patient.Age,
		&patient.Condition,
		&email,
		&phone,
		&address,
		&medicalHistory,
		&treatment,
		&patient.CreatedAt,
		&patient.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan patient: %w", err)
	}
	patient.Email = stringPtr(email)
	patient.Phone = stringPtr(phone)
	patient.Address = stringPtr(address)
	patient.MedicalHistory = stringPtr(medicalHistory)
	patient.TreatmentPlan = stringPtr(treatment)
	return &patient, nil
}

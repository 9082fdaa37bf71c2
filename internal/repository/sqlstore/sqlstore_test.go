package sqlstore

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"patient-portal/internal/domain"
	"patient-portal/internal/repository"
)

func newTestRepos(t *testing.T) Repositories {
	t.Helper()
	db, err := Open(DriverSQLite, filepath.Join(t.TempDir(), "portal.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	repos := NewRepositories(db)
	if err := repos.Init(context.Background()); err != nil {
		t.Fatalf("init: %v", err)
	}
	// idempotent
	if err := repos.Init(context.Background()); err != nil {
		t.Fatalf("second init: %v", err)
	}
	return repos
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func TestUserRepository_CreateAndGet(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()

	user := &domain.User{ID: uuid.NewString(), Name: "Jane", Email: "jane@example.com", PasswordHash: "hash"}
	if err := repos.Users.Create(ctx, user); err != nil {
		t.Fatalf("create: %v", err)
	}
	if user.CreatedAt.IsZero() {
		t.Error("expected created_at to be set")
	}

	byEmail, err := repos.Users.GetByEmail(ctx, "jane@example.com")
	if err != nil {
		t.Fatalf("get by email: %v", err)
	}
	if byEmail.ID != user.ID || byEmail.PasswordHash != "hash" || byEmail.Name != "Jane" {
		t.Errorf("unexpected user %+v", byEmail)
	}

	byID, err := repos.Users.GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if byID.Email != user.Email {
		t.Errorf("expected %q, got %q", user.Email, byID.Email)
	}
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()

	first := &domain.User{ID: uuid.NewString(), Name: "Jane", Email: "jane@example.com", PasswordHash: "h1"}
	if err := repos.Users.Create(ctx, first); err != nil {
		t.Fatalf("create: %v", err)
	}
	second := &domain.User{ID: uuid.NewString(), Name: "Janet", Email: "jane@example.com", PasswordHash: "h2"}
	err := repos.Users.Create(ctx, second)
	if !errors.Is(err, repository.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}

	if _, err := repos.Users.GetByID(ctx, second.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected second user to be absent, got %v", err)
	}
}

func TestUserRepository_NotFound(t *testing.T) {
	repos := newTestRepos(t)
	if _, err := repos.Users.GetByEmail(context.Background(), "nobody@example.com"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPatientRepository_CreateGetList(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()

	jane := &domain.Patient{
		ID:        uuid.NewString(),
		Name:      "Jane Doe",
		Age:       34,
		Condition: "asthma",
		Email:     strPtr("jane@example.com"),
	}
	john := &domain.Patient{ID: uuid.NewString(), Name: "John Smith", Age: 61, Condition: "diabetes"}
	ann := &domain.Patient{ID: uuid.NewString(), Name: "Ann 100%_Janeway", Age: 19, Condition: "fracture"}
	for _, p := range []*domain.Patient{jane, john, ann} {
		if err := repos.Patients.Create(ctx, p); err != nil {
			t.Fatalf("create %s: %v", p.Name, err)
		}
	}

	got, err := repos.Patients.Get(ctx, jane.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Jane Doe" || got.Age != 34 || got.Condition != "asthma" {
		t.Errorf("unexpected patient %+v", got)
	}
	if got.Email == nil || *got.Email != "jane@example.com" {
		t.Errorf("expected email to round-trip, got %v", got.Email)
	}
	if got.Phone != nil {
		t.Errorf("expected nil phone, got %v", *got.Phone)
	}

	if _, err := repos.Patients.Get(ctx, "missing"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	tests := []struct {
		name   string
		filter domain.PatientFilter
		want   []string
	}{
		{"all", domain.PatientFilter{}, []string{jane.ID, john.ID, ann.ID}},
		{"search case-insensitive", domain.PatientFilter{Search: "JANE"}, []string{jane.ID, ann.ID}},
		{"search wildcard literal", domain.PatientFilter{Search: "100%_"}, []string{ann.ID}},
		{"min age", domain.PatientFilter{MinAge: intPtr(34)}, []string{jane.ID, john.ID}},
		{"age range", domain.PatientFilter{MinAge: intPtr(20), MaxAge: intPtr(60)}, []string{jane.ID}},
		{"no match", domain.PatientFilter{Search: "zzz"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			patients, err := repos.Patients.List(ctx, tt.filter)
			if err != nil {
				t.Fatalf("list: %v", err)
			}
			if patients == nil {
				t.Fatal("expected non-nil slice")
			}
			assertIDs(t, tt.want, patientIDs(patients))
		})
	}
}

func TestAuthorizationRepository_CreateList(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()

	dos := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	pending := &domain.PriorAuthorization{
		ID:               uuid.NewString(),
		PatientID:        "p1",
		TreatmentDetails: "MRI",
		RequestStatus:    domain.RequestStatusPending,
		DateOfService:    &dos,
		DiagnosisCode:    strPtr("J45.909"),
	}
	approved := &domain.PriorAuthorization{
		ID:               uuid.NewString(),
		PatientID:        "p2",
		TreatmentDetails: "Physical therapy",
		RequestStatus:    domain.RequestStatusApproved,
	}
	for _, r := range []*domain.PriorAuthorization{pending, approved} {
		if err := repos.Authorizations.Create(ctx, r); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	all, err := repos.Authorizations.List(ctx, domain.AuthorizationFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 requests, got %d", len(all))
	}

	byPatient, err := repos.Authorizations.List(ctx, domain.AuthorizationFilter{PatientID: "p1"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(byPatient) != 1 {
		t.Fatalf("expected 1 request, got %d", len(byPatient))
	}
	got := byPatient[0]
	if got.RequestStatus != domain.RequestStatusPending || got.TreatmentDetails != "MRI" {
		t.Errorf("unexpected request %+v", got)
	}
	if got.DateOfService == nil || !got.DateOfService.Equal(dos) {
		t.Errorf("expected date of service %v, got %v", dos, got.DateOfService)
	}
	if got.DiagnosisCode == nil || *got.DiagnosisCode != "J45.909" {
		t.Errorf("unexpected diagnosis code %v", got.DiagnosisCode)
	}
	if got.LabResults != nil {
		t.Errorf("expected nil lab results")
	}

	byStatus, err := repos.Authorizations.List(ctx, domain.AuthorizationFilter{Status: domain.RequestStatusDenied})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(byStatus) != 0 || byStatus == nil {
		t.Fatalf("expected empty non-nil slice, got %v", byStatus)
	}
}

func TestRebind(t *testing.T) {
	pg := &DB{driver: DriverPostgres}
	if got := pg.rebind("SELECT * FROM t WHERE a = ? AND b = ?"); got != "SELECT * FROM t WHERE a = $1 AND b = $2" {
		t.Errorf("unexpected postgres query %q", got)
	}
	lite := &DB{driver: DriverSQLite}
	if got := lite.rebind("a = ?"); got != "a = ?" {
		t.Errorf("unexpected sqlite query %q", got)
	}
}

func TestOpen_UnknownDriver(t *testing.T) {
	if _, err := Open("oracle", "x"); err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}

func patientIDs(patients []domain.Patient) []string {
	ids := make([]string, len(patients))
	for i := range patients {
		ids[i] = patients[i].ID
	}
	return ids
}

func assertIDs(t *testing.T, want, got []string) {
	t.Helper()
	if len(want) != len(got) {
		t.Fatalf("expected %d ids, got %d (%v)", len(want), len(got), got)
	}
	seen := make(map[string]bool, len(got))
	for _, id := range got {
		seen[id] = true
	}
	for _, id := range want {
		if !seen[id] {
			t.Errorf("missing id %s in %v", id, got)
		}
	}
}

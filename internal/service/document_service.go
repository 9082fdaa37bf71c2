package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"patient-portal/internal/domain"
	"patient-portal/internal/repository"
	"patient-portal/internal/storage"
)

// ErrStorageDisabled is returned when no document bucket is configured.
var ErrStorageDisabled = errors.New("document storage is not configured")

const documentURLExpiry = 15 * time.Minute

// DocumentService attaches files to patients.
type DocumentService interface {
	Upload(ctx context.Context, patientID, filename, contentType string, body io.Reader) (*domain.PatientDocument, error)
	List(ctx context.Context, patientID string) ([]domain.PatientDocument, error)
}

type documentService struct {
	patients  repository.PatientRepository
	store     storage.Service
	bucket    string
	keyPrefix string
}

// NewDocumentService returns a service that stores documents under keyPrefix in bucket.
// A nil store or empty bucket disables uploads and listings.
func NewDocumentService(patients repository.PatientRepository, store storage.Service, bucket, keyPrefix string) DocumentService {
	return &documentService{
		patients:  patients,
		store:     store,
		bucket:    bucket,
		keyPrefix: strings.Trim(keyPrefix, "/"),
	}
}

func (s *documentService) enabled() bool {
	return s.store != nil && s.bucket != ""
}

func (s *documentService) Upload(ctx context.Context, patientID, filename, contentType string, body io.Reader) (*domain.PatientDocument, error) {
	if !s.enabled() {
		return nil, ErrStorageDisabled
	}
	if err := s.ensurePatient(ctx, patientID); err != nil {
		return nil, err
	}

	name := sanitizeFilename(filename)
	key := s.patientPrefix(patientID) + uuid.NewString() + "-" + name
	obj, err := s.store.Put(ctx, body, storage.PutOptions{
		Bucket:      s.bucket,
		Key:         key,
		ContentType: contentType,
	})
	if err != nil {
		return nil, fmt.Errorf("store document: %w", err)
	}

	doc := &domain.PatientDocument{
		Key:          obj.Key,
		Name:         name,
		Size:         obj.Size,
		LastModified: obj.LastModified,
	}
	if url, err := s.store.GetObjectURL(ctx, s.bucket, obj.Key, documentURLExpiry); err == nil {
		doc.URL = url
	}
	return doc, nil
}

func (s *documentService) List(ctx context.Context, patientID string) ([]domain.PatientDocument, error) {
	if !s.enabled() {
		return nil, ErrStorageDisabled
	}
	if err := s.ensurePatient(ctx, patientID); err != nil {
		return nil, err
	}

	prefix := s.patientPrefix(patientID)
	objects, err := s.store.ListObjects(ctx, s.bucket, prefix)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}

	docs := make([]domain.PatientDocument, 0, len(objects))
	for _, obj := range objects {
		url, err := s.store.GetObjectURL(ctx, s.bucket, obj.Key, documentURLExpiry)
		if err != nil {
			return nil, fmt.Errorf("document url: %w", err)
		}
		docs = append(docs, domain.PatientDocument{
			Key:          obj.Key,
			Name:         documentName(strings.TrimPrefix(obj.Key, prefix)),
			Size:         obj.Size,
			LastModified: obj.LastModified,
			URL:          url,
		})
	}
	return docs, nil
}

func (s *documentService) ensurePatient(ctx context.Context, patientID string) error {
	if _, err := s.patients.Get(ctx, patientID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPatientNotFound
		}
		return fmt.Errorf("get patient: %w", err)
	}
	return nil
}

func (s *documentService) patientPrefix(patientID string) string {
	p := path.Join("patients", patientID) + "/"
	if s.keyPrefix != "" {
		p = s.keyPrefix + "/" + p
	}
	return p
}

func sanitizeFilename(filename string) string {
	name := path.Base(strings.ReplaceAll(filename, `\`, "/"))
	name = strings.Map(func(r rune) rune {
		switch {
		case r == ' ':
			return '_'
		case r < 0x20, r == '/', r == 0x7f:
			return -1
		}
		return r
	}, name)
	if name == "" || name == "." || name == ".." {
		name = "document"
	}
	return name
}

// documentName strips the uuid- prefix added on upload.
func documentName(base string) string {
	if len(base) > 37 && base[36] == '-' {
		if _, err := uuid.Parse(base[:36]); err == nil {
			return base[37:]
		}
	}
	return base
}

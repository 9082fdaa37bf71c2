package domain

import "time"

// PatientDocument is a file attached to a patient and kept in object storage.
type PatientDocument struct {
	Key          string
	Name         string
	Size         int64
	LastModified *time.Time
	URL          string
}

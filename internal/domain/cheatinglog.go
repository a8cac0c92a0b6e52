package domain

import (
	"errors"
	"time"
)

// Validation errors returned by CheatingLog.Validate.
var (
	ErrMissingExamID   = errors.New("exam id is required")
	ErrMissingIdentity = errors.New("student identity (email or username) is required")
)

// CheatingLog is the per-(exam, student) record of aggregated violation
// counts. One record exists per identity key; repeated submissions for the
// same key overwrite the counts rather than creating duplicates.
type CheatingLog struct {
	ExamID                string    `json:"examId"`
	Username              string    `json:"username"`
	Email                 string    `json:"email"`
	NoFaceCount           int       `json:"noFaceCount"`
	MultipleFaceCount     int       `json:"multipleFaceCount"`
	CellPhoneCount        int       `json:"cellPhoneCount"`
	ProhibitedObjectCount int       `json:"prohibitedObjectCount"`
	CreatedAt             time.Time `json:"createdAt"`
	UpdatedAt             time.Time `json:"updatedAt"`
}

// IdentityKey returns the value the record is keyed on within an exam:
// the email when present, otherwise the username.
func (l *CheatingLog) IdentityKey() string {
	if l.Email != "" {
		return l.Email
	}
	return l.Username
}

// Validate checks that the log carries enough identity to be persisted.
func (l *CheatingLog) Validate() error {
	if l.ExamID == "" {
		return ErrMissingExamID
	}
	if l.IdentityKey() == "" {
		return ErrMissingIdentity
	}
	return nil
}

// Count returns the stored count for the given category.
func (l *CheatingLog) Count(c Category) int {
	switch c {
	case NoFace:
		return l.NoFaceCount
	case MultipleFace:
		return l.MultipleFaceCount
	case CellPhone:
		return l.CellPhoneCount
	case ProhibitedObject:
		return l.ProhibitedObjectCount
	}
	return 0
}

// SetCount sets the stored count for the given category.
func (l *CheatingLog) SetCount(c Category, n int) {
	switch c {
	case NoFace:
		l.NoFaceCount = n
	case MultipleFace:
		l.MultipleFaceCount = n
	case CellPhone:
		l.CellPhoneCount = n
	case ProhibitedObject:
		l.ProhibitedObjectCount = n
	}
}

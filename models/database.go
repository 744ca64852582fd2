package models

import "time"

// CheckInRecord is the registry's durable evidence that a student was
// present in a session. At most one row exists per (session_id, student_id);
// the unique index backs the DuplicateCheckIn contract.
type CheckInRecord struct {
	ID          uint      `json:"-" gorm:"primaryKey"`
	SessionID   string    `json:"session_id" gorm:"index;uniqueIndex:idx_session_student"`
	StudentID   string    `json:"student_id" gorm:"uniqueIndex:idx_session_student"`
	StudentName string    `json:"student_name"`
	RecordedAt  time.Time `json:"recorded_at"`
}

// CatalogStudent is a row in the read-only student catalog.
type CatalogStudent struct {
	USN  string `json:"usn"`
	PRN  string `json:"prn"`
	Name string `json:"name"`
}

package database

import (
	"errors"

	"github.com/Sampreeth-sv/smart-attendance-new/models"
)

var ErrStoreUnavailable = errors.New("attendance store not connected")

// SaveSession writes a session row at creation time.
func SaveSession(session models.Session) error {
	GORMDBMutex.Lock()
	defer GORMDBMutex.Unlock()
	if GORMDB == nil {
		return ErrStoreUnavailable
	}
	return GORMDB.Create(&session).Error
}

// MarkSessionStopped flips a persisted session to stopped.
func MarkSessionStopped(sessionID string) error {
	GORMDBMutex.Lock()
	defer GORMDBMutex.Unlock()
	if GORMDB == nil {
		return ErrStoreUnavailable
	}
	return GORMDB.Model(&models.Session{}).
		Where("session_id = ?", sessionID).
		Update("state", models.StateStopped).Error
}

// InsertCheckIn persists one check-in record.
func InsertCheckIn(record *models.CheckInRecord) error {
	GORMDBMutex.Lock()
	defer GORMDBMutex.Unlock()
	if GORMDB == nil {
		return ErrStoreUnavailable
	}
	return GORMDB.Create(record).Error
}

// CheckInsForSession returns the persisted records for a session, oldest
// first, insert id breaking timestamp ties.
func CheckInsForSession(sessionID string) ([]models.CheckInRecord, error) {
	GORMDBMutex.Lock()
	defer GORMDBMutex.Unlock()
	if GORMDB == nil {
		return nil, ErrStoreUnavailable
	}
	var records []models.CheckInRecord
	err := GORMDB.Where("session_id = ?", sessionID).
		Order("recorded_at ASC, id ASC").
		Find(&records).Error
	return records, err
}

// HistoryForStudent returns a student's check-ins across all sessions,
// newest first.
func HistoryForStudent(studentID string) ([]models.CheckInRecord, error) {
	GORMDBMutex.Lock()
	defer GORMDBMutex.Unlock()
	if GORMDB == nil {
		return nil, ErrStoreUnavailable
	}
	var records []models.CheckInRecord
	err := GORMDB.Where("student_id = ?", studentID).
		Order("recorded_at DESC").
		Find(&records).Error
	return records, err
}

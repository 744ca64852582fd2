package sessions

import (
	"log"
	"time"

	"github.com/Sampreeth-sv/smart-attendance-new/database"
	"github.com/Sampreeth-sv/smart-attendance-new/models"
)

// SubmitCheckIn records a student's presence in a session. The session
// state check and the duplicate check happen under the registry mutex, so a
// check-in that reaches the registry before a stop is processed wins, and
// one that arrives after loses with ErrSessionClosed.
func (r *Registry) SubmitCheckIn(sessionID, studentID string) (models.CheckInRecord, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	entry, exists := r.sessions[sessionID]
	if !exists {
		return models.CheckInRecord{}, ErrNotFound
	}
	if entry.session.State != models.StateActive {
		return models.CheckInRecord{}, ErrSessionClosed
	}
	if entry.seen[studentID] {
		return models.CheckInRecord{}, ErrDuplicateCheckIn
	}

	record := models.CheckInRecord{
		SessionID:   sessionID,
		StudentID:   studentID,
		StudentName: lookupStudentName(studentID),
		RecordedAt:  time.Now(),
	}
	entry.seen[studentID] = true
	entry.records = append(entry.records, record)

	if database.Connected() {
		if err := database.InsertCheckIn(&record); err != nil {
			log.Printf("Failed to persist check-in for %s in session %s: %v", studentID, sessionID, err)
		}
	}

	log.Println(studentID, "marked present in session", sessionID)
	return record, nil
}

// Roster returns the session's check-in records ordered by recorded_at
// ascending. Records are appended under the mutex, so arrival order and
// timestamp order coincide and no re-sort happens here. Stopped sessions
// still serve their roster; only unknown ids fail.
func (r *Registry) Roster(sessionID string) ([]models.CheckInRecord, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	entry, exists := r.sessions[sessionID]
	if !exists {
		return nil, ErrNotFound
	}

	records := make([]models.CheckInRecord, len(entry.records))
	copy(records, entry.records)
	return records, nil
}

func lookupStudentName(studentID string) string {
	if !database.Connected() {
		return ""
	}
	student, err := database.LookupStudent(studentID)
	if err != nil {
		return ""
	}
	return student.Name
}

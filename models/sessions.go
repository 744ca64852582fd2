package models

import "time"

type SessionState string

const (
	// StateInactive only ever describes a client's local view. The
	// registry never stores an inactive session.
	StateInactive SessionState = "inactive"
	StateActive   SessionState = "active"
	StateStopped  SessionState = "stopped"
)

// Session is an attendance window owned by the registry. Subject and
// TeacherID are immutable after creation.
type Session struct {
	ID        string       `json:"session_id" gorm:"primaryKey;column:session_id"`
	Subject   string       `json:"subject"`
	TeacherID string       `json:"teacher_id"`
	State     SessionState `json:"state"`
	CreatedAt time.Time    `json:"created_at"`
}

// Subjects is the fixed catalog a teacher picks from when starting a session.
var Subjects = []string{
	"Software Engineering and Project Management",
	"Computer Networks",
	"Theory of Computation",
	"Web Technology Lab",
	"Artificial Intelligence",
	"Research Methodology and IPR",
}

func ValidSubject(subject string) bool {
	for _, s := range Subjects {
		if s == subject {
			return true
		}
	}
	return false
}

package sessions

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Sampreeth-sv/smart-attendance-new/database"
	"github.com/Sampreeth-sv/smart-attendance-new/models"
)

type sessionEntry struct {
	session models.Session
	records []models.CheckInRecord
	seen    map[string]bool // student ids already checked in
}

// Registry is the server-side authority for attendance sessions. All state
// transitions and check-ins are serialized under one mutex, so a stop and a
// submit racing for the same session resolve in whichever order they reach
// the registry. Durable rows are written through to sqlite when a store is
// connected; the in-memory map stays authoritative for live decisions.
type Registry struct {
	mutex    sync.Mutex
	sessions map[string]*sessionEntry // session id -> entry
}

func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[string]*sessionEntry),
	}
}

// Create opens a new active session for the given subject and teacher.
// A teacher may hold only one active session at a time.
func (r *Registry) Create(subject, teacherID string) (models.Session, error) {
	if subject == "" || !models.ValidSubject(subject) {
		return models.Session{}, ErrInvalidInput
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	for _, entry := range r.sessions {
		if entry.session.TeacherID == teacherID && entry.session.State == models.StateActive {
			return models.Session{}, ErrInvalidState
		}
	}

	session := models.Session{
		ID:        uuid.NewString(),
		Subject:   subject,
		TeacherID: teacherID,
		State:     models.StateActive,
		CreatedAt: time.Now(),
	}
	r.sessions[session.ID] = &sessionEntry{
		session: session,
		seen:    make(map[string]bool),
	}

	if database.Connected() {
		if err := database.SaveSession(session); err != nil {
			log.Printf("Failed to persist session %s: %v", session.ID, err)
		}
	}

	log.Println("Created new session with ID:", session.ID)
	return session, nil
}

// Stop terminates an active session. Stopped is terminal: resuming means
// creating a fresh session with a new id.
func (r *Registry) Stop(sessionID string) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	entry, exists := r.sessions[sessionID]
	if !exists {
		return ErrNotFound
	}
	if entry.session.State != models.StateActive {
		return ErrInvalidState
	}
	entry.session.State = models.StateStopped

	if database.Connected() {
		if err := database.MarkSessionStopped(sessionID); err != nil {
			log.Printf("Failed to persist stop for session %s: %v", sessionID, err)
		}
	}

	log.Println("Stopped session with ID:", sessionID)
	return nil
}

// Verify reports whether a scanned session id still accepts check-ins. Used
// by the student side before prompting for a submit.
func (r *Registry) Verify(sessionID string) (models.Session, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	entry, exists := r.sessions[sessionID]
	if !exists {
		return models.Session{}, ErrNotFound
	}
	if entry.session.State != models.StateActive {
		return models.Session{}, ErrSessionClosed
	}
	return entry.session, nil
}

// Get returns a session regardless of state.
func (r *Registry) Get(sessionID string) (models.Session, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	entry, exists := r.sessions[sessionID]
	if !exists {
		return models.Session{}, ErrNotFound
	}
	return entry.session, nil
}

// FindActive returns the most recently created active session, if any.
func (r *Registry) FindActive() (models.Session, bool) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	var found models.Session
	var ok bool
	for _, entry := range r.sessions {
		if entry.session.State != models.StateActive {
			continue
		}
		if !ok || entry.session.CreatedAt.After(found.CreatedAt) {
			found = entry.session
			ok = true
		}
	}
	return found, ok
}

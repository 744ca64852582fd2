package client

import (
	"context"
	"fmt"
	"sync"

	"github.com/Sampreeth-sv/smart-attendance-new/auth"
	"github.com/Sampreeth-sv/smart-attendance-new/models"
	"github.com/Sampreeth-sv/smart-attendance-new/sessions"
	"github.com/Sampreeth-sv/smart-attendance-new/token"
)

// Controller drives the teacher's session lifecycle. It is the sole writer
// of the local "current active session" view; nothing else mutates it.
// One session at a time: a second start while one is active, or while a
// start is still in flight, is rejected locally before any network call.
type Controller struct {
	client *Client

	mutex         sync.Mutex
	state         models.SessionState
	active        *models.Session
	startInFlight bool
}

func NewController(client *Client) *Controller {
	return &Controller{
		client: client,
		state:  models.StateInactive,
	}
}

// StartSession creates and activates a session for the given subject. On
// any failure the local view stays exactly as it was.
func (c *Controller) StartSession(ctx context.Context, subject string) (models.Session, error) {
	if subject == "" || !models.ValidSubject(subject) {
		return models.Session{}, fmt.Errorf("%w: no valid subject selected", sessions.ErrInvalidInput)
	}

	cred, ok := c.client.Creds.Credential()
	if !ok || cred.Role != auth.RoleTeacher {
		return models.Session{}, fmt.Errorf("%w: teacher credential required", sessions.ErrUnauthorized)
	}

	c.mutex.Lock()
	if c.state == models.StateActive || c.startInFlight {
		c.mutex.Unlock()
		return models.Session{}, fmt.Errorf("%w: a session is already active", sessions.ErrInvalidState)
	}
	c.startInFlight = true
	c.mutex.Unlock()

	var resp models.CreateSessionResponse
	err := c.client.postJSON(ctx, "/qr/generate", cred.Token,
		models.CreateSessionRequest{Subject: subject}, &resp)

	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.startInFlight = false
	if err != nil {
		return models.Session{}, err
	}

	session := models.Session{
		ID:        resp.SessionID,
		Subject:   resp.Subject,
		TeacherID: cred.Identity,
		State:     models.StateActive,
	}
	c.state = models.StateActive
	c.active = &session
	return session, nil
}

// StopSession terminates the active session. Stopping with nothing active
// is an error, not a no-op: callers are expected to check State first.
func (c *Controller) StopSession(ctx context.Context) error {
	cred, ok := c.client.Creds.Credential()
	if !ok || cred.Role != auth.RoleTeacher {
		return fmt.Errorf("%w: teacher credential required", sessions.ErrUnauthorized)
	}

	c.mutex.Lock()
	if c.state != models.StateActive || c.active == nil {
		c.mutex.Unlock()
		return fmt.Errorf("%w: no active session to stop", sessions.ErrInvalidState)
	}
	sessionID := c.active.ID
	c.mutex.Unlock()

	err := c.client.postJSON(ctx, "/qr/stop", cred.Token,
		models.StopSessionRequest{SessionID: sessionID}, nil)
	if err != nil {
		return err
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.state = models.StateStopped
	c.active = nil
	return nil
}

// Payload returns the token payload for the active session, ready to be
// rendered as a QR code.
func (c *Controller) Payload() (token.Payload, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if c.state != models.StateActive || c.active == nil {
		return token.Payload{}, fmt.Errorf("%w: no active session", sessions.ErrInvalidState)
	}
	return token.Encode(c.active.ID, c.active.Subject), nil
}

// State reports the controller's view of the session lifecycle.
func (c *Controller) State() models.SessionState {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.state
}

// Active returns the current session while one is active.
func (c *Controller) Active() (models.Session, bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if c.active == nil {
		return models.Session{}, false
	}
	return *c.active, true
}

// Reset discards the local view, as on logout. It does not talk to the
// registry: an active session keeps running server-side.
func (c *Controller) Reset() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.state = models.StateInactive
	c.active = nil
	c.startInFlight = false
}

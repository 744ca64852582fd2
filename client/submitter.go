package client

import (
	"context"
	"fmt"

	"github.com/Sampreeth-sv/smart-attendance-new/auth"
	"github.com/Sampreeth-sv/smart-attendance-new/models"
	"github.com/Sampreeth-sv/smart-attendance-new/sessions"
	"github.com/Sampreeth-sv/smart-attendance-new/token"
)

// Submitter turns a scanned payload into a check-in request. It never
// caches session state: whether the session is still open is the
// registry's call alone, and the registry's verdict comes back verbatim.
type Submitter struct {
	client *Client
}

func NewSubmitter(client *Client) *Submitter {
	return &Submitter{client: client}
}

// Submit validates and sends one check-in. Validation order matters for
// error attribution: a broken payload is MalformedToken even when the
// credential is also missing.
func (s *Submitter) Submit(ctx context.Context, payload token.Payload, studentID string, cred auth.Credential) error {
	if payload.SessionID == "" {
		return fmt.Errorf("%w: payload has no session_id", sessions.ErrMalformedToken)
	}
	if cred.Token == "" || cred.Role != auth.RoleStudent {
		return fmt.Errorf("%w: student credential required", sessions.ErrUnauthorized)
	}

	req := models.SubmitCheckInRequest{
		SessionID: payload.SessionID,
		Subject:   payload.Subject,
		IssuedAt:  payload.IssuedAt,
		StudentID: studentID,
	}
	return s.client.postJSON(ctx, "/attendance/mark", cred.Token, req, nil)
}

// SubmitScanned decodes raw scanned bytes and submits them. The decode uses
// the same structural validator as the server side, so a payload that
// round-trips here recovers the session id and subject Encode put in.
func (s *Submitter) SubmitScanned(ctx context.Context, scanned []byte, studentID string, cred auth.Credential) error {
	payload, err := token.Unmarshal(scanned)
	if err != nil {
		return err
	}
	return s.Submit(ctx, payload, studentID, cred)
}

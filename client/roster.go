package client

import (
	"context"
	"fmt"

	"github.com/Sampreeth-sv/smart-attendance-new/models"
	"github.com/Sampreeth-sv/smart-attendance-new/sessions"
)

// RosterViewer fetches check-in snapshots for the teacher's live view.
// Pull-based: the caller decides how often to refresh. A record missing
// from one snapshot may show up in the next; that is network timing, not
// an error.
type RosterViewer struct {
	client *Client
}

func NewRosterViewer(client *Client) *RosterViewer {
	return &RosterViewer{client: client}
}

// FetchRoster returns the session's check-ins as of now, ordered by
// recorded_at ascending as the registry delivered them.
func (v *RosterViewer) FetchRoster(ctx context.Context, sessionID string) ([]models.CheckInRecord, error) {
	cred, ok := v.client.Creds.Credential()
	if !ok {
		return nil, fmt.Errorf("%w: credential required", sessions.ErrUnauthorized)
	}

	var resp models.RosterResponse
	err := v.client.getJSON(ctx, "/attendance/session/"+sessionID, cred.Token, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Records, nil
}

package token

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/Sampreeth-sv/smart-attendance-new/sessions"
)

// Payload is what the QR code carries. It is self-contained: a scanner
// needs no further lookup to know which session it names. Subject and
// IssuedAt are for display on the scanning device; only SessionID feeds
// the check-in.
type Payload struct {
	SessionID string `json:"session_id"`
	Subject   string `json:"subject"`
	IssuedAt  int64  `json:"issued_at"` // unix milliseconds
}

// Encode builds the payload for a session. The same payload stays valid
// for the session's whole active window; there is no rotation.
func Encode(sessionID, subject string) Payload {
	return EncodeAt(sessionID, subject, time.Now())
}

// EncodeAt is Encode with an explicit clock.
func EncodeAt(sessionID, subject string, at time.Time) Payload {
	return Payload{
		SessionID: sessionID,
		Subject:   subject,
		IssuedAt:  at.UnixMilli(),
	}
}

// Marshal renders the payload in its wire form, the exact bytes a QR code
// encodes.
func Marshal(p Payload) ([]byte, error) {
	return json.Marshal(p)
}

// Unmarshal parses and structurally validates a scanned payload. A payload
// without a session id cannot name a session and is rejected as malformed
// before anything else looks at it.
func Unmarshal(data []byte) (Payload, error) {
	var p Payload
	if err := json.Unmarshal(data, &p); err != nil {
		return Payload{}, fmt.Errorf("%w: %v", sessions.ErrMalformedToken, err)
	}
	if p.SessionID == "" {
		return Payload{}, fmt.Errorf("%w: missing session_id", sessions.ErrMalformedToken)
	}
	return p, nil
}

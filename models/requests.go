package models

type CreateSessionRequest struct {
	Subject string `json:"subject" binding:"required"`
}

type CreateSessionResponse struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
	Subject   string `json:"subject"`
}

type StopSessionRequest struct {
	SessionID string `json:"session_id" binding:"required"`
}

// SubmitCheckInRequest is the wire form of a scanned token payload plus the
// scanning student's identity. No binding tags: a missing session_id is a
// malformed token, not a generic bad request, and a missing student_id
// falls back to the credential's identity. The handler decides both.
type SubmitCheckInRequest struct {
	SessionID string `json:"session_id"`
	Subject   string `json:"subject"`
	IssuedAt  int64  `json:"issued_at"`
	StudentID string `json:"student_id"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type RosterResponse struct {
	SessionID    string          `json:"session_id"`
	Records      []CheckInRecord `json:"records"`
	PresentCount int             `json:"present_count"`
}

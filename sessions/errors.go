package sessions

import "errors"

// The error taxonomy shared by the registry, the HTTP surface and the
// client core. Handlers map these to wire codes; the client maps the wire
// codes back, so errors.Is works the same on both sides.
var (
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidState       = errors.New("invalid state")
	ErrMalformedToken     = errors.New("malformed token")
	ErrSessionClosed      = errors.New("session closed")
	ErrDuplicateCheckIn   = errors.New("duplicate check-in")
	ErrNotFound           = errors.New("not found")
	ErrServiceUnavailable = errors.New("service unavailable")
)

// Wire codes, stable across server and client.
const (
	CodeUnauthorized       = "unauthorized"
	CodeInvalidInput       = "invalid_input"
	CodeInvalidState       = "invalid_state"
	CodeMalformedToken     = "malformed_token"
	CodeSessionClosed      = "session_closed"
	CodeDuplicateCheckIn   = "duplicate_check_in"
	CodeNotFound           = "not_found"
	CodeServiceUnavailable = "service_unavailable"
)

// Code returns the wire code for a taxonomy error, or empty if err is not
// part of the taxonomy.
func Code(err error) string {
	switch {
	case errors.Is(err, ErrUnauthorized):
		return CodeUnauthorized
	case errors.Is(err, ErrInvalidInput):
		return CodeInvalidInput
	case errors.Is(err, ErrInvalidState):
		return CodeInvalidState
	case errors.Is(err, ErrMalformedToken):
		return CodeMalformedToken
	case errors.Is(err, ErrSessionClosed):
		return CodeSessionClosed
	case errors.Is(err, ErrDuplicateCheckIn):
		return CodeDuplicateCheckIn
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrServiceUnavailable):
		return CodeServiceUnavailable
	}
	return ""
}

// FromCode is the inverse of Code, used by the client to recover the
// sentinel from a wire error.
func FromCode(code string) error {
	switch code {
	case CodeUnauthorized:
		return ErrUnauthorized
	case CodeInvalidInput:
		return ErrInvalidInput
	case CodeInvalidState:
		return ErrInvalidState
	case CodeMalformedToken:
		return ErrMalformedToken
	case CodeSessionClosed:
		return ErrSessionClosed
	case CodeDuplicateCheckIn:
		return ErrDuplicateCheckIn
	case CodeNotFound:
		return ErrNotFound
	case CodeServiceUnavailable:
		return ErrServiceUnavailable
	}
	return nil
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/Sampreeth-sv/smart-attendance-new/auth"
	"github.com/Sampreeth-sv/smart-attendance-new/models"
	"github.com/Sampreeth-sv/smart-attendance-new/sessions"
	"github.com/Sampreeth-sv/smart-attendance-new/token"
)

// API carries the handlers' dependencies. The registry is the only mutable
// one; everything else is read-only after construction.
type API struct {
	Registry *sessions.Registry
	upgrader websocket.Upgrader
}

func NewAPI(registry *sessions.Registry, allowedOrigins []string) *API {
	return &API{
		Registry: registry,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				for _, allowed := range allowedOrigins {
					if origin == allowed {
						return true
					}
				}
				return false
			},
		},
	}
}

// CreateSession opens a new attendance session for the calling teacher.
func (a *API) CreateSession(c *gin.Context) {
	cred, _ := auth.CredentialFrom(c)

	var req models.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   sessions.CodeInvalidInput,
			Message: "no subject selected",
		})
		return
	}

	session, err := a.Registry.Create(req.Subject, cred.Identity)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.CreateSessionResponse{
		Message:   "QR session created",
		SessionID: session.ID,
		Subject:   session.Subject,
	})
}

// StopSession terminates the named session.
func (a *API) StopSession(c *gin.Context) {
	var req models.StopSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   sessions.CodeInvalidInput,
			Message: "no session id given",
		})
		return
	}

	if err := a.Registry.Stop(req.SessionID); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "QR session stopped",
		"session_id": req.SessionID,
	})
}

// ActiveSession reports the most recent active session, if any. Public:
// the student page uses it to decide whether to offer scanning.
func (a *API) ActiveSession(c *gin.Context) {
	session, ok := a.Registry.FindActive()
	if !ok {
		c.JSON(http.StatusOK, gin.H{"active": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"active":     true,
		"session_id": session.ID,
		"subject":    session.Subject,
		"teacher_id": session.TeacherID,
	})
}

// VerifySession tells a scanning student whether a session id still accepts
// check-ins.
func (a *API) VerifySession(c *gin.Context) {
	session, err := a.Registry.Verify(c.Param("sessionID"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"valid":      true,
		"subject":    session.Subject,
		"teacher_id": session.TeacherID,
	})
}

// QRImage renders the session's token payload as a QR PNG. The payload
// bytes are the contract; this image is one way to carry them.
func (a *API) QRImage(c *gin.Context) {
	session, err := a.Registry.Verify(c.Param("sessionID"))
	if err != nil {
		writeError(c, err)
		return
	}

	payload := token.Encode(session.ID, session.Subject)
	png, err := token.RenderPNG(payload, 512)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   sessions.CodeServiceUnavailable,
			Message: "failed to render QR code",
		})
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

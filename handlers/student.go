package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sampreeth-sv/smart-attendance-new/auth"
	"github.com/Sampreeth-sv/smart-attendance-new/database"
	"github.com/Sampreeth-sv/smart-attendance-new/models"
	"github.com/Sampreeth-sv/smart-attendance-new/sessions"
)

// SubmitCheckIn records the calling student's presence. The registry is the
// sole judge of whether the session is still open; this handler only checks
// that the scanned payload is structurally usable.
func (a *API) SubmitCheckIn(c *gin.Context) {
	cred, _ := auth.CredentialFrom(c)

	var req models.SubmitCheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   sessions.CodeMalformedToken,
			Message: "unreadable check-in payload",
		})
		return
	}
	if req.SessionID == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   sessions.CodeMalformedToken,
			Message: "scanned payload has no session_id",
		})
		return
	}

	studentID := req.StudentID
	if studentID == "" {
		studentID = cred.Identity
	}

	record, err := a.Registry.SubmitCheckIn(req.SessionID, studentID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "Attendance marked successfully",
		"session_id":  record.SessionID,
		"student_id":  record.StudentID,
		"recorded_at": record.RecordedAt,
	})
}

// Roster returns the check-in snapshot for a session, oldest first.
func (a *API) Roster(c *gin.Context) {
	sessionID := c.Param("sessionID")
	records, err := a.Registry.Roster(sessionID)
	if err != nil {
		writeError(c, err)
		return
	}

	if records == nil {
		records = []models.CheckInRecord{}
	}
	c.JSON(http.StatusOK, models.RosterResponse{
		SessionID:    sessionID,
		Records:      records,
		PresentCount: len(records),
	})
}

// History returns a student's persisted check-ins across sessions, newest
// first.
func (a *API) History(c *gin.Context) {
	records, err := database.HistoryForStudent(c.Param("studentID"))
	if err != nil {
		if errors.Is(err, database.ErrStoreUnavailable) {
			c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
				Error:   sessions.CodeServiceUnavailable,
				Message: "attendance store not connected",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   sessions.CodeServiceUnavailable,
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total_records": len(records),
		"records":       records,
	})
}

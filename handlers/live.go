package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Sampreeth-sv/smart-attendance-new/models"
)

// LiveRoster streams roster snapshots over a websocket while the session is
// active. This is a convenience on top of the pull contract: polling
// Roster gives the same data on the caller's own cadence.
func (a *API) LiveRoster(c *gin.Context) {
	sessionID := c.Param("sessionID")
	if _, err := a.Registry.Get(sessionID); err != nil {
		writeError(c, err)
		return
	}

	conn, err := a.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Failed to upgrade to WebSocket: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to establish WebSocket connection"})
		return
	}
	defer conn.Close()

	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	lastCount := -1
	for {
		select {
		case <-ticker.C:
			records, err := a.Registry.Roster(sessionID)
			if err != nil {
				log.Printf("Session %s vanished during live view: %v", sessionID, err)
				return
			}

			if len(records) != lastCount {
				lastCount = len(records)
				if records == nil {
					records = []models.CheckInRecord{}
				}
				err = conn.WriteJSON(models.RosterResponse{
					SessionID:    sessionID,
					Records:      records,
					PresentCount: len(records),
				})
				if err != nil {
					// Detect broken pipe or disconnection
					log.Printf("Client disconnected: %v", err)
					return
				}
			}

			session, err := a.Registry.Get(sessionID)
			if err != nil || session.State != models.StateActive {
				conn.WriteJSON(gin.H{"session_stopped": true})
				return
			}
		}
	}
}

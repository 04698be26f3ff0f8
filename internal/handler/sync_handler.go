package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-medication-sync/internal/service/reconcile"
)

type SyncHandler struct {
	trigger reconcile.Triggerer
	status  SyncStatus
}

func NewSyncHandler(trigger reconcile.Triggerer, status SyncStatus) *SyncHandler {
	return &SyncHandler{
		trigger: trigger,
		status:  status,
	}
}

// HandleStatus reports the most recent completed sync, or null before the first.
func (h *SyncHandler) HandleStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"last": h.status.Last()})
}

// HandleForeground is called by the UI shell when the app comes to the foreground.
func (h *SyncHandler) HandleForeground(c *gin.Context) {
	h.run(c, reconcile.ReasonForeground)
}

func (h *SyncHandler) HandleManual(c *gin.Context) {
	h.run(c, reconcile.ReasonManual)
}

func (h *SyncHandler) run(c *gin.Context, reason reconcile.Reason) {
	outcome, err := h.trigger.Trigger(c.Request.Context(), reason)
	if err != nil {
		if errors.Is(err, reconcile.ErrSyncInProgress) {
			c.JSON(http.StatusConflict, gin.H{
				"error":   "sync_in_progress",
				"message": "A sync is already running.",
				"outcome": outcome,
			})
			return
		}
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, outcome)
}

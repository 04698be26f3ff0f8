package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-medication-sync/internal/domain"
	"github.com/KasumiMercury/primind-medication-sync/internal/service/reconcile"
)

type ActionHandler struct {
	logger  ActionLogger
	trigger reconcile.Triggerer
}

// NewActionHandler builds the handler. trigger may be nil.
func NewActionHandler(logger ActionLogger, trigger reconcile.Triggerer) *ActionHandler {
	return &ActionHandler{
		logger:  logger,
		trigger: trigger,
	}
}

// HandleLog records the action, then refreshes alerts from the backend's
// pending list. The refresh outcome does not change the response status.
func (h *ActionHandler) HandleLog(c *gin.Context) {
	ctx := c.Request.Context()

	var body actionLogBody
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	actionType, err := domain.ParseActionType(body.ActionType)
	if err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	entry := domain.ActionLog{
		ScheduleID:             body.ScheduleID,
		ScheduleNotificationID: body.ScheduleNotificationID,
		ActionType:             actionType,
		ScheduledTime:          body.ScheduledTime,
		Notes:                  body.Notes,
	}

	if err := h.logger.Log(ctx, entry); err != nil {
		respondServiceError(c, err)
		return
	}

	resp := gin.H{"status": "logged"}

	if h.trigger != nil {
		outcome, err := h.trigger.Trigger(ctx, reconcile.ReasonManual)
		switch {
		case err == nil:
			resp["sync"] = outcome
		case errors.Is(err, reconcile.ErrSyncInProgress):
			resp["sync"] = outcome
		default:
			slog.WarnContext(ctx, "sync after action log failed",
				slog.String("schedule_id", entry.ScheduleID),
				slog.String("error", err.Error()),
			)
		}
	}

	c.JSON(http.StatusCreated, resp)
}

// HandleInFlight reports whether a log for the dose is currently being written.
func (h *ActionHandler) HandleInFlight(c *gin.Context) {
	var q inFlightQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"schedule_id": q.ScheduleID,
		"in_flight":   h.logger.InFlight(q.ScheduleID, q.ScheduledTime),
	})
}

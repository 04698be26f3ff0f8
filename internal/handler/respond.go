package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-medication-sync/internal/domain"
	"github.com/KasumiMercury/primind-medication-sync/internal/infra/backend"
	"github.com/KasumiMercury/primind-medication-sync/internal/service/action"
	"github.com/KasumiMercury/primind-medication-sync/internal/service/reconcile"
	"github.com/KasumiMercury/primind-medication-sync/internal/service/schedule"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, ErrorResponse{Error: code, Message: message})
}

var validationErrors = []error{
	domain.ErrInvalidTimeOfDay,
	domain.ErrInvalidDate,
	domain.ErrInvalidWeekday,
	domain.ErrNoDaysOfWeek,
	domain.ErrMedicineNameRequired,
	domain.ErrStartDateRequired,
	domain.ErrEndBeforeStart,
	domain.ErrInvalidActionType,
	schedule.ErrIDRequired,
	action.ErrScheduleIDRequired,
	action.ErrScheduledTimeMissing,
}

// respondServiceError maps a service error onto a status code and a message
// the UI can show as is.
func respondServiceError(c *gin.Context, err error) {
	_ = c.Error(err)

	message := "Could not reach the server. Please check your connection and try again."
	var userErr *action.UserError
	if errors.As(err, &userErr) {
		message = userErr.Message
	}

	for _, target := range validationErrors {
		if errors.Is(err, target) {
			respondError(c, http.StatusBadRequest, "validation_error", err.Error())
			return
		}
	}

	var statusErr *backend.StatusError
	switch {
	case errors.Is(err, domain.ErrScheduleNotFound):
		respondError(c, http.StatusNotFound, "not_found", "The schedule no longer exists.")
	case errors.Is(err, domain.ErrAlertNotFound):
		respondError(c, http.StatusNotFound, "not_found", "No scheduled alert has that local id.")
	case errors.Is(err, backend.ErrTokenExpired), errors.Is(err, backend.ErrMissingToken):
		respondError(c, http.StatusUnauthorized, "unauthorized", "Your session has expired. Please sign in again.")
	case errors.Is(err, action.ErrActionInFlight):
		respondError(c, http.StatusConflict, "action_in_flight", "This action is already being recorded.")
	case errors.Is(err, reconcile.ErrSyncInProgress):
		respondError(c, http.StatusConflict, "sync_in_progress", "A sync is already running.")
	case errors.As(err, &statusErr):
		if userErr == nil {
			message = "The server could not complete the request. Please try again later."
		}
		respondError(c, http.StatusBadGateway, "backend_error", message)
	default:
		slog.ErrorContext(c.Request.Context(), "request failed",
			slog.String("path", c.Request.URL.Path),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusBadGateway, "backend_unavailable", message)
	}
}

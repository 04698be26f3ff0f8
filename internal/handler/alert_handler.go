package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type AlertHandler struct {
	device AlertDevice
	now    func() time.Time
}

func NewAlertHandler(device AlertDevice) *AlertHandler {
	return &AlertHandler{
		device: device,
		now:    time.Now,
	}
}

func (h *AlertHandler) HandleList(c *gin.Context) {
	alerts, err := h.device.ListScheduled(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	views := make([]alertView, 0, len(alerts))
	for _, a := range alerts {
		views = append(views, newAlertView(a))
	}
	c.JSON(http.StatusOK, gin.H{"data": views})
}

// HandleResponse receives a delivered alert's tap or action and fans it out
// to the registered subscribers. A body carrying only local_id is completed
// from the scheduled alert.
func (h *AlertHandler) HandleResponse(c *gin.Context) {
	ctx := c.Request.Context()

	var body alertResponseBody
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	if body.needsLookup() {
		alert, err := h.device.Lookup(ctx, body.LocalID)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		body.fillFrom(alert)
	}

	resp, err := body.toResponse(h.now())
	if err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	delivered := h.device.Publish(ctx, resp)

	slog.InfoContext(ctx, "alert response received",
		slog.String("local_id", resp.LocalID),
		slog.String("schedule_id", resp.ScheduleID),
		slog.Int("subscriber_count", delivered),
	)

	c.JSON(http.StatusAccepted, gin.H{"delivered": delivered})
}

func (h *AlertHandler) HandleGetPermission(c *gin.Context) {
	granted, err := h.device.PermissionGranted(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"granted": granted})
}

// HandleSetPermission records the platform's answer to the permission prompt.
func (h *AlertHandler) HandleSetPermission(c *gin.Context) {
	var body permissionBody
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	if err := h.device.SetPermission(c.Request.Context(), *body.Granted); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"granted": *body.Granted})
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type PushHandler struct {
	registrar PushRegistrar
}

func NewPushHandler(registrar PushRegistrar) *PushHandler {
	return &PushHandler{registrar: registrar}
}

// HandleRegister always answers 200; the mode tells the UI whether push is active.
func (h *PushHandler) HandleRegister(c *gin.Context) {
	var body pushRegisterBody
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	mode := h.registrar.Register(c.Request.Context(), body.PushToken, body.Platform, body.DeviceInfo)
	c.JSON(http.StatusOK, gin.H{"mode": mode})
}

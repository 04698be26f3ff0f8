package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-medication-sync/internal/service/recurrence"
)

const (
	defaultNextCount = 5
	maxNextCount     = 50
)

type ScheduleHandler struct {
	schedules ScheduleService
	loc       *time.Location
	now       func() time.Time
}

func NewScheduleHandler(schedules ScheduleService, loc *time.Location) *ScheduleHandler {
	if loc == nil {
		loc = time.Local
	}
	return &ScheduleHandler{
		schedules: schedules,
		loc:       loc,
		now:       time.Now,
	}
}

func (h *ScheduleHandler) HandleList(c *gin.Context) {
	schedules, err := h.schedules.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	views := make([]scheduleView, 0, len(schedules))
	for _, s := range schedules {
		views = append(views, newScheduleView(s, h.loc))
	}
	c.JSON(http.StatusOK, gin.H{"data": views})
}

func (h *ScheduleHandler) HandleGet(c *gin.Context) {
	s, err := h.schedules.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": newScheduleView(*s, h.loc)})
}

func (h *ScheduleHandler) HandleCreate(c *gin.Context) {
	var body scheduleBody
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	s, err := body.toDomain("")
	if err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	created, err := h.schedules.Create(c.Request.Context(), s)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": newScheduleView(*created, h.loc)})
}

func (h *ScheduleHandler) HandleUpdate(c *gin.Context) {
	var body scheduleBody
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	s, err := body.toDomain(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	updated, err := h.schedules.Update(c.Request.Context(), s)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": newScheduleView(*updated, h.loc)})
}

func (h *ScheduleHandler) HandleDelete(c *gin.Context) {
	if err := h.schedules.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// HandleUpcoming lists today's doses that have not fired yet.
func (h *ScheduleHandler) HandleUpcoming(c *gin.Context) {
	occurrences, err := h.schedules.Upcoming(c.Request.Context(), h.now().In(h.loc))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if occurrences == nil {
		occurrences = []recurrence.Occurrence{}
	}
	c.JSON(http.StatusOK, gin.H{"data": occurrences})
}

// HandleNext lists the schedule's next fire times after now. The count comes
// from the n query parameter.
func (h *ScheduleHandler) HandleNext(c *gin.Context) {
	n := defaultNextCount
	if raw := c.Query("n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > maxNextCount {
			respondError(c, http.StatusBadRequest, "validation_error",
				"n must be an integer between 1 and "+strconv.Itoa(maxNextCount))
			return
		}
		n = parsed
	}

	ctx := c.Request.Context()
	s, err := h.schedules.Get(ctx, c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	times, err := recurrence.NextOccurrences(*s, h.now().In(h.loc), n)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if times == nil {
		times = []time.Time{}
	}
	c.JSON(http.StatusOK, gin.H{"data": times})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JabirC/Closet/models"
	"github.com/JabirC/Closet/services"
)

type CalendarHandler struct {
	svc services.CalendarService
}

func NewCalendarHandler(svc services.CalendarService) *CalendarHandler {
	return &CalendarHandler{svc: svc}
}

// Get handles GET /calendar: {"calendar": {"2024-06-01": {"outfitId": .., "outfit": {..}}}}.
func (h *CalendarHandler) Get(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	cal, err := h.svc.Get(c.Request.Context(), uid)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"calendar": cal})
}

// Plan handles POST /calendar (upsert by date).
func (h *CalendarHandler) Plan(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	var req models.PlanRequest
	if !bindJSON(c, &req) {
		return
	}
	entry, err := h.svc.Plan(c.Request.Context(), uid, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"calendarEntry": entry})
}

// Unplan handles DELETE /calendar?date=YYYY-MM-DD. Clearing an empty date still succeeds.
func (h *CalendarHandler) Unplan(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	if err := h.svc.Unplan(c.Request.Context(), uid, c.Query("date")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Outfit unplanned"})
}

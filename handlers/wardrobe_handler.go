package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JabirC/Closet/services"
)

// WardrobeHandler serves the whole-state snapshot clients reload after events.
type WardrobeHandler struct {
	svc services.SnapshotService
}

func NewWardrobeHandler(svc services.SnapshotService) *WardrobeHandler {
	return &WardrobeHandler{svc: svc}
}

// Snapshot handles GET /wardrobe.
func (h *WardrobeHandler) Snapshot(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	snap, err := h.svc.Snapshot(c.Request.Context(), uid)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

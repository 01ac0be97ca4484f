package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JabirC/Closet/models"
	"github.com/JabirC/Closet/services"
)

type OutfitHandler struct {
	svc services.OutfitService
}

func NewOutfitHandler(svc services.OutfitService) *OutfitHandler {
	return &OutfitHandler{svc: svc}
}

// List handles GET /outfits.
func (h *OutfitHandler) List(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	outfits, err := h.svc.List(c.Request.Context(), uid)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"outfits": outfits})
}

// Create handles POST /outfits. A foreign or unknown item id is a 400.
func (h *OutfitHandler) Create(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	var req models.CreateOutfitRequest
	if !bindJSON(c, &req) {
		return
	}
	o, err := h.svc.Create(c.Request.Context(), uid, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"outfit": o})
}

// Delete handles DELETE /outfits/:id.
func (h *OutfitHandler) Delete(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), uid, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Outfit deleted"})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JabirC/Closet/models"
	"github.com/JabirC/Closet/services"
)

type ClothingHandler struct {
	svc services.ClothingService
}

func NewClothingHandler(svc services.ClothingService) *ClothingHandler {
	return &ClothingHandler{svc: svc}
}

// List handles GET /clothes[?category=tops].
func (h *ClothingHandler) List(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	items, err := h.svc.List(c.Request.Context(), uid, c.Query("category"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"clothes": items})
}

// Create handles POST /clothes; 403 once the tier's upload limit is reached.
func (h *ClothingHandler) Create(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	var req models.CreateItemRequest
	if !bindJSON(c, &req) {
		return
	}
	item, count, err := h.svc.Create(c.Request.Context(), uid, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"clothingItem": item, "uploadCount": count})
}

// Delete handles DELETE /clothes/:id and reports which outfits the cascade touched.
func (h *ClothingHandler) Delete(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	res, err := h.svc.Delete(c.Request.Context(), uid, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":          "Clothing item deleted",
		"deletedOutfitIds": res.DeletedOutfitIDs,
		"updatedOutfitIds": res.UpdatedOutfitIDs,
		"uploadCount":      res.UploadCount,
	})
}

// Classify handles POST /clothes/classify: a category/tags suggestion for an image.
func (h *ClothingHandler) Classify(c *gin.Context) {
	if _, ok := currentUser(c); !ok {
		return
	}
	var req models.ClassifyRequest
	if !bindJSON(c, &req) {
		return
	}
	out, err := h.svc.Classify(c.Request.Context(), req.ImageURL)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

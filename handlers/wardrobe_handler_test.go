package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/JabirC/Closet/mocks"
	"github.com/JabirC/Closet/models"
)

func TestWardrobe_Snapshot(t *testing.T) {
	svc := new(mocks.SnapshotServiceMock)
	svc.On("Snapshot", mock.Anything, uint(1)).Return(&models.Snapshot{
		Profile:  models.Profile{User: models.User{ID: 1}, UploadLimit: 10, RemainingUploads: 10},
		Clothes:  []models.ClothingItem{},
		Outfits:  []models.Outfit{},
		Calendar: map[string]models.CalendarDay{},
	}, nil)
	svc.On("Snapshot", mock.Anything, uint(2)).Return(nil, errors.New("db gone"))

	r := newRouter(1)
	r.GET("/wardrobe", NewWardrobeHandler(svc).Snapshot)
	w := do(r, http.MethodGet, "/wardrobe", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"clothes":[]`)
	assert.Contains(t, w.Body.String(), `"calendar":{}`)

	r2 := newRouter(2)
	r2.GET("/wardrobe", NewWardrobeHandler(svc).Snapshot)
	w = do(r2, http.MethodGet, "/wardrobe", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

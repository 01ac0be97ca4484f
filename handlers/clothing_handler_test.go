package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/JabirC/Closet/core"
	"github.com/JabirC/Closet/mocks"
	"github.com/JabirC/Closet/models"
)

func setupClothes(uid uint, svc *mocks.ClothingServiceMock) *gin.Engine {
	r := newRouter(uid)
	h := NewClothingHandler(svc)
	r.GET("/clothes", h.List)
	r.POST("/clothes", h.Create)
	r.POST("/clothes/classify", h.Classify)
	r.DELETE("/clothes/:id", h.Delete)
	return r
}

func TestClothing_Create(t *testing.T) {
	svc := new(mocks.ClothingServiceMock)
	r := setupClothes(7, svc)

	req := models.CreateItemRequest{Name: "Tee", Category: "tops", Tags: []string{"casual"}, ImageURL: "https://img.test/t.png"}
	svc.On("Create", mock.Anything, uint(7), req).Return(&models.ClothingItem{ID: 5, UserID: 7, Name: "Tee", Category: "tops"}, 4, nil)

	w := do(r, http.MethodPost, "/clothes", req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"clothingItem":{"id":5`)
	assert.Contains(t, w.Body.String(), `"uploadCount":4`)
}

func TestClothing_Create_Rejects(t *testing.T) {
	tests := []struct {
		name     string
		body     models.CreateItemRequest
		svcErr   error
		wantCode int
	}{
		{"unknown category", models.CreateItemRequest{Name: "Hat", Category: "hats", ImageURL: "x"}, nil, http.StatusBadRequest},
		{"missing image", models.CreateItemRequest{Name: "Hat", Category: "accessories"}, nil, http.StatusBadRequest},
		{"quota", models.CreateItemRequest{Name: "Hat", Category: "accessories", ImageURL: "x"}, core.ErrQuotaExceeded, http.StatusForbidden},
		{"account gone", models.CreateItemRequest{Name: "Hat", Category: "accessories", ImageURL: "x"}, core.ErrUnauthenticated, http.StatusUnauthorized},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := new(mocks.ClothingServiceMock)
			r := setupClothes(7, svc)
			if tc.svcErr != nil {
				svc.On("Create", mock.Anything, uint(7), tc.body).Return(nil, 0, tc.svcErr)
			}

			w := do(r, http.MethodPost, "/clothes", tc.body)
			assert.Equal(t, tc.wantCode, w.Code)
			if tc.svcErr == nil {
				svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}
}

func TestClothing_Create_QuotaMessage(t *testing.T) {
	svc := new(mocks.ClothingServiceMock)
	r := setupClothes(7, svc)
	svc.On("Create", mock.Anything, uint(7), mock.Anything).Return(nil, 0, core.ErrQuotaExceeded)

	w := do(r, http.MethodPost, "/clothes", models.CreateItemRequest{Name: "Hat", Category: "accessories", ImageURL: "x"})

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error":"upload limit reached, upgrade your plan"}`, w.Body.String())
}

func TestClothing_List(t *testing.T) {
	svc := new(mocks.ClothingServiceMock)
	r := setupClothes(7, svc)
	svc.On("List", mock.Anything, uint(7), "shoes").Return([]models.ClothingItem{{ID: 1, Category: "shoes"}}, nil)
	svc.On("List", mock.Anything, uint(7), "").Return([]models.ClothingItem{}, nil)

	w := do(r, http.MethodGet, "/clothes?category=shoes", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"clothes":[{"id":1`)

	w = do(r, http.MethodGet, "/clothes", nil)
	assert.JSONEq(t, `{"clothes":[]}`, w.Body.String())
}

func TestClothing_Delete(t *testing.T) {
	svc := new(mocks.ClothingServiceMock)
	r := setupClothes(7, svc)
	svc.On("Delete", mock.Anything, uint(7), uint(1)).Return(&models.ItemDeletion{
		ItemID: 1, DeletedOutfitIDs: []uint{20}, UpdatedOutfitIDs: []uint{}, UploadCount: 2,
	}, nil)
	svc.On("Delete", mock.Anything, uint(7), uint(2)).Return(nil, core.ErrNotFound)
	svc.On("Delete", mock.Anything, uint(7), uint(3)).Return(nil, errors.New("disk on fire"))

	w := do(r, http.MethodDelete, "/clothes/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Clothing item deleted","deletedOutfitIds":[20],"updatedOutfitIds":[],"uploadCount":2}`, w.Body.String())

	w = do(r, http.MethodDelete, "/clothes/2", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(r, http.MethodDelete, "/clothes/3", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal error"}`, w.Body.String())

	for _, bad := range []string{"abc", "0", "-1"} {
		w = do(r, http.MethodDelete, "/clothes/"+bad, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, bad)
	}
}

func TestClothing_Classify(t *testing.T) {
	svc := new(mocks.ClothingServiceMock)
	r := setupClothes(7, svc)
	svc.On("Classify", mock.Anything, "https://img.test/a.png").
		Return(core.Classification{Category: "tops", Tags: []string{"casual", "formal"}}, nil)

	w := do(r, http.MethodPost, "/clothes/classify", models.ClassifyRequest{ImageURL: "https://img.test/a.png"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"category":"tops","tags":["casual","formal"]}`, w.Body.String())

	w = do(r, http.MethodPost, "/clothes/classify", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

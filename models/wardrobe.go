package models

import (
	"time"

	"gorm.io/datatypes"
)

// ClothingItem is one uploaded garment. Tags are stored as a JSON array column.
type ClothingItem struct {
	ID        uint                        `gorm:"primaryKey" json:"id"`
	UserID    uint                        `gorm:"not null;index" json:"userId"`
	Name      string                      `gorm:"size:120;not null" json:"name"`
	Category  string                      `gorm:"size:20;not null;index" json:"category"`
	Tags      datatypes.JSONSlice[string] `json:"tags"`
	ImageURL  string                      `gorm:"type:text;not null" json:"imageUrl"`
	CreatedAt time.Time                   `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time                   `json:"updatedAt"`
}

// Outfit groups clothing items of the same owner.
type Outfit struct {
	ID        uint         `gorm:"primaryKey" json:"id"`
	UserID    uint         `gorm:"not null;index" json:"userId"`
	Name      string       `gorm:"size:120;not null" json:"name"`
	Items     []OutfitItem `gorm:"foreignKey:OutfitID" json:"items"`
	CreatedAt time.Time    `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

// OutfitItem links an outfit to one clothing item. The composite key keeps a pair unique.
type OutfitItem struct {
	OutfitID       uint         `gorm:"primaryKey;autoIncrement:false" json:"outfitId"`
	ClothingItemID uint         `gorm:"primaryKey;autoIncrement:false;index" json:"clothingItemId"`
	ClothingItem   ClothingItem `gorm:"foreignKey:ClothingItemID" json:"clothingItem"`
}

// CalendarEntry assigns an outfit to a date; at most one per user per date.
type CalendarEntry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_calendar_user_date" json:"userId"`
	Date      string    `gorm:"size:10;not null;uniqueIndex:idx_calendar_user_date" json:"date"` // YYYY-MM-DD
	OutfitID  uint      `gorm:"not null;index" json:"outfitId"`
	Outfit    *Outfit   `gorm:"foreignKey:OutfitID" json:"outfit,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CalendarDay is the value side of the date-keyed calendar map.
type CalendarDay struct {
	OutfitID uint    `json:"outfitId"`
	Outfit   *Outfit `json:"outfit"`
}

// ItemDeletion reports what a clothing item cascade touched.
type ItemDeletion struct {
	ItemID           uint   `json:"itemId"`
	DeletedOutfitIDs []uint `json:"deletedOutfitIds"` // outfits whose only member was the item
	UpdatedOutfitIDs []uint `json:"updatedOutfitIds"` // outfits that just lost the item
	UploadCount      int    `json:"uploadCount"`
}

// Snapshot is everything a user owns, rendered in one response.
type Snapshot struct {
	Profile  Profile                `json:"profile"`
	Clothes  []ClothingItem         `json:"clothes"`
	Outfits  []Outfit               `json:"outfits"`
	Calendar map[string]CalendarDay `json:"calendar"`
}

// DTOs

// CreateItemRequest is the upload payload. category uses the custom "category" validator.
type CreateItemRequest struct {
	Name     string   `json:"name" binding:"required,max=120"`
	Category string   `json:"category" binding:"required,category"`
	Tags     []string `json:"tags" binding:"max=20,dive,max=40"`
	ImageURL string   `json:"imageUrl" binding:"required"`
}

// ClassifyRequest asks the classifier for a category/tags suggestion.
type ClassifyRequest struct {
	ImageURL string `json:"imageUrl" binding:"required"`
}

// CreateOutfitRequest names an outfit and lists its members.
type CreateOutfitRequest struct {
	Name            string `json:"name" binding:"required,max=120"`
	ClothingItemIDs []uint `json:"clothingItemIds"`
}

// PlanRequest assigns outfitId to date (upsert).
type PlanRequest struct {
	Date     string `json:"date" binding:"required,isodate"`
	OutfitID uint   `json:"outfitId" binding:"required"`
}

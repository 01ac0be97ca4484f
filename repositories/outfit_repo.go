package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/JabirC/Closet/core"
	"github.com/JabirC/Closet/models"
)

// OutfitRepository stores outfits and their member links.
type OutfitRepository interface {
	ListByUser(ctx context.Context, userID uint) ([]models.Outfit, error)
	Create(ctx context.Context, outfit *models.Outfit, itemIDs []uint) error
	Delete(ctx context.Context, userID, outfitID uint) error
}

type outfitRepo struct{ db *gorm.DB }

func NewOutfitRepository(db *gorm.DB) OutfitRepository {
	return &outfitRepo{db: db}
}

// withMembers preloads links (stable order) and the clothing item behind each link.
func withMembers(db *gorm.DB, path string) *gorm.DB {
	return db.
		Preload(path, func(db *gorm.DB) *gorm.DB { return db.Order("clothing_item_id ASC") }).
		Preload(path + ".ClothingItem")
}

func (r *outfitRepo) ListByUser(ctx context.Context, userID uint) ([]models.Outfit, error) {
	outfits := []models.Outfit{}
	err := withMembers(r.db.WithContext(ctx), "Items").
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&outfits).Error
	if err != nil {
		return nil, err
	}
	return outfits, nil
}

// Create inserts outfit and one link per distinct item id. Every id must be an
// item owned by outfit.UserID, otherwise nothing is written and a
// core.ErrValidation is returned. On success outfit is reloaded with members.
func (r *outfitRepo) Create(ctx context.Context, outfit *models.Outfit, itemIDs []uint) error {
	ids := core.UniqueIDs(itemIDs)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(ids) > 0 {
			var owned int64
			if err := tx.Model(&models.ClothingItem{}).
				Where("id IN ? AND user_id = ?", ids, outfit.UserID).
				Count(&owned).Error; err != nil {
				return err
			}
			if int(owned) != len(ids) {
				return fmt.Errorf("%w: one or more clothing items do not exist", core.ErrValidation)
			}
		}

		outfit.Items = nil
		if err := tx.Omit(clause.Associations).Create(outfit).Error; err != nil {
			return fmt.Errorf("insert outfit: %w", err)
		}
		if len(ids) > 0 {
			links := make([]models.OutfitItem, 0, len(ids))
			for _, id := range ids {
				links = append(links, models.OutfitItem{OutfitID: outfit.ID, ClothingItemID: id})
			}
			if err := tx.Omit(clause.Associations).Create(&links).Error; err != nil {
				return fmt.Errorf("insert outfit links: %w", err)
			}
		}
		return withMembers(tx, "Items").First(outfit, outfit.ID).Error
	})
}

// Delete removes an owned outfit, its links and the calendar entries pointing at it.
func (r *outfitRepo) Delete(ctx context.Context, userID, outfitID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var o models.Outfit
		if err := tx.Select("id").Where("id = ? AND user_id = ?", outfitID, userID).First(&o).Error; err != nil {
			return notFound(err, "outfit %d", outfitID)
		}
		return deleteOutfits(tx, []uint{o.ID})
	})
}

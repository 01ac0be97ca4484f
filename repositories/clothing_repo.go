package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/JabirC/Closet/core"
	"github.com/JabirC/Closet/models"
)

// ClothingRepository owns clothing items and the user's upload counter.
// Items are only ever inserted through CreateWithQuota.
type ClothingRepository interface {
	ListByUser(ctx context.Context, userID uint, category string) ([]models.ClothingItem, error)
	CreateWithQuota(ctx context.Context, item *models.ClothingItem, quota core.QuotaPolicy) (uploadCount int, err error)
	DeleteCascade(ctx context.Context, userID, itemID uint) (*models.ItemDeletion, error)
}

type clothingRepo struct{ db *gorm.DB }

func NewClothingRepository(db *gorm.DB) ClothingRepository {
	return &clothingRepo{db: db}
}

// ListByUser returns newest first; an empty category means all categories.
func (r *clothingRepo) ListByUser(ctx context.Context, userID uint, category string) ([]models.ClothingItem, error) {
	items := []models.ClothingItem{}
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if category != "" {
		q = q.Where("category = ?", category)
	}
	if err := q.Order("created_at DESC, id DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// CreateWithQuota reserves a slot and inserts item in one transaction.
// The reservation is a single conditional UPDATE, so concurrent uploads of
// the same user can never push upload_count past the tier limit.
func (r *clothingRepo) CreateWithQuota(ctx context.Context, item *models.ClothingItem, quota core.QuotaPolicy) (int, error) {
	var count int
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.User{}).
			Where("id = ? AND upload_count < CASE WHEN tier = ? THEN ? ELSE ? END",
				item.UserID, core.TierFree, quota.Free, quota.Premium).
			UpdateColumn("upload_count", gorm.Expr("upload_count + ?", 1))
		if res.Error != nil {
			return fmt.Errorf("reserve upload: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			var n int64
			if err := tx.Model(&models.User{}).Where("id = ?", item.UserID).Count(&n).Error; err != nil {
				return err
			}
			if n == 0 {
				return core.ErrUnauthenticated // token outlived its account
			}
			return core.ErrQuotaExceeded
		}

		if err := tx.Create(item).Error; err != nil {
			return fmt.Errorf("insert item: %w", err)
		}

		var err error
		count, err = uploadCount(tx, item.UserID)
		return err
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// DeleteCascade removes an owned item in one transaction:
// outfits whose only member it was are deleted (with their calendar entries),
// other outfits just lose the link, and upload_count drops by one.
func (r *clothingRepo) DeleteCascade(ctx context.Context, userID, itemID uint) (*models.ItemDeletion, error) {
	out := &models.ItemDeletion{ItemID: itemID, DeletedOutfitIDs: []uint{}, UpdatedOutfitIDs: []uint{}}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item models.ClothingItem
		if err := tx.Where("id = ? AND user_id = ?", itemID, userID).First(&item).Error; err != nil {
			return notFound(err, "clothing item %d", itemID)
		}

		var linked []uint
		if err := tx.Model(&models.OutfitItem{}).
			Joins("JOIN outfits ON outfits.id = outfit_items.outfit_id").
			Where("outfit_items.clothing_item_id = ? AND outfits.user_id = ?", itemID, userID).
			Pluck("outfit_items.outfit_id", &linked).Error; err != nil {
			return err
		}

		if len(linked) > 0 {
			var survivors []uint // outfits that keep at least one other member
			if err := tx.Model(&models.OutfitItem{}).
				Where("outfit_id IN ? AND clothing_item_id <> ?", linked, itemID).
				Distinct().
				Pluck("outfit_id", &survivors).Error; err != nil {
				return err
			}
			keep := make(map[uint]struct{}, len(survivors))
			for _, id := range survivors {
				keep[id] = struct{}{}
			}
			for _, id := range core.UniqueIDs(linked) {
				if _, ok := keep[id]; ok {
					out.UpdatedOutfitIDs = append(out.UpdatedOutfitIDs, id)
				} else {
					out.DeletedOutfitIDs = append(out.DeletedOutfitIDs, id)
				}
			}
			if err := deleteOutfits(tx, out.DeletedOutfitIDs); err != nil {
				return err
			}
		}

		if err := tx.Where("clothing_item_id = ?", itemID).Delete(&models.OutfitItem{}).Error; err != nil {
			return fmt.Errorf("unlink item: %w", err)
		}
		if err := tx.Delete(&models.ClothingItem{}, item.ID).Error; err != nil {
			return fmt.Errorf("delete item: %w", err)
		}
		if err := tx.Model(&models.User{}).
			Where("id = ? AND upload_count > 0", userID).
			UpdateColumn("upload_count", gorm.Expr("upload_count - ?", 1)).Error; err != nil {
			return fmt.Errorf("release upload: %w", err)
		}

		var err error
		out.UploadCount, err = uploadCount(tx, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func uploadCount(tx *gorm.DB, userID uint) (int, error) {
	var u models.User
	if err := tx.Select("id", "upload_count").First(&u, userID).Error; err != nil {
		return 0, notFound(err, "user %d", userID)
	}
	return u.UploadCount, nil
}

// deleteOutfits removes outfits together with their calendar entries and links.
// Children go first so foreign keys never dangle mid-transaction.
func deleteOutfits(tx *gorm.DB, outfitIDs []uint) error {
	if len(outfitIDs) == 0 {
		return nil
	}
	if err := tx.Where("outfit_id IN ?", outfitIDs).Delete(&models.CalendarEntry{}).Error; err != nil {
		return fmt.Errorf("delete calendar entries: %w", err)
	}
	if err := tx.Where("outfit_id IN ?", outfitIDs).Delete(&models.OutfitItem{}).Error; err != nil {
		return fmt.Errorf("delete outfit links: %w", err)
	}
	if err := tx.Where("id IN ?", outfitIDs).Delete(&models.Outfit{}).Error; err != nil {
		return fmt.Errorf("delete outfits: %w", err)
	}
	return nil
}

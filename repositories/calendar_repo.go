package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/JabirC/Closet/models"
)

// CalendarRepository keeps at most one planned outfit per user per date.
type CalendarRepository interface {
	ListByUser(ctx context.Context, userID uint) ([]models.CalendarEntry, error)
	Upsert(ctx context.Context, userID uint, date string, outfitID uint) (*models.CalendarEntry, error)
	DeleteByDate(ctx context.Context, userID uint, date string) (deleted bool, err error)
}

type calendarRepo struct{ db *gorm.DB }

func NewCalendarRepository(db *gorm.DB) CalendarRepository {
	return &calendarRepo{db: db}
}

// ListByUser returns entries in date order with outfit and members resolved.
func (r *calendarRepo) ListByUser(ctx context.Context, userID uint) ([]models.CalendarEntry, error) {
	entries := []models.CalendarEntry{}
	err := withMembers(r.db.WithContext(ctx).Preload("Outfit"), "Outfit.Items").
		Where("user_id = ?", userID).
		Order("date ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// Upsert assigns outfitID to date, replacing any previous assignment (last write wins).
// The outfit must belong to userID, otherwise core.ErrNotFound.
func (r *calendarRepo) Upsert(ctx context.Context, userID uint, date string, outfitID uint) (*models.CalendarEntry, error) {
	var saved models.CalendarEntry
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var o models.Outfit
		if err := tx.Select("id").Where("id = ? AND user_id = ?", outfitID, userID).First(&o).Error; err != nil {
			return notFound(err, "outfit %d", outfitID)
		}

		entry := models.CalendarEntry{UserID: userID, Date: date, OutfitID: outfitID}
		if err := tx.Omit(clause.Associations).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"outfit_id", "updated_at"}),
		}).Create(&entry).Error; err != nil {
			return fmt.Errorf("upsert calendar entry: %w", err)
		}

		return withMembers(tx.Preload("Outfit"), "Outfit.Items").
			Where("user_id = ? AND date = ?", userID, date).
			First(&saved).Error
	})
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// DeleteByDate is idempotent: an empty date reports deleted=false and no error.
func (r *calendarRepo) DeleteByDate(ctx context.Context, userID uint, date string) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		Delete(&models.CalendarEntry{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/JabirC/Closet/core"
	"github.com/JabirC/Closet/models"
	"github.com/JabirC/Closet/repositories"
	"github.com/JabirC/Closet/utils/events"
)

// ClothingService covers the clothing item lifecycle.
type ClothingService interface {
	List(ctx context.Context, userID uint, category string) ([]models.ClothingItem, error)
	Create(ctx context.Context, userID uint, req models.CreateItemRequest) (item *models.ClothingItem, uploadCount int, err error)
	Delete(ctx context.Context, userID, itemID uint) (*models.ItemDeletion, error)
	Classify(ctx context.Context, imageURL string) (core.Classification, error)
}

type clothingService struct {
	repo       repositories.ClothingRepository
	quota      core.QuotaPolicy
	classifier Classifier
	bus        events.Publisher
	cache      *ProfileCache
}

func NewClothingService(repo repositories.ClothingRepository, quota core.QuotaPolicy, classifier Classifier, bus events.Publisher, cache *ProfileCache) ClothingService {
	return &clothingService{repo: repo, quota: quota, classifier: classifier, bus: bus, cache: cache}
}

// List returns the user's items newest first, optionally only one category.
func (s *clothingService) List(ctx context.Context, userID uint, category string) ([]models.ClothingItem, error) {
	category = strings.ToLower(strings.TrimSpace(category))
	if category != "" && !core.IsCategory(category) {
		return nil, fmt.Errorf("%w: unknown category %q", core.ErrValidation, category)
	}
	return s.repo.ListByUser(ctx, userID, category)
}

// Create validates the upload and stores it if the user's tier still has room.
func (s *clothingService) Create(ctx context.Context, userID uint, req models.CreateItemRequest) (*models.ClothingItem, int, error) {
	item := &models.ClothingItem{
		UserID:   userID,
		Name:     strings.TrimSpace(req.Name),
		Category: strings.ToLower(strings.TrimSpace(req.Category)),
		Tags:     core.NormalizeTags(req.Tags),
		ImageURL: strings.TrimSpace(req.ImageURL),
	}
	switch {
	case item.Name == "":
		return nil, 0, fmt.Errorf("%w: name is required", core.ErrValidation)
	case !core.IsCategory(item.Category):
		return nil, 0, fmt.Errorf("%w: unknown category %q", core.ErrValidation, req.Category)
	case item.ImageURL == "":
		return nil, 0, fmt.Errorf("%w: imageUrl is required", core.ErrValidation)
	}

	count, err := s.repo.CreateWithQuota(ctx, item, s.quota)
	if err != nil {
		logrus.WithError(err).WithField("user_id", userID).Warn("item create refused")
		return nil, 0, err
	}
	s.cache.Invalidate(ctx, userID)

	logrus.WithFields(logrus.Fields{"user_id": userID, "item_id": item.ID, "upload_count": count}).Info("item created")
	publish(ctx, s.bus, events.Event{
		Type:        events.ItemCreated,
		UserID:      userID,
		ResourceID:  item.ID,
		UploadCount: events.Count(count),
	})
	return item, count, nil
}

// Delete removes an owned item and everything that depended on it.
func (s *clothingService) Delete(ctx context.Context, userID, itemID uint) (*models.ItemDeletion, error) {
	res, err := s.repo.DeleteCascade(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, userID)

	logrus.WithFields(logrus.Fields{
		"user_id":         userID,
		"item_id":         itemID,
		"deleted_outfits": res.DeletedOutfitIDs,
		"updated_outfits": res.UpdatedOutfitIDs,
	}).Info("item deleted")

	affected := make([]uint, 0, len(res.DeletedOutfitIDs)+len(res.UpdatedOutfitIDs))
	affected = append(append(affected, res.DeletedOutfitIDs...), res.UpdatedOutfitIDs...)
	publish(ctx, s.bus, events.Event{
		Type:            events.ItemDeleted,
		UserID:          userID,
		ResourceID:      itemID,
		UploadCount:     events.Count(res.UploadCount),
		AffectedOutfits: affected,
	})
	for _, id := range res.DeletedOutfitIDs {
		publish(ctx, s.bus, events.Event{Type: events.OutfitDeleted, UserID: userID, ResourceID: id})
	}
	return res, nil
}

// Classify asks the configured classifier for a suggestion; nothing is stored.
func (s *clothingService) Classify(ctx context.Context, imageURL string) (core.Classification, error) {
	imageURL = strings.TrimSpace(imageURL)
	if imageURL == "" {
		return core.Classification{}, fmt.Errorf("%w: imageUrl is required", core.ErrValidation)
	}
	return s.classifier.Classify(ctx, imageURL)
}

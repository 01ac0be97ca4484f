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

type OutfitService interface {
	List(ctx context.Context, userID uint) ([]models.Outfit, error)
	Create(ctx context.Context, userID uint, req models.CreateOutfitRequest) (*models.Outfit, error)
	Delete(ctx context.Context, userID, outfitID uint) error
}

type outfitService struct {
	repo repositories.OutfitRepository
	bus  events.Publisher
}

func NewOutfitService(repo repositories.OutfitRepository, bus events.Publisher) OutfitService {
	return &outfitService{repo: repo, bus: bus}
}

func (s *outfitService) List(ctx context.Context, userID uint) ([]models.Outfit, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Create stores an outfit over the caller's own items. Repeated ids count once;
// an empty list is allowed.
func (s *outfitService) Create(ctx context.Context, userID uint, req models.CreateOutfitRequest) (*models.Outfit, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", core.ErrValidation)
	}
	o := &models.Outfit{UserID: userID, Name: name}
	if err := s.repo.Create(ctx, o, req.ClothingItemIDs); err != nil {
		logrus.WithError(err).WithField("user_id", userID).Warn("outfit create refused")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"user_id": userID, "outfit_id": o.ID, "items": len(o.Items)}).Info("outfit created")
	publish(ctx, s.bus, events.Event{Type: events.OutfitCreated, UserID: userID, ResourceID: o.ID})
	return o, nil
}

// Delete removes an owned outfit and unplans every date it was planned on.
func (s *outfitService) Delete(ctx context.Context, userID, outfitID uint) error {
	if err := s.repo.Delete(ctx, userID, outfitID); err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{"user_id": userID, "outfit_id": outfitID}).Info("outfit deleted")
	publish(ctx, s.bus, events.Event{Type: events.OutfitDeleted, UserID: userID, ResourceID: outfitID})
	return nil
}

package services

import (
	"context"

	"github.com/JabirC/Closet/models"
	"github.com/JabirC/Closet/repositories"
)

// SnapshotService renders everything a user owns in one response, so a client
// can refresh its whole view after any event.
type SnapshotService interface {
	Snapshot(ctx context.Context, userID uint) (*models.Snapshot, error)
}

type snapshotService struct {
	users    UserService
	clothes  repositories.ClothingRepository
	outfits  repositories.OutfitRepository
	calendar CalendarService
}

func NewSnapshotService(users UserService, clothes repositories.ClothingRepository, outfits repositories.OutfitRepository, calendar CalendarService) SnapshotService {
	return &snapshotService{users: users, clothes: clothes, outfits: outfits, calendar: calendar}
}

func (s *snapshotService) Snapshot(ctx context.Context, userID uint) (*models.Snapshot, error) {
	profile, err := s.users.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}
	clothes, err := s.clothes.ListByUser(ctx, userID, "")
	if err != nil {
		return nil, err
	}
	outfits, err := s.outfits.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	cal, err := s.calendar.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &models.Snapshot{Profile: *profile, Clothes: clothes, Outfits: outfits, Calendar: cal}, nil
}

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/JabirC/Closet/core"
	"github.com/JabirC/Closet/models"
)

// UserRepositoryMock is a testify/mock for repositories.UserRepository.
type UserRepositoryMock struct{ mock.Mock }

func (m *UserRepositoryMock) Create(ctx context.Context, u *models.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *UserRepositoryMock) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if v := args.Get(0); v != nil {
		return v.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserRepositoryMock) FindByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

// ClothingRepositoryMock is a testify/mock for repositories.ClothingRepository.
type ClothingRepositoryMock struct{ mock.Mock }

func (m *ClothingRepositoryMock) ListByUser(ctx context.Context, userID uint, category string) ([]models.ClothingItem, error) {
	args := m.Called(ctx, userID, category)
	if v := args.Get(0); v != nil {
		return v.([]models.ClothingItem), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ClothingRepositoryMock) CreateWithQuota(ctx context.Context, item *models.ClothingItem, quota core.QuotaPolicy) (int, error) {
	args := m.Called(ctx, item, quota)
	return args.Int(0), args.Error(1)
}

func (m *ClothingRepositoryMock) DeleteCascade(ctx context.Context, userID, itemID uint) (*models.ItemDeletion, error) {
	args := m.Called(ctx, userID, itemID)
	if v := args.Get(0); v != nil {
		return v.(*models.ItemDeletion), args.Error(1)
	}
	return nil, args.Error(1)
}

// OutfitRepositoryMock is a testify/mock for repositories.OutfitRepository.
type OutfitRepositoryMock struct{ mock.Mock }

func (m *OutfitRepositoryMock) ListByUser(ctx context.Context, userID uint) ([]models.Outfit, error) {
	args := m.Called(ctx, userID)
	if v := args.Get(0); v != nil {
		return v.([]models.Outfit), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *OutfitRepositoryMock) Create(ctx context.Context, outfit *models.Outfit, itemIDs []uint) error {
	return m.Called(ctx, outfit, itemIDs).Error(0)
}

func (m *OutfitRepositoryMock) Delete(ctx context.Context, userID, outfitID uint) error {
	return m.Called(ctx, userID, outfitID).Error(0)
}

// CalendarRepositoryMock is a testify/mock for repositories.CalendarRepository.
type CalendarRepositoryMock struct{ mock.Mock }

func (m *CalendarRepositoryMock) ListByUser(ctx context.Context, userID uint) ([]models.CalendarEntry, error) {
	args := m.Called(ctx, userID)
	if v := args.Get(0); v != nil {
		return v.([]models.CalendarEntry), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CalendarRepositoryMock) Upsert(ctx context.Context, userID uint, date string, outfitID uint) (*models.CalendarEntry, error) {
	args := m.Called(ctx, userID, date, outfitID)
	if v := args.Get(0); v != nil {
		return v.(*models.CalendarEntry), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CalendarRepositoryMock) DeleteByDate(ctx context.Context, userID uint, date string) (bool, error) {
	args := m.Called(ctx, userID, date)
	return args.Bool(0), args.Error(1)
}

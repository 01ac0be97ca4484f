package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/JabirC/Closet/core"
	"github.com/JabirC/Closet/models"
	"github.com/JabirC/Closet/utils/events"
)

// UserServiceMock is a testify/mock for services.UserService.
// Handlers are tested against these without real business logic.
type UserServiceMock struct{ mock.Mock }

func (m *UserServiceMock) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	if v := args.Get(0); v != nil {
		return v.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserServiceMock) Login(ctx context.Context, req models.LoginRequest, jwtSecret string, exp time.Duration) (string, error) {
	args := m.Called(ctx, req, jwtSecret, exp)
	return args.String(0), args.Error(1)
}

func (m *UserServiceMock) Profile(ctx context.Context, userID uint) (*models.Profile, error) {
	args := m.Called(ctx, userID)
	if v := args.Get(0); v != nil {
		return v.(*models.Profile), args.Error(1)
	}
	return nil, args.Error(1)
}

// ClothingServiceMock is a testify/mock for services.ClothingService.
type ClothingServiceMock struct{ mock.Mock }

func (m *ClothingServiceMock) List(ctx context.Context, userID uint, category string) ([]models.ClothingItem, error) {
	args := m.Called(ctx, userID, category)
	if v := args.Get(0); v != nil {
		return v.([]models.ClothingItem), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ClothingServiceMock) Create(ctx context.Context, userID uint, req models.CreateItemRequest) (*models.ClothingItem, int, error) {
	args := m.Called(ctx, userID, req)
	if v := args.Get(0); v != nil {
		return v.(*models.ClothingItem), args.Int(1), args.Error(2)
	}
	return nil, args.Int(1), args.Error(2)
}

func (m *ClothingServiceMock) Delete(ctx context.Context, userID, itemID uint) (*models.ItemDeletion, error) {
	args := m.Called(ctx, userID, itemID)
	if v := args.Get(0); v != nil {
		return v.(*models.ItemDeletion), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ClothingServiceMock) Classify(ctx context.Context, imageURL string) (core.Classification, error) {
	args := m.Called(ctx, imageURL)
	return args.Get(0).(core.Classification), args.Error(1)
}

// OutfitServiceMock is a testify/mock for services.OutfitService.
type OutfitServiceMock struct{ mock.Mock }

func (m *OutfitServiceMock) List(ctx context.Context, userID uint) ([]models.Outfit, error) {
	args := m.Called(ctx, userID)
	if v := args.Get(0); v != nil {
		return v.([]models.Outfit), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *OutfitServiceMock) Create(ctx context.Context, userID uint, req models.CreateOutfitRequest) (*models.Outfit, error) {
	args := m.Called(ctx, userID, req)
	if v := args.Get(0); v != nil {
		return v.(*models.Outfit), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *OutfitServiceMock) Delete(ctx context.Context, userID, outfitID uint) error {
	return m.Called(ctx, userID, outfitID).Error(0)
}

// CalendarServiceMock is a testify/mock for services.CalendarService.
type CalendarServiceMock struct{ mock.Mock }

func (m *CalendarServiceMock) Get(ctx context.Context, userID uint) (map[string]models.CalendarDay, error) {
	args := m.Called(ctx, userID)
	if v := args.Get(0); v != nil {
		return v.(map[string]models.CalendarDay), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CalendarServiceMock) Plan(ctx context.Context, userID uint, req models.PlanRequest) (*models.CalendarEntry, error) {
	args := m.Called(ctx, userID, req)
	if v := args.Get(0); v != nil {
		return v.(*models.CalendarEntry), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CalendarServiceMock) Unplan(ctx context.Context, userID uint, date string) error {
	return m.Called(ctx, userID, date).Error(0)
}

// SnapshotServiceMock is a testify/mock for services.SnapshotService.
type SnapshotServiceMock struct{ mock.Mock }

func (m *SnapshotServiceMock) Snapshot(ctx context.Context, userID uint) (*models.Snapshot, error) {
	args := m.Called(ctx, userID)
	if v := args.Get(0); v != nil {
		return v.(*models.Snapshot), args.Error(1)
	}
	return nil, args.Error(1)
}

// PublisherMock records published events.
type PublisherMock struct{ mock.Mock }

func (m *PublisherMock) Publish(ctx context.Context, ev events.Event) error {
	return m.Called(ctx, ev).Error(0)
}

// ClassifierMock is a testify/mock for services.Classifier.
type ClassifierMock struct{ mock.Mock }

func (m *ClassifierMock) Classify(ctx context.Context, imageURL string) (core.Classification, error) {
	args := m.Called(ctx, imageURL)
	return args.Get(0).(core.Classification), args.Error(1)
}

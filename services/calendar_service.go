package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/JabirC/Closet/core"
	"github.com/JabirC/Closet/models"
	"github.com/JabirC/Closet/repositories"
	"github.com/JabirC/Closet/utils/events"
)

// CalendarService plans outfits onto dates. A date is either absent or
// assigned to exactly one outfit.
type CalendarService interface {
	Get(ctx context.Context, userID uint) (map[string]models.CalendarDay, error)
	Plan(ctx context.Context, userID uint, req models.PlanRequest) (*models.CalendarEntry, error)
	Unplan(ctx context.Context, userID uint, date string) error
}

type calendarService struct {
	repo repositories.CalendarRepository
	bus  events.Publisher
}

func NewCalendarService(repo repositories.CalendarRepository, bus events.Publisher) CalendarService {
	return &calendarService{repo: repo, bus: bus}
}

// Get returns the calendar keyed by YYYY-MM-DD. Never nil.
func (s *calendarService) Get(ctx context.Context, userID uint) (map[string]models.CalendarDay, error) {
	entries, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	cal := make(map[string]models.CalendarDay, len(entries))
	for _, e := range entries {
		cal[e.Date] = models.CalendarDay{OutfitID: e.OutfitID, Outfit: e.Outfit}
	}
	return cal, nil
}

// Plan assigns (or re-assigns) an owned outfit to a date.
func (s *calendarService) Plan(ctx context.Context, userID uint, req models.PlanRequest) (*models.CalendarEntry, error) {
	date, err := core.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}
	if req.OutfitID == 0 {
		return nil, fmt.Errorf("%w: outfitId is required", core.ErrValidation)
	}

	entry, err := s.repo.Upsert(ctx, userID, date, req.OutfitID)
	if err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{"user_id": userID, "date": date, "outfit_id": req.OutfitID}).Info("outfit planned")
	publish(ctx, s.bus, events.Event{Type: events.CalendarPlanned, UserID: userID, ResourceID: req.OutfitID, Date: date})
	return entry, nil
}

// Unplan clears a date. Clearing an empty date succeeds without an event.
func (s *calendarService) Unplan(ctx context.Context, userID uint, date string) error {
	if date == "" {
		return fmt.Errorf("%w: date is required", core.ErrValidation)
	}
	date, err := core.ParseDate(date)
	if err != nil {
		return err
	}

	deleted, err := s.repo.DeleteByDate(ctx, userID, date)
	if err != nil {
		return err
	}
	if deleted {
		logrus.WithFields(logrus.Fields{"user_id": userID, "date": date}).Info("date unplanned")
		publish(ctx, s.bus, events.Event{Type: events.CalendarUnplanned, UserID: userID, Date: date})
	}
	return nil
}

package services // Use-case layer; orchestrates business rules, not HTTP/DB details.

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/JabirC/Closet/core"
	"github.com/JabirC/Closet/models"
	"github.com/JabirC/Closet/repositories"
	"github.com/JabirC/Closet/utils"
)

// UserService lists the account use-cases handlers can call.
type UserService interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req models.LoginRequest, jwtSecret string, exp time.Duration) (string, error)
	Profile(ctx context.Context, userID uint) (*models.Profile, error) // cache-aware; used by /me
}

type userService struct {
	repo  repositories.UserRepository
	cache *ProfileCache // may be nil
	quota core.QuotaPolicy
}

func NewUserService(repo repositories.UserRepository, cache *ProfileCache, quota core.QuotaPolicy) UserService {
	return &userService{repo: repo, cache: cache, quota: quota}
}

// Register creates a free-tier account with zero uploads and warms the profile cache.
func (s *userService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	name := core.NormalizeName(req.Name)
	if core.NameLength(name) < 2 {
		return nil, fmt.Errorf("%w: name must be at least 2 characters", core.ErrValidation)
	}

	_, err := s.repo.FindByEmail(ctx, req.Email)
	switch {
	case err == nil:
		logrus.WithField("email", req.Email).Warn("register email exists")
		return nil, core.ErrDuplicateEmail
	case !repositories.IsNotFound(err):
		return nil, fmt.Errorf("lookup email: %w", err)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		logrus.WithError(err).WithField("email", req.Email).Error("register hash error")
		return nil, err
	}

	u := &models.User{
		Name:        name,
		Email:       req.Email,
		Password:    hash,
		Tier:        core.TierFree,
		UploadCount: 0,
	}
	if err := s.repo.Create(ctx, u); err != nil { // sets u.ID; a racing duplicate surfaces as ErrDuplicateEmail
		logrus.WithError(err).WithField("email", req.Email).Error("register db create error")
		return nil, err
	}

	s.cache.Set(ctx, s.profileOf(u), 0) // new account, no generation yet
	logrus.WithFields(logrus.Fields{"user_id": u.ID, "email": u.Email}).Info("register success")
	return u, nil
}

// Login checks credentials and issues a signed session token. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *userService) Login(ctx context.Context, req models.LoginRequest, jwtSecret string, exp time.Duration) (string, error) {
	u, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		if !repositories.IsNotFound(err) {
			return "", fmt.Errorf("lookup email: %w", err)
		}
		logrus.WithField("email", req.Email).Warn("login user not found")
		return "", core.ErrInvalidCredentials
	}
	if !utils.CheckPassword(u.Password, req.Password) {
		logrus.WithField("email", req.Email).Warn("login wrong password")
		return "", core.ErrInvalidCredentials
	}

	signed, err := utils.IssueToken(u.ID, u.Email, jwtSecret, exp)
	if err != nil {
		logrus.WithError(err).WithField("user_id", u.ID).Error("login token sign error")
		return "", err
	}
	logrus.WithField("user_id", u.ID).Info("login success")
	return signed, nil
}

// Profile returns the user with quota numbers, preferring Redis over the DB.
// A token whose account no longer exists is Unauthenticated.
func (s *userService) Profile(ctx context.Context, userID uint) (*models.Profile, error) {
	p, gen, ok := s.cache.Get(ctx, userID) // gen is read before the DB so a racing Invalidate wins
	if ok {
		return p, nil
	}

	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, core.ErrUnauthenticated
		}
		return nil, err
	}

	p = s.profileOf(u)
	s.cache.Set(ctx, p, gen)
	return p, nil
}

func (s *userService) profileOf(u *models.User) *models.Profile {
	limit := s.quota.LimitFor(u.Tier)
	remaining := limit - u.UploadCount
	if remaining < 0 {
		remaining = 0
	}
	return &models.Profile{User: *u, UploadLimit: limit, RemainingUploads: remaining}
}

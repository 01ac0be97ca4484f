// Data-access layer: only talks to the database via GORM, no HTTP/JSON.
// Every query takes the request context so a cancelled request stops its SQL.
package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/JabirC/Closet/core"
	"github.com/JabirC/Closet/models"
)

// UserRepository defines the account operations the service layer expects.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id uint) (*models.User, error)
}

// userRepo holds a *gorm.DB that can talk to any dialect (mysql/postgres/sqlite/sqlserver).
type userRepo struct{ db *gorm.DB }

// NewUserRepository injects *gorm.DB and returns the interface.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

// Create inserts a new user. A unique-index violation on email becomes core.ErrDuplicateEmail.
func (r *userRepo) Create(ctx context.Context, u *models.User) error {
	err := r.db.WithContext(ctx).Create(u).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return core.ErrDuplicateEmail
	}
	return err
}

// FindByEmail returns gorm.ErrRecordNotFound when no row matches.
func (r *userRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// FindByID maps a missing row to core.ErrNotFound.
func (r *userRepo) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, notFound(err, "user %d", id)
	}
	return &u, nil
}

// IsNotFound checks GORM's "record not found" sentinel.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// notFound turns gorm.ErrRecordNotFound into core.ErrNotFound; other errors pass through.
func notFound(err error, format string, args ...any) error {
	if IsNotFound(err) {
		return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), core.ErrNotFound)
	}
	return err
}

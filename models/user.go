// GORM model + simple DTOs used in handlers.

package models

import "time"

// User represents an account. UploadCount always equals the number of
// ClothingItems the user currently owns; only the repositories change it.
type User struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:120;not null" json:"name"`
	Email       string    `gorm:"size:180;uniqueIndex;not null" json:"email"`
	Password    string    `gorm:"size:255;not null" json:"-"` // hashed
	Tier        string    `gorm:"size:20;not null;default:free" json:"tier"`
	UploadCount int       `gorm:"not null;default:0" json:"uploadCount"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// RegisterRequest is the expected payload for the register endpoint.
// Gin's binding tags add basic validation rules automatically.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=120"`
	Email    string `json:"email" binding:"required,email,max=180"`
	Password string `json:"password" binding:"required,min=6,max=72"` // bcrypt ignores bytes past 72
}

// LoginRequest is the expected payload for the login endpoint.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse holds the issued session token.
type AuthResponse struct {
	Token string `json:"token"`
}

// Profile is the user plus the quota numbers the upload banner needs.
type Profile struct {
	User             User `json:"user"`
	UploadLimit      int  `json:"uploadLimit"`
	RemainingUploads int  `json:"remainingUploads"`
}

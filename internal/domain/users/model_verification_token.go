package users

import "time"

type VerificationToken struct {
	ID        uint `gorm:"primaryKey"`
	UserID    uint `gorm:"index"`
	Token     string
	Type      string `gorm:"type:varchar(20);not null;default:'verify'"` // "verify" | "password_reset"
	ExpiresAt time.Time
	CreatedAt time.Time
}

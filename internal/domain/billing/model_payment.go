package billing

import (
	"time"

	"campus-portal/internal/domain/plans"
	"campus-portal/internal/domain/users"
)

type Payment struct {
	ID              uint `gorm:"primaryKey"`
	UserID          uint
	User            users.User
	PlanID          *uint
	Plan            *plans.Plan
	StripeSessionID string `gorm:"uniqueIndex"`
	AmountEUR       float64
	Status          string
	ReceiptURL      *string
	CreatedAt       time.Time
}

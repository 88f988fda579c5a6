package subscriptions

import (
	"time"

	"campus-portal/internal/domain/users"
)

type Subscription struct {
	ID     uint `gorm:"primaryKey"`
	UserID uint `gorm:"index:idx_subscriptions_user_active"`
	User   users.User

	Plan      string    `gorm:"type:varchar(20);not null"`
	StartDate time.Time `gorm:"column:start_date"`
	EndDate   time.Time `gorm:"column:end_date"`

	// Week ids unlocked by this subscription, computed once at activation.
	AllowedWeekIDs []uint `gorm:"column:allowed_week_ids;serializer:json"`

	HasESPAccess bool `gorm:"column:has_esp_access"`
	IsActive     bool `gorm:"column:is_active;index:idx_subscriptions_user_active"`

	StripeSessionID *string `gorm:"column:stripe_session_id;uniqueIndex:idx_subscriptions_stripe_session"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AllowsWeek reports whether the subscription unlocks the given week.
func (s *Subscription) AllowsWeek(weekID uint) bool {
	for _, id := range s.AllowedWeekIDs {
		if id == weekID {
			return true
		}
	}
	return false
}

// Expired checks the end date independently of IsActive. A row can still
// read is_active=true after its window has passed; expiry always wins.
func (s *Subscription) Expired(now time.Time) bool {
	return now.After(s.EndDate)
}

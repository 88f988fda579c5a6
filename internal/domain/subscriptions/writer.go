package subscriptions

import (
	"fmt"

	"gorm.io/gorm"
)

// Activate deactivates every prior active subscription of the user and
// inserts the new one inside a single transaction, so two near-simultaneous
// activations cannot leave zero or two active rows. Deactivate and insert
// are deliberately not exposed as separate steps.
func Activate(db *gorm.DB, userID uint, plan Plan, access Access, hasESP bool, stripeSessionID *string) (*Subscription, error) {
	sub := &Subscription{
		UserID:          userID,
		Plan:            string(plan),
		StartDate:       access.StartDate,
		EndDate:         access.EndDate,
		AllowedWeekIDs:  access.WeekIDs,
		HasESPAccess:    hasESP,
		IsActive:        true,
		StripeSessionID: stripeSessionID,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&Subscription{}).
			Where("user_id = ? AND is_active = ?", userID, true).
			Update("is_active", false).Error; err != nil {
			return fmt.Errorf("failed to deactivate previous subscriptions: %w", err)
		}
		if err := tx.Create(sub).Error; err != nil {
			return fmt.Errorf("failed to insert subscription: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sub, nil
}

// ActiveSubscription returns the user's current active subscription, or nil
// if there is none. Expiry is NOT checked here; callers decide what an
// expired-but-active row means for them.
func ActiveSubscription(db *gorm.DB, userID uint) (*Subscription, error) {
	var sub Subscription
	err := db.Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at DESC").
		First(&sub).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

package billing

import (
	"fmt"
	"time"

	"campus-portal/database"
	"campus-portal/internal/domain/billing"
	"campus-portal/internal/domain/plans"
	"campus-portal/internal/domain/subscriptions"
	"campus-portal/internal/domain/weeks"
)

// CompleteCheckout turns a paid checkout into an active subscription:
// compute the access window for the plan starting today, activate it
// (previous active rows are retired in the same transaction), and record the
// payment. Idempotent per session id — a replayed webhook returns the
// already-activated subscription.
func CompleteCheckout(userID uint, plan plans.Plan, stripeSessionID string, amountEUR float64) (*subscriptions.Subscription, error) {
	var existing subscriptions.Subscription
	if err := database.DB.Where("stripe_session_id = ?", stripeSessionID).
		First(&existing).Error; err == nil {
		return &existing, nil
	}

	tag, err := subscriptions.ParsePlan(plan.Tag)
	if err != nil {
		return nil, fmt.Errorf("plan %d misconfigured: %w", plan.ID, err)
	}

	access, err := subscriptions.CalculateAccess(weeks.Store{DB: database.DB}, tag, time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to calculate access window: %w", err)
	}
	if len(access.WeekIDs) == 0 {
		// Paid but nothing scheduled in the window. Kept as a legitimate
		// empty-entitlement state; logged so admins notice the gap.
		fmt.Printf("⚠️ subscription for user %d (%s) grants no weeks\n", userID, tag)
	}

	sub, err := subscriptions.Activate(database.DB, userID, tag, access, plan.IncludesESP, &stripeSessionID)
	if err != nil {
		return nil, err
	}

	payment := billing.Payment{
		UserID:          userID,
		PlanID:          &plan.ID,
		StripeSessionID: stripeSessionID,
		AmountEUR:       amountEUR,
		Status:          "paid",
	}
	if err := database.DB.Create(&payment).Error; err != nil {
		return nil, fmt.Errorf("subscription active but payment record failed: %w", err)
	}

	return sub, nil
}

package paymentwebhook

import (
	"errors"
	"fmt"
	"strconv"

	"campus-portal/database"
	billingapi "campus-portal/internal/api/billing"
	"campus-portal/internal/domain/plans"
	"campus-portal/internal/domain/users"
	stripestatus "campus-portal/internal/infra/stripe"

	"github.com/stripe/stripe-go/v75"
)

func handleCheckoutSessionCompleted(session *stripe.CheckoutSession) error {
	// Sessions can complete unpaid (async payment methods); only a settled
	// payment activates a subscription.
	if stripestatus.NormalizePaymentStatus(string(session.PaymentStatus)) != "paid" {
		return fmt.Errorf("checkout session %s not paid (status=%s)", session.ID, session.PaymentStatus)
	}

	userID, err := userIDFromSessionOrRef(session)
	if err != nil {
		return err
	}

	var user users.User
	if err := database.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		return fmt.Errorf("user not found: %w", err)
	}

	planID := ""
	if session.Metadata != nil {
		planID = session.Metadata["plan_id"]
	}
	if planID == "" {
		return errors.New("checkout session missing plan_id metadata")
	}

	var plan plans.Plan
	if err := database.DB.Where("id = ?", planID).First(&plan).Error; err != nil {
		return fmt.Errorf("plan not found for plan_id=%s: %w", planID, err)
	}

	amount := float64(session.AmountTotal) / 100.0

	if _, err := billingapi.CompleteCheckout(user.ID, plan, session.ID, amount); err != nil {
		return fmt.Errorf("failed to activate subscription after checkout: %w", err)
	}

	return nil
}

func userIDFromSessionOrRef(session *stripe.CheckoutSession) (uint, error) {
	userIDStr := ""
	if session.Metadata != nil {
		userIDStr = session.Metadata["user_id"]
	}
	if userIDStr == "" {
		userIDStr = session.ClientReferenceID
	}
	if userIDStr == "" {
		return 0, errors.New("missing user_id (metadata.user_id or client_reference_id)")
	}

	uid64, err := strconv.ParseUint(userIDStr, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid user_id %q: %w", userIDStr, err)
	}
	return uint(uid64), nil
}

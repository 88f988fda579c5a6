package stripe

import "strings"

// Stripe-ish normalization used ONLY for billing.Payment.Status
func NormalizePaymentStatus(s string) string {
	switch strings.TrimSpace(s) {
	case "":
		return "none"
	case "paid", "complete", "completed":
		return "paid"
	case "unpaid", "open":
		return "pending"
	case "expired", "canceled":
		return "canceled"
	default:
		return strings.TrimSpace(s)
	}
}

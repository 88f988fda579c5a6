package billing

import (
	"net/http"
	"time"

	"campus-portal/database"
	"campus-portal/internal/domain/subscriptions"

	"github.com/gin-gonic/gin"
)

type SubscriptionDTO struct {
	ID             uint      `json:"id"`
	Plan           string    `json:"plan"`
	StartDate      time.Time `json:"start_date"`
	EndDate        time.Time `json:"end_date"`
	AllowedWeekIDs []uint    `json:"allowed_week_ids"`
	HasESPAccess   bool      `json:"has_esp_access"`
	IsActive       bool      `json:"is_active"`
	Expired        bool      `json:"expired"`
}

func SubscriptionResponse(sub *subscriptions.Subscription) *SubscriptionDTO {
	if sub == nil {
		return nil
	}
	return &SubscriptionDTO{
		ID:             sub.ID,
		Plan:           sub.Plan,
		StartDate:      sub.StartDate,
		EndDate:        sub.EndDate,
		AllowedWeekIDs: sub.AllowedWeekIDs,
		HasESPAccess:   sub.HasESPAccess,
		IsActive:       sub.IsActive,
		Expired:        sub.Expired(time.Now()),
	}
}

// GET /subscription — the caller's current subscription, nil when none.
func GetMySubscription(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not identified"})
		return
	}

	sub, err := subscriptions.ActiveSubscription(database.DB, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load subscription"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"subscription": SubscriptionResponse(sub)})
}

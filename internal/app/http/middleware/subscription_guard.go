package middleware

import (
	"net/http"
	"time"

	"campus-portal/database"
	"campus-portal/internal/domain/subscriptions"

	"github.com/gin-gonic/gin"
)

// RequireActiveSubscription gates subscriber-only routes. Expiry is checked
// against the end date even when is_active still reads true.
func RequireActiveSubscription() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")

		sub, err := subscriptions.ActiveSubscription(database.DB, userID)
		if err != nil || sub == nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Subscription not found",
			})
			return
		}

		if sub.Expired(time.Now()) {
			c.AbortWithStatusJSON(http.StatusPaymentRequired, gin.H{
				"error": "Your subscription has expired",
			})
			return
		}

		c.Set("subscription", sub)
		c.Next()
	}
}

package users

import (
	"net/http"

	"campus-portal/database"
	billingapi "campus-portal/internal/api/billing"
	"campus-portal/internal/domain/subscriptions"
	"campus-portal/internal/domain/users"

	"github.com/gin-gonic/gin"
)

// GET /me
func GetCurrentUser(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not identified"})
		return
	}

	var user users.User
	if err := database.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	sub, err := subscriptions.ActiveSubscription(database.DB, user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load subscription"})
		return
	}

	c.JSON(http.StatusOK, MeResponse{
		ID:            user.ID,
		Name:          user.Name,
		Lastname:      user.Lastname,
		Email:         user.Email,
		Role:          user.Role,
		IsVerified:    user.IsVerified,
		AuthProvider:  user.AuthProvider,
		StudentNumber: user.StudentNumber,
		Faculty:       user.Faculty,
		StudyGroup:    user.StudyGroup,
		Subscription:  billingapi.SubscriptionResponse(sub),
		CreatedAt:     user.CreatedAt,
	})
}

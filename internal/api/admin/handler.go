package admin

import (
	"net/http"
	"time"

	"campus-portal/database"
	"campus-portal/internal/domain/billing"
	"campus-portal/internal/domain/esp"
	"campus-portal/internal/domain/subscriptions"
	"campus-portal/internal/domain/tickets"
	"campus-portal/internal/domain/users"

	"github.com/gin-gonic/gin"
)

type AdminStats struct {
	TotalStudents       int64          `json:"total_students"`
	ActiveSubscriptions int64          `json:"active_subscriptions"`
	SubscriptionsByPlan map[string]int `json:"subscriptions_by_plan"`
	TotalRevenue        float64        `json:"total_revenue"`
	RecentRevenue       float64        `json:"recent_revenue"`
	PendingESPRequests  int64          `json:"pending_esp_requests"`
	OpenTickets         int64          `json:"open_tickets"`
}

func Dashboard(c *gin.Context) {
	var stats AdminStats

	database.DB.Model(&users.User{}).Where("role = ?", "student").Count(&stats.TotalStudents)
	database.DB.Model(&subscriptions.Subscription{}).
		Where("is_active = ? AND end_date > ?", true, time.Now()).
		Count(&stats.ActiveSubscriptions)
	database.DB.Model(&esp.Request{}).Where("status = ?", esp.StatusPending).Count(&stats.PendingESPRequests)
	database.DB.Model(&tickets.Ticket{}).Where("status = ?", tickets.StatusOpen).Count(&stats.OpenTickets)

	stats.SubscriptionsByPlan = map[string]int{}
	var planCounts []struct {
		Plan  string
		Count int
	}
	database.DB.Model(&subscriptions.Subscription{}).
		Select("plan, count(*) as count").
		Where("is_active = ?", true).
		Group("plan").
		Scan(&planCounts)
	for _, pc := range planCounts {
		stats.SubscriptionsByPlan[pc.Plan] = pc.Count
	}

	database.DB.Model(&billing.Payment{}).
		Where("status = ?", "paid").
		Select("COALESCE(SUM(amount_eur), 0)").
		Scan(&stats.TotalRevenue)
	database.DB.Model(&billing.Payment{}).
		Where("status = ? AND created_at > ?", "paid", time.Now().AddDate(0, -1, 0)).
		Select("COALESCE(SUM(amount_eur), 0)").
		Scan(&stats.RecentRevenue)

	c.JSON(http.StatusOK, stats)
}

func ListAllUsers(c *gin.Context) {
	var result []users.User
	if err := database.DB.Order("created_at DESC").Find(&result).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": result})
}

func GetUserDetails(c *gin.Context) {
	var user users.User
	if err := database.DB.First(&user, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	sub, err := subscriptions.ActiveSubscription(database.DB, user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load subscription"})
		return
	}

	var payments []billing.Payment
	database.DB.Preload("Plan").Where("user_id = ?", user.ID).Order("created_at DESC").Find(&payments)

	c.JSON(http.StatusOK, gin.H{
		"user":         user,
		"subscription": sub,
		"payments":     payments,
	})
}

func ListAllPayments(c *gin.Context) {
	var payments []billing.Payment
	if err := database.DB.Preload("User").Preload("Plan").
		Order("created_at DESC").
		Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load payments"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"payments": payments})
}

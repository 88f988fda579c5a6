package plans

import (
	"net/http"

	"campus-portal/database"
	"campus-portal/internal/domain/plans"
	"campus-portal/internal/domain/subscriptions"

	"github.com/gin-gonic/gin"
)

func ListPlans(c *gin.Context) {
	var result []plans.Plan
	if err := database.DB.Order("price_eur ASC").Find(&result).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load plans"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"plans": result})
}

// POST /admin/plans — catalog rows are admin-managed; the tag must be one of
// the three known plans so checkout can never sell an uncomputable window.
func CreatePlan(c *gin.Context) {
	var input struct {
		Name          string  `json:"name" binding:"required"`
		PriceEUR      float64 `json:"price_eur" binding:"required"`
		StripePriceID string  `json:"stripe_price_id" binding:"required"`
		Tag           string  `json:"tag" binding:"required"`
		IncludesESP   bool    `json:"includes_esp"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tag, err := subscriptions.ParsePlan(input.Tag)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "tag must be weekly, monthly or semester"})
		return
	}

	plan := plans.Plan{
		Name:          input.Name,
		PriceEUR:      input.PriceEUR,
		StripePriceID: input.StripePriceID,
		Tag:           string(tag),
		IncludesESP:   input.IncludesESP,
	}
	if err := database.DB.Create(&plan).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Plan with this price id may already exist"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"plan": plan})
}

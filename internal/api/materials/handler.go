package materials

import (
	"net/http"
	"strconv"
	"time"

	"campus-portal/database"
	"campus-portal/internal/domain/materials"
	"campus-portal/internal/domain/subscriptions"

	"github.com/gin-gonic/gin"
)

// callerSubscription pulls the subscription the guard middleware loaded.
func callerSubscription(c *gin.Context) *subscriptions.Subscription {
	value, exists := c.Get("subscription")
	if !exists {
		return nil
	}
	sub, _ := value.(*subscriptions.Subscription)
	return sub
}

// GET /materials — everything inside the caller's paid weeks, newest first.
func ListMyMaterials(c *gin.Context) {
	sub := callerSubscription(c)
	if sub == nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "Subscription required"})
		return
	}

	if len(sub.AllowedWeekIDs) == 0 {
		c.JSON(http.StatusOK, gin.H{"materials": []materials.Material{}})
		return
	}

	var result []materials.Material
	if err := database.DB.Preload("Week").
		Where("week_id IN ?", sub.AllowedWeekIDs).
		Order("created_at DESC").
		Find(&result).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load materials"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"materials": result})
}

// GET /materials/:id/download — authorize a single download. The guard is
// recomputed here even though the route already sits behind the
// subscription middleware: the material's week still has to be inside the
// paid window.
func AuthorizeDownload(c *gin.Context) {
	userID := c.GetUint("user_id")

	materialID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid material id"})
		return
	}

	allowed, err := subscriptions.CanAccessMaterial(database.DB, userID, uint(materialID), time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check access"})
		return
	}
	if !allowed {
		c.JSON(http.StatusForbidden, gin.H{"error": "This material is not part of your subscription"})
		return
	}

	var material materials.Material
	if err := database.DB.First(&material, materialID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Material not found"})
		return
	}

	url, err := SignedDownloadURL(material, 10*time.Minute)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign download"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url, "expires_in": 600})
}

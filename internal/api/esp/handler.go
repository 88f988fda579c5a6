package esp

import (
	"net/http"
	"time"

	"campus-portal/database"
	"campus-portal/internal/domain/esp"
	"campus-portal/internal/domain/subscriptions"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// POST /esp/requests — only subscribers whose plan bundles ESP access may
// hand in proxy tasks.
func CreateRequest(c *gin.Context) {
	userID := c.GetUint("user_id")

	sub, err := subscriptions.ActiveSubscription(database.DB, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load subscription"})
		return
	}
	if sub == nil || sub.Expired(time.Now()) || !sub.HasESPAccess {
		c.JSON(http.StatusForbidden, gin.H{"error": "Your subscription does not include ESP Trust"})
		return
	}

	var input struct {
		TaskType string `json:"task_type" binding:"required"`
		Details  string `json:"details" binding:"required"`
		Deadline string `json:"deadline"` // RFC 3339, optional
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	request := esp.Request{
		UserID:        userID,
		ReferenceCode: uuid.NewString(),
		TaskType:      input.TaskType,
		Details:       input.Details,
		Status:        esp.StatusPending,
	}
	if input.Deadline != "" {
		deadline, err := time.Parse(time.RFC3339, input.Deadline)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "deadline must be RFC 3339"})
			return
		}
		request.Deadline = &deadline
	}

	if err := database.DB.Create(&request).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create request"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"request": request})
}

// GET /esp/requests
func ListMyRequests(c *gin.Context) {
	var result []esp.Request
	if err := database.DB.Where("user_id = ?", c.GetUint("user_id")).
		Order("created_at DESC").
		Find(&result).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load requests"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": result})
}

// GET /admin/esp/requests?status=pending
func ListAllRequests(c *gin.Context) {
	query := database.DB.Preload("User")
	if status := c.Query("status"); status != "" {
		if !esp.ValidStatus(status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown status"})
			return
		}
		query = query.Where("status = ?", status)
	}

	var result []esp.Request
	if err := query.Order("created_at ASC").Find(&result).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load requests"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": result})
}

// PUT /admin/esp/requests/:id — move a request through the queue.
func UpdateRequestStatus(c *gin.Context) {
	var request esp.Request
	if err := database.DB.First(&request, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Request not found"})
		return
	}

	var input struct {
		Status     string `json:"status" binding:"required"`
		StaffNotes string `json:"staff_notes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !esp.ValidStatus(input.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown status"})
		return
	}
	if !esp.ValidTransition(request.Status, input.Status) {
		c.JSON(http.StatusConflict, gin.H{"error": "Cannot move request from " + request.Status + " to " + input.Status})
		return
	}

	request.Status = input.Status
	if input.StaffNotes != "" {
		request.StaffNotes = input.StaffNotes
	}

	if err := database.DB.Save(&request).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update request"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"request": request})
}

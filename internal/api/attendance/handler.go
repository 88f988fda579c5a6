package attendance

import (
	"net/http"
	"time"

	"campus-portal/database"
	"campus-portal/internal/domain/attendance"
	"campus-portal/internal/domain/users"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm/clause"
)

// GET /attendance — the caller's own records, optional ?from=&to= (YYYY-MM-DD).
func GetMyAttendance(c *gin.Context) {
	userID := c.GetUint("user_id")

	query := database.DB.Where("user_id = ?", userID)
	if from := c.Query("from"); from != "" {
		t, err := time.ParseInLocation(time.DateOnly, from, time.UTC)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "from must be YYYY-MM-DD"})
			return
		}
		query = query.Where("date >= ?", t)
	}
	if to := c.Query("to"); to != "" {
		t, err := time.ParseInLocation(time.DateOnly, to, time.UTC)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "to must be YYYY-MM-DD"})
			return
		}
		query = query.Where("date <= ?", t)
	}

	var records []attendance.Record
	if err := query.Order("date DESC").Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load attendance"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"records": records})
}

// POST /admin/attendance — upsert on (user, date): re-marking the same day
// overwrites instead of stacking rows.
func MarkAttendance(c *gin.Context) {
	var input struct {
		UserID  uint   `json:"user_id" binding:"required"`
		Date    string `json:"date" binding:"required"`
		Subject string `json:"subject"`
		Status  string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !attendance.ValidStatus(input.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status must be present, absent or late"})
		return
	}

	date, err := time.ParseInLocation(time.DateOnly, input.Date, time.UTC)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	var student users.User
	if err := database.DB.First(&student, input.UserID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Student not found"})
		return
	}

	record := attendance.Record{
		UserID:     student.ID,
		Date:       date,
		Subject:    input.Subject,
		Status:     input.Status,
		MarkedByID: c.GetUint("user_id"),
	}
	if err := database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"subject", "status", "marked_by_id", "updated_at"}),
	}).Create(&record).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark attendance"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"record": record})
}

// GET /admin/attendance/:userId
func GetStudentAttendance(c *gin.Context) {
	var records []attendance.Record
	if err := database.DB.Where("user_id = ?", c.Param("userId")).
		Order("date DESC").
		Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load attendance"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"records": records})
}

package exams

import (
	"net/http"
	"time"

	"campus-portal/database"
	"campus-portal/internal/domain/exams"

	"github.com/gin-gonic/gin"
)

// GET /exams — upcoming exams; the schedule is public to all students.
func ListUpcomingExams(c *gin.Context) {
	var result []exams.Exam
	if err := database.DB.Where("date >= ?", time.Now()).
		Order("date ASC").
		Find(&result).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load exams"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"exams": result})
}

type examInput struct {
	Title           string `json:"title" binding:"required"`
	Subject         string `json:"subject" binding:"required"`
	Date            string `json:"date" binding:"required"` // RFC 3339
	Location        string `json:"location"`
	DurationMinutes int    `json:"duration_minutes"`
	Notes           string `json:"notes"`
}

// POST /admin/exams
func CreateExam(c *gin.Context) {
	var input examInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := time.Parse(time.RFC3339, input.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be RFC 3339"})
		return
	}

	exam := exams.Exam{
		Title:           input.Title,
		Subject:         input.Subject,
		Date:            date,
		Location:        input.Location,
		DurationMinutes: input.DurationMinutes,
		Notes:           input.Notes,
	}
	if err := database.DB.Create(&exam).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create exam"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"exam": exam})
}

// PUT /admin/exams/:id
func UpdateExam(c *gin.Context) {
	var exam exams.Exam
	if err := database.DB.First(&exam, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Exam not found"})
		return
	}

	var input examInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := time.Parse(time.RFC3339, input.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be RFC 3339"})
		return
	}

	exam.Title = input.Title
	exam.Subject = input.Subject
	exam.Date = date
	exam.Location = input.Location
	exam.DurationMinutes = input.DurationMinutes
	exam.Notes = input.Notes

	if err := database.DB.Save(&exam).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update exam"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"exam": exam})
}

// DELETE /admin/exams/:id
func DeleteExam(c *gin.Context) {
	if err := database.DB.Delete(&exams.Exam{}, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete exam"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Exam deleted"})
}

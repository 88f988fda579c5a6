package weeks

import (
	"net/http"
	"time"

	"campus-portal/database"
	"campus-portal/internal/domain/weeks"

	"github.com/gin-gonic/gin"
)

type weekInput struct {
	Number    int    `json:"number" binding:"required"`
	Name      string `json:"name" binding:"required"`
	StartDate string `json:"start_date" binding:"required"` // YYYY-MM-DD
	EndDate   string `json:"end_date" binding:"required"`
}

func parseDay(s string) (time.Time, bool) {
	t, err := time.ParseInLocation(time.DateOnly, s, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// GET /admin/weeks
func ListWeeks(c *gin.Context) {
	var result []weeks.Week
	if err := database.DB.Order("start_date ASC").Find(&result).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load weeks"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"weeks": result})
}

// POST /admin/weeks — month/year are derived from the start date so the
// monthly-plan lookup can never disagree with the stored range.
func CreateWeek(c *gin.Context) {
	var input weekInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start, ok := parseDay(input.StartDate)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start_date must be YYYY-MM-DD"})
		return
	}
	end, ok := parseDay(input.EndDate)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end_date must be YYYY-MM-DD"})
		return
	}
	if !end.After(start) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end_date must be after start_date"})
		return
	}

	week := weeks.Week{
		Number:    input.Number,
		Name:      input.Name,
		StartDate: start,
		EndDate:   end,
		Month:     int(start.Month()),
		Year:      start.Year(),
	}
	if err := database.DB.Create(&week).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create week"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"week": week})
}

// PUT /admin/weeks/:id
func UpdateWeek(c *gin.Context) {
	var week weeks.Week
	if err := database.DB.First(&week, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Week not found"})
		return
	}

	var input weekInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start, ok := parseDay(input.StartDate)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start_date must be YYYY-MM-DD"})
		return
	}
	end, ok := parseDay(input.EndDate)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end_date must be YYYY-MM-DD"})
		return
	}
	if !end.After(start) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end_date must be after start_date"})
		return
	}

	week.Number = input.Number
	week.Name = input.Name
	week.StartDate = start
	week.EndDate = end
	week.Month = int(start.Month())
	week.Year = start.Year()

	if err := database.DB.Save(&week).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update week"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"week": week})
}

// DELETE /admin/weeks/:id
func DeleteWeek(c *gin.Context) {
	if err := database.DB.Delete(&weeks.Week{}, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete week"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Week deleted"})
}

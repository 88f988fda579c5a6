package materials

import (
	"net/http"

	"campus-portal/database"
	"campus-portal/internal/domain/materials"
	"campus-portal/internal/domain/weeks"

	"github.com/gin-gonic/gin"
)

// POST /admin/weeks/:id/materials
func CreateMaterial(c *gin.Context) {
	var week weeks.Week
	if err := database.DB.First(&week, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Week not found"})
		return
	}

	var input struct {
		Title       string `json:"title" binding:"required"`
		Description string `json:"description"`
		Subject     string `json:"subject"`
		FileName    string `json:"file_name"`
		StoragePath string `json:"storage_path" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	material := materials.Material{
		WeekID:       week.ID,
		Title:        input.Title,
		Description:  input.Description,
		Subject:      input.Subject,
		FileName:     input.FileName,
		StoragePath:  input.StoragePath,
		UploadedByID: c.GetUint("user_id"),
	}
	if err := database.DB.Create(&material).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create material"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"material": material})
}

// GET /admin/weeks/:id/materials
func ListWeekMaterials(c *gin.Context) {
	var result []materials.Material
	if err := database.DB.Where("week_id = ?", c.Param("id")).
		Order("created_at DESC").
		Find(&result).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load materials"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"materials": result})
}

// DELETE /admin/materials/:id
func DeleteMaterial(c *gin.Context) {
	if err := database.DB.Delete(&materials.Material{}, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete material"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Material deleted"})
}

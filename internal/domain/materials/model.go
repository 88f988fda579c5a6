package materials

import (
	"time"

	"campus-portal/internal/domain/weeks"
)

type Material struct {
	ID     uint `gorm:"primaryKey"`
	WeekID uint `gorm:"column:week_id;index"`
	Week   weeks.Week

	Title       string `gorm:"not null"`
	Description string
	Subject     string
	FileName    string
	// Object key in the external storage bucket; the bytes themselves never
	// pass through this service.
	StoragePath string `gorm:"column:storage_path"`

	UploadedByID uint `gorm:"column:uploaded_by_id"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

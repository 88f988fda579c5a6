package attendance

import (
	"time"

	"campus-portal/internal/domain/users"
)

const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
	StatusLate    = "late"
)

type Record struct {
	ID     uint `gorm:"primaryKey"`
	UserID uint `gorm:"index:idx_attendance_user_date,unique"`
	User   users.User

	Date    time.Time `gorm:"column:date;index:idx_attendance_user_date,unique"`
	Subject string
	Status  string `gorm:"type:varchar(10);not null"`

	MarkedByID uint `gorm:"column:marked_by_id"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func ValidStatus(s string) bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusLate:
		return true
	}
	return false
}

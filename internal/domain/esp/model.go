package esp

import (
	"time"

	"campus-portal/internal/domain/users"
)

// Request is one ESP Trust proxy-task: the student hands a task on the
// third-party academic portal to the staff queue. Available only while the
// active subscription carries has_esp_access.
type Request struct {
	ID     uint `gorm:"primaryKey"`
	UserID uint `gorm:"index"`
	User   users.User

	// ReferenceCode is shown to the student and quoted in support exchanges.
	ReferenceCode string `gorm:"column:reference_code;uniqueIndex"`

	TaskType string `gorm:"type:varchar(30);not null"`
	Details  string
	Deadline *time.Time

	Status     string `gorm:"type:varchar(20);not null;default:'pending'"`
	StaffNotes string `gorm:"column:staff_notes"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusRejected   = "rejected"
)

func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusRejected:
		return true
	}
	return false
}

// ValidTransition keeps the queue one-directional: staff can move a pending
// request forward or reject it, and an in-progress one to a terminal state.
func ValidTransition(from, to string) bool {
	switch from {
	case StatusPending:
		return to == StatusInProgress || to == StatusRejected
	case StatusInProgress:
		return to == StatusCompleted || to == StatusRejected
	}
	return false
}

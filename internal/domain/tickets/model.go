package tickets

import (
	"time"

	"campus-portal/internal/domain/users"
)

const (
	StatusOpen     = "open"
	StatusAnswered = "answered"
	StatusClosed   = "closed"
)

type Ticket struct {
	ID     uint `gorm:"primaryKey"`
	UserID uint `gorm:"index"`
	User   users.User

	ReferenceCode string `gorm:"column:reference_code;uniqueIndex"`
	Subject       string `gorm:"not null"`
	Body          string
	Status        string `gorm:"type:varchar(10);not null;default:'open'"`

	Replies []Reply

	CreatedAt time.Time
	UpdatedAt time.Time
}

type Reply struct {
	ID       uint `gorm:"primaryKey"`
	TicketID uint `gorm:"index"`
	AuthorID uint `gorm:"column:author_id"`
	// FromStaff distinguishes helpdesk answers from student follow-ups.
	FromStaff bool `gorm:"column:from_staff"`
	Body      string

	CreatedAt time.Time
}

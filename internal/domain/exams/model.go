package exams

import "time"

type Exam struct {
	ID              uint `gorm:"primaryKey"`
	Title           string
	Subject         string
	Date            time.Time `gorm:"column:date;index"`
	Location        string
	DurationMinutes int
	Notes           string

	CreatedAt time.Time
	UpdatedAt time.Time
}

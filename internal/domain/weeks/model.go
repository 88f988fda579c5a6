package weeks

import "time"

// Week is one admin-defined academic calendar week, the unit of
// content entitlement for subscriptions.
type Week struct {
	ID        uint `gorm:"primaryKey"`
	Number    int  `gorm:"column:number"`
	Name      string
	StartDate time.Time `gorm:"column:start_date;index"`
	EndDate   time.Time `gorm:"column:end_date;index"`
	Month     int       `gorm:"index:idx_weeks_month_year"`
	Year      int       `gorm:"index:idx_weeks_month_year"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

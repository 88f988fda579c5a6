package weeks

import (
	"time"

	"gorm.io/gorm"
)

// DateOnly truncates t to midnight UTC. Week boundaries are stored and
// compared as UTC dates; all callers normalize through here.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// WeekContaining returns the week whose [start_date, end_date] inclusively
// contains date, or nil if none is configured. An empty result is not an
// error: it means no content is scheduled for that date.
func WeekContaining(db *gorm.DB, date time.Time) (*Week, error) {
	d := DateOnly(date)

	var week Week
	err := db.Where("start_date <= ? AND end_date >= ?", d, d).First(&week).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &week, nil
}

// WeeksInMonth returns every week whose stored month/year match exactly.
// Calendar-month semantics, not a rolling 30-day window.
func WeeksInMonth(db *gorm.DB, month int, year int) ([]Week, error) {
	var result []Week
	err := db.Where("month = ? AND year = ?", month, year).Find(&result).Error
	return result, err
}

// WeeksInRange returns every week whose [start_date, end_date] overlaps
// [start, end], inclusive on both bounds. A week straddling either bound is
// included; a week entirely outside is not.
func WeeksInRange(db *gorm.DB, start time.Time, end time.Time) ([]Week, error) {
	var result []Week
	err := db.Where("end_date >= ? AND start_date <= ?", DateOnly(start), DateOnly(end)).
		Find(&result).Error
	return result, err
}

// Store adapts the package-level lookups to the subscriptions.WeekSource
// interface so the access calculator stays decoupled from gorm.
type Store struct {
	DB *gorm.DB
}

func (s Store) WeekContaining(date time.Time) (*Week, error) {
	return WeekContaining(s.DB, date)
}

func (s Store) WeeksInMonth(month int, year int) ([]Week, error) {
	return WeeksInMonth(s.DB, month, year)
}

func (s Store) WeeksInRange(start time.Time, end time.Time) ([]Week, error) {
	return WeeksInRange(s.DB, start, end)
}

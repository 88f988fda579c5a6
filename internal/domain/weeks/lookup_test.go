package weeks

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func mockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() {
		db.Close()
	})

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open gorm: %v", err)
	}
	return gdb, mock
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWeekContainingFound(t *testing.T) {
	gdb, mock := mockDB(t)

	rows := sqlmock.NewRows([]string{"id", "number", "name", "start_date", "end_date", "month", "year"}).
		AddRow(3, 10, "Week 10", day(2026, 3, 1), day(2026, 3, 7), 3, 2026)
	mock.ExpectQuery(`SELECT \* FROM "weeks" WHERE start_date <= \$1 AND end_date >= \$2`).
		WillReturnRows(rows)

	week, err := WeekContaining(gdb, day(2026, 3, 3))
	if err != nil {
		t.Fatalf("WeekContaining returned error: %v", err)
	}
	if week == nil || week.ID != 3 {
		t.Fatalf("expected week 3, got %+v", week)
	}
}

func TestWeekContainingNotFoundIsNotAnError(t *testing.T) {
	gdb, mock := mockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "weeks"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	week, err := WeekContaining(gdb, day(2026, 8, 1))
	if err != nil {
		t.Fatalf("empty result must not be an error, got %v", err)
	}
	if week != nil {
		t.Fatalf("expected nil week, got %+v", week)
	}
}

func TestWeeksInMonthFiltersExactly(t *testing.T) {
	gdb, mock := mockDB(t)

	rows := sqlmock.NewRows([]string{"id", "month", "year"}).
		AddRow(1, 3, 2026).
		AddRow(2, 3, 2026)
	mock.ExpectQuery(`SELECT \* FROM "weeks" WHERE month = \$1 AND year = \$2`).
		WithArgs(3, 2026).
		WillReturnRows(rows)

	result, err := WeeksInMonth(gdb, 3, 2026)
	if err != nil {
		t.Fatalf("WeeksInMonth returned error: %v", err)
	}
	if len(result) != 2 {
		t.Fatalf("expected 2 weeks, got %d", len(result))
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestWeeksInRangeUsesOverlap(t *testing.T) {
	gdb, mock := mockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "weeks" WHERE end_date >= \$1 AND start_date <= \$2`).
		WithArgs(day(2026, 2, 1), day(2026, 6, 1)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2).AddRow(3))

	result, err := WeeksInRange(gdb, day(2026, 2, 1), day(2026, 6, 1))
	if err != nil {
		t.Fatalf("WeeksInRange returned error: %v", err)
	}
	if len(result) != 2 {
		t.Fatalf("expected 2 weeks, got %d", len(result))
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDateOnlyTruncatesToUTC(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	// 01:30 local on March 4 is still March 3 in UTC.
	in := time.Date(2026, 3, 4, 1, 30, 0, 0, loc)

	got := DateOnly(in)
	if !got.Equal(day(2026, 3, 3)) {
		t.Errorf("expected 2026-03-03 UTC, got %v", got)
	}
}

package subscriptions

import (
	"testing"

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

// Activate must retire old rows and insert the new one in one transaction,
// so a concurrent activation can never observe zero or two active rows.
func TestActivateIsTransactional(t *testing.T) {
	gdb, mock := mockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "subscriptions" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO "subscriptions"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectCommit()

	access := Access{
		StartDate: day(2026, 3, 3),
		EndDate:   day(2026, 3, 10),
		WeekIDs:   []uint{1},
	}

	sub, err := Activate(gdb, 42, PlanWeekly, access, false, nil)
	if err != nil {
		t.Fatalf("Activate returned error: %v", err)
	}
	if sub.ID != 7 {
		t.Errorf("expected inserted id 7, got %d", sub.ID)
	}
	if !sub.IsActive {
		t.Error("new subscription must be active")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestActivateRollsBackOnInsertFailure(t *testing.T) {
	gdb, mock := mockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "subscriptions" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO "subscriptions"`).
		WillReturnError(gorm.ErrInvalidData)
	mock.ExpectRollback()

	access := Access{
		StartDate: day(2026, 3, 3),
		EndDate:   day(2026, 3, 10),
		WeekIDs:   []uint{1},
	}

	if _, err := Activate(gdb, 42, PlanWeekly, access, false, nil); err == nil {
		t.Fatal("expected error when insert fails")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestActiveSubscriptionNotFound(t *testing.T) {
	gdb, mock := mockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "subscriptions"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	sub, err := ActiveSubscription(gdb, 42)
	if err != nil {
		t.Fatalf("ActiveSubscription returned error: %v", err)
	}
	if sub != nil {
		t.Errorf("expected nil subscription, got %+v", sub)
	}
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"campus-portal/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupGuardRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

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
	database.DB = gdb

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", uint(42))
	})
	r.Use(RequireActiveSubscription())
	r.GET("/guarded", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r, mock
}

func subscriptionRow(end time.Time) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "user_id", "plan", "start_date", "end_date",
		"allowed_week_ids", "has_esp_access", "is_active",
	}).AddRow(1, 42, "monthly", end.AddDate(0, -1, 0), end, "[1,2]", false, true)
}

func TestGuardAllowsActiveSubscriber(t *testing.T) {
	r, mock := setupGuardRouter(t)

	mock.ExpectQuery(`SELECT \* FROM "subscriptions"`).
		WillReturnRows(subscriptionRow(time.Now().AddDate(0, 0, 7)))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/guarded", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestGuardRejectsWithoutSubscription(t *testing.T) {
	r, mock := setupGuardRouter(t)

	mock.ExpectQuery(`SELECT \* FROM "subscriptions"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/guarded", nil))

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d: %s", w.Code, w.Body.String())
	}
}

func TestGuardRejectsExpiredSubscription(t *testing.T) {
	r, mock := setupGuardRouter(t)

	// Row still reads is_active=true but its window has passed.
	mock.ExpectQuery(`SELECT \* FROM "subscriptions"`).
		WillReturnRows(subscriptionRow(time.Now().AddDate(0, 0, -1)))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/guarded", nil))

	if w.Code != http.StatusPaymentRequired {
		t.Fatalf("expected 402, got %d: %s", w.Code, w.Body.String())
	}
}

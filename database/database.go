package database

import (
	"fmt"
	"log"
	"os"

	"campus-portal/internal/domain/attendance"
	"campus-portal/internal/domain/billing"
	"campus-portal/internal/domain/esp"
	"campus-portal/internal/domain/exams"
	"campus-portal/internal/domain/materials"
	"campus-portal/internal/domain/plans"
	"campus-portal/internal/domain/subscriptions"
	"campus-portal/internal/domain/tickets"
	"campus-portal/internal/domain/users"
	"campus-portal/internal/domain/weeks"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		log.Fatal("❌ DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}

	DB = db

	if err := DB.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		log.Fatal("❌ Failed to enable pgcrypto extension:", err)
	}

	if err := DB.AutoMigrate(
		// core
		&users.User{},
		&users.VerificationToken{},
		&plans.Plan{},
		&billing.Payment{},

		// paywall
		&weeks.Week{},
		&subscriptions.Subscription{},
		&materials.Material{},

		// campus
		&attendance.Record{},
		&exams.Exam{},
		&esp.Request{},
		&tickets.Ticket{},
		&tickets.Reply{},
	); err != nil {
		log.Fatal("❌ AutoMigrate error:", err)
	}

	fmt.Println("✅ Connected and migrated successfully")
}

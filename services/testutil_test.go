package services

import (
	"fmt"
	"testing"

	"workzen/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory database and migrates the schema.
// Report is left out: its text[] column type only exists on Postgres.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Attendance{},
		&models.Leave{},
		&models.LeaveBalance{},
		&models.Payslip{},
		&models.SalaryAdjustment{},
		&models.Badge{},
		&models.Certification{},
		&models.Notification{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, loginID, email string, salary float64) *models.User {
	t.Helper()

	user := models.User{
		LoginID:     loginID,
		Email:       email,
		FullName:    "Test User " + loginID,
		Role:        "EMPLOYEE",
		Department:  "Engineering",
		BasicSalary: salary,
		IsActive:    true,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return &user
}

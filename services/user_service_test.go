package services

import (
	"strings"
	"testing"
	"time"

	"workzen/constants"
	apperrors "workzen/errors"
	"workzen/models"
	"workzen/utils"
)

func TestGenerateLoginIDSerials(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(UserServiceOptions{DB: db})

	year := time.Now().Year()
	prefix := utils.LoginIDPrefix("John", "Smith", year)

	first, err := svc.GenerateLoginID("John", "Smith", year)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if first != prefix+"0001" {
		t.Errorf("first id = %q, want %q", first, prefix+"0001")
	}

	// Insert a user with the generated id; the next serial must advance.
	createTestUser(t, db, first, "john@workzen.test", 30000)

	second, err := svc.GenerateLoginID("Jane", "Smyth", year)
	if err != nil {
		t.Fatalf("generate second: %v", err)
	}
	if strings.HasPrefix(second, prefix) {
		t.Fatalf("different name must get a different prefix, got %q", second)
	}

	third, err := svc.GenerateLoginID("Jonas", "Smedt", year)
	if err != nil {
		t.Fatalf("generate third: %v", err)
	}
	if third != prefix+"0002" {
		t.Errorf("matching prefix id = %q, want %q", third, prefix+"0002")
	}
}

func TestCreateEmployeeDefaults(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(UserServiceOptions{DB: db})

	user, tempPassword, err := svc.CreateEmployee(NewEmployee{
		FirstName: "Priya",
		LastName:  "Sharma",
		Email:     "priya@workzen.test",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if user.Role != constants.RoleEmployee {
		t.Errorf("role = %q, want EMPLOYEE", user.Role)
	}
	if !user.IsActive {
		t.Error("new employee must be active")
	}
	if user.FullName != "Priya Sharma" {
		t.Errorf("full name = %q", user.FullName)
	}
	if len(tempPassword) != utils.TempPasswordLength {
		t.Errorf("temp password length = %d, want %d", len(tempPassword), utils.TempPasswordLength)
	}
	if user.Password == tempPassword {
		t.Error("stored password must be hashed")
	}
	if err := CheckPassword(user.Password, tempPassword); err != nil {
		t.Errorf("temp password does not verify against stored hash: %v", err)
	}

	var balances []models.LeaveBalance
	if err := db.Where("user_id = ?", user.ID).Find(&balances).Error; err != nil {
		t.Fatalf("load balances: %v", err)
	}
	if len(balances) != len(constants.SignupLeaveTypes) {
		t.Fatalf("balances = %d, want %d", len(balances), len(constants.SignupLeaveTypes))
	}
	for _, b := range balances {
		if b.TotalDays != constants.DefaultLeaveDays[b.LeaveType] {
			t.Errorf("%s total = %d, want %d", b.LeaveType, b.TotalDays, constants.DefaultLeaveDays[b.LeaveType])
		}
		if b.UsedDays != 0 || b.RemainingDays != b.TotalDays {
			t.Errorf("%s used=%d remaining=%d, want fresh balance", b.LeaveType, b.UsedDays, b.RemainingDays)
		}
	}
}

func TestCreateEmployeeDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(UserServiceOptions{DB: db})

	if _, _, err := svc.CreateEmployee(NewEmployee{FirstName: "A", LastName: "B", Email: "dup@workzen.test"}); err != nil {
		t.Fatalf("first create: %v", err)
	}

	_, _, err := svc.CreateEmployee(NewEmployee{FirstName: "C", LastName: "D", Email: "dup@workzen.test"})
	if err == nil {
		t.Fatal("expected duplicate email error")
	}
	appErr := apperrors.GetAppError(err)
	if appErr == nil || appErr.Code != apperrors.ErrCodeConflict {
		t.Fatalf("got %v, want conflict", err)
	}
}

func TestAdjustSalary(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(UserServiceOptions{DB: db})

	user := createTestUser(t, db, "sala20250001", "salary@workzen.test", 40000)
	approver := createTestUser(t, db, "apvr20250001", "apvr@workzen.test", 90000)

	adjustment, err := svc.AdjustSalary(user.ID, 45000, "annual revision", approver.ID)
	if err != nil {
		t.Fatalf("adjust: %v", err)
	}
	if !almostEqual(adjustment.OldSalary, 40000) || !almostEqual(adjustment.NewSalary, 45000) {
		t.Errorf("adjustment %.2f -> %.2f, want 40000 -> 45000", adjustment.OldSalary, adjustment.NewSalary)
	}

	var reloaded models.User
	if err := db.First(&reloaded, user.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !almostEqual(reloaded.BasicSalary, 45000) {
		t.Errorf("basic salary = %.2f, want 45000", reloaded.BasicSalary)
	}
}

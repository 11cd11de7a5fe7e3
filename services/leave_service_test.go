package services

import (
	"testing"
	"time"

	"workzen/constants"
	apperrors "workzen/errors"
	"workzen/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestLeaveDaysInclusive(t *testing.T) {
	cases := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"three days", date(2025, time.March, 10), date(2025, time.March, 12), 3},
		{"single day", date(2025, time.March, 10), date(2025, time.March, 10), 1},
		{"across month end", date(2025, time.January, 30), date(2025, time.February, 2), 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := leaveDays(tc.start, tc.end); got != tc.want {
				t.Errorf("leaveDays = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestApplyCreatesPendingRequest(t *testing.T) {
	db := newTestDB(t)
	svc := NewLeaveService(LeaveServiceOptions{DB: db})
	user := createTestUser(t, db, "appl20250001", "apply@workzen.test", 30000)

	now := date(2025, time.March, 1)
	leave, err := svc.Apply(user.ID, constants.LeaveTypeAnnual, date(2025, time.March, 10), date(2025, time.March, 12), "family trip", now)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	if leave.NumberOfDays != 3 {
		t.Errorf("days = %d, want 3", leave.NumberOfDays)
	}
	if leave.Status != constants.LeaveStatusPending {
		t.Errorf("status = %q, want Pending", leave.Status)
	}

	// The balance row is created lazily from the default entitlements and
	// not charged until approval.
	var balance models.LeaveBalance
	if err := db.Where("user_id = ? AND leave_type = ? AND year = 2025", user.ID, constants.LeaveTypeAnnual).First(&balance).Error; err != nil {
		t.Fatalf("load balance: %v", err)
	}
	if balance.TotalDays != constants.DefaultLeaveDays[constants.LeaveTypeAnnual] {
		t.Errorf("total = %d, want %d", balance.TotalDays, constants.DefaultLeaveDays[constants.LeaveTypeAnnual])
	}
	if balance.UsedDays != 0 {
		t.Errorf("used = %d, want 0", balance.UsedDays)
	}
}

func TestApplyRejectsReversedPeriod(t *testing.T) {
	db := newTestDB(t)
	svc := NewLeaveService(LeaveServiceOptions{DB: db})
	user := createTestUser(t, db, "revp20250001", "rev@workzen.test", 30000)

	_, err := svc.Apply(user.ID, constants.LeaveTypeAnnual, date(2025, time.March, 12), date(2025, time.March, 10), "", date(2025, time.March, 1))
	if err == nil {
		t.Fatal("expected error for end before start")
	}
	appErr := apperrors.GetAppError(err)
	if appErr == nil || appErr.Code != apperrors.ErrCodeValidation {
		t.Fatalf("got %v, want validation error", err)
	}
}

func TestApplyInsufficientBalanceLeavesNoRow(t *testing.T) {
	db := newTestDB(t)
	svc := NewLeaveService(LeaveServiceOptions{DB: db})
	user := createTestUser(t, db, "insf20250001", "insf@workzen.test", 30000)

	// Casual default is 5 days, ask for 10.
	_, err := svc.Apply(user.ID, constants.LeaveTypeCasual, date(2025, time.April, 1), date(2025, time.April, 10), "", date(2025, time.March, 1))
	if err == nil {
		t.Fatal("expected insufficient balance error")
	}
	appErr := apperrors.GetAppError(err)
	if appErr == nil || appErr.Code != apperrors.ErrCodeInsufficientBalance {
		t.Fatalf("got %v, want insufficient balance", err)
	}

	var count int64
	if err := db.Model(&models.Leave{}).Where("user_id = ?", user.ID).Count(&count).Error; err != nil {
		t.Fatalf("count leaves: %v", err)
	}
	if count != 0 {
		t.Errorf("leave rows = %d, want 0", count)
	}

	// The lazily created balance row rolls back with the transaction.
	var balances int64
	if err := db.Model(&models.LeaveBalance{}).Where("user_id = ?", user.ID).Count(&balances).Error; err != nil {
		t.Fatalf("count balances: %v", err)
	}
	if balances != 0 {
		t.Errorf("balance rows = %d, want 0", balances)
	}
}

func TestApproveChargesBalance(t *testing.T) {
	db := newTestDB(t)
	svc := NewLeaveService(LeaveServiceOptions{DB: db})
	user := createTestUser(t, db, "appr20250001", "appr@workzen.test", 30000)
	approver := createTestUser(t, db, "boss20250001", "boss@workzen.test", 90000)

	now := date(2025, time.May, 1)
	leave, err := svc.Apply(user.ID, constants.LeaveTypeSick, date(2025, time.May, 5), date(2025, time.May, 7), "flu", now)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	approved, err := svc.Approve(leave.ID, approver.ID, now)
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if approved.Status != constants.LeaveStatusApproved {
		t.Errorf("status = %q, want Approved", approved.Status)
	}
	if approved.ApprovedBy == nil || *approved.ApprovedBy != approver.ID {
		t.Error("approver not recorded")
	}

	var balance models.LeaveBalance
	if err := db.Where("user_id = ? AND leave_type = ? AND year = 2025", user.ID, constants.LeaveTypeSick).First(&balance).Error; err != nil {
		t.Fatalf("load balance: %v", err)
	}
	total := constants.DefaultLeaveDays[constants.LeaveTypeSick]
	if balance.UsedDays != 3 {
		t.Errorf("used = %d, want 3", balance.UsedDays)
	}
	if balance.RemainingDays != total-3 {
		t.Errorf("remaining = %d, want %d", balance.RemainingDays, total-3)
	}

	// Second approval of the same request must fail.
	if _, err := svc.Approve(leave.ID, approver.ID, now); err == nil {
		t.Fatal("expected error approving a resolved request")
	}
}

func TestRejectDoesNotTouchBalance(t *testing.T) {
	db := newTestDB(t)
	svc := NewLeaveService(LeaveServiceOptions{DB: db})
	user := createTestUser(t, db, "rejc20250001", "rejc@workzen.test", 30000)
	approver := createTestUser(t, db, "mgmt20250001", "mgmt@workzen.test", 90000)

	now := date(2025, time.May, 1)
	leave, err := svc.Apply(user.ID, constants.LeaveTypeAnnual, date(2025, time.May, 5), date(2025, time.May, 9), "", now)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	rejected, err := svc.Reject(leave.ID, approver.ID)
	if err != nil {
		t.Fatalf("reject: %v", err)
	}
	if rejected.Status != constants.LeaveStatusRejected {
		t.Errorf("status = %q, want Rejected", rejected.Status)
	}

	var balance models.LeaveBalance
	if err := db.Where("user_id = ? AND leave_type = ? AND year = 2025", user.ID, constants.LeaveTypeAnnual).First(&balance).Error; err != nil {
		t.Fatalf("load balance: %v", err)
	}
	if balance.UsedDays != 0 {
		t.Errorf("used = %d, want 0 after rejection", balance.UsedDays)
	}
	if balance.RemainingDays != balance.TotalDays {
		t.Errorf("remaining = %d, want %d", balance.RemainingDays, balance.TotalDays)
	}
}

func TestApproveMissingLeave(t *testing.T) {
	db := newTestDB(t)
	svc := NewLeaveService(LeaveServiceOptions{DB: db})

	_, err := svc.Approve(9999, 1, date(2025, time.May, 1))
	if err == nil {
		t.Fatal("expected error for unknown leave id")
	}
	appErr := apperrors.GetAppError(err)
	if appErr == nil || appErr.Code != apperrors.ErrCodeNotFound {
		t.Fatalf("got %v, want not found", err)
	}
}

func TestInitBalancesForAll(t *testing.T) {
	db := newTestDB(t)
	svc := NewLeaveService(LeaveServiceOptions{DB: db})

	createTestUser(t, db, "init20250001", "one@workzen.test", 30000)
	createTestUser(t, db, "init20250002", "two@workzen.test", 30000)

	employees, created, err := svc.InitBalancesForAll(2026)
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	if employees != 2 {
		t.Errorf("employees = %d, want 2", employees)
	}
	if created != 2*len(constants.SignupLeaveTypes) {
		t.Errorf("created = %d, want %d", created, 2*len(constants.SignupLeaveTypes))
	}

	// Re-running must not duplicate rows.
	_, createdAgain, err := svc.InitBalancesForAll(2026)
	if err != nil {
		t.Fatalf("second init: %v", err)
	}
	if createdAgain != 0 {
		t.Errorf("second run created = %d, want 0", createdAgain)
	}
}

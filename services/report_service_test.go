package services

import (
	"testing"
	"time"

	"workzen/constants"
	apperrors "workzen/errors"
	"workzen/models"
)

func TestBuildRejectsUnknownType(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)

	_, err := svc.Build("gossip", date(2025, time.March, 1), date(2025, time.March, 31), "")
	if err == nil {
		t.Fatal("expected error for unknown report type")
	}
	appErr := apperrors.GetAppError(err)
	if appErr == nil || appErr.Code != apperrors.ErrCodeNotFound {
		t.Fatalf("got %v, want not found", err)
	}
}

func TestAttendanceReportCounts(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)
	user := createTestUser(t, db, "rprt20250001", "report@workzen.test", 30000)

	for day := 3; day <= 5; day++ {
		checkIn := time.Date(2025, time.March, day, 9, 0, 0, 0, time.UTC)
		record := models.Attendance{
			UserID:         user.ID,
			AttendanceDate: date(2025, time.March, day),
			CheckIn:        &checkIn,
			Status:         constants.AttendanceStatusPresent,
			WorkingHours:   8,
		}
		if err := db.Create(&record).Error; err != nil {
			t.Fatalf("seed attendance: %v", err)
		}
	}

	data, err := svc.Build(ReportTypeAttendance, date(2025, time.March, 1), date(2025, time.March, 31), "")
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	if data.Title != "Attendance Report" {
		t.Errorf("title = %q", data.Title)
	}
	if len(data.Rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(data.Rows))
	}
	if data.Summary[1].Label != "Present Days" || data.Summary[1].Value != "3" {
		t.Errorf("present stat = %+v", data.Summary[1])
	}
	if data.Period == "" {
		t.Error("period not set")
	}
}

func TestAttendanceReportDepartmentFilter(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)

	eng := createTestUser(t, db, "engi20250001", "eng@workzen.test", 30000)
	sales := createTestUser(t, db, "sale20250001", "sales@workzen.test", 30000)
	if err := db.Model(sales).Update("department", "Sales").Error; err != nil {
		t.Fatalf("set department: %v", err)
	}

	for _, u := range []*models.User{eng, sales} {
		record := models.Attendance{
			UserID:         u.ID,
			AttendanceDate: date(2025, time.March, 3),
			Status:         constants.AttendanceStatusPresent,
		}
		if err := db.Create(&record).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	data, err := svc.Build(ReportTypeAttendance, date(2025, time.March, 1), date(2025, time.March, 31), "Sales")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(data.Rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(data.Rows))
	}
}

func TestPerformanceReportIsDeterministic(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)
	createTestUser(t, db, "perf20250001", "perf@workzen.test", 30000)

	first, err := svc.Build(ReportTypePerformance, date(2025, time.March, 1), date(2025, time.March, 31), "")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	second, err := svc.Build(ReportTypePerformance, date(2025, time.March, 1), date(2025, time.March, 31), "")
	if err != nil {
		t.Fatalf("rebuild: %v", err)
	}

	if len(first.Rows) != 1 || len(second.Rows) != 1 {
		t.Fatalf("rows = %d/%d, want 1 each", len(first.Rows), len(second.Rows))
	}
	for i := range first.Rows[0] {
		if first.Rows[0][i] != second.Rows[0][i] {
			t.Errorf("column %d differs across runs: %q vs %q", i, first.Rows[0][i], second.Rows[0][i])
		}
	}
}

func TestDashboardStats(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)

	user := createTestUser(t, db, "dash20250001", "dash@workzen.test", 30000)
	createTestUser(t, db, "dash20250002", "dash2@workzen.test", 30000)

	now := time.Now()
	checkIn := now.Add(-2 * time.Hour)
	record := models.Attendance{
		UserID:         user.ID,
		AttendanceDate: time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),
		CheckIn:        &checkIn,
		Status:         constants.AttendanceStatusPresent,
	}
	if err := db.Create(&record).Error; err != nil {
		t.Fatalf("seed attendance: %v", err)
	}

	leave := models.Leave{
		UserID:       user.ID,
		LeaveType:    constants.LeaveTypeAnnual,
		StartDate:    now,
		EndDate:      now,
		NumberOfDays: 1,
		Status:       constants.LeaveStatusPending,
	}
	if err := db.Create(&leave).Error; err != nil {
		t.Fatalf("seed leave: %v", err)
	}

	data, err := svc.Dashboard(user.ID, now)
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}

	if data.TotalEmployees != 2 {
		t.Errorf("total employees = %d, want 2", data.TotalEmployees)
	}
	if data.PendingLeaves != 1 {
		t.Errorf("pending leaves = %d, want 1", data.PendingLeaves)
	}
	if data.AttendanceRate != 50 {
		t.Errorf("attendance rate = %d, want 50", data.AttendanceRate)
	}
	if data.TodayAttendance == nil {
		t.Error("today's attendance missing")
	}
}

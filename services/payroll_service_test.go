package services

import (
	"math"
	"testing"
	"time"

	"workzen/constants"
	"workzen/models"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 0.001
}

func TestComputePayslip(t *testing.T) {
	amounts := ComputePayslip(50000)

	cases := []struct {
		name string
		got  float64
		want float64
	}{
		{"basic", amounts.Basic, 50000},
		{"hra", amounts.HRA, 10000},
		{"da", amounts.DA, 2500},
		{"gross", amounts.Gross, 62500},
		{"pf", amounts.PF, 6000},
		{"income tax", amounts.IncomeTax, 2500},
		{"professional tax", amounts.ProfessionalTax, 200},
		{"net", amounts.Net, 53800},
	}
	for _, tc := range cases {
		if !almostEqual(tc.got, tc.want) {
			t.Errorf("%s = %.2f, want %.2f", tc.name, tc.got, tc.want)
		}
	}
}

func TestComputePayslipZeroSalary(t *testing.T) {
	amounts := ComputePayslip(0)

	if !almostEqual(amounts.Gross, 0) {
		t.Errorf("gross = %.2f, want 0", amounts.Gross)
	}
	// The flat professional tax still applies, which drives net negative.
	if !almostEqual(amounts.Net, -200) {
		t.Errorf("net = %.2f, want -200", amounts.Net)
	}
}

func TestGenerateIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := NewPayrollService(PayrollServiceOptions{DB: db})

	createTestUser(t, db, "jasm20250001", "a@workzen.test", 50000)
	createTestUser(t, db, "bobr20250001", "b@workzen.test", 30000)

	month := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)

	first, err := svc.Generate(month, "", false)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	if first.Generated != 2 || first.Skipped != 0 {
		t.Fatalf("first run generated=%d skipped=%d, want 2/0", first.Generated, first.Skipped)
	}

	second, err := svc.Generate(month, "", false)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if second.Generated != 0 || second.Skipped != 2 {
		t.Fatalf("second run generated=%d skipped=%d, want 0/2", second.Generated, second.Skipped)
	}

	var count int64
	if err := db.Model(&models.Payslip{}).Count(&count).Error; err != nil {
		t.Fatalf("count payslips: %v", err)
	}
	if count != 2 {
		t.Fatalf("payslip count = %d, want 2", count)
	}
}

func TestGenerateSkipsInactiveByDefault(t *testing.T) {
	db := newTestDB(t)
	svc := NewPayrollService(PayrollServiceOptions{DB: db})

	createTestUser(t, db, "actv20250001", "active@workzen.test", 40000)
	inactive := createTestUser(t, db, "gone20250001", "gone@workzen.test", 40000)
	if err := db.Model(inactive).Update("is_active", false).Error; err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	month := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	result, err := svc.Generate(month, "", false)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if result.Generated != 1 {
		t.Fatalf("generated = %d, want 1", result.Generated)
	}

	withInactive, err := svc.Generate(month, "", true)
	if err != nil {
		t.Fatalf("generate with inactive: %v", err)
	}
	if withInactive.Generated != 1 || withInactive.Skipped != 1 {
		t.Fatalf("generated=%d skipped=%d, want 1/1", withInactive.Generated, withInactive.Skipped)
	}
}

func TestGenerateStoresProcessedPayslips(t *testing.T) {
	db := newTestDB(t)
	svc := NewPayrollService(PayrollServiceOptions{DB: db})

	user := createTestUser(t, db, "proc20250001", "proc@workzen.test", 60000)
	month := time.Date(2025, time.April, 20, 0, 0, 0, 0, time.UTC)

	if _, err := svc.Generate(month, "", false); err != nil {
		t.Fatalf("generate: %v", err)
	}

	var payslip models.Payslip
	if err := db.Where("user_id = ?", user.ID).First(&payslip).Error; err != nil {
		t.Fatalf("load payslip: %v", err)
	}

	if payslip.Status != constants.PayslipStatusProcessed {
		t.Errorf("status = %q, want %q", payslip.Status, constants.PayslipStatusProcessed)
	}
	if payslip.ProcessedDate == nil {
		t.Error("processed date not set")
	}
	if payslip.PayrollMonth.Day() != 1 {
		t.Errorf("payroll month day = %d, want 1 (first of month)", payslip.PayrollMonth.Day())
	}
	if !almostEqual(payslip.NetSalary, ComputePayslip(60000).Net) {
		t.Errorf("net = %.2f, want %.2f", payslip.NetSalary, ComputePayslip(60000).Net)
	}
}

func TestWorkingDaysExcludesSundays(t *testing.T) {
	// March 2025 has 31 days, 5 of them Sundays.
	march := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	if got := WorkingDays(march); got != 26 {
		t.Errorf("WorkingDays(March 2025) = %d, want 26", got)
	}

	// February 2025 has 28 days, 4 of them Sundays.
	feb := time.Date(2025, time.February, 10, 0, 0, 0, 0, time.UTC)
	if got := WorkingDays(feb); got != 24 {
		t.Errorf("WorkingDays(February 2025) = %d, want 24", got)
	}
}

func TestTotals(t *testing.T) {
	payslips := []models.Payslip{
		{Status: constants.PayslipStatusProcessed, NetSalary: 1000},
		{Status: constants.PayslipStatusProcessed, NetSalary: 2000},
		{Status: constants.PayslipStatusDraft, NetSalary: 500},
	}

	totals := Totals(payslips)
	if totals.TotalPayslips != 3 {
		t.Errorf("total = %d, want 3", totals.TotalPayslips)
	}
	if totals.ProcessedCount != 2 || totals.DraftCount != 1 {
		t.Errorf("processed=%d draft=%d, want 2/1", totals.ProcessedCount, totals.DraftCount)
	}
	if !almostEqual(totals.TotalAmount, 3500) {
		t.Errorf("amount = %.2f, want 3500", totals.TotalAmount)
	}
}

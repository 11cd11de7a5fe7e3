package dto

// GeneratePayrollRequest triggers payslip generation for a month. The month is
// any YYYY-MM-DD date inside the target month.
type GeneratePayrollRequest struct {
	PayrollMonth    string `json:"payrollMonth" binding:"required"`
	Department      string `json:"department"`
	IncludeInactive bool   `json:"includeInactive"`
}

type GeneratePayrollResponse struct {
	RunID     string `json:"runId"`
	Generated int    `json:"generated"`
	Skipped   int    `json:"skipped"`
}

// AttendanceStats are the display statistics shown next to a payslip; they do
// not affect the payslip amounts.
type AttendanceStats struct {
	WorkingDays int `json:"workingDays"`
	PresentDays int `json:"presentDays"`
	AbsentDays  int `json:"absentDays"`
	LeaveDays   int `json:"leaveDays"`
}

type PayslipTotals struct {
	TotalPayslips  int     `json:"totalPayslips"`
	ProcessedCount int     `json:"processedCount"`
	DraftCount     int     `json:"draftCount"`
	TotalAmount    float64 `json:"totalAmount"`
}

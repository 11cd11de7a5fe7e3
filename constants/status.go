package constants

// Roles
const (
	RoleAdmin          = "ADMIN"
	RoleHROfficer      = "HR_OFFICER"
	RolePayrollOfficer = "PAYROLL_OFFICER"
	RoleEmployee       = "EMPLOYEE"
)

// Leave status
const (
	LeaveStatusPending  = "Pending"
	LeaveStatusApproved = "Approved"
	LeaveStatusRejected = "Rejected"
)

// Attendance status
const (
	AttendanceStatusPresent = "Present"
	AttendanceStatusAbsent  = "Absent"
	AttendanceStatusLate    = "Late"
)

// Payslip status
const (
	PayslipStatusDraft     = "Draft"
	PayslipStatusProcessed = "Processed"
)

// Payroll rates against basic salary. ProfessionalTax is a flat amount.
const (
	HRARate         = 0.20
	DARate          = 0.05
	PFRate          = 0.12
	IncomeTaxRate   = 0.05
	ProfessionalTax = 200.0
)

// Leave types and their default entitlement in days per year.
const (
	LeaveTypeAnnual    = "Annual"
	LeaveTypeSick      = "Sick"
	LeaveTypeCasual    = "Casual"
	LeaveTypeMaternity = "Maternity"
	LeaveTypeUnpaid    = "Unpaid"

	DefaultLeaveDaysFallback = 5
)

var DefaultLeaveDays = map[string]int{
	LeaveTypeAnnual:    20,
	LeaveTypeSick:      10,
	LeaveTypeCasual:    5,
	LeaveTypeMaternity: 90,
	LeaveTypeUnpaid:    10,
}

// SignupLeaveTypes are the balances created automatically for a new employee.
var SignupLeaveTypes = []string{LeaveTypeAnnual, LeaveTypeSick, LeaveTypeCasual}

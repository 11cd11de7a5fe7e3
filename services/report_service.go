package services

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
	"strings"
	"time"

	"workzen/constants"
	apperrors "workzen/errors"
	"workzen/dto"
	"workzen/models"
	"workzen/utils"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Report types
const (
	ReportTypeAttendance  = "attendance"
	ReportTypePayroll     = "payroll"
	ReportTypeEmployee    = "employee"
	ReportTypeLeave       = "leave"
	ReportTypeOvertime    = "overtime"
	ReportTypePerformance = "performance"
)

const (
	standardDayHours      = 8.0
	overtimeHourlyRate    = 200.0
	performanceRowCap     = 20
	reportReasonMaxLength = 50
)

type ReportService struct {
	db *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db}
}

// Build produces the summary stats and row-set for one report type over a
// date range, optionally narrowed to a department.
func (s *ReportService) Build(reportType string, start, end time.Time, department string) (*dto.ReportData, error) {
	var (
		data *dto.ReportData
		err  error
	)

	switch reportType {
	case ReportTypeAttendance:
		data, err = s.attendanceReport(start, end, department)
	case ReportTypePayroll:
		data, err = s.payrollReport(start, end, department)
	case ReportTypeEmployee:
		data, err = s.employeeReport(department)
	case ReportTypeLeave:
		data, err = s.leaveReport(start, end, department)
	case ReportTypeOvertime:
		data, err = s.overtimeReport(start, end, department)
	case ReportTypePerformance:
		data, err = s.performanceReport(department)
	default:
		return nil, apperrors.NewAppError(apperrors.ErrCodeNotFound, "Invalid report type", nil)
	}
	if err != nil {
		return nil, err
	}

	data.Period = fmt.Sprintf("%s - %s", start.Format("02 Jan 2006"), end.Format("02 Jan 2006"))
	return data, nil
}

// Save records a generated report for later re-rendering.
func (s *ReportService) Save(reportType string, data *dto.ReportData, generatedBy uint) error {
	payload, err := json.Marshal(data.Rows)
	if err != nil {
		return err
	}

	by := generatedBy
	report := models.Report{
		ReportType:  reportType,
		Headers:     pq.StringArray(data.Headers),
		ReportData:  payload,
		GeneratedBy: &by,
	}
	return s.db.Create(&report).Error
}

func (s *ReportService) attendanceReport(start, end time.Time, department string) (*dto.ReportData, error) {
	query := s.db.Preload("User").
		Joins("JOIN users ON users.id = attendances.user_id").
		Where("attendances.attendance_date >= ? AND attendances.attendance_date <= ?", start, end)
	if department != "" {
		query = query.Where("users.department = ?", department)
	}

	var records []models.Attendance
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}

	present, absent, late := 0, 0, 0
	totalHours := 0.0
	for _, r := range records {
		switch r.Status {
		case constants.AttendanceStatusPresent:
			present++
		case constants.AttendanceStatusAbsent:
			absent++
		case constants.AttendanceStatusLate:
			late++
		}
		totalHours += r.WorkingHours
	}
	avgHours := 0.0
	if len(records) > 0 {
		avgHours = totalHours / float64(len(records))
	}

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.AttendanceDate.Format("02 Jan 2006"),
			r.User.LoginID,
			r.User.FullName,
			dash(r.User.Department),
			formatClock(r.CheckIn),
			formatClock(r.CheckOut),
			formatHours(r.WorkingHours),
			r.Status,
		})
	}

	return &dto.ReportData{
		Title: "Attendance Report",
		Summary: []dto.SummaryStat{
			{Label: "Total Records", Value: fmt.Sprintf("%d", len(records))},
			{Label: "Present Days", Value: fmt.Sprintf("%d", present)},
			{Label: "Absent Days", Value: fmt.Sprintf("%d", absent)},
			{Label: "Late Arrivals", Value: fmt.Sprintf("%d", late)},
			{Label: "Avg Working Hours", Value: fmt.Sprintf("%.1fh", avgHours)},
		},
		Headers:    []string{"Date", "Employee ID", "Name", "Department", "Check In", "Check Out", "Hours", "Status"},
		Rows:       rows,
		ShowChart:  true,
		ChartTitle: "Attendance Trends",
	}, nil
}

func (s *ReportService) payrollReport(start, end time.Time, department string) (*dto.ReportData, error) {
	query := s.db.Preload("User").
		Joins("JOIN users ON users.id = payslips.user_id").
		Where("payslips.payroll_month >= ? AND payslips.payroll_month <= ?", start, end)
	if department != "" {
		query = query.Where("users.department = ?", department)
	}

	var payslips []models.Payslip
	if err := query.Find(&payslips).Error; err != nil {
		return nil, err
	}

	totalGross, totalDeductions, totalNet := 0.0, 0.0, 0.0
	rows := make([][]string, 0, len(payslips))
	for _, p := range payslips {
		deductions := p.PF + p.IncomeTax + p.ProfessionalTax
		totalGross += p.GrossEarnings
		totalDeductions += deductions
		totalNet += p.NetSalary

		rows = append(rows, []string{
			p.PayrollMonth.Format("Jan 2006"),
			p.User.LoginID,
			p.User.FullName,
			formatMoney(p.BasicSalary),
			formatMoney(p.HRA),
			formatMoney(p.GrossEarnings),
			formatMoney(deductions),
			formatMoney(p.NetSalary),
		})
	}

	return &dto.ReportData{
		Title: "Payroll Report",
		Summary: []dto.SummaryStat{
			{Label: "Total Gross", Value: formatMoney(totalGross)},
			{Label: "Total Deductions", Value: formatMoney(totalDeductions)},
			{Label: "Total Net Pay", Value: formatMoney(totalNet)},
			{Label: "Employees Paid", Value: fmt.Sprintf("%d", len(payslips))},
		},
		Headers:    []string{"Month", "Employee ID", "Name", "Basic Salary", "HRA", "Gross", "Deductions", "Net Salary"},
		Rows:       rows,
		ShowChart:  true,
		ChartTitle: "Payroll Distribution",
	}, nil
}

func (s *ReportService) employeeReport(department string) (*dto.ReportData, error) {
	query := s.db.Where("is_active = ?", true)
	if department != "" {
		query = query.Where("department = ?", department)
	}

	var employees []models.User
	if err := query.Find(&employees).Error; err != nil {
		return nil, err
	}

	byRole := map[string]int{}
	rows := make([][]string, 0, len(employees))
	for _, emp := range employees {
		byRole[emp.Role]++

		joining := "-"
		if emp.DateOfJoining != nil {
			joining = emp.DateOfJoining.Format("02 Jan 2006")
		}
		rows = append(rows, []string{
			emp.LoginID,
			emp.FullName,
			dash(emp.Department),
			dash(emp.JobPosition),
			roleTitle(emp.Role),
			joining,
			emp.Email,
			dash(emp.Phone),
		})
	}

	return &dto.ReportData{
		Title: "Employee Report",
		Summary: []dto.SummaryStat{
			{Label: "Total Employees", Value: fmt.Sprintf("%d", len(employees))},
			{Label: "Employees", Value: fmt.Sprintf("%d", byRole[constants.RoleEmployee])},
			{Label: "HR Officers", Value: fmt.Sprintf("%d", byRole[constants.RoleHROfficer])},
			{Label: "Admins", Value: fmt.Sprintf("%d", byRole[constants.RoleAdmin])},
		},
		Headers: []string{"Employee ID", "Name", "Department", "Position", "Role", "Joining Date", "Email", "Phone"},
		Rows:    rows,
	}, nil
}

func (s *ReportService) leaveReport(start, end time.Time, department string) (*dto.ReportData, error) {
	query := s.db.Preload("User").
		Joins("JOIN users ON users.id = leaves.user_id").
		Where("leaves.start_date >= ? AND leaves.start_date <= ?", start, end)
	if department != "" {
		query = query.Where("users.department = ?", department)
	}

	var leaves []models.Leave
	if err := query.Find(&leaves).Error; err != nil {
		return nil, err
	}

	approved, pending, rejected := 0, 0, 0
	rows := make([][]string, 0, len(leaves))
	for _, l := range leaves {
		switch l.Status {
		case constants.LeaveStatusApproved:
			approved++
		case constants.LeaveStatusPending:
			pending++
		case constants.LeaveStatusRejected:
			rejected++
		}

		rows = append(rows, []string{
			l.User.LoginID,
			l.User.FullName,
			l.LeaveType,
			l.StartDate.Format("02 Jan 2006"),
			l.EndDate.Format("02 Jan 2006"),
			fmt.Sprintf("%d", l.NumberOfDays),
			l.Status,
			truncateReason(l.Reason),
		})
	}

	return &dto.ReportData{
		Title: "Leave Report",
		Summary: []dto.SummaryStat{
			{Label: "Total Requests", Value: fmt.Sprintf("%d", len(leaves))},
			{Label: "Approved", Value: fmt.Sprintf("%d", approved)},
			{Label: "Pending", Value: fmt.Sprintf("%d", pending)},
			{Label: "Rejected", Value: fmt.Sprintf("%d", rejected)},
		},
		Headers:    []string{"Employee ID", "Name", "Leave Type", "Start Date", "End Date", "Days", "Status", "Reason"},
		Rows:       rows,
		ShowChart:  true,
		ChartTitle: "Leave Trends",
	}, nil
}

func (s *ReportService) overtimeReport(start, end time.Time, department string) (*dto.ReportData, error) {
	query := s.db.Preload("User").
		Joins("JOIN users ON users.id = attendances.user_id").
		Where("attendances.attendance_date >= ? AND attendances.attendance_date <= ?", start, end).
		Where("attendances.working_hours > ?", standardDayHours)
	if department != "" {
		query = query.Where("users.department = ?", department)
	}

	var records []models.Attendance
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}

	totalOT := 0.0
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		ot := r.WorkingHours - standardDayHours
		if ot < 0 {
			ot = 0
		}
		totalOT += ot

		rows = append(rows, []string{
			r.AttendanceDate.Format("02 Jan 2006"),
			r.User.LoginID,
			r.User.FullName,
			dash(r.User.Department),
			formatHours(r.WorkingHours),
			fmt.Sprintf("%.2f", ot),
		})
	}

	avgOT := 0.0
	if len(records) > 0 {
		avgOT = totalOT / float64(len(records))
	}

	return &dto.ReportData{
		Title: "Overtime Report",
		Summary: []dto.SummaryStat{
			{Label: "Overtime Days", Value: fmt.Sprintf("%d", len(records))},
			{Label: "Total OT Hours", Value: fmt.Sprintf("%.1fh", totalOT)},
			{Label: "Avg OT/Day", Value: fmt.Sprintf("%.1fh", avgOT)},
			{Label: "Estimated Cost", Value: formatMoney(totalOT * overtimeHourlyRate)},
		},
		Headers:    []string{"Date", "Employee ID", "Name", "Department", "Working Hours", "OT Hours"},
		Rows:       rows,
		ShowChart:  true,
		ChartTitle: "Overtime Trends",
	}, nil
}

// performanceReport is a placeholder: scores are derived from a hash of the
// employee id, not from real metrics.
func (s *ReportService) performanceReport(department string) (*dto.ReportData, error) {
	query := s.db.Where("is_active = ?", true)
	if department != "" {
		query = query.Where("department = ?", department)
	}

	var employees []models.User
	if err := query.Find(&employees).Error; err != nil {
		return nil, err
	}

	rows := make([][]string, 0, performanceRowCap)
	for i, emp := range employees {
		if i >= performanceRowCap {
			break
		}
		h := idHash(emp.ID)
		rows = append(rows, []string{
			emp.LoginID,
			emp.FullName,
			dash(emp.Department),
			fmt.Sprintf("%d%%", 85+h%15),
			fmt.Sprintf("%d%%", 90+h%10),
			strings.Repeat("⭐", 3+int(h%3)),
		})
	}

	return &dto.ReportData{
		Title: "Performance Report",
		Summary: []dto.SummaryStat{
			{Label: "Employees Evaluated", Value: fmt.Sprintf("%d", len(employees))},
			{Label: "Avg Score", Value: "85%"},
			{Label: "Top Performers", Value: "12"},
			{Label: "Need Improvement", Value: "3"},
		},
		Headers:    []string{"Employee ID", "Name", "Department", "Performance Score", "Attendance %", "Rating"},
		Rows:       rows,
		ShowChart:  true,
		ChartTitle: "Performance Distribution",
	}, nil
}

// Dashboard computes the landing-page statistics for one user.
func (s *ReportService) Dashboard(userID uint, now time.Time) (*dto.DashboardResponse, error) {
	today := utils.DateOnly(now)

	var totalEmployees int64
	if err := s.db.Model(&models.User{}).
		Where("role = ? AND is_active = ?", constants.RoleEmployee, true).
		Count(&totalEmployees).Error; err != nil {
		return nil, err
	}

	var presentToday int64
	if err := s.db.Model(&models.Attendance{}).
		Where("attendance_date = ? AND status = ?", today, constants.AttendanceStatusPresent).
		Count(&presentToday).Error; err != nil {
		return nil, err
	}

	var activeTotal int64
	if err := s.db.Model(&models.User{}).Where("is_active = ?", true).Count(&activeTotal).Error; err != nil {
		return nil, err
	}

	attendanceRate := 0
	if activeTotal > 0 {
		attendanceRate = int(float64(presentToday)/float64(activeTotal)*100 + 0.5)
	}

	var pendingLeaves int64
	if err := s.db.Model(&models.Leave{}).
		Where("status = ?", constants.LeaveStatusPending).
		Count(&pendingLeaves).Error; err != nil {
		return nil, err
	}

	var payrollTotal struct{ Total *float64 }
	if err := s.db.Model(&models.Payslip{}).
		Select("SUM(net_salary) AS total").
		Where("payroll_month = ?", utils.FirstOfMonth(now)).
		Scan(&payrollTotal).Error; err != nil {
		return nil, err
	}
	totalPayroll := 0.0
	if payrollTotal.Total != nil {
		totalPayroll = *payrollTotal.Total
	}

	var todayAttendance *models.Attendance
	var record models.Attendance
	if err := s.db.Where("user_id = ? AND attendance_date = ?", userID, today).First(&record).Error; err == nil {
		todayAttendance = &record
	}

	var balances []models.LeaveBalance
	if err := s.db.Where("user_id = ? AND year = ?", userID, now.Year()).Find(&balances).Error; err != nil {
		return nil, err
	}

	var recentPayslips []models.Payslip
	if err := s.db.Where("user_id = ?", userID).
		Order("payroll_month DESC").
		Limit(3).
		Find(&recentPayslips).Error; err != nil {
		return nil, err
	}

	return &dto.DashboardResponse{
		TotalEmployees:  totalEmployees,
		AttendanceRate:  attendanceRate,
		PendingLeaves:   pendingLeaves,
		TotalPayroll:    totalPayroll,
		TodayAttendance: todayAttendance,
		LeaveBalances:   balances,
		RecentPayslips:  recentPayslips,
	}, nil
}

func idHash(id uint) int {
	h := fnv.New32a()
	fmt.Fprintf(h, "%d", id)
	return int(h.Sum32() % 1000)
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func formatClock(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format("03:04 PM")
}

func formatHours(h float64) string {
	if h == 0 {
		return "-"
	}
	return fmt.Sprintf("%.2f", h)
}

func formatMoney(amount float64) string {
	return fmt.Sprintf("₹%.2f", amount)
}

func roleTitle(role string) string {
	parts := strings.Split(strings.ToLower(strings.ReplaceAll(role, "_", " ")), " ")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}

func truncateReason(reason string) string {
	if reason == "" {
		return "-"
	}
	r := []rune(reason)
	if len(r) > reportReasonMaxLength {
		return string(r[:reportReasonMaxLength]) + "..."
	}
	return reason
}

package services

import (
	"errors"
	"time"

	"workzen/constants"
	apperrors "workzen/errors"
	"workzen/dto"
	"workzen/models"
	"workzen/services/logger"
	"workzen/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PayrollService struct {
	db     *gorm.DB
	logger logger.Logger
}

type PayrollServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewPayrollService(opts PayrollServiceOptions) *PayrollService {
	return &PayrollService{
		db:     opts.DB,
		logger: opts.Logger,
	}
}

// PayslipAmounts holds the computed salary breakdown for one payslip.
type PayslipAmounts struct {
	Basic           float64
	HRA             float64
	DA              float64
	Gross           float64
	PF              float64
	IncomeTax       float64
	ProfessionalTax float64
	Net             float64
}

// ComputePayslip applies the fixed-percentage salary formula to a basic salary.
func ComputePayslip(basic float64) PayslipAmounts {
	hra := basic * constants.HRARate
	da := basic * constants.DARate
	gross := basic + hra + da

	pf := basic * constants.PFRate
	incomeTax := basic * constants.IncomeTaxRate
	profTax := constants.ProfessionalTax

	return PayslipAmounts{
		Basic:           basic,
		HRA:             hra,
		DA:              da,
		Gross:           gross,
		PF:              pf,
		IncomeTax:       incomeTax,
		ProfessionalTax: profTax,
		Net:             gross - pf - incomeTax - profTax,
	}
}

// Generate creates one Processed payslip per selected employee for the month,
// skipping employees that already have one. Idempotent per (employee, month).
func (s *PayrollService) Generate(month time.Time, department string, includeInactive bool) (*dto.GeneratePayrollResponse, error) {
	payrollMonth := utils.FirstOfMonth(month)

	query := s.db.Model(&models.User{})
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}
	if department != "" {
		query = query.Where("department = ?", department)
	}

	var employees []models.User
	if err := query.Find(&employees).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Failed to load employees", err)
	}

	runID := uuid.NewString()
	generated := 0
	skipped := 0

	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, employee := range employees {
			err := generatePayslip(tx, &employee, payrollMonth)
			if errors.Is(err, apperrors.ErrPayslipExists) {
				skipped++
				continue
			}
			if err != nil {
				return err
			}
			generated++
		}
		return nil
	})
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Payroll generation failed", err)
	}

	if s.logger != nil {
		s.logger.Info("payroll run %s for %s: %d generated, %d skipped", runID, payrollMonth.Format("2006-01"), generated, skipped)
	}

	return &dto.GeneratePayrollResponse{
		RunID:     runID,
		Generated: generated,
		Skipped:   skipped,
	}, nil
}

// generatePayslip writes one payslip row, or ErrPayslipExists when the month
// has already been processed for this employee.
func generatePayslip(tx *gorm.DB, employee *models.User, payrollMonth time.Time) error {
	var existing models.Payslip
	err := tx.Where("user_id = ? AND payroll_month = ?", employee.ID, payrollMonth).
		First(&existing).Error
	if err == nil {
		return apperrors.ErrPayslipExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	amounts := ComputePayslip(employee.BasicSalary)
	processed := time.Now()
	payslip := models.Payslip{
		UserID:          employee.ID,
		PayrollMonth:    payrollMonth,
		BasicSalary:     amounts.Basic,
		HRA:             amounts.HRA,
		DA:              amounts.DA,
		GrossEarnings:   amounts.Gross,
		PF:              amounts.PF,
		IncomeTax:       amounts.IncomeTax,
		ProfessionalTax: amounts.ProfessionalTax,
		NetSalary:       amounts.Net,
		Status:          constants.PayslipStatusProcessed,
		ProcessedDate:   &processed,
	}
	return tx.Create(&payslip).Error
}

// WorkingDays counts the days of the month excluding Sundays.
func WorkingDays(month time.Time) int {
	start := utils.FirstOfMonth(month)
	end := utils.NextMonth(month)

	days := 0
	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		if d.Weekday() != time.Sunday {
			days++
		}
	}
	return days
}

// AttendanceStats computes the display statistics shown with a payslip. They
// never feed back into the payslip amounts.
func (s *PayrollService) AttendanceStats(userID uint, month time.Time) (*dto.AttendanceStats, error) {
	start := utils.FirstOfMonth(month)
	end := utils.NextMonth(month)

	var present int64
	if err := s.db.Model(&models.Attendance{}).
		Where("user_id = ? AND attendance_date >= ? AND attendance_date < ? AND status = ?",
			userID, start, end, constants.AttendanceStatusPresent).
		Count(&present).Error; err != nil {
		return nil, err
	}

	var absent int64
	if err := s.db.Model(&models.Attendance{}).
		Where("user_id = ? AND attendance_date >= ? AND attendance_date < ? AND status = ?",
			userID, start, end, constants.AttendanceStatusAbsent).
		Count(&absent).Error; err != nil {
		return nil, err
	}

	var leaveDays struct{ Total *int }
	if err := s.db.Model(&models.Leave{}).
		Select("SUM(number_of_days) AS total").
		Where("user_id = ? AND status = ? AND start_date >= ? AND start_date < ?",
			userID, constants.LeaveStatusApproved, start, end).
		Scan(&leaveDays).Error; err != nil {
		return nil, err
	}

	leaves := 0
	if leaveDays.Total != nil {
		leaves = *leaveDays.Total
	}

	return &dto.AttendanceStats{
		WorkingDays: WorkingDays(month),
		PresentDays: int(present),
		AbsentDays:  int(absent),
		LeaveDays:   leaves,
	}, nil
}

// PayslipByID loads one payslip with its employee.
func (s *PayrollService) PayslipByID(id uint) (*models.Payslip, error) {
	var payslip models.Payslip
	if err := s.db.Preload("User").First(&payslip, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeNotFound, "Payslip not found", apperrors.ErrPayslipNotFound)
		}
		return nil, err
	}
	return &payslip, nil
}

// PayslipFilter narrows the all-payslips listing.
type PayslipFilter struct {
	Search     string
	Month      *time.Time
	Department string
	Status     string
}

// Payslips lists payslips matching the filter, newest month first.
func (s *PayrollService) Payslips(filter PayslipFilter) ([]models.Payslip, error) {
	query := s.db.Preload("User").
		Joins("JOIN users ON users.id = payslips.user_id")

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("LOWER(users.full_name) LIKE LOWER(?) OR LOWER(users.login_id) LIKE LOWER(?)", pattern, pattern)
	}
	if filter.Month != nil {
		query = query.Where("payslips.payroll_month = ?", utils.FirstOfMonth(*filter.Month))
	}
	if filter.Department != "" {
		query = query.Where("users.department = ?", filter.Department)
	}
	if filter.Status != "" {
		query = query.Where("payslips.status = ?", filter.Status)
	}

	var payslips []models.Payslip
	if err := query.Order("payslips.payroll_month DESC").Find(&payslips).Error; err != nil {
		return nil, err
	}
	return payslips, nil
}

// Totals summarizes a payslip listing.
func Totals(payslips []models.Payslip) dto.PayslipTotals {
	totals := dto.PayslipTotals{TotalPayslips: len(payslips)}
	for _, p := range payslips {
		switch p.Status {
		case constants.PayslipStatusProcessed:
			totals.ProcessedCount++
		case constants.PayslipStatusDraft:
			totals.DraftCount++
		}
		totals.TotalAmount += p.NetSalary
	}
	return totals
}

// UserPayslips lists a user's payslips, newest month first.
func (s *PayrollService) UserPayslips(userID uint, limit int) ([]models.Payslip, error) {
	query := s.db.Where("user_id = ?", userID).Order("payroll_month DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var payslips []models.Payslip
	if err := query.Find(&payslips).Error; err != nil {
		return nil, err
	}
	return payslips, nil
}

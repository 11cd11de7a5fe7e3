package controllers

import (
	"fmt"
	"net/http"
	"time"

	"workzen/constants"
	"workzen/dto"
	"workzen/models"
	"workzen/response"
	"workzen/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PayrollController struct {
	DB      *gorm.DB
	Service *services.PayrollService
}

func NewPayrollController(db *gorm.DB, payrollService *services.PayrollService) PayrollController {
	return PayrollController{
		DB:      db,
		Service: payrollService,
	}
}

// Generate runs payroll for a month. Re-running is safe: employees who
// already have a payslip for that month are skipped.
func (p PayrollController) Generate(c *gin.Context) {
	var input dto.GeneratePayrollRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, bindingErrorMessage(err))
		return
	}

	month, err := parseDate(input.PayrollMonth)
	if err != nil {
		response.ValidationError(c, "Invalid payrollMonth, expected YYYY-MM-DD")
		return
	}

	result, err := p.Service.Generate(month, input.Department, input.IncludeInactive)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, result)
}

// MyPayslips lists the caller's payslips.
func (p PayrollController) MyPayslips(c *gin.Context) {
	limit := queryInt(c, "limit", 12)

	payslips, err := p.Service.UserPayslips(currentUserID(c), limit)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SuccessWithTotal(c, payslips, len(payslips))
}

// AllPayslips lists payslips across employees with filters and totals.
func (p PayrollController) AllPayslips(c *gin.Context) {
	filter := services.PayslipFilter{
		Search:     c.Query("search"),
		Department: c.Query("department"),
		Status:     c.Query("status"),
	}
	if monthStr := c.Query("month"); monthStr != "" {
		month, err := parseDate(monthStr)
		if err != nil {
			response.ValidationError(c, "Invalid month, expected YYYY-MM-DD")
			return
		}
		filter.Month = &month
	}

	payslips, err := p.Service.Payslips(filter)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, gin.H{
		"payslips": payslips,
		"totals":   services.Totals(payslips),
	})
}

// GetPayslip returns one payslip with the month's attendance statistics.
// Employees can only open their own payslips.
func (p PayrollController) GetPayslip(c *gin.Context) {
	payslip, ok := p.loadPayslipForCaller(c)
	if !ok {
		return
	}

	stats, err := p.Service.AttendanceStats(payslip.UserID, payslip.PayrollMonth)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, gin.H{
		"payslip":         payslip,
		"attendanceStats": stats,
	})
}

// DownloadPayslipPDF streams one payslip as a PDF attachment.
func (p PayrollController) DownloadPayslipPDF(c *gin.Context) {
	payslip, ok := p.loadPayslipForCaller(c)
	if !ok {
		return
	}

	pdfBytes, err := services.PayslipPDF(payslip)
	if err != nil {
		response.ServerError(c)
		return
	}

	filename := fmt.Sprintf("payslip_%s_%s.pdf", payslip.User.LoginID, payslip.PayrollMonth.Format("2006_01"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

// ExportCSV streams the filtered payslip listing as CSV.
func (p PayrollController) ExportCSV(c *gin.Context) {
	filter := services.PayslipFilter{
		Search:     c.Query("search"),
		Department: c.Query("department"),
		Status:     c.Query("status"),
	}
	if monthStr := c.Query("month"); monthStr != "" {
		month, err := parseDate(monthStr)
		if err != nil {
			response.ValidationError(c, "Invalid month, expected YYYY-MM-DD")
			return
		}
		filter.Month = &month
	}

	payslips, err := p.Service.Payslips(filter)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	csvBytes, err := services.PayslipsCSV(payslips)
	if err != nil {
		response.ServerError(c)
		return
	}

	filename := fmt.Sprintf("payroll_export_%s.csv", time.Now().Format("2006_01_02"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "text/csv", csvBytes)
}

func (p PayrollController) loadPayslipForCaller(c *gin.Context) (*models.Payslip, bool) {
	id := queryParamID(c)
	if id == 0 {
		response.BadRequest(c, "Invalid payslip id")
		return nil, false
	}

	slip, err := p.Service.PayslipByID(id)
	if err != nil {
		handleServiceError(c, err)
		return nil, false
	}

	role := currentUserRole(c)
	if role == constants.RoleEmployee && slip.UserID != currentUserID(c) {
		response.Forbidden(c)
		return nil, false
	}

	return slip, true
}

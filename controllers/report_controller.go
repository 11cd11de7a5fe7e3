package controllers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"workzen/config"
	"workzen/dto"
	"workzen/response"
	"workzen/services"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type ReportController struct {
	DB      *gorm.DB
	Redis   *redis.Client
	Service *services.ReportService
}

func NewReportController(db *gorm.DB, redisCli *redis.Client, reportService *services.ReportService) ReportController {
	return ReportController{
		DB:      db,
		Redis:   redisCli,
		Service: reportService,
	}
}

// reportParams reads the shared report query parameters. The period defaults
// to the trailing 30 days.
func reportParams(c *gin.Context) (reportType string, start, end time.Time, department string, err error) {
	reportType = c.Param("type")
	department = c.Query("department")

	end = time.Now()
	start = end.AddDate(0, 0, -30)

	if fromStr := c.Query("from"); fromStr != "" {
		start, err = parseDate(fromStr)
		if err != nil {
			return "", time.Time{}, time.Time{}, "", fmt.Errorf("invalid from date, expected YYYY-MM-DD")
		}
	}
	if toStr := c.Query("to"); toStr != "" {
		end, err = parseDate(toStr)
		if err != nil {
			return "", time.Time{}, time.Time{}, "", fmt.Errorf("invalid to date, expected YYYY-MM-DD")
		}
	}
	if end.Before(start) {
		return "", time.Time{}, time.Time{}, "", fmt.Errorf("to date is before from date")
	}
	return reportType, start, end, department, nil
}

func (r ReportController) buildReport(c *gin.Context) (*dto.ReportData, string, bool) {
	reportType, start, end, department, err := reportParams(c)
	if err != nil {
		response.ValidationError(c, err.Error())
		return nil, "", false
	}

	data, err := r.Service.Build(reportType, start, end, department)
	if err != nil {
		handleServiceError(c, err)
		return nil, "", false
	}

	if err := r.Service.Save(reportType, data, currentUserID(c)); err != nil {
		log.Printf("Failed to persist %s report: %v", reportType, err)
	}

	return data, reportType, true
}

// GetReport returns a report as JSON.
func (r ReportController) GetReport(c *gin.Context) {
	data, _, ok := r.buildReport(c)
	if !ok {
		return
	}
	response.Success(c, data)
}

// DownloadPDF streams a report as a PDF attachment.
func (r ReportController) DownloadPDF(c *gin.Context) {
	data, reportType, ok := r.buildReport(c)
	if !ok {
		return
	}

	pdfBytes, err := services.ReportPDF(data)
	if err != nil {
		response.ServerError(c)
		return
	}

	filename := fmt.Sprintf("%s_report_%s.pdf", reportType, time.Now().Format("2006_01_02"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

// DownloadCSV streams a report as CSV.
func (r ReportController) DownloadCSV(c *gin.Context) {
	data, reportType, ok := r.buildReport(c)
	if !ok {
		return
	}

	csvBytes, err := services.ReportCSV(data)
	if err != nil {
		response.ServerError(c)
		return
	}

	filename := fmt.Sprintf("%s_report_%s.csv", reportType, time.Now().Format("2006_01_02"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "text/csv", csvBytes)
}

// DownloadExcel streams a report as an XLSX workbook.
func (r ReportController) DownloadExcel(c *gin.Context) {
	data, reportType, ok := r.buildReport(c)
	if !ok {
		return
	}

	xlsxBytes, err := services.ReportExcel(data)
	if err != nil {
		response.ServerError(c)
		return
	}

	filename := fmt.Sprintf("%s_report_%s.xlsx", reportType, time.Now().Format("2006_01_02"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", xlsxBytes)
}

// Dashboard returns the landing-page statistics. The per-user payload is
// cached in Redis for a minute to keep page loads off the database.
func (r ReportController) Dashboard(c *gin.Context) {
	userID := currentUserID(c)
	cacheKey := fmt.Sprintf("dashboard:user_%d", userID)

	var cached dto.DashboardResponse
	if found, err := services.GetFromRedis(config.Ctx, r.Redis, cacheKey, &cached); err == nil && found {
		response.Success(c, cached)
		return
	}

	data, err := r.Service.Dashboard(userID, time.Now())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	if err := services.SetToRedis(config.Ctx, r.Redis, cacheKey, data, time.Minute); err != nil {
		log.Printf("Failed to cache dashboard for user %d: %v", userID, err)
	}

	response.Success(c, data)
}

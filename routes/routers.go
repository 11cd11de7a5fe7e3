package routes

import (
	"workzen/constants"
	"workzen/controllers"
	"workzen/middleware"
	"workzen/services"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// SetupRoutes mounts every API endpoint under /api/v1 with the role
// allow-lists applied per group.
func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, leaveService *services.LeaveService, payrollService *services.PayrollService, reportService *services.ReportService) {
	userController := controllers.NewUserController(db, redisCli)
	attendanceController := controllers.NewAttendanceController(db)
	leaveController := controllers.NewLeaveController(db, leaveService)
	payrollController := controllers.NewPayrollController(db, payrollService)
	reportController := controllers.NewReportController(db, redisCli, reportService)

	anyRole := middleware.AuthMiddleware()
	hrRoles := middleware.AuthMiddleware(constants.RoleAdmin, constants.RoleHROfficer)
	payrollRoles := middleware.AuthMiddleware(constants.RoleAdmin, constants.RolePayrollOfficer)

	v1 := router.Group("/api/v1")

	// Auth and account settings
	v1.POST("/auth/login", controllers.Login)
	v1.POST("/auth/signup", controllers.Signup)
	v1.DELETE("/auth/logout", anyRole, controllers.Logout)
	v1.GET("/auth/me", anyRole, controllers.Me)
	v1.POST("/settings/change-password", anyRole, controllers.ChangePassword)
	v1.PUT("/settings/profile", anyRole, controllers.UpdateProfile)
	v1.POST("/profile/avatar", anyRole, userController.UploadAvatar)

	// Employee directory
	v1.GET("/employees", anyRole, userController.GetEmployees)
	v1.GET("/employees/search", anyRole, userController.SearchEmployees)
	v1.POST("/employees", hrRoles, userController.CreateEmployee)
	v1.GET("/employees/:id", anyRole, userController.GetEmployee)
	v1.PUT("/employees/:id/status", hrRoles, userController.SetEmployeeStatus)
	v1.PUT("/employees/salary", payrollRoles, userController.AdjustSalary)

	// Attendance
	v1.POST("/attendance/checkin", anyRole, attendanceController.CheckIn)
	v1.POST("/attendance/checkout", anyRole, attendanceController.CheckOut)
	v1.GET("/attendance", anyRole, attendanceController.History)

	// Leaves
	v1.POST("/leaves", anyRole, leaveController.Apply)
	v1.GET("/leaves", anyRole, leaveController.MyLeaves)
	v1.GET("/leaves/pending", payrollRoles, leaveController.Pending)
	v1.PUT("/leaves/:id/approve", payrollRoles, leaveController.Approve)
	v1.PUT("/leaves/:id/reject", payrollRoles, leaveController.Reject)
	v1.POST("/admin/leave-balances/init", payrollRoles, leaveController.InitBalances)

	// Payroll
	v1.POST("/payroll/generate", payrollRoles, payrollController.Generate)
	v1.GET("/payroll/payslips", anyRole, payrollController.MyPayslips)
	v1.GET("/payroll/payslips/all", payrollRoles, payrollController.AllPayslips)
	v1.GET("/payroll/payslips/:id", anyRole, payrollController.GetPayslip)
	v1.GET("/payroll/payslips/:id/pdf", anyRole, payrollController.DownloadPayslipPDF)
	v1.GET("/payroll/payslips/export", payrollRoles, payrollController.ExportCSV)

	// Reports and dashboard
	v1.GET("/dashboard", anyRole, reportController.Dashboard)
	v1.GET("/reports/:type", payrollRoles, reportController.GetReport)
	v1.GET("/reports/:type/pdf", payrollRoles, reportController.DownloadPDF)
	v1.GET("/reports/:type/csv", payrollRoles, reportController.DownloadCSV)
	v1.GET("/reports/:type/xlsx", payrollRoles, reportController.DownloadExcel)
}

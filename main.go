package main

import (
	"log"
	"net/http"
	"os"

	"workzen/config"
	"workzen/jobs"
	"workzen/models"
	"workzen/routes"
	"workzen/services"
	"workzen/services/logger"
	"workzen/services/notification"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func migrateTables() {
	if err := config.DB.AutoMigrate(
		&models.User{},
		&models.Attendance{},
		&models.Leave{},
		&models.LeaveBalance{},
		&models.Payslip{},
		&models.SalaryAdjustment{},
		&models.Badge{},
		&models.Certification{},
		&models.Report{},
		&models.Notification{},
	); err != nil {
		log.Fatalf("Failed to migrate tables: %v", err)
	}
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: no .env file found, using existing environment: %v", err)
	}

	router, m, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	migrateTables()

	appLogger := logger.NewDefaultLogger(logger.InfoLevel)

	leaveService := services.NewLeaveService(services.LeaveServiceOptions{
		DB:       config.DB,
		Logger:   appLogger,
		Notifier: notification.NewMelodyService(m),
	})
	payrollService := services.NewPayrollService(services.PayrollServiceOptions{
		DB:     config.DB,
		Logger: appLogger,
	})
	reportService := services.NewReportService(config.DB)

	jobs.SetLeaveBalanceInitializer(leaveService)
	if err := jobs.InitCronJobs(c); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	config.InitWebSocket(router, m)

	routes.SetupRoutes(router, config.DB, config.RedisClient, leaveService, payrollService, reportService)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

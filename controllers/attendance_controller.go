package controllers

import (
	"time"

	"workzen/constants"
	"workzen/response"
	"workzen/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AttendanceController struct {
	DB *gorm.DB
}

func NewAttendanceController(db *gorm.DB) AttendanceController {
	return AttendanceController{DB: db}
}

func (a AttendanceController) service() *services.AttendanceService {
	return services.NewAttendanceService(a.DB)
}

// CheckIn opens today's attendance record for the caller.
func (a AttendanceController) CheckIn(c *gin.Context) {
	record, err := a.service().CheckIn(currentUserID(c), time.Now())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Created(c, record)
}

// CheckOut closes today's attendance record and computes working hours.
func (a AttendanceController) CheckOut(c *gin.Context) {
	record, err := a.service().CheckOut(currentUserID(c), time.Now())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, record)
}

// History lists recent attendance. Employees see their own records, HR and
// admin roles can pass user_id=0 to see everyone.
func (a AttendanceController) History(c *gin.Context) {
	limit := queryInt(c, "limit", 30)

	userID := currentUserID(c)
	role := currentUserRole(c)
	if role == constants.RoleAdmin || role == constants.RoleHROfficer {
		userID = uint(queryInt(c, "user_id", int(userID)))
	}

	records, err := a.service().RecentRecords(userID, limit)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SuccessWithTotal(c, records, len(records))
}

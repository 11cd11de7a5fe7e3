package controllers

import (
	"time"

	"workzen/dto"
	"workzen/response"
	"workzen/services"
	"workzen/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type LeaveController struct {
	DB      *gorm.DB
	Service *services.LeaveService
}

func NewLeaveController(db *gorm.DB, leaveService *services.LeaveService) LeaveController {
	return LeaveController{
		DB:      db,
		Service: leaveService,
	}
}

// Apply submits a leave request for the caller.
func (l LeaveController) Apply(c *gin.Context) {
	var input dto.ApplyLeaveRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, bindingErrorMessage(err))
		return
	}

	if err := validator.ValidateLeaveType(input.LeaveType); err != nil {
		handleServiceError(c, err)
		return
	}

	start, err := parseDate(input.StartDate)
	if err != nil {
		response.ValidationError(c, "Invalid startDate, expected YYYY-MM-DD")
		return
	}
	end, err := parseDate(input.EndDate)
	if err != nil {
		response.ValidationError(c, "Invalid endDate, expected YYYY-MM-DD")
		return
	}

	leave, err := l.Service.Apply(currentUserID(c), input.LeaveType, start, end, input.Reason, time.Now())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Created(c, dto.ApplyLeaveResponse{
		LeaveID:      leave.ID,
		NumberOfDays: leave.NumberOfDays,
	})
}

// Approve grants a pending leave request and deducts the balance.
func (l LeaveController) Approve(c *gin.Context) {
	id := queryParamID(c)
	if id == 0 {
		response.BadRequest(c, "Invalid leave id")
		return
	}

	leave, err := l.Service.Approve(id, currentUserID(c), time.Now())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, leave)
}

// Reject declines a pending leave request without touching the balance.
func (l LeaveController) Reject(c *gin.Context) {
	id := queryParamID(c)
	if id == 0 {
		response.BadRequest(c, "Invalid leave id")
		return
	}

	leave, err := l.Service.Reject(id, currentUserID(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, leave)
}

// MyLeaves lists the caller's leave requests and balances for one year.
func (l LeaveController) MyLeaves(c *gin.Context) {
	year := queryInt(c, "year", time.Now().Year())

	leaves, balances, err := l.Service.UserLeaves(currentUserID(c), year)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, gin.H{
		"leaves":   leaves,
		"balances": balances,
	})
}

// Pending lists every pending request for reviewers.
func (l LeaveController) Pending(c *gin.Context) {
	leaves, err := l.Service.PendingLeaves()
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SuccessWithTotal(c, leaves, len(leaves))
}

// InitBalances seeds the yearly quota for every active employee. The cron job
// does this automatically on January 1st; this endpoint covers mid-year
// rollouts and reruns.
func (l LeaveController) InitBalances(c *gin.Context) {
	year := queryInt(c, "year", time.Now().Year())

	employees, created, err := l.Service.InitBalancesForAll(year)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, dto.InitLeaveBalancesResponse{
		Employees:      employees,
		CreatedRecords: created,
	})
}

package dto

// ApplyLeaveRequest submits a new leave request. Dates are YYYY-MM-DD strings.
type ApplyLeaveRequest struct {
	LeaveType string `json:"leaveType" binding:"required"`
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
	Reason    string `json:"reason"`
}

type ApplyLeaveResponse struct {
	LeaveID      uint `json:"leaveId"`
	NumberOfDays int  `json:"numberOfDays"`
}

type InitLeaveBalancesResponse struct {
	Employees      int `json:"employees"`
	CreatedRecords int `json:"createdRecords"`
}

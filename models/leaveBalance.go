package models

import "time"

type LeaveBalance struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`

	UserID        uint   `gorm:"not null;uniqueIndex:uq_user_leave_year" json:"userId"`
	LeaveType     string `gorm:"size:50;not null;uniqueIndex:uq_user_leave_year" json:"leaveType"`
	Year          int    `gorm:"not null;uniqueIndex:uq_user_leave_year" json:"year"`
	TotalDays     int    `json:"totalDays"`
	UsedDays      int    `gorm:"default:0" json:"usedDays"`
	RemainingDays int    `json:"remainingDays"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

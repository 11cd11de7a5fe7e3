package models

import "time"

type Leave struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	UserID       uint      `gorm:"not null;index" json:"userId"`
	LeaveType    string    `gorm:"size:50;not null" json:"leaveType"`
	StartDate    time.Time `gorm:"type:date;not null" json:"startDate"`
	EndDate      time.Time `gorm:"type:date;not null" json:"endDate"`
	Reason       string    `json:"reason"`
	Status       string    `gorm:"size:50;default:Pending" json:"status"` // Pending, Approved, Rejected
	ApprovedBy   *uint     `json:"approvedBy,omitempty"`
	NumberOfDays int       `json:"numberOfDays"`

	User     User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Approver *User `gorm:"foreignKey:ApprovedBy" json:"approver,omitempty"`
}

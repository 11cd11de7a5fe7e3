package models

import "time"

// SalaryAdjustment is append-only history; rows are never updated or deleted.
type SalaryAdjustment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`

	UserID         uint      `gorm:"not null;index" json:"userId"`
	AdjustmentDate time.Time `gorm:"type:date;not null" json:"adjustmentDate"`
	OldSalary      float64   `json:"oldSalary"`
	NewSalary      float64   `json:"newSalary"`
	Reason         string    `json:"reason"`
	ApprovedBy     *uint     `json:"approvedBy,omitempty"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
